package reservations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/tablebook/tablebook/cmd/cli/config"
	"github.com/tablebook/tablebook/cmd/cli/output"
)

// ==========================
// Init Reservations
// ==========================
func InitReservations(rootCmd *cobra.Command) {

	reservationsCmd := &cobra.Command{
		Use:   "reservations",
		Short: "Book tables and view your reservations",
	}

	reservationsCmd.AddCommand(
		listReservationsCmd(),
		createReservationCmd(),
	)

	rootCmd.AddCommand(reservationsCmd)
}

// ==========================
// LIST
// ==========================
func listReservationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your reservations",
		Run: func(cmd *cobra.Command, args []string) {

			token, err := config.LoadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			req, _ := http.NewRequest("GET", config.APIURL()+"/reservations", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			var reservations []struct {
				ID              int    `json:"id"`
				RestaurantName  string `json:"restaurant_name"`
				ReservationTime string `json:"reservation_time"`
				NumberOfPeople  int    `json:"number_of_people"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&reservations); err != nil {
				fmt.Println(err)
				return
			}

			rows := make([][]interface{}, 0, len(reservations))
			for _, res := range reservations {
				rows = append(rows, []interface{}{res.ID, res.RestaurantName, res.ReservationTime, res.NumberOfPeople})
			}
			output.RenderTable([]string{"ID", "Restaurant", "Time", "People"}, rows)
		},
	}
}

// ==========================
// CREATE
// ==========================
func createReservationCmd() *cobra.Command {

	var restaurantID int
	var reservationTime string
	var people int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a reservation",
		Run: func(cmd *cobra.Command, args []string) {

			token, err := config.LoadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			payload := map[string]interface{}{
				"restaurant_id":    restaurantID,
				"reservation_time": reservationTime,
				"number_of_people": people,
			}

			body, _ := json.Marshal(payload)

			req, _ := http.NewRequest("POST", config.APIURL()+"/reservations", bytes.NewBuffer(body))
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			var out any
			json.NewDecoder(resp.Body).Decode(&out)
			b, _ := json.MarshalIndent(out, "", "  ")
			fmt.Println(string(b))
		},
	}

	cmd.Flags().IntVar(&restaurantID, "restaurant", 0, "restaurant id")
	cmd.Flags().StringVar(&reservationTime, "time", "", "reservation time, e.g. 2024-01-01T10:00")
	cmd.Flags().IntVar(&people, "people", 0, "party size")

	return cmd
}
