package restaurants

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
// Init Restaurants
// ==========================
func InitRestaurants(rootCmd *cobra.Command) {

	restaurantsCmd := &cobra.Command{
		Use:   "restaurants",
		Short: "Browse and add restaurants",
	}

	restaurantsCmd.AddCommand(
		listRestaurantsCmd(),
		addRestaurantCmd(),
	)

	rootCmd.AddCommand(restaurantsCmd)
}

// ==========================
// LIST
// ==========================
func listRestaurantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List restaurants",
		Run: func(cmd *cobra.Command, args []string) {

			resp, err := http.Get(config.APIURL() + "/restaurants")
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			var restaurants []struct {
				ID      int    `json:"id"`
				Name    string `json:"name"`
				Address string `json:"address"`
				Phone   string `json:"phone"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&restaurants); err != nil {
				fmt.Println(err)
				return
			}

			rows := make([][]interface{}, 0, len(restaurants))
			for _, rest := range restaurants {
				rows = append(rows, []interface{}{rest.ID, rest.Name, rest.Address, rest.Phone})
			}
			output.RenderTable([]string{"ID", "Name", "Address", "Phone"}, rows)
		},
	}
}

// ==========================
// ADD
// ==========================
func addRestaurantCmd() *cobra.Command {

	var name string
	var address string
	var phone string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a restaurant",
		Run: func(cmd *cobra.Command, args []string) {

			token, err := config.LoadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			payload := map[string]string{
				"name":    name,
				"address": address,
				"phone":   phone,
			}

			body, _ := json.Marshal(payload)

			req, _ := http.NewRequest("POST", config.APIURL()+"/restaurants", bytes.NewBuffer(body))
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

	cmd.Flags().StringVar(&name, "name", "", "restaurant name")
	cmd.Flags().StringVar(&address, "address", "", "restaurant address")
	cmd.Flags().StringVar(&phone, "phone", "", "restaurant phone")

	return cmd
}
