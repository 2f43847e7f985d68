package main

import (
	"fmt"
	"os"

	"github.com/tablebook/tablebook/cmd/cli/auth"
	"github.com/tablebook/tablebook/cmd/cli/profile"
	"github.com/tablebook/tablebook/cmd/cli/reservations"
	"github.com/tablebook/tablebook/cmd/cli/restaurants"
	"github.com/tablebook/tablebook/cmd/cli/root"
)

func main() {
	rootCmd := root.GetRoot()

	auth.InitAuth(rootCmd)
	profile.InitProfile(rootCmd)
	restaurants.InitRestaurants(rootCmd)
	reservations.InitReservations(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
