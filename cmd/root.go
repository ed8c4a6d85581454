package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/JoseTorresAguirre/back-game/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "back-game",
	Short: "User account and nickname registration service.",
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("Starting server...")
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
