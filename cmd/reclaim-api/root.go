package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reclaim-api",
	Short: "Reclaim API server",
	Long:  `A REST API server for the Reclaim recovery tracking application.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Local development keeps secrets in .env; absence is fine everywhere else
	_ = godotenv.Load()

	rootCmd.AddCommand(serveCmd)
}

func main() {
	Execute()
}
