// Package main provides the entry point for the application success predictor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "predictor_agent",
	Short: "Job Application Success Predictor",
	Long:  "Predictor agent scores a job application event (CV plus job posting) and reports interview, offer and hire probabilities, salary and timeline estimates, and improvement recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
