package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/success-predictor/internal/schemas"
)

var validateCVCommand = &cobra.Command{
	Use:   "validate-cv <cv.json>",
	Short: "Validate a CV JSON file against the schema",
	Long:  "Checks that a structured CV file is well-formed JSON and matches the schema the predictor expects, reporting every violating field.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateCVCmd,
}

func init() {
	rootCmd.AddCommand(validateCVCommand)
}

func runValidateCVCmd(_ *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read CV file %s: %w", path, err)
	}

	if err := schemas.ValidateCV(string(data)); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			// The validation error already lists every failing field
			return err
		}
		return fmt.Errorf("could not validate %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "✅ %s is valid\n", path)
	return nil
}
