package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate an extraction result JSON file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var validateSchema string

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Schema file to use instead of the built-in extraction result schema")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	if validateSchema != "" {
		if err := schemas.ValidateJSON(validateSchema, path); err != nil {
			return err
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := schemas.ValidateResultJSON(data); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", path)
	return nil
}
