package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/wicker/internal/cli"
)

var decodeCmd = &cobra.Command{
	Use:   "decode FILE",
	Short: "Decode a binary file into a structured value",
	Long:  `Decodes a binary file under the schema given with --schema and prints the decoded value as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath, _ := cmd.Flags().GetString("schema")
		debug, _ := cmd.Flags().GetBool("debug")
		output, _ := cmd.Flags().GetString("output")
		if schemaPath == "" {
			return fmt.Errorf("--schema is required")
		}

		logger := cli.CreateLogger(debug)
		eng, err := cli.BuildEngine(schemaPath, logger)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		value, err := eng.ParseBuffer(data)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", args[0], err)
		}

		encoded, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render value: %w", err)
		}
		encoded = append(encoded, '\n')

		if output == "" {
			_, err = os.Stdout.Write(encoded)
			return err
		}
		return os.WriteFile(output, encoded, 0o644)
	},
}

func init() {
	decodeCmd.Flags().StringP("output", "o", "", "Write the decoded JSON to a file instead of stdout")
	rootCmd.AddCommand(decodeCmd)
}
