package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/wicker/internal/cli"
)

var encodeCmd = &cobra.Command{
	Use:   "encode VALUE.json",
	Short: "Encode a JSON value into binary",
	Long:  `Encodes a JSON value under the schema given with --schema and writes the wire bytes.`,
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
			return fmt.Errorf("failed to read value: %w", err)
		}
		var value map[string]any
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("failed to parse value: %w", err)
		}

		wire, err := eng.EncodeObject(value)
		if err != nil {
			return fmt.Errorf("failed to encode: %w", err)
		}

		if output == "" {
			_, err = os.Stdout.Write(wire)
			return err
		}
		return os.WriteFile(output, wire, 0o644)
	},
}

func init() {
	encodeCmd.Flags().StringP("output", "o", "", "Write the wire bytes to a file instead of stdout")
	rootCmd.AddCommand(encodeCmd)
}
