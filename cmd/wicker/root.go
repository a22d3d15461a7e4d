package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wicker",
	Short: "Wicker is a declarative binary codec engine",
	Long:  `Wicker describes binary formats as schema trees and uses one tree to both decode files into structured values and encode values back into bit-exact bytes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("schema", "s", "", "Schema description file (.yaml, .json or .cbor)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}
