package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/wicker"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wicker",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wicker version %s\n", strings.TrimSpace(wicker.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
