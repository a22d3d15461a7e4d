package main

import (
	"fmt"
	nethttp "net/http"

	"github.com/spf13/cobra"

	"github.com/aretw0/wicker/internal/cli"
	"github.com/aretw0/wicker/pkg/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the codec over HTTP",
	Long:  `Starts an HTTP server exposing POST /decode, POST /encode and GET /metrics for the schema given with --schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath, _ := cmd.Flags().GetString("schema")
		debug, _ := cmd.Flags().GetBool("debug")
		addr, _ := cmd.Flags().GetString("addr")
		if schemaPath == "" {
			return fmt.Errorf("--schema is required")
		}

		logger := cli.CreateLogger(debug)
		eng, err := cli.BuildEngine(schemaPath, logger)
		if err != nil {
			return err
		}

		fmt.Printf("Serving %s on %s\n", schemaPath, addr)
		return nethttp.ListenAndServe(addr, http.NewHandler(eng))
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
