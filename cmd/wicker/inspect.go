package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/wicker/internal/cli"
	"github.com/aretw0/wicker/pkg/registry"
	"github.com/aretw0/wicker/pkg/schema"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the reified schema tree",
	Long:  `Loads the schema description given with --schema, rebuilds the live tree through the type registry and prints its structure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath, _ := cmd.Flags().GetString("schema")
		if schemaPath == "" {
			return fmt.Errorf("--schema is required")
		}

		desc, err := cli.LoadDescription(schemaPath)
		if err != nil {
			return err
		}
		root, err := registry.Make(desc)
		if err != nil {
			return err
		}

		printNode(root, 0)
		return nil
	},
}

func printNode(node schema.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	label := node.TypeName()
	if node.Name() != "" {
		label = node.Name() + ": " + label
	}
	if args := node.Args(); len(args) > 0 {
		label = fmt.Sprintf("%s %v", label, args)
	}
	fmt.Printf("%s%s\n", indent, label)
	for _, child := range node.Children() {
		printNode(child, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
