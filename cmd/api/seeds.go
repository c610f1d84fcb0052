package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"exampleapi/internal/config"
)

var seedsCmd = &cobra.Command{
	Use:   "seeds",
	Short: "Print the seed examples the server would start with",
	Long: `Seeds resolves the initial examples the same way the server does and
prints them as JSON.

Resolution order:
  SEED_OBJECT_KEY  object in the configured MinIO bucket
  SEED_FILE        local JSON file
  otherwise        the built-in Docs, Learn, Templates and Deploy entries`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		seeds, err := resolveSeeds(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(seeds)
	},
}
