package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"llmcomplete/internal/tasks"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [instructions]",
	Short: "Generate example JSON data conforming to schemas",
	Long: `Ask the model for example data conforming to one or more JSON schemas.
Image fields are normalized to Unsplash URLs and icon fields to react-icons
references.

Examples:
  llmcomplete generate --schema card.json "pricing cards for a SaaS product"
  llmcomplete generate --schema hero.json --schema cta.json --count 3`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringArray("schema", nil, "path to a JSON schema (repeatable)")
	generateCmd.Flags().IntP("count", "n", 1, "number of examples to generate")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	schemaPaths, _ := cmd.Flags().GetStringArray("schema")
	count, _ := cmd.Flags().GetInt("count")

	if len(schemaPaths) == 0 {
		return fmt.Errorf("at least one --schema is required")
	}

	schemas := make([]json.RawMessage, 0, len(schemaPaths))
	for _, path := range schemaPaths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		schemas = append(schemas, raw)
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	generator := tasks.NewGenerator(a.resolver, a.logger)
	data, err := generator.Generate(cmd.Context(), schemas, strings.Join(args, " "), count)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
