package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"llmcomplete/internal/llm"
)

var completeCmd = &cobra.Command{
	Use:   "complete [flags] <prompt>",
	Short: "Request a text or JSON completion",
	Long: `Send a completion request through the primary provider, failing over
to the fallback provider on transient errors.

Examples:
  llmcomplete complete "Explain goroutine scheduling"
  llmcomplete complete --system "You are terse" "Explain goroutine scheduling"
  llmcomplete complete --json "List three Go proverbs as an array"
  llmcomplete complete --json --schema person.json "Generate a sample person"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().StringP("system", "s", "", "system instructions")
	completeCmd.Flags().Int("max-tokens", 0, "response token limit (0 = configured default)")
	completeCmd.Flags().Float64P("temperature", "t", 0, "sampling temperature in [0,2] (0 = configured default)")
	completeCmd.Flags().Bool("json", false, "require a JSON reply and print it re-indented")
	completeCmd.Flags().String("schema", "", "path to a JSON schema the reply must conform to (implies --json)")

	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	system, _ := cmd.Flags().GetString("system")
	maxTokens, _ := cmd.Flags().GetInt("max-tokens")
	temperature, _ := cmd.Flags().GetFloat64("temperature")
	asJSON, _ := cmd.Flags().GetBool("json")
	schemaPath, _ := cmd.Flags().GetString("schema")

	a, err := newApp()
	if err != nil {
		return err
	}

	req := &llm.Request{
		Prompt:       strings.Join(args, " "),
		SystemPrompt: system,
		MaxTokens:    maxTokens,
		Temperature:  temperature,
	}

	if schemaPath != "" {
		schema, err := os.ReadFile(schemaPath)
		if err != nil {
			return err
		}
		req.Schema = schema
		asJSON = true
	}

	ctx := cmd.Context()

	if asJSON {
		res, err := a.resolver.Resolve(ctx, req)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(res.Value, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		a.logger.Debug().Str("provider", res.Provider).Int("attempts", res.Attempts).Msg("done")
		return nil
	}

	res, err := a.client.Complete(ctx, req)
	if err != nil {
		return err
	}
	fmt.Println(res.Text)
	a.logger.Debug().Str("provider", res.Provider).Int("attempts", res.Attempts).Msg("done")
	return nil
}
