package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"llmcomplete/internal/tasks"
)

var convertCmd = &cobra.Command{
	Use:   "convert <component-file>",
	Short: "Convert a React component to TypeScript",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var processCmd = &cobra.Command{
	Use:   "process <component-file>...",
	Short: "Convert a batch of React components concurrently",
	Long: `Convert several components in parallel; each result is written next
to its source as <name>.conversion.json.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().IntP("concurrency", "c", 4, "maximum conversions in flight")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(processCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	conv, err := convertFile(cmd, a, args[0])
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(conv, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runProcess(cmd *cobra.Command, args []string) error {
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	a, err := newApp()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(concurrency)

	for _, path := range args {
		g.Go(func() error {
			source, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			converter := tasks.NewConverter(a.client, a.logger)
			conv, err := converter.Convert(ctx, string(source))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			out, err := json.MarshalIndent(conv, "", "  ")
			if err != nil {
				return err
			}
			dest := strings.TrimSuffix(path, filepath.Ext(path)) + ".conversion.json"
			if err := os.WriteFile(dest, out, 0o644); err != nil {
				return err
			}
			a.logger.Info().Str("source", path).Str("dest", dest).Msg("component processed")
			return nil
		})
	}
	return g.Wait()
}

func convertFile(cmd *cobra.Command, a *app, path string) (*tasks.Conversion, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	converter := tasks.NewConverter(a.client, a.logger)
	return converter.Convert(cmd.Context(), string(source))
}
