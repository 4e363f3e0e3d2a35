package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"llmcomplete/internal/tags"
	"llmcomplete/internal/tasks"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Query the landing-page component tag catalog",
}

var tagsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tags by substring or category name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := tags.NewManager()
		if err != nil {
			return err
		}
		for _, tag := range m.Search(args[0]) {
			fmt.Println(tag)
		}
		return nil
	},
}

var tagsListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List all tags, or the tags of one category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, cat := range tags.Categories() {
				list, _ := tags.ByCategory(cat)
				fmt.Printf("%s: %s\n", cat, strings.Join(list, ", "))
			}
			return nil
		}
		list, ok := tags.ByCategory(args[0])
		if !ok {
			return fmt.Errorf("unknown category %q (available: %s)", args[0], strings.Join(tags.Categories(), ", "))
		}
		for _, tag := range list {
			fmt.Println(tag)
		}
		return nil
	},
}

var tagsSuggestCmd = &cobra.Command{
	Use:   "suggest <component>",
	Short: "Show the recommended tag set for a component",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := tags.NewManager()
		if err != nil {
			return err
		}
		recommended := m.RecommendedFor(args[0])
		if len(recommended) == 0 {
			fmt.Printf("no tag suggestions for %q\n", args[0])
			return nil
		}
		fmt.Println(strings.Join(recommended, ", "))
		return nil
	},
}

var tagsCombosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Recommend a component line-up for a landing page",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		focus, _ := cmd.Flags().GetString("focus")
		m, err := tags.NewManager()
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(m.Combinations(count, focus), ", "))
		return nil
	},
}

var tagsPickCmd = &cobra.Command{
	Use:   "pick <count> <component>...",
	Short: "Ask the model to pick components for a landing page",
	Long: `Select landing-page components from the given candidates using the
completion client; requires provider API keys.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var count int
		if _, err := fmt.Sscanf(args[0], "%d", &count); err != nil {
			return fmt.Errorf("count must be an integer, got %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		finder := tasks.NewTagFinder(a.resolver, a.logger)
		selected, err := finder.Find(cmd.Context(), args[1:], count)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(selected, ", "))
		return nil
	},
}

func init() {
	tagsCombosCmd.Flags().Int("count", 5, "number of components to recommend")
	tagsCombosCmd.Flags().String("focus", "", "focus area (conversion, trust, awareness, engagement)")

	tagsCmd.AddCommand(tagsSearchCmd, tagsListCmd, tagsSuggestCmd, tagsCombosCmd, tagsPickCmd)
	rootCmd.AddCommand(tagsCmd)
}
