package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"llmcomplete/internal/config"
	"llmcomplete/internal/llm"
	"llmcomplete/internal/structured"
)

var rootCmd = &cobra.Command{
	Use:   "llmcomplete",
	Short: "LLM completion client with automatic provider fallback",
	Long: `llmcomplete sends text and JSON completion requests to a primary LLM
provider and fails over to a fallback provider automatically.

Configuration comes from the environment (or a .env file):
  ANTHROPIC_API_KEY, ANTHROPIC_MODEL, ANTHROPIC_MAX_RETRIES, ANTHROPIC_TIMEOUT
  OPENAI_API_KEY, OPENAI_MODEL, OPENAI_MAX_RETRIES, OPENAI_TIMEOUT
  MAX_TOKENS, TEMPERATURE

Examples:
  llmcomplete complete "Summarize the Go memory model"
  llmcomplete complete --json --schema person.json "Generate a person"
  llmcomplete convert Button.jsx
  llmcomplete tags search hero
  llmcomplete generate --schema card.json --count 3 "pricing cards"`,
	SilenceUsage: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// app bundles the pieces commands share. Construction fails fast on
// configuration defects, before any request is accepted.
type app struct {
	cfg      *config.Config
	client   *llm.Client
	resolver *structured.Resolver
	logger   zerolog.Logger
}

func newApp() (*app, error) {
	_ = godotenv.Load()

	logger := newLogger()

	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	client, err := llm.NewClientFromConfig(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		client:   client,
		resolver: structured.NewResolver(client, logger),
		logger:   logger,
	}, nil
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}
