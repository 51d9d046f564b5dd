package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/safework/swmsgen/internal/catalog"
	"github.com/safework/swmsgen/internal/cli"
	"github.com/safework/swmsgen/internal/generation"
	"github.com/safework/swmsgen/internal/history"
	"github.com/safework/swmsgen/internal/llm"
	"github.com/safework/swmsgen/internal/resolver"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The embedded catalog must be internally consistent; refuse to start
	// on any integrity violation.
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading task catalog: %w", err)
	}

	var ai *generation.AIGenerator
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		ai = generation.NewAIGenerator(llm.NewChatClient(llmCfg, observer))
	}

	app := &cli.App{
		Catalog: cat,
		Service: generation.NewService(resolver.New(cat), ai),
		Out:     os.Stdout,
	}
	app.IsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// Run history: env var or default ~/.swmsgen/history.db. "off" disables.
	historyPath := os.Getenv("SWMSGEN_HISTORY_DB")
	if historyPath != "off" {
		if historyPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			historyPath = filepath.Join(home, ".swmsgen", "history.db")
		}
		db, err := history.OpenDB(historyPath)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		defer db.Close()
		app.History = history.NewStore(db)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
