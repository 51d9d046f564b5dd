package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/safework/swmsgen/internal/catalog"
	"github.com/safework/swmsgen/internal/generation"
	"github.com/safework/swmsgen/internal/history"
)

// App holds everything CLI commands need. History may be nil when run
// auditing is disabled.
type App struct {
	Catalog *catalog.Catalog
	Service *generation.Service
	History *history.Store
	Out     io.Writer

	// IsTerminal reports whether output goes to an interactive terminal.
	// When false (piped output) generate emits JSON instead of styled text.
	IsTerminal func() bool
}

// NewRootCmd creates the top-level "swmsgen" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "swmsgen",
		Short:         "SWMS generator for Australian construction trades",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newCatalogCmd(app),
		newHistoryCmd(app),
	)

	return root
}
