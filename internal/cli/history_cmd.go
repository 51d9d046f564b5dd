package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safework/swmsgen/internal/cli/formatter"
	"github.com/safework/swmsgen/internal/history"
)

func newHistoryCmd(app *App) *cobra.Command {
	var (
		limit int
		trade string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent generation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.History == nil {
				return fmt.Errorf("run history is disabled (no history database configured)")
			}

			var (
				runs []*history.RunRecord
				err  error
			)
			if trade != "" {
				runs, err = app.History.ListByTrade(cmd.Context(), trade, limit)
			} else {
				runs, err = app.History.ListRecent(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(app.Out, "No generation runs recorded yet")
				return nil
			}

			fmt.Fprintln(app.Out, formatter.RenderRunTable(runs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to show")
	cmd.Flags().StringVar(&trade, "trade", "", "Limit to one trade")
	return cmd
}
