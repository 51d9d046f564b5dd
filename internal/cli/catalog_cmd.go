package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/safework/swmsgen/internal/cli/formatter"
	"github.com/safework/swmsgen/internal/domain"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the task catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogSearchCmd(app),
		newCatalogTradesCmd(app),
		newCatalogShowCmd(app),
	)

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	var trade string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog tasks, optionally for one trade",
		RunE: func(cmd *cobra.Command, args []string) error {
			var tasks []domain.TaskDefinition
			if trade != "" {
				tasks = app.Catalog.ByTrade(trade)
			} else {
				tasks = app.Catalog.Tasks()
			}
			fmt.Fprintln(app.Out, formatter.RenderTaskTable(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&trade, "trade", "", "Limit to one trade (universal tasks included)")
	return cmd
}

func newCatalogSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search tasks by activity, category, hazard or control text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			tasks := app.Catalog.Search(query)
			if len(tasks) == 0 {
				fmt.Fprintf(app.Out, "No tasks match %q\n", query)
				return nil
			}
			fmt.Fprintln(app.Out, formatter.RenderTaskTable(tasks))
			return nil
		},
	}
}

func newCatalogTradesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trades",
		Short: "List trades present in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, trade := range app.Catalog.Trades() {
				fmt.Fprintln(app.Out, trade)
			}
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one catalog task in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, ok := app.Catalog.ByID(args[0])
			if !ok {
				return fmt.Errorf("task not found: %q", args[0])
			}
			fmt.Fprintln(app.Out, formatter.RenderTask(task))
			return nil
		},
	}
}
