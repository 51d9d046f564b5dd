package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/safework/swmsgen/internal/cli/formatter"
	"github.com/safework/swmsgen/internal/domain"
	"github.com/safework/swmsgen/internal/generation"
	"github.com/safework/swmsgen/internal/history"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		trade       string
		state       string
		activities  []string
		description string
		location    string
		environment string
		hrcw        []int
		asJSON      bool
	)

	var requestPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a SWMS document for a trade",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req domain.GenerateRequest
			if requestPath != "" {
				data, err := os.ReadFile(requestPath)
				if err != nil {
					return fmt.Errorf("reading request file: %w", err)
				}
				if err := json.Unmarshal(data, &req); err != nil {
					return fmt.Errorf("parsing request file: %w", err)
				}
			} else {
				req = domain.GenerateRequest{
					TradeType:          trade,
					SelectedActivities: activities,
					ProjectDetails: domain.ProjectDetails{
						Location:        location,
						State:           state,
						SiteEnvironment: environment,
						HRCWCategories:  hrcw,
					},
					PlainTextDescription: description,
				}
			}

			if req.TradeType == "" {
				return fmt.Errorf("--trade is required")
			}
			for _, id := range req.ProjectDetails.HRCWCategories {
				if _, ok := generation.HRCWByID(id); !ok {
					return fmt.Errorf("unknown HRCW category %d (valid range 1-18)", id)
				}
			}

			start := time.Now()
			doc := app.Service.Generate(cmd.Context(), req)
			elapsed := time.Since(start)

			if app.History != nil {
				recordRun(cmd.Context(), app, doc, elapsed)
			}

			if !asJSON && app.IsTerminal != nil && !app.IsTerminal() {
				asJSON = true
			}
			if asJSON {
				enc := json.NewEncoder(app.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			}

			fmt.Fprintln(app.Out, formatter.RenderDocument(doc))
			return nil
		},
	}

	cmd.Flags().StringVar(&trade, "trade", "", "Trade type, e.g. \"Tiling & Waterproofing\"")
	cmd.Flags().StringVar(&state, "state", "NSW", "Australian state or territory code")
	cmd.Flags().StringSliceVar(&activities, "activity", nil, "Selected work activity (repeatable)")
	cmd.Flags().StringVar(&description, "description", "", "Free-text description of the work")
	cmd.Flags().StringVar(&location, "location", "", "Site location")
	cmd.Flags().StringVar(&environment, "environment", "", "Site environment, e.g. \"occupied residence\"")
	cmd.Flags().IntSliceVar(&hrcw, "hrcw", nil, "Declared HRCW category number (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the document as JSON")
	cmd.Flags().StringVar(&requestPath, "request", "", "Read the full request from a JSON file instead of flags")

	return cmd
}

// recordRun best-effort writes the audit entry. A history failure never
// fails the generation command.
func recordRun(ctx context.Context, app *App, doc *domain.GeneratedDocument, elapsed time.Duration) {
	err := app.History.Record(ctx, &history.RunRecord{
		ID:            uuid.NewString(),
		DocumentID:    doc.ID,
		Trade:         doc.Trade,
		State:         doc.State,
		Source:        doc.Source,
		ActivityCount: len(doc.RiskAssessments),
		WarningCount:  len(doc.Warnings),
		DurationMs:    elapsed.Milliseconds(),
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		fmt.Fprintf(app.Out, "warning: could not record run history: %v\n", err)
	}
}
