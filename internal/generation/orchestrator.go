package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/safework/swmsgen/internal/aggregate"
	"github.com/safework/swmsgen/internal/domain"
	"github.com/safework/swmsgen/internal/resolver"
)

// Service is the single entry point for document synthesis. It tries the
// AI path when one is configured, recovers via the deterministic fallback
// on any failure, and always applies catalog-driven enrichment, so every
// call returns a usable document.
type Service struct {
	resolver *resolver.Resolver
	ai       *AIGenerator // nil disables the AI path
}

// NewService creates a Service. Pass a nil AIGenerator to run fully
// deterministic.
func NewService(r *resolver.Resolver, ai *AIGenerator) *Service {
	return &Service{resolver: r, ai: ai}
}

// Generate synthesizes a complete document for the request. Per-request
// failures are recovered internally and reported through doc.Warnings;
// the returned document is never nil and never empty.
func (s *Service) Generate(ctx context.Context, req domain.GenerateRequest) *domain.GeneratedDocument {
	trade := req.TradeType
	details := req.ProjectDetails

	res := s.resolver.Resolve(req.SelectedActivities, trade)
	warnings := res.Warnings
	catalogDoc := aggregate.Aggregate(res.Tasks, trade, details.State)

	var doc *domain.GeneratedDocument
	if s.ai != nil {
		assessments, aiWarnings, err := s.ai.Generate(ctx, req)
		warnings = append(warnings, aiWarnings...)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("ai generation unavailable (%v); deterministic generator used", err))
		} else {
			ApplyHRCW(assessments, details.HRCWCategories)
			doc = &domain.GeneratedDocument{
				ID:                  uuid.NewString(),
				Trade:               trade,
				State:               details.State,
				Source:              "ai",
				SafetyMeasures:      aggregate.SafetyMeasures(trade),
				EmergencyProcedures: aggregate.EmergencyProcedures(trade, details.State),
				GeneralRequirements: aggregate.GeneralRequirements(trade, details.State),
			}
			aggregate.MergeAssessments(doc, assessments)
		}
	}
	if doc == nil {
		doc = Fallback(trade, fallbackDescription(req), details.SiteEnvironment,
			details.State, details.HRCWCategories)
	}

	// Catalog enrichment is applied on both paths: resolved tasks are
	// merged behind the generated assessments, first occurrence winning.
	ApplyHRCW(catalogDoc.RiskAssessments, details.HRCWCategories)
	aggregate.MergeAssessments(doc, catalogDoc.RiskAssessments)

	doc.ProjectSpecific = projectSpecific(details.SiteEnvironment, details.Location)
	doc.Warnings = warnings
	return doc
}

// fallbackDescription gives the keyword scanner everything the user
// typed: the free-text description plus the selected activity names.
func fallbackDescription(req domain.GenerateRequest) string {
	parts := append([]string{req.PlainTextDescription}, req.SelectedActivities...)
	return strings.Join(parts, " ")
}
