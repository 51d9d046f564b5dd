package generation

import (
	"context"
	"fmt"

	"github.com/safework/swmsgen/internal/domain"
	"github.com/safework/swmsgen/internal/llm"
)

// AIGenerator drives the external model under the SWMS output contract
// and normalizes whatever shape comes back.
type AIGenerator struct {
	client llm.Client
}

// NewAIGenerator creates an AIGenerator over a generation client.
func NewAIGenerator(client llm.Client) *AIGenerator {
	return &AIGenerator{client: client}
}

// Generate produces risk assessments for the request via one bounded chat
// call. Timeouts surface as llm.ErrTimeout and unrecognizable payloads as
// ErrNoTaskArray; the orchestrator recovers from both by falling back.
func (g *AIGenerator) Generate(ctx context.Context, req domain.GenerateRequest) ([]domain.RiskAssessment, []string, error) {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSWMS,
		SystemPrompt: buildSystemPrompt(req),
		UserPrompt:   buildUserPrompt(req),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("ai generation failed: %w", err)
	}

	assessments, warnings, err := Normalize(resp.Text, req.TradeType, req.ProjectDetails.State)
	if err != nil {
		return nil, warnings, fmt.Errorf("normalizing ai response: %w", err)
	}
	return assessments, warnings, nil
}
