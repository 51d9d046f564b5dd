package catalog

import (
	"fmt"
	"strings"

	"github.com/safework/swmsgen/internal/domain"
)

// IntegrityError reports catalog data violations found at load time.
// It is a programming/data error, never a per-request condition.
type IntegrityError struct {
	Violations []error
}

func (e *IntegrityError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("catalog integrity: %d violation(s): %s",
		len(e.Violations), strings.Join(msgs, "; "))
}

// validate checks every structural invariant the rest of the engine
// assumes. Returns a slice of violations (empty if valid).
func validate(c *Catalog) []error {
	var errs []error

	seen := map[string]bool{}
	for i, t := range c.tasks {
		if t.TaskID == "" {
			errs = append(errs, fmt.Errorf("task[%d]: id is required", i))
			continue
		}
		if seen[t.TaskID] {
			errs = append(errs, fmt.Errorf("task %q: duplicate id", t.TaskID))
		}
		seen[t.TaskID] = true

		if t.Activity == "" {
			errs = append(errs, fmt.Errorf("task %q: activity is required", t.TaskID))
		}
		if t.Trade == "" {
			errs = append(errs, fmt.Errorf("task %q: trade is required", t.TaskID))
		}
		if len(t.Hazards) == 0 {
			errs = append(errs, fmt.Errorf("task %q: at least one hazard is required", t.TaskID))
		}
		if len(t.ControlMeasures) == 0 {
			errs = append(errs, fmt.Errorf("task %q: at least one control measure is required", t.TaskID))
		}
		if !domain.ValidRiskScore(t.InitialRiskScore) {
			errs = append(errs, fmt.Errorf("task %q: initial risk %d outside scale %d-%d",
				t.TaskID, t.InitialRiskScore, domain.MinRiskScore, domain.MaxRiskScore))
		}
		if !domain.ValidRiskScore(t.ResidualRiskScore) {
			errs = append(errs, fmt.Errorf("task %q: residual risk %d outside scale %d-%d",
				t.TaskID, t.ResidualRiskScore, domain.MinRiskScore, domain.MaxRiskScore))
		}
		if t.ResidualRiskScore > t.InitialRiskScore {
			errs = append(errs, fmt.Errorf("task %q: residual risk %d exceeds initial risk %d",
				t.TaskID, t.ResidualRiskScore, t.InitialRiskScore))
		}
		if t.Frequency != "" && !domain.ValidFrequencies[string(t.Frequency)] {
			errs = append(errs, fmt.Errorf("task %q: unknown frequency %q", t.TaskID, t.Frequency))
		}
		if t.Complexity != "" && !domain.ValidComplexities[string(t.Complexity)] {
			errs = append(errs, fmt.Errorf("task %q: unknown complexity %q", t.TaskID, t.Complexity))
		}
	}

	// Related-task references must resolve; expansion at request time
	// assumes the graph is closed.
	for _, t := range c.tasks {
		for _, ref := range t.RelatedTasks {
			if _, ok := c.byID[ref]; !ok {
				errs = append(errs, fmt.Errorf("task %q: related task %q does not exist", t.TaskID, ref))
			}
			if ref == t.TaskID {
				errs = append(errs, fmt.Errorf("task %q: related task references itself", t.TaskID))
			}
		}
	}

	return errs
}
