package generation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/safework/swmsgen/internal/domain"
	"github.com/safework/swmsgen/internal/llm"
)

// ErrNoTaskArray indicates the response parsed as JSON but no field could
// be recognised as a task list. The orchestrator treats it like any other
// malformed response and falls back.
var ErrNoTaskArray = errors.New("no recognizable task array in response")

// rawTask is the canonical internal shape every response variant funnels
// into. Nothing outside this file inspects raw generator output.
type rawTask struct {
	activity    string
	description string
	hazards     []string
	initial     int
	residual    int
	controls    []string
	legislation []string
	responsible string
	ppe         []string
	tools       []string
	training    []string
	scope       string
	scopeReason string
	hrcwRefs    []int
	permits     []string
}

// nameKeys are the fields that mark a JSON object as a task record, in
// preference order, matched case-insensitively.
var nameKeys = []string{"activity", "task", "name", "title", "workActivity"}

// Normalize maps a raw generator response onto canonical risk assessments.
//
// The generator does not reliably use one top-level key for its task list;
// observed payloads carry "activities", "tasks", "SWMS_Tasks" and ad-hoc
// trade-specific names. Normalize sniffs the first array-valued field
// whose elements look like task records, fills missing sub-fields with
// trade-appropriate defaults, and drops tasks the generator itself tagged
// as outside the trade scope.
func Normalize(rawText, trade, state string) ([]domain.RiskAssessment, []string, error) {
	obj, err := llm.ExtractObject(rawText)
	if err != nil {
		return nil, nil, err
	}

	records := findTaskArray(obj)
	if records == nil {
		return nil, nil, fmt.Errorf("%w: top-level keys %v", ErrNoTaskArray, topLevelKeys(obj))
	}

	var assessments []domain.RiskAssessment
	var warnings []string
	for _, rec := range records {
		m, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		rt := parseRawTask(m)
		if rt.activity == "" {
			continue
		}
		if !withinScope(rt.scope) {
			reason := rt.scopeReason
			if reason == "" {
				reason = "tagged out of scope by the generator"
			}
			warnings = append(warnings, fmt.Sprintf("dropped out-of-scope task %q: %s", rt.activity, reason))
			continue
		}
		assessments = append(assessments, finishTask(rt, trade, state))
	}

	if len(assessments) == 0 {
		return nil, warnings, fmt.Errorf("%w: task array contained no usable records", ErrNoTaskArray)
	}
	return assessments, warnings, nil
}

// findTaskArray locates the first array-valued field whose first object
// element carries a name-like field. Preference is given to well-known
// keys before falling back to a full scan, so a payload carrying both
// "tasks" and an unrelated array normalizes predictably.
func findTaskArray(obj map[string]any) []any {
	for _, key := range []string{"tasks", "activities", "SWMS_Tasks", "swms_tasks", "taskList"} {
		if arr := taskArrayAt(obj, key); arr != nil {
			return arr
		}
	}
	for key := range obj {
		if arr := taskArrayAt(obj, key); arr != nil {
			return arr
		}
	}
	return nil
}

func taskArrayAt(obj map[string]any, key string) []any {
	v, ok := lookupFold(obj, key)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return nil
	}
	first, ok := arr[0].(map[string]any)
	if !ok {
		return nil
	}
	for _, nk := range nameKeys {
		if s, _ := stringAt(first, nk); s != "" {
			return arr
		}
	}
	return nil
}

func parseRawTask(m map[string]any) rawTask {
	var rt rawTask
	rt.activity = firstString(m, nameKeys...)
	rt.description = firstString(m, "description", "details", "summary")
	rt.hazards = hazardList(m)
	rt.initial = firstInt(m, "initialRiskScore", "initial_risk_score", "initialRisk", "riskScore", "risk_score")
	rt.residual = firstInt(m, "residualRiskScore", "residual_risk_score", "residualRisk")
	rt.controls = firstStringList(m, "controlMeasures", "control_measures", "controls", "safetyMeasures")
	rt.legislation = firstStringList(m, "legislation", "regulations", "complianceCodes")
	rt.responsible = firstString(m, "responsible", "responsiblePerson", "accountable")
	rt.ppe = firstStringList(m, "ppe", "PPE", "ppeRequired")
	rt.tools = firstStringList(m, "tools", "equipment", "plant")
	rt.training = firstStringList(m, "trainingRequired", "training", "licences", "competencies")
	rt.scope = firstString(m, "isTaskWithinTradeScope", "withinTradeScope", "inScope")
	rt.scopeReason = firstString(m, "scopeReason", "scope_reason")
	rt.hrcwRefs = intList(m, "hrcwReferences", "hrcw_references", "hrcwCategories")
	rt.permits = firstStringList(m, "permitRequired", "permits_required", "permits")
	return rt
}

// finishTask fills the gaps a partial record leaves: trade defaults for
// hazards, controls, PPE and training, jurisdiction legislation, and risk
// scores clamped to the 1-16 scale.
func finishTask(rt rawTask, trade, state string) domain.RiskAssessment {
	d := defaultsForTrade(trade)

	ra := domain.RiskAssessment{
		Activity:          rt.activity,
		Description:       rt.description,
		Hazards:           rt.hazards,
		ControlMeasures:   rt.controls,
		Legislation:       rt.legislation,
		Responsible:       rt.responsible,
		PPE:               rt.ppe,
		Tools:             rt.tools,
		TrainingRequired:  rt.training,
		InitialRiskScore:  clampRisk(rt.initial, 8),
		ResidualRiskScore: clampRisk(rt.residual, 3),
		HRCWReferences:    rt.hrcwRefs,
		PermitRequired:    rt.permits,
	}

	if len(ra.Hazards) == 0 {
		ra.Hazards = append([]string(nil), d.hazards...)
	}
	if len(ra.ControlMeasures) == 0 {
		ra.ControlMeasures = append([]string(nil), d.controls...)
	}
	if len(ra.Legislation) == 0 {
		ra.Legislation = []string{"Work Health and Safety Act 2011 s19", StateRegulation(state)}
	}
	if len(ra.PPE) == 0 {
		ra.PPE = append([]string(nil), d.ppe...)
	}
	if len(ra.Tools) == 0 {
		ra.Tools = append([]string(nil), d.tools...)
	}
	if len(ra.TrainingRequired) == 0 {
		ra.TrainingRequired = append([]string(nil), d.training...)
	}
	if ra.Responsible == "" {
		ra.Responsible = "Site Supervisor"
	}
	if ra.ResidualRiskScore > ra.InitialRiskScore {
		ra.ResidualRiskScore = ra.InitialRiskScore
	}
	return ra
}

func clampRisk(n, fallback int) int {
	if n == 0 {
		return fallback
	}
	if n < domain.MinRiskScore {
		return domain.MinRiskScore
	}
	if n > domain.MaxRiskScore {
		return domain.MaxRiskScore
	}
	return n
}

// hazardList accepts both hazard shapes: plain strings, and the
// three-part {cause, context, consequence} objects the prompt asks for,
// which are flattened into one cause+context+consequence statement.
func hazardList(m map[string]any) []string {
	v, ok := lookupFold(m, "hazards")
	if !ok {
		if v, ok = lookupFold(m, "hazard"); !ok {
			if v, ok = lookupFold(m, "risks"); !ok {
				return nil
			}
		}
	}

	switch h := v.(type) {
	case string:
		if h == "" {
			return nil
		}
		return []string{h}
	case []any:
		var out []string
		for _, item := range h {
			switch hv := item.(type) {
			case string:
				if hv != "" {
					out = append(out, hv)
				}
			case map[string]any:
				if s := flattenHazard(hv); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	default:
		return nil
	}
}

func flattenHazard(m map[string]any) string {
	cause := firstString(m, "cause", "agent", "hazard")
	context := firstString(m, "context", "situation", "environment")
	consequence := firstString(m, "consequence", "outcome", "injury")

	parts := make([]string, 0, 3)
	for _, p := range []string{cause, context, consequence} {
		if p != "" {
			parts = append(parts, strings.TrimRight(p, "."))
		}
	}
	return strings.Join(parts, " — ")
}

func lookupFold(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func stringAt(m map[string]any, key string) (string, bool) {
	v, ok := lookupFold(m, key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return strings.TrimSpace(s), ok
}

func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, _ := stringAt(m, key); s != "" {
			return s
		}
	}
	return ""
}

func firstInt(m map[string]any, keys ...string) int {
	for _, key := range keys {
		v, ok := lookupFold(m, key)
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case string:
			if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				return parsed
			}
		}
	}
	return 0
}

func firstStringList(m map[string]any, keys ...string) []string {
	for _, key := range keys {
		v, ok := lookupFold(m, key)
		if !ok {
			continue
		}
		switch list := v.(type) {
		case string:
			if list != "" {
				return []string{list}
			}
		case []any:
			var out []string
			for _, item := range list {
				if s, ok := item.(string); ok && s != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

func intList(m map[string]any, keys ...string) []int {
	for _, key := range keys {
		v, ok := lookupFold(m, key)
		if !ok {
			continue
		}
		arr, ok := v.([]any)
		if !ok {
			continue
		}
		var out []int
		for _, item := range arr {
			switch n := item.(type) {
			case float64:
				out = append(out, int(n))
			case string:
				if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
					out = append(out, parsed)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func topLevelKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	return keys
}
