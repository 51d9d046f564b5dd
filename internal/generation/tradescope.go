package generation

import "strings"

// TradeScope is the hand-authored boundary of work a trade may perform.
// InScope and Forbidden are enumerated verbatim in the prompt so the
// generator can tag each task with a scope-validation verdict.
type TradeScope struct {
	Trade     string
	InScope   []string
	Forbidden []string
}

var tradeScopes = map[string]TradeScope{
	"Tiling & Waterproofing": {
		Trade: "Tiling & Waterproofing",
		InScope: []string{
			"Surface and substrate preparation",
			"Tile cutting, fixing and grouting",
			"Waterproof membrane application to wet areas",
			"Silicone sealing and finishing of tiled surfaces",
			"Screeding and levelling beds for tiling",
		},
		Forbidden: []string{
			"Electrical work of any kind, including relocating outlets",
			"Plumbing alterations such as moving drainage or water supply",
			"Structural alterations to walls or floors",
			"Demolition beyond removing existing tiles and beds",
		},
	},
	"Carpentry": {
		Trade: "Carpentry",
		InScope: []string{
			"Wall, floor and roof framing in timber",
			"Roof truss and batten installation",
			"Formwork, fixings and structural timber connections",
			"Door, window and joinery installation",
			"Scaffold erection by licensed workers",
		},
		Forbidden: []string{
			"Electrical work of any kind",
			"Plumbing and gas fitting",
			"Waterproofing of wet areas",
			"Asbestos removal",
		},
	},
	"Electrical": {
		Trade: "Electrical",
		InScope: []string{
			"Cable installation and rough-in",
			"Switchboard installation, termination and upgrades",
			"Lighting, power and data fit-off",
			"Testing, verification and commissioning of circuits",
			"Isolation and lockout of electrical supply",
		},
		Forbidden: []string{
			"Structural carpentry or framing beyond minor penetrations",
			"Plumbing work",
			"Work on energised conductors except licensed live testing",
			"Asbestos drilling or removal",
		},
	},
}

// ScopeForTrade returns the scope table for a trade. Unknown trades get a
// generic scope that forbids licensed electrical, plumbing and asbestos
// work, which the regulator restricts regardless of trade.
func ScopeForTrade(trade string) TradeScope {
	if scope, ok := tradeScopes[trade]; ok {
		return scope
	}
	return TradeScope{
		Trade: trade,
		InScope: []string{
			"Tasks ordinarily performed by a licensed " + trade + " contractor",
		},
		Forbidden: []string{
			"Electrical work of any kind",
			"Plumbing and gas fitting",
			"Asbestos removal",
		},
	}
}

// withinScope reports whether a scope verdict string means in-scope.
// The generator is instructed to answer YES or NO but variants appear.
func withinScope(verdict string) bool {
	v := strings.ToUpper(strings.TrimSpace(verdict))
	if v == "" {
		return true // untagged tasks are kept
	}
	return strings.HasPrefix(v, "YES") || v == "TRUE" || v == "IN_SCOPE"
}
