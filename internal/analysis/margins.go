package analysis

import (
	"github.com/shopspring/decimal"

	"scenario-model/internal/engine"
)

// MarginSummary carries the percentage metrics the pitch tables show next
// to the absolute P&L figures. Percentages are 0 when the denominator is 0
// (no revenue, no units), matching how the dashboard guards its divisions.
type MarginSummary struct {
	GrossMarginPct float64
	EBITMarginPct  float64

	// BlendedContributionPerUnit is gross profit spread over all units,
	// B2B and B2C together. It is the margin the breakeven tab feeds in
	// when a scenario (rather than a single product line) is analysed.
	BlendedContributionPerUnit decimal.Decimal
}

var decimalHundred = decimal.NewFromInt(100)

// Summarize derives margin metrics from a P&L and its total unit count.
func Summarize(p engine.PnLStatement, totalUnits float64) MarginSummary {
	var s MarginSummary
	if p.Revenue.IsPositive() {
		s.GrossMarginPct = p.GrossProfit.Div(p.Revenue).Mul(decimalHundred).InexactFloat64()
		s.EBITMarginPct = p.EBIT.Div(p.Revenue).Mul(decimalHundred).InexactFloat64()
	}
	if totalUnits > 0 {
		s.BlendedContributionPerUnit = p.GrossProfit.Div(decimal.NewFromFloat(totalUnits))
	}
	return s
}

// SummarizeScenario is Summarize applied to a scenario result.
func SummarizeScenario(r engine.ScenarioResult) MarginSummary {
	return Summarize(r.PnL, r.Volumes.Total())
}
