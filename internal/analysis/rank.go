package analysis

import (
	"sort"

	"scenario-model/internal/engine"
)

// RankByEBIT orders scenario results best-first by EBIT. The input slice
// is left untouched; ties keep the canonical scenario order.
func RankByEBIT(results []engine.ScenarioResult) []engine.ScenarioResult {
	out := make([]engine.ScenarioResult, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PnL.EBIT.GreaterThan(out[j].PnL.EBIT)
	})
	return out
}
