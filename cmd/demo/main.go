package main

import (
	"flag"
	"fmt"

	"scenario-model/internal/analysis"
	"scenario-model/internal/config"
	"scenario-model/internal/engine"
	"scenario-model/internal/model"
)

// Demo:
// - Build the baseline Dubai assumption set (or load one from YAML)
// - Walk through market sizing, pilot P&L, Year-1 scenarios, breakeven
//   and the sensitivity sweep to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	a := model.DefaultAssumptions()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		a, err = cfg.Assumptions.ToModel()
		if err != nil {
			panic(err)
		}
	}

	demand, err := engine.ImpliedAnnualDemand(a.ActiveBikes, a.BagsPerBikePerYear)
	if err != nil {
		panic(err)
	}
	fmt.Printf("== Market sizing ==\n")
	fmt.Printf("%d bikes x %.2f bags/bike/year = %.0f bags/year\n\n", a.ActiveBikes, a.BagsPerBikePerYear, demand)

	pilot, err := engine.PilotPnL(a)
	if err != nil {
		panic(err)
	}
	fmt.Printf("== Pilot phase ==\n")
	fmt.Printf("revenue=%s gross=%s ebit=%s\n\n",
		pilot.Revenue.StringFixed(0), pilot.GrossProfit.StringFixed(0), pilot.EBIT.StringFixed(0))

	results, err := engine.Year1Scenarios(a)
	if err != nil {
		panic(err)
	}
	fmt.Printf("== Year 1 scenarios ==\n")
	for _, r := range results {
		s := analysis.SummarizeScenario(r)
		fmt.Printf("%-12s b2b=%.0f b2c=%.0f revenue=%s ebit=%s (gm %.1f%%)\n",
			r.Scenario, r.Volumes.B2B, r.Volumes.B2C,
			r.PnL.Revenue.StringFixed(0), r.PnL.EBIT.StringFixed(0), s.GrossMarginPct)
	}
	fmt.Println()

	base := results[1]
	contribution := analysis.SummarizeScenario(base).BlendedContributionPerUnit
	be, err := engine.BreakevenFromContribution(contribution, a.TotalFixedCosts())
	if err != nil {
		panic(err)
	}
	fmt.Printf("== Breakeven (base scenario, blended) ==\n")
	if be.Achievable {
		fmt.Printf("contribution/unit=%s breakeven=%d units\n\n", be.ContributionPerUnit.StringFixed(2), be.BreakevenUnits)
	} else {
		fmt.Printf("contribution/unit=%s breakeven not achievable\n\n", be.ContributionPerUnit.StringFixed(2))
	}

	rows, err := engine.SensitivityForAssumptions(a, engine.DefaultAdoptionRates, a.Year1B2CVolume[model.ScenarioBase])
	if err != nil {
		panic(err)
	}
	fmt.Printf("== Sensitivity (B2C fixed at %d units) ==\n", a.Year1B2CVolume[model.ScenarioBase])
	for _, r := range rows {
		fmt.Printf("rate=%.2f b2b=%.0f ebit=%s\n", r.AdoptionRate, r.Volumes.B2B, r.PnL.EBIT.StringFixed(0))
	}
}
