package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"scenario-model/internal/analysis"
	"scenario-model/internal/config"
	"scenario-model/internal/engine"
	"scenario-model/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "pnl":
		cmdPnL(os.Args[2:])
	case "breakeven":
		cmdBreakeven(os.Args[2:])
	case "sensitivity":
		cmdSensitivity(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli pnl --config examples/config.yaml --out results/year1.csv")
	fmt.Println("  cli breakeven --config examples/config.yaml --scenario base --line blended --out results/profit_curve.csv")
	fmt.Println("  cli sensitivity --config examples/config.yaml --rates 0.15,0.25,0.40 --out results/sensitivity.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - without --config the built-in Dubai baseline assumptions apply")
	fmt.Println("  - pnl prints the pilot phase and the Year-1 scenario table")
	fmt.Println("  - breakeven reports contribution/unit, breakeven units and a profit curve")
}

func cmdPnL(args []string) {
	fs := flag.NewFlagSet("pnl", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Optional output CSV path for the Year-1 table")
	_ = fs.Parse(args)

	a := loadAssumptions(*cfgPath)

	demand, err := engine.ImpliedAnnualDemand(a.ActiveBikes, a.BagsPerBikePerYear)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Annual bag demand: %.0f units (%d bikes x %.2f bags/bike)\n\n",
		demand, a.ActiveBikes, a.BagsPerBikePerYear)

	pilot, err := engine.PilotPnL(a)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Pilot phase (%d B2B + %d B2C units, pilot pricing):\n", a.Pilot.B2B, a.Pilot.B2C)
	fmt.Printf("  revenue=%s gross=%s ebit=%s\n\n",
		pilot.Revenue.StringFixed(2), pilot.GrossProfit.StringFixed(2), pilot.EBIT.StringFixed(2))

	results, err := engine.Year1Scenarios(a)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-12s %-10s %-8s %-14s %-14s %-14s %-8s\n",
		"scenario", "b2b", "b2c", "revenue", "gross", "ebit", "gm%")
	for _, r := range results {
		s := analysis.SummarizeScenario(r)
		fmt.Printf("%-12s %-10.0f %-8.0f %-14s %-14s %-14s %-8.1f\n",
			r.Scenario,
			r.Volumes.B2B,
			r.Volumes.B2C,
			r.PnL.Revenue.StringFixed(2),
			r.PnL.GrossProfit.StringFixed(2),
			r.PnL.EBIT.StringFixed(2),
			s.GrossMarginPct,
		)
	}

	best := analysis.RankByEBIT(results)[0]
	fmt.Printf("\nBest EBIT: %s (%s)\n", best.Scenario, best.PnL.EBIT.StringFixed(2))

	if *outPath != "" {
		writeCSV(*outPath, func(path string) error {
			return engine.WriteScenarioCSV(path, results)
		})
		fmt.Printf("Wrote %d rows to %s\n", len(results), *outPath)
	}
}

func cmdBreakeven(args []string) {
	fs := flag.NewFlagSet("breakeven", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	scenarioFlag := fs.String("scenario", "base", "Scenario for the contribution margin (pessimistic|base|optimistic)")
	line := fs.String("line", "blended", "Economics to analyse: b2b, b2c or blended")
	outPath := fs.String("out", "", "Optional output CSV path for the profit curve")
	_ = fs.Parse(args)

	a := loadAssumptions(*cfgPath)
	scenario, err := model.ParseScenario(*scenarioFlag)
	if err != nil {
		panic(err)
	}

	results, err := engine.Year1Scenarios(a)
	if err != nil {
		panic(err)
	}
	var selected engine.ScenarioResult
	for _, r := range results {
		if r.Scenario == scenario {
			selected = r
		}
	}

	contribution := analysis.SummarizeScenario(selected).BlendedContributionPerUnit
	switch *line {
	case "b2b":
		contribution = a.B2B.LaunchPrice.Sub(a.B2B.COGS)
	case "b2c":
		contribution = a.B2C.LaunchPrice.Sub(a.B2C.COGS)
	case "blended":
	default:
		panic(fmt.Errorf("unsupported line: %q", *line))
	}

	be, err := engine.BreakevenFromContribution(contribution, a.TotalFixedCosts())
	if err != nil {
		panic(err)
	}

	fmt.Printf("Scenario %s (%s economics)\n", scenario, *line)
	fmt.Printf("Contribution/unit: %s\n", be.ContributionPerUnit.StringFixed(2))
	if !be.Achievable {
		fmt.Println("Breakeven: not achievable at these assumptions")
		return
	}
	fmt.Printf("Breakeven units: %d\n", be.BreakevenUnits)
	b2b, b2c := engine.SplitByMix(be.BreakevenUnits, selected.Volumes)
	fmt.Printf("Approx. split: %.0f B2B / %.0f B2C (scenario mix)\n", b2b, b2c)

	if *outPath != "" {
		points := be.DefaultCurve()
		writeCSV(*outPath, func(path string) error {
			return engine.WriteCurveCSV(path, points)
		})
		fmt.Printf("Wrote %d curve points to %s\n", len(points), *outPath)
	}
}

func cmdSensitivity(args []string) {
	fs := flag.NewFlagSet("sensitivity", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	ratesFlag := fs.String("rates", "", "Comma-separated adoption rates (default 0.15,0.25,0.40)")
	b2cUnits := fs.Int("b2c", -1, "Fixed B2C units for the sweep (default: base scenario Year-1 B2C volume)")
	outPath := fs.String("out", "", "Optional output CSV path")
	_ = fs.Parse(args)

	a := loadAssumptions(*cfgPath)

	rates := engine.DefaultAdoptionRates
	if *ratesFlag != "" {
		rates = parseRates(*ratesFlag)
	}
	fixedB2C := a.Year1B2CVolume[model.ScenarioBase]
	if *b2cUnits >= 0 {
		fixedB2C = *b2cUnits
	}

	rows, err := engine.SensitivityForAssumptions(a, rates, fixedB2C)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-8s %-10s %-14s %-14s %-14s\n", "rate", "b2b", "revenue", "gross", "ebit")
	for _, r := range rows {
		fmt.Printf("%-8.2f %-10.0f %-14s %-14s %-14s\n",
			r.AdoptionRate,
			r.Volumes.B2B,
			r.PnL.Revenue.StringFixed(2),
			r.PnL.GrossProfit.StringFixed(2),
			r.PnL.EBIT.StringFixed(2),
		)
	}

	if *outPath != "" {
		writeCSV(*outPath, func(path string) error {
			return engine.WriteSensitivityCSV(path, rows)
		})
		fmt.Printf("Wrote %d rows to %s\n", len(rows), *outPath)
	}
}

func loadAssumptions(cfgPath string) *model.AssumptionSet {
	if cfgPath == "" {
		return model.DefaultAssumptions()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	a, err := cfg.Assumptions.ToModel()
	if err != nil {
		panic(err)
	}
	return a
}

func parseRates(s string) []float64 {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			panic(fmt.Errorf("bad rate %q: %w", p, err))
		}
		out = append(out, v)
	}
	return out
}

func writeCSV(path string, write func(string) error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	if err := write(path); err != nil {
		panic(err)
	}
}
