package model

import "github.com/shopspring/decimal"

// DefaultAssumptions returns the baseline Dubai market snapshot the pitch
// model ships with. Shells use it as the starting point before user
// overrides; it always validates.
func DefaultAssumptions() *AssumptionSet {
	set, err := NewAssumptionSet(AssumptionSet{
		ActiveBikes:        40000,
		BagsPerBikePerYear: 1.5,
		B2B: ProductPricing{
			PilotPrice:  decimal.NewFromInt(399),
			LaunchPrice: decimal.NewFromInt(450),
			COGS:        decimal.NewFromInt(200),
		},
		B2C: ProductPricing{
			PilotPrice:  decimal.NewFromInt(499),
			LaunchPrice: decimal.NewFromInt(599),
			COGS:        decimal.NewFromInt(305),
		},
		AdoptionRate: map[Scenario]float64{
			ScenarioPessimistic: 0.05,
			ScenarioBase:        0.10,
			ScenarioOptimistic:  0.20,
		},
		FixedCosts: map[string]decimal.Decimal{
			"salaries":  decimal.NewFromInt(360000),
			"marketing": decimal.NewFromInt(90000),
			"rnd":       decimal.NewFromInt(40000),
			"ops":       decimal.NewFromInt(120000),
			"other":     decimal.NewFromInt(30000),
		},
		Pilot: PilotVolumes{B2B: 400, B2C: 200},
		Year1B2CVolume: map[Scenario]int{
			ScenarioPessimistic: 600,
			ScenarioBase:        900,
			ScenarioOptimistic:  1200,
		},
	})
	if err != nil {
		// Defaults are compile-time constants; this cannot happen.
		panic(err)
	}
	return set
}
