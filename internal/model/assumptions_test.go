package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func validInput() AssumptionSet {
	return AssumptionSet{
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
			"salaries": decimal.NewFromInt(360000),
			"other":    decimal.NewFromInt(30000),
		},
		Pilot: PilotVolumes{B2B: 400, B2C: 200},
		Year1B2CVolume: map[Scenario]int{
			ScenarioPessimistic: 600,
			ScenarioBase:        900,
			ScenarioOptimistic:  1200,
		},
	}
}

func TestNewAssumptionSet_Valid(t *testing.T) {
	a, err := NewAssumptionSet(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.TotalFixedCosts().Equal(decimal.NewFromInt(390000)) {
		t.Errorf("expected total fixed costs 390000, got %s", a.TotalFixedCosts())
	}
}

func TestNewAssumptionSet_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AssumptionSet)
	}{
		{"negative bikes", func(a *AssumptionSet) { a.ActiveBikes = -1 }},
		{"negative bags", func(a *AssumptionSet) { a.BagsPerBikePerYear = -0.5 }},
		{"negative price", func(a *AssumptionSet) { a.B2B.LaunchPrice = decimal.NewFromInt(-1) }},
		{"negative cogs", func(a *AssumptionSet) { a.B2C.COGS = decimal.NewFromInt(-1) }},
		{"adoption above one", func(a *AssumptionSet) { a.AdoptionRate[ScenarioBase] = 1.2 }},
		{"adoption below zero", func(a *AssumptionSet) { a.AdoptionRate[ScenarioOptimistic] = -0.1 }},
		{"missing scenario rate", func(a *AssumptionSet) { delete(a.AdoptionRate, ScenarioPessimistic) }},
		{"extra scenario key", func(a *AssumptionSet) { a.AdoptionRate["WILD"] = 0.5 }},
		{"negative fixed cost", func(a *AssumptionSet) { a.FixedCosts["ops"] = decimal.NewFromInt(-10) }},
		{"negative pilot volume", func(a *AssumptionSet) { a.Pilot.B2C = -5 }},
		{"missing year1 volume", func(a *AssumptionSet) { delete(a.Year1B2CVolume, ScenarioBase) }},
		{"negative year1 volume", func(a *AssumptionSet) { a.Year1B2CVolume[ScenarioOptimistic] = -1 }},
	}
	for _, c := range cases {
		in := validInput()
		c.mutate(&in)
		if _, err := NewAssumptionSet(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", c.name, err)
		}
	}
}

func TestNewAssumptionSet_NegativeMarginAllowed(t *testing.T) {
	in := validInput()
	in.B2B.COGS = decimal.NewFromInt(9999) // COGS above price is a valid what-if
	if _, err := NewAssumptionSet(in); err != nil {
		t.Errorf("expected negative margin to validate, got %v", err)
	}
}

func TestNewAssumptionSet_CopiesInputMaps(t *testing.T) {
	in := validInput()
	a, err := NewAssumptionSet(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in.AdoptionRate[ScenarioBase] = 0.99
	in.FixedCosts["salaries"] = decimal.NewFromInt(1)
	in.Year1B2CVolume[ScenarioBase] = 1

	if a.AdoptionRate[ScenarioBase] != 0.10 {
		t.Errorf("adoption rate leaked through shared map")
	}
	if !a.FixedCosts["salaries"].Equal(decimal.NewFromInt(360000)) {
		t.Errorf("fixed costs leaked through shared map")
	}
	if a.Year1B2CVolume[ScenarioBase] != 900 {
		t.Errorf("Year-1 volumes leaked through shared map")
	}
}

func TestDefaultAssumptions_Validates(t *testing.T) {
	a := DefaultAssumptions()
	if err := a.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestParseScenario(t *testing.T) {
	for _, in := range []string{"base", "Base", "BASE"} {
		s, err := ParseScenario(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if s != ScenarioBase {
			t.Errorf("%q: expected BASE, got %s", in, s)
		}
	}
	if _, err := ParseScenario("moonshot"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unknown scenario, got %v", err)
	}
}

func TestScenarios_CanonicalOrder(t *testing.T) {
	want := []Scenario{ScenarioPessimistic, ScenarioBase, ScenarioOptimistic}
	if len(Scenarios) != len(want) {
		t.Fatalf("expected %d scenarios, got %d", len(want), len(Scenarios))
	}
	for i := range want {
		if Scenarios[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], Scenarios[i])
		}
	}
}
