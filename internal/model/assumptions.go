package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks validation failures on engine inputs.
// Bad financial outcomes (losses, zero volumes) are never errors; only
// inputs the arithmetic cannot make sense of are.
var ErrInvalidInput = errors.New("invalid input")

// ProductPricing holds the per-unit economics of one product line.
// The pilot phase sells at PilotPrice; Year-1 and sensitivity runs use
// LaunchPrice. COGS is assumed identical across phases.
type ProductPricing struct {
	PilotPrice  decimal.Decimal
	LaunchPrice decimal.Decimal
	COGS        decimal.Decimal
}

// PilotVolumes are the scenario-independent unit counts for the pilot phase.
type PilotVolumes struct {
	B2B int
	B2C int
}

// AssumptionSet is the complete input snapshot for one model run.
//
// It is a value object: construct it with NewAssumptionSet and never mutate
// it afterwards. When inputs change, build a new set. Every engine function
// is a pure function of an AssumptionSet plus its explicit parameters.
//
// Units:
// - ActiveBikes: delivery-bike population (whole bikes)
// - BagsPerBikePerYear: replacement bags per bike per year (may be fractional)
// - Prices/COGS/FixedCosts: currency amounts (AED in the source model)
// - AdoptionRate: fraction of annual bag demand captured, 0..1
type AssumptionSet struct {
	ActiveBikes        int
	BagsPerBikePerYear float64

	B2B ProductPricing
	B2C ProductPricing

	AdoptionRate map[Scenario]float64

	FixedCosts map[string]decimal.Decimal

	Pilot          PilotVolumes
	Year1B2CVolume map[Scenario]int
}

func NewAssumptionSet(a AssumptionSet) (*AssumptionSet, error) {
	set := a
	set.AdoptionRate = copyScenarioFloats(a.AdoptionRate)
	set.FixedCosts = copyCosts(a.FixedCosts)
	set.Year1B2CVolume = copyScenarioInts(a.Year1B2CVolume)
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

func (a *AssumptionSet) Validate() error {
	if a.ActiveBikes < 0 {
		return fmt.Errorf("%w: ActiveBikes must be >= 0", ErrInvalidInput)
	}
	if a.BagsPerBikePerYear < 0 {
		return fmt.Errorf("%w: BagsPerBikePerYear must be >= 0", ErrInvalidInput)
	}
	if err := validatePricing("b2b", a.B2B); err != nil {
		return err
	}
	if err := validatePricing("b2c", a.B2C); err != nil {
		return err
	}
	if a.Pilot.B2B < 0 || a.Pilot.B2C < 0 {
		return fmt.Errorf("%w: pilot volumes must be >= 0", ErrInvalidInput)
	}
	for _, s := range Scenarios {
		rate, ok := a.AdoptionRate[s]
		if !ok {
			return fmt.Errorf("%w: adoption rate missing for scenario %s", ErrInvalidInput, s)
		}
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%w: adoption rate for %s must be in [0,1], got %v", ErrInvalidInput, s, rate)
		}
		vol, ok := a.Year1B2CVolume[s]
		if !ok {
			return fmt.Errorf("%w: Year-1 B2C volume missing for scenario %s", ErrInvalidInput, s)
		}
		if vol < 0 {
			return fmt.Errorf("%w: Year-1 B2C volume for %s must be >= 0", ErrInvalidInput, s)
		}
	}
	if len(a.AdoptionRate) != len(Scenarios) {
		return fmt.Errorf("%w: adoption rates must cover exactly the scenarios %v", ErrInvalidInput, Scenarios)
	}
	if len(a.Year1B2CVolume) != len(Scenarios) {
		return fmt.Errorf("%w: Year-1 B2C volumes must cover exactly the scenarios %v", ErrInvalidInput, Scenarios)
	}
	for name, amount := range a.FixedCosts {
		if amount.IsNegative() {
			return fmt.Errorf("%w: fixed cost %q must be >= 0", ErrInvalidInput, name)
		}
	}
	return nil
}

// TotalFixedCosts sums all fixed-cost categories.
func (a *AssumptionSet) TotalFixedCosts() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range a.FixedCosts {
		total = total.Add(amount)
	}
	return total
}

func validatePricing(line string, p ProductPricing) error {
	if p.PilotPrice.IsNegative() {
		return fmt.Errorf("%w: %s pilot price must be >= 0", ErrInvalidInput, line)
	}
	if p.LaunchPrice.IsNegative() {
		return fmt.Errorf("%w: %s launch price must be >= 0", ErrInvalidInput, line)
	}
	if p.COGS.IsNegative() {
		return fmt.Errorf("%w: %s COGS must be >= 0", ErrInvalidInput, line)
	}
	// Note: COGS above price is allowed. A negative margin is a legitimate
	// what-if; the engine propagates it rather than rejecting it.
	return nil
}

func copyScenarioFloats(m map[Scenario]float64) map[Scenario]float64 {
	out := make(map[Scenario]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyScenarioInts(m map[Scenario]int) map[Scenario]int {
	out := make(map[Scenario]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyCosts(m map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
