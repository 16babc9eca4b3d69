package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"scenario-model/internal/model"
)

// VolumeMix is a unit count per product line. B2B volume may be fractional
// because it is derived from demand × adoption rate.
type VolumeMix struct {
	B2B float64
	B2C float64
}

func (v VolumeMix) Total() float64 { return v.B2B + v.B2C }

// UnitEconomics is the per-unit price/cost structure a P&L is computed
// against. Which phase's prices go in here (pilot vs launch) is the
// caller's decision.
type UnitEconomics struct {
	B2BPrice decimal.Decimal
	B2BCOGS  decimal.Decimal
	B2CPrice decimal.Decimal
	B2CCOGS  decimal.Decimal
}

// PnLStatement is one computed profit-and-loss row.
// EBIT = GrossProfit - FixedCosts always holds; a negative EBIT is a
// valid business outcome, not an error.
type PnLStatement struct {
	Revenue     decimal.Decimal
	COGS        decimal.Decimal
	GrossProfit decimal.Decimal
	FixedCosts  decimal.Decimal
	EBIT        decimal.Decimal
}

// ScenarioResult is the per-scenario output of a Year-1 run.
// Results are produced fresh on every call and never cached.
type ScenarioResult struct {
	Scenario model.Scenario
	Volumes  VolumeMix
	PnL      PnLStatement
}

// ComputePnL computes revenue, gross profit and EBIT for a volume mix.
// This is the single formula both the pilot and Year-1 modes share.
func ComputePnL(vol VolumeMix, econ UnitEconomics, totalFixedCosts decimal.Decimal) (PnLStatement, error) {
	if vol.B2B < 0 || vol.B2C < 0 {
		return PnLStatement{}, fmt.Errorf("%w: volumes must be >= 0", model.ErrInvalidInput)
	}
	if econ.B2BPrice.IsNegative() || econ.B2CPrice.IsNegative() || econ.B2BCOGS.IsNegative() || econ.B2CCOGS.IsNegative() {
		return PnLStatement{}, fmt.Errorf("%w: prices and COGS must be >= 0", model.ErrInvalidInput)
	}
	if totalFixedCosts.IsNegative() {
		return PnLStatement{}, fmt.Errorf("%w: total fixed costs must be >= 0", model.ErrInvalidInput)
	}

	b2bUnits := decimal.NewFromFloat(vol.B2B)
	b2cUnits := decimal.NewFromFloat(vol.B2C)

	revenue := b2bUnits.Mul(econ.B2BPrice).Add(b2cUnits.Mul(econ.B2CPrice))
	cogs := b2bUnits.Mul(econ.B2BCOGS).Add(b2cUnits.Mul(econ.B2CCOGS))
	gross := revenue.Sub(cogs)

	return PnLStatement{
		Revenue:     revenue,
		COGS:        cogs,
		GrossProfit: gross,
		FixedCosts:  totalFixedCosts,
		EBIT:        gross.Sub(totalFixedCosts),
	}, nil
}

// PilotPnL computes the pilot-phase P&L: fixed pilot volumes at pilot
// prices. The pilot is a short standalone phase and is not annualised.
func PilotPnL(a *model.AssumptionSet) (PnLStatement, error) {
	vol := VolumeMix{B2B: float64(a.Pilot.B2B), B2C: float64(a.Pilot.B2C)}
	return ComputePnL(vol, PilotEconomics(a), a.TotalFixedCosts())
}

// Year1Scenarios computes the Year-1 P&L for every scenario at launch
// prices. B2B volume is annual demand × the scenario's adoption rate; B2C
// volume comes straight from the per-scenario assumption. Results come
// back in the fixed order Pessimistic, Base, Optimistic.
func Year1Scenarios(a *model.AssumptionSet) ([]ScenarioResult, error) {
	demand, err := ImpliedAnnualDemand(a.ActiveBikes, a.BagsPerBikePerYear)
	if err != nil {
		return nil, err
	}
	econ := LaunchEconomics(a)
	fixed := a.TotalFixedCosts()

	out := make([]ScenarioResult, 0, len(model.Scenarios))
	for _, s := range model.Scenarios {
		vol := VolumeMix{
			B2B: demand * a.AdoptionRate[s],
			B2C: float64(a.Year1B2CVolume[s]),
		}
		pnl, err := ComputePnL(vol, econ, fixed)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s, err)
		}
		out = append(out, ScenarioResult{Scenario: s, Volumes: vol, PnL: pnl})
	}
	return out, nil
}

// PilotEconomics maps an AssumptionSet to pilot-phase unit economics.
func PilotEconomics(a *model.AssumptionSet) UnitEconomics {
	return UnitEconomics{
		B2BPrice: a.B2B.PilotPrice,
		B2BCOGS:  a.B2B.COGS,
		B2CPrice: a.B2C.PilotPrice,
		B2CCOGS:  a.B2C.COGS,
	}
}

// LaunchEconomics maps an AssumptionSet to launch (Year-1) unit economics.
func LaunchEconomics(a *model.AssumptionSet) UnitEconomics {
	return UnitEconomics{
		B2BPrice: a.B2B.LaunchPrice,
		B2BCOGS:  a.B2B.COGS,
		B2CPrice: a.B2C.LaunchPrice,
		B2CCOGS:  a.B2C.COGS,
	}
}
