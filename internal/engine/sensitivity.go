package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"scenario-model/internal/model"
)

// DefaultAdoptionRates is the sweep used by the stock sensitivity table:
// 15%, 25% and 40% of annual bag demand.
var DefaultAdoptionRates = []float64{0.15, 0.25, 0.40}

// SensitivityRow is one row of the adoption-rate sweep.
type SensitivityRow struct {
	AdoptionRate float64
	Volumes      VolumeMix
	PnL          PnLStatement
}

// Sensitivity sweeps B2B adoption rates against a fixed B2C volume,
// computing the same P&L formula per rate. Output order matches input
// order; duplicate and zero rates produce their rows unfiltered.
func Sensitivity(annualUnits float64, rates []float64, fixedB2CUnits int, econ UnitEconomics, totalFixedCosts decimal.Decimal) ([]SensitivityRow, error) {
	if annualUnits < 0 {
		return nil, fmt.Errorf("%w: annualUnits must be >= 0", model.ErrInvalidInput)
	}
	if fixedB2CUnits < 0 {
		return nil, fmt.Errorf("%w: fixed B2C volume must be >= 0", model.ErrInvalidInput)
	}

	out := make([]SensitivityRow, 0, len(rates))
	for _, rate := range rates {
		if rate < 0 || rate > 1 {
			return nil, fmt.Errorf("%w: adoption rate %v outside [0,1]", model.ErrInvalidInput, rate)
		}
		vol := VolumeMix{B2B: annualUnits * rate, B2C: float64(fixedB2CUnits)}
		pnl, err := ComputePnL(vol, econ, totalFixedCosts)
		if err != nil {
			return nil, err
		}
		out = append(out, SensitivityRow{AdoptionRate: rate, Volumes: vol, PnL: pnl})
	}
	return out, nil
}

// SensitivityForAssumptions runs the sweep against an AssumptionSet at
// launch prices, the way the dashboard's sensitivity tab does.
func SensitivityForAssumptions(a *model.AssumptionSet, rates []float64, fixedB2CUnits int) ([]SensitivityRow, error) {
	demand, err := ImpliedAnnualDemand(a.ActiveBikes, a.BagsPerBikePerYear)
	if err != nil {
		return nil, err
	}
	return Sensitivity(demand, rates, fixedB2CUnits, LaunchEconomics(a), a.TotalFixedCosts())
}
