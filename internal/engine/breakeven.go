package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"scenario-model/internal/model"
)

// CurvePoint is one sample of the cumulative-profit-vs-units chart.
type CurvePoint struct {
	Units            float64
	CumulativeProfit decimal.Decimal
}

// ProfitCurve evaluates cumulative profit at any unit count:
// profit(u) = u × contribution − fixed costs. It holds no sampling state,
// so callers can sample any window as often as they like.
type ProfitCurve struct {
	ContributionPerUnit decimal.Decimal
	FixedCosts          decimal.Decimal
}

func (c ProfitCurve) At(units float64) decimal.Decimal {
	return decimal.NewFromFloat(units).Mul(c.ContributionPerUnit).Sub(c.FixedCosts)
}

// Sample returns n evenly spaced points over [0, maxUnits], endpoints
// included. n must be >= 2 and maxUnits >= 0.
func (c ProfitCurve) Sample(maxUnits float64, n int) ([]CurvePoint, error) {
	if maxUnits < 0 {
		return nil, fmt.Errorf("%w: maxUnits must be >= 0", model.ErrInvalidInput)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 curve samples", model.ErrInvalidInput)
	}
	step := maxUnits / float64(n-1)
	out := make([]CurvePoint, n)
	for i := 0; i < n; i++ {
		u := float64(i) * step
		if i == n-1 {
			u = maxUnits // avoid float drift on the last sample
		}
		out[i] = CurvePoint{Units: u, CumulativeProfit: c.At(u)}
	}
	return out, nil
}

// BreakevenResult summarises breakeven analysis for one contribution
// margin. Achievable=false is a first-class analytical outcome ("breakeven
// not reachable at these assumptions"), not an error: it happens whenever
// the contribution per unit is <= 0 while fixed costs remain to be covered.
type BreakevenResult struct {
	ContributionPerUnit decimal.Decimal
	Achievable          bool
	BreakevenUnits      int64
	Curve               ProfitCurve
}

// DefaultCurveSamples is the number of points the stock profit-curve chart
// uses, and DefaultCurveHeadroom is how far past breakeven it extends.
const (
	DefaultCurveSamples  = 50
	DefaultCurveHeadroom = 1.5
)

// Breakeven computes the breakeven analysis for a single price/COGS pair.
// Which product line or blend to feed in is the caller's choice; see
// BreakevenFromContribution for pre-blended margins.
func Breakeven(price, cogs, totalFixedCosts decimal.Decimal) (BreakevenResult, error) {
	if price.IsNegative() || cogs.IsNegative() {
		return BreakevenResult{}, fmt.Errorf("%w: price and COGS must be >= 0", model.ErrInvalidInput)
	}
	return BreakevenFromContribution(price.Sub(cogs), totalFixedCosts)
}

// BreakevenFromContribution computes breakeven given a contribution margin
// directly. The margin may be negative (it came from price − cost, or from
// a blended scenario margin); fixed costs may not.
func BreakevenFromContribution(contributionPerUnit, totalFixedCosts decimal.Decimal) (BreakevenResult, error) {
	if totalFixedCosts.IsNegative() {
		return BreakevenResult{}, fmt.Errorf("%w: total fixed costs must be >= 0", model.ErrInvalidInput)
	}

	res := BreakevenResult{
		ContributionPerUnit: contributionPerUnit,
		Curve: ProfitCurve{
			ContributionPerUnit: contributionPerUnit,
			FixedCosts:          totalFixedCosts,
		},
	}

	switch {
	case contributionPerUnit.IsPositive():
		res.Achievable = true
		res.BreakevenUnits = totalFixedCosts.Div(contributionPerUnit).Ceil().IntPart()
	case contributionPerUnit.IsZero() && totalFixedCosts.IsZero():
		// Nothing to recover: breakeven from the first unit (or none at all).
		res.Achievable = true
		res.BreakevenUnits = 0
	default:
		// Zero or negative margin with fixed costs outstanding: no volume
		// ever recovers them.
		res.Achievable = false
	}
	return res, nil
}

// DefaultCurve samples the stock chart window: 0 to 1.5× breakeven units,
// 50 points. It returns nil when breakeven is not achievable or sits at
// zero units, since there is no meaningful window to draw.
func (r BreakevenResult) DefaultCurve() []CurvePoint {
	if !r.Achievable || r.BreakevenUnits == 0 {
		return nil
	}
	points, err := r.Curve.Sample(float64(r.BreakevenUnits)*DefaultCurveHeadroom, DefaultCurveSamples)
	if err != nil {
		return nil
	}
	return points
}

// SplitByMix apportions breakeven units across product lines using a
// scenario's volume mix, mirroring how the pitch deck reports an
// approximate "breakeven B2B units" figure. A zero mix yields zero shares.
func SplitByMix(units int64, mix VolumeMix) (b2bUnits, b2cUnits float64) {
	total := mix.Total()
	if total <= 0 {
		return 0, 0
	}
	b2bUnits = float64(units) * mix.B2B / total
	return b2bUnits, float64(units) - b2bUnits
}
