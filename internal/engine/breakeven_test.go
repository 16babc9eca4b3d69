package engine

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"scenario-model/internal/model"
)

func TestBreakeven_PositiveContribution(t *testing.T) {
	// 5000 / 12 = 416.67 -> rounds up to 417 whole units.
	res, err := Breakeven(money(20), money(8), money(5000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Achievable {
		t.Fatal("expected breakeven to be achievable")
	}
	if res.BreakevenUnits != 417 {
		t.Errorf("expected 417 units, got %d", res.BreakevenUnits)
	}
	if !res.ContributionPerUnit.Equal(money(12)) {
		t.Errorf("expected contribution 12, got %s", res.ContributionPerUnit)
	}
}

func TestBreakeven_ZeroContributionUnreachable(t *testing.T) {
	res, err := Breakeven(money(10), money(10), money(5000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Achievable {
		t.Error("expected breakeven to be unreachable with zero contribution and fixed costs outstanding")
	}
}

func TestBreakeven_ZeroContributionZeroFixedCosts(t *testing.T) {
	res, err := Breakeven(money(10), money(10), decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Achievable {
		t.Fatal("expected breakeven to be achievable with nothing to recover")
	}
	if res.BreakevenUnits != 0 {
		t.Errorf("expected 0 units, got %d", res.BreakevenUnits)
	}
}

func TestBreakeven_NegativeContributionUnreachable(t *testing.T) {
	res, err := Breakeven(money(10), money(15), money(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Achievable {
		t.Error("expected breakeven to be unreachable with negative contribution")
	}
}

func TestBreakeven_MonotoneInContribution(t *testing.T) {
	// For fixed costs held constant, a better margin never needs more units.
	fixed := money(100000)
	prev := int64(1 << 62)
	for _, contribution := range []int64{1, 2, 5, 10, 50, 100} {
		res, err := BreakevenFromContribution(money(contribution), fixed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Achievable {
			t.Fatalf("contribution %d: expected achievable", contribution)
		}
		if res.BreakevenUnits > prev {
			t.Errorf("contribution %d: breakeven units increased from %d to %d", contribution, prev, res.BreakevenUnits)
		}
		prev = res.BreakevenUnits
	}
}

func TestBreakeven_RejectsNegativeInputs(t *testing.T) {
	if _, err := Breakeven(money(-1), money(0), money(0)); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("negative price: expected ErrInvalidInput, got %v", err)
	}
	if _, err := BreakevenFromContribution(money(5), money(-1)); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("negative fixed costs: expected ErrInvalidInput, got %v", err)
	}
}

func TestProfitCurve_SampleWindow(t *testing.T) {
	curve := ProfitCurve{ContributionPerUnit: money(12), FixedCosts: money(5004)}
	points, err := curve.Sample(834, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].Units != 0 || points[2].Units != 834 {
		t.Errorf("expected endpoints 0 and 834, got %f and %f", points[0].Units, points[2].Units)
	}
	// profit(0) = -5004, profit(417) = 0, profit(834) = 5004.
	if !points[0].CumulativeProfit.Equal(money(-5004)) {
		t.Errorf("expected -5004 at zero units, got %s", points[0].CumulativeProfit)
	}
	if !points[1].CumulativeProfit.IsZero() {
		t.Errorf("expected breakeven at the midpoint, got %s", points[1].CumulativeProfit)
	}
	if !points[2].CumulativeProfit.Equal(money(5004)) {
		t.Errorf("expected 5004 at the far end, got %s", points[2].CumulativeProfit)
	}
}

func TestProfitCurve_Restartable(t *testing.T) {
	curve := ProfitCurve{ContributionPerUnit: money(3), FixedCosts: money(300)}
	first, err := curve.Sample(200, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := curve.Sample(200, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		if first[i].Units != second[i].Units || !first[i].CumulativeProfit.Equal(second[i].CumulativeProfit) {
			t.Errorf("point %d differs between passes", i)
		}
	}
}

func TestProfitCurve_SampleValidation(t *testing.T) {
	curve := ProfitCurve{ContributionPerUnit: money(3), FixedCosts: money(300)}
	if _, err := curve.Sample(-1, 10); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("negative window: expected ErrInvalidInput, got %v", err)
	}
	if _, err := curve.Sample(100, 1); !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("single sample: expected ErrInvalidInput, got %v", err)
	}
}

func TestDefaultCurve_WindowPastBreakeven(t *testing.T) {
	res, err := BreakevenFromContribution(money(12), money(5000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	points := res.DefaultCurve()
	if len(points) != DefaultCurveSamples {
		t.Fatalf("expected %d points, got %d", DefaultCurveSamples, len(points))
	}
	last := points[len(points)-1]
	if last.Units != float64(res.BreakevenUnits)*DefaultCurveHeadroom {
		t.Errorf("expected window to end at 1.5x breakeven, got %f", last.Units)
	}
	if !last.CumulativeProfit.IsPositive() {
		t.Errorf("expected positive profit past breakeven, got %s", last.CumulativeProfit)
	}
}

func TestDefaultCurve_NilWhenUnreachable(t *testing.T) {
	res, err := BreakevenFromContribution(money(0), money(5000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points := res.DefaultCurve(); points != nil {
		t.Errorf("expected no default curve for unreachable breakeven, got %d points", len(points))
	}
}

func TestSplitByMix(t *testing.T) {
	b2b, b2c := SplitByMix(1000, VolumeMix{B2B: 6000, B2C: 2000})
	if b2b != 750 || b2c != 250 {
		t.Errorf("expected 750/250 split, got %f/%f", b2b, b2c)
	}
	b2b, b2c = SplitByMix(1000, VolumeMix{})
	if b2b != 0 || b2c != 0 {
		t.Errorf("expected zero split for empty mix, got %f/%f", b2b, b2c)
	}
}
