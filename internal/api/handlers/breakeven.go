package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"scenario-model/internal/analysis"
	"scenario-model/internal/api/models"
	"scenario-model/internal/engine"
	"scenario-model/internal/model"
)

// BreakevenHandler handles breakeven analysis requests
type BreakevenHandler struct{}

// NewBreakevenHandler creates a new breakeven handler
func NewBreakevenHandler() *BreakevenHandler {
	return &BreakevenHandler{}
}

// ComputeBreakeven handles POST /api/v1/breakeven
func (h *BreakevenHandler) ComputeBreakeven(c *gin.Context) {
	var req models.BreakevenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	a, err := buildAssumptions(req.Config)
	if err != nil {
		respondComputeError(c, err)
		return
	}

	scenario, err := model.ParseScenario(req.Scenario)
	if err != nil {
		respondComputeError(c, err)
		return
	}

	results, err := engine.Year1Scenarios(a)
	if err != nil {
		respondComputeError(c, err)
		return
	}
	var selected engine.ScenarioResult
	for _, r := range results {
		if r.Scenario == scenario {
			selected = r
			break
		}
	}

	line := req.Line
	if line == "" {
		line = "blended"
	}
	contribution, err := contributionForLine(a, selected, line)
	if err != nil {
		respondComputeError(c, err)
		return
	}

	be, err := engine.BreakevenFromContribution(contribution, a.TotalFixedCosts())
	if err != nil {
		respondComputeError(c, err)
		return
	}

	resp := models.BreakevenResponse{
		Scenario:            string(scenario),
		Line:                line,
		ContributionPerUnit: be.ContributionPerUnit,
		Achievable:          be.Achievable,
	}
	if be.Achievable {
		resp.BreakevenUnits = be.BreakevenUnits
		resp.BreakevenB2BUnits, resp.BreakevenB2CUnits = engine.SplitByMix(be.BreakevenUnits, selected.Volumes)
	}

	points, err := curveSamples(be, req.Curve)
	if err != nil {
		respondComputeError(c, err)
		return
	}
	for _, p := range points {
		resp.Curve = append(resp.Curve, models.CurvePoint{
			Units:            p.Units,
			CumulativeProfit: p.CumulativeProfit,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// contributionForLine resolves which margin the breakeven runs against:
// a single product line at launch pricing, or the scenario's blended mix.
func contributionForLine(a *model.AssumptionSet, selected engine.ScenarioResult, line string) (decimal.Decimal, error) {
	switch line {
	case "b2b":
		return a.B2B.LaunchPrice.Sub(a.B2B.COGS), nil
	case "b2c":
		return a.B2C.LaunchPrice.Sub(a.B2C.COGS), nil
	case "blended":
		return analysis.SummarizeScenario(selected).BlendedContributionPerUnit, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: line must be b2b, b2c or blended, got %q", model.ErrInvalidInput, line)
	}
}

func curveSamples(be engine.BreakevenResult, opts models.CurveOptions) ([]engine.CurvePoint, error) {
	if opts.MaxUnits > 0 {
		samples := opts.Samples
		if samples == 0 {
			samples = engine.DefaultCurveSamples
		}
		return be.Curve.Sample(opts.MaxUnits, samples)
	}
	return be.DefaultCurve(), nil
}
