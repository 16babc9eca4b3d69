package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scenario-model/internal/api/models"
	"scenario-model/internal/engine"
)

// PnLHandler handles P&L computation requests
type PnLHandler struct{}

// NewPnLHandler creates a new P&L handler
func NewPnLHandler() *PnLHandler {
	return &PnLHandler{}
}

// ComputePnL handles POST /api/v1/pnl
func (h *PnLHandler) ComputePnL(c *gin.Context) {
	var req models.PnLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	a, err := buildAssumptions(req.Config)
	if err != nil {
		respondComputeError(c, err)
		return
	}

	demand, err := engine.ImpliedAnnualDemand(a.ActiveBikes, a.BagsPerBikePerYear)
	if err != nil {
		respondComputeError(c, err)
		return
	}

	resp := models.PnLResponse{AnnualDemand: demand}

	if !req.Options.SkipPilot {
		pilot, err := engine.PilotPnL(a)
		if err != nil {
			respondComputeError(c, err)
			return
		}
		vol := engine.VolumeMix{B2B: float64(a.Pilot.B2B), B2C: float64(a.Pilot.B2C)}
		row := toPnLRow(vol, pilot)
		resp.Pilot = &row
	}

	results, err := engine.Year1Scenarios(a)
	if err != nil {
		respondComputeError(c, err)
		return
	}
	resp.Year1 = make([]models.ScenarioRow, 0, len(results))
	for _, r := range results {
		resp.Year1 = append(resp.Year1, models.ScenarioRow{
			Scenario: string(r.Scenario),
			PnLRow:   toPnLRow(r.Volumes, r.PnL),
		})
	}

	c.JSON(http.StatusOK, resp)
}
