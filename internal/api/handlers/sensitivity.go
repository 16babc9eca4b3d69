package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scenario-model/internal/api/models"
	"scenario-model/internal/engine"
	"scenario-model/internal/model"
)

// SensitivityHandler handles adoption-rate sweep requests
type SensitivityHandler struct{}

// NewSensitivityHandler creates a new sensitivity handler
func NewSensitivityHandler() *SensitivityHandler {
	return &SensitivityHandler{}
}

// ComputeSensitivity handles POST /api/v1/sensitivity
func (h *SensitivityHandler) ComputeSensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	a, err := buildAssumptions(req.Config)
	if err != nil {
		respondComputeError(c, err)
		return
	}

	rates := req.AdoptionRates
	if len(rates) == 0 {
		rates = engine.DefaultAdoptionRates
	}
	b2cUnits := a.Year1B2CVolume[model.ScenarioBase]
	if req.B2CUnits != nil {
		b2cUnits = *req.B2CUnits
	}

	demand, err := engine.ImpliedAnnualDemand(a.ActiveBikes, a.BagsPerBikePerYear)
	if err != nil {
		respondComputeError(c, err)
		return
	}

	rows, err := engine.Sensitivity(demand, rates, b2cUnits, engine.LaunchEconomics(a), a.TotalFixedCosts())
	if err != nil {
		respondComputeError(c, err)
		return
	}

	resp := models.SensitivityResponse{
		AnnualDemand: demand,
		B2CUnits:     b2cUnits,
		Rows:         make([]models.SensitivityRow, 0, len(rows)),
	}
	for _, r := range rows {
		resp.Rows = append(resp.Rows, models.SensitivityRow{
			AdoptionRate: r.AdoptionRate,
			PnLRow:       toPnLRow(r.Volumes, r.PnL),
		})
	}

	c.JSON(http.StatusOK, resp)
}
