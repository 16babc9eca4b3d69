package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scenario-model/internal/api/models"
	"scenario-model/internal/model"
)

// ScenarioHandler handles scenario-related requests
type ScenarioHandler struct{}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler() *ScenarioHandler {
	return &ScenarioHandler{}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	defaults := model.DefaultAssumptions()
	descriptions := map[model.Scenario]string{
		model.ScenarioPessimistic: "Conservative adoption of annual bag demand. Slow B2B uptake, minimal B2C traction.",
		model.ScenarioBase:        "Expected adoption given comparable retrofit products in the Dubai delivery market.",
		model.ScenarioOptimistic:  "Strong adoption across fleets plus healthy B2C demand.",
	}

	scenarios := make([]models.ScenarioInfo, 0, len(model.Scenarios))
	for _, s := range model.Scenarios {
		scenarios = append(scenarios, models.ScenarioInfo{
			Name:            string(s),
			Description:     descriptions[s],
			DefaultAdoption: defaults.AdoptionRate[s],
		})
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
