package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenario-model/internal/api/models"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/pnl", NewPnLHandler().ComputePnL)
	api.POST("/breakeven", NewBreakevenHandler().ComputeBreakeven)
	api.POST("/sensitivity", NewSensitivityHandler().ComputeSensitivity)
	api.GET("/scenarios", NewScenarioHandler().ListScenarios)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestComputePnL_DefaultsToBuiltinAssumptions(t *testing.T) {
	r := testRouter()
	w := doJSON(t, r, http.MethodPost, "/api/v1/pnl", gin.H{"config": gin.H{}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PnLResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 60000.0, resp.AnnualDemand)
	require.NotNil(t, resp.Pilot)
	require.Len(t, resp.Year1, 3)
	assert.Equal(t, "PESSIMISTIC", resp.Year1[0].Scenario)
	assert.Equal(t, "BASE", resp.Year1[1].Scenario)
	assert.Equal(t, "OPTIMISTIC", resp.Year1[2].Scenario)
	assert.Equal(t, 6000.0, resp.Year1[1].B2BUnits)
}

func TestComputePnL_InlineAssumptionOverrides(t *testing.T) {
	r := testRouter()
	body := gin.H{
		"config": gin.H{
			"assumptions": gin.H{
				"active_bikes":           50000,
				"bags_per_bike_per_year": 2,
				"b2b":                    gin.H{"pilot_price": 399, "launch_price": 20, "cogs": 8},
				"b2c":                    gin.H{"pilot_price": 499, "launch_price": 599, "cogs": 305},
				"adoption":               gin.H{"pessimistic": 0.05, "base": 0.25, "optimistic": 0.40},
				"fixed_costs":            gin.H{"salaries": 1},
				"pilot":                  gin.H{"b2b_units": 1, "b2c_units": 1},
				"year1_b2c_units":        gin.H{"pessimistic": 1, "base": 1, "optimistic": 1},
			},
		},
		"options": gin.H{"skip_pilot": true},
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/pnl", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PnLResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Pilot)
	assert.Equal(t, 100000.0, resp.AnnualDemand)
	assert.Equal(t, 25000.0, resp.Year1[1].B2BUnits)
}

func TestComputePnL_InvalidAdoptionRejected(t *testing.T) {
	r := testRouter()
	body := gin.H{
		"config": gin.H{
			"assumptions": gin.H{
				"active_bikes":           1000,
				"bags_per_bike_per_year": 1,
				"adoption":               gin.H{"pessimistic": 0.05, "base": 1.4, "optimistic": 0.20},
			},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/pnl", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestComputeBreakeven_BaseScenario(t *testing.T) {
	r := testRouter()
	w := doJSON(t, r, http.MethodPost, "/api/v1/breakeven", gin.H{
		"config":   gin.H{},
		"scenario": "base",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BreakevenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "BASE", resp.Scenario)
	assert.Equal(t, "blended", resp.Line)
	assert.True(t, resp.Achievable)
	assert.Greater(t, resp.BreakevenUnits, int64(0))
	assert.Len(t, resp.Curve, 50)
}

func TestComputeBreakeven_UnreachableIsAnOutcomeNotAnError(t *testing.T) {
	r := testRouter()
	// Launch price equal to COGS on both lines: zero contribution.
	body := gin.H{
		"config": gin.H{
			"assumptions": gin.H{
				"active_bikes":           1000,
				"bags_per_bike_per_year": 1,
				"b2b":                    gin.H{"pilot_price": 10, "launch_price": 10, "cogs": 10},
				"b2c":                    gin.H{"pilot_price": 10, "launch_price": 10, "cogs": 10},
				"adoption":               gin.H{"pessimistic": 0.05, "base": 0.10, "optimistic": 0.20},
				"fixed_costs":            gin.H{"ops": 5000},
				"pilot":                  gin.H{"b2b_units": 1, "b2c_units": 1},
				"year1_b2c_units":        gin.H{"pessimistic": 1, "base": 1, "optimistic": 1},
			},
		},
		"scenario": "base",
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/breakeven", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BreakevenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Achievable)
	assert.Empty(t, resp.Curve)
}

func TestComputeBreakeven_UnknownScenario(t *testing.T) {
	r := testRouter()
	w := doJSON(t, r, http.MethodPost, "/api/v1/breakeven", gin.H{
		"config":   gin.H{},
		"scenario": "moonshot",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComputeSensitivity_DefaultSweep(t *testing.T) {
	r := testRouter()
	w := doJSON(t, r, http.MethodPost, "/api/v1/sensitivity", gin.H{"config": gin.H{}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SensitivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 900, resp.B2CUnits)
	require.Len(t, resp.Rows, 3)
	assert.Equal(t, 0.15, resp.Rows[0].AdoptionRate)
	assert.Equal(t, 0.25, resp.Rows[1].AdoptionRate)
	assert.Equal(t, 0.40, resp.Rows[2].AdoptionRate)
}

func TestListScenarios(t *testing.T) {
	r := testRouter()
	w := doJSON(t, r, http.MethodGet, "/api/v1/scenarios", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Scenarios []models.ScenarioInfo `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Scenarios, 3)
	assert.Equal(t, "PESSIMISTIC", resp.Scenarios[0].Name)
}
