package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"scenario-model/internal/analysis"
	"scenario-model/internal/api/models"
	"scenario-model/internal/config"
	"scenario-model/internal/engine"
	"scenario-model/internal/model"
)

// PresetDir resolves the directory holding assumption presets.
func PresetDir() string {
	dir := os.Getenv("PRESET_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "presets")
		} else {
			dir = "./examples/presets"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// buildAssumptions turns a request's ModelConfig into a validated
// AssumptionSet: preset file first, inline overrides on top. With neither
// provided the stock defaults apply, so a bare request still computes.
func buildAssumptions(mc models.ModelConfig) (*model.AssumptionSet, error) {
	if mc.PresetFile == "" && mc.Assumptions == nil {
		return model.DefaultAssumptions(), nil
	}

	var base config.AssumptionsConfig
	if mc.PresetFile != "" {
		loaded, err := config.LoadPreset(resolvePresetPath(mc.PresetFile))
		if err != nil {
			return nil, err
		}
		base = loaded
	}
	if mc.Assumptions != nil {
		base = config.MergeAssumptions(base, toConfigAssumptions(*mc.Assumptions))
	}
	return base.ToModel()
}

func resolvePresetPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if !strings.HasSuffix(name, ".yaml") {
		name += ".yaml"
	}
	return filepath.Join(PresetDir(), name)
}

func toConfigAssumptions(a models.AssumptionsConfig) config.AssumptionsConfig {
	return config.AssumptionsConfig{
		Name:               a.Name,
		ActiveBikes:        a.ActiveBikes,
		BagsPerBikePerYear: a.BagsPerBikePerYear,
		B2B: config.ProductConfig{
			PilotPrice:  a.B2B.PilotPrice,
			LaunchPrice: a.B2B.LaunchPrice,
			COGS:        a.B2B.COGS,
		},
		B2C: config.ProductConfig{
			PilotPrice:  a.B2C.PilotPrice,
			LaunchPrice: a.B2C.LaunchPrice,
			COGS:        a.B2C.COGS,
		},
		Adoption: config.ScenarioRates{
			Pessimistic: a.Adoption.Pessimistic,
			Base:        a.Adoption.Base,
			Optimistic:  a.Adoption.Optimistic,
		},
		FixedCosts: a.FixedCosts,
		Pilot: config.PilotConfig{
			B2BUnits: a.Pilot.B2BUnits,
			B2CUnits: a.Pilot.B2CUnits,
		},
		Year1B2C: config.ScenarioUnits{
			Pessimistic: a.Year1B2C.Pessimistic,
			Base:        a.Year1B2C.Base,
			Optimistic:  a.Year1B2C.Optimistic,
		},
	}
}

func toPnLRow(vol engine.VolumeMix, pnl engine.PnLStatement) models.PnLRow {
	s := analysis.Summarize(pnl, vol.Total())
	return models.PnLRow{
		B2BUnits:            vol.B2B,
		B2CUnits:            vol.B2C,
		Revenue:             pnl.Revenue,
		COGS:                pnl.COGS,
		GrossProfit:         pnl.GrossProfit,
		FixedCosts:          pnl.FixedCosts,
		EBIT:                pnl.EBIT,
		GrossMarginPct:      s.GrossMarginPct,
		EBITMarginPct:       s.EBITMarginPct,
		ContributionPerUnit: s.BlendedContributionPerUnit,
	}
}

func respondError(c *gin.Context, status int, code string, err error) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

// respondComputeError maps engine errors to HTTP statuses: validation
// failures are the caller's fault, anything else is ours.
func respondComputeError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, "INVALID_INPUT", err)
		return
	}
	respondError(c, http.StatusInternalServerError, "COMPUTE_ERROR", err)
}
