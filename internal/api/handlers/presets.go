package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"scenario-model/internal/api/models"
	"scenario-model/internal/config"
)

// PresetHandler serves the assumption presets shipped with the model.
type PresetHandler struct {
	presetDir string
	log       *logrus.Logger
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(log *logrus.Logger) *PresetHandler {
	dir := PresetDir()
	log.WithField("dir", dir).Info("using preset directory")
	return &PresetHandler{presetDir: dir, log: log}
}

// GetPresetDir returns the preset directory path (for diagnostics)
func (h *PresetHandler) GetPresetDir() string {
	return h.presetDir
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	presets := []models.PresetInfo{}

	entries, err := os.ReadDir(h.presetDir)
	if err != nil {
		h.log.WithError(err).WithField("dir", h.presetDir).Warn("failed to read preset directory")
		c.JSON(http.StatusOK, gin.H{"presets": presets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.presetDir, entry.Name())
		info, err := h.loadPresetInfo(path, entry.Name())
		if err != nil {
			h.log.WithError(err).WithField("file", path).Warn("skipping invalid preset")
			continue
		}
		presets = append(presets, *info)
	}

	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

func (h *PresetHandler) loadPresetInfo(path, filename string) (*models.PresetInfo, error) {
	a, err := config.LoadPreset(path)
	if err != nil {
		return nil, err
	}

	id := strings.TrimSuffix(filename, ".yaml")
	name := a.Name
	if name == "" {
		name = id
	}

	return &models.PresetInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.PresetSpecs{
			ActiveBikes:        a.ActiveBikes,
			BagsPerBikePerYear: a.BagsPerBikePerYear,
		},
	}, nil
}
