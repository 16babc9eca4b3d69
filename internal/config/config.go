package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"scenario-model/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load assumptions from a separate YAML preset
	// (e.g. examples/presets/*.yaml). If both AssumptionsFile and
	// Assumptions are provided, non-zero Assumptions fields override the file.
	AssumptionsFile string            `yaml:"assumptions_file"`
	Assumptions     AssumptionsConfig `yaml:"assumptions"`
}

// AssumptionsConfig mirrors model.AssumptionSet with YAML-friendly types.
// Currency amounts are plain numbers here and become decimals on conversion.
type AssumptionsConfig struct {
	Name               string  `yaml:"name"`
	ActiveBikes        int     `yaml:"active_bikes"`
	BagsPerBikePerYear float64 `yaml:"bags_per_bike_per_year"`

	B2B ProductConfig `yaml:"b2b"`
	B2C ProductConfig `yaml:"b2c"`

	Adoption ScenarioRates `yaml:"adoption"`

	FixedCosts map[string]float64 `yaml:"fixed_costs"`

	Pilot    PilotConfig   `yaml:"pilot"`
	Year1B2C ScenarioUnits `yaml:"year1_b2c_units"`
}

type ProductConfig struct {
	PilotPrice  float64 `yaml:"pilot_price"`
	LaunchPrice float64 `yaml:"launch_price"`
	COGS        float64 `yaml:"cogs"`
}

type ScenarioRates struct {
	Pessimistic float64 `yaml:"pessimistic"`
	Base        float64 `yaml:"base"`
	Optimistic  float64 `yaml:"optimistic"`
}

type ScenarioUnits struct {
	Pessimistic int `yaml:"pessimistic"`
	Base        int `yaml:"base"`
	Optimistic  int `yaml:"optimistic"`
}

type PilotConfig struct {
	B2BUnits int `yaml:"b2b_units"`
	B2CUnits int `yaml:"b2c_units"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If assumptions_file is set, load it and merge in any explicit
	// overrides from c.Assumptions.
	if c.AssumptionsFile != "" {
		presetPath := c.AssumptionsFile
		if !filepath.IsAbs(presetPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), presetPath)
			if _, err := os.Stat(cand); err == nil {
				presetPath = cand
			}
		}
		loaded, err := loadPresetFile(presetPath)
		if err != nil {
			return nil, err
		}
		c.Assumptions = MergeAssumptions(loaded, c.Assumptions)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate by constructing the model object.
	if _, err := c.Assumptions.ToModel(); err != nil {
		return fmt.Errorf("assumptions config invalid: %w", err)
	}
	return nil
}

// ToModel converts the YAML shape into a validated AssumptionSet.
func (a AssumptionsConfig) ToModel() (*model.AssumptionSet, error) {
	return model.NewAssumptionSet(model.AssumptionSet{
		ActiveBikes:        a.ActiveBikes,
		BagsPerBikePerYear: a.BagsPerBikePerYear,
		B2B:                a.B2B.toModel(),
		B2C:                a.B2C.toModel(),
		AdoptionRate: map[model.Scenario]float64{
			model.ScenarioPessimistic: a.Adoption.Pessimistic,
			model.ScenarioBase:        a.Adoption.Base,
			model.ScenarioOptimistic:  a.Adoption.Optimistic,
		},
		FixedCosts: costsToModel(a.FixedCosts),
		Pilot:      model.PilotVolumes{B2B: a.Pilot.B2BUnits, B2C: a.Pilot.B2CUnits},
		Year1B2CVolume: map[model.Scenario]int{
			model.ScenarioPessimistic: a.Year1B2C.Pessimistic,
			model.ScenarioBase:        a.Year1B2C.Base,
			model.ScenarioOptimistic:  a.Year1B2C.Optimistic,
		},
	})
}

func (p ProductConfig) toModel() model.ProductPricing {
	return model.ProductPricing{
		PilotPrice:  decimal.NewFromFloat(p.PilotPrice),
		LaunchPrice: decimal.NewFromFloat(p.LaunchPrice),
		COGS:        decimal.NewFromFloat(p.COGS),
	}
}

func costsToModel(m map[string]float64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		out[k] = decimal.NewFromFloat(v)
	}
	return out
}

type presetFileWrapper struct {
	Assumptions AssumptionsConfig `yaml:"assumptions"`
}

// LoadPreset reads a standalone assumptions preset file.
func LoadPreset(path string) (AssumptionsConfig, error) {
	return loadPresetFile(path)
}

func loadPresetFile(path string) (AssumptionsConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return AssumptionsConfig{}, err
	}
	var w presetFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return AssumptionsConfig{}, err
	}
	return w.Assumptions, nil
}

// MergeAssumptions overlays non-zero fields from override onto base.
// This is used when loading a preset file and then applying overrides from
// the config or an API request.
func MergeAssumptions(base, override AssumptionsConfig) AssumptionsConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.ActiveBikes != 0 {
		out.ActiveBikes = override.ActiveBikes
	}
	if override.BagsPerBikePerYear != 0 {
		out.BagsPerBikePerYear = override.BagsPerBikePerYear
	}
	out.B2B = mergeProduct(base.B2B, override.B2B)
	out.B2C = mergeProduct(base.B2C, override.B2C)
	if override.Adoption != (ScenarioRates{}) {
		out.Adoption = override.Adoption
	}
	if len(override.FixedCosts) > 0 {
		merged := make(map[string]float64, len(base.FixedCosts)+len(override.FixedCosts))
		for k, v := range base.FixedCosts {
			merged[k] = v
		}
		for k, v := range override.FixedCosts {
			merged[k] = v
		}
		out.FixedCosts = merged
	}
	if override.Pilot != (PilotConfig{}) {
		out.Pilot = override.Pilot
	}
	if override.Year1B2C != (ScenarioUnits{}) {
		out.Year1B2C = override.Year1B2C
	}
	return out
}

func mergeProduct(base, override ProductConfig) ProductConfig {
	out := base
	if override.PilotPrice != 0 {
		out.PilotPrice = override.PilotPrice
	}
	if override.LaunchPrice != 0 {
		out.LaunchPrice = override.LaunchPrice
	}
	if override.COGS != 0 {
		out.COGS = override.COGS
	}
	return out
}
