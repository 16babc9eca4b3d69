package models

// ModelConfig carries the assumption inputs for a computation request.
// Either a preset file reference, inline assumptions, or both (inline
// fields override the preset, zero values meaning "keep the preset's").
type ModelConfig struct {
	PresetFile  string             `json:"preset_file,omitempty"`
	Assumptions *AssumptionsConfig `json:"assumptions,omitempty"`
}

// AssumptionsConfig is the JSON shape of an assumption snapshot.
// Currency amounts arrive as plain numbers and are converted to decimals
// before any arithmetic happens.
type AssumptionsConfig struct {
	Name               string  `json:"name,omitempty"`
	ActiveBikes        int     `json:"active_bikes"`
	BagsPerBikePerYear float64 `json:"bags_per_bike_per_year"`

	B2B ProductConfig `json:"b2b"`
	B2C ProductConfig `json:"b2c"`

	Adoption ScenarioRates `json:"adoption"`

	FixedCosts map[string]float64 `json:"fixed_costs"`

	Pilot    PilotConfig   `json:"pilot"`
	Year1B2C ScenarioUnits `json:"year1_b2c_units"`
}

// ProductConfig defines one product line's per-unit economics.
type ProductConfig struct {
	PilotPrice  float64 `json:"pilot_price"`
	LaunchPrice float64 `json:"launch_price"`
	COGS        float64 `json:"cogs"`
}

// ScenarioRates holds one value per scenario, as adoption fractions.
type ScenarioRates struct {
	Pessimistic float64 `json:"pessimistic"`
	Base        float64 `json:"base"`
	Optimistic  float64 `json:"optimistic"`
}

// ScenarioUnits holds one unit count per scenario.
type ScenarioUnits struct {
	Pessimistic int `json:"pessimistic"`
	Base        int `json:"base"`
	Optimistic  int `json:"optimistic"`
}

// PilotConfig holds the scenario-independent pilot volumes.
type PilotConfig struct {
	B2BUnits int `json:"b2b_units"`
	B2CUnits int `json:"b2c_units"`
}

// PnLRequest represents the request body for computing pilot and Year-1 P&L
type PnLRequest struct {
	Config  ModelConfig `json:"config"`
	Options PnLOptions  `json:"options,omitempty"`
}

// PnLOptions contains optional P&L parameters
type PnLOptions struct {
	SkipPilot bool `json:"skip_pilot,omitempty"` // default: include the pilot phase
}

// BreakevenRequest represents the request body for breakeven analysis.
// Line selects which economics feed the contribution margin:
// "b2b", "b2c", or "blended" (default) for the scenario's weighted mix.
type BreakevenRequest struct {
	Config   ModelConfig  `json:"config"`
	Scenario string       `json:"scenario" binding:"required"`
	Line     string       `json:"line,omitempty"`
	Curve    CurveOptions `json:"curve,omitempty"`
}

// CurveOptions overrides the default profit-curve window
// (1.5x breakeven units, 50 samples).
type CurveOptions struct {
	MaxUnits float64 `json:"max_units,omitempty"`
	Samples  int     `json:"samples,omitempty"`
}

// SensitivityRequest represents the request body for an adoption-rate sweep
type SensitivityRequest struct {
	Config        ModelConfig `json:"config"`
	AdoptionRates []float64   `json:"adoption_rates,omitempty"` // default: 0.15, 0.25, 0.40
	B2CUnits      *int        `json:"b2c_units,omitempty"`      // default: the base-scenario Year-1 B2C volume
}
