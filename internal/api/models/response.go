package models

import "github.com/shopspring/decimal"

// PnLResponse represents the response from a P&L computation
type PnLResponse struct {
	AnnualDemand float64       `json:"annual_demand_units"`
	Pilot        *PnLRow       `json:"pilot,omitempty"`
	Year1        []ScenarioRow `json:"year1"`
}

// PnLRow is one computed profit-and-loss statement
type PnLRow struct {
	B2BUnits    float64         `json:"b2b_units"`
	B2CUnits    float64         `json:"b2c_units"`
	Revenue     decimal.Decimal `json:"revenue"`
	COGS        decimal.Decimal `json:"cogs"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
	FixedCosts  decimal.Decimal `json:"fixed_costs"`
	EBIT        decimal.Decimal `json:"ebit"`

	GrossMarginPct      float64         `json:"gross_margin_pct"`
	EBITMarginPct       float64         `json:"ebit_margin_pct"`
	ContributionPerUnit decimal.Decimal `json:"contribution_per_unit"`
}

// ScenarioRow is a PnLRow tagged with its scenario
type ScenarioRow struct {
	Scenario string `json:"scenario"`
	PnLRow
}

// BreakevenResponse represents the response from a breakeven analysis
type BreakevenResponse struct {
	Scenario            string          `json:"scenario"`
	Line                string          `json:"line"`
	ContributionPerUnit decimal.Decimal `json:"contribution_per_unit"`
	Achievable          bool            `json:"achievable"`
	BreakevenUnits      int64           `json:"breakeven_units,omitempty"`
	BreakevenB2BUnits   float64         `json:"breakeven_b2b_units,omitempty"`
	BreakevenB2CUnits   float64         `json:"breakeven_b2c_units,omitempty"`
	Curve               []CurvePoint    `json:"curve,omitempty"`
}

// CurvePoint is one sample of the cumulative-profit chart
type CurvePoint struct {
	Units            float64         `json:"units"`
	CumulativeProfit decimal.Decimal `json:"cumulative_profit"`
}

// SensitivityResponse represents the response from an adoption-rate sweep
type SensitivityResponse struct {
	AnnualDemand float64          `json:"annual_demand_units"`
	B2CUnits     int              `json:"b2c_units"`
	Rows         []SensitivityRow `json:"rows"`
}

// SensitivityRow is one row of the sweep, in input order
type SensitivityRow struct {
	AdoptionRate float64 `json:"adoption_rate"`
	PnLRow
}

// ScenarioInfo describes one member of the closed scenario set
type ScenarioInfo struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DefaultAdoption float64 `json:"default_adoption"`
}

// PresetInfo represents information about an assumptions preset
type PresetInfo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	File  string      `json:"file"`
	Specs PresetSpecs `json:"specs"`
}

// PresetSpecs contains the headline numbers of a preset
type PresetSpecs struct {
	ActiveBikes        int     `json:"active_bikes"`
	BagsPerBikePerYear float64 `json:"bags_per_bike_per_year"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
