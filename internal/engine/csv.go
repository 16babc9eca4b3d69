package engine

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// WriteScenarioCSV writes the Year-1 scenario table in display order.
func WriteScenarioCSV(path string, results []ScenarioResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"scenario",
		"b2b_units",
		"b2c_units",
		"revenue",
		"cogs",
		"gross_profit",
		"fixed_costs",
		"ebit",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			string(r.Scenario),
			fmtUnits(r.Volumes.B2B),
			fmtUnits(r.Volumes.B2C),
			fmtMoney(r.PnL.Revenue),
			fmtMoney(r.PnL.COGS),
			fmtMoney(r.PnL.GrossProfit),
			fmtMoney(r.PnL.FixedCosts),
			fmtMoney(r.PnL.EBIT),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteSensitivityCSV writes the adoption-rate sweep in input order.
func WriteSensitivityCSV(path string, rows []SensitivityRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"adoption_rate", "b2b_units", "b2c_units", "revenue", "gross_profit", "ebit"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			strconv.FormatFloat(r.AdoptionRate, 'f', 4, 64),
			fmtUnits(r.Volumes.B2B),
			fmtUnits(r.Volumes.B2C),
			fmtMoney(r.PnL.Revenue),
			fmtMoney(r.PnL.GrossProfit),
			fmtMoney(r.PnL.EBIT),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteCurveCSV writes a sampled profit curve.
func WriteCurveCSV(path string, points []CurvePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"units", "cumulative_profit"}); err != nil {
		return err
	}
	for _, p := range points {
		if err := w.Write([]string{fmtUnits(p.Units), fmtMoney(p.CumulativeProfit)}); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtUnits(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

func fmtMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
