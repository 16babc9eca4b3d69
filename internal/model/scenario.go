package model

import "fmt"

// Scenario is a named adoption scenario.
// Keep these values stable; they are intended for JSON/CSV output.
type Scenario string

const (
	ScenarioPessimistic Scenario = "PESSIMISTIC"
	ScenarioBase        Scenario = "BASE"
	ScenarioOptimistic  Scenario = "OPTIMISTIC"
)

// Scenarios lists the closed scenario set in presentation order.
// Every per-scenario computation iterates this slice so that output
// ordering is identical everywhere.
var Scenarios = []Scenario{ScenarioPessimistic, ScenarioBase, ScenarioOptimistic}

func ParseScenario(s string) (Scenario, error) {
	switch s {
	case string(ScenarioPessimistic), "pessimistic", "Pessimistic":
		return ScenarioPessimistic, nil
	case string(ScenarioBase), "base", "Base":
		return ScenarioBase, nil
	case string(ScenarioOptimistic), "optimistic", "Optimistic":
		return ScenarioOptimistic, nil
	default:
		return "", fmt.Errorf("%w: unknown scenario %q", ErrInvalidInput, s)
	}
}

func (s Scenario) String() string { return string(s) }
