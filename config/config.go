// Package config parses a task-set description from YAML and builds
// the concrete rta/* bound values and scheduler-policy orchestrator
// call it describes, the same role cmd/default_config.go plays for
// inference-sim's model-defaults file.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brandenburg-rta/rta-bounds/rta/arrival"
	"github.com/brandenburg-rta/rta-bounds/rta/cost"
	"github.com/brandenburg-rta/rta-bounds/rta/demand"
	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/supply"
)

// TaskSpec describes one task's arrival and cost model.
type TaskSpec struct {
	Name     string `yaml:"name"`
	Arrival  string `yaml:"arrival"` // "periodic" or "sporadic"
	Period   uint64 `yaml:"period"`
	Jitter   uint64 `yaml:"jitter"`
	WCET     uint64 `yaml:"wcet"`
	Priority int    `yaml:"priority"` // lower value = higher priority, for fp
	Deadline uint64 `yaml:"deadline"`
}

// SupplySpec describes the processor or resource partition model.
type SupplySpec struct {
	Kind     string `yaml:"kind"` // "dedicated", "periodic", "constrained"
	Period   uint64 `yaml:"period"`
	Budget   uint64 `yaml:"budget"`
	Deadline uint64 `yaml:"deadline"`
}

// TaskSetSpec is the top-level document describing a whole analysis
// run: the scheduling policy, the supply model, and the task set.
type TaskSetSpec struct {
	Policy          string     `yaml:"policy"` // "fp", "edf", "fifo"
	BusyWindowLimit uint64     `yaml:"busy_window_limit"`
	Supply          SupplySpec `yaml:"supply"`
	Tasks           []TaskSpec `yaml:"tasks"`
}

// Load reads and strictly parses a task-set document from path,
// rejecting unknown fields the way inference-sim's defaults.yaml
// loader does, so a typo in a task-set file fails loudly instead of
// silently analyzing the wrong system.
func Load(path string) (*TaskSetSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var spec TaskSetSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &spec, nil
}

// ArrivalBound builds the concrete arrival.Bound this task describes.
func (t TaskSpec) ArrivalBound() (arrival.Bound, error) {
	switch t.Arrival {
	case "periodic":
		return arrival.NewPeriodic(ptime.Duration(t.Period)), nil
	case "sporadic":
		return arrival.NewSporadic(ptime.Duration(t.Period), ptime.Duration(t.Jitter)), nil
	default:
		return nil, fmt.Errorf("config: task %q: unknown arrival kind %q", t.Name, t.Arrival)
	}
}

// Demand builds this task's request-bound function.
func (t TaskSpec) Demand() (demand.RBF, error) {
	a, err := t.ArrivalBound()
	if err != nil {
		return demand.RBF{}, err
	}
	return demand.NewRBF(a, cost.NewScalar(ptime.Service(t.WCET))), nil
}

// SupplyBound builds the concrete supply.Bound this spec describes.
func (s SupplySpec) SupplyBound() (supply.Bound, error) {
	switch s.Kind {
	case "", "dedicated":
		return supply.Dedicated{}, nil
	case "periodic":
		return supply.NewPeriodic(ptime.Duration(s.Period), ptime.Duration(s.Budget)), nil
	case "constrained":
		return supply.NewConstrained(ptime.Duration(s.Period), ptime.Duration(s.Budget), ptime.Duration(s.Deadline)), nil
	default:
		return nil, fmt.Errorf("config: unknown supply kind %q", s.Kind)
	}
}
