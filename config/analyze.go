package config

import (
	"fmt"
	"sort"

	"github.com/brandenburg-rta/rta-bounds/rta/demand"
	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/sched/edf"
	"github.com/brandenburg-rta/rta-bounds/rta/sched/fifo"
	"github.com/brandenburg-rta/rta-bounds/rta/sched/fp"
	"github.com/brandenburg-rta/rta-bounds/rta/supply"
)

// TaskResult is one task's computed worst-case response-time bound.
type TaskResult struct {
	Name         string
	ResponseTime ptime.Duration
}

// Analyze builds the concrete bounds described by spec and runs the
// scheduler-policy orchestrator matching spec.Policy against every
// task, returning one response-time bound per task.
func Analyze(spec *TaskSetSpec) ([]TaskResult, error) {
	supplyBound, err := spec.Supply.SupplyBound()
	if err != nil {
		return nil, err
	}
	limit := ptime.Duration(spec.BusyWindowLimit)

	switch spec.Policy {
	case "fp":
		return analyzeFP(spec, supplyBound, limit)
	case "edf":
		return analyzeEDF(spec, supplyBound, limit)
	case "fifo":
		return analyzeFIFO(spec, supplyBound, limit)
	default:
		return nil, fmt.Errorf("config: unknown policy %q", spec.Policy)
	}
}

func buildDemands(spec *TaskSetSpec) ([]demand.RBF, error) {
	out := make([]demand.RBF, len(spec.Tasks))
	for i, task := range spec.Tasks {
		d, err := task.Demand()
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func analyzeFP(spec *TaskSetSpec, supplyBound supply.Bound, limit ptime.Duration) ([]TaskResult, error) {
	order := append([]TaskSpec(nil), spec.Tasks...)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Priority < order[j].Priority })

	results := make([]TaskResult, 0, len(order))
	for i, task := range order {
		own, err := task.Demand()
		if err != nil {
			return nil, err
		}
		hp := make([]demand.Bound, 0, i)
		for _, higher := range order[:i] {
			d, err := higher.Demand()
			if err != nil {
				return nil, err
			}
			hp = append(hp, d)
		}
		r, err := fp.FullyPreemptive(fp.Task{
			OwnCost:         own.Cost.LeastWCET(),
			HigherPriority:  hp,
			SupplyBound:     supplyBound,
			BusyWindowLimit: limit,
		})
		if err != nil {
			return nil, fmt.Errorf("config: task %q: %w", task.Name, err)
		}
		results = append(results, TaskResult{Name: task.Name, ResponseTime: r})
	}
	return results, nil
}

func analyzeEDF(spec *TaskSetSpec, supplyBound supply.Bound, limit ptime.Duration) ([]TaskResult, error) {
	demands, err := buildDemands(spec)
	if err != nil {
		return nil, err
	}
	bounds := make([]demand.Bound, len(demands))
	for i, d := range demands {
		bounds[i] = d
	}
	w, err := edf.FullyPreemptive(edf.TaskSet{Tasks: bounds, SupplyBound: supplyBound, BusyWindowLimit: limit})
	if err != nil {
		return nil, err
	}
	results := make([]TaskResult, len(spec.Tasks))
	for i, task := range spec.Tasks {
		results[i] = TaskResult{Name: task.Name, ResponseTime: w}
	}
	return results, nil
}

func analyzeFIFO(spec *TaskSetSpec, supplyBound supply.Bound, limit ptime.Duration) ([]TaskResult, error) {
	demands, err := buildDemands(spec)
	if err != nil {
		return nil, err
	}
	bounds := make([]demand.Bound, len(demands))
	for i, d := range demands {
		bounds[i] = d
	}
	w, err := fifo.RTA(fifo.TaskSet{Tasks: bounds, SupplyBound: supplyBound, BusyWindowLimit: limit})
	if err != nil {
		return nil, err
	}
	results := make([]TaskResult, len(spec.Tasks))
	for i, task := range spec.Tasks {
		results[i] = TaskResult{Name: task.Name, ResponseTime: w}
	}
	return results, nil
}
