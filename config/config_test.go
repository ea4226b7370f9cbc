package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandenburg-rta/rta-bounds/rta/supply"
)

const sampleYAML = `
policy: fp
busy_window_limit: 1000
supply:
  kind: dedicated
tasks:
  - name: low
    arrival: periodic
    period: 20
    wcet: 3
    priority: 2
  - name: high
    arrival: periodic
    period: 10
    wcet: 2
    priority: 1
`

func writeSample(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taskset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_ParsesValidDocument(t *testing.T) {
	path := writeSample(t, sampleYAML)
	spec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fp", spec.Policy)
	require.Len(t, spec.Tasks, 2)
	assert.Equal(t, "low", spec.Tasks[0].Name)
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	path := writeSample(t, sampleYAML+"\nbogus_field: true\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/no/such/file.yaml")
	assert.Error(t, err)
}

func TestTaskSpec_ArrivalBound_UnknownKindErrors(t *testing.T) {
	ts := TaskSpec{Name: "x", Arrival: "bogus"}
	_, err := ts.ArrivalBound()
	assert.Error(t, err)
}

func TestSupplySpec_SupplyBound_DefaultsToDedicated(t *testing.T) {
	s := SupplySpec{}
	b, err := s.SupplyBound()
	require.NoError(t, err)
	assert.IsType(t, supply.Dedicated{}, b)
}

func TestAnalyze_FixedPriority(t *testing.T) {
	path := writeSample(t, sampleYAML)
	spec, err := Load(path)
	require.NoError(t, err)

	results, err := Analyze(spec)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byName := map[string]int{}
	for i, r := range results {
		byName[r.Name] = i
	}
	// High priority task sees no interference: R = WCET = 2.
	assert.EqualValues(t, 2, results[byName["high"]].ResponseTime)
}

func TestAnalyze_UnknownPolicyErrors(t *testing.T) {
	spec := &TaskSetSpec{Policy: "round-robin"}
	_, err := Analyze(spec)
	assert.Error(t, err)
}
