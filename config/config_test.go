// Package config: tests for scenario loading, env overrides and the
// structural validation contract.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesalab/tesa/core"
)

const yamlScenario = `
name: demo
genus: 1
delta_lower_bound: 0.1
c_epsilon: 0.05
h_l: 8
m_d: 10
workers: 2
places:
  - id: v1
    type: In
    prime: 3
    i0: 1
    n: 1
    conductance: 5
  - id: v2
    type: In
    prime: 2
    i0: 0
    n: 2
`

const tomlScenario = `
name = "demo-toml"
genus = 1
h_l = 8.0
m_d = 10.0

[[places]]
id = "w1"
type = "D4"
prime = 2
i0 = 1
`

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	s, err := Load(writeScenario(t, "demo.yaml", yamlScenario))
	require.NoError(t, err)

	require.Equal(t, "demo", s.Name)
	require.Equal(t, 1, s.Genus)
	require.NotNil(t, s.DeltaLowerBound)
	require.Equal(t, 0.1, *s.DeltaLowerBound)
	require.Equal(t, 2, s.Workers)
	require.Len(t, s.Places, 2)

	// Unset conductance defaults to 1.
	require.Equal(t, 5.0, s.Places[0].Conductance)
	require.Equal(t, DefaultConductance, s.Places[1].Conductance)

	places := s.CorePlaces()
	require.Equal(t, core.TypeIn, places[0].Type)
	require.Equal(t, int64(3), places[0].Prime)
	require.Equal(t, "v2", places[1].ID)
}

func TestLoadTOML(t *testing.T) {
	s, err := Load(writeScenario(t, "demo.toml", tomlScenario))
	require.NoError(t, err)
	require.Equal(t, "demo-toml", s.Name)
	require.Len(t, s.Places, 1)
	require.Equal(t, core.TypeD4, s.CorePlaces()[0].Type)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(writeScenario(t, "demo.json", `{}`))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"WORKERS", "7")
	t.Setenv(EnvPrefix+"DELTA_LOWER_BOUND", "0.25")
	t.Setenv(EnvPrefix+"C_EPSILON", "0.5")

	s, err := Load(writeScenario(t, "demo.yaml", yamlScenario))
	require.NoError(t, err)
	require.Equal(t, 7, s.Workers)
	require.Equal(t, 0.25, *s.DeltaLowerBound)
	require.Equal(t, 0.5, s.CEpsilon)
}

func TestEnvOverridesIgnoreGarbage(t *testing.T) {
	t.Setenv(EnvPrefix+"WORKERS", "many")

	s, err := Load(writeScenario(t, "demo.yaml", yamlScenario))
	require.NoError(t, err)
	require.Equal(t, 2, s.Workers) // file value survives
}

func TestValidateErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		scenario Scenario
		want     error
	}{
		{"missing name", Scenario{Places: []PlaceSpec{{ID: "a"}}}, ErrMissingName},
		{"no places", Scenario{Name: "x"}, ErrNoPlaces},
		{"empty place id", Scenario{Name: "x", Places: []PlaceSpec{{}}}, ErrBadPlace},
		{"negative prime", Scenario{Name: "x", Places: []PlaceSpec{{ID: "a", Prime: -2}}}, ErrBadPlace},
		{"negative i0", Scenario{Name: "x", Places: []PlaceSpec{{ID: "a", I0: -1}}}, ErrBadPlace},
		{"negative conductance", Scenario{Name: "x", Places: []PlaceSpec{{ID: "a", Conductance: -1}}}, ErrBadPlace},
		{"delta out of range", Scenario{Name: "x", DeltaLowerBound: f(1.5), Places: []PlaceSpec{{ID: "a"}}}, ErrBadDeltaBound},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.scenario.Validate(), tc.want)
		})
	}
}

// TestUnknownTypePassesValidation: config must not pre-empt the builder;
// unknown tags stay per-place errors so batch isolation can work.
func TestUnknownTypePassesValidation(t *testing.T) {
	t.Parallel()

	s := Scenario{Name: "x", Places: []PlaceSpec{{ID: "a", Type: "Z9"}}}
	require.NoError(t, s.Validate())
}

func f(v float64) *float64 { return &v }
