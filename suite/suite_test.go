package suite

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/roadgen/config"
	"github.com/lixenwraith/roadgen/scenario"
)

func scenarios() []scenario.Scenario {
	return []scenario.Scenario{
		{
			{Kind: scenario.Straight, Value: 50},
			{Kind: scenario.Left, Value: 20},
			{Kind: scenario.Right, Value: 20},
		},
		{},
		{{Kind: scenario.Right, Value: 75}},
	}
}

func TestManager_SaveLoadRoundTrip(t *testing.T) {
	m := NewManager(t.TempDir() + "/nested")
	cfg := config.Default()
	cfg.Generation.Encoding = scenario.EncodingCurvature

	s := FromScenarios(scenarios())
	s.Seed = 42
	s.Config = &cfg

	assert.False(t, m.Exists("smoke"))
	require.NoError(t, m.Save("smoke", s))
	assert.True(t, m.Exists("smoke"))

	loaded, err := m.Load("smoke")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), loaded.Seed)
	require.NotNil(t, loaded.Config)
	assert.Equal(t, cfg, *loaded.Config)

	got, err := loaded.ToScenarios()
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, want := range scenarios() {
		assert.True(t, want.Equal(got[i]), "scenario %d: want %v got %v", i, want, got[i])
	}
}

func TestSuite_KindsAreReadable(t *testing.T) {
	m := NewManager(t.TempDir())
	require.NoError(t, m.Save("kinds", FromScenarios(scenarios()[:1])))

	data, err := os.ReadFile(m.FilePath("kinds"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: straight")
	assert.Contains(t, string(data), "kind: left")
	assert.NotContains(t, string(data), "points")
}

func TestSuite_AttachPoints(t *testing.T) {
	codec := config.Default().Codec()
	s := FromScenarios(scenarios())
	require.NoError(t, s.AttachPoints(codec))

	dense := codec.Dense(scenarios()[0])
	require.Len(t, s.Scenarios[0].Points, len(dense))
	assert.InDelta(t, dense[0].X, s.Scenarios[0].Points[0][0], 1e-3)
	assert.InDelta(t, dense[len(dense)-1].Y, s.Scenarios[0].Points[len(dense)-1][1], 1e-3)
	assert.Empty(t, s.Scenarios[1].Points)

	m := NewManager(t.TempDir())
	require.NoError(t, m.Save("dense", s))
	loaded, err := m.Load("dense")
	require.NoError(t, err)
	assert.Equal(t, s.Scenarios[0].Points, loaded.Scenarios[0].Points)
}

func TestSuite_RejectsBadManeuvers(t *testing.T) {
	s := Suite{Scenarios: []ScenarioDTO{{Maneuvers: []ManeuverDTO{{Kind: "uturn", Value: 3}}}}}
	_, err := s.ToScenarios()
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.ErrorIs(t, err, scenario.ErrUnknownKind)

	s = Suite{Scenarios: []ScenarioDTO{{Maneuvers: []ManeuverDTO{{Kind: "LEFT", Value: -1}}}}}
	_, err = s.ToScenarios()
	assert.ErrorIs(t, err, ErrNegativeValue)

	assert.Error(t, s.AttachPoints(config.Default().Codec()))
}

func TestManager_LoadErrors(t *testing.T) {
	m := NewManager(t.TempDir())

	_, err := m.Load("missing")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(m.FilePath("broken"), []byte("scenarios: [unterminated"), 0644))
	_, err = m.Load("broken")
	assert.Error(t, err)
}
