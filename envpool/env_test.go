package envpool_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CWHer/Gobang-Env/envpool"
)

func testConfig() envpool.Config {
	cfg := envpool.DefaultConfig()
	cfg.BoardSize = 5
	cfg.WinLength = 4
	cfg.NumPlayerPlanes = 2
	cfg.NumSearch = 30
	return cfg
}

func TestConfigValidateCollectsEveryError(t *testing.T) {
	cfg := envpool.Config{BoardSize: -1, WinLength: 99, NumPlayerPlanes: 0, CPuct: -1, NumSearch: 0}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "board_size")
	assert.Contains(t, err.Error(), "win_length")
	assert.Contains(t, err.Error(), "num_player_planes")
	assert.Contains(t, err.Error(), "c_puct")
	assert.Contains(t, err.Error(), "num_search")
}

func TestNewEnvRejectsInvalidConfig(t *testing.T) {
	_, err := envpool.NewEnv(envpool.Config{})
	assert.Error(t, err)
}

func uniformPriors(n int) []float32 {
	p := make([]float32, n)
	w := 1 / float32(n)
	for i := range p {
		p[i] = w
	}
	return p
}

func playUntilMoveChosen(env *envpool.Env, obs envpool.Observation, priors []float32) envpool.Observation {
	for !obs.IsPlayerDone {
		obs = env.Step(envpool.StepInput{PriorProbs: priors, Value: 0})
	}
	action := 0
	best := -1
	for a, v := range obs.MCTSResult {
		if v > best {
			best, action = v, a
		}
	}
	return env.Step(envpool.StepInput{SelectedAction: action})
}

// TestEnvRunsToCompletion covers spec.md scenario 6: a single env pushed
// through Reset/Step to a finished game.
func TestEnvRunsToCompletion(t *testing.T) {
	cfg := testConfig()
	env, err := envpool.NewEnv(cfg)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	priors := uniformPriors(cfg.BoardSize * cfg.BoardSize)

	obs := env.Reset(rng)
	steps := 0
	for !env.Done() {
		obs = playUntilMoveChosen(env, obs, priors)
		steps++
		require.LessOrEqual(t, steps, cfg.BoardSize*cfg.BoardSize)
	}
	assert.True(t, obs.Winner == -1 || obs.Winner == 0 || obs.Winner == 1)
}

func TestEnvObservationStateShape(t *testing.T) {
	cfg := testConfig()
	env, err := envpool.NewEnv(cfg)
	require.NoError(t, err)

	obs := env.Reset(rand.New(rand.NewSource(1)))
	assert.Equal(t, []int{2*cfg.NumPlayerPlanes + 1, cfg.BoardSize, cfg.BoardSize}, obs.State.Shape())
}
