package envpool

import (
	"math/rand"

	"gorgonia.org/tensor"

	"github.com/CWHer/Gobang-Env/selfplay"
)

// Observation is written by Env on every Reset/Step call, per spec.md
// §4.5. MCTSResult and Winner are only meaningful when IsPlayerDone /
// Done are true respectively; otherwise they carry their sentinel zero
// values (nil and -1).
type Observation struct {
	State           *tensor.Dense
	MCTSResult      []int
	IsPlayerDone    bool
	PlayerStepCount int
	Winner          int
}

// StepInput carries one external-evaluation cycle's payload (spec.md §6):
// PriorProbs/Value score the pending leaf while a search is still running;
// SelectedAction only matters once IsPlayerDone is true.
type StepInput struct {
	PriorProbs     []float32
	Value          float32
	SelectedAction int
}

// Env wraps one self-play episode behind the reset/step/observation
// interface, grounded on original_source/gobang_mcts/gobang_envpool.hpp's
// GobangEnv (no comparable adapter exists in the Go teacher).
type Env struct {
	cfg             Config
	episode         *selfplay.Episode
	playerStepCount int
	done            bool
	obs             Observation
}

// NewEnv validates cfg and returns an unstarted adapter; call Reset before
// Step.
func NewEnv(cfg Config) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Env{cfg: cfg}, nil
}

// Reset starts a fresh self-play episode seeded from rng, runs the first
// internal Step to kick off player 0's search, and returns the first
// observation.
func (e *Env) Reset(rng *rand.Rand) Observation {
	e.episode = selfplay.NewEpisode(e.cfg.BoardSize, e.cfg.WinLength, e.cfg.CPuct, e.cfg.NumSearch, rng)
	e.playerStepCount = 0
	e.done = e.episode.Step(nil, 0, 0)
	if e.done {
		panic("envpool: game ended immediately after reset")
	}
	e.writeObservation()
	return e.obs
}

// Step delegates to the underlying episode and writes the resulting
// observation.
func (e *Env) Step(in StepInput) Observation {
	e.done = e.episode.Step(in.PriorProbs, in.Value, in.SelectedAction)
	e.writeObservation()
	return e.obs
}

// Done reports whether the wrapped episode has finished.
func (e *Env) Done() bool { return e.done }

func (e *Env) writeObservation() {
	isPlayerDone := e.episode.IsPlayerDone
	e.obs = Observation{
		State:           e.episode.GetState(e.cfg.NumPlayerPlanes),
		IsPlayerDone:     isPlayerDone,
		PlayerStepCount: e.playerStepCount,
		Winner:          -1,
	}
	if isPlayerDone {
		e.obs.MCTSResult = e.episode.GetSearchResult()
		e.playerStepCount++
		e.obs.PlayerStepCount = e.playerStepCount
	}
	if e.done {
		e.obs.Winner = e.episode.GetWinner()
	}
}
