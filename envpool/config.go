// Package envpool adapts a self-play episode to the reset/step/observation
// interface external batched-training frameworks expect (spec.md §4.5),
// and multiplexes many such games onto one batch (spec.md §2).
package envpool

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Config holds the recognized options from spec.md §6.
type Config struct {
	BoardSize       int     `json:"board_size"`
	WinLength       int     `json:"win_length"`
	NumPlayerPlanes int     `json:"num_player_planes"`
	CPuct           float32 `json:"c_puct"`
	NumSearch       int     `json:"num_search"`
	VerboseOutput   bool    `json:"verbose_output"`

	// Temp, DirichletAlpha, and DirichletEps are spec.md §6's three sampling
	// hyperparameters, listed there together as "left unused when the
	// caller selects the action externally" — Env/Pool never read any of
	// them; they exist only for callers that sample moves via
	// selfplay.SelectByTemperature or add root noise via mcts.NewRootNoise
	// instead of choosing the action themselves.
	Temp           float32 `json:"temp"`
	DirichletAlpha float64 `json:"dirichlet_alpha"`
	DirichletEps   float64 `json:"dirichlet_eps"`
}

// DefaultConfig returns spec.md §6's recognized defaults.
func DefaultConfig() Config {
	return Config{
		BoardSize:       15,
		WinLength:       5,
		NumPlayerPlanes: 4,
		CPuct:           1.0,
		NumSearch:       1000,
		VerboseOutput:   false,
		Temp:            1.0,
		DirichletAlpha:  0.03,
		DirichletEps:    0.25,
	}
}

// Validate collects every invalid field instead of failing on the first,
// the way the teacher's Agent.Close aggregates per-inferer close errors.
func (c Config) Validate() error {
	var errs *multierror.Error
	if c.BoardSize <= 0 {
		errs = multierror.Append(errs, errors.Errorf("board_size must be positive, got %d", c.BoardSize))
	}
	if c.WinLength <= 0 || c.WinLength > c.BoardSize {
		errs = multierror.Append(errs, errors.Errorf("win_length must be in (0, board_size], got %d", c.WinLength))
	}
	if c.NumPlayerPlanes <= 0 {
		errs = multierror.Append(errs, errors.Errorf("num_player_planes must be positive, got %d", c.NumPlayerPlanes))
	}
	if c.CPuct <= 0 {
		errs = multierror.Append(errs, errors.Errorf("c_puct must be positive, got %f", c.CPuct))
	}
	if c.NumSearch <= 0 {
		errs = multierror.Append(errs, errors.Errorf("num_search must be positive, got %d", c.NumSearch))
	}
	return errs.ErrorOrNil()
}
