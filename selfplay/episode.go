// Package selfplay drives one game between two MCTS players, alternating
// turns and sampling moves from each player's visit-count distribution,
// following the externally-driven contract in
// original_source/gobang_mcts/gobang_selfplay.hpp's GobangSelfPlay::step.
package selfplay

import (
	"math/rand"

	"gorgonia.org/tensor"

	"github.com/CWHer/Gobang-Env/board"
	"github.com/CWHer/Gobang-Env/mcts"
)

const numPlayers = 2

// Episode is a resumable two-player self-play driver over one shared game.
// Like mcts.MCTS, Step is externally driven: it never calls a neural
// network itself, and suspends whenever the active player's search needs
// an evaluation or a move needs to be chosen.
type Episode struct {
	Game    *board.Game
	Players [numPlayers]*mcts.MCTS[board.Snapshot]

	CurrentPlayer int
	Winner        int

	// IsPlayerDone is true once CurrentPlayer's search for this move has
	// finished and ActionsVisits is ready; the caller must then supply
	// chosenAction on the next Step call.
	IsPlayerDone bool
	IsGameDone   bool

	ActionsVisits []mcts.ActionVisit
	History       []int

	rng *rand.Rand
}

// NewEpisode builds a fresh episode on an empty board, one MCTS engine per
// side. Each player gets its own independent game clone (mirroring
// gobang_selfplay.hpp's per-player GobangEnv copy) so the two searches
// never stomp on each other's snapshot while Episode's own Game tracks the
// moves actually played.
//
// rng is seeded by the caller rather than internally from wall-clock time
// (unlike the teacher's Arena, which seeds from time.Now() — fine for
// chess exhibition matches, but self-play training batches need
// per-episode determinism). Episode itself never draws from it; it is held
// for callers that sample a move from ActionsVisits through Rng.
func NewEpisode(boardSize, winLength int, cPuct float32, numSearch int, rng *rand.Rand) *Episode {
	g := board.NewGame(boardSize, winLength)
	ep := &Episode{Game: g, Winner: -1, rng: rng}
	for i := range ep.Players {
		ep.Players[i] = mcts.New[board.Snapshot](cPuct, numSearch, g.Clone())
	}
	return ep
}

// Rng returns the episode's move-sampling random source, for callers
// choosing among ActionsVisits (e.g. via SelectByTemperature).
func (ep *Episode) Rng() *rand.Rand { return ep.rng }

// Step advances the episode by one external evaluation cycle. While the
// active player's search is still running, priorProbs/value score the leaf
// it last suspended on and chosenAction is ignored. Once IsPlayerDone
// becomes true, the caller must pick an action from ActionsVisits and pass
// it as chosenAction; priorProbs/value are then ignored. Returns true once
// the game has ended.
func (ep *Episode) Step(priorProbs []float32, value float32, chosenAction int) (isGameDone bool) {
	if !ep.IsPlayerDone {
		player := ep.Players[ep.CurrentPlayer]
		if !player.Search(priorProbs, value) {
			return false
		}
		ep.ActionsVisits = player.GetResult(false)
		ep.IsPlayerDone = true
		return false
	}

	// Reset unconditionally before the terminal check, the way
	// gobang_selfplay.hpp's step() clears is_player_done immediately on
	// entering the apply-action branch, before checkFinished(). Doing this
	// after the terminal check would leave IsPlayerDone stale-true on the
	// move that ends the game, double-counting it in envpool.Env's
	// PlayerStepCount.
	mover := ep.CurrentPlayer
	ep.IsPlayerDone = false
	ep.ActionsVisits = nil

	ep.History = append(ep.History, chosenAction)
	ep.Game.Step(chosenAction)
	for _, p := range ep.Players {
		p.Step(chosenAction)
	}

	done, winner := ep.Game.Terminal()
	if done {
		if winner != -1 && winner != mover {
			panic("selfplay: terminal winner is neither a draw nor the side that just moved")
		}
		ep.Winner = winner
		ep.IsGameDone = true
		return true
	}

	ep.CurrentPlayer ^= 1
	return false
}

// GetState returns the position the external evaluator is currently being
// asked to score: the active player's pending search root while a search
// is running, or the true board once that player's move is ready to be
// chosen.
func (ep *Episode) GetState(numPlayerPlanes int) *tensor.Dense {
	if !ep.IsPlayerDone {
		return ep.Players[ep.CurrentPlayer].GetState(numPlayerPlanes)
	}
	return ep.Game.Encode(numPlayerPlanes)
}

// GetSearchResult returns a length action-space vector; entry a holds the
// root visit count for action a if a is in ActionsVisits (a root child,
// possibly with zero visits), else -1.
func (ep *Episode) GetSearchResult() []int {
	out := make([]int, ep.Game.ActionSpace())
	for i := range out {
		out[i] = -1
	}
	for _, av := range ep.ActionsVisits {
		out[av.Action] = int(av.Visits)
	}
	return out
}

// GetWinner returns the finished game's winner (-1 for a draw). Calling it
// before IsGameDone is a programmer error.
func (ep *Episode) GetWinner() int {
	if !ep.IsGameDone {
		panic("selfplay: GetWinner called before the game is done")
	}
	return ep.Winner
}
