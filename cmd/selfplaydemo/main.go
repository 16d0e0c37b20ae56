// Command selfplaydemo wires a trivial uniform evaluator through a single
// self-play game end to end, grounded on cmd/train/main.go's flag-based CLI
// shape (minus the checkpoint archival step, which belongs to the
// excluded NN training loop).
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/CWHer/Gobang-Env/envpool"
)

var (
	boardSize = flag.Int("board_size", 8, "board side length")
	winLength = flag.Int("win_length", 5, "stones in a row required to win")
	numSearch = flag.Int("num_search", 200, "MCTS simulations per move")
	cPuct     = flag.Float64("c_puct", 1.0, "PUCT exploration constant")
	planes    = flag.Int("num_player_planes", 4, "rewound feature planes per player")
	verbose   = flag.Bool("verbose_output", false, "log every move")
	seed      = flag.Int64("seed", 0, "RNG seed; 0 seeds from wall-clock time")
)

func main() {
	flag.Parse()

	cfg := envpool.DefaultConfig()
	cfg.BoardSize = *boardSize
	cfg.WinLength = *winLength
	cfg.NumSearch = *numSearch
	cfg.CPuct = float32(*cPuct)
	cfg.NumPlayerPlanes = *planes
	cfg.VerboseOutput = *verbose

	env, err := envpool.NewEnv(cfg)
	if err != nil {
		log.Fatalf("invalid config: %+v", err)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	actionSpace := cfg.BoardSize * cfg.BoardSize
	uniform := make([]float32, actionSpace)
	for i := range uniform {
		uniform[i] = 1 / float32(actionSpace)
	}

	obs := env.Reset(rng)
	cycles := 0
	for !env.Done() {
		in := envpool.StepInput{PriorProbs: uniform, Value: 0}
		if obs.IsPlayerDone {
			in.SelectedAction = bestAction(obs.MCTSResult)
		}
		obs = env.Step(in)
		cycles++
		if *verbose && obs.IsPlayerDone {
			log.Printf("move %d chosen after %d evaluation cycles", obs.PlayerStepCount, cycles)
		}
	}

	fmt.Printf("finished after %d moves (%d evaluation cycles), winner=%d\n", obs.PlayerStepCount, cycles, obs.Winner)
}

func bestAction(visits []int) int {
	best, bestVisits := 0, -1
	for a, v := range visits {
		if v > bestVisits {
			best, bestVisits = a, v
		}
	}
	return best
}
