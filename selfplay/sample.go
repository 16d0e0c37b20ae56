package selfplay

import (
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/CWHer/Gobang-Env/mcts"
)

// SelectGreedy picks the most-visited action, the argmax selection rule
// from original_source/gobang_mcts/gobang_mcts.hpp's SelfPlayGobang
// (the older, driver-owns-both-players shape spec.md generalized away from
// — kept here as a helper, not used by Episode itself).
func SelectGreedy(actionsVisits []mcts.ActionVisit) int {
	best, bestVisits := actionsVisits[0].Action, int32(-1)
	for _, av := range actionsVisits {
		if av.Visits > bestVisits {
			best, bestVisits = av.Action, av.Visits
		}
	}
	return best
}

// SelectByTemperature samples an action proportional to visits^(1/temp),
// the move-temperature softmax from spec.md §5, grounded on the teacher's
// mcts/tree.go:sampleChild. temp <= 0 falls back to SelectGreedy, the
// temperature-zero limit.
func SelectByTemperature(actionsVisits []mcts.ActionVisit, temp float32, rng *rand.Rand) int {
	if temp <= 0 {
		return SelectGreedy(actionsVisits)
	}

	weights := make([]float32, len(actionsVisits))
	var total float32
	for i, av := range actionsVisits {
		w := math32.Pow(float32(av.Visits), 1/temp)
		weights[i] = w
		total += w
	}

	r := float32(rng.Float64()) * total
	var accum float32
	for i, w := range weights {
		accum += w
		if r < accum {
			return actionsVisits[i].Action
		}
	}
	return actionsVisits[len(actionsVisits)-1].Action
}
