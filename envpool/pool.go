package envpool

import (
	"math/rand"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// EnvObservation tags a batched Observation with the env it came from.
type EnvObservation struct {
	EnvID int
	Obs   Observation
}

// StepResult tags a StepInput with the env it should be applied to.
type StepResult struct {
	EnvID int
	StepInput
}

// Pool multiplexes many self-play games onto the batched Recv/Send
// interface described in spec.md §2 and exercised end to end by
// original_source/gobang_mcts/gobang_envpool_test.cc's env_id-keyed batch
// protocol. Per spec.md §5 the pool adds no concurrency of its own: across
// games is where an outer framework would parallelize, not this core.
type Pool struct {
	envs []*Env
	done []bool
}

// NewPool constructs numEnvs independent games validated against cfg and
// resets every one of them from rng.
func NewPool(cfg Config, numEnvs int, rng *rand.Rand) (*Pool, error) {
	if numEnvs <= 0 {
		return nil, errors.Errorf("envpool: numEnvs must be positive, got %d", numEnvs)
	}

	p := &Pool{envs: make([]*Env, numEnvs), done: make([]bool, numEnvs)}
	for i := range p.envs {
		env, err := NewEnv(cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "envpool: env %d", i)
		}
		p.envs[i] = env
	}
	p.Reset(allEnvIDs(numEnvs), rng)
	return p, nil
}

func allEnvIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// Reset restarts each named env and returns its fresh observation.
func (p *Pool) Reset(envIDs []int, rng *rand.Rand) []EnvObservation {
	out := make([]EnvObservation, len(envIDs))
	for i, id := range envIDs {
		obs := p.envs[id].Reset(rng)
		p.done[id] = false
		out[i] = EnvObservation{EnvID: id, Obs: obs}
	}
	return out
}

// Recv returns up to batchSize observations from games that are not yet
// done, in env-id order.
func (p *Pool) Recv(batchSize int) []EnvObservation {
	out := make([]EnvObservation, 0, batchSize)
	for id, env := range p.envs {
		if len(out) == batchSize {
			break
		}
		if p.done[id] {
			continue
		}
		out = append(out, EnvObservation{EnvID: id, Obs: env.obs})
	}
	return out
}

// Send applies one step to each named env. Invalid env ids are collected
// and returned together rather than aborting the whole batch.
func (p *Pool) Send(results []StepResult) error {
	var errs *multierror.Error
	for _, r := range results {
		if r.EnvID < 0 || r.EnvID >= len(p.envs) {
			errs = multierror.Append(errs, errors.Errorf("envpool: invalid env id %d", r.EnvID))
			continue
		}
		p.envs[r.EnvID].Step(r.StepInput)
		p.done[r.EnvID] = p.envs[r.EnvID].Done()
	}
	return errs.ErrorOrNil()
}

// AllDone reports whether every game in the pool has finished.
func (p *Pool) AllDone() bool {
	for _, d := range p.done {
		if !d {
			return false
		}
	}
	return true
}

// Close runs cleanup against every env in the pool, aggregating any errors
// the way Agent.Close aggregates inferer-close errors in the teacher.
// Games themselves need no teardown (spec.md §5: a game is abandoned by
// simply dropping its instance); Close exists for callers whose cleanup
// hooks do need to run (closing per-env log files, telemetry, etc).
func (p *Pool) Close(cleanup ...func(*Env) error) error {
	var errs *multierror.Error
	for _, env := range p.envs {
		for _, fn := range cleanup {
			if err := fn(env); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}
	return errs.ErrorOrNil()
}
