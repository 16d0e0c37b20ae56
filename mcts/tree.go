package mcts

import "gorgonia.org/tensor"

// Env is the MCTS engine's view of the game it searches: just enough to
// walk the tree, replay a snapshot, and test for a finished position. S is
// the snapshot type restored before every simulation — the Go analogue of
// original_source/mcts.hpp's `template <typename Env, typename EnvStat>`.
type Env[S any] interface {
	ActionSpace() int
	LegalActions() []int
	Step(action int)
	// Terminal reports whether the current position is finished and, if
	// so, which side just moved into it (-1 for a draw).
	Terminal() (done bool, winner int)
	Snapshot() S
	Restore(S)
	Encode(numPlayerPlanes int) *tensor.Dense
}

// MCTS is a resumable PUCT search tree over one fixed root position. Search
// suspends at every leaf expansion instead of calling into a neural network
// itself; the caller supplies (priorProbs, value) on the next call and the
// engine resumes exactly where it left off.
type MCTS[S any] struct {
	cPuct     float32
	numSearch int
	completed int

	nodes    *nodeArena
	children *childArena

	root     NodeRef
	selected NodeRef // nilNodeRef unless a leaf expansion is pending
	stat     S
	env      Env[S]
}

// New builds a search tree rooted at env's current position. The node
// arena is sized numSearch*actionSpace and the child-list arena numSearch:
// each simulation expands at most one leaf, which takes one child list and
// at most actionSpace child nodes.
func New[S any](cPuct float32, numSearch int, env Env[S]) *MCTS[S] {
	actionSpace := env.ActionSpace()
	m := &MCTS[S]{
		cPuct:     cPuct,
		numSearch: numSearch,
		nodes:     newNodeArena(numSearch * actionSpace),
		children:  newChildArena(numSearch),
		selected:  nilNodeRef,
		env:       env,
		stat:      env.Snapshot(),
	}
	m.root = m.nodes.alloc(nilNodeRef, -1, newPUCT(0, cPuct))
	return m
}

func (m *MCTS[S]) node(ref NodeRef) Node[S] { return Node[S]{ref: ref, t: m} }

// Root returns a handle to the search root.
func (m *MCTS[S]) Root() Node[S] { return m.node(m.root) }

// Search runs simulations until either numSearch completions are reached
// (returns true) or a leaf needs an external evaluation (returns false).
// On the first call priorProbs/value are ignored since no expansion is
// pending yet. On every later call they score the leaf suspended by the
// previous false return, and the tree resumes from there.
func (m *MCTS[S]) Search(priorProbs []float32, value float32) (done bool) {
	if m.selected.isValid() {
		m.expandPending(priorProbs)
		m.backpropagate(m.selected, value)
		m.completed++
		m.selected = nilNodeRef
	}

	for m.completed < m.numSearch {
		leaf, finished, winner := m.selectLeaf()
		if !finished {
			m.selected = leaf
			return false
		}
		v := float32(0)
		if winner != -1 {
			v = 1
		}
		m.backpropagate(leaf, v)
		m.completed++
	}
	return true
}

// selectLeaf replays the root snapshot, walks down selecting the best
// child at every level, and stops at the first leaf (unexpanded node) or
// terminal position. Leaves env positioned at the returned node so
// expandPending can query LegalActions without replaying anything.
func (m *MCTS[S]) selectLeaf() (leaf NodeRef, terminalDone bool, winner int) {
	m.env.Restore(m.stat)
	cur := m.root
	for !m.node(cur).IsLeaf() {
		next := m.node(cur).Select()
		m.env.Step(m.node(next.ref).Action())
		cur = next.ref
	}
	done, w := m.env.Terminal()
	return cur, done, w
}

// expandPending expands the node suspended by the previous Search call,
// masking priorProbs down to the leaf's legal actions.
func (m *MCTS[S]) expandPending(priorProbs []float32) {
	legal := m.env.LegalActions()
	aps := make([]ActionProb, len(legal))
	for i, a := range legal {
		aps[i] = ActionProb{Action: a, Prior: priorProbs[a]}
	}
	m.node(m.selected).Expand(aps, m.cPuct)
}

// backpropagate walks from leaf to root, updating each ancestor's PUCT
// statistics with value negated at every hop (spec.md §4.3's zero-sum
// backup: a win for the side that just moved is a loss for its parent).
func (m *MCTS[S]) backpropagate(leaf NodeRef, value float32) {
	cur := leaf
	for {
		node := m.node(cur)
		node.Update(value)
		if node.IsRoot() {
			return
		}
		value = -value
		cur = node.parent()
	}
}

// ActionVisit pairs a root child's action with its final visit count.
type ActionVisit struct {
	Action int
	Visits int32
}

// GetResult reads the root's children's visit counts. Calling it before
// numSearch simulations have completed is a programmer error unless
// allowPartial opts in explicitly — Go has no default-argument equivalent
// of the C++ original's get_result(ignore_unfinished=false), so the caller
// must say so at every call site.
func (m *MCTS[S]) GetResult(allowPartial bool) []ActionVisit {
	root := m.node(m.root)
	if !allowPartial && root.VisitCount() < int32(m.numSearch) {
		panic("mcts: GetResult called before completing every simulation; pass allowPartial to opt in")
	}
	children := m.children.get(m.nodes.get(m.root).Children)
	out := make([]ActionVisit, len(children))
	for i, c := range children {
		node := m.nodes.get(c)
		out[i] = ActionVisit{Action: node.Action, Visits: node.PUCT.VisitCount}
	}
	return out
}

// GetState encodes the tree's root position, the observation the external
// evaluator is being asked to score while a search is suspended
// mid-simulation. env is put back where it was afterwards, so a pending
// leaf expansion still sees the leaf's legal actions.
func (m *MCTS[S]) GetState(numPlayerPlanes int) *tensor.Dense {
	cur := m.env.Snapshot()
	m.env.Restore(m.stat)
	enc := m.env.Encode(numPlayerPlanes)
	m.env.Restore(cur)
	return enc
}

// Step commits action as the real move played, discards the whole search
// tree, and rebuilds a fresh root at the resulting position. spec.md §9
// only specifies this always-reset form; no tree reuse across moves.
func (m *MCTS[S]) Step(action int) {
	m.env.Restore(m.stat)
	m.env.Step(action)
	m.stat = m.env.Snapshot()

	m.nodes.reset()
	m.children.reset()
	m.completed = 0
	m.selected = nilNodeRef
	m.root = m.nodes.alloc(nilNodeRef, -1, newPUCT(0, m.cPuct))
}

// findChild reports whether parent already has an expanded child for
// action, without mutating the tree. The production Step path always
// rebuilds a fresh root rather than reusing this child (see SPEC_FULL.md's
// supplemented feature on original_source's step(action, reset_root)); this
// exists for tests and diagnostics that want to observe it anyway.
func (m *MCTS[S]) findChild(parent NodeRef, action int) NodeRef {
	p := m.node(parent)
	if p.IsLeaf() {
		return nilNodeRef
	}
	for _, c := range m.children.get(p.raw().Children) {
		if m.nodes.get(c).Action == action {
			return c
		}
	}
	return nilNodeRef
}
