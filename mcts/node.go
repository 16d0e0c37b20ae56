package mcts

import (
	"github.com/chewxy/math32"
	"gorgonia.org/vecf32"
)

// TreeNode is the arena-resident node record: a parent backlink, an
// optional child-list handle, the action that led here, and its PUCT
// statistics. Nodes never hold a pointer to their tree the way the
// teacher's mcts/node.go Node does (tree uintptr) — all tree-aware
// operations live on Node below, which carries the *MCTS alongside the ref.
type TreeNode struct {
	Parent   NodeRef
	Children ChildrenRef
	Action   int
	PUCT     PUCT
}

func (n *TreeNode) isRoot() bool { return n.Parent == nilNodeRef }
func (n *TreeNode) isLeaf() bool { return n.Children == nilChildrenRef }

// ActionProb pairs a legal action with the prior probability the external
// evaluator assigned it.
type ActionProb struct {
	Action int
	Prior  float32
}

// Node is a lightweight handle bundling a NodeRef with the tree that owns
// it, the way original_source/mcts.hpp's TreeNode bundles select/expand/
// update as methods rather than free functions.
type Node[S any] struct {
	ref NodeRef
	t   *MCTS[S]
}

// Ref returns the underlying arena reference, for diagnostics and tests.
func (n Node[S]) Ref() NodeRef { return n.ref }

func (n Node[S]) raw() *TreeNode { return n.t.nodes.get(n.ref) }

func (n Node[S]) IsRoot() bool { return n.raw().isRoot() }
func (n Node[S]) IsLeaf() bool { return n.raw().isLeaf() }
func (n Node[S]) Action() int  { return n.raw().Action }

func (n Node[S]) VisitCount() int32 { return n.raw().PUCT.VisitCount }
func (n Node[S]) QValue() float32   { return n.raw().PUCT.QValue }
func (n Node[S]) PriorProb() float32 { return n.raw().PUCT.PriorProb }

// Children lists this node's expanded children, or nil for a leaf.
func (n Node[S]) Children() []Node[S] {
	refs := n.t.children.get(n.raw().Children)
	out := make([]Node[S], len(refs))
	for i, r := range refs {
		out[i] = Node[S]{ref: r, t: n.t}
	}
	return out
}

// Select returns the child maximizing the PUCT value formula, with this
// node's visit count supplying N_parent. Panics on a leaf: selecting past
// the frontier of the tree is always a caller bug.
func (n Node[S]) Select() Node[S] {
	self := n.raw()
	if self.isLeaf() {
		panic("mcts: Select called on a leaf node")
	}
	parentVisits := self.PUCT.VisitCount
	best := nilNodeRef
	bestValue := math32.Inf(-1)
	for _, child := range n.t.children.get(self.Children) {
		v := n.t.nodes.get(child).PUCT.value(parentVisits)
		if v > bestValue {
			bestValue = v
			best = child
		}
	}
	return Node[S]{ref: best, t: n.t}
}

// Expand allocates one child-list slot and one child node per action/prior
// pair, renormalizing the priors over the legal actions first (the legal
// subset rarely sums to exactly 1 once illegal actions are masked out).
// Panics if this node already has children.
func (n Node[S]) Expand(actionsProbs []ActionProb, cPuct float32) {
	self := n.raw()
	if !self.isLeaf() {
		panic("mcts: Expand called on an already-expanded node")
	}
	renormalize(actionsProbs)

	childrenRef := n.t.children.alloc()
	self.Children = childrenRef
	for _, ap := range actionsProbs {
		child := n.t.nodes.alloc(n.ref, ap.Action, newPUCT(ap.Prior, cPuct))
		n.t.children.append(childrenRef, child)
	}
}

// Update folds one backed-up value into this node's running mean.
func (n Node[S]) Update(v float32) {
	n.raw().PUCT.update(v)
}

func (n Node[S]) parent() NodeRef { return n.raw().Parent }

// renormalize scales actionsProbs' priors to sum to 1, or falls back to a
// uniform distribution if the mass is too small to divide by — the same
// guard the teacher's search.go checks with math32.SmallestNonzeroFloat32
// before dividing.
func renormalize(actionsProbs []ActionProb) {
	if len(actionsProbs) == 0 {
		return
	}
	probs := make([]float32, len(actionsProbs))
	for i, ap := range actionsProbs {
		probs[i] = ap.Prior
	}
	sum := vecf32.Sum(probs)
	if sum > math32.SmallestNonzeroFloat32 {
		probs = vecf32.Scale(probs, 1/sum)
	} else {
		uniform := 1 / float32(len(actionsProbs))
		for i := range probs {
			probs[i] = uniform
		}
	}
	for i := range actionsProbs {
		actionsProbs[i].Prior = probs[i]
	}
}
