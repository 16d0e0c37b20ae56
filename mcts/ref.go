// Package mcts implements a resumable, arena-backed PUCT search tree. The
// engine never calls a neural network itself: it suspends at every leaf
// expansion and waits for the caller to supply (prior_probs, value) from an
// external evaluator, then resumes from exactly where it left off.
package mcts

// NodeRef indexes a node arena slot. The zero value is a valid reference
// (the root is typically allocated first); nilNodeRef is the only sentinel
// "no node" value.
type NodeRef int32

const nilNodeRef NodeRef = -1

func (r NodeRef) isValid() bool { return r >= 0 }

// ChildrenRef indexes a child-list arena slot.
type ChildrenRef int32

const nilChildrenRef ChildrenRef = -1

func (r ChildrenRef) isValid() bool { return r >= 0 }
