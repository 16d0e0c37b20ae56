package mcts

import "github.com/chewxy/math32"

// PUCT carries one tree node's search statistics: a fixed prior from the
// external evaluator, an accumulated mean value, and a visit count. value
// implements the same formula as the teacher's mcts/node.go Select()
// (qsa + c_puct*psa*sqrt(parentVisits)/(1+visits)) and
// original_source/mcts.hpp's PUCT::value.
type PUCT struct {
	PriorProb  float32
	QValue     float32
	VisitCount int32
	cPuct      float32
}

func newPUCT(prior, cPuct float32) PUCT {
	return PUCT{PriorProb: prior, cPuct: cPuct}
}

// update folds one backed-up value into the running mean.
func (p *PUCT) update(v float32) {
	p.VisitCount++
	p.QValue += (v - p.QValue) / float32(p.VisitCount)
}

// value scores this node from its parent's perspective given the parent's
// visit count.
func (p *PUCT) value(parentVisits int32) float32 {
	return p.QValue + p.cPuct*p.PriorProb*math32.Sqrt(float32(parentVisits))/(1+float32(p.VisitCount))
}
