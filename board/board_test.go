package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardStepTogglesSideToMove(t *testing.T) {
	b := NewBoard(3)
	assert.Equal(t, Player0, b.SideToMove)

	b.Step(4)
	assert.Equal(t, int8(Player0), b.Cells[4])
	assert.Equal(t, Player1, b.SideToMove)
	assert.Equal(t, []int{4}, b.History)

	b.Step(0)
	assert.Equal(t, int8(Player1), b.Cells[0])
	assert.Equal(t, Player0, b.SideToMove)
}

func TestBoardStepOntoOccupiedCellPanics(t *testing.T) {
	b := NewBoard(3)
	b.Step(0)
	assert.Panics(t, func() { b.Step(0) })
}

func TestBoardLegalActionsExcludesPlayedCells(t *testing.T) {
	b := NewBoard(2)
	b.Step(0)
	b.Step(1)
	assert.ElementsMatch(t, []int{2, 3}, b.LegalActions())
}

func TestBoardResetClearsHistory(t *testing.T) {
	b := NewBoard(3)
	b.Step(0)
	b.Step(1)
	b.Reset()
	assert.Empty(t, b.History)
	assert.Equal(t, Player0, b.SideToMove)
	for _, c := range b.Cells {
		assert.Equal(t, int8(Empty), c)
	}
}

// TestGameSnapshotRestoreIsIdempotent strengthens spec.md scenario 6's
// save/restore invariant to cover restoring the same snapshot twice,
// following gobang_env_test.cc's repeated setStat/getStat round trip.
func TestGameSnapshotRestoreIsIdempotent(t *testing.T) {
	g := NewGame(5, 5)
	g.Step(12)
	g.Step(13)
	g.Step(6)

	snap := g.Snapshot()

	g.Restore(snap)
	first := append([]int8(nil), g.Board.Cells...)
	firstHistory := append([]int(nil), g.Board.History...)

	g.Step(7)
	g.Restore(snap)
	second := append([]int8(nil), g.Board.Cells...)
	secondHistory := append([]int(nil), g.Board.History...)

	assert.Equal(t, first, second)
	assert.Equal(t, firstHistory, secondHistory)
	assert.Equal(t, snap.sideToMove, g.Board.SideToMove)
}

func TestGameSnapshotIsImmutableAcrossMutation(t *testing.T) {
	g := NewGame(3, 3)
	g.Step(0)
	snap := g.Snapshot()

	g.Step(1)
	g.Restore(snap)

	require.Len(t, g.Board.History, 1)
	assert.Equal(t, 0, g.Board.History[0])
}

func TestGameCloneIsIndependent(t *testing.T) {
	g := NewGame(3, 3)
	g.Step(0)
	clone := g.Clone()
	clone.Step(1)

	assert.Len(t, g.Board.History, 1)
	assert.Len(t, clone.Board.History, 2)
}
