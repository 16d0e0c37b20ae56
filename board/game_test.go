package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTerminalDetectsHorizontalRun covers spec.md scenario 1: five in a row
// horizontally on an 8x8, win_length=5 board.
func TestTerminalDetectsHorizontalRun(t *testing.T) {
	g := NewGame(8, 5)
	// Player 0 plays 0..4 on row 0, interleaved with player 1 on row 7.
	moves := []int{0, 56, 1, 57, 2, 58, 3, 59, 4}
	var done bool
	var winner int
	for i, m := range moves {
		g.Step(m)
		done, winner = g.Terminal()
		if i < len(moves)-1 {
			require.False(t, done)
		}
	}
	assert.True(t, done)
	assert.Equal(t, Player0, winner)
}

func TestTerminalDetectsDiagonalRun(t *testing.T) {
	g := NewGame(8, 5)
	// Player 0 on the main diagonal, player 1 elsewhere.
	p0 := []int{0, 9, 18, 27, 36}
	p1 := []int{1, 2, 3, 4}
	for i := range p0 {
		g.Step(p0[i])
		if i < len(p1) {
			g.Step(p1[i])
		}
	}
	done, winner := g.Terminal()
	assert.True(t, done)
	assert.Equal(t, Player0, winner)
}

// TestTerminalDrawOnFullBoard covers spec.md scenario 5's end state: a 3x3
// board, win_length=3, filled without any 3-in-a-row.
func TestTerminalDrawOnFullBoard(t *testing.T) {
	g := NewGame(3, 3)
	// X O X / X O O / O X X - the standard drawn tic-tac-toe board, no row,
	// column, or diagonal is monochrome.
	order := []int{0, 1, 2, 4, 3, 5, 7, 6, 8}
	for i, m := range order {
		g.Step(m)
		done, winner := g.Terminal()
		if i < len(order)-1 {
			require.False(t, done, "move %d (%d) should not end the game", i, m)
		} else {
			assert.True(t, done)
			assert.Equal(t, -1, winner)
		}
	}
}

func TestTerminalOnAlreadyDecidedGamePanics(t *testing.T) {
	g := NewGame(5, 5)
	for _, m := range []int{0, 10, 1, 11, 2, 12, 3, 13, 4} {
		g.Step(m)
	}
	done, winner := g.Terminal()
	require.True(t, done)
	require.Equal(t, Player0, winner)
	assert.Panics(t, func() { g.Terminal() })
}

// TestEncodeRewindPlanes matches spec.md scenario 2's plane-sum checksum:
// plane i's per-player stone count is max(0, steps_for_that_player - i).
func TestEncodeRewindPlanes(t *testing.T) {
	g := NewGame(15, 5)
	for _, m := range []int{0, 15, 1, 16, 2} {
		g.Step(m)
	}

	const numPlayerPlanes = 3
	enc := g.Encode(numPlayerPlanes)
	data := enc.Data().([]float32)
	planeSize := g.Board.Size * g.Board.Size

	sumPlane := func(offset int) float32 {
		var sum float32
		for i := 0; i < planeSize; i++ {
			sum += data[offset+i]
		}
		return sum
	}

	expectedP0 := []float32{3, 2, 1}
	expectedP1 := []float32{2, 1, 0}
	for p := 0; p < numPlayerPlanes; p++ {
		assert.Equal(t, expectedP0[p], sumPlane(p*planeSize), "player0 plane %d", p)
		assert.Equal(t, expectedP1[p], sumPlane((numPlayerPlanes+p)*planeSize), "player1 plane %d", p)
	}

	sideOffset := 2 * numPlayerPlanes * planeSize
	assert.Equal(t, float32(1), data[sideOffset], "side-to-move plane should be all 1s after 5 plies")
}

func TestEncodeShape(t *testing.T) {
	g := NewGame(7, 4)
	enc := g.Encode(2)
	assert.Equal(t, []int{5, 7, 7}, enc.Shape())
}
