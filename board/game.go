package board

// Game wraps a Board with the k-in-a-row rule and the snapshot/restore
// pair the MCTS engine replays a game through on every simulation.
type Game struct {
	Board     *Board
	WinLength int

	// winner caches a decisive result so a second Terminal call on an
	// already-won game is caught as a programmer error, the way
	// GobangEnv::checkFinished in original_source/gobang_mcts/gobang_env.hpp
	// asserts winner == -1 at entry. A draw leaves winner untouched (-1),
	// since re-scanning a drawn board is harmless.
	winner int
}

// NewGame returns a fresh game on an empty size x size board.
func NewGame(size, winLength int) *Game {
	return &Game{Board: NewBoard(size), WinLength: winLength, winner: -1}
}

// Reset restarts the game on the same board instance.
func (g *Game) Reset() {
	g.Board.Reset()
	g.winner = -1
}

// ActionSpace is the number of addressable cells, n*n.
func (g *Game) ActionSpace() int { return g.Board.Size * g.Board.Size }

// LegalActions returns the board's empty cells.
func (g *Game) LegalActions() []int { return g.Board.LegalActions() }

// Step plays action for the side to move.
func (g *Game) Step(action int) { g.Board.Step(action) }

// Clone returns a deep, independent copy of the game, used to give each
// self-play player its own mutable env instead of sharing one (mirroring
// gobang_selfplay.hpp's per-player GobangEnv copy).
func (g *Game) Clone() *Game {
	return &Game{
		Board:     g.Board.clone(),
		WinLength: g.WinLength,
		winner:    g.winner,
	}
}

// Snapshot is an immutable value copy of everything Restore needs to
// reproduce this exact position. Taking a Snapshot never aliases Game's
// mutable slices; Restore never aliases the Snapshot's.
type Snapshot struct {
	size       int
	cells      []int8
	sideToMove int
	history    []int
	winLength  int
	winner     int
}

// Snapshot captures the current position.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		size:       g.Board.Size,
		cells:      append([]int8(nil), g.Board.Cells...),
		sideToMove: g.Board.SideToMove,
		history:    append([]int(nil), g.Board.History...),
		winLength:  g.WinLength,
		winner:     g.winner,
	}
}

// Restore replaces the game's state with an independent copy of s. s itself
// is never mutated by subsequent Step calls.
func (g *Game) Restore(s Snapshot) {
	g.Board = &Board{
		Size:       s.size,
		Cells:      append([]int8(nil), s.cells...),
		SideToMove: s.sideToMove,
		History:    append([]int(nil), s.history...),
	}
	g.WinLength = s.winLength
	g.winner = s.winner
}

// Terminal scans the whole board for a k-in-a-row in any of the four
// directions, or a full board with no winner. Calling it again after it has
// already reported a decisive winner, without an intervening Reset/Restore,
// is a programmer error.
func (g *Game) Terminal() (done bool, winner int) {
	if g.winner != -1 {
		panic("board: terminal test called on an already-decided game")
	}

	n := g.Board.Size
	cells := g.Board.Cells
	dx := [4]int{1, 1, 0, -1}
	dy := [4]int{0, 1, 1, 1}

	blanks := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			color := cells[i*n+j]
			if color == Empty {
				blanks++
				continue
			}
			for d := 0; d < 4; d++ {
				x, y, count := i, j, 0
				for x >= 0 && x < n && y >= 0 && y < n && cells[x*n+y] == color {
					count++
					x += dx[d]
					y += dy[d]
				}
				if count >= g.WinLength {
					g.winner = int(color)
					return true, g.winner
				}
			}
		}
	}
	if blanks == 0 {
		return true, -1
	}
	return false, -1
}
