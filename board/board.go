// Package board implements the Gobang playing surface: a flat stone grid,
// move history, and the k-in-a-row terminal test described in spec.md §3-4.
package board

import "fmt"

// Cell values. Empty is distinct from either player so a freshly reset
// board can be told apart from one where player 0 has played cell 0.
const (
	Empty   = -1
	Player0 = 0
	Player1 = 1
)

// Board is pure placement state: no win detection, no configuration beyond
// its own size. Game adds the rules on top.
type Board struct {
	Size       int
	Cells      []int8
	SideToMove int
	History    []int
}

// NewBoard returns an empty size x size board with player 0 to move.
func NewBoard(size int) *Board {
	b := &Board{Size: size}
	b.Reset()
	return b
}

// Reset clears the board in place, reusing the existing backing array.
func (b *Board) Reset() {
	if b.Cells == nil {
		b.Cells = make([]int8, b.Size*b.Size)
	}
	for i := range b.Cells {
		b.Cells[i] = Empty
	}
	b.SideToMove = Player0
	b.History = b.History[:0]
}

// Step places a stone for the side to move at cell index, then toggles the
// side to move. index must name an empty cell.
func (b *Board) Step(index int) {
	if index < 0 || index >= len(b.Cells) {
		panic(fmt.Sprintf("board: step index %d out of range", index))
	}
	if b.Cells[index] != Empty {
		panic(fmt.Sprintf("board: step onto occupied cell %d", index))
	}
	b.Cells[index] = int8(b.SideToMove)
	b.History = append(b.History, index)
	b.SideToMove ^= 1
}

// LegalActions returns every empty cell, in row-major order.
func (b *Board) LegalActions() []int {
	actions := make([]int, 0, len(b.Cells))
	for i, c := range b.Cells {
		if c == Empty {
			actions = append(actions, i)
		}
	}
	return actions
}

// clone returns a deep copy sharing no backing arrays with b.
func (b *Board) clone() *Board {
	return &Board{
		Size:       b.Size,
		SideToMove: b.SideToMove,
		Cells:      append([]int8(nil), b.Cells...),
		History:    append([]int(nil), b.History...),
	}
}
