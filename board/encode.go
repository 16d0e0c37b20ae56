package board

import "gorgonia.org/tensor"

// Encode produces the fixed-size feature tensor of shape (2P+1, n, n)
// described in spec.md §4.1: P "rewound" planes per player, each plane i
// showing the board as it stood before the most recent 2*i half-moves, plus
// a final constant plane naming the side to move. original_source's
// GobangBoard::encode only ever encodes the current position; the rewind
// scheme is spec.md's addition over that simpler C++ encoder.
func (g *Game) Encode(numPlayerPlanes int) *tensor.Dense {
	n := g.Board.Size
	planeSize := n * n
	backing := make([]float32, (2*numPlayerPlanes+1)*planeSize)

	for p := 0; p < numPlayerPlanes; p++ {
		cutoff := len(g.Board.History) - 2*p
		if cutoff < 0 {
			cutoff = 0
		}
		player0Offset := p * planeSize
		player1Offset := (numPlayerPlanes + p) * planeSize
		for idx := 0; idx < cutoff; idx++ {
			cell := g.Board.History[idx]
			if idx%2 == 0 {
				backing[player0Offset+cell] = 1
			} else {
				backing[player1Offset+cell] = 1
			}
		}
	}

	sideOffset := 2 * numPlayerPlanes * planeSize
	side := float32(g.Board.SideToMove)
	for i := 0; i < planeSize; i++ {
		backing[sideOffset+i] = side
	}

	return tensor.New(
		tensor.WithShape(2*numPlayerPlanes+1, n, n),
		tensor.WithBacking(backing),
	)
}
