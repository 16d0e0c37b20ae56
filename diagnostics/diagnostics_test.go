package diagnostics_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CWHer/Gobang-Env/board"
	"github.com/CWHer/Gobang-Env/diagnostics"
	"github.com/CWHer/Gobang-Env/mcts"
)

func uniformPriors(n int) []float32 {
	p := make([]float32, n)
	w := 1 / float32(n)
	for i := range p {
		p[i] = w
	}
	return p
}

func TestTreeDOTIncludesExpandedChildren(t *testing.T) {
	g := board.NewGame(5, 4)
	m := mcts.New[board.Snapshot](1.0, 10, g)
	m.Search(nil, 0)
	m.Search(uniformPriors(25), 0)

	dot, err := diagnostics.TreeDOT[board.Snapshot](m, "search")
	require.NoError(t, err)
	assert.Contains(t, dot, "root")
	assert.Contains(t, dot, "visits=")
}

func TestRenderBoardPNGProducesValidPNG(t *testing.T) {
	b := board.NewBoard(5)
	b.Step(0)
	b.Step(6)

	var buf bytes.Buffer
	require.NoError(t, diagnostics.RenderBoardPNG(&buf, b))
	assert.Greater(t, buf.Len(), 0)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestRenderBoardPNGOnEmptyBoardStillRenders(t *testing.T) {
	b := board.NewBoard(3)
	var buf bytes.Buffer
	require.NoError(t, diagnostics.RenderBoardPNG(&buf, b))
	assert.Greater(t, buf.Len(), 0)
}
