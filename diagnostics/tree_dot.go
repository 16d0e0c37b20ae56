// Package diagnostics renders verbose-mode views of a search tree or board
// position. Nothing here sits on the hot path: every function is opt-in,
// and no search, self-play, or pool code calls into this package.
package diagnostics

import (
	"fmt"

	"github.com/awalterschulze/gographviz"

	"github.com/CWHer/Gobang-Env/mcts"
)

// TreeDOT renders the root and its immediate children of a search tree as
// a Graphviz graph, the verbose-mode tree dump spec.md's verbose_output
// option implies but leaves to the caller to implement.
func TreeDOT[S any](m *mcts.MCTS[S], name string) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(name); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	root := m.Root()
	rootID := "root"
	if err := g.AddNode(name, rootID, map[string]string{
		"label": fmt.Sprintf(`"visits=%d"`, root.VisitCount()),
	}); err != nil {
		return "", err
	}

	for _, child := range root.Children() {
		childID := fmt.Sprintf("a%d", child.Action())
		label := fmt.Sprintf(`"action=%d visits=%d q=%.3f"`, child.Action(), child.VisitCount(), child.QValue())
		if err := g.AddNode(name, childID, map[string]string{"label": label}); err != nil {
			return "", err
		}
		if err := g.AddEdge(rootID, childID, true, nil); err != nil {
			return "", err
		}
	}

	return g.String(), nil
}
