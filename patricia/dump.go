package patricia

import (
	"fmt"
	"io"
	"os"
)

// Dump writes the node structure of the tree, together with the use count of
// every node, to w.
func (t *Tree[K, V]) Dump(w io.Writer) {
	if t.root.isEmpty() {
		fmt.Fprintln(w, "T: EMPTY")
		return
	}
	t.root.node.dump(w, t.root.useCount(), "T:", "")
}

func (t *Tree[K, V]) DebugDump() {
	t.Dump(os.Stdout)
}
