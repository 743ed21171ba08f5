package writer

import (
	"fmt"
	"io"

	"github.com/katalvlaran/taskprep/sggen"
)

// writeSGNode emits one trie node in the format GeneratorSwitch /
// GeneratorLeaf / GeneratorEmpty write themselves: a Switch node is
// "switch <level>" followed by its own immediate-check block, then one
// child per value in order, then the default child; a Leaf or Empty
// node is just its "check <n>" block.
func writeSGNode(w io.Writer, n sggen.Node) {
	switch node := n.(type) {
	case *sggen.SwitchNode:
		fmt.Fprintln(w, "switch", node.Var.Level)
		writeCheckBlock(w, node.Immediate)
		for _, child := range node.Children {
			writeSGNode(w, child)
		}
		writeSGNode(w, node.Default)
	case sggen.LeafNode:
		writeCheckBlock(w, node.Indices)
	case sggen.EmptyNode:
		writeCheckBlock(w, nil)
	default:
		writeCheckBlock(w, nil)
	}
}

func writeCheckBlock(w io.Writer, indices []int) {
	fmt.Fprintln(w, "check", len(indices))
	for _, idx := range indices {
		fmt.Fprintln(w, idx)
	}
}
