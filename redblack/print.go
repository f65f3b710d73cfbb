package redblack

import (
	"fmt"
	"strings"
)

// Dump renders the tree's shape and coloring for debugging. The tree reads
// top to bottom as right to left, each node tagged with its color:
//
//	│   ┌── R 30
//	└── B 20
//	    └── R 10
//
// It only reads the tree and has no effect on any operation.
func (t *Tree) Dump() string {
	if t.root == nil {
		return "empty tree\n"
	}
	b := &strings.Builder{}
	t.root.dump(b, "", true)
	return b.String()
}

func (n *node) dump(b *strings.Builder, prefix string, tail bool) {
	if n.right != nil {
		p := prefix + "    "
		if tail {
			p = prefix + "│   "
		}
		n.right.dump(b, p, false)
	}

	b.WriteString(prefix)
	if tail {
		b.WriteString("└── ")
	} else {
		b.WriteString("┌── ")
	}
	fmt.Fprintf(b, "%s %v\n", nodeColor(n), n.key)

	if n.left != nil {
		p := prefix + "│   "
		if tail {
			p = prefix + "    "
		}
		n.left.dump(b, p, true)
	}
}
