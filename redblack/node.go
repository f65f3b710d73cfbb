package redblack

// color is used to indicate the color of a node.
type color bool

const (
	red   color = false
	black color = true
)

// String returns "R" or "B", which is what the Dump() output uses.
func (c color) String() string {
	if c == red {
		return "R"
	}
	return "B"
}

// node is a single vertex of the tree. A nil child stands in for the
// conceptual black leaf, so color lookups must go through nodeColor().
type node struct {
	key   Key
	value interface{}
	color color

	left, right, parent *node
}

// nodeColor returns the color of n, treating a nil node as the black leaf.
func nodeColor(n *node) color {
	if n == nil {
		return black
	}
	return n.color
}

// insert descends from n by comparison and hangs a new red leaf off the
// empty slot it finds, returning that leaf so the caller can rebalance from
// it. If the key is already stored nothing changes and ErrDuplicate comes
// back.
func (n *node) insert(k Key, v interface{}) (*node, error) {
	switch {
	case k.LessThan(n.key):
		if n.left == nil {
			n.left = &node{key: k, value: v, color: red, parent: n}
			return n.left, nil
		}
		return n.left.insert(k, v)
	case n.key.LessThan(k):
		if n.right == nil {
			n.right = &node{key: k, value: v, color: red, parent: n}
			return n.right, nil
		}
		return n.right.insert(k, v)
	}
	return nil, ErrDuplicate
}

// min returns the smallest keyed node in the subtree rooted at n.
func (n *node) min() *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// isLeftChild indicates n hangs off its parent's left slot. False for the
// root.
func (n *node) isLeftChild() bool {
	if n.parent == nil {
		return false
	}
	return n.parent.left == n
}

// isRightChild indicates n hangs off its parent's right slot. False for the
// root.
func (n *node) isRightChild() bool {
	if n.parent == nil {
		return false
	}
	return n.parent.right == n
}

// grandparent returns the parent's parent, or nil if n is too close to the
// root to have one.
func (n *node) grandparent() *node {
	if n.parent == nil {
		return nil
	}
	return n.parent.parent
}

// sibling returns the other child of n's parent, or nil if there isn't one.
func (n *node) sibling() *node {
	if n.parent == nil {
		return nil
	}
	if n.isLeftChild() {
		return n.parent.right
	}
	return n.parent.left
}

// uncle returns the sibling of n's parent, or nil if n has no grandparent.
func (n *node) uncle() *node {
	if n.grandparent() == nil {
		return nil
	}
	return n.parent.sibling()
}
