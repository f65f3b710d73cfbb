/*
Package redblack provides an in-memory ordered dictionary backed by a
red-black tree. A red-black tree is a self-balancing binary search tree
characterized with the following attributes:

	Space  O(n)      average/worst
	Search O(log n)  average/worst
	Insert O(log n)  average/worst
	Remove O(log n)  average/worst

Keys may be any type implementing the Key interface; adapters for the
common builtin types are included (Int, Int64, String, Bytes).

Usage is simplistic:

	t := redblack.New()
	if err := t.Insert(redblack.Int(42), "answer"); err != nil {
		// The key was already present.
	}
	v, ok := t.Search(redblack.Int(42))
	...
	for kv := range t.Range(context.Background()) {
		fmt.Println(kv.Key, kv.Value)
	}

This library is not thread-safe. A rotation rewrites three to four links
before the tree is consistent again, so callers that share a tree between
goroutines must serialize every call with their own locking.
*/
package redblack

import (
	"errors"

	log "github.com/golang/glog"
)

// ErrDuplicate is returned by Insert when the key is already stored. The
// tree is left unmodified.
var ErrDuplicate = errors.New("key already inserted")

// ErrNotFound is returned by Remove when the key is not stored. The tree is
// left unmodified.
var ErrNotFound = errors.New("key not found")

// Tree is an ordered dictionary. The zero value is usable, but use New()
// for symmetry with the rest of the library.
type Tree struct {
	root *node
	size int
}

// New is the constructor for Tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of stored keys.
func (t *Tree) Len() int {
	return t.size
}

// Search returns the value stored at key "k" and true if found.
func (t *Tree) Search(k Key) (interface{}, bool) {
	n := t.lookup(k)
	if n == nil {
		return nil, false
	}
	return n.value, true
}

func (t *Tree) lookup(k Key) *node {
	n := t.root
	for n != nil {
		switch {
		case k.LessThan(n.key):
			n = n.left
		case n.key.LessThan(k):
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Insert stores value "v" at key "k". It returns ErrDuplicate if the key is
// already present, leaving the tree untouched.
func (t *Tree) Insert(k Key, v interface{}) error {
	var n *node
	if t.root == nil {
		n = &node{key: k, value: v, color: red}
		t.root = n
	} else {
		var err error
		n, err = t.root.insert(k, v)
		if err != nil {
			return err
		}
	}
	t.insertCase1(n)
	t.size++
	return nil
}

// insertCase1: the new node is the root. Coloring it black fixes everything.
func (t *Tree) insertCase1(n *node) {
	if n.parent == nil {
		n.color = black
		return
	}
	t.insertCase2(n)
}

// insertCase2: a black parent cannot give the new red node a red parent, so
// there is nothing to repair.
func (t *Tree) insertCase2(n *node) {
	if nodeColor(n.parent) == black {
		return
	}
	t.insertCase3(n)
}

// insertCase3: red parent and red uncle. Pull the red up to the grandparent
// and restart there, since the grandparent may now clash with its own
// parent.
func (t *Tree) insertCase3(n *node) {
	u := n.uncle()
	if nodeColor(u) == red {
		n.parent.color = black
		u.color = black
		g := n.grandparent()
		g.color = red
		t.insertCase1(g)
		return
	}
	t.insertCase4(n)
}

// insertCase4: red parent, black uncle, and the node sits on the inside of
// the grandparent ("zig-zag"). Rotate the parent so the violation lies on a
// straight line, then treat the former parent as the node for case 5.
func (t *Tree) insertCase4(n *node) {
	g := n.grandparent()
	if n.isRightChild() && n.parent == g.left {
		t.rotateLeft(n.parent)
		n = n.left
	} else if n.isLeftChild() && n.parent == g.right {
		t.rotateRight(n.parent)
		n = n.right
	}
	t.insertCase5(n)
}

// insertCase5: red parent, black uncle, straight line. Swap the colors of
// parent and grandparent and rotate the grandparent away, which promotes
// the parent into the grandparent's slot (or the root).
func (t *Tree) insertCase5(n *node) {
	g := n.grandparent()
	n.parent.color = black
	g.color = red
	if n.isLeftChild() && n.parent == g.left {
		t.rotateRight(g)
	} else {
		t.rotateLeft(g)
	}
}

// Remove deletes the value stored at key "k". It returns ErrNotFound if the
// key is not present, leaving the tree untouched.
func (t *Tree) Remove(k Key) error {
	n := t.lookup(k)
	if n == nil {
		return ErrNotFound
	}

	if n.left != nil && n.right != nil {
		// Two children: absorb the in-order successor's key and value,
		// then delete the successor instead. It has no left child, so the
		// single-child splice below covers it.
		succ := n.right.min()
		n.key, n.value = succ.key, succ.value
		n = succ
	}

	// n has at most one child now.
	child := n.left
	if child == nil {
		child = n.right
	}

	if nodeColor(n) == black {
		if nodeColor(child) == red {
			// One black node leaves, one red node turns black: every path
			// through here keeps its black count.
			child.color = black
		} else {
			// The child is the black leaf, so the splice will leave this
			// position one black short. Repair before splicing: n still
			// occupies the replacement's exact spot, so the fixup cases
			// never have to reason about an absent node.
			t.deleteCase1(n)
		}
	}
	t.replaceNode(n, child)
	t.size--
	return nil
}

// deleteCase1: the deficit reached the root, where it is absorbed (every
// path lost the same black).
func (t *Tree) deleteCase1(n *node) {
	if n.parent == nil {
		return
	}
	t.deleteCase2(n)
}

// deleteCase2: red sibling. Rotate the parent toward the deficit so the
// sibling becomes black, then continue with the remaining cases.
func (t *Tree) deleteCase2(n *node) {
	s := n.sibling()
	if nodeColor(s) == red {
		n.parent.color = red
		s.color = black
		if n.isLeftChild() {
			t.rotateLeft(n.parent)
		} else {
			t.rotateRight(n.parent)
		}
	}
	t.deleteCase3(n)
}

// deleteCase3: parent, sibling and the sibling's children are all black.
// Painting the sibling red balances the two sides locally and pushes the
// deficit up to the parent.
func (t *Tree) deleteCase3(n *node) {
	s := n.sibling()
	if nodeColor(n.parent) == black &&
		nodeColor(s) == black &&
		nodeColor(s.left) == black &&
		nodeColor(s.right) == black {
		s.color = red
		t.deleteCase1(n.parent)
		return
	}
	t.deleteCase4(n)
}

// deleteCase4: red parent, black sibling with black children. Swapping the
// parent's and sibling's colors settles the deficit with no rotation.
func (t *Tree) deleteCase4(n *node) {
	s := n.sibling()
	if nodeColor(n.parent) == red &&
		nodeColor(s) == black &&
		nodeColor(s.left) == black &&
		nodeColor(s.right) == black {
		s.color = red
		n.parent.color = black
		return
	}
	t.deleteCase5(n)
}

// deleteCase5: black sibling whose near child is red and far child black.
// Rotating the sibling away from the deficit turns this into the case 6
// shape.
func (t *Tree) deleteCase5(n *node) {
	s := n.sibling()
	if nodeColor(s) == black {
		if n.isLeftChild() &&
			nodeColor(s.left) == red &&
			nodeColor(s.right) == black {
			s.color = red
			s.left.color = black
			t.rotateRight(s)
		} else if n.isRightChild() &&
			nodeColor(s.right) == red &&
			nodeColor(s.left) == black {
			s.color = red
			s.right.color = black
			t.rotateLeft(s)
		}
	}
	t.deleteCase6(n)
}

// deleteCase6: black sibling with a red far child. The rotation moves one
// of the sibling's blacks onto the deficit path and the recoloring keeps
// the sibling side's count, which resolves the deficit for good.
func (t *Tree) deleteCase6(n *node) {
	s := n.sibling()
	s.color = nodeColor(n.parent)
	n.parent.color = black
	if n.isLeftChild() {
		s.right.color = black
		t.rotateLeft(n.parent)
	} else {
		s.left.color = black
		t.rotateRight(n.parent)
	}
}

// replaceNode substitutes the subtree rooted at "with" into n's position.
// The parent's child slot (or the tree root) is re-pointed, not just the
// node's own links.
func (t *Tree) replaceNode(n, with *node) {
	if n.parent == nil {
		t.root = with
	} else if n.isLeftChild() {
		n.parent.left = with
	} else {
		n.parent.right = with
	}
	if with != nil {
		with.parent = n.parent
	}
}

// rotateLeft promotes n's right child into n's position. The promoted
// child's new parent slot, the displaced grandchild's parent link and n's
// own parent link are all rewritten here, so call sites never reattach
// anything themselves. Calling it on a node without a right child is a
// caller bug and is ignored.
func (t *Tree) rotateLeft(n *node) {
	r := n.right
	if r == nil {
		log.V(2).Infof("redblack: rotateLeft on a node without a right child, ignoring")
		return
	}
	t.replaceNode(n, r)
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	r.left = n
	n.parent = r
}

// rotateRight is the mirror of rotateLeft, promoting n's left child.
func (t *Tree) rotateRight(n *node) {
	l := n.left
	if l == nil {
		log.V(2).Infof("redblack: rotateRight on a node without a left child, ignoring")
		return
	}
	t.replaceNode(n, l)
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	l.right = n
	n.parent = l
}
