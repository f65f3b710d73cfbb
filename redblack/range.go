package redblack

import (
	"golang.org/x/net/context"
)

// KeyValue is a single key/value pair stored in the tree.
type KeyValue struct {
	Key   Key
	Value interface{}
}

// Range allows iteration over all the key/value pairs stored in the tree in
// ascending key order. The walk only reads the tree, so it can be restarted
// by calling Range again. If not iterating over all values, Cancel() or a
// timeout should be used on the Context to prevent a goroutine leak. The
// tree must not be mutated while a Range is in flight.
func (t *Tree) Range(ctx context.Context) chan KeyValue {
	ch := make(chan KeyValue, 10)

	go func() {
		defer close(ch)

		// Iterative in-order walk: run down the left spine pushing nodes,
		// emit, then move one step right and repeat.
		var stack []*node
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			select {
			case ch <- KeyValue{n.key, n.value}:
				// Do nothing.
			case <-ctx.Done():
				return
			}
			n = n.right
		}
	}()

	return ch
}
