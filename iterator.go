package avlset

import (
	"github.com/anacrolix/missinggo/v2/panicif"
)

// Iterator is a position in a Set's ascending element order. It is a (node,
// root) pair: the zero node with the owning tree's root is the past-the-last
// position, and including the root in equality keeps end iterators of
// distinct trees distinct. Iterators compare with ==.
//
// Structural mutation of the Set invalidates iterators at the affected nodes;
// see Remove for the value-swap case.
type Iterator[T any] struct {
	node *node[T]
	root *node[T]
}

// Ok reports whether the iterator is at an element, i.e. dereferenceable.
func (me Iterator[T]) Ok() bool {
	return me.node != nil
}

// Value returns the element at the iterator. Panics at the end position.
func (me Iterator[T]) Value() T {
	panicif.True(me.node == nil)
	return me.node.value
}

// Next moves to the in-order successor: into the right subtree's leftmost
// node when there is one, otherwise up to the first ancestor reached from a
// left child. Past the largest element the iterator becomes the end position;
// Next at the end position stays there. Amortized O(1) over a full traversal.
func (me *Iterator[T]) Next() {
	if me.node == nil {
		return
	}
	if me.node.right != nil {
		me.node = leftmost(me.node.right)
		return
	}
	prev := me.node
	me.node = me.node.parent
	for me.node != nil && me.node.right == prev {
		prev = me.node
		me.node = me.node.parent
	}
}

// Prev moves to the in-order predecessor. From the end position it lands on
// the largest element, so End is reachable backward. Panics when retreating
// from the smallest element or over an empty tree.
func (me *Iterator[T]) Prev() {
	if me.node == nil {
		panicif.True(me.root == nil)
		me.node = rightmost(me.root)
		return
	}
	if me.node.left != nil {
		me.node = rightmost(me.node.left)
		return
	}
	prev := me.node
	me.node = me.node.parent
	for me.node != nil && me.node.left == prev {
		prev = me.node
		me.node = me.node.parent
	}
	panicif.True(me.node == nil)
}
