package avlset

// node is an element of the tree. Child links are owning, the parent link is
// navigational only and never followed for cleanup.
type node[T any] struct {
	left, right *node[T]
	parent      *node[T]
	// Longest path to a descendant leaf. A leaf is 1, an absent child counts
	// as 0.
	height int
	value  T
}

func newNode[T any](value T) *node[T] {
	return &node[T]{height: 1, value: value}
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// Difference between the left and right subtree heights. The rebalancer acts
// when this leaves [-1, 1].
func (me *node[T]) diff() int {
	return height(me.left) - height(me.right)
}

func (me *node[T]) updateHeight() {
	me.height = max(height(me.left), height(me.right)) + 1
}

// setLeft attaches child as the left subtree, fixing its parent link and this
// node's height. child may be nil.
func (me *node[T]) setLeft(child *node[T]) {
	me.left = child
	if child != nil {
		child.parent = me
	}
	me.updateHeight()
}

func (me *node[T]) setRight(child *node[T]) {
	me.right = child
	if child != nil {
		child.parent = me
	}
	me.updateHeight()
}

func leftmost[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}
