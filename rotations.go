package avlset

// rotateLeft makes n's right child the new subtree root, demoting n to its
// left child. The former left subtree of the pivot moves under n. Heights are
// recomputed child before parent. Returns the new subtree root, whose parent
// link still points at n's old parent; the caller reattaches it.
func rotateLeft[T any](n *node[T]) *node[T] {
	if n.right == nil {
		return n
	}
	parent := n.parent
	pivot := n.right
	n.setRight(pivot.left)
	pivot.setLeft(n)
	pivot.parent = parent
	return pivot
}

// rotateRight is the mirror of rotateLeft.
func rotateRight[T any](n *node[T]) *node[T] {
	if n.left == nil {
		return n
	}
	parent := n.parent
	pivot := n.left
	n.setLeft(pivot.right)
	pivot.setRight(n)
	pivot.parent = parent
	return pivot
}

// balanceNode restores the AVL invariant at n, assuming both subtrees already
// satisfy it and their heights are current. A subtree tilted against the
// rotation direction is rotated into line first so the single rotation can't
// re-imbalance it. Returns the subtree root after any rotation.
func balanceNode[T any](n *node[T]) *node[T] {
	if n == nil {
		return n
	}
	switch d := n.diff(); {
	case d == -2 && n.right.diff() == 1:
		n.setRight(rotateRight(n.right))
		return rotateLeft(n)
	case d == -2:
		return rotateLeft(n)
	case d == 2 && n.left.diff() == -1:
		n.setLeft(rotateLeft(n.left))
		return rotateRight(n)
	case d == 2:
		return rotateRight(n)
	}
	return n
}

// balancePath rebalances after a structural change. path is the descent from
// the root, deepest node last. Each ancestor has its height refreshed and both
// child subtrees rebalanced through setLeft/setRight so replacement roots are
// reattached, then the tree root itself is balanced and reassigned. The
// deepest node needs no treatment of its own: it is either the freshly
// attached leaf or the just-spliced-out deletion target.
func (me *Set[T]) balancePath(path []*node[T]) {
	for i := len(path) - 2; i >= 0; i-- {
		n := path[i]
		n.updateHeight()
		if n.left != nil {
			n.setLeft(balanceNode(n.left))
		}
		if n.right != nil {
			n.setRight(balanceNode(n.right))
		}
	}
	me.setRoot(balanceNode(me.root))
}
