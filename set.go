package avlset

import (
	"iter"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/missinggo/v2/panicif"
	"golang.org/x/exp/constraints"
)

// Set is an ordered set of unique elements backed by an AVL tree. Insertion,
// removal and lookup are O(log n). Elements are ordered by a strict-weak less
// function; two elements are equivalent when neither is less than the other.
// No equality or hashing is required of T.
//
// A Set must not be mutated concurrently. Callers wanting shared access
// serialize externally.
type Set[T any] struct {
	less  func(a, b T) bool
	root  *node[T]
	len   int
	begin Iterator[T]
	end   Iterator[T]
}

// New returns an empty Set ordered by <.
func New[T constraints.Ordered]() *Set[T] {
	return NewFunc[T](func(a, b T) bool { return a < b })
}

// NewFunc returns an empty Set ordered by less, which must be a strict weak
// ordering.
func NewFunc[T any](less func(a, b T) bool) *Set[T] {
	me := &Set[T]{less: less}
	me.setBoundaryIters()
	return me
}

// FromSlice returns a Set of the given elements. Duplicates collapse.
func FromSlice[T constraints.Ordered](elems ...T) *Set[T] {
	me := New[T]()
	for _, elem := range elems {
		me.Add(elem)
	}
	return me
}

// FromSeq drains seq into a new Set.
func FromSeq[T constraints.Ordered](seq iter.Seq[T]) *Set[T] {
	me := New[T]()
	for elem := range seq {
		me.Add(elem)
	}
	return me
}

func (me *Set[T]) Len() int {
	return me.len
}

func (me *Set[T]) Empty() bool {
	return me.len == 0
}

func (me *Set[T]) equiv(a, b T) bool {
	return !me.less(a, b) && !me.less(b, a)
}

// Find returns an iterator at the element equivalent to v, or End if there is
// none.
func (me *Set[T]) Find(v T) Iterator[T] {
	n := me.root
	for n != nil {
		switch {
		case me.less(v, n.value):
			n = n.left
		case me.less(n.value, v):
			n = n.right
		default:
			return Iterator[T]{n, me.root}
		}
	}
	return me.end
}

func (me *Set[T]) Contains(v T) bool {
	return me.Find(v) != me.end
}

// LowerBound returns an iterator at the leftmost element not less than v, or
// End if every element is less than v.
func (me *Set[T]) LowerBound(v T) Iterator[T] {
	if it := me.Find(v); it != me.end {
		return it
	}
	var candidate *node[T]
	n := me.root
	for n != nil {
		if me.less(n.value, v) {
			n = n.right
		} else {
			candidate = n
			n = n.left
		}
	}
	return Iterator[T]{candidate, me.root}
}

// Add inserts v. Adding an element already present is a no-op.
func (me *Set[T]) Add(v T) {
	me.CheckedAdd(v)
}

// CheckedAdd inserts v, reporting whether the set changed.
func (me *Set[T]) CheckedAdd(v T) bool {
	if me.Contains(v) {
		return false
	}
	me.len++
	if me.root == nil {
		me.setRoot(newNode(v))
		me.setBoundaryIters()
		return true
	}
	var path []*node[T]
	n := me.root
	for n != nil {
		path = append(path, n)
		if me.less(v, n.value) {
			n = n.left
		} else {
			n = n.right
		}
	}
	deepest := path[len(path)-1]
	if me.less(deepest.value, v) {
		deepest.setRight(newNode(v))
	} else {
		deepest.setLeft(newNode(v))
	}
	me.balancePath(path)
	me.setBoundaryIters()
	return true
}

// Remove erases the element equivalent to v if present. When the matched node
// has two children its value is swapped with the in-order predecessor and the
// predecessor's node is spliced out instead. Iterators at the removed value,
// and at the predecessor in the two-child case, are invalidated.
func (me *Set[T]) Remove(v T) {
	me.CheckedRemove(v)
}

// CheckedRemove erases the element equivalent to v, reporting whether the set
// changed.
func (me *Set[T]) CheckedRemove(v T) bool {
	if !me.Contains(v) {
		return false
	}
	me.len--
	var path []*node[T]
	var x *node[T]
	n := me.root
	for n != nil {
		path = append(path, n)
		if me.equiv(v, n.value) {
			x = n
			// Continue to the in-order predecessor: one step left, then
			// rightmost.
			n = n.left
			for n != nil {
				path = append(path, n)
				n = n.right
			}
			break
		}
		if me.less(v, n.value) {
			n = n.left
		} else {
			n = n.right
		}
	}
	// Contains succeeded above, so the descent must have found it.
	panicif.True(x == nil)
	target := path[len(path)-1]
	if target != x {
		x.value, target.value = target.value, x.value
	}
	me.splice(target)
	me.balancePath(path)
	me.setBoundaryIters()
	return true
}

// splice removes n, which has at most one child, reattaching that child to
// n's parent in n's slot.
func (me *Set[T]) splice(n *node[T]) {
	child := n.left
	if child == nil {
		child = n.right
	}
	if n.parent == nil {
		me.setRoot(child)
	} else if n.parent.right == n {
		n.parent.setRight(child)
	} else {
		n.parent.setLeft(child)
	}
	n.left = nil
	n.right = nil
	n.parent = nil
}

func (me *Set[T]) setRoot(n *node[T]) {
	me.root = n
	if n != nil {
		n.parent = nil
	}
}

func (me *Set[T]) setBoundaryIters() {
	me.end = Iterator[T]{nil, me.root}
	me.begin = me.end
	if me.root != nil {
		me.begin = Iterator[T]{leftmost(me.root), me.root}
	}
}

// Begin returns an iterator at the smallest element, or End when empty.
func (me *Set[T]) Begin() Iterator[T] {
	return me.begin
}

// End returns the past-the-last iterator. It is not dereferenceable.
func (me *Set[T]) End() Iterator[T] {
	return me.end
}

// First returns the smallest element, if any.
func (me *Set[T]) First() (ret g.Option[T]) {
	if me.root != nil {
		ret.Set(leftmost(me.root).value)
	}
	return
}

// Last returns the largest element, if any.
func (me *Set[T]) Last() (ret g.Option[T]) {
	if me.root != nil {
		ret.Set(rightmost(me.root).value)
	}
	return
}

// All ranges over the elements in ascending order.
func (me *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := me.begin; it != me.end; it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Clear discards all elements. Unlinked nodes are left to the GC.
func (me *Set[T]) Clear() {
	me.setRoot(nil)
	me.len = 0
	me.setBoundaryIters()
}

// Clone returns a deep copy sharing no nodes with the receiver. Shape and
// heights are reproduced exactly, so the copy is balanced iff the receiver
// is. O(n).
func (me *Set[T]) Clone() *Set[T] {
	ret := NewFunc[T](me.less)
	ret.len = me.len
	if me.root == nil {
		return ret
	}
	type pair struct {
		src, dst *node[T]
	}
	ret.root = newNode(me.root.value)
	stack := []pair{{me.root, ret.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.src.left != nil {
			p.dst.setLeft(newNode(p.src.left.value))
			stack = append(stack, pair{p.src.left, p.dst.left})
		}
		if p.src.right != nil {
			p.dst.setRight(newNode(p.src.right.value))
			stack = append(stack, pair{p.src.right, p.dst.right})
		}
		p.dst.height = p.src.height
	}
	ret.setBoundaryIters()
	return ret
}
