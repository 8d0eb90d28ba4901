/*
Package avlset provides an ordered set backed by an AVL tree.

Simple example:

	s := avlset.FromSlice(5, 3, 8)
	s.Add(1)
	s.Remove(3)
	for v := range s.All() {
		fmt.Println(v)
	}

Elements need only a less-than ordering (see NewFunc); lookup, insertion and
removal are logarithmic, and iterators step both ways in amortized constant
time.
*/
package avlset
