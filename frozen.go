package rtv

// Frozen is a read-only snapshot produced by Vector.Freeze. It owns a
// Vector value exclusively (its own tail copy, the source's root shared
// by reference) but exposes no mutating method, giving "typed to disallow
// subsequent mutation" real teeth instead of a doc comment.
type Frozen[T any] struct {
	v Vector[T]
}

// Len returns the number of elements in f.
func (f Frozen[T]) Len() int { return f.v.Len() }

// Get returns the element at index i, panicking with ErrOutOfBounds if i
// is out of range.
func (f Frozen[T]) Get(i int) T { return f.v.Get(i) }

// MaybeGet is the checked form of Get.
func (f Frozen[T]) MaybeGet(i int) (T, bool) { return f.v.MaybeGet(i) }

// Last returns the final element of f.
func (f Frozen[T]) Last() (T, bool) { return f.v.Last() }

// Keys returns a lazy sequence of [0, Len()).
func (f Frozen[T]) Keys() *KeyIterator { return newKeyIterator(f.v.Len()) }

// Values returns a snapshot iterator over f's elements. Since f is already
// immutable the snapshot can never diverge from f, but the type returned
// is identical to Vector.Values for uniformity.
func (f Frozen[T]) Values() *ValueIterator[T] { return newValueIterator(&f.v) }

// Items returns a snapshot iterator over (index, element) pairs.
func (f Frozen[T]) Items() *ItemIterator[T] { return newItemIterator(&f.v) }

// Unfreeze returns a mutable clone of f, duplicating the tail and sharing
// the tree by reference, the same cost as Clone/Freeze themselves.
func (f Frozen[T]) Unfreeze() *Vector[T] {
	c := f.v.clone()
	return &c
}

// String renders f the same way Vector.String does, tagged "rtv.Frozen".
func (f Frozen[T]) String() string {
	return showVector("rtv.Frozen", f.v.Len(), f.v.MaybeGet)
}
