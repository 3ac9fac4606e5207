package rtv

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Equatable is the capability an element type must provide for Equal to
// compare two Vectors of that type (spec.md §6).
type Equatable[T any] interface {
	Equal(T) bool
}

// Orderable is the capability an element type must provide for Compare to
// order two Vectors of that type.
type Orderable[T any] interface {
	Compare(T) int
}

// Hashable is the capability an element type must provide for Hash to
// fold a Vector of that type down to a single digest.
type Hashable interface {
	Hash() uint64
}

// Sequence is satisfied by both *Vector[T] and Frozen[T], letting Equal,
// Compare, and Hash operate uniformly over either.
type Sequence[T any] interface {
	Len() int
	Values() *ValueIterator[T]
}

// Equal reports whether a and b hold the same elements in the same order,
// short-circuiting on the first differing element. A Vector that is a
// strict prefix of the other is never equal to it (their lengths differ).
func Equal[T Equatable[T]](a, b Sequence[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	ai, bi := a.Values(), b.Values()
	for {
		x, ok := ai.Next()
		if !ok {
			return true
		}
		y, _ := bi.Next()
		if !x.Equal(y) {
			return false
		}
	}
}

// Compare orders a and b element-wise, short-circuiting on the first
// differing element; if one is a prefix of the other, the shorter sorts
// before the longer (spec.md §8, property 7).
func Compare[T Orderable[T]](a, b Sequence[T]) int {
	ai, bi := a.Values(), b.Values()
	for {
		x, aok := ai.Next()
		y, bok := bi.Next()
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		if c := x.Compare(y); c != 0 {
			return c
		}
	}
}

// Hash folds the hash of every element of v with a left-to-right
// streaming combine, implemented with xxhash rather than a hand-rolled
// multiplier/xor loop (see DESIGN.md for why xxhash over FNV here).
func Hash[T Hashable](v Sequence[T]) uint64 {
	d := xxhash.New()
	var buf [8]byte
	it := v.Values()
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		binary.LittleEndian.PutUint64(buf[:], x.Hash())
		d.Write(buf[:])
	}
	return d.Sum64()
}
