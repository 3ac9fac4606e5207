package rtv

import (
	"errors"
	"fmt"
)

// Sentinel errors covering the taxonomy of spec.md §7. Every panic this
// package raises wraps one of these, so a caller that chooses to recover
// can still identify the fault kind with errors.Is.
var (
	// ErrOutOfBounds is raised by Get and Set for an index outside the
	// live range [0, Len()).
	ErrOutOfBounds = errors.New("rtv: index out of bounds")

	// ErrInvalidArgument is raised by a negative capacity hint or a
	// negative resize target.
	ErrInvalidArgument = errors.New("rtv: invalid argument")

	// ErrInvariant is raised by the debug-only structural audit
	// (validateNode / Vector.Validate) when it finds a broken invariant.
	ErrInvariant = errors.New("rtv: structural invariant violated")

	// ErrEmpty is raised by Pop on an empty Vector. It is a sentinel of
	// its own: errors.Is does not match it against ErrOutOfBounds.
	ErrEmpty = errors.New("rtv: pop from empty vector")
)

// Fault is the panic value this package raises for every contract
// violation. It wraps one of the sentinel errors above with a
// human-readable detail string, so recover().(*rtv.Fault) gives both a
// stable kind (via errors.Is/errors.Unwrap) and a specific message.
type Fault struct {
	kind error
	msg  string
}

func fault(kind error, format string, args ...any) *Fault {
	return &Fault{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (f *Fault) Error() string { return f.msg }

func (f *Fault) Unwrap() error { return f.kind }
