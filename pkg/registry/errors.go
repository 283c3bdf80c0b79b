package registry

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an id does not resolve to a live record.
var ErrNotFound = errors.New("registry: item not found")

// ErrInvalidState is the base error for operations rejected by a record
// invariant. The specific variants below wrap it, so callers can branch on
// either the variant or the class with errors.Is.
var ErrInvalidState = errors.New("registry: invalid item state")

var (
	ErrSelfMatch      = fmt.Errorf("%w: cannot match an item with itself", ErrInvalidState)
	ErrSameStatus     = fmt.Errorf("%w: items must have opposite lost/found status", ErrInvalidState)
	ErrAlreadyMatched = fmt.Errorf("%w: item is already matched", ErrInvalidState)
	ErrNotMatched     = fmt.Errorf("%w: item is not matched", ErrInvalidState)
	ErrAlreadyClaimed = fmt.Errorf("%w: item is already claimed", ErrInvalidState)
)

// ErrCorrupt is returned when the data file body cannot be decoded. The
// registry is left empty; the next successful save overwrites the bad file.
var ErrCorrupt = errors.New("registry: corrupt data file")

// ErrUnsaved wraps write failures of the data file. The in-memory change the
// operation made still stands; only persistence failed. Callers surface the
// warning and continue, and the next successful save covers the gap.
var ErrUnsaved = errors.New("registry: changes not saved")

// errShortHeader marks a data file too short to carry a header. Load treats
// it as an empty store rather than an error.
var errShortHeader = errors.New("registry: data file header incomplete")
