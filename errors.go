package wavl

import "errors"

// Errors returned by tree operations.  Comparator callbacks may return
// arbitrary errors of their own; those are handed back to the caller
// untouched, so they remain distinguishable with errors.Is/errors.As.
var (
	// ErrBadArg indicates a required argument was absent.  The tree is
	// unchanged.
	ErrBadArg = errors.New("wavl: bad argument")

	// ErrDuplicate indicates an insertion found a node with an equal
	// key already in the tree.  The tree is unchanged.
	ErrDuplicate = errors.New("wavl: duplicate key")

	// ErrNotFound indicates a search exhausted the tree without a match.
	ErrNotFound = errors.New("wavl: key not found")
)
