// Package builder implements the tree builder: a stack machine that drives
// a green.Cache to construct an immutable tree incrementally while
// preserving byte-exact input. Every misuse of the stack machine — an
// unmatched finish_node, a stale checkpoint, a malformed token sequence —
// is a programmer error; this package reports those by panicking with a
// *ContractError rather than returning an error value, matching the core
// specification's error taxonomy (invariant violations abort, they are
// never recoverable call-site conditions).
package builder

import "fmt"

// ContractError describes a violated builder invariant: unbalanced
// start_node/finish_node pairs, an out-of-range or stale checkpoint, a
// token-builder call made out of order, or a duplicate finish.
type ContractError struct {
	Msg string
}

func (e *ContractError) Error() string { return e.Msg }

func fail(format string, args ...any) {
	panic(&ContractError{Msg: fmt.Sprintf(format, args...)})
}
