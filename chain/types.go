// Package chain: visitation states and sentinel errors.
package chain

import "errors"

// Visitation state of a node during depth-first traversal.
const (
	white = iota // not visited yet
	gray         // in the recursion stack (visiting)
	black        // fully explored
)

var (
	// ErrOrderingViolation indicates an edge whose progeny index is not
	// greater than its parent's index. The single-pass Closure resolver
	// is only correct under the ancestor < descendant ordering contract;
	// use ClosureDFS for arbitrary orderings.
	ErrOrderingViolation = errors.New("chain: progeny index not greater than parent (ordering contract violated)")

	// ErrCycleDetected indicates the decay graph loops back to an
	// ancestor, violating the finite-decay-chain invariant.
	ErrCycleDetected = errors.New("chain: cycle detected in decay graph")

	// ErrIndexOutOfRange indicates a progeny index outside [0, V).
	ErrIndexOutOfRange = errors.New("chain: progeny index out of range")
)
