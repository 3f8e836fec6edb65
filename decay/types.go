// Package decay: domain types and sentinel errors.
package decay

import "errors"

// Sentinel errors for network construction and access.
var (
	// ErrNetworkNil indicates a nil *Network was passed to a consumer.
	ErrNetworkNil = errors.New("decay: network is nil")

	// ErrNilField indicates NewNetwork was called without an arithmetic
	// implementation.
	ErrNilField = errors.New("decay: field is nil")

	// ErrEmptyNetwork indicates NewNetwork was called with no nuclides.
	ErrEmptyNetwork = errors.New("decay: network has no nuclides")

	// ErrNegativeDecayConstant indicates a nuclide with λ < 0.
	ErrNegativeDecayConstant = errors.New("decay: negative decay constant")

	// ErrBranchFraction indicates a branching fraction outside (0, 1].
	ErrBranchFraction = errors.New("decay: branching fraction outside (0,1]")

	// ErrStableBranch indicates a stable nuclide (λ = 0) carrying
	// outgoing branches.
	ErrStableBranch = errors.New("decay: stable nuclide has branches")

	// ErrSelfDecay indicates a branch whose progeny is its own parent.
	ErrSelfDecay = errors.New("decay: nuclide decays to itself")

	// ErrIndexOutOfRange indicates a nuclide index outside [0, Len).
	ErrIndexOutOfRange = errors.New("decay: nuclide index out of range")
)

// Branch is one decay pathway: the index of the progeny produced and
// the fraction of parent decays producing it.
type Branch[T any] struct {
	// Progeny is the 0-based network index of the decay product.
	Progeny int

	// Fraction is the branching fraction, in (0, 1].
	Fraction T
}

// Nuclide is one node of the decay network.
type Nuclide[T any] struct {
	// Name is an optional human-readable label (e.g. "Xe-142").
	// The core never interprets it; it exists for diagnostics.
	Name string

	// DecayConstant is λ ≥ 0; zero marks a stable nuclide.
	DecayConstant T

	// Branches lists the decay pathways of this nuclide, in the order
	// supplied by the caller. Empty for stable nuclides.
	Branches []Branch[T]
}
