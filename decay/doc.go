// Package decay defines the decay-network data model: an ordered set of
// nuclides, each carrying a decay constant and its branching edges to
// progeny, generic over the numeric domain (float64 or exact *big.Rat
// via the field package).
//
// A Network is validated and frozen at construction: nuclide positions
// are the caller-supplied 0-based indices that every downstream matrix
// is addressed by, decay constants must be nonnegative, branching
// fractions must lie in (0, 1], and stable nuclides may not branch.
// Branches targeting an index outside the network are dropped, but —
// unlike the data sources this model descends from — the drop is
// counted and queryable via DroppedBranches, so silent data loss is
// visible to the caller.
//
// After NewNetwork returns, the Network is immutable and safe for
// concurrent readers.
package decay
