// Package chain resolves full decay-chain membership: for every nuclide
// index j, the set of all indices reachable from j through one or more
// decay steps. These sets are exactly the off-diagonal sparsity pattern
// of the transform matrices C and C⁻¹.
//
// Two resolvers are provided:
//
//   - Closure — a single descending pass, valid only under the ordering
//     contract that every progeny index is numerically greater than its
//     parent's index (ancestor < descendant). The precondition is
//     validated up front and violated inputs fail fast with
//     ErrOrderingViolation rather than silently producing truncated
//     chains.
//   - ClosureDFS — a general memoized depth-first reachability pass
//     that accepts arbitrary index orderings and additionally detects
//     cycles.
//
// DetectCycle verifies the decay graph's acyclicity invariant on its
// own, using the classic three-color depth-first marking.
//
// All functions take the graph as an adjacency pattern: direct[j] lists
// the direct progeny indices of j in ascending order (see
// decay.Network.Progeny). Outputs are ascending, deduplicated index
// slices, one per nuclide, never containing the nuclide itself.
//
// Complexity:
//
//   - Closure:    O(V + Σ|chain|) time, O(Σ|chain|) memory
//   - ClosureDFS: O(V + E + Σ|chain|) time, O(Σ|chain|) memory
//   - DetectCycle: O(V + E) time, O(V) memory
package chain
