// Package netbuild generates synthetic decay networks for tests,
// benchmarks and examples: linear chains, branching cascades and
// random decay DAGs.
//
// All generators are deterministic for a fixed seed and honor the
// ancestor < descendant index contract (every branch targets a higher
// index), so their output is valid input for both the single-pass and
// the general chain-closure resolvers. Decay constants are spaced
// logarithmically across the configured range, which keeps generated
// chains well-conditioned unless the caller narrows the range on
// purpose.
package netbuild
