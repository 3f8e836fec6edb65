// Package chain: the single-pass closure resolver and its ordering
// precondition.
package chain

import (
	"fmt"
	"sort"
)

// ValidateOrdering checks the ancestor < descendant index contract:
// every edge j → k must satisfy k > j, and every k must lie in [0, V).
// The first violation is reported with both endpoints.
// Complexity: O(V + E).
func ValidateOrdering(direct [][]int) error {
	n := len(direct)
	for j, progeny := range direct {
		for _, k := range progeny {
			if k < 0 || k >= n {
				return fmt.Errorf("ValidateOrdering: edge %d→%d: %w", j, k, ErrIndexOutOfRange)
			}
			if k <= j {
				return fmt.Errorf("ValidateOrdering: edge %d→%d: %w", j, k, ErrOrderingViolation)
			}
		}
	}

	return nil
}

// Closure computes chain(j) for every j in a single descending pass.
//
// Processing indices from V−1 down to 0, chain(i) starts as the direct
// progeny of i; each progeny k has k > i under the ordering contract,
// so chain(k) is already final and is unioned in wholesale. The
// contract is validated up front: violated inputs fail fast with
// ErrOrderingViolation instead of yielding truncated chains.
//
// The result for each j is deduplicated and ascending, excluding j
// itself. Acyclicity is implied by the ordering contract (every edge
// strictly increases the index), so no separate cycle check is needed
// on this path.
func Closure(direct [][]int) ([][]int, error) {
	if err := ValidateOrdering(direct); err != nil {
		return nil, fmt.Errorf("Closure: %w", err)
	}

	n := len(direct)
	chains := make([][]int, n)
	// mark is a reusable membership stamp: mark[v] == i+1 means v is
	// already in chain(i). Avoids a map allocation per node.
	mark := make([]int, n)

	for i := n - 1; i >= 0; i-- {
		stamp := i + 1
		set := make([]int, 0, len(direct[i]))
		for _, k := range direct[i] {
			if mark[k] != stamp {
				mark[k] = stamp
				set = append(set, k)
			}
			// k > i, so chain(k) is final: union it in.
			for _, kk := range chains[k] {
				if mark[kk] != stamp {
					mark[kk] = stamp
					set = append(set, kk)
				}
			}
		}
		sort.Ints(set)
		chains[i] = set
	}

	return chains, nil
}
