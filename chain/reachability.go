// Package chain: general reachability closure for arbitrary orderings.
package chain

import (
	"fmt"
	"sort"
)

// ClosureDFS computes chain(j) for every j by memoized depth-first
// reachability. Unlike Closure it accepts any index ordering; the
// ancestor < descendant contract is not required. A back-edge to a
// node still on the recursion stack yields ErrCycleDetected.
//
// Results match Closure exactly on inputs where both apply: ascending,
// deduplicated, excluding the node itself.
func ClosureDFS(direct [][]int) ([][]int, error) {
	n := len(direct)
	r := &reachResolver{
		direct: direct,
		state:  make([]int, n),
		chains: make([][]int, n),
	}
	for v := 0; v < n; v++ {
		if r.state[v] == white {
			if err := r.visit(v); err != nil {
				return nil, fmt.Errorf("ClosureDFS: %w", err)
			}
		}
	}

	return r.chains, nil
}

// reachResolver carries the shared traversal state of one ClosureDFS run.
type reachResolver struct {
	direct [][]int
	state  []int   // white/gray/black per node
	chains [][]int // memoized reachability sets, final once black
}

// visit resolves chain(v), recursing into unresolved progeny first.
func (r *reachResolver) visit(v int) error {
	if r.state[v] == gray {
		return fmt.Errorf("node %d: %w", v, ErrCycleDetected)
	}
	if r.state[v] == black {
		return nil
	}
	r.state[v] = gray

	seen := make(map[int]struct{}, len(r.direct[v]))
	set := make([]int, 0, len(r.direct[v]))
	for _, k := range r.direct[v] {
		if k < 0 || k >= len(r.direct) {
			return fmt.Errorf("edge %d→%d: %w", v, k, ErrIndexOutOfRange)
		}
		if err := r.visit(k); err != nil {
			return err
		}
		// chain(v) ⊇ {k} ∪ chain(k), now final.
		if _, dup := seen[k]; !dup {
			seen[k] = struct{}{}
			set = append(set, k)
		}
		for _, kk := range r.chains[k] {
			if _, dup := seen[kk]; !dup {
				seen[kk] = struct{}{}
				set = append(set, kk)
			}
		}
	}
	sort.Ints(set)
	r.chains[v] = set
	r.state[v] = black

	return nil
}
