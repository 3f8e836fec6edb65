// Package chain: explicit topological ordering of the decay graph.
//
// TopoOrder computes a linear ordering of nuclide indices such that
// every parent precedes all of its progeny. It is the companion of
// ClosureDFS for networks that do not honor the ancestor < descendant
// index contract: the triangular solvers iterate chain members in this
// order so every intermediate coefficient is resolved before it is
// consumed.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (recursion stack and state slice)
package chain

import "fmt"

// TopoOrder returns a topological ordering of all nodes of the decay
// graph (reverse depth-first post-order). Under the ancestor <
// descendant index contract the natural order 0…V−1 is already
// topological and this pass is unnecessary.
// If the graph contains a cycle, ErrCycleDetected is returned.
func TopoOrder(direct [][]int) ([]int, error) {
	n := len(direct)
	state := make([]int, n)    // all nodes start white
	order := make([]int, 0, n) // post-order accumulator

	var visit func(v int) error
	visit = func(v int) error {
		// Gray means v is on the current recursion stack: back-edge.
		if state[v] == gray {
			return fmt.Errorf("node %d: %w", v, ErrCycleDetected)
		}
		if state[v] == black {
			return nil
		}
		state[v] = gray
		for _, k := range direct[v] {
			if k < 0 || k >= n {
				return fmt.Errorf("edge %d→%d: %w", v, k, ErrIndexOutOfRange)
			}
			if err := visit(k); err != nil {
				return err
			}
		}
		state[v] = black
		order = append(order, v)

		return nil
	}

	for v := 0; v < n; v++ {
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, fmt.Errorf("TopoOrder: %w", err)
			}
		}
	}

	// Reverse post-order yields the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
