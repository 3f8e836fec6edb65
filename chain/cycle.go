// Package chain: standalone acyclicity check.
// DetectCycle performs three-color depth-first marking over the decay
// graph; a Gray→Gray back-edge proves a cycle and the offending path
// segment is reported for debugging upstream data.
package chain

import (
	"fmt"
	"strconv"
	"strings"
)

// DetectCycle verifies that the decay graph is acyclic.
// Returns nil when no cycle exists; otherwise ErrCycleDetected wrapped
// with the cycle's index path (e.g. "2→5→2").
// Complexity: O(V + E) time, O(V) memory.
func DetectCycle(direct [][]int) error {
	n := len(direct)
	state := make([]int, n)
	path := make([]int, 0, n)

	var visit func(v int) error
	visit = func(v int) error {
		state[v] = gray
		path = append(path, v)
		for _, k := range direct[v] {
			if k < 0 || k >= n {
				return fmt.Errorf("edge %d→%d: %w", v, k, ErrIndexOutOfRange)
			}
			switch state[k] {
			case gray:
				// Back-edge: reconstruct the cycle segment for the message.
				return fmt.Errorf("%s: %w", cyclePath(path, k), ErrCycleDetected)
			case white:
				if err := visit(k); err != nil {
					return err
				}
			}
		}
		path = path[:len(path)-1]
		state[v] = black

		return nil
	}

	for v := 0; v < n; v++ {
		if state[v] == white {
			if err := visit(v); err != nil {
				return fmt.Errorf("DetectCycle: %w", err)
			}
		}
	}

	return nil
}

// cyclePath renders the segment of path from the first occurrence of
// start, closed back on start, as "a→b→…→a".
func cyclePath(path []int, start int) string {
	idx := 0
	for i, v := range path {
		if v == start {
			idx = i
			break
		}
	}
	var sb strings.Builder
	for _, v := range path[idx:] {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString("→")
	}
	sb.WriteString(strconv.Itoa(start))

	return sb.String()
}
