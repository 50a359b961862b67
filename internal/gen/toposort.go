package gen

import (
	"fmt"
	"slices"
)

// cycleError reports the nodes left over when a dependency cycle blocks the sort.
type cycleError struct {
	nodes []int
}

func (e *cycleError) Error() string {
	return fmt.Sprintf("cycle detected among %d nodes", len(e.nodes))
}

// topoSort returns node indices in dependency order.
//
// depsFn(i) yields indices that must come before i. When several nodes are
// ready the smallest index goes first, so nodes without dependencies keep
// their input order. A cycle returns a *cycleError listing the unsorted nodes.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	dependents := make([][]int, n)

	for i := 0; i < n; i++ {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			dependents[d] = append(dependents[d], i)
		}
	}

	var ready []int

	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)

		for _, j := range dependents[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		var left []int

		for i := 0; i < n; i++ {
			if indeg[i] > 0 {
				left = append(left, i)
			}
		}

		return nil, &cycleError{nodes: left}
	}

	return order, nil
}
