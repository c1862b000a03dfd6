// Package paths computes shortest paths on the shared interaction graph.
package paths

import (
	"github.com/bionetops/pathnet/lib/graph"
)

// ShortestPath returns the node indices of a shortest path from source to
// target, endpoints included, using breadth-first search. Edge direction
// is respected when the graph is directed. The second return value is
// false when the target is unreachable.
//
// Ties between equal-length paths are broken by adjacency order, which the
// graph builder keeps sorted, so the returned path is deterministic.
func ShortestPath(g *graph.Graph, source int32, target int32) ([]int32, bool) {
	if source == target {
		return []int32{source}, true
	}
	prev := make([]int32, g.NodeCount())
	for i := range prev {
		prev[i] = -1
	}
	prev[source] = source
	queue := []int32{source}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.Neighbors(v) {
			if prev[w] != -1 {
				continue
			}
			prev[w] = v
			if w == target {
				return backtrack(prev, source, target), true
			}
			queue = append(queue, w)
		}
	}
	return nil, false
}

func backtrack(prev []int32, source int32, target int32) []int32 {
	length := 0
	for v := target; v != source; v = prev[v] {
		length++
	}
	path := make([]int32, length+1)
	path[0] = source
	for v, i := target, length; v != source; v, i = prev[v], i-1 {
		path[i] = v
	}
	return path
}
