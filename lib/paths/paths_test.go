package paths

import (
	"reflect"
	"testing"

	"github.com/bionetops/pathnet/lib/graph"
)

func buildGraph(t *testing.T, directed bool, nodes []string, edges [][2]string) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(directed)
	for _, n := range nodes {
		b.AddNode(n, "")
	}
	for _, e := range edges {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("unexpected error adding edge %v: %v", e, err)
		}
	}
	return b.Build()
}

func idx(t *testing.T, g *graph.Graph, id string) int32 {
	t.Helper()
	i, ok := g.Lookup(id)
	if !ok {
		t.Fatalf("node %s not found", id)
	}
	return i
}

func TestShortestPathDiamond(t *testing.T) {
	g := buildGraph(t, false,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}})

	path, ok := ShortestPath(g, idx(t, g, "A"), idx(t, g, "D"))
	if !ok {
		t.Fatalf("D should be reachable from A")
	}
	if len(path) != 3 {
		t.Errorf("expected a path with 3 nodes but got %d", len(path))
	}
	// Sorted adjacency makes the tie-break deterministic: B before C.
	want := []int32{idx(t, g, "A"), idx(t, g, "B"), idx(t, g, "D")}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("expected path %v but got %v", want, path)
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	g := buildGraph(t, false,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"C", "D"}})
	if _, ok := ShortestPath(g, idx(t, g, "A"), idx(t, g, "C")); ok {
		t.Errorf("C is in a different component and should be unreachable")
	}
}

func TestShortestPathRespectsDirection(t *testing.T) {
	g := buildGraph(t, true, []string{"A", "B"}, [][2]string{{"A", "B"}})
	if _, ok := ShortestPath(g, idx(t, g, "A"), idx(t, g, "B")); !ok {
		t.Errorf("B should be reachable along the edge direction")
	}
	if _, ok := ShortestPath(g, idx(t, g, "B"), idx(t, g, "A")); ok {
		t.Errorf("A should not be reachable against the edge direction")
	}
}

func TestShortestPathTrivial(t *testing.T) {
	g := buildGraph(t, false, []string{"A", "B"}, [][2]string{{"A", "B"}})
	path, ok := ShortestPath(g, idx(t, g, "A"), idx(t, g, "A"))
	if !ok || len(path) != 1 {
		t.Errorf("path from a node to itself should be just that node, got %v", path)
	}
}
