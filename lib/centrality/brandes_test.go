package centrality

import (
	"math"
	"testing"

	"github.com/bionetops/pathnet/lib/graph"
)

func buildPathGraph(t *testing.T, ids ...string) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(false)
	for _, id := range ids {
		b.AddNode(id, "")
	}
	for i := 1; i < len(ids); i++ {
		if err := b.AddEdge(ids[i-1], ids[i]); err != nil {
			t.Fatalf("unexpected error building path graph: %v", err)
		}
	}
	return b.Build()
}

func allPivots(g *graph.Graph) *Estimator {
	est := NewEstimator(g)
	for i := 0; i < g.NodeCount(); i++ {
		est.AddPivot(int32(i))
	}
	return est
}

func score(t *testing.T, g *graph.Graph, est *Estimator, id string) float64 {
	t.Helper()
	i, ok := g.Lookup(id)
	if !ok {
		t.Fatalf("node %s not found", id)
	}
	return est.Scores()[i]
}

func TestPathGraphRanking(t *testing.T) {
	g := buildPathGraph(t, "a", "b", "c", "d", "e")
	est := allPivots(g)
	if est.Pivots() != 5 {
		t.Fatalf("expected 5 pivots but got %d", est.Pivots())
	}

	a := score(t, g, est, "a")
	b := score(t, g, est, "b")
	c := score(t, g, est, "c")
	d := score(t, g, est, "d")
	e := score(t, g, est, "e")

	if !(c > b && b > a) {
		t.Errorf("expected center > interior > endpoint but got c=%f b=%f a=%f", c, b, a)
	}
	if b != d {
		t.Errorf("symmetric interior nodes should score equally, got b=%f d=%f", b, d)
	}
	if a != 0 || e != 0 {
		t.Errorf("endpoints lie on no path between other nodes, got a=%f e=%f", a, e)
	}
	// Hand-computed pair dependencies for the 5-node path: the center
	// accumulates 8, its neighbors 6 each.
	if c != 8 || b != 6 {
		t.Errorf("expected accumulated scores c=8 b=6 but got c=%f b=%f", c, b)
	}
}

func TestStarGraphHubDominates(t *testing.T) {
	b := graph.NewBuilder(false)
	b.AddNode("hub", "")
	leaves := []string{"l1", "l2", "l3", "l4", "l5", "l6"}
	for _, l := range leaves {
		b.AddNode(l, "")
		if err := b.AddEdge("hub", l); err != nil {
			t.Fatalf("unexpected error building star graph: %v", err)
		}
	}
	g := b.Build()
	est := allPivots(g)

	hub := score(t, g, est, "hub")
	// From each of the 6 leaf pivots the hub mediates paths to the 5
	// other leaves.
	if hub != 30 {
		t.Errorf("expected hub score 30 but got %f", hub)
	}
	for _, l := range leaves {
		if s := score(t, g, est, l); s != 0 {
			t.Errorf("leaf %s should have score 0 but got %f", l, s)
		}
	}
}

func TestPivotReceivesNoSelfCredit(t *testing.T) {
	g := buildPathGraph(t, "a", "b", "c")
	est := NewEstimator(g)
	mid, _ := g.Lookup("b")
	est.AddPivot(mid)
	if got := est.Scores()[mid]; got != 0 {
		t.Errorf("the pivot must not credit itself but got %f", got)
	}
}

func TestEqualPathsShareDependency(t *testing.T) {
	// Diamond: two equal-length paths from A to D, through B and C.
	b := graph.NewBuilder(false)
	for _, id := range []string{"A", "B", "C", "D"} {
		b.AddNode(id, "")
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	g := b.Build()
	est := NewEstimator(g)
	a, _ := g.Lookup("A")
	est.AddPivot(a)

	bScore := score(t, g, est, "B")
	cScore := score(t, g, est, "C")
	if math.Abs(bScore-0.5) > 1e-9 || math.Abs(cScore-0.5) > 1e-9 {
		t.Errorf("each of the two shortest paths carries half the dependency, got B=%f C=%f", bScore, cScore)
	}
}
