package lib

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/bionetops/pathnet/lib/graph"
	"github.com/bionetops/pathnet/lib/settings"
)

func buildMetabolicGraph(t *testing.T) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(false)
	b.AddNode("Hexokinase", "Protein")
	b.AddNode("Glucokinase", "Protein")
	b.AddNode("Glucose", "SmallMolecule")
	b.AddNode("ATP", "SmallMolecule")
	for _, e := range [][2]string{{"Hexokinase", "Glucose"}, {"Glucokinase", "Glucose"}, {"Hexokinase", "ATP"}} {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("unexpected error adding edge %v: %v", e, err)
		}
	}
	return b.Build()
}

func TestSelectExplicitReportsMissingAndBlacklisted(t *testing.T) {
	g := buildMetabolicGraph(t)
	bl := graph.NewBlacklist(nil)
	filtered := bl.Filter(g)

	cfg := settings.AnalysisSettings{NodeList: []string{"Hexokinase", "Nope", "ATP", "Missing2"}}
	_, err := selectNodes(filtered, bl, cfg, rand.New(rand.NewSource(1)))
	if err == nil {
		t.Fatalf("expected an error for unknown and blacklisted nodes")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected a NotFoundError but got %T: %v", err, err)
	}
	if !reflect.DeepEqual(nf.Missing, []string{"Nope", "Missing2"}) {
		t.Errorf("expected both unknown names reported, got %v", nf.Missing)
	}
	if !reflect.DeepEqual(nf.Blacklisted, []string{"ATP"}) {
		t.Errorf("expected ATP reported as blacklisted, got %v", nf.Blacklisted)
	}
}

func TestSelectExplicitDeduplicates(t *testing.T) {
	g := buildMetabolicGraph(t)
	bl := graph.NewBlacklist(nil)
	filtered := bl.Filter(g)

	cfg := settings.AnalysisSettings{NodeList: []string{"Hexokinase", "Hexokinase", "Glucose"}}
	selection, err := selectNodes(filtered, bl, cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selection) != 2 {
		t.Errorf("duplicates should collapse, expected 2 nodes but got %d", len(selection))
	}
}

func TestSelectByType(t *testing.T) {
	g := buildMetabolicGraph(t)
	bl := graph.NewBlacklist(nil)
	filtered := bl.Filter(g)

	cfg := settings.AnalysisSettings{NodeType: "Protein"}
	selection, err := selectNodes(filtered, bl, cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selection) != 2 {
		t.Fatalf("expected the two proteins but got %d nodes", len(selection))
	}
	for _, idx := range selection {
		if filtered.Node(idx).Type != "Protein" {
			t.Errorf("node %s is not a Protein", filtered.Node(idx).ID)
		}
	}
}

func TestSelectUnknownTypeFails(t *testing.T) {
	g := buildMetabolicGraph(t)
	bl := graph.NewBlacklist(nil)
	filtered := bl.Filter(g)

	cfg := settings.AnalysisSettings{NodeType: "Rna"}
	_, err := selectNodes(filtered, bl, cfg, rand.New(rand.NewSource(1)))
	var confErr *settings.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Errorf("expected a ConfigurationError for an empty candidate set, got %v", err)
	}
}

func TestSelectRandomRespectsPopulation(t *testing.T) {
	g := buildMetabolicGraph(t)
	bl := graph.NewBlacklist(nil)
	filtered := bl.Filter(g)

	cfg := settings.AnalysisSettings{RandomNodes: 2}
	selection, err := selectNodes(filtered, bl, cfg, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selection) != 2 {
		t.Errorf("expected 2 random nodes but got %d", len(selection))
	}
	if selection[0] == selection[1] {
		t.Errorf("random selection draws without replacement")
	}

	cfg.RandomNodes = 10
	_, err = selectNodes(filtered, bl, cfg, rand.New(rand.NewSource(7)))
	var confErr *settings.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Errorf("expected a ConfigurationError when more nodes are requested than exist, got %v", err)
	}
}
