package lib

import (
	"reflect"
	"testing"

	"github.com/bionetops/pathnet/lib/settings"
)

func TestUbiquitousNodesBoundaryIsInclusive(t *testing.T) {
	frequencies := map[string]int{"a": 10, "b": 9, "c": 5}
	centrality := map[string]float64{"x": 1.0, "y": 0.89}

	got := ubiquitousNodes(frequencies, centrality, settings.NormalizeByMax, 0, 0.9)
	// b sits exactly at the threshold (9/10) and must qualify.
	want := []string{"a", "b", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v but got %v", want, got)
	}
}

func TestUbiquitousNodesCountNormalization(t *testing.T) {
	frequencies := map[string]int{"a": 10, "b": 19}
	got := ubiquitousNodes(frequencies, nil, settings.NormalizeByCount, 20, 0.9)
	// With 20 sampled paths only b reaches 19/20 >= 0.9.
	if !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("expected only b but got %v", got)
	}
}

func TestUbiquitousNodesUnionOfCriteria(t *testing.T) {
	frequencies := map[string]int{"freq": 10, "other": 1}
	centrality := map[string]float64{"central": 2.0, "other": 0.1}
	got := ubiquitousNodes(frequencies, centrality, settings.NormalizeByMax, 0, 0.95)
	want := []string{"central", "freq"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("either criterion alone qualifies a node, expected %v but got %v", want, got)
	}
}

func TestUbiquitousNodesEmptyInputs(t *testing.T) {
	if got := ubiquitousNodes(nil, nil, settings.NormalizeByMax, 0, 0.9); len(got) != 0 {
		t.Errorf("empty tables should yield no ubiquitous nodes, got %v", got)
	}
}
