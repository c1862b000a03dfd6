package graph

import (
	"strings"
)

// DefaultBlacklistEntries are the generic cofactors and small molecules
// that participate in almost every metabolic reaction. Left in the graph
// they end up on nearly every shortest path and drown out the
// biologically specific nodes.
var DefaultBlacklistEntries = []string{
	"ATP", "ADP", "NADH", "NAD+", "NADPH", "NADP+", "FADH2", "FAD",
	"Pyruvate", "Pi", "Phosphate", "PPi", "Pyrophosphate",
	"H+", "Proton", "CO2", "H2O", "O2",
}

// A Blacklist removes ubiquitous metabolite nodes before analysis.
// Matching is case-insensitive: a node matches when its name equals an
// entry, or when all words of an entry occur in the node name.
type Blacklist struct {
	enabled bool
	entries []string
}

// NewBlacklist builds an enabled blacklist from the default entries plus
// any extra entries.
func NewBlacklist(extra []string) Blacklist {
	entries := make([]string, 0, len(DefaultBlacklistEntries)+len(extra))
	for _, e := range DefaultBlacklistEntries {
		entries = append(entries, strings.ToUpper(strings.TrimSpace(e)))
	}
	for _, e := range extra {
		e = strings.ToUpper(strings.TrimSpace(e))
		if e != "" {
			entries = append(entries, e)
		}
	}
	return Blacklist{enabled: true, entries: entries}
}

// DisabledBlacklist matches nothing and filters by reference.
func DisabledBlacklist() Blacklist {
	return Blacklist{enabled: false}
}

// Enabled reports whether the blacklist is active.
func (b Blacklist) Enabled() bool { return b.enabled }

// Matches reports whether the given node name is blacklisted.
func (b Blacklist) Matches(name string) bool {
	if !b.enabled {
		return false
	}
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, entry := range b.entries {
		if name == entry {
			return true
		}
	}
	nameWords := make(map[string]bool)
	for _, w := range strings.Fields(name) {
		nameWords[w] = true
	}
	for _, entry := range b.entries {
		words := strings.Fields(entry)
		if len(words) == 0 {
			continue
		}
		all := true
		for _, w := range words {
			if !nameWords[w] {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// Filter returns a graph without the blacklisted nodes and their incident
// edges. A disabled blacklist returns the input unchanged; the input graph
// is never modified, so filtering twice yields the same node and edge set
// as filtering once.
func (b Blacklist) Filter(g *Graph) *Graph {
	if !b.enabled {
		return g
	}
	builder := NewBuilder(g.Directed())
	kept := 0
	for _, n := range g.nodes {
		if b.Matches(n.ID) {
			continue
		}
		builder.AddNode(n.ID, n.Type)
		kept++
	}
	if kept == len(g.nodes) {
		return g
	}
	for _, e := range g.edges {
		from := g.nodes[e[0]].ID
		to := g.nodes[e[1]].ID
		if b.Matches(from) || b.Matches(to) {
			continue
		}
		// Both endpoints survived the node pass, AddEdge cannot fail.
		_ = builder.AddEdge(from, to)
	}
	return builder.Build()
}
