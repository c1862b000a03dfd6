// Package graph holds the immutable attributed interaction network that
// all analysis stages share.
package graph

import (
	"fmt"
	"sort"
)

// A Node is a vertex of the interaction network. The ID is the stable
// identifier used in reports and selection lists, the Type is the
// biological kind of the node (Protein, SmallMolecule, ...).
type Node struct {
	ID   string
	Type string
}

// A Graph is a read-only view of an interaction network. Node identifiers
// are mapped to dense int32 indices so that workers can traverse shared
// adjacency slices without locking.
type Graph struct {
	directed  bool
	nodes     []Node
	index     map[string]int32
	edges     [][2]int32
	adjacency [][]int32
}

// Directed reports whether edge direction matters for traversal.
func (g *Graph) Directed() bool { return g.directed }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node at the given index.
func (g *Graph) Node(i int32) Node { return g.nodes[i] }

// Lookup resolves a node identifier to its index.
func (g *Graph) Lookup(id string) (int32, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Neighbors returns the indices reachable from i in one step. For
// undirected graphs this includes both endpoints of every incident edge.
// Callers must not modify the returned slice.
func (g *Graph) Neighbors(i int32) []int32 { return g.adjacency[i] }

// Edges returns the edge list as (from, to) index pairs. For undirected
// graphs each edge appears once with from < to. Callers must not modify
// the returned slice.
func (g *Graph) Edges() [][2]int32 { return g.edges }

// NodeType returns the type attribute for a node identifier, or "Unknown"
// when the node does not exist or carries no type.
func (g *Graph) NodeType(id string) string {
	i, ok := g.index[id]
	if !ok || g.nodes[i].Type == "" {
		return "Unknown"
	}
	return g.nodes[i].Type
}

// A Builder accumulates nodes and edges and produces an immutable Graph.
type Builder struct {
	directed bool
	nodes    []Node
	index    map[string]int32
	edges    map[[2]int32]struct{}
}

func NewBuilder(directed bool) *Builder {
	return &Builder{
		directed: directed,
		index:    make(map[string]int32),
		edges:    make(map[[2]int32]struct{}),
	}
}

// AddNode registers a node. Adding the same identifier twice keeps the
// first type attribute.
func (b *Builder) AddNode(id string, nodeType string) {
	if _, exists := b.index[id]; exists {
		return
	}
	b.index[id] = int32(len(b.nodes))
	b.nodes = append(b.nodes, Node{ID: id, Type: nodeType})
}

// AddEdge registers an edge between two previously added nodes.
// Parallel edges collapse into one; self loops are rejected.
func (b *Builder) AddEdge(source string, target string) error {
	s, ok := b.index[source]
	if !ok {
		return fmt.Errorf("edge references unknown node %q", source)
	}
	t, ok := b.index[target]
	if !ok {
		return fmt.Errorf("edge references unknown node %q", target)
	}
	if s == t {
		return fmt.Errorf("self loop on node %q", source)
	}
	if !b.directed && s > t {
		s, t = t, s
	}
	b.edges[[2]int32{s, t}] = struct{}{}
	return nil
}

// Build freezes the builder into a Graph. Adjacency lists are sorted so
// that traversal order, and with it shortest-path tie-breaking, is
// deterministic.
func (b *Builder) Build() *Graph {
	g := &Graph{
		directed:  b.directed,
		nodes:     b.nodes,
		index:     b.index,
		edges:     make([][2]int32, 0, len(b.edges)),
		adjacency: make([][]int32, len(b.nodes)),
	}
	for e := range b.edges {
		g.edges = append(g.edges, e)
	}
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i][0] != g.edges[j][0] {
			return g.edges[i][0] < g.edges[j][0]
		}
		return g.edges[i][1] < g.edges[j][1]
	})
	for _, e := range g.edges {
		g.adjacency[e[0]] = append(g.adjacency[e[0]], e[1])
		if !g.directed {
			g.adjacency[e[1]] = append(g.adjacency[e[1]], e[0])
		}
	}
	for i := range g.adjacency {
		sort.Slice(g.adjacency[i], func(a, b int) bool { return g.adjacency[i][a] < g.adjacency[i][b] })
	}
	return g
}
