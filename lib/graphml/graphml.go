// Package graphml loads interaction networks from GraphML files into the
// shared graph model.
package graphml

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/bionetops/pathnet/lib/graph"
)

// An InputError means the network file is missing, unreadable or
// malformed. It is fatal and aborts before any analysis.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("cannot load network from %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type xmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
}

type xmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []xmlData `xml:"data"`
}

type xmlEdge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

type xmlGraph struct {
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []xmlNode `xml:"node"`
	Edges       []xmlEdge `xml:"edge"`
}

type xmlDocument struct {
	XMLName xml.Name   `xml:"graphml"`
	Keys    []xmlKey   `xml:"key"`
	Graphs  []xmlGraph `xml:"graph"`
}

// Load reads a GraphML file and returns the graph it describes. Nodes are
// relabeled with their "name" attribute when one is declared, and their
// type comes from the "biopaxType" attribute, defaulting to "Unknown".
func Load(path string) (*graph.Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return Parse(raw, path)
}

// Parse builds a graph from raw GraphML bytes. The path is only used in
// error messages.
func Parse(raw []byte, path string) (*graph.Graph, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	if len(doc.Graphs) == 0 {
		return nil, &InputError{Path: path, Err: fmt.Errorf("no <graph> element")}
	}
	// Only the first graph element is analyzed.
	xg := doc.Graphs[0]

	nameKey := ""
	typeKey := ""
	for _, k := range doc.Keys {
		if k.For != "" && k.For != "node" {
			continue
		}
		switch k.AttrName {
		case "name":
			nameKey = k.ID
		case "biopaxType":
			typeKey = k.ID
		}
	}

	builder := graph.NewBuilder(xg.EdgeDefault == "directed")
	// GraphML edges reference the raw xml ids even when nodes carry a
	// display name, so keep the translation around for the edge pass.
	labels := make(map[string]string, len(xg.Nodes))
	for _, n := range xg.Nodes {
		label := n.ID
		nodeType := ""
		for _, d := range n.Data {
			switch d.Key {
			case nameKey:
				if d.Value != "" {
					label = d.Value
				}
			case typeKey:
				nodeType = d.Value
			}
		}
		if nodeType == "" {
			nodeType = "Unknown"
		}
		labels[n.ID] = label
		builder.AddNode(label, nodeType)
	}
	for _, e := range xg.Edges {
		source, ok := labels[e.Source]
		if !ok {
			return nil, &InputError{Path: path, Err: fmt.Errorf("edge references undeclared node %q", e.Source)}
		}
		target, ok := labels[e.Target]
		if !ok {
			return nil, &InputError{Path: path, Err: fmt.Errorf("edge references undeclared node %q", e.Target)}
		}
		if source == target {
			// Self loops carry no path information.
			continue
		}
		if err := builder.AddEdge(source, target); err != nil {
			return nil, &InputError{Path: path, Err: err}
		}
	}
	return builder.Build(), nil
}
