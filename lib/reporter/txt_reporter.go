package reporter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bionetops/pathnet/lib"
)

type TextReporter struct{}

func NewTextReporter() *TextReporter { return &TextReporter{} }

func (t *TextReporter) Extension() string { return ".txt" }

func (t *TextReporter) Render(result *lib.AnalysisResult, w io.Writer) error {
	out := bufio.NewWriter(w)

	fmt.Fprintln(out, "=== Network Analysis ===")
	fmt.Fprintf(out, "Run: %s\n", result.RunID)
	fmt.Fprintf(out, "Executed on: %s\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Execution time: %.2f seconds\n", result.Duration.Seconds())
	if result.Degraded {
		fmt.Fprintln(out, "\nWARNING: run completed degraded, results use a reduced sample:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(out, "  %s\n", warning)
		}
	}

	fmt.Fprintln(out, "\n=== General Statistics ===")
	fmt.Fprintf(out, "Nodes in network: %d (%d edges)\n", result.NodeCount, result.EdgeCount)
	fmt.Fprintf(out, "Nodes after filtering: %d (%d edges)\n", result.FilteredNodeCount, result.FilteredEdgeCount)
	fmt.Fprintf(out, "Selected nodes: %d\n", len(result.SelectedNodes))
	fmt.Fprintf(out, "Pairs sampled: %d\n", result.PairsSampled)
	fmt.Fprintf(out, "Paths found: %d\n", result.PathsFound)
	fmt.Fprintf(out, "Unreachable pairs: %d\n", result.UnreachablePairs)
	if result.PathsFound > 0 {
		fmt.Fprintf(out, "Path length: mean %.2f median %.1f min %d max %d\n",
			result.PathLengths.Mean, result.PathLengths.Median,
			result.PathLengths.Min, result.PathLengths.Max)
	}

	fmt.Fprintln(out, "\n=== Shortest Paths ===")
	lengths, grouped := pathsByLength(result.Paths)
	for _, length := range lengths {
		for _, p := range grouped[length] {
			fmt.Fprintf(out, "From %s to %s (length: %d):\n%s\n",
				p.Source, p.Target, p.Length, strings.Join(p.Nodes, " -> "))
		}
	}

	fmt.Fprintln(out, "\n=== Frequent Nodes by Type ===")
	frequencies := groupByType(frequencyScores(result.Frequencies), result.NodeTypes, 10)
	for _, nodeType := range sortedTypes(frequencies) {
		fmt.Fprintf(out, "\nType: %s\n", nodeType)
		for _, n := range frequencies[nodeType] {
			fmt.Fprintf(out, "%s: %.0f occurrences\n", n.ID, n.Score)
		}
	}

	fmt.Fprintln(out, "\n=== Centrality by Type ===")
	centrality := groupByType(result.Centrality, result.NodeTypes, 10)
	for _, nodeType := range sortedTypes(centrality) {
		fmt.Fprintf(out, "\nType: %s\n", nodeType)
		for _, n := range centrality[nodeType] {
			fmt.Fprintf(out, "%s: %.6f\n", n.ID, n.Score)
		}
	}

	if len(result.Ubiquitous) > 0 {
		fmt.Fprintln(out, "\n=== Ubiquitous Nodes ===")
		for _, id := range result.Ubiquitous {
			fmt.Fprintln(out, id)
		}
	}

	return out.Flush()
}
