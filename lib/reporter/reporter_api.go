// Package reporter renders analysis results into human-readable reports.
package reporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bionetops/pathnet/lib"
	"github.com/bionetops/pathnet/lib/settings"
)

type Reporter interface {
	// Render writes a complete report for the result to w.
	Render(result *lib.AnalysisResult, w io.Writer) error

	// Extension returns the file extension for this report format.
	Extension() string
}

// ForFormat returns the reporter for a configured output format.
func ForFormat(format string) (Reporter, error) {
	switch format {
	case settings.FormatHTML:
		return NewHTMLReporter(), nil
	case settings.FormatTXT:
		return NewTextReporter(), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// OutputPath replaces the extension of the configured output path with
// the one matching the report format.
func OutputPath(path string, r Reporter) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + r.Extension()
}

// WriteFile renders the report into the file named by path, adjusting the
// extension to the report format, and returns the path written.
func WriteFile(r Reporter, result *lib.AnalysisResult, path string) (string, error) {
	out := OutputPath(path, r)
	file, err := os.Create(out)
	if err != nil {
		return "", err
	}
	defer file.Close()
	if err := r.Render(result, file); err != nil {
		return "", err
	}
	return out, nil
}

// A scoredNode is a report row: one node with a score, grouped by type.
type scoredNode struct {
	ID    string
	Score float64
}

// groupByType buckets per-node scores by node type and sorts each bucket
// by descending score, capped at limit entries (0 means no cap). Node id
// breaks ties so report order is stable.
func groupByType(scores map[string]float64, types map[string]string, limit int) map[string][]scoredNode {
	grouped := make(map[string][]scoredNode)
	for id, score := range scores {
		t := types[id]
		if t == "" {
			t = "Unknown"
		}
		grouped[t] = append(grouped[t], scoredNode{ID: id, Score: score})
	}
	for t := range grouped {
		nodes := grouped[t]
		sort.Slice(nodes, func(i, j int) bool {
			if nodes[i].Score != nodes[j].Score {
				return nodes[i].Score > nodes[j].Score
			}
			return nodes[i].ID < nodes[j].ID
		})
		if limit > 0 && len(nodes) > limit {
			nodes = nodes[:limit]
		}
		grouped[t] = nodes
	}
	return grouped
}

func sortedTypes(grouped map[string][]scoredNode) []string {
	types := make([]string, 0, len(grouped))
	for t := range grouped {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func frequencyScores(frequencies map[string]int) map[string]float64 {
	scores := make(map[string]float64, len(frequencies))
	for id, count := range frequencies {
		scores[id] = float64(count)
	}
	return scores
}

// pathsByLength groups the recorded paths by length, each group sorted by
// source then target, mirroring the report layout.
func pathsByLength(paths []lib.PathResult) (lengths []int, grouped map[int][]lib.PathResult) {
	grouped = make(map[int][]lib.PathResult)
	for _, p := range paths {
		grouped[p.Length] = append(grouped[p.Length], p)
	}
	for l := range grouped {
		lengths = append(lengths, l)
		group := grouped[l]
		sort.Slice(group, func(i, j int) bool {
			if group[i].Source != group[j].Source {
				return group[i].Source < group[j].Source
			}
			return group[i].Target < group[j].Target
		})
	}
	sort.Ints(lengths)
	return lengths, grouped
}
