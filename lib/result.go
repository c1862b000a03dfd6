package lib

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// A partial holds the tables produced by one partition. Partials merge by
// pairwise sum, so the aggregate only depends on which partitions ran,
// never on how they were scheduled.
type partial struct {
	frequencies  map[string]int
	paths        []PathResult
	pairsSampled int
	unreachable  int

	// scores is indexed by graph node index; nil for sampler partitions.
	scores []float64
	pivots int
}

func newPartial() *partial {
	return &partial{frequencies: make(map[string]int)}
}

func (p *partial) merge(o *partial) {
	for id, count := range o.frequencies {
		p.frequencies[id] += count
	}
	p.paths = append(p.paths, o.paths...)
	p.pairsSampled += o.pairsSampled
	p.unreachable += o.unreachable
	if o.scores != nil {
		if p.scores == nil {
			p.scores = make([]float64, len(o.scores))
		}
		for i, s := range o.scores {
			p.scores[i] += s
		}
	}
	p.pivots += o.pivots
}

// PathLengthStats summarizes the distribution of sampled path lengths.
type PathLengthStats struct {
	Mean   float64
	StdDev float64
	Median float64
	Min    int
	Max    int
}

// An AnalysisResult is the complete artifact of one analysis run. It is
// assembled once after the aggregation barrier and never mutated
// afterwards; the report renderers only read it.
type AnalysisResult struct {
	RunID       string
	GeneratedAt time.Time
	Duration    time.Duration

	Directed          bool
	NodeCount         int
	EdgeCount         int
	FilteredNodeCount int
	FilteredEdgeCount int
	SelectedNodes     []string

	Iterations       int
	PairsSampled     int
	PathsFound       int
	UnreachablePairs int
	PivotsRequested  int
	PivotsProcessed  int

	// Frequencies counts how often each node occurred on a sampled
	// shortest path, endpoints included.
	Frequencies map[string]int
	// Centrality maps nodes to their estimated betweenness-style
	// centrality (accumulated dependency divided by pivots processed).
	// Nodes that never appeared on a pivot tree are absent, i.e. zero.
	Centrality map[string]float64
	// NodeTypes carries the type attribute for every node mentioned in
	// the tables above, for report grouping.
	NodeTypes map[string]string
	// Ubiquitous lists the nodes whose normalized frequency or
	// centrality reached the threshold.
	Ubiquitous []string

	Paths            []PathResult
	PathLengthCounts map[int]int
	PathLengths      PathLengthStats

	// Degraded is set when a partition failed twice; the tables are then
	// built from a reduced effective sample, never from corrupt data.
	Degraded bool
	Warnings []string
}

// pathLengthStats computes the summary of the path-length distribution.
func pathLengthStats(results []PathResult) (map[int]int, PathLengthStats) {
	counts := make(map[int]int)
	if len(results) == 0 {
		return counts, PathLengthStats{}
	}
	lengths := make([]float64, len(results))
	stats := PathLengthStats{Min: results[0].Length, Max: results[0].Length}
	for i, r := range results {
		counts[r.Length]++
		lengths[i] = float64(r.Length)
		if r.Length < stats.Min {
			stats.Min = r.Length
		}
		if r.Length > stats.Max {
			stats.Max = r.Length
		}
	}
	sort.Float64s(lengths)
	stats.Mean = stat.Mean(lengths, nil)
	if len(lengths) > 1 {
		stats.StdDev = stat.StdDev(lengths, nil)
	}
	stats.Median = stat.Quantile(0.5, stat.Empirical, lengths, nil)
	return counts, stats
}
