// Package lib drives the sampling-based path and centrality analysis of
// an interaction network: node selection, parallel shortest-path
// sampling, pivot-based centrality estimation, and aggregation into the
// result consumed by the report renderers.
package lib

import (
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/bionetops/pathnet/lib/centrality"
	"github.com/bionetops/pathnet/lib/graph"
	"github.com/bionetops/pathnet/lib/settings"
)

// Analyze runs one complete analysis over g. Validation and selection
// errors fail fast before any sampling starts; failures inside the
// parallel phase degrade the result instead of aborting it.
func Analyze(g *graph.Graph, cfg settings.AnalysisSettings) (*AnalysisResult, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	bl := graph.DisabledBlacklist()
	if !cfg.DisableBlacklist {
		bl = graph.NewBlacklist(cfg.ExtraBlacklist)
	}
	filtered := bl.Filter(g)
	if filtered != g {
		log.Printf("blacklist removed %d of %d nodes", g.NodeCount()-filtered.NodeCount(), g.NodeCount())
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	selection, err := selectNodes(filtered, bl, cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	log.Printf("analyzing %d selected nodes out of %d", len(selection), filtered.NodeCount())

	parts := samplerPartitions(filtered, selection, cfg)
	parts = append(parts, pivotPartitions(filtered, selection, cfg, len(parts))...)
	total, warnings := runPartitions(parts, cfg.Workers, seed)

	result := buildResult(g, filtered, selection, cfg, total, warnings)
	result.Duration = time.Since(start)

	pairsSampledTotal.Add(float64(result.PairsSampled))
	unreachablePairsTotal.Add(float64(result.UnreachablePairs))
	pivotsProcessedTotal.Add(float64(result.PivotsProcessed))
	analysisDuration.Observe(result.Duration.Seconds())
	if result.Degraded {
		degradedRuns.Inc()
		log.Printf("analysis %s completed degraded: %d warnings", result.RunID, len(result.Warnings))
	}
	log.Printf("analysis %s: %d paths from %d pairs, %d unreachable, %d pivots",
		result.RunID, result.PathsFound, result.PairsSampled, result.UnreachablePairs, result.PivotsProcessed)
	return result, nil
}

// pivotPartitions builds the centrality estimation work. Pivots are drawn
// with replacement from the selection, each partition from its own random
// source; when the requested pivot count covers the whole selection the
// estimator visits every selected node exactly once, which is exact.
func pivotPartitions(g *graph.Graph, selection []int32, cfg settings.AnalysisSettings, indexOffset int) []partition {
	if cfg.CentralitySamples == 0 || len(selection) == 0 {
		return nil
	}

	if cfg.CentralitySamples >= len(selection) {
		var parts []partition
		for offset := 0; offset < len(selection); offset += cfg.PartitionSize {
			end := offset + cfg.PartitionSize
			if end > len(selection) {
				end = len(selection)
			}
			pivots := selection[offset:end]
			parts = append(parts, partition{
				index: indexOffset + len(parts),
				run: func(_ *rand.Rand) (*partial, error) {
					return estimatePivots(g, pivots), nil
				},
			})
		}
		return parts
	}

	var parts []partition
	for remaining := cfg.CentralitySamples; remaining > 0; remaining -= cfg.PartitionSize {
		count := cfg.PartitionSize
		if count > remaining {
			count = remaining
		}
		n := count
		parts = append(parts, partition{
			index: indexOffset + len(parts),
			run: func(rng *rand.Rand) (*partial, error) {
				pivots := make([]int32, n)
				for i := range pivots {
					pivots[i] = selection[rng.Intn(len(selection))]
				}
				return estimatePivots(g, pivots), nil
			},
		})
	}
	return parts
}

func estimatePivots(g *graph.Graph, pivots []int32) *partial {
	est := centrality.NewEstimator(g)
	for _, pivot := range pivots {
		est.AddPivot(pivot)
	}
	p := newPartial()
	p.scores = est.Scores()
	p.pivots = est.Pivots()
	return p
}

func buildResult(original *graph.Graph, filtered *graph.Graph, selection []int32,
	cfg settings.AnalysisSettings, total *partial, warnings []string) *AnalysisResult {

	selected := make([]string, len(selection))
	for i, idx := range selection {
		selected[i] = filtered.Node(idx).ID
	}

	centralityTable := make(map[string]float64)
	if total.pivots > 0 {
		for i, score := range total.scores {
			if score > 0 {
				centralityTable[filtered.Node(int32(i)).ID] = score / float64(total.pivots)
			}
		}
	}

	nodeTypes := make(map[string]string)
	for id := range total.frequencies {
		nodeTypes[id] = filtered.NodeType(id)
	}
	for id := range centralityTable {
		nodeTypes[id] = filtered.NodeType(id)
	}
	for _, id := range selected {
		nodeTypes[id] = filtered.NodeType(id)
	}

	lengthCounts, lengthStats := pathLengthStats(total.paths)

	return &AnalysisResult{
		RunID:             uuid.NewString(),
		GeneratedAt:       time.Now(),
		Directed:          filtered.Directed(),
		NodeCount:         original.NodeCount(),
		EdgeCount:         original.EdgeCount(),
		FilteredNodeCount: filtered.NodeCount(),
		FilteredEdgeCount: filtered.EdgeCount(),
		SelectedNodes:     selected,
		Iterations:        cfg.Iterations,
		PairsSampled:      total.pairsSampled,
		PathsFound:        len(total.paths),
		UnreachablePairs:  total.unreachable,
		PivotsRequested:   cfg.CentralitySamples,
		PivotsProcessed:   total.pivots,
		Frequencies:       total.frequencies,
		Centrality:        centralityTable,
		NodeTypes:         nodeTypes,
		Ubiquitous: ubiquitousNodes(total.frequencies, centralityTable,
			cfg.Normalization, len(total.paths), cfg.Threshold),
		Paths:            total.paths,
		PathLengthCounts: lengthCounts,
		PathLengths:      lengthStats,
		Degraded:         len(warnings) > 0,
		Warnings:         warnings,
	}
}
