package lib

import (
	"math/rand"

	"github.com/bionetops/pathnet/lib/graph"
	"github.com/bionetops/pathnet/lib/paths"
	"github.com/bionetops/pathnet/lib/settings"
)

// A PathResult records one successful shortest-path computation.
type PathResult struct {
	Source string
	Target string
	Nodes  []string
	Length int
}

// samplerPartitions builds the path sampling work for the executor.
// Selection sets below the all-pairs threshold are enumerated
// exhaustively; larger sets are sampled uniformly at random, with each
// partition drawing its own pairs from its own random source.
func samplerPartitions(g *graph.Graph, selection []int32, cfg settings.AnalysisSettings) []partition {
	if len(selection) < 2 || cfg.Iterations == 0 {
		return nil
	}

	if len(selection) < cfg.AllPairsThreshold {
		pairs := allPairs(selection, g.Directed())
		var parts []partition
		for offset := 0; offset < len(pairs); offset += cfg.PartitionSize {
			end := offset + cfg.PartitionSize
			if end > len(pairs) {
				end = len(pairs)
			}
			chunk := pairs[offset:end]
			parts = append(parts, partition{
				index: len(parts),
				run: func(_ *rand.Rand) (*partial, error) {
					return samplePairs(g, chunk), nil
				},
			})
		}
		return parts
	}

	var parts []partition
	for remaining := cfg.Iterations; remaining > 0; remaining -= cfg.PartitionSize {
		count := cfg.PartitionSize
		if count > remaining {
			count = remaining
		}
		n := count
		parts = append(parts, partition{
			index: len(parts),
			run: func(rng *rand.Rand) (*partial, error) {
				pairs := make([][2]int32, n)
				for i := range pairs {
					pairs[i] = drawPair(selection, rng)
				}
				return samplePairs(g, pairs), nil
			},
		})
	}
	return parts
}

// drawPair picks a pair of distinct nodes from the selection uniformly at
// random.
func drawPair(selection []int32, rng *rand.Rand) [2]int32 {
	a := rng.Intn(len(selection))
	b := rng.Intn(len(selection) - 1)
	if b >= a {
		b++
	}
	return [2]int32{selection[a], selection[b]}
}

// allPairs enumerates every pair of distinct selected nodes: unordered
// pairs for undirected graphs, ordered pairs when direction matters.
func allPairs(selection []int32, directed bool) [][2]int32 {
	n := len(selection)
	var pairs [][2]int32
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int32{selection[i], selection[j]})
			if directed {
				pairs = append(pairs, [2]int32{selection[j], selection[i]})
			}
		}
	}
	return pairs
}

// samplePairs computes shortest paths for the given pairs and accumulates
// the partition-local frequency table. A pair with no connecting path
// only increments the unreachable counter; that is a statistic, not an
// error.
func samplePairs(g *graph.Graph, pairs [][2]int32) *partial {
	p := newPartial()
	for _, pair := range pairs {
		p.pairsSampled++
		path, ok := paths.ShortestPath(g, pair[0], pair[1])
		if !ok {
			p.unreachable++
			continue
		}
		nodes := make([]string, len(path))
		for i, idx := range path {
			nodes[i] = g.Node(idx).ID
			p.frequencies[nodes[i]]++
		}
		p.paths = append(p.paths, PathResult{
			Source: nodes[0],
			Target: nodes[len(nodes)-1],
			Nodes:  nodes,
			Length: len(nodes) - 1,
		})
	}
	return p
}
