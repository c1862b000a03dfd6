package lib

import (
	"fmt"
	"math/rand"

	"github.com/bionetops/pathnet/lib/graph"
	"github.com/bionetops/pathnet/lib/settings"
)

// selectNodes resolves the analysis target set on the filtered graph.
// Explicit lists fail fast with a NotFoundError naming every identifier
// that is missing or blacklisted; random selection draws without
// replacement from the candidate population.
func selectNodes(filtered *graph.Graph, bl graph.Blacklist, cfg settings.AnalysisSettings, rng *rand.Rand) ([]int32, error) {
	if len(cfg.NodeList) > 0 {
		return selectExplicit(filtered, bl, cfg.NodeList)
	}

	candidates := make([]int32, 0, filtered.NodeCount())
	for i := 0; i < filtered.NodeCount(); i++ {
		if cfg.NodeType != "" && filtered.Node(int32(i)).Type != cfg.NodeType {
			continue
		}
		candidates = append(candidates, int32(i))
	}
	if len(candidates) == 0 {
		reason := "no nodes remain for analysis after filtering"
		if cfg.NodeType != "" {
			reason = "no nodes of type " + cfg.NodeType + " remain for analysis after filtering"
		}
		return nil, &settings.ConfigurationError{Reason: reason}
	}

	if cfg.RandomNodes == 0 {
		return candidates, nil
	}
	if cfg.RandomNodes > len(candidates) {
		return nil, &settings.ConfigurationError{
			Reason: fmt.Sprintf("requested %d random nodes but only %d are available", cfg.RandomNodes, len(candidates)),
		}
	}
	selected := make([]int32, cfg.RandomNodes)
	for i, p := range rng.Perm(len(candidates))[:cfg.RandomNodes] {
		selected[i] = candidates[p]
	}
	return selected, nil
}

func selectExplicit(filtered *graph.Graph, bl graph.Blacklist, ids []string) ([]int32, error) {
	var missing, blacklisted []string
	selected := make([]int32, 0, len(ids))
	seen := make(map[int32]bool, len(ids))
	for _, id := range ids {
		idx, ok := filtered.Lookup(id)
		if !ok {
			if bl.Matches(id) {
				blacklisted = append(blacklisted, id)
			} else {
				missing = append(missing, id)
			}
			continue
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		selected = append(selected, idx)
	}
	if len(missing) > 0 || len(blacklisted) > 0 {
		return nil, &NotFoundError{Missing: missing, Blacklisted: blacklisted}
	}
	return selected, nil
}
