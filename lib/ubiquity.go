package lib

import (
	"sort"

	"github.com/bionetops/pathnet/lib/settings"
)

// ubiquitousNodes classifies nodes whose normalized frequency or
// centrality reaches the threshold. The boundary is inclusive: a score of
// exactly the threshold counts as ubiquitous. Frequencies are normalized
// by the maximum observed count or by the number of sampled paths,
// depending on the configured basis; centrality is normalized by the
// maximum observed score. The inputs are not modified.
func ubiquitousNodes(frequencies map[string]int, centrality map[string]float64,
	normalization string, pathsFound int, threshold float64) []string {

	hits := make(map[string]bool)

	var freqBasis float64
	switch normalization {
	case settings.NormalizeByCount:
		freqBasis = float64(pathsFound)
	default:
		for _, count := range frequencies {
			if float64(count) > freqBasis {
				freqBasis = float64(count)
			}
		}
	}
	if freqBasis > 0 {
		for id, count := range frequencies {
			if float64(count)/freqBasis >= threshold {
				hits[id] = true
			}
		}
	}

	var maxScore float64
	for _, score := range centrality {
		if score > maxScore {
			maxScore = score
		}
	}
	if maxScore > 0 {
		for id, score := range centrality {
			if score/maxScore >= threshold {
				hits[id] = true
			}
		}
	}

	ids := make([]string, 0, len(hits))
	for id := range hits {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
