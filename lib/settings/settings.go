// Package settings contains all the parameters for a network analysis run.
package settings

import (
	"fmt"
)

const (
	FormatHTML = "html"
	FormatTXT  = "txt"
)

const (
	// NormalizeByMax divides scores by the largest observed value.
	NormalizeByMax = "max"
	// NormalizeByCount divides frequencies by the number of sampled paths.
	NormalizeByCount = "count"
)

// A ConfigurationError describes an invalid analysis parameter. It is
// fatal and raised before any sampling work starts.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

type AnalysisSettings struct {
	// The number of path sampling iterations (N).
	Iterations int
	// The number of centrality pivots (k).
	CentralitySamples int
	// The ubiquity cutoff (T) on normalized frequency or centrality.
	Threshold float64
	// How frequencies are normalized for the ubiquity test.
	Normalization string

	// Selection sets smaller than this are enumerated exhaustively
	// instead of sampled; exhaustive enumeration is exact and cheaper
	// in that regime.
	AllPairsThreshold int

	// Number of iterations or pivots per worker partition. The partition
	// layout must not depend on the worker count, or results would too.
	PartitionSize int
	// Number of concurrent workers. 0 means GOMAXPROCS.
	Workers int
	// Seed for the run. 0 picks a time-derived seed; any other value
	// makes the run reproducible.
	Seed int64

	// Node selection. NodeList wins over RandomNodes; when both are
	// empty every non-blacklisted node is selected.
	NodeList    []string
	RandomNodes int
	// Restrict random/full selection to nodes of this type attribute.
	NodeType string

	DisableBlacklist bool
	ExtraBlacklist   []string
}

// WithDefaults fills in zero values with the documented defaults.
func (s AnalysisSettings) WithDefaults() AnalysisSettings {
	if s.Iterations == 0 {
		s.Iterations = 100
	}
	if s.CentralitySamples == 0 {
		s.CentralitySamples = 100
	}
	if s.Threshold == 0 {
		s.Threshold = 0.9
	}
	if s.Normalization == "" {
		s.Normalization = NormalizeByMax
	}
	if s.AllPairsThreshold == 0 {
		s.AllPairsThreshold = 25
	}
	if s.PartitionSize == 0 {
		s.PartitionSize = 32
	}
	return s
}

// Validate rejects parameter combinations that would make the run
// meaningless. Selection-set checks that need the graph happen later, at
// selection time.
func (s AnalysisSettings) Validate() error {
	if s.Iterations < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("iterations must not be negative, got %d", s.Iterations)}
	}
	if s.CentralitySamples < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("centrality samples must not be negative, got %d", s.CentralitySamples)}
	}
	if s.Threshold < 0 || s.Threshold > 1 {
		return &ConfigurationError{Reason: fmt.Sprintf("threshold must be in [0,1], got %g", s.Threshold)}
	}
	if s.Normalization != NormalizeByMax && s.Normalization != NormalizeByCount {
		return &ConfigurationError{Reason: fmt.Sprintf("unknown normalization %q", s.Normalization)}
	}
	if s.RandomNodes < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("random node count must not be negative, got %d", s.RandomNodes)}
	}
	if s.Workers < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("worker count must not be negative, got %d", s.Workers)}
	}
	if s.PartitionSize < 1 {
		return &ConfigurationError{Reason: fmt.Sprintf("partition size must be positive, got %d", s.PartitionSize)}
	}
	if len(s.NodeList) > 0 && s.RandomNodes > 0 {
		return &ConfigurationError{Reason: "node list and random node count are mutually exclusive"}
	}
	return nil
}
