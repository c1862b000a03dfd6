package lib

import (
	"fmt"
	"strings"
)

// A NotFoundError is raised when an explicit node list references
// identifiers that are not available for analysis. It enumerates every
// offending identifier, not just the first, so a caller can fix the whole
// list in one go.
type NotFoundError struct {
	// Missing identifiers do not exist in the network at all.
	Missing []string
	// Blacklisted identifiers exist but were removed by the blacklist.
	Blacklisted []string
}

func (e *NotFoundError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("nodes not found in network: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Blacklisted) > 0 {
		parts = append(parts, fmt.Sprintf("blacklisted nodes requested: %s (remove them or disable the blacklist)", strings.Join(e.Blacklisted, ", ")))
	}
	return strings.Join(parts, "; ")
}

// A WorkerError records a partition that failed even after its retry.
// It degrades the run instead of aborting it.
type WorkerError struct {
	Partition int
	Err       error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("partition %d failed after retry: %v", e.Partition, e.Err)
}

func (e *WorkerError) Unwrap() error { return e.Err }
