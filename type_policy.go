package cgt

import "fmt"

// MatchingPolicy defines which open lots a sell consumes first.
type MatchingPolicy int

const (
	// FIFO (First-In, First-Out) consumes the oldest open lot first.
	FIFO MatchingPolicy = iota
	// MinimizeCGT consumes the lot that realizes the smallest taxable gain first.
	MinimizeCGT
)

func (p MatchingPolicy) String() string {
	switch p {
	case FIFO:
		return "fifo"
	case MinimizeCGT:
		return "min-cgt"
	default:
		return "unknown"
	}
}

// ParseMatchingPolicy parses a string into a MatchingPolicy.
func ParseMatchingPolicy(s string) (MatchingPolicy, error) {
	switch s {
	case "fifo":
		return FIFO, nil
	case "min-cgt":
		return MinimizeCGT, nil
	default:
		return 0, fmt.Errorf("unknown matching policy: %q", s)
	}
}
