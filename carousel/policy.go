package carousel

import (
	"fmt"
	"strings"
)

// BoundaryPolicy decides what happens when navigation runs past the first or
// last position.
type BoundaryPolicy int

const (
	// Wrap moves cyclically: past the end is the start and vice versa.
	Wrap BoundaryPolicy = iota
	// Clamp saturates at the first and last position.
	Clamp
)

// String returns the string representation of the policy.
func (p BoundaryPolicy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// ParsePolicy converts "wrap" or "clamp" (case-insensitive) to a policy.
func ParsePolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap":
		return Wrap, nil
	case "clamp":
		return Clamp, nil
	default:
		return Wrap, fmt.Errorf("unknown boundary policy %q (must be 'wrap' or 'clamp')", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p BoundaryPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *BoundaryPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// positions returns how many distinct start positions a sequence of n slides
// offers when visible slides are shown at once. Never less than 1.
func positions(n, visible int) int {
	if n-visible+1 < 1 {
		return 1
	}
	return n - visible + 1
}

// normalize maps an arbitrary index onto [0, positions) under the policy.
func (p BoundaryPolicy) normalize(index, n, visible int) int {
	count := positions(n, visible)
	if p == Clamp {
		return fit(index, n, visible)
	}
	index %= count
	if index < 0 {
		index += count
	}
	return index
}

// fit saturates index to [0, positions). A resize uses it under both policies
// so a shrinking range keeps the current slide on screen instead of wrapping.
func fit(index, n, visible int) int {
	return max(0, min(index, positions(n, visible)-1))
}
