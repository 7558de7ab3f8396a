package domain

import "strings"

// NormalizeSegment prepares one jurisdiction name for use in a location
// tuple:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved, so "Springfield" and "springfield" stay distinct.
func NormalizeSegment(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NewLocation builds a tuple from segments ordered street first, country
// last, normalizing each. Segments beyond the country level are ignored.
func NewLocation(segments ...string) Location {
	var loc Location
	for i, seg := range segments {
		if i == LocationLevels {
			break
		}
		loc[i] = NormalizeSegment(seg)
	}
	return loc
}
