package domain

import "strings"

// LocationLevels is the number of administrative levels in a Location.
const LocationLevels = 7

// Administrative levels, most specific first.
const (
	LevelStreet = iota
	LevelLocality
	LevelParish
	LevelCity
	LevelCounty
	LevelState
	LevelCountry
)

// Location is a seven-segment jurisdiction tuple. Index 0 is the most
// specific level (street), index 6 the least specific (country). An empty
// segment means the level is absent or unknown.
//
// Location is comparable and is used directly as a map key: two tuples with
// identical segments denote the same administrative unit.
type Location [LocationLevels]string

// OwnLevel returns the index of the first non-empty segment, i.e. the level
// the place itself occupies. ok is false for an all-empty tuple.
func (l Location) OwnLevel() (level int, ok bool) {
	for i, seg := range l {
		if seg != "" {
			return i, true
		}
	}
	return 0, false
}

// IsEmpty reports whether every segment is empty.
func (l Location) IsEmpty() bool {
	_, ok := l.OwnLevel()
	return !ok
}

// Ancestors returns a copy with the own-level segment blanked. The result
// describes the chain of enclosing jurisdictions without the place's name.
func (l Location) Ancestors() Location {
	if level, ok := l.OwnLevel(); ok {
		l[level] = ""
	}
	return l
}

// Suffix returns a copy with every segment below n blanked, keeping the
// segments from n up to the country level.
func (l Location) Suffix(n int) Location {
	var out Location
	if n < 0 {
		n = 0
	}
	for i := n; i < LocationLevels; i++ {
		out[i] = l[i]
	}
	return out
}

// Title joins the non-empty segments from level n up to the country level
// with ", " (e.g. "Illinois, USA").
func (l Location) Title(n int) string {
	parts := make([]string, 0, LocationLevels)
	for i := max(n, 0); i < LocationLevels; i++ {
		if l[i] != "" {
			parts = append(parts, l[i])
		}
	}
	return strings.Join(parts, ", ")
}

// PlaceTypeAt returns the place type of a jurisdiction at the given level.
func PlaceTypeAt(level int) PlaceType {
	return PlaceType(LocationLevels - level)
}
