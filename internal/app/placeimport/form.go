package placeimport

import (
	"strings"

	"github.com/heartmarshall/genealogy-backend/internal/domain"
)

// jurisdictions maps a normalized jurisdiction name of a place form to a
// location level. Names are lowercased with spaces removed.
var jurisdictions = map[string]int{
	"addr":           domain.LevelStreet,
	"addr1":          domain.LevelStreet,
	"adr1":           domain.LevelStreet,
	"street":         domain.LevelStreet,
	"subdivision":    domain.LevelStreet,
	"addr2":          domain.LevelLocality,
	"adr2":           domain.LevelLocality,
	"locality":       domain.LevelLocality,
	"neighborhood":   domain.LevelLocality,
	"parish":         domain.LevelParish,
	"city":           domain.LevelCity,
	"town":           domain.LevelCity,
	"village":        domain.LevelCity,
	"county":         domain.LevelCounty,
	"state":          domain.LevelState,
	"state/province": domain.LevelState,
	"region":         domain.LevelState,
	"province":       domain.LevelState,
	"country":        domain.LevelCountry,
}

const ignoredLevel = -1

// Form describes how the comma-separated pieces of a place text map to
// location levels, as declared by a GEDCOM PLAC.FORM line.
// The zero Form puts the whole text at the city level.
type Form struct {
	levels []int
}

// ParseForm parses a form such as "City, County, State, Country".
// Unknown jurisdiction names keep their position but map to no level.
func ParseForm(s string) Form {
	if strings.TrimSpace(s) == "" {
		return Form{}
	}

	parts := strings.Split(s, ",")
	levels := make([]int, len(parts))
	for i, part := range parts {
		name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(part), " ", ""))
		level, ok := jurisdictions[name]
		if !ok {
			level = ignoredLevel
		}
		levels[i] = level
	}
	return Form{levels: levels}
}

// Len returns the number of pieces the form expects.
func (f Form) Len() int {
	return len(f.levels)
}

// IsZero reports whether f is the zero Form.
func (f Form) IsZero() bool {
	return len(f.levels) == 0
}

// Decode splits text on commas and assigns each normalized piece to its level.
// It returns false when the piece count differs from the form length.
func (f Form) Decode(text string) (domain.Location, bool) {
	var loc domain.Location

	if f.IsZero() {
		loc[domain.LevelCity] = domain.NormalizeSegment(text)
		return loc, true
	}

	pieces := strings.Split(text, ",")
	if len(pieces) != len(f.levels) {
		return domain.Location{}, false
	}

	for i, piece := range pieces {
		if level := f.levels[i]; level != ignoredLevel {
			loc[level] = domain.NormalizeSegment(piece)
		}
	}
	return loc, true
}
