package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlaceType encodes the administrative rank of a place. Values follow the
// genealogy exchange convention: the least specific level (country) is 1,
// the most specific (street) is 7.
type PlaceType int

const (
	PlaceTypeUnknown  PlaceType = -1
	PlaceTypeCustom   PlaceType = 0
	PlaceTypeCountry  PlaceType = 1
	PlaceTypeState    PlaceType = 2
	PlaceTypeCounty   PlaceType = 3
	PlaceTypeCity     PlaceType = 4
	PlaceTypeParish   PlaceType = 5
	PlaceTypeLocality PlaceType = 6
	PlaceTypeStreet   PlaceType = 7
)

func (t PlaceType) String() string {
	switch t {
	case PlaceTypeCustom:
		return "CUSTOM"
	case PlaceTypeCountry:
		return "COUNTRY"
	case PlaceTypeState:
		return "STATE"
	case PlaceTypeCounty:
		return "COUNTY"
	case PlaceTypeCity:
		return "CITY"
	case PlaceTypeParish:
		return "PARISH"
	case PlaceTypeLocality:
		return "LOCALITY"
	case PlaceTypeStreet:
		return "STREET"
	}
	return "UNKNOWN"
}

func (t PlaceType) IsValid() bool {
	return t >= PlaceTypeUnknown && t <= PlaceTypeStreet
}

// Level returns the Location index a place of this type occupies.
// ok is false for unknown and custom types.
func (t PlaceType) Level() (int, bool) {
	if t < PlaceTypeCountry || t > PlaceTypeStreet {
		return 0, false
	}
	return LocationLevels - int(t), true
}

// PlaceRef points at an enclosing place.
type PlaceRef struct {
	ParentID uuid.UUID
}

// Place is a stored place record.
//
// The storage schema allows several enclosing places (a parish that belonged
// to different counties over time). Hierarchy generation always writes a
// single reference.
type Place struct {
	ID        uuid.UUID
	Name      string
	Title     string
	Type      PlaceType
	Parents   []PlaceRef
	CreatedAt time.Time
	ChangedAt time.Time
}

// ParentID returns the first enclosing place, if any.
func (p *Place) ParentID() (uuid.UUID, bool) {
	if len(p.Parents) == 0 {
		return uuid.Nil, false
	}
	return p.Parents[0].ParentID, true
}
