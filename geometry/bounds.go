// Package geometry provides methods for parsing the geometry and bounding box
// strings found in OpenGeoMetadata (Aardvark) records.
package geometry

import (
	"regexp"
	"strconv"

	"github.com/paulmach/orb"
)

// Bounds is a rectangular extent in WGS84 coordinates.
type Bounds struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// Matches ENVELOPE syntax in bbox strings. Note that the Solr/Aardvark
// argument order is west, east, north, south.
var envelope_re = regexp.MustCompile(`^ENVELOPE\(\s*(?P<west>[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?)\s*,\s*(?P<east>[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?)\s*,\s*(?P<north>[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?)\s*,\s*(?P<south>[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?)\s*\)$`)

// ParseEnvelope derives a `Bounds` instance from a bbox string in ENVELOPE syntax.
// It returns nil if 'bbox' does not match the grammar; a non-match is not an error.
func ParseEnvelope(bbox string) *Bounds {

	m := envelope_re.FindStringSubmatch(bbox)

	if m == nil {
		return nil
	}

	west, err := strconv.ParseFloat(m[envelope_re.SubexpIndex("west")], 64)

	if err != nil {
		return nil
	}

	east, err := strconv.ParseFloat(m[envelope_re.SubexpIndex("east")], 64)

	if err != nil {
		return nil
	}

	north, err := strconv.ParseFloat(m[envelope_re.SubexpIndex("north")], 64)

	if err != nil {
		return nil
	}

	south, err := strconv.ParseFloat(m[envelope_re.SubexpIndex("south")], 64)

	if err != nil {
		return nil
	}

	return &Bounds{
		West:  west,
		South: south,
		East:  east,
		North: north,
	}
}

// Polygon derives a closed 5-point `orb.Polygon` ring from 'b', starting and
// ending at the southwest corner.
func (b *Bounds) Polygon() orb.Polygon {

	ring := orb.Ring{
		orb.Point{b.West, b.South},
		orb.Point{b.East, b.South},
		orb.Point{b.East, b.North},
		orb.Point{b.West, b.North},
		orb.Point{b.West, b.South},
	}

	return orb.Polygon{ring}
}

// Bound derives an `orb.Bound` instance from 'b' for map-fitting purposes.
func (b *Bounds) Bound() orb.Bound {

	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}
