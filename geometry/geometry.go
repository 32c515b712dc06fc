package geometry

import (
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

// ParseGeometry derives an `orb.Geometry` instance from a geometry string that may
// be in either WKT or ENVELOPE syntax. WKT is tried first; if it fails the string
// is parsed as an ENVELOPE bbox and converted to a polygon. A WKT failure here is
// a fallback branch rather than an error. If both fail the method logs the problem
// and returns nil.
func ParseGeometry(geom string) orb.Geometry {

	g, err := wkt.Unmarshal(geom)

	if err == nil {
		return g
	}

	b := ParseEnvelope(geom)

	if b != nil {
		return b.Polygon()
	}

	slog.Warn("Could not parse geometry", "geometry", geom)
	return nil
}

// AsGeoJSON wraps 'g' in a `geojson.Geometry` instance suitable for serializing.
// It returns nil when 'g' is nil.
func AsGeoJSON(g orb.Geometry) *geojson.Geometry {

	if g == nil {
		return nil
	}

	return geojson.NewGeometry(g)
}
