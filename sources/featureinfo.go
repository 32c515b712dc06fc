package sources

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/opengeometadata/go-ogm-record/geometry"
)

// FeatureInfoOptions describe a map-click inspection request: the current
// viewport, its pixel dimensions and the clicked pixel.
type FeatureInfoOptions struct {
	Bounds     *geometry.Bounds
	Width      int
	Height     int
	X          int
	Y          int
	SRS        string
	Format     string
	InfoFormat string
}

// FeatureInfoURL derives a WMS GetFeatureInfo request URL for a map click on
// 'layer_id'. Composite layer ids keep only the segment after the last dash,
// which is the WMS layer name. Unlike GetMap tile URLs, the bbox here is the
// literal viewport coordinates, so the whole query is encoded normally.
func FeatureInfoURL(info_url string, layer_id string, opts *FeatureInfoOptions) (string, error) {

	if opts.Bounds == nil {
		return "", fmt.Errorf("Missing bounds")
	}

	srs := opts.SRS

	if srs == "" {
		srs = "EPSG:4326"
	}

	format := opts.Format

	if format == "" {
		format = "image/png"
	}

	info_format := opts.InfoFormat

	if info_format == "" {
		info_format = "application/json"
	}

	parts := strings.Split(layer_id, "-")
	layer_name := parts[len(parts)-1]

	bbox := fmt.Sprintf("%v,%v,%v,%v", opts.Bounds.West, opts.Bounds.South, opts.Bounds.East, opts.Bounds.North)

	u, err := url.Parse(info_url)

	if err != nil {
		return "", fmt.Errorf("Failed to parse info URL, %w", err)
	}

	q := u.Query()
	q.Set("SERVICE", "WMS")
	q.Set("REQUEST", "GetFeatureInfo")
	q.Set("VERSION", "1.1.1")
	q.Set("LAYERS", layer_name)
	q.Set("QUERY_LAYERS", layer_name)
	q.Set("STYLES", "")
	q.Set("SRS", srs)
	q.Set("BBOX", bbox)
	q.Set("WIDTH", strconv.Itoa(opts.Width))
	q.Set("HEIGHT", strconv.Itoa(opts.Height))
	q.Set("FORMAT", format)
	q.Set("INFO_FORMAT", info_format)
	q.Set("X", strconv.Itoa(opts.X))
	q.Set("Y", strconv.Itoa(opts.Y))

	u.RawQuery = q.Encode()

	return u.String(), nil
}
