// Package sources provides methods for choosing how to preview a record on a
// map and for building renderer-agnostic source and layer descriptors.
package sources

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/opengeometadata/go-ogm-record/record"
)

// SourceSpec describes a map source without committing to a particular
// renderer. Raster sources carry tile URLs; geojson sources carry a data URL.
type SourceSpec struct {
	Type        string   `json:"type"`
	Tiles       []string `json:"tiles,omitempty"`
	URL         string   `json:"url,omitempty"`
	Data        string   `json:"data,omitempty"`
	Scheme      string   `json:"scheme,omitempty"`
	TileSize    int      `json:"tileSize,omitempty"`
	Attribution string   `json:"attribution,omitempty"`
}

// Source pairs a source spec with its identifier, which always matches the
// record id.
type Source struct {
	Id   string      `json:"id"`
	Spec *SourceSpec `json:"source"`
}

const defaultTileSize int = 256

// SelectSource chooses the best preview source for 'rec', trying candidate
// builders in a fixed order of preference: GeoJSON, then COG, then WMS, then
// TMS, then XYZ. The first candidate whose required fields are all present
// wins; later candidates are never consulted. It returns nil when no candidate
// matches, which callers must treat as "no preview available" rather than an
// error.
func SelectSource(rec *record.Record) *Source {

	builders := []func(*record.Record) *Source{
		geojsonSource,
		cogSource,
		wmsSource,
		tmsSource,
		xyzSource,
	}

	for _, b := range builders {

		if s := b(rec); s != nil {
			return s
		}
	}

	slog.Warn("No suitable preview source found for record", "id", rec.Id)
	return nil
}

func geojsonSource(rec *record.Record) *Source {

	geojson_url, ok := rec.References.GeoJSON()

	if !ok {
		return nil
	}

	return &Source{
		Id: rec.Id,
		Spec: &SourceSpec{
			Type:        "geojson",
			Data:        geojson_url,
			Attribution: rec.Attribution(),
		},
	}
}

func cogSource(rec *record.Record) *Source {

	cog_url, ok := rec.References.COG()

	if !ok {
		return nil
	}

	// The cog:// scheme tells the renderer to route the URL through its
	// cloud-optimized GeoTIFF protocol handler

	return &Source{
		Id: rec.Id,
		Spec: &SourceSpec{
			Type:        "raster",
			URL:         fmt.Sprintf("cog://%s", cog_url),
			TileSize:    defaultTileSize,
			Attribution: rec.Attribution(),
		},
	}
}

func wmsSource(rec *record.Record) *Source {

	wms_url, ok := rec.References.WMS()

	if !ok {
		return nil
	}

	// A WMS reference without a layer identifier is not renderable
	if rec.WxsIdentifier == "" {
		return nil
	}

	tiles_url, err := WMSTileURL(wms_url, []string{rec.WxsIdentifier}, nil)

	if err != nil {
		slog.Warn("Failed to derive WMS tile URL", "id", rec.Id, "error", err)
		return nil
	}

	return &Source{
		Id: rec.Id,
		Spec: &SourceSpec{
			Type:        "raster",
			Tiles:       []string{tiles_url},
			TileSize:    defaultTileSize,
			Attribution: rec.Attribution(),
		},
	}
}

func tmsSource(rec *record.Record) *Source {

	tms_url, ok := rec.References.TMS()

	if !ok {
		return nil
	}

	return &Source{
		Id: rec.Id,
		Spec: &SourceSpec{
			Type:        "raster",
			Tiles:       []string{tms_url},
			Scheme:      "tms",
			TileSize:    defaultTileSize,
			Attribution: rec.Attribution(),
		},
	}
}

func xyzSource(rec *record.Record) *Source {

	xyz_url, ok := rec.References.XYZ()

	if !ok {
		return nil
	}

	return &Source{
		Id: rec.Id,
		Spec: &SourceSpec{
			Type:        "raster",
			Tiles:       []string{xyz_url},
			Scheme:      "xyz",
			TileSize:    defaultTileSize,
			Attribution: rec.Attribution(),
		},
	}
}

// WMSTileOptions are the GetMap request parameters used when deriving WMS tile
// URLs.
type WMSTileOptions struct {
	BBoxTemplate string
	SRS          string
	TileSize     int
	Format       string
	Transparent  bool
}

// DefaultWMSTileOptions returns options for 256px transparent PNG tiles in
// EPSG:3857 projection.
func DefaultWMSTileOptions() *WMSTileOptions {

	return &WMSTileOptions{
		BBoxTemplate: "{bbox-epsg-3857}",
		SRS:          "EPSG:3857",
		TileSize:     defaultTileSize,
		Format:       "image/png",
		Transparent:  true,
	}
}

// WMSTileURL derives a GetMap tile URL for 'layer_ids' from a record's WMS
// endpoint. Every parameter is query-encoded except the bbox template token,
// which is appended literally: the consuming map layer substitutes per-tile
// coordinates in to the token at render time and encoding it would break that
// contract.
func WMSTileURL(wms_url string, layer_ids []string, opts *WMSTileOptions) (string, error) {

	if opts == nil {
		opts = DefaultWMSTileOptions()
	}

	u, err := url.Parse(wms_url)

	if err != nil {
		return "", fmt.Errorf("Failed to parse WMS URL, %w", err)
	}

	q := u.Query()
	q.Set("service", "WMS")
	q.Set("request", "GetMap")
	q.Set("layers", strings.Join(layer_ids, ","))
	q.Set("width", strconv.Itoa(opts.TileSize))
	q.Set("height", strconv.Itoa(opts.TileSize))
	q.Set("transparent", strconv.FormatBool(opts.Transparent))
	q.Set("srs", opts.SRS)
	q.Set("format", opts.Format)

	u.RawQuery = q.Encode()

	return fmt.Sprintf("%s&bbox=%s", u.String(), opts.BBoxTemplate), nil
}
