package sources

import (
	"net/url"
	"strings"
	"testing"

	ogm "github.com/opengeometadata/go-ogm-record"
	"github.com/opengeometadata/go-ogm-record/geometry"
	"github.com/opengeometadata/go-ogm-record/record"
	"github.com/tidwall/sjson"
)

func testRecord(t *testing.T, refs map[string]string, extra map[string]any) *record.Record {

	body := []byte(`{"id":"test-record","dct_title_s":"Test Record","gbl_resourceClass_sm":["Datasets"],"dct_accessRights_s":"Public","dct_publisher_sm":["Example University Library"],"gbl_mdVersion_s":"Aardvark"}`)

	var err error

	if refs != nil {

		blob := "{"
		first := true

		for uri, u := range refs {

			if !first {
				blob += ","
			}

			blob += `"` + uri + `":"` + u + `"`
			first = false
		}

		blob += "}"

		body, err = sjson.SetBytes(body, "dct_references_s", blob)

		if err != nil {
			t.Fatalf("Failed to set references, %v", err)
		}
	}

	for path, v := range extra {

		body, err = sjson.SetBytes(body, path, v)

		if err != nil {
			t.Fatalf("Failed to set %s, %v", path, err)
		}
	}

	rec, err := record.UnmarshalRecord(body)

	if err != nil {
		t.Fatalf("Failed to unmarshal record, %v", err)
	}

	return rec
}

func TestSelectSourcePriority(t *testing.T) {

	// GeoJSON wins over COG and WMS even when all are present
	rec := testRecord(t, map[string]string{
		ogm.REF_GEOJSON: "https://data.example.edu/records/test.geojson",
		ogm.REF_COG:     "https://data.example.edu/tiff/test.tif",
		ogm.REF_WMS:     "https://geoserver.example.edu/wms",
	}, map[string]any{
		"gbl_wxsIdentifier_s": "test",
	})

	s := SelectSource(rec)

	if s == nil {
		t.Fatalf("Failed to select source")
	}

	if s.Spec.Type != "geojson" {
		t.Fatalf("Expected geojson source, but got %s", s.Spec.Type)
	}

	if s.Spec.Data != "https://data.example.edu/records/test.geojson" {
		t.Fatalf("Unexpected data URL: %s", s.Spec.Data)
	}

	if s.Id != "test-record" {
		t.Fatalf("Expected source id to match record id, got %s", s.Id)
	}
}

func TestSelectSourceCOG(t *testing.T) {

	rec := testRecord(t, map[string]string{
		ogm.REF_COG: "https://data.example.edu/tiff/test.tif",
	}, nil)

	s := SelectSource(rec)

	if s == nil {
		t.Fatalf("Failed to select source")
	}

	if s.Spec.Type != "raster" {
		t.Fatalf("Expected raster source, but got %s", s.Spec.Type)
	}

	if s.Spec.URL != "cog://https://data.example.edu/tiff/test.tif" {
		t.Fatalf("Unexpected source URL: %s", s.Spec.URL)
	}
}

func TestSelectSourceWMS(t *testing.T) {

	rec := testRecord(t, map[string]string{
		ogm.REF_WMS: "https://geoserver.example.edu/wms",
	}, map[string]any{
		"gbl_wxsIdentifier_s": "canopy2015",
	})

	s := SelectSource(rec)

	if s == nil {
		t.Fatalf("Failed to select source")
	}

	if len(s.Spec.Tiles) != 1 {
		t.Fatalf("Expected 1 tile URL, but got %d", len(s.Spec.Tiles))
	}

	tiles_url := s.Spec.Tiles[0]

	// The bbox template token must stay literal
	if !strings.HasSuffix(tiles_url, "&bbox={bbox-epsg-3857}") {
		t.Fatalf("Expected unencoded bbox template, got %s", tiles_url)
	}

	u, err := url.Parse(strings.TrimSuffix(tiles_url, "&bbox={bbox-epsg-3857}"))

	if err != nil {
		t.Fatalf("Failed to parse tile URL, %v", err)
	}

	q := u.Query()

	expected := map[string]string{
		"service":     "WMS",
		"request":     "GetMap",
		"layers":      "canopy2015",
		"width":       "256",
		"height":      "256",
		"transparent": "true",
		"srs":         "EPSG:3857",
		"format":      "image/png",
	}

	for k, v := range expected {

		if q.Get(k) != v {
			t.Fatalf("Expected %s=%s, but got %s", k, v, q.Get(k))
		}
	}

	if s.Spec.Attribution != "Example University Library" {
		t.Fatalf("Unexpected attribution: %s", s.Spec.Attribution)
	}
}

func TestSelectSourceWMSRequiresIdentifier(t *testing.T) {

	// A WMS reference without a layer identifier is not renderable, and with
	// no other references there is no source at all
	rec := testRecord(t, map[string]string{
		ogm.REF_WMS: "https://geoserver.example.edu/wms",
	}, nil)

	if s := SelectSource(rec); s != nil {
		t.Fatalf("Expected no source, but got %s", s.Spec.Type)
	}

	// With a TMS fallback present, selection moves on instead of failing

	rec = testRecord(t, map[string]string{
		ogm.REF_WMS: "https://geoserver.example.edu/wms",
		ogm.REF_TMS: "https://tiles.example.edu/tms/test",
	}, nil)

	s := SelectSource(rec)

	if s == nil {
		t.Fatalf("Failed to select source")
	}

	if s.Spec.Scheme != "tms" {
		t.Fatalf("Expected tms scheme, but got %s", s.Spec.Scheme)
	}
}

func TestSelectSourceXYZ(t *testing.T) {

	rec := testRecord(t, map[string]string{
		ogm.REF_XYZ: "https://tiles.example.edu/{z}/{x}/{y}.png",
	}, nil)

	s := SelectSource(rec)

	if s == nil {
		t.Fatalf("Failed to select source")
	}

	if s.Spec.Scheme != "xyz" {
		t.Fatalf("Expected xyz scheme, but got %s", s.Spec.Scheme)
	}
}

func TestSelectSourceNone(t *testing.T) {

	rec := testRecord(t, nil, nil)

	if s := SelectSource(rec); s != nil {
		t.Fatalf("Expected no source for a record without references")
	}

	// IIIF references are not map sources

	rec = testRecord(t, map[string]string{
		ogm.REF_IIIF_MANIFEST: "https://iiif.example.edu/manifest.json",
	}, nil)

	if s := SelectSource(rec); s != nil {
		t.Fatalf("Expected no map source for an IIIF-only record")
	}
}

func TestLayerTypeForSource(t *testing.T) {

	tests := []struct {
		resource_type []string
		source_type   string
		expected      LayerType
	}{
		{nil, "raster", LayerTypeRaster},
		{[]string{"Point data"}, "geojson", LayerTypeCircle},
		{[]string{"Line data"}, "geojson", LayerTypeLine},
		{[]string{"Polygon data"}, "geojson", LayerTypeFill},
		{nil, "geojson", LayerTypeFill},
	}

	for _, tc := range tests {

		var extra map[string]any

		if tc.resource_type != nil {
			extra = map[string]any{"gbl_resourceType_sm": tc.resource_type}
		}

		rec := testRecord(t, nil, extra)

		layer_type, err := LayerTypeForSource(rec, &SourceSpec{Type: tc.source_type})

		if err != nil {
			t.Fatalf("Failed to derive layer type, %v", err)
		}

		if layer_type != tc.expected {
			t.Fatalf("Expected %s for %v/%s, but got %s", tc.expected, tc.resource_type, tc.source_type, layer_type)
		}
	}
}

func TestLayerTypeForSourceUnsupported(t *testing.T) {

	rec := testRecord(t, nil, nil)

	_, err := LayerTypeForSource(rec, &SourceSpec{Type: "vector"})

	if err == nil {
		t.Fatalf("Expected an error for an unsupported source type")
	}
}

func TestPreviewLayer(t *testing.T) {

	rec := testRecord(t, map[string]string{
		ogm.REF_GEOJSON: "https://data.example.edu/records/test.geojson",
	}, map[string]any{
		"gbl_resourceType_sm": []string{"Point data"},
	})

	layer, err := PreviewLayer(rec)

	if err != nil {
		t.Fatalf("Failed to derive preview layer, %v", err)
	}

	if layer == nil {
		t.Fatalf("Expected a preview layer")
	}

	if layer.Type != LayerTypeCircle {
		t.Fatalf("Expected circle layer, but got %s", layer.Type)
	}

	if layer.Id != "test-record" {
		t.Fatalf("Expected layer id to match record id, got %s", layer.Id)
	}

	// No references means no layer, and that is not an error

	rec = testRecord(t, nil, nil)

	layer, err = PreviewLayer(rec)

	if err != nil {
		t.Fatalf("Unexpected error, %v", err)
	}

	if layer != nil {
		t.Fatalf("Expected no preview layer")
	}
}

func TestFeatureInfoURL(t *testing.T) {

	opts := &FeatureInfoOptions{
		Bounds: &geometry.Bounds{West: -74.94, South: 40.14, East: -74.42, North: 40.42},
		Width:  1024,
		Height: 768,
		X:      312,
		Y:      418,
	}

	info_url, err := FeatureInfoURL("https://geoserver.example.edu/wms", "test-record-canopy2015", opts)

	if err != nil {
		t.Fatalf("Failed to derive feature info URL, %v", err)
	}

	u, err := url.Parse(info_url)

	if err != nil {
		t.Fatalf("Failed to parse feature info URL, %v", err)
	}

	q := u.Query()

	if q.Get("REQUEST") != "GetFeatureInfo" {
		t.Fatalf("Unexpected REQUEST: %s", q.Get("REQUEST"))
	}

	// Composite layer ids keep only the last dash segment
	if q.Get("LAYERS") != "canopy2015" {
		t.Fatalf("Unexpected LAYERS: %s", q.Get("LAYERS"))
	}

	if q.Get("QUERY_LAYERS") != "canopy2015" {
		t.Fatalf("Unexpected QUERY_LAYERS: %s", q.Get("QUERY_LAYERS"))
	}

	if q.Get("BBOX") != "-74.94,40.14,-74.42,40.42" {
		t.Fatalf("Unexpected BBOX: %s", q.Get("BBOX"))
	}

	if q.Get("SRS") != "EPSG:4326" {
		t.Fatalf("Unexpected SRS: %s", q.Get("SRS"))
	}

	if q.Get("INFO_FORMAT") != "application/json" {
		t.Fatalf("Unexpected INFO_FORMAT: %s", q.Get("INFO_FORMAT"))
	}
}
