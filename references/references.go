// Package references provides methods for classifying the reference URIs embedded
// in OpenGeoMetadata (Aardvark) records and for resolving IIIF manifests in to
// lists of image services.
package references

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	ogm "github.com/opengeometadata/go-ogm-record"
)

// Link is a URL with a user-facing label.
type Link struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// References holds the classified contents of a record's `dct_references_s` blob.
// Instances are created once at record-normalization time and are immutable
// afterwards, except for the lazily-cached IIIF manifest.
type References struct {
	refs      map[string]string
	raw       map[string]json.RawMessage
	downloads []Link
	manifest  []byte
}

// Parse derives a `References` instance from the serialized JSON blob stored in
// a record's `dct_references_s` field. A malformed blob degrades to an empty set
// with a logged diagnostic; it never fails the record.
func Parse(blob string) *References {

	r := &References{
		refs: make(map[string]string),
		raw:  make(map[string]json.RawMessage),
	}

	if blob == "" {
		return r
	}

	var doc map[string]json.RawMessage

	err := json.Unmarshal([]byte(blob), &doc)

	if err != nil {
		slog.Warn("Failed to parse references, using empty set", "error", err)
		return r
	}

	for uri, body := range doc {

		if uri == ogm.REF_DOWNLOAD {
			r.downloads = parseDownloads(body)
			continue
		}

		var str_value string

		if err := json.Unmarshal(body, &str_value); err == nil {
			r.refs[uri] = str_value
			continue
		}

		// Unknown shapes are preserved but not interpreted
		r.raw[uri] = body
	}

	return r
}

// The download value is either a bare URL string or a list of {url, label}
// objects. It is resolved to a single tagged form here, at parse time. Labels
// for the bare-string case are left empty and filled in by the record.
func parseDownloads(body json.RawMessage) []Link {

	var single string

	if err := json.Unmarshal(body, &single); err == nil {
		return []Link{
			Link{URL: single},
		}
	}

	var labelled []Link

	if err := json.Unmarshal(body, &labelled); err == nil {
		return labelled
	}

	slog.Warn("Failed to parse download links, ignoring")
	return nil
}

// Get returns the URL for 'uri' and whether it is present.
func (r *References) Get(uri string) (string, bool) {
	v, ok := r.refs[uri]
	return v, ok
}

func (r *References) has(uris ...string) bool {

	for _, uri := range uris {

		if _, ok := r.refs[uri]; ok {
			return true
		}
	}

	return false
}

// WMS returns the OGC Web Map Service URL, if any.
func (r *References) WMS() (string, bool) {
	return r.Get(ogm.REF_WMS)
}

// WFS returns the OGC Web Feature Service URL, if any.
func (r *References) WFS() (string, bool) {
	return r.Get(ogm.REF_WFS)
}

// WCS returns the OGC Web Coverage Service URL, if any.
func (r *References) WCS() (string, bool) {
	return r.Get(ogm.REF_WCS)
}

// WMTS returns the OGC Web Map Tile Service URL, if any.
func (r *References) WMTS() (string, bool) {
	return r.Get(ogm.REF_WMTS)
}

// COG returns the cloud-optimized GeoTIFF URL, if any.
func (r *References) COG() (string, bool) {
	return r.Get(ogm.REF_COG)
}

// TMS returns the Tile Map Service URL, if any.
func (r *References) TMS() (string, bool) {
	return r.Get(ogm.REF_TMS)
}

// XYZ returns the slippy-map tiles URL, if any.
func (r *References) XYZ() (string, bool) {
	return r.Get(ogm.REF_XYZ)
}

// GeoJSON returns the GeoJSON data URL, if any.
func (r *References) GeoJSON() (string, bool) {
	return r.Get(ogm.REF_GEOJSON)
}

// TileJSON returns the TileJSON URL, if any.
func (r *References) TileJSON() (string, bool) {
	return r.Get(ogm.REF_TILEJSON)
}

// IndexMap returns the OpenIndexMaps URL, if any.
func (r *References) IndexMap() (string, bool) {
	return r.Get(ogm.REF_INDEX_MAP)
}

// PMTiles returns the PMTiles archive URL, if any.
func (r *References) PMTiles() (string, bool) {
	return r.Get(ogm.REF_PMTILES)
}

// OEmbed returns the OEmbed endpoint URL, if any.
func (r *References) OEmbed() (string, bool) {
	return r.Get(ogm.REF_OEMBED)
}

// IIIFImage returns the IIIF Image API URL, if any.
func (r *References) IIIFImage() (string, bool) {
	return r.Get(ogm.REF_IIIF_IMAGE)
}

// IIIFManifest returns the IIIF Presentation manifest URL, if any, after
// applying the U-Michigan normalization rule (see normalizeManifestURL).
func (r *References) IIIFManifest() (string, bool) {

	v, ok := r.Get(ogm.REF_IIIF_MANIFEST)

	if !ok {
		return "", false
	}

	return normalizeManifestURL(v), true
}

// The one known host whose records publish IIIF "search" API URLs in place of
// manifest URLs.
const umichIIIFHost string = "quod.lib.umich.edu"

// U-Michigan records reference their IIIF search endpoint rather than the
// manifest itself. Rewrite the `search` path segment to `manifest`, preserving
// query string and fragment. Every other URL passes through unchanged.
func normalizeManifestURL(raw_url string) string {

	u, err := url.Parse(raw_url)

	if err != nil {
		return raw_url
	}

	if u.Host != umichIIIFHost {
		return raw_url
	}

	if !strings.Contains(u.Path, "/search/") {
		return raw_url
	}

	u.Path = strings.Replace(u.Path, "/search/", "/manifest/", 1)
	return u.String()
}

// DownloadLinks returns the normalized list of download links. Labels may be
// empty; records fill them in from their format and file size fields.
func (r *References) DownloadLinks() []Link {

	links := make([]Link, len(r.downloads))
	copy(links, r.downloads)

	return links
}

// MetadataLinks returns links to the metadata documents referenced by the
// record, labelled and ordered according to the fixed whitelist in the ogm
// package rather than blob insertion order.
func (r *References) MetadataLinks() []Link {

	links := make([]Link, 0)

	for _, uri := range ogm.MetadataReferenceURIs {

		link_url, ok := r.Get(uri)

		if !ok {
			continue
		}

		links = append(links, Link{
			URL:   link_url,
			Label: ogm.ReferenceLabels[uri],
		})
	}

	return links
}

// MapPreviewable returns true if the record can be previewed on a map.
func (r *References) MapPreviewable() bool {

	return r.has(
		ogm.REF_WMS,
		ogm.REF_COG,
		ogm.REF_TMS,
		ogm.REF_XYZ,
		ogm.REF_GEOJSON,
		ogm.REF_TILEJSON,
		ogm.REF_INDEX_MAP,
		ogm.REF_PMTILES,
		ogm.REF_WMTS,
	)
}

// IIIFPreviewable returns true if the record can be previewed in a IIIF viewer.
func (r *References) IIIFPreviewable() bool {
	return r.has(ogm.REF_IIIF_IMAGE, ogm.REF_IIIF_MANIFEST)
}

// Previewable returns true if any preview mechanism is available.
func (r *References) Previewable() bool {
	return r.MapPreviewable() || r.IIIFPreviewable()
}

// IIIFOnly returns true if the only available preview mechanism is IIIF. This
// is the switch between rendering a map preview and an image preview.
func (r *References) IIIFOnly() bool {
	return r.IIIFPreviewable() && !r.MapPreviewable()
}
