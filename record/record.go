// Package record provides methods for normalizing GeoBlacklight Aardvark
// metadata records in to typed `Record` instances.
package record

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	ogm "github.com/opengeometadata/go-ogm-record"
	"github.com/opengeometadata/go-ogm-record/geometry"
	"github.com/opengeometadata/go-ogm-record/references"
)

// AardvarkRecord is the raw shape of a GeoBlacklight Aardvark record. See
// https://opengeometadata.github.io/aardvark/aardvarkMetadata.html for details.
type AardvarkRecord struct {
	Id                string   `json:"id"`
	Title             string   `json:"dct_title_s"`
	AlternativeTitles []string `json:"dct_alternative_sm,omitempty"`
	Description       []string `json:"dct_description_sm,omitempty"`
	Language          []string `json:"dct_language_sm,omitempty"`
	DisplayNotes      []string `json:"gbl_displayNote_sm,omitempty"`
	Creators          []string `json:"dct_creator_sm,omitempty"`
	Publishers        []string `json:"dct_publisher_sm,omitempty"`
	Provider          string   `json:"schema_provider_s,omitempty"`
	ResourceClass     []string `json:"gbl_resourceClass_sm"`
	ResourceType      []string `json:"gbl_resourceType_sm,omitempty"`
	Subjects          []string `json:"dct_subject_sm,omitempty"`
	Themes            []string `json:"dcat_theme_sm,omitempty"`
	Keywords          []string `json:"dcat_keyword_sm,omitempty"`
	Temporal          []string `json:"dct_temporal_sm,omitempty"`
	Issued            string   `json:"dct_issued_s,omitempty"`
	IndexYears        []int    `json:"gbl_indexYear_im,omitempty"`
	DateRanges        []string `json:"gbl_dateRange_drsim,omitempty"`
	Spatial           []string `json:"dct_spatial_sm,omitempty"`
	Geometry          string   `json:"locn_geometry,omitempty"`
	BoundingBox       string   `json:"dcat_bbox,omitempty"`
	Centroid          string   `json:"dcat_centroid,omitempty"`
	Relations         []string `json:"dct_relation_sm,omitempty"`
	MemberOf          []string `json:"pcdm_memberOf_sm,omitempty"`
	IsPartOf          []string `json:"dct_isPartOf_sm,omitempty"`
	Sources           []string `json:"dct_source_sm,omitempty"`
	IsVersionOf       []string `json:"dct_isVersionOf_sm,omitempty"`
	Replaces          []string `json:"dct_replaces_sm,omitempty"`
	IsReplacedBy      []string `json:"dct_isReplacedBy_sm,omitempty"`
	Rights            []string `json:"dct_rights_sm,omitempty"`
	RightsHolders     []string `json:"dct_rightsHolder_sm,omitempty"`
	Licenses          []string `json:"dct_license_sm,omitempty"`
	AccessRights      string   `json:"dct_accessRights_s"`
	Format            string   `json:"dct_format_s,omitempty"`
	FileSize          string   `json:"gbl_fileSize_s,omitempty"`
	WxsIdentifier     string   `json:"gbl_wxsIdentifier_s,omitempty"`
	References        string   `json:"dct_references_s,omitempty"`
	Identifiers       []string `json:"dct_identifier_sm,omitempty"`
	Modified          string   `json:"gbl_mdModified_dt,omitempty"`
	MdVersion         string   `json:"gbl_mdVersion_s"`
	Suppressed        bool     `json:"gbl_suppressed_b,omitempty"`
	Georeferenced     bool     `json:"gbl_georeferenced_b,omitempty"`
}

// Record is the normalized projection of an Aardvark record. Fields that are
// absent in the raw record stay zero-valued here; they are never defaulted to
// empty containers, so "not present" and "present but empty" stay
// distinguishable. The References field is always present, defaulting to an
// empty set when the raw reference blob is absent or malformed.
type Record struct {
	Id                string
	Title             string
	AlternativeTitles []string
	Description       []string
	Language          []string
	DisplayNotes      []string
	Creators          []string
	Publishers        []string
	Provider          string
	ResourceClass     []string
	ResourceType      []string
	Subjects          []string
	Themes            []string
	Keywords          []string
	Temporal          []string
	Issued            string
	IndexYears        []int
	DateRanges        []string
	Spatial           []string
	Geometry          string
	BoundingBox       string
	Centroid          string
	Relations         []string
	MemberOf          []string
	IsPartOf          []string
	Sources           []string
	IsVersionOf       []string
	Replaces          []string
	IsReplacedBy      []string
	Rights            []string
	RightsHolders     []string
	Licenses          []string
	AccessRights      string
	Format            string
	FileSize          string
	WxsIdentifier     string
	Identifiers       []string
	Modified          string
	MdVersion         string
	Suppressed        bool
	Georeferenced     bool

	References *references.References
}

// NewRecord derives a `Record` instance from 'raw'. It fails if and only if the
// record's metadata version is not supported; every other problem with the raw
// record degrades to absent fields.
func NewRecord(raw *AardvarkRecord) (*Record, error) {

	// A JSON body of `null` unmarshals in to a nil record
	if raw == nil {
		return nil, fmt.Errorf("Missing record body")
	}

	if raw.MdVersion != ogm.AARDVARK_VERSION {
		return nil, fmt.Errorf("Unsupported metadata version: %s", raw.MdVersion)
	}

	rec := &Record{
		Id:                raw.Id,
		Title:             raw.Title,
		AlternativeTitles: raw.AlternativeTitles,
		Description:       raw.Description,
		Language:          raw.Language,
		DisplayNotes:      raw.DisplayNotes,
		Creators:          raw.Creators,
		Publishers:        raw.Publishers,
		Provider:          raw.Provider,
		ResourceClass:     raw.ResourceClass,
		ResourceType:      raw.ResourceType,
		Subjects:          raw.Subjects,
		Themes:            raw.Themes,
		Keywords:          raw.Keywords,
		Temporal:          raw.Temporal,
		Issued:            raw.Issued,
		IndexYears:        raw.IndexYears,
		DateRanges:        raw.DateRanges,
		Spatial:           raw.Spatial,
		Geometry:          raw.Geometry,
		BoundingBox:       raw.BoundingBox,
		Centroid:          raw.Centroid,
		Relations:         raw.Relations,
		MemberOf:          raw.MemberOf,
		IsPartOf:          raw.IsPartOf,
		Sources:           raw.Sources,
		IsVersionOf:       raw.IsVersionOf,
		Replaces:          raw.Replaces,
		IsReplacedBy:      raw.IsReplacedBy,
		Rights:            raw.Rights,
		RightsHolders:     raw.RightsHolders,
		Licenses:          raw.Licenses,
		AccessRights:      raw.AccessRights,
		Format:            raw.Format,
		FileSize:          raw.FileSize,
		WxsIdentifier:     raw.WxsIdentifier,
		Identifiers:       raw.Identifiers,
		Modified:          raw.Modified,
		MdVersion:         raw.MdVersion,
		Suppressed:        raw.Suppressed,
		Georeferenced:     raw.Georeferenced,
		References:        references.Parse(raw.References),
	}

	return rec, nil
}

// UnmarshalRecord derives a `Record` instance from the JSON encoding of an
// Aardvark record.
func UnmarshalRecord(body []byte) (*Record, error) {

	var raw *AardvarkRecord

	err := json.Unmarshal(body, &raw)

	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal record, %w", err)
	}

	return NewRecord(raw)
}

// Restricted returns true if the record's access rights are exactly
// "Restricted". Any other value, including an unset one, is not restricted.
func (rec *Record) Restricted() bool {
	return rec.AccessRights == "Restricted"
}

// Attribution returns the attribution string for the record: the first
// non-empty of rights holders, publishers and provider. Later sources are
// ignored once one matches.
func (rec *Record) Attribution() string {

	if len(rec.RightsHolders) > 0 {
		return strings.Join(rec.RightsHolders, "; ")
	}

	if len(rec.Publishers) > 0 {
		return strings.Join(rec.Publishers, "; ")
	}

	return rec.Provider
}

// DownloadLinks returns the record's download links with labels filled in.
// Links without labels get the record's format, falling back to "Object", with
// the file size appended in parentheses when known. The fill-in happens on the
// derived list; the underlying references are never mutated.
func (rec *Record) DownloadLinks() []references.Link {

	links := rec.References.DownloadLinks()

	for i, l := range links {

		if l.Label != "" {
			continue
		}

		label := rec.Format

		if label == "" {
			label = "Object"
		}

		if rec.FileSize != "" {
			label = fmt.Sprintf("%s (%s)", label, rec.FileSize)
		}

		links[i].Label = label
	}

	return links
}

// Bounds derives a `geometry.Bounds` instance from the record's bbox field. It
// returns nil when the field is absent or not in ENVELOPE syntax.
func (rec *Record) Bounds() *geometry.Bounds {

	if rec.BoundingBox == "" {
		return nil
	}

	return geometry.ParseEnvelope(rec.BoundingBox)
}

// DeriveGeometry returns the record's geometry, preferring the full geometry
// field over the bbox. A geometry field that fails to parse as WKT falls back
// to its own ENVELOPE form and then to the bbox-derived polygon. It returns nil
// when neither field yields a geometry.
func (rec *Record) DeriveGeometry() orb.Geometry {

	if rec.Geometry != "" {

		g := geometry.ParseGeometry(rec.Geometry)

		if g != nil {
			return g
		}
	}

	b := rec.Bounds()

	if b != nil {
		return b.Polygon()
	}

	return nil
}
