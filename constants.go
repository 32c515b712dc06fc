package ogm

// AARDVARK_VERSION is the only `gbl_mdVersion_s` value this module understands.
const AARDVARK_VERSION string = "Aardvark"

const REF_WMS string = "http://www.opengis.net/def/serviceType/ogc/wms"

const REF_WFS string = "http://www.opengis.net/def/serviceType/ogc/wfs"

const REF_WCS string = "http://www.opengis.net/def/serviceType/ogc/wcs"

const REF_WMTS string = "http://www.opengis.net/def/serviceType/ogc/wmts"

const REF_COG string = "https://github.com/cogeotiff/cog-spec"

const REF_TMS string = "https://wiki.osgeo.org/wiki/Tile_Map_Service_Specification"

const REF_XYZ string = "https://wiki.openstreetmap.org/wiki/Slippy_map_tilenames"

const REF_GEOJSON string = "http://geojson.org/geojson-spec.html"

const REF_TILEJSON string = "https://github.com/mapbox/tilejson-spec"

const REF_INDEX_MAP string = "https://openindexmaps.org"

const REF_PMTILES string = "https://github.com/protomaps/PMTiles"

const REF_IIIF_IMAGE string = "http://iiif.io/api/image"

const REF_IIIF_MANIFEST string = "http://iiif.io/api/presentation#manifest"

const REF_DOWNLOAD string = "http://schema.org/downloadUrl"

const REF_OEMBED string = "https://oembed.com"

const REF_FGDC string = "http://www.opengis.net/cat/csw/csdgm"

const REF_HTML string = "http://www.w3.org/1999/xhtml"

const REF_ISO19139 string = "http://www.isotc211.org/schemas/2005/gmd/"

const REF_MODS string = "http://www.loc.gov/mods/v3"

const REF_DATA_DICTIONARY string = "http://lccn.loc.gov/sh85035852"

const REF_LAYER_DESCRIPTION string = "http://schema.org/url"

// ReferenceLabels maps well-known reference URIs to user-facing names.
var ReferenceLabels = map[string]string{
	REF_WMS:               "WMS",
	REF_WFS:               "WFS",
	REF_WCS:               "WCS",
	REF_WMTS:              "WMTS",
	REF_COG:               "COG",
	REF_TMS:               "TMS",
	REF_XYZ:               "XYZ Tiles",
	REF_GEOJSON:           "GeoJSON",
	REF_TILEJSON:          "TileJSON",
	REF_INDEX_MAP:         "Index Map",
	REF_PMTILES:           "PMTiles",
	REF_IIIF_IMAGE:        "IIIF Image",
	REF_IIIF_MANIFEST:     "IIIF Manifest",
	REF_DOWNLOAD:          "Download URL",
	REF_OEMBED:            "OEmbed",
	REF_FGDC:              "FGDC Metadata",
	REF_HTML:              "HTML Metadata",
	REF_ISO19139:          "ISO 19139 Metadata",
	REF_MODS:              "MODS Metadata",
	REF_DATA_DICTIONARY:   "Data Dictionary",
	REF_LAYER_DESCRIPTION: "Layer Description",
}

// MetadataReferenceURIs lists the reference URIs that point at metadata documents
// (rather than services or data) in the order they are presented to users.
var MetadataReferenceURIs = []string{
	REF_FGDC,
	REF_HTML,
	REF_ISO19139,
	REF_MODS,
	REF_DATA_DICTIONARY,
	REF_LAYER_DESCRIPTION,
}
