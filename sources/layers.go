package sources

import (
	"fmt"
	"slices"

	"github.com/opengeometadata/go-ogm-record/record"
)

// LayerType enumerates the renderer layer types a preview source can map to.
type LayerType string

const (
	LayerTypeRaster LayerType = "raster"
	LayerTypeFill   LayerType = "fill"
	LayerTypeLine   LayerType = "line"
	LayerTypeCircle LayerType = "circle"
)

// Layer pairs a source spec with the layer type used to style it. The Id
// always matches the record and source id.
type Layer struct {
	Id     string      `json:"id"`
	Type   LayerType   `json:"type"`
	Source *SourceSpec `json:"source"`
}

// LayerTypeForSource maps a source spec to a layer type. Raster sources are
// always raster layers. GeoJSON sources are styled by the record's resource
// type: point data as circles, line data as lines and everything else as a
// fill. Any other source type is an error; it is unreachable when the spec
// came from SelectSource.
func LayerTypeForSource(rec *record.Record, spec *SourceSpec) (LayerType, error) {

	switch spec.Type {
	case "raster":
		return LayerTypeRaster, nil
	case "geojson":

		if slices.Contains(rec.ResourceType, "Point data") {
			return LayerTypeCircle, nil
		}

		if slices.Contains(rec.ResourceType, "Line data") {
			return LayerTypeLine, nil
		}

		return LayerTypeFill, nil
	default:
		return "", fmt.Errorf("Unsupported source type: %s", spec.Type)
	}
}

// PreviewLayer derives the preview layer for 'rec', with its source embedded.
// It returns nil (and no error) when the record has no preview source.
func PreviewLayer(rec *record.Record) (*Layer, error) {

	s := SelectSource(rec)

	if s == nil {
		return nil, nil
	}

	layer_type, err := LayerTypeForSource(rec, s.Spec)

	if err != nil {
		return nil, fmt.Errorf("Failed to derive layer type for record %s, %w", rec.Id, err)
	}

	return &Layer{
		Id:     s.Id,
		Type:   layer_type,
		Source: s.Spec,
	}, nil
}
