package source

import (
	"context"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	geojson "github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

// ShapefileBoundaries builds the county boundary FeatureCollection from a
// local TIGER/Line county shapefile, for offline runs without the remote
// GeoJSON. Feature IDs come from the GEOID attribute.
type ShapefileBoundaries struct {
	path string
}

// NewShapefileBoundaries creates a ShapefileBoundaries source.
func NewShapefileBoundaries(path string) *ShapefileBoundaries {
	return &ShapefileBoundaries{path: path}
}

// Boundaries reads the shapefile and converts each county polygon to a
// GeoJSON feature.
func (s *ShapefileBoundaries) Boundaries(_ context.Context) (*geojson.FeatureCollection, error) {
	reader, err := shp.Open(s.path)
	if err != nil {
		return nil, eris.Wrapf(err, "source: open shapefile %s", s.path)
	}
	defer func() { _ = reader.Close() }()

	geoidIdx := -1
	for i, f := range reader.Fields() {
		name := strings.TrimRight(f.String(), "\x00")
		if strings.EqualFold(name, "GEOID") {
			geoidIdx = i
			break
		}
	}
	if geoidIdx < 0 {
		return nil, eris.Errorf("source: shapefile %s has no GEOID field", s.path)
	}

	fc := &geojson.FeatureCollection{}
	var skipped int
	for reader.Next() {
		_, shape := reader.Shape()

		poly, ok := shape.(*shp.Polygon)
		if !ok || poly == nil {
			skipped++
			continue
		}
		mp := polygonToMultiPolygon(poly)
		if mp == nil {
			skipped++
			continue
		}

		geoid := strings.TrimSpace(strings.TrimRight(reader.Attribute(geoidIdx), "\x00"))
		if geoid == "" {
			skipped++
			continue
		}

		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         geoid,
			Geometry:   mp,
			Properties: map[string]interface{}{"GEOID": geoid},
		})
	}

	if skipped > 0 {
		zap.L().Warn("skipped shapefile records without usable geometry", zap.Int("records", skipped))
	}
	if len(fc.Features) == 0 {
		return nil, eris.Errorf("source: shapefile %s produced no features", s.path)
	}

	return fc, nil
}

// polygonToMultiPolygon converts a shapefile Polygon to a geom.MultiPolygon,
// one single-ring polygon per part.
func polygonToMultiPolygon(p *shp.Polygon) *geom.MultiPolygon {
	if p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY).SetSRID(4326)

	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		var end int32
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		} else {
			end = int32(len(p.Points))
		}

		flat := make([]float64, 0, (end-start)*2)
		for j := start; j < end; j++ {
			flat = append(flat, p.Points[j].X, p.Points[j].Y)
		}

		ring := geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
		if err := mp.Push(ring); err != nil {
			zap.L().Debug("skipping malformed polygon part", zap.Int32("part", i), zap.Error(err))
			continue
		}
	}

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}
