package source

import (
	"context"

	"github.com/rotisserie/eris"
	geojson "github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/county-mortality-cli/internal/fetcher"
	"github.com/sells-group/county-mortality-cli/internal/geo"
)

// GeoJSONBoundaries fetches the county boundary FeatureCollection from a
// remote GeoJSON file whose feature IDs are 5-digit FIPS codes.
type GeoJSONBoundaries struct {
	f   fetcher.Fetcher
	url string
}

// NewGeoJSONBoundaries creates a GeoJSONBoundaries source.
func NewGeoJSONBoundaries(f fetcher.Fetcher, url string) *GeoJSONBoundaries {
	return &GeoJSONBoundaries{f: f, url: url}
}

// Boundaries downloads and decodes the county boundary geometry.
func (b *GeoJSONBoundaries) Boundaries(ctx context.Context) (*geojson.FeatureCollection, error) {
	body, err := b.f.Download(ctx, b.url)
	if err != nil {
		return nil, eris.Wrapf(err, "source: download boundaries %s", b.url)
	}
	defer body.Close() //nolint:errcheck

	fc, err := fetcher.DecodeJSONObject[geojson.FeatureCollection](body)
	if err != nil {
		return nil, eris.Wrap(err, "source: decode boundaries geojson")
	}
	if len(fc.Features) == 0 {
		return nil, eris.Errorf("source: boundaries %s contain no features", b.url)
	}

	zap.L().Debug("loaded county boundaries", zap.Int("features", len(fc.Features)))
	return fc, nil
}

// FIPSIndex maps each feature's FIPS identifier to its feature. Features
// whose ID does not parse as an integer are skipped with a logged count.
func FIPSIndex(fc *geojson.FeatureCollection) map[int]*geojson.Feature {
	index := make(map[int]*geojson.Feature, len(fc.Features))
	var skipped int
	for _, f := range fc.Features {
		fips, err := geo.ParseFIPS(f.ID)
		if err != nil {
			skipped++
			continue
		}
		index[fips] = f
	}
	if skipped > 0 {
		zap.L().Warn("skipped boundary features without a numeric FIPS id", zap.Int("features", skipped))
	}
	return index
}
