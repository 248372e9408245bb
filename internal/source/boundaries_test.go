package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geojson "github.com/twpayne/go-geom/encoding/geojson"
)

const countiesGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "id": "01001",
      "properties": {"NAME": "Autauga"},
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]}
    },
    {
      "type": "Feature",
      "id": "01003",
      "properties": {"NAME": "Baldwin"},
      "geometry": {"type": "Polygon", "coordinates": [[[2,2],[3,2],[3,3],[2,2]]]}
    }
  ]
}`

func TestGeoJSONBoundaries(t *testing.T) {
	src := NewGeoJSONBoundaries(&stubFetcher{body: countiesGeoJSON}, "https://example.com/counties.json")

	fc, err := src.Boundaries(context.Background())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "01001", fc.Features[0].ID)
}

func TestGeoJSONBoundaries_Empty(t *testing.T) {
	src := NewGeoJSONBoundaries(&stubFetcher{body: `{"type":"FeatureCollection","features":[]}`}, "u")
	_, err := src.Boundaries(context.Background())
	assert.Error(t, err)
}

func TestGeoJSONBoundaries_BadJSON(t *testing.T) {
	src := NewGeoJSONBoundaries(&stubFetcher{body: "not json"}, "u")
	_, err := src.Boundaries(context.Background())
	assert.Error(t, err)
}

func TestGeoJSONBoundaries_DownloadError(t *testing.T) {
	src := NewGeoJSONBoundaries(&stubFetcher{err: assert.AnError}, "u")
	_, err := src.Boundaries(context.Background())
	assert.Error(t, err)
}

func TestFIPSIndex(t *testing.T) {
	fc := &geojson.FeatureCollection{
		Features: []*geojson.Feature{
			{ID: "01001"},
			{ID: "06037"},
			{ID: "not-a-fips"},
		},
	}

	index := FIPSIndex(fc)
	require.Len(t, index, 2)
	assert.Equal(t, "01001", index[1001].ID)
	assert.Equal(t, "06037", index[6037].ID)
}
