package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rotisserie/eris"
	geojson "github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/county-mortality-cli/internal/geo"
	"github.com/sells-group/county-mortality-cli/internal/model"
)

const countyMapName = "USCounties"

// quadrantColors maps ordinal position (1-4) to the choropleth palette, in
// the fixed category order.
var quadrantColors = []string{"#91cc75", "#fac858", "#73c0de", "#ee6666"}

// ChoroplethInput carries the classified records and the boundary geometry.
type ChoroplethInput struct {
	Records    []model.CountyRecord
	Boundaries map[int]*geojson.Feature // FIPS -> county polygon
	Date       string
}

// WriteChoropleth renders the quadrant choropleth to an HTML file.
func WriteChoropleth(in ChoroplethInput, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "render: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	if err := Choropleth(in, f); err != nil {
		return err
	}
	zap.L().Info("wrote choropleth", zap.String("path", path))
	return nil
}

// Choropleth renders the four-quadrant county map to w. Counties without a
// matching polygon are omitted with a logged count; that is a rendering
// gap, not an analysis failure.
func Choropleth(in ChoroplethInput, w io.Writer) error {
	if len(in.Records) == 0 {
		return eris.New("render: no records for choropleth")
	}
	if len(in.Boundaries) == 0 {
		return eris.New("render: no boundary features")
	}

	// Keep only polygons for counties in the dataset, and name each feature
	// by its 5-digit FIPS so series values match geometry.
	fc := &geojson.FeatureCollection{}
	var data []opts.MapData
	var missing int
	for _, r := range in.Records {
		feature, ok := in.Boundaries[r.FIPS]
		if !ok {
			missing++
			continue
		}
		name := geo.FormatFIPS(r.FIPS, 5)
		if feature.Properties == nil {
			feature.Properties = map[string]interface{}{}
		}
		feature.Properties["name"] = name
		fc.Features = append(fc.Features, feature)

		data = append(data, opts.MapData{Name: name, Value: float64(r.Category.Ordinal())})
	}
	if missing > 0 {
		zap.L().Warn("counties missing boundary geometry, omitted from map", zap.Int("counties", missing))
	}
	if len(data) == 0 {
		return eris.New("render: no county matched a boundary feature")
	}

	geoJSON, err := json.Marshal(fc)
	if err != nil {
		return eris.Wrap(err, "render: marshal boundaries")
	}

	pieces := make([]opts.Piece, len(model.Categories))
	for i, cat := range model.Categories {
		ordinal := float32(i + 1)
		pieces[i] = opts.Piece{
			Min:   ordinal - 0.5,
			Max:   ordinal + 0.5,
			Label: string(cat),
			Color: quadrantColors[i],
		}
	}

	m := charts.NewMap()
	m.RegisterMapType(countyMapName)
	m.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "County income/mortality quadrants",
			Width:     "1200px",
			Height:    "800px",
			ChartID:   "choropleth",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Income and COVID-19 mortality quadrants by county",
			Subtitle: fmt.Sprintf("Snapshot of %s", in.Date),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:   "piecewise",
			Pieces: pieces,
			Show:   opts.Bool(true),
			Left:   "left",
			Bottom: "10",
		}),
	)
	m.AddSeries("Quadrant", data)

	// echarts needs the custom map registered before the option is applied,
	// but injected JS runs after the initial setOption. Register, then
	// re-apply the option under the fixed chart id.
	m.AddJSFuncs(fmt.Sprintf(
		"echarts.registerMap('%s', %s); goecharts_choropleth.setOption(option_choropleth);",
		countyMapName, string(geoJSON),
	))

	if err := m.Render(w); err != nil {
		return eris.Wrap(err, "render: choropleth")
	}
	return nil
}
