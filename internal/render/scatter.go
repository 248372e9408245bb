// Package render produces the two report artifacts: an interactive scatter
// plot of income against death rate and a county choropleth colored by
// quadrant. No business logic lives here; it draws exactly what it is fed.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

// ScatterInput carries everything the scatter plot needs.
type ScatterInput struct {
	Records    []model.CountyRecord
	Outliers   map[int]bool   // FIPS flagged by the IQR rule
	Highlights map[int]string // FIPS -> annotation label
	Date       string
}

// WriteScatter renders the scatter plot to an HTML file.
func WriteScatter(in ScatterInput, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "render: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	if err := Scatter(in, f); err != nil {
		return err
	}
	zap.L().Info("wrote scatter plot", zap.String("path", path), zap.Int("counties", len(in.Records)))
	return nil
}

// Scatter renders the income vs. death rate scatter chart to w.
func Scatter(in ScatterInput, w io.Writer) error {
	if len(in.Records) == 0 {
		return eris.New("render: no records for scatter plot")
	}

	var base, outliers, highlighted []opts.ScatterData
	for _, r := range in.Records {
		point := opts.ScatterData{
			Name:       fmt.Sprintf("%s, %s", r.Name, r.StateCode),
			Value:      []interface{}{r.MedianIncome, r.DeathRate},
			SymbolSize: 6,
		}
		switch {
		case in.Highlights[r.FIPS] != "":
			point.Name = in.Highlights[r.FIPS]
			point.SymbolSize = 14
			highlighted = append(highlighted, point)
		case in.Outliers[r.FIPS]:
			outliers = append(outliers, point)
		default:
			base = append(base, point)
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "County COVID-19 mortality vs. household income",
			Width:     "1200px",
			Height:    "720px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "COVID-19 death rate vs. median household income by county",
			Subtitle: fmt.Sprintf("Cumulative deaths per 100,000 residents as of %s", in.Date),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Median household income (USD)", Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Deaths per 100,000", Type: "value", Scale: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
	)

	scatter.AddSeries("Counties", base,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#5470c6", Opacity: 0.45}))
	if len(outliers) > 0 {
		scatter.AddSeries("IQR outliers", outliers,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#ee6666", Opacity: 0.8}))
	}
	if len(highlighted) > 0 {
		scatter.AddSeries("Highlighted", highlighted,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#fac858"}))
	}

	if err := scatter.Render(w); err != nil {
		return eris.Wrap(err, "render: scatter")
	}
	return nil
}
