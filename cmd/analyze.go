package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	geojson "github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/county-mortality-cli/internal/config"
	"github.com/sells-group/county-mortality-cli/internal/fetcher"
	"github.com/sells-group/county-mortality-cli/internal/model"
	"github.com/sells-group/county-mortality-cli/internal/pipeline"
	"github.com/sells-group/county-mortality-cli/internal/render"
	"github.com/sells-group/county-mortality-cli/internal/report"
	"github.com/sells-group/county-mortality-cli/internal/source"
	"github.com/sells-group/county-mortality-cli/internal/stats"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis end to end",
	Long:  "Loads the county and death tables, cleans and joins them, classifies quadrants, computes the correlation and outliers, and writes the scatter plot and choropleth.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = cfg.Analysis.SnapshotDate
		}

		records, err := loadAndJoin(ctx, cfg, date)
		if err != nil {
			return err
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{RateLimiters: fetcher.DefaultRateLimiters()})

		income, err := source.NewIncomeWorkbook(
			cfg.Income.WorkbookPath, cfg.Income.SheetName, cfg.Income.RegionLabel,
		).NationalMedianIncome(ctx)
		if err != nil {
			return err
		}

		ref, err := pipeline.NationalReference(records, income)
		if err != nil {
			return err
		}
		counts := pipeline.ClassifyAll(records, ref)

		incomes := make([]float64, len(records))
		rates := make([]float64, len(records))
		var totalPop, totalDeaths int64
		for i, r := range records {
			incomes[i] = r.MedianIncome
			rates[i] = r.DeathRate
			totalPop += r.Population
			totalDeaths += r.Deaths
		}

		corr, err := stats.Pearson(incomes, rates, cfg.Analysis.ConfidenceLevel)
		if err != nil {
			return err
		}
		outliers, err := stats.Outliers(records, cfg.Analysis.IQRMultiplier)
		if err != nil {
			return err
		}

		highlights := pipeline.NewHighlights(cfg.Analysis.HighlightFIPS)
		if cfg.Analysis.HighlightsFile != "" {
			if err := highlights.LoadHighlights(cfg.Analysis.HighlightsFile); err != nil {
				return err
			}
		}
		highlights.ResolveNames(records)

		if err := render.WriteScatter(render.ScatterInput{
			Records:    records,
			Outliers:   outliers,
			Highlights: highlights.Labels(),
			Date:       date,
		}, cfg.Output.ScatterPath); err != nil {
			return err
		}

		boundaries, err := loadBoundaries(ctx, cfg, f)
		if err != nil {
			return err
		}
		if err := render.WriteChoropleth(render.ChoroplethInput{
			Records:    records,
			Boundaries: source.FIPSIndex(boundaries),
			Date:       date,
		}, cfg.Output.ChoroplethPath); err != nil {
			return err
		}

		return report.Write(os.Stdout, report.Summary{
			Date:            date,
			Counties:        len(records),
			TotalPopulation: totalPop,
			TotalDeaths:     totalDeaths,
			Reference:       ref,
			QuadrantCounts:  counts,
			Correlation:     corr,
			OutlierCount:    len(outliers),
		})
	},
}

// loadAndJoin reads both tables, cleans them, and joins. The database
// handle is scoped to this function: it is released as soon as the rows are
// in memory, before any transformation runs.
func loadAndJoin(ctx context.Context, cfg *config.Config, date string) ([]model.CountyRecord, error) {
	attrSrc, deathsSrc, closeDB, err := openSources(ctx, cfg)
	if err != nil {
		return nil, err
	}

	rawAttrs, err := attrSrc.CountyAttributes(ctx)
	if err != nil {
		closeDB()
		return nil, err
	}
	rawDeaths, err := deathsSrc.CountyDeaths(ctx, date)
	closeDB()
	if err != nil {
		return nil, err
	}

	attrs, err := pipeline.CleanAttributes(rawAttrs)
	if err != nil {
		return nil, err
	}
	deaths, err := pipeline.CleanDeaths(rawDeaths)
	if err != nil {
		return nil, err
	}

	return pipeline.Join(attrs, deaths)
}

// openSources wires the configured driver. The returned close func is safe
// to call once and releases whatever connection was opened.
func openSources(ctx context.Context, cfg *config.Config) (source.AttributeSource, source.DeathsSource, func(), error) {
	var attrSrc source.AttributeSource
	var deathsSrc source.DeathsSource
	var closeDB func()

	switch cfg.Source.Driver {
	case "postgres":
		pool, err := source.Connect(ctx, cfg.Source.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		pg := source.NewPostgres(pool)
		attrSrc, deathsSrc = pg, pg
		closeDB = pool.Close
	case "sqlite":
		db, err := source.NewSQLite(cfg.Source.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		attrSrc, deathsSrc = db, db
		closeDB = func() {
			if err := db.Close(); err != nil {
				zap.L().Warn("close sqlite", zap.Error(err))
			}
		}
	default:
		return nil, nil, nil, eris.Errorf("unknown source driver %q (valid: postgres, sqlite)", cfg.Source.Driver)
	}

	if cfg.Source.DeathsCSV != "" {
		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{RateLimiters: fetcher.DefaultRateLimiters()})
		deathsSrc = source.NewCSVDeaths(f, cfg.Source.DeathsCSV)
	}

	return attrSrc, deathsSrc, closeDB, nil
}

func loadBoundaries(ctx context.Context, cfg *config.Config, f fetcher.Fetcher) (*geojson.FeatureCollection, error) {
	var src source.BoundarySource
	if cfg.Boundaries.ShapefilePath != "" {
		src = source.NewShapefileBoundaries(cfg.Boundaries.ShapefilePath)
	} else {
		src = source.NewGeoJSONBoundaries(f, cfg.Boundaries.GeoJSONURL)
	}
	return src.Boundaries(ctx)
}

func init() {
	analyzeCmd.Flags().String("date", "", "snapshot date (YYYY-MM-DD, overrides config)")
	rootCmd.AddCommand(analyzeCmd)
}
