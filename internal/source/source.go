// Package source provides the data-provider boundaries for the analysis:
// county attributes and death counts from Postgres or SQLite, the national
// income reference from a spreadsheet, and county boundaries from GeoJSON
// or a local shapefile. Each provider is a scoped acquisition: connections
// are opened for the query and released as soon as the data is in memory.
package source

import (
	"context"

	"github.com/jackc/pgx/v5"
	geojson "github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

// AttributeSource returns the county reference table, already projected to
// the analysis fields but not yet cleaned.
type AttributeSource interface {
	CountyAttributes(ctx context.Context) ([]model.RawCounty, error)
}

// DeathsSource returns the case/death snapshot for a single date.
type DeathsSource interface {
	CountyDeaths(ctx context.Context, date string) ([]model.RawDeaths, error)
}

// IncomeSource returns the national median household income reference value.
type IncomeSource interface {
	NationalMedianIncome(ctx context.Context) (float64, error)
}

// BoundarySource returns the county boundary geometry keyed by FIPS.
type BoundarySource interface {
	Boundaries(ctx context.Context) (*geojson.FeatureCollection, error)
}

// Pool is the subset of pgxpool.Pool the Postgres source needs.
// Satisfied by *pgxpool.Pool and by pgxmock.PgxPoolIface in tests.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}
