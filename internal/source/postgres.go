package source

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

// PostgresSource reads the county reference and death snapshot tables from
// Postgres. The wide us_counties table carries ~78 columns; the query
// projects down to the seven the analysis needs.
type PostgresSource struct {
	pool Pool
}

// NewPostgres creates a PostgresSource over an existing pool.
func NewPostgres(pool Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Connect opens a pgx pool for the given database URL.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, eris.Wrap(err, "source: create pgx pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "source: ping database")
	}
	return pool, nil
}

const attributesQuery = `
SELECT county_fips, county, state_id, state_name, population, density, income_household_median
FROM us_counties
ORDER BY county_fips`

// CountyAttributes returns every row of the county reference table.
func (s *PostgresSource) CountyAttributes(ctx context.Context) ([]model.RawCounty, error) {
	rows, err := s.pool.Query(ctx, attributesQuery)
	if err != nil {
		return nil, eris.Wrap(err, "source: query us_counties")
	}
	defer rows.Close()

	var out []model.RawCounty
	for rows.Next() {
		var c model.RawCounty
		if err := rows.Scan(&c.FIPS, &c.Name, &c.StateCode, &c.StateName, &c.Population, &c.Density, &c.MedianIncome); err != nil {
			return nil, eris.Wrap(err, "source: scan us_counties row")
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "source: iterate us_counties")
	}

	zap.L().Debug("loaded county attributes", zap.Int("rows", len(out)))
	return out, nil
}

const deathsQuery = `
SELECT county_fips, cases, deaths
FROM covid_county_daily
WHERE date = $1
ORDER BY county_fips`

// CountyDeaths returns the cumulative case and death counts for the
// snapshot date.
func (s *PostgresSource) CountyDeaths(ctx context.Context, date string) ([]model.RawDeaths, error) {
	rows, err := s.pool.Query(ctx, deathsQuery, date)
	if err != nil {
		return nil, eris.Wrapf(err, "source: query covid_county_daily for %s", date)
	}
	defer rows.Close()

	var out []model.RawDeaths
	for rows.Next() {
		d := model.RawDeaths{Date: date}
		if err := rows.Scan(&d.FIPS, &d.Cases, &d.Deaths); err != nil {
			return nil, eris.Wrap(err, "source: scan covid_county_daily row")
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "source: iterate covid_county_daily")
	}

	zap.L().Debug("loaded death snapshot", zap.String("date", date), zap.Int("rows", len(out)))
	return out, nil
}
