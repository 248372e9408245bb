package source

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

// SQLiteSource reads the same two tables from a local SQLite snapshot file.
// Useful for offline runs against a downloaded copy of the dataset.
type SQLiteSource struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path.
func NewSQLite(path string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, eris.Wrapf(err, "sqlite: ping %s", path)
	}
	return &SQLiteSource{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// CountyAttributes returns every row of the county reference table.
func (s *SQLiteSource) CountyAttributes(ctx context.Context) ([]model.RawCounty, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT county_fips, county, state_id, state_name, population, density, income_household_median
		 FROM us_counties
		 ORDER BY county_fips`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query us_counties")
	}
	defer rows.Close()

	var out []model.RawCounty
	for rows.Next() {
		var c model.RawCounty
		if err := rows.Scan(&c.FIPS, &c.Name, &c.StateCode, &c.StateName, &c.Population, &c.Density, &c.MedianIncome); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan us_counties row")
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate us_counties")
	}
	return out, nil
}

// CountyDeaths returns the cumulative case and death counts for the
// snapshot date.
func (s *SQLiteSource) CountyDeaths(ctx context.Context, date string) ([]model.RawDeaths, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT county_fips, cases, deaths
		 FROM covid_county_daily
		 WHERE date = ?
		 ORDER BY county_fips`, date)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: query covid_county_daily for %s", date)
	}
	defer rows.Close()

	var out []model.RawDeaths
	for rows.Next() {
		d := model.RawDeaths{Date: date}
		if err := rows.Scan(&d.FIPS, &d.Cases, &d.Deaths); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan covid_county_daily row")
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate covid_county_daily")
	}
	return out, nil
}
