package source

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/county-mortality-cli/internal/fetcher"
	"github.com/sells-group/county-mortality-cli/internal/geo"
	"github.com/sells-group/county-mortality-cli/internal/model"
)

// CSVDeathsSource reads the death snapshot from a remote NYT-style
// cumulative CSV (date,county,state,fips,cases,deaths) and keeps only the
// rows for the requested date.
type CSVDeathsSource struct {
	f   fetcher.Fetcher
	url string
}

// NewCSVDeaths creates a CSVDeathsSource for the given URL.
func NewCSVDeaths(f fetcher.Fetcher, url string) *CSVDeathsSource {
	return &CSVDeathsSource{f: f, url: url}
}

// deathsRow mirrors the CSV header via csvutil tags. Cases and deaths are
// pointers so empty cells survive to validation as missing values.
type deathsRow struct {
	Date   string `csv:"date"`
	County string `csv:"county"`
	State  string `csv:"state"`
	FIPS   string `csv:"fips"`
	Cases  *int64 `csv:"cases"`
	Deaths *int64 `csv:"deaths"`
}

// CountyDeaths downloads the CSV and returns the rows for the snapshot date.
func (s *CSVDeathsSource) CountyDeaths(ctx context.Context, date string) ([]model.RawDeaths, error) {
	body, err := s.f.Download(ctx, s.url)
	if err != nil {
		return nil, eris.Wrapf(err, "source: download deaths csv %s", s.url)
	}
	defer body.Close() //nolint:errcheck

	dec, err := csvutil.NewDecoder(csv.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "source: create csv decoder")
	}

	var out []model.RawDeaths
	var noFIPS int
	for {
		var row deathsRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrap(err, "source: decode deaths csv row")
		}

		if row.Date != date {
			continue
		}
		if row.FIPS == "" {
			// "Unknown" county rows carry no identifier and cannot join.
			noFIPS++
			continue
		}

		fips, err := geo.ParseFIPS(row.FIPS)
		if err != nil {
			return nil, eris.Wrapf(err, "source: parse fips %q", row.FIPS)
		}

		out = append(out, model.RawDeaths{
			FIPS:   fips,
			Cases:  row.Cases,
			Deaths: row.Deaths,
			Date:   row.Date,
		})
	}

	if noFIPS > 0 {
		zap.L().Warn("dropped death rows without a FIPS identifier",
			zap.String("date", date),
			zap.Int("rows", noFIPS),
		)
	}
	if len(out) == 0 {
		return nil, eris.Errorf("source: deaths csv has no rows for date %s", date)
	}

	return out, nil
}
