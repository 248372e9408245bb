package pipeline

import (
	"math"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

// Join inner-joins cleaned county attributes with the death snapshot on
// FIPS and derives the per-100k death rate for every surviving row. Rows
// present on only one side are dropped; both unmatched counts are reported
// because a mismatch here silently removes a county from the analysis.
// Rows with zero population cannot have a rate and are excluded as a
// data-quality measure rather than propagating Inf into the statistics.
// The result is ordered by FIPS ascending.
func Join(attrs []model.CountyAttributes, deaths []model.CountyDeaths) ([]model.CountyRecord, error) {
	byFIPS := make(map[int]model.CountyDeaths, len(deaths))
	for _, d := range deaths {
		byFIPS[d.FIPS] = d
	}

	out := make([]model.CountyRecord, 0, len(attrs))
	var unmatchedAttrs, zeroPop int
	for _, a := range attrs {
		d, ok := byFIPS[a.FIPS]
		if !ok {
			unmatchedAttrs++
			continue
		}
		delete(byFIPS, a.FIPS)

		if a.Population == 0 {
			zeroPop++
			zap.L().Warn("excluding county with zero population",
				zap.Int("fips", a.FIPS),
				zap.String("county", a.Name),
			)
			continue
		}

		out = append(out, model.CountyRecord{
			FIPS:         a.FIPS,
			Name:         a.Name,
			StateCode:    a.StateCode,
			StateName:    a.StateName,
			Population:   a.Population,
			Density:      a.Density,
			MedianIncome: a.MedianIncome,
			Cases:        d.Cases,
			Deaths:       d.Deaths,
			DeathRate:    DeathRate(d.Deaths, a.Population),
		})
	}

	if len(out) == 0 {
		return nil, eris.New("pipeline: join produced zero rows")
	}

	sort.Slice(out, func(i, j int) bool { return out[i].FIPS < out[j].FIPS })

	zap.L().Info("joined county tables",
		zap.Int("rows", len(out)),
		zap.Int("unmatched_attributes", unmatchedAttrs),
		zap.Int("unmatched_deaths", len(byFIPS)),
		zap.Int("zero_population_excluded", zeroPop),
	)
	return out, nil
}

// DeathRate returns deaths per 100,000 population rounded to two decimals.
// Population must be positive; Join excludes zero-population rows before
// this is called.
func DeathRate(deaths, population int64) float64 {
	return math.Round(float64(deaths)/float64(population)*100000*100) / 100
}
