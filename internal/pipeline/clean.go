// Package pipeline implements the core analysis: cleaning, joining, rate
// derivation, quadrant classification, and orchestration of the sources,
// statistics, and renderers around them.
package pipeline

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

// territoryCodes are the non-state territory codes excluded from the
// analysis.
var territoryCodes = map[string]bool{
	"AS": true,
	"GU": true,
	"MP": true,
	"PR": true,
	"VI": true,
}

// CleanAttributes filters out territory rows and validates that no retained
// field is missing. A missing value is fatal and names the field, since the
// downstream formulas assume completeness.
func CleanAttributes(raw []model.RawCounty) ([]model.CountyAttributes, error) {
	out := make([]model.CountyAttributes, 0, len(raw))
	var territories int

	for _, r := range raw {
		if r.StateCode != nil && territoryCodes[*r.StateCode] {
			territories++
			continue
		}

		switch {
		case r.Name == nil:
			return nil, missingValue("county", r.FIPS)
		case r.StateCode == nil:
			return nil, missingValue("state_id", r.FIPS)
		case r.StateName == nil:
			return nil, missingValue("state_name", r.FIPS)
		case r.Population == nil:
			return nil, missingValue("population", r.FIPS)
		case r.Density == nil:
			return nil, missingValue("density", r.FIPS)
		case r.MedianIncome == nil:
			return nil, missingValue("income_household_median", r.FIPS)
		}

		if *r.Population < 0 {
			return nil, eris.Errorf("pipeline: negative population %d for county %d in us_counties", *r.Population, r.FIPS)
		}
		if *r.MedianIncome < 0 {
			return nil, eris.Errorf("pipeline: negative median income %.2f for county %d in us_counties", *r.MedianIncome, r.FIPS)
		}

		out = append(out, model.CountyAttributes{
			FIPS:         r.FIPS,
			Name:         *r.Name,
			StateCode:    *r.StateCode,
			StateName:    *r.StateName,
			Population:   *r.Population,
			Density:      *r.Density,
			MedianIncome: *r.MedianIncome,
		})
	}

	zap.L().Info("cleaned county attributes",
		zap.Int("kept", len(out)),
		zap.Int("territories_removed", territories),
	)
	return out, nil
}

// CleanDeaths validates the death snapshot rows.
func CleanDeaths(raw []model.RawDeaths) ([]model.CountyDeaths, error) {
	out := make([]model.CountyDeaths, 0, len(raw))
	for _, r := range raw {
		switch {
		case r.Cases == nil:
			return nil, eris.Errorf("pipeline: missing value in field cases of covid_county_daily for county %d", r.FIPS)
		case r.Deaths == nil:
			return nil, eris.Errorf("pipeline: missing value in field deaths of covid_county_daily for county %d", r.FIPS)
		}
		if *r.Cases < 0 || *r.Deaths < 0 {
			return nil, eris.Errorf("pipeline: negative count for county %d in covid_county_daily (cases=%d deaths=%d)", r.FIPS, *r.Cases, *r.Deaths)
		}
		out = append(out, model.CountyDeaths{
			FIPS:   r.FIPS,
			Cases:  *r.Cases,
			Deaths: *r.Deaths,
			Date:   r.Date,
		})
	}
	return out, nil
}

func missingValue(field string, fips int) error {
	return eris.Errorf("pipeline: missing value in field %s of us_counties for county %d", field, fips)
}
