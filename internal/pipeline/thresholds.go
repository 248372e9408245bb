package pipeline

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

// NationalReference computes the two classification thresholds over the
// full joined dataset: the population-weighted national mortality rate
// (total deaths / total population, per 100k) and the national median
// income, which comes from the independent income source rather than the
// county table. Both are computed exactly once before classification.
func NationalReference(records []model.CountyRecord, medianIncome float64) (model.NationalReference, error) {
	if len(records) == 0 {
		return model.NationalReference{}, eris.New("pipeline: no records to compute national reference")
	}

	var totalDeaths, totalPop int64
	for _, r := range records {
		totalDeaths += r.Deaths
		totalPop += r.Population
	}
	if totalPop == 0 {
		return model.NationalReference{}, eris.New("pipeline: total population is zero")
	}

	return model.NationalReference{
		MedianIncome:  medianIncome,
		MortalityRate: float64(totalDeaths) / float64(totalPop) * 100000,
	}, nil
}
