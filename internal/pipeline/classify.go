package pipeline

import (
	"go.uber.org/zap"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

// Classify assigns one of the four income/mortality quadrants to a single
// record. The comparison is strict less-than on both axes: a county sitting
// exactly on a threshold lands in the High bucket. Pure function of the
// record and the two thresholds.
func Classify(r model.CountyRecord, ref model.NationalReference) model.Category {
	lowIncome := r.MedianIncome < ref.MedianIncome
	lowDeath := r.DeathRate < ref.MortalityRate

	switch {
	case lowIncome && lowDeath:
		return model.CategoryLowIncomeLowDeath
	case lowIncome && !lowDeath:
		return model.CategoryLowIncomeHighDeath
	case !lowIncome && lowDeath:
		return model.CategoryHighIncomeLowDeath
	default:
		return model.CategoryHighIncomeHighDeath
	}
}

// ClassifyAll assigns a category to every record in place and returns the
// per-quadrant tallies in ordinal order.
func ClassifyAll(records []model.CountyRecord, ref model.NationalReference) map[model.Category]int {
	counts := make(map[model.Category]int, len(model.Categories))
	for i := range records {
		records[i].Category = Classify(records[i], ref)
		counts[records[i].Category]++
	}

	zap.L().Info("classified counties",
		zap.Float64("national_median_income", ref.MedianIncome),
		zap.Float64("national_mortality_rate", ref.MortalityRate),
		zap.Int("low_income_low_death", counts[model.CategoryLowIncomeLowDeath]),
		zap.Int("low_income_high_death", counts[model.CategoryLowIncomeHighDeath]),
		zap.Int("high_income_low_death", counts[model.CategoryHighIncomeLowDeath]),
		zap.Int("high_income_high_death", counts[model.CategoryHighIncomeHighDeath]),
	)
	return counts
}
