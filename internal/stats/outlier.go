package stats

import (
	"slices"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

// Fences holds the IQR fences for one metric.
type Fences struct {
	Q1    float64 `json:"q1"`
	Q3    float64 `json:"q3"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// IQRFences computes Q1, Q3, and the multiplier*IQR fences for a metric.
// Quantiles use linear interpolation.
func IQRFences(values []float64, multiplier float64) (Fences, error) {
	if len(values) == 0 {
		return Fences{}, eris.New("stats: no values for IQR fences")
	}
	if multiplier < 0 {
		return Fences{}, eris.Errorf("stats: negative IQR multiplier %.2f", multiplier)
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	q1 := stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	q3 := stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	iqr := q3 - q1

	return Fences{
		Q1:    q1,
		Q3:    q3,
		Lower: q1 - multiplier*iqr,
		Upper: q3 + multiplier*iqr,
	}, nil
}

// Outside reports whether the value falls outside the fences.
func (f Fences) Outside(v float64) bool {
	return v < f.Lower || v > f.Upper
}

// Outliers flags each county whose death rate or median income falls
// outside its own metric's fences. The two tests are independent and
// univariate; a county is an outlier if either triggers.
func Outliers(records []model.CountyRecord, multiplier float64) (map[int]bool, error) {
	rates := make([]float64, len(records))
	incomes := make([]float64, len(records))
	for i, r := range records {
		rates[i] = r.DeathRate
		incomes[i] = r.MedianIncome
	}

	rateFences, err := IQRFences(rates, multiplier)
	if err != nil {
		return nil, eris.Wrap(err, "stats: death rate fences")
	}
	incomeFences, err := IQRFences(incomes, multiplier)
	if err != nil {
		return nil, eris.Wrap(err, "stats: median income fences")
	}

	flags := make(map[int]bool)
	for _, r := range records {
		if rateFences.Outside(r.DeathRate) || incomeFences.Outside(r.MedianIncome) {
			flags[r.FIPS] = true
		}
	}

	zap.L().Info("flagged outlier counties",
		zap.Float64("multiplier", multiplier),
		zap.Int("outliers", len(flags)),
		zap.Int("counties", len(records)),
	)
	return flags, nil
}
