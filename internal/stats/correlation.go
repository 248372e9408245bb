// Package stats computes the headline statistics of the report: the
// income/mortality Pearson correlation with its significance test, and
// IQR-rule outlier detection over the joined dataset.
package stats

import (
	"math"

	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Correlation holds a Pearson correlation result with its two-sided
// significance test and confidence interval.
type Correlation struct {
	R          float64 `json:"r"`
	PValue     float64 `json:"p_value"`
	CILow      float64 `json:"ci_low"`
	CIHigh     float64 `json:"ci_high"`
	Confidence float64 `json:"confidence"`
	N          int     `json:"n"`
}

// Pearson computes the product-moment correlation between x and y, the
// two-sided p-value from the t distribution with n-2 degrees of freedom,
// and a Fisher z-transform confidence interval at the given level.
func Pearson(x, y []float64, confidence float64) (*Correlation, error) {
	if len(x) != len(y) {
		return nil, eris.Errorf("stats: length mismatch: %d vs %d", len(x), len(y))
	}
	n := len(x)
	if n < 4 {
		return nil, eris.Errorf("stats: need at least 4 observations, got %d", n)
	}
	if confidence <= 0 || confidence >= 1 {
		return nil, eris.Errorf("stats: confidence level %.3f out of (0, 1)", confidence)
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return nil, eris.New("stats: correlation undefined (zero variance input)")
	}

	// t-test: t = r * sqrt((n-2) / (1-r^2)), two-sided.
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * tDist.Survival(math.Abs(t))
	if p > 1 {
		p = 1
	}

	// Fisher z interval: atanh(r) +/- z * 1/sqrt(n-3), mapped back with tanh.
	z := math.Atanh(r)
	se := 1 / math.Sqrt(float64(n-3))
	q := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)

	return &Correlation{
		R:          r,
		PValue:     p,
		CILow:      math.Tanh(z - q*se),
		CIHigh:     math.Tanh(z + q*se),
		Confidence: confidence,
		N:          n,
	}, nil
}
