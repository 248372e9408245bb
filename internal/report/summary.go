// Package report prints the run summary to the terminal.
package report

import (
	"io"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/county-mortality-cli/internal/model"
	"github.com/sells-group/county-mortality-cli/internal/stats"
)

// Summary holds the figures printed at the end of an analysis run.
type Summary struct {
	Date            string
	Counties        int
	TotalPopulation int64
	TotalDeaths     int64
	Reference       model.NationalReference
	QuadrantCounts  map[model.Category]int
	Correlation     *stats.Correlation
	OutlierCount    int
}

// Write prints the summary with locale-aware number formatting.
func Write(w io.Writer, s Summary) error {
	p := message.NewPrinter(language.AmericanEnglish)

	if _, err := p.Fprintf(w, "County mortality analysis, snapshot %s\n\n", s.Date); err != nil {
		return eris.Wrap(err, "report: write summary")
	}

	p.Fprintf(w, "Counties analyzed:        %d\n", s.Counties)
	p.Fprintf(w, "Total population:         %d\n", s.TotalPopulation)
	p.Fprintf(w, "Total deaths:             %d\n", s.TotalDeaths)
	p.Fprintf(w, "National mortality rate:  %.2f per 100,000\n", s.Reference.MortalityRate)
	p.Fprintf(w, "National median income:   $%.0f\n\n", s.Reference.MedianIncome)

	p.Fprintln(w, "Quadrants:")
	for _, cat := range model.Categories {
		p.Fprintf(w, "  %-30s %d\n", string(cat), s.QuadrantCounts[cat])
	}

	if c := s.Correlation; c != nil {
		p.Fprintf(w, "\nIncome vs. death rate: r = %.4f (%.0f%% CI %.4f to %.4f), p = %.4g, n = %d\n",
			c.R, c.Confidence*100, c.CILow, c.CIHigh, c.PValue, c.N)
	}
	p.Fprintf(w, "IQR outlier counties:     %d\n", s.OutlierCount)

	return nil
}
