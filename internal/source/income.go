package source

import (
	"context"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/county-mortality-cli/internal/fetcher"
)

// IncomeWorkbook reads the national median household income from a
// spreadsheet of (region, median income) rows. Exactly one row is consumed:
// the national aggregate identified by its region label.
type IncomeWorkbook struct {
	path   string
	sheet  string
	region string
}

// NewIncomeWorkbook creates an IncomeWorkbook reader.
func NewIncomeWorkbook(path, sheet, region string) *IncomeWorkbook {
	return &IncomeWorkbook{path: path, sheet: sheet, region: region}
}

// NationalMedianIncome returns the median income for the configured region.
func (w *IncomeWorkbook) NationalMedianIncome(_ context.Context) (float64, error) {
	rows, err := fetcher.ReadXLSX(w.path, fetcher.XLSXOptions{SheetName: w.sheet, SkipRows: 1})
	if err != nil {
		return 0, eris.Wrapf(err, "source: read income workbook %s", w.path)
	}

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(row[0]), w.region) {
			continue
		}
		raw := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(row[1]))
		income, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, eris.Wrapf(err, "source: parse median income %q for region %q", row[1], w.region)
		}
		if income < 0 {
			return 0, eris.Errorf("source: negative median income %.2f for region %q", income, w.region)
		}
		return income, nil
	}

	return 0, eris.Errorf("source: region %q not found in income workbook %s", w.region, w.path)
}
