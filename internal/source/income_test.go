package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeIncomeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	f := xlsx.NewFile()
	sheet, err := f.AddSheet("income")
	require.NoError(t, err)

	header := sheet.AddRow()
	header.AddCell().SetString("region")
	header.AddCell().SetString("median_income")

	for _, r := range rows {
		row := sheet.AddRow()
		for _, cell := range r {
			row.AddCell().SetString(cell)
		}
	}

	path := filepath.Join(t.TempDir(), "income.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestNationalMedianIncome(t *testing.T) {
	path := writeIncomeWorkbook(t, [][]string{
		{"Alabama", "54943"},
		{"United States", "70784"},
		{"Wyoming", "65204"},
	})

	income, err := NewIncomeWorkbook(path, "income", "United States").NationalMedianIncome(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 70784.0, income)
}

func TestNationalMedianIncome_FormattedValue(t *testing.T) {
	path := writeIncomeWorkbook(t, [][]string{{"United States", "$70,784"}})

	income, err := NewIncomeWorkbook(path, "income", "United States").NationalMedianIncome(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 70784.0, income)
}

func TestNationalMedianIncome_RegionNotFound(t *testing.T) {
	path := writeIncomeWorkbook(t, [][]string{{"Alabama", "54943"}})

	_, err := NewIncomeWorkbook(path, "income", "United States").NationalMedianIncome(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "United States")
}

func TestNationalMedianIncome_BadValue(t *testing.T) {
	path := writeIncomeWorkbook(t, [][]string{{"United States", "n/a"}})

	_, err := NewIncomeWorkbook(path, "income", "United States").NationalMedianIncome(context.Background())
	assert.Error(t, err)
}

func TestNationalMedianIncome_MissingFile(t *testing.T) {
	_, err := NewIncomeWorkbook("/nonexistent.xlsx", "income", "United States").NationalMedianIncome(context.Background())
	assert.Error(t, err)
}
