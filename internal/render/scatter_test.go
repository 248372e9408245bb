package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

func scatterRecords() []model.CountyRecord {
	return []model.CountyRecord{
		{FIPS: 1001, Name: "Autauga", StateCode: "AL", MedianIncome: 57982, DeathRate: 192.31},
		{FIPS: 6037, Name: "Los Angeles", StateCode: "CA", MedianIncome: 71358, DeathRate: 350.12},
		{FIPS: 36061, Name: "New York", StateCode: "NY", MedianIncome: 93651, DeathRate: 280.45},
	}
}

func TestScatter(t *testing.T) {
	var buf bytes.Buffer
	err := Scatter(ScatterInput{
		Records:  scatterRecords(),
		Outliers: map[int]bool{6037: true},
		Highlights: map[int]string{
			36061: "New York, NY",
		},
		Date: "2023-03-23",
	}, &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Counties")
	assert.Contains(t, html, "IQR outliers")
	assert.Contains(t, html, "Highlighted")
	assert.Contains(t, html, "Autauga, AL")
	assert.Contains(t, html, "New York, NY")
	assert.Contains(t, html, "2023-03-23")
	assert.Contains(t, html, "Median household income")
}

func TestScatter_NoOutliersOrHighlights(t *testing.T) {
	var buf bytes.Buffer
	err := Scatter(ScatterInput{Records: scatterRecords(), Date: "2023-03-23"}, &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Counties")
	assert.NotContains(t, html, "IQR outliers")
	assert.NotContains(t, html, "Highlighted")
}

func TestScatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := Scatter(ScatterInput{}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no records")
}

func TestWriteScatter(t *testing.T) {
	path := t.TempDir() + "/scatter.html"
	err := WriteScatter(ScatterInput{Records: scatterRecords(), Date: "2023-03-23"}, path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
