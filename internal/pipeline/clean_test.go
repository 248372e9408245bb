package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

func ptr[T any](v T) *T { return &v }

func rawCounty(fips int, state string) model.RawCounty {
	return model.RawCounty{
		FIPS:         fips,
		Name:         ptr("Some County"),
		StateCode:    ptr(state),
		StateName:    ptr("Some State"),
		Population:   ptr(int64(100000)),
		Density:      ptr(25.5),
		MedianIncome: ptr(55000.0),
	}
}

func TestCleanAttributes_ExcludesTerritories(t *testing.T) {
	raw := []model.RawCounty{
		rawCounty(1001, "AL"),
		rawCounty(72001, "PR"),
		rawCounty(66010, "GU"),
		rawCounty(60010, "AS"),
		rawCounty(69085, "MP"),
		rawCounty(78010, "VI"),
		rawCounty(6037, "CA"),
	}

	cleaned, err := CleanAttributes(raw)
	require.NoError(t, err)
	require.Len(t, cleaned, 2)
	for _, c := range cleaned {
		assert.NotContains(t, []string{"AS", "GU", "MP", "PR", "VI"}, c.StateCode)
	}
}

func TestCleanAttributes_TerritoryExcludedEvenWithMissingFields(t *testing.T) {
	// A PR row must never surface, not even as a validation error.
	pr := model.RawCounty{FIPS: 72001, StateCode: ptr("PR")}

	cleaned, err := CleanAttributes([]model.RawCounty{rawCounty(1001, "AL"), pr})
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	assert.Equal(t, 1001, cleaned[0].FIPS)
}

func TestCleanAttributes_MissingValueNamesField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.RawCounty)
		field  string
	}{
		{"name", func(c *model.RawCounty) { c.Name = nil }, "county"},
		{"state code", func(c *model.RawCounty) { c.StateCode = nil }, "state_id"},
		{"state name", func(c *model.RawCounty) { c.StateName = nil }, "state_name"},
		{"population", func(c *model.RawCounty) { c.Population = nil }, "population"},
		{"density", func(c *model.RawCounty) { c.Density = nil }, "density"},
		{"income", func(c *model.RawCounty) { c.MedianIncome = nil }, "income_household_median"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawCounty(1001, "AL")
			tt.mutate(&raw)

			_, err := CleanAttributes([]model.RawCounty{raw})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
			assert.Contains(t, err.Error(), "us_counties")
		})
	}
}

func TestCleanAttributes_NegativeValues(t *testing.T) {
	raw := rawCounty(1001, "AL")
	raw.Population = ptr(int64(-5))
	_, err := CleanAttributes([]model.RawCounty{raw})
	assert.Error(t, err)

	raw = rawCounty(1001, "AL")
	raw.MedianIncome = ptr(-1.0)
	_, err = CleanAttributes([]model.RawCounty{raw})
	assert.Error(t, err)
}

func TestCleanDeaths(t *testing.T) {
	cleaned, err := CleanDeaths([]model.RawDeaths{
		{FIPS: 1001, Cases: ptr(int64(120)), Deaths: ptr(int64(4)), Date: "2023-03-23"},
	})
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	assert.Equal(t, int64(4), cleaned[0].Deaths)
}

func TestCleanDeaths_MissingValue(t *testing.T) {
	_, err := CleanDeaths([]model.RawDeaths{{FIPS: 1001, Cases: ptr(int64(10))}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deaths")
	assert.Contains(t, err.Error(), "covid_county_daily")
}

func TestCleanDeaths_NegativeCount(t *testing.T) {
	_, err := CleanDeaths([]model.RawDeaths{
		{FIPS: 1001, Cases: ptr(int64(-1)), Deaths: ptr(int64(0))},
	})
	assert.Error(t, err)
}
