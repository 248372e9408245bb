// Package model defines the county records flowing through the analysis pipeline.
package model

// CountyAttributes holds the reference attributes for a single county,
// projected down from the wide source table to the fields the analysis needs.
type CountyAttributes struct {
	FIPS         int     `json:"county_fips"`
	Name         string  `json:"county"`
	StateCode    string  `json:"state_code"`
	StateName    string  `json:"state_name"`
	Population   int64   `json:"population"`
	Density      float64 `json:"density"`
	MedianIncome float64 `json:"income_household_median"`
}

// CountyDeaths holds the cumulative case and death counts for a single
// county on the snapshot date. One row per county; not a time series.
type CountyDeaths struct {
	FIPS   int    `json:"county_fips"`
	Cases  int64  `json:"cases"`
	Deaths int64  `json:"deaths"`
	Date   string `json:"date"`
}

// RawCounty is a row from the wide county reference table before cleaning.
// Fields other than the identifier are pointers so that missing values
// survive to validation instead of being silently zeroed.
type RawCounty struct {
	FIPS         int
	Name         *string
	StateCode    *string
	StateName    *string
	Population   *int64
	Density      *float64
	MedianIncome *float64
}

// RawDeaths is a row from the death snapshot table before cleaning.
type RawDeaths struct {
	FIPS   int
	Cases  *int64
	Deaths *int64
	Date   string
}

// CountyRecord is the joined record: county attributes plus the death
// snapshot and the two derived fields. DeathRate is per 100,000 population
// rounded to two decimals; Category is assigned by the classifier.
type CountyRecord struct {
	FIPS         int      `json:"county_fips"`
	Name         string   `json:"county"`
	StateCode    string   `json:"state_code"`
	StateName    string   `json:"state_name"`
	Population   int64    `json:"population"`
	Density      float64  `json:"density"`
	MedianIncome float64  `json:"income_household_median"`
	Cases        int64    `json:"cases"`
	Deaths       int64    `json:"deaths"`
	DeathRate    float64  `json:"death_rate"`
	Category     Category `json:"category,omitempty"`
}

// NationalReference holds the two scalar thresholds the classifier compares
// against. Both are computed once over the full dataset before
// classification begins.
type NationalReference struct {
	MedianIncome  float64 `json:"median_income"`
	MortalityRate float64 `json:"mortality_rate"`
}
