package pipeline

import (
	"slices"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

// FindByFIPS returns the joined record for a county identifier. Records are
// ordered by FIPS after Join, so this is a binary search.
func FindByFIPS(records []model.CountyRecord, fips int) (model.CountyRecord, bool) {
	i, ok := slices.BinarySearchFunc(records, fips, func(r model.CountyRecord, target int) int {
		return r.FIPS - target
	})
	if !ok {
		return model.CountyRecord{}, false
	}
	return records[i], true
}
