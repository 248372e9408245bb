package pipeline

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/county-mortality-cli/internal/model"
)

// Highlights is the fixed set of counties called out on the scatter plot
// for manual annotation, independent of the statistical outlier rule.
type Highlights struct {
	labels map[int]string
}

// NewHighlights builds a highlight set from bare FIPS codes. The label
// defaults to the FIPS code itself until a record supplies a county name.
func NewHighlights(fips []int) *Highlights {
	labels := make(map[int]string, len(fips))
	for _, f := range fips {
		labels[f] = strconv.Itoa(f)
	}
	return &Highlights{labels: labels}
}

// LoadHighlights reads a YAML file of FIPS → annotation label pairs and
// merges it over the configured set:
//
//	highlights:
//	  36061: "New York County, NY"
//	  6037: "Los Angeles County, CA"
func (h *Highlights) LoadHighlights(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "pipeline: read highlights file %s", path)
	}

	var wrapper struct {
		Highlights map[int]string `yaml:"highlights"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return eris.Wrap(err, "pipeline: parse highlights file")
	}

	for fips, label := range wrapper.Highlights {
		h.labels[fips] = label
	}
	return nil
}

// Has reports whether the county is in the highlight set.
func (h *Highlights) Has(fips int) bool {
	_, ok := h.labels[fips]
	return ok
}

// Label returns the annotation label for a highlighted county.
func (h *Highlights) Label(fips int) (string, bool) {
	label, ok := h.labels[fips]
	return label, ok
}

// ResolveNames replaces default numeric labels with "County, ST" looked up
// from the joined records. Labels set explicitly in the highlights file are
// left alone.
func (h *Highlights) ResolveNames(records []model.CountyRecord) {
	for fips, label := range h.labels {
		if label != strconv.Itoa(fips) {
			continue
		}
		if r, ok := FindByFIPS(records, fips); ok {
			h.labels[fips] = fmt.Sprintf("%s, %s", r.Name, r.StateCode)
		}
	}
}

// Labels returns a copy of the FIPS → annotation label map for the renderer.
func (h *Highlights) Labels() map[int]string {
	out := make(map[int]string, len(h.labels))
	for fips, label := range h.labels {
		out[fips] = label
	}
	return out
}

// Len returns the number of highlighted counties.
func (h *Highlights) Len() int {
	return len(h.labels)
}
