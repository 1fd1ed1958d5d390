package kessan

import (
	"strconv"
	"strings"

	"github.com/etnz/kessan/date"
)

// Disclosure is one row of a security's periodic disclosure file: a raw
// column→token mapping read as published, parsed lazily field by field.
type Disclosure struct {
	values map[string]string
}

// NewDisclosure wraps a raw row. The map is kept as is; tokens are trimmed
// and parsed on access.
func NewDisclosure(values map[string]string) Disclosure {
	return Disclosure{values: values}
}

// Number parses the field's token to a number. It returns false for a
// missing, empty or unparsable token. A 0 is returned as any other value:
// zero exclusion is a resolution concern, not a parsing one.
func (d Disclosure) Number(f Field) (float64, bool) {
	raw := strings.TrimSpace(d.values[f.Column])
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Text returns the field's token, or false if it is empty.
func (d Disclosure) Text(f Field) (string, bool) {
	raw := strings.TrimSpace(d.values[f.Column])
	return raw, raw != ""
}

// DisclosedOn returns the parsed disclosure date of the row, or false when
// the row carries no usable disclosure date.
func (d Disclosure) DisclosedOn() (date.Date, bool) {
	raw, ok := d.Text(DisclosedDate)
	if !ok {
		return date.Date{}, false
	}
	on, err := date.Parse(raw)
	if err != nil {
		return date.Date{}, false
	}
	return on, true
}

// Disclosures is the ordered disclosure series of one security.
//
// The series is kept in the order the caller supplied it (ascending file
// order); it is never re-sorted here. Resolution scans from the last record
// backward, so the order is load-bearing.
type Disclosures []Disclosure

// ResolveNumber scans the series from the most recent record backward and
// returns the first value that parses to a number. For a zero-excluded field
// an exact 0 is treated as absent and the scan continues to older records.
//
// Each field resolves independently: a snapshot may mix values whose origin
// disclosure dates differ field by field. That maximizes data availability
// per field over forcing a single "most recent complete disclosure".
func (ds Disclosures) ResolveNumber(f Field) (float64, bool) {
	for i := len(ds) - 1; i >= 0; i-- {
		v, ok := ds[i].Number(f)
		if !ok {
			continue
		}
		if f.ZeroExcluded && v == 0 {
			continue
		}
		return v, true
	}
	return 0, false
}

// ResolveText scans the series from the most recent record backward and
// returns the first non-empty value of the field.
func (ds Disclosures) ResolveText(f Field) (string, bool) {
	for i := len(ds) - 1; i >= 0; i-- {
		if v, ok := ds[i].Text(f); ok {
			return v, true
		}
	}
	return "", false
}
