package kessan

import "testing"

// row is a shorthand to build a disclosure from raw column values.
func row(values map[string]string) Disclosure { return NewDisclosure(values) }

func TestResolveNumber(t *testing.T) {
	ds := Disclosures{
		row(map[string]string{"Revenue": "100", "EPS": "40"}),
		row(map[string]string{"Revenue": "200", "EPS": ""}),
	}

	// The most recent parseable value wins, independently per field.
	if v, ok := ds.ResolveNumber(Revenue); !ok || v != 200 {
		t.Errorf("ResolveNumber(Revenue) = %v, %v want 200, true", v, ok)
	}
	// EPS is blank on the newest row: resolution continues to the older one.
	if v, ok := ds.ResolveNumber(EPS); !ok || v != 40 {
		t.Errorf("ResolveNumber(EPS) = %v, %v want 40, true", v, ok)
	}
	// A field no row carries resolves to not-found.
	if _, ok := ds.ResolveNumber(BPS); ok {
		t.Errorf("ResolveNumber(BPS) = _, true want false")
	}
}

func TestResolveNumberZeroExcluded(t *testing.T) {
	ds := Disclosures{
		row(map[string]string{"EPS": "40", "Profit": "5"}),
		row(map[string]string{"EPS": "0", "Profit": "0"}),
	}

	// EPS is zero-excluded: a 0 on the most recent row reads as absent and
	// the scan continues to the older non-zero value.
	if v, ok := ds.ResolveNumber(EPS); !ok || v != 40 {
		t.Errorf("ResolveNumber(EPS) = %v, %v want 40, true", v, ok)
	}
	// Profit is not: 0 is a valid resolved value.
	if v, ok := ds.ResolveNumber(Profit); !ok || v != 0 {
		t.Errorf("ResolveNumber(Profit) = %v, %v want 0, true", v, ok)
	}
}

func TestResolveNumberUnparsable(t *testing.T) {
	ds := Disclosures{
		row(map[string]string{"Revenue": "100"}),
		row(map[string]string{"Revenue": "n/a"}),
	}
	// An unparsable token reads as absent, never as an error.
	if v, ok := ds.ResolveNumber(Revenue); !ok || v != 100 {
		t.Errorf("ResolveNumber(Revenue) = %v, %v want 100, true", v, ok)
	}
}

func TestResolveText(t *testing.T) {
	ds := Disclosures{
		row(map[string]string{"CurFYEn": "2023-03-31"}),
		row(map[string]string{"CurFYEn": "  "}),
	}
	if v, ok := ds.ResolveText(CurrentFYEnd); !ok || v != "2023-03-31" {
		t.Errorf("ResolveText(CurrentFYEnd) = %q, %v want \"2023-03-31\", true", v, ok)
	}
	if _, ok := ds.ResolveText(NextFYEnd); ok {
		t.Errorf("ResolveText(NextFYEnd) = _, true want false")
	}
}

func TestDisclosedOn(t *testing.T) {
	d := row(map[string]string{"DiscDate": "2023-03-31"})
	on, ok := d.DisclosedOn()
	if !ok || on.String() != "2023-03-31" {
		t.Errorf("DisclosedOn() = %v, %v want 2023-03-31, true", on, ok)
	}

	if _, ok := row(map[string]string{"DiscDate": ""}).DisclosedOn(); ok {
		t.Errorf("DisclosedOn() on an empty date = _, true want false")
	}
	if _, ok := row(map[string]string{}).DisclosedOn(); ok {
		t.Errorf("DisclosedOn() on a missing date = _, true want false")
	}
}
