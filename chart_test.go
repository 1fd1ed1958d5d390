package kessan

import (
	"testing"

	"github.com/etnz/kessan/date"
)

func TestMonthlyCloses(t *testing.T) {
	prices := new(date.History[float64])
	prices.Append(date.MustParse("2023-03-01"), 980)
	prices.Append(date.MustParse("2023-03-30"), 1000)
	prices.Append(date.MustParse("2023-04-03"), 1020)
	prices.Append(date.MustParse("2023-06-30"), 1100)

	months := MonthlyCloses(prices)
	want := []MonthlyClose{
		{Month: "2023-03", Close: 1000},
		{Month: "2023-04", Close: 1020},
		{Month: "2023-06", Close: 1100},
	}
	if len(months) != len(want) {
		t.Fatalf("MonthlyCloses() returned %d months want %d", len(months), len(want))
	}
	for i := range want {
		if months[i] != want[i] {
			t.Errorf("months[%d] = %v want %v", i, months[i], want[i])
		}
	}
}

func TestMonthlyClosesEmpty(t *testing.T) {
	if months := MonthlyCloses(new(date.History[float64])); len(months) != 0 {
		t.Errorf("MonthlyCloses(empty) returned %d months want 0", len(months))
	}
}

func TestMonthlyCloseMarshalJSON(t *testing.T) {
	got, err := MonthlyClose{Month: "2023-03", Close: 1000}.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error: %v", err)
	}
	if want := `["2023-03",1000]`; string(got) != want {
		t.Errorf("MarshalJSON() = %s want %s", got, want)
	}
}
