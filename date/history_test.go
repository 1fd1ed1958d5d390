package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[float64])
	d1, v1 := New(2025, 07, 01), 100.0
	d2, v2 := New(2024, 07, 01), 90.0

	// Append two values in reverse chronological order and check that the
	// series is sorted at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
}

func TestAppendOverwrites(t *testing.T) {
	h := new(History[float64])
	on := New(2023, 3, 30)
	h.Append(on, 1000)
	h.Append(on, 1010)

	if h.Len() != 1 {
		t.Fatalf("Len() = %v want 1", h.Len())
	}
	if v, _ := h.Get(on); v != 1010 {
		t.Errorf("Get() = %v want 1010, the last write must win", v)
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(New(2023, 3, 30), 1000)
	h.Append(New(2023, 6, 30), 1100)

	// Exact date match.
	if v, ok := h.ValueAsOf(New(2023, 3, 30)); !ok || v != 1000 {
		t.Errorf("ValueAsOf(2023-03-30) = %v, %v want 1000, true", v, ok)
	}
	// In between: the greatest date strictly before.
	if v, ok := h.ValueAsOf(New(2023, 3, 31)); !ok || v != 1000 {
		t.Errorf("ValueAsOf(2023-03-31) = %v, %v want 1000, true", v, ok)
	}
	// After the maximum: the maximum date's value.
	if v, ok := h.ValueAsOf(New(2024, 1, 1)); !ok || v != 1100 {
		t.Errorf("ValueAsOf(2024-01-01) = %v, %v want 1100, true", v, ok)
	}
	// Before the minimum: not found.
	if _, ok := h.ValueAsOf(New(2023, 1, 1)); ok {
		t.Errorf("ValueAsOf(2023-01-01) = _, true want false")
	}
}

func TestLatest(t *testing.T) {
	h := new(History[float64])
	if day, v := h.Latest(); !day.IsZero() || v != 0 {
		t.Errorf("empty Latest() = %v, %v want zero values", day, v)
	}

	h.Append(New(2023, 6, 30), 1100)
	h.Append(New(2023, 3, 30), 1000)
	day, v := h.Latest()
	if day != New(2023, 6, 30) || v != 1100 {
		t.Errorf("Latest() = %v, %v want 2023-06-30, 1100", day, v)
	}
}
