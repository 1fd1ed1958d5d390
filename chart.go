package kessan

import (
	"encoding/json"

	"github.com/etnz/kessan/date"
)

// MonthlyClose is one representative close per calendar month, for charting.
type MonthlyClose struct {
	Month string // "YYYY-MM"
	Close float64
}

// MarshalJSON encodes the point as a [yearMonth, close] pair.
func (m MonthlyClose) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{m.Month, m.Close})
}

// MonthlyCloses reduces the daily price series to the last close of each
// calendar month. The series iterates in ascending date order, so the last
// close encountered per month is the month's final trading day. Months come
// out in first-seen order.
func MonthlyCloses(prices *date.History[float64]) []MonthlyClose {
	var months []MonthlyClose
	index := make(map[string]int)
	for on, close := range prices.Values() {
		ym := on.YearMonth()
		if i, ok := index[ym]; ok {
			months[i].Close = close
			continue
		}
		index[ym] = len(months)
		months = append(months, MonthlyClose{Month: ym, Close: close})
	}
	return months
}
