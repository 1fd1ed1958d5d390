package renderer

import (
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
)

// JPY formats a value as Japanese yen, or "-" when absent. The yen has no
// minor unit, so the value rounds to the whole yen.
func JPY(v *float64) string {
	if v == nil {
		return "-"
	}
	return money.New(int64(math.Round(*v)), money.JPY).Display()
}

// Num formats a ratio value with 2 decimals, or "-" when absent.
func Num(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
