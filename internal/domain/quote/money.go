package quote

import (
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
)

// FormatPEN renders an amount in soles for display ("S/80.00").
func FormatPEN(amount float64) string {
	return money.New(int64(math.Round(amount*100)), money.PEN).Display()
}

// ParsePrice coerces raw widget input to a number. Non-numeric input falls
// back to zero instead of failing the edit.
func ParsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
