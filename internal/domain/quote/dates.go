package quote

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Quotes persist their date as DD/MM/YYYY while the edit widget works with
// YYYY-MM-DD. Both conversions only reorder the three components; they never
// check that the result is a sensible calendar date. That asymmetry is
// intentional and round-trips exactly.

// ToWidgetDate remaps a stored DD/MM/YYYY date to YYYY-MM-DD. Anything that
// does not split into three parts yields "".
func ToWidgetDate(storedDate string) string {
	parts := strings.Split(storedDate, "/")
	if len(parts) != 3 {
		return ""
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// ToStoredDate remaps a widget YYYY-MM-DD date back to DD/MM/YYYY.
func ToStoredDate(widgetDate string) string {
	parts := strings.Split(widgetDate, "-")
	if len(parts) != 3 {
		return ""
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// LongDate renders a widget YYYY-MM-DD date the way the printed document
// shows it: "2 de enero de 2026". Unparseable components yield "".
// Out-of-range day or month values are normalized onto the calendar, not
// rejected.
func LongDate(widgetDate string) string {
	parts := strings.Split(widgetDate, "-")
	if len(parts) != 3 {
		return ""
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return ""
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return ""
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return ""
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
