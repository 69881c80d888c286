package display

import (
	"time"

	"github.com/goodsign/monday"
)

const longDateLayout = "Monday, 2 de January de 2006"

// SpanishLongDate renders t as "sábado, 17 de octubre de 2026".
func SpanishLongDate(t time.Time) string {
	return monday.Format(t, longDateLayout, monday.LocaleEsES)
}
