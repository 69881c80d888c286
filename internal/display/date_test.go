package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSpanishLongDate(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)
	require.Equal(t, "sábado, 17 de octubre de 2026", SpanishLongDate(day))

	day = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "miércoles, 1 de enero de 2025", SpanishLongDate(day))

	day = time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC)
	require.Equal(t, "jueves, 31 de diciembre de 2026", SpanishLongDate(day))
}
