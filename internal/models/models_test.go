package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 4.5, SamplePlace.AverageRating(), 1e-9)

	p := SamplePlace
	p.Reviews = []Review{{Rating: 4}, {Rating: 5}, {Rating: 4}}
	require.InDelta(t, 4.3, p.AverageRating(), 1e-9)
}

func TestSampleThreadsAreStable(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 17, 12, 30, 0, 0, time.UTC)
	a := SampleThreads(now)
	b := SampleThreads(now)
	require.Equal(t, a, b)
	require.Len(t, a, 3)

	last, ok := a[0].Last()
	require.True(t, ok)
	require.Equal(t, "¡Nos vemos en el punto!", last.Text)

	_, ok = ChatThread{}.Last()
	require.False(t, ok)
}

func TestNewChatMessageHasUniqueIDs(t *testing.T) {
	t.Parallel()

	now := time.Now()
	a := NewChatMessage("Ana", "hola", false, now)
	b := NewChatMessage("Ana", "hola", false, now)
	require.NotEqual(t, a.ID, b.ID)
}

func TestRelativeStamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 17, 12, 30, 0, 0, time.UTC) // sábado

	require.Equal(t, "11:50", RelativeStamp(now.Add(-40*time.Minute), now))
	require.Equal(t, "Ayer", RelativeStamp(now.Add(-26*time.Hour), now))
	require.Equal(t, "Lun", RelativeStamp(now.Add(-5*24*time.Hour), now))
	require.Equal(t, "01/10/2026", RelativeStamp(now.Add(-16*24*time.Hour), now))
}
