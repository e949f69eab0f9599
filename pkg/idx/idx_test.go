package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New()
	b := New()

	require.False(t, a.IsZero())
	require.False(t, b.IsZero())
	require.NotEqual(t, a, b)

	// Monotonic source: IDs generated in order sort in order.
	require.Less(t, a.String(), b.String())
}

func TestParse(t *testing.T) {
	id := New()

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	t.Run("rejects empty", func(t *testing.T) {
		_, err := Parse("")
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := Parse("not-a-ulid")
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		parsed, err := Parse("  " + id.String() + "  ")
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})
}

func TestTime(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)

	// ULID timestamps have millisecond resolution.
	require.WithinDuration(t, at, id.Time(), time.Millisecond)
	require.True(t, Zero.Time().IsZero())
}
