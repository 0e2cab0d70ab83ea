package transcript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutoSegment(t *testing.T) {
	t.Run("single pause", func(t *testing.T) {
		got := AutoSegment([]string{"a", "b", "c", "d"}, []float64{0, 0.25, 0.5, 4.5}, DefaultGapFactor)
		require.Equal(t, []Segment{
			{Text: "abc", StartTime: "00:00:00,000", EndTime: "00:00:02,500"},
			{Text: "d", StartTime: "00:00:04,500", EndTime: "00:00:06,000"},
		}, got)
	})

	t.Run("even spacing", func(t *testing.T) {
		got := AutoSegment([]string{"x", "y", "z"}, []float64{1, 2, 3}, DefaultGapFactor)
		require.Equal(t, []Segment{
			{Text: "xyz", StartTime: "00:00:01,000", EndTime: "00:00:04,000"},
		}, got)
	})

	t.Run("lower factor splits more", func(t *testing.T) {
		// Gaps 1, 1, 2: mean 4/3, so 1.25x cuts only the last gap.
		got := AutoSegment([]string{"a", "b", "c", "d"}, []float64{0, 1, 2, 4}, 1.25)
		require.Len(t, got, 2)
		require.Equal(t, "abc", got[0].Text)
		require.Equal(t, "00:00:03,000", got[0].EndTime)
	})

	t.Run("too few tokens", func(t *testing.T) {
		got := AutoSegment([]string{"solo"}, []float64{2}, DefaultGapFactor)
		require.Equal(t, []Segment{{Text: "solo"}}, got)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		got := AutoSegment([]string{"a", "b"}, []float64{0}, DefaultGapFactor)
		require.Equal(t, []Segment{{Text: "ab"}}, got)
	})
}
