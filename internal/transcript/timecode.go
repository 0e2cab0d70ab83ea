package transcript

import (
	"fmt"
	"math"
	"strings"
)

// MsToTimestamp converts milliseconds to the SRT HH:MM:SS,mmm format.
func MsToTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	h := ms / 3600000
	ms %= 3600000
	m := ms / 60000
	ms %= 60000
	s := ms / 1000
	ms %= 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// SecondsToTimestamp converts fractional seconds to HH:MM:SS,mmm.
// Milliseconds are truncated, not rounded.
func SecondsToTimestamp(sec float64) string {
	if sec < 0 || math.IsNaN(sec) {
		sec = 0
	}
	whole := math.Floor(sec)
	h := int64(whole) / 3600
	m := (int64(whole) % 3600) / 60
	s := int64(whole) % 60
	ms := int64((sec - whole) * 1000)

	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// GATTime renders a block timestamp the way GAT2 transcripts show it:
// {HH:MM:SS}, dropping milliseconds. It returns "" for an empty timestamp.
func GATTime(ts string) string {
	if ts == "" {
		return ""
	}
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return ""
	}
	sec, _, _ := strings.Cut(parts[2], ",")
	sec, _, _ = strings.Cut(sec, ".")

	return fmt.Sprintf("{%s:%s:%s}", parts[0], parts[1], sec)
}

// GATTimeWidth is the column width of a rendered GATTime value.
const GATTimeWidth = len("{00:00:00}")
