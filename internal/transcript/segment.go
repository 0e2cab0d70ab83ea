package transcript

import "strings"

// Segment is a run of tokens grouped by AutoSegment.
type Segment struct {
	Text      string
	StartTime string
	EndTime   string
}

// AutoSegment groups tokens into segments at pauses. A pause is a gap
// between consecutive token timestamps larger than factor times the mean
// gap. A segment cut at a pause ends halfway into it; the last segment ends
// one mean gap after its final token.
//
// Mismatched inputs or fewer than two tokens produce a single untimed
// segment of all tokens.
func AutoSegment(tokens []string, times []float64, factor float64) []Segment {
	if len(tokens) != len(times) || len(tokens) < 2 {
		return []Segment{{Text: strings.Join(tokens, "")}}
	}
	if factor <= 0 {
		factor = DefaultGapFactor
	}

	var total float64
	for i := 1; i < len(times); i++ {
		total += times[i] - times[i-1]
	}
	mean := total / float64(len(times)-1)
	threshold := mean * factor

	var segments []Segment
	var cur strings.Builder
	start := times[0]

	for i, tok := range tokens {
		cur.WriteString(tok)
		if i == len(tokens)-1 {
			break
		}
		gap := times[i+1] - times[i]
		if gap > threshold {
			segments = append(segments, Segment{
				Text:      cur.String(),
				StartTime: SecondsToTimestamp(start),
				EndTime:   SecondsToTimestamp(times[i] + gap/2),
			})
			cur.Reset()
			start = times[i+1]
		}
	}

	segments = append(segments, Segment{
		Text:      cur.String(),
		StartTime: SecondsToTimestamp(start),
		EndTime:   SecondsToTimestamp(times[len(times)-1] + mean),
	})
	return segments
}
