// Package formatters renders annotated transcripts as GAT2 plain text and
// HTML.
package formatters

import (
	"strconv"
	"strings"

	"github.com/grovetools/capsgat/internal/transcript"
	"github.com/mattn/go-runewidth"
)

// Gap between the time, line number, speaker and text columns.
const columnGap = "   "

// minSpeakerWidth is the narrowest speaker column, wide enough for "A:".
const minSpeakerWidth = 2

// Options control the text layout.
type Options struct {
	IncludeTimestamps bool
}

// emitted reports whether a block produces an output line: speaker-assigned
// speech, or a marker with text.
func emitted(b transcript.Block) bool {
	if b.IsMarker() {
		return b.Text != ""
	}
	return b.Assigned()
}

// Text renders the document as numbered GAT2 transcript lines:
//
//	1   A:   so (.) what now
//	2        hm
//	3   B:   yes
//
// The first column holds the turn's start time when timestamps are on, then
// a zero-padded line number, the speaker label on turn starts, and the
// block text. Unassigned speech blocks are left out.
func Text(doc *transcript.Document, opts Options) string {
	total := 0
	speakerWidth := minSpeakerWidth
	for _, b := range doc.Blocks {
		if !emitted(b) {
			continue
		}
		total++
		if !b.IsMarker() && b.TurnStart {
			speakerWidth = max(speakerWidth, runewidth.StringWidth(doc.SpeakerLabel(b)+":"))
		}
	}
	digits := len(strconv.Itoa(total))

	timePad := strings.Repeat(" ", transcript.GATTimeWidth) + columnGap
	speakerPad := strings.Repeat(" ", speakerWidth) + columnGap

	lines := make([]string, 0, total)
	n := 1
	for _, b := range doc.Blocks {
		if !emitted(b) {
			continue
		}

		var line strings.Builder
		num := padNumber(n, digits)
		n++

		if b.TurnStart && !b.IsMarker() {
			if opts.IncludeTimestamps {
				if t := transcript.GATTime(b.StartTime); t != "" {
					line.WriteString(t + columnGap)
				} else {
					line.WriteString(timePad)
				}
			}
			line.WriteString(num + columnGap)
			line.WriteString(runewidth.FillRight(doc.SpeakerLabel(b)+":", speakerWidth) + columnGap)
		} else {
			if opts.IncludeTimestamps {
				line.WriteString(timePad)
			}
			line.WriteString(num + columnGap + speakerPad)
		}
		line.WriteString(b.Text)
		lines = append(lines, line.String())
	}

	if len(lines) > 0 {
		lines[0] = strings.TrimLeft(lines[0], " ")
	}
	return strings.Join(lines, "\n")
}

func padNumber(n, digits int) string {
	s := strconv.Itoa(n)
	if len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	}
	return s
}
