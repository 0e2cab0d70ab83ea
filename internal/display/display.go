// Package display renders the working view of a transcript in the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/capsgat/internal/transcript"
	"github.com/grovetools/core/tui/theme"
)

// speakerColors returns the speaker palette in speaker order. Speakers past
// the palette share the muted colour.
func speakerColors() []lipgloss.TerminalColor {
	return []lipgloss.TerminalColor{
		theme.DefaultColors.Blue,
		theme.DefaultColors.Red,
		theme.DefaultColors.Green,
		theme.DefaultColors.Yellow,
		theme.DefaultColors.Violet,
		theme.DefaultColors.Orange,
		theme.DefaultColors.Cyan,
		theme.DefaultColors.Pink,
	}
}

var (
	currentStyle = lipgloss.NewStyle().Background(theme.DefaultColors.SelectedBackground).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(theme.DefaultColors.LightText).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText)
)

// SpeakerStyle returns the line style for speaker idx.
func SpeakerStyle(idx int) lipgloss.Style {
	colors := speakerColors()
	if idx < 0 || idx >= len(colors) {
		return mutedStyle
	}
	return lipgloss.NewStyle().Foreground(colors[idx])
}

// InfoLine describes the block under the cursor.
func InfoLine(doc *transcript.Document) string {
	b, err := doc.CurrentBlock()
	if err != nil {
		return "No block selected"
	}
	turn := " [CONTINUATION]"
	if b.TurnStart {
		turn = " [TURN START]"
	}
	return fmt.Sprintf("Block %d | Speaker: %s%s | Time: %s --> %s",
		b.Index, doc.SpeakerLabel(*b), turn, b.StartTime, b.EndTime)
}

// Window returns the half-open range of block positions shown around the
// cursor.
func Window(doc *transcript.Document, context int) (start, end int) {
	start = max(0, doc.Current-context)
	end = min(doc.Len(), doc.Current+context+1)
	return start, end
}

// RenderContext writes the blocks around the cursor, the current one marked
// with ">>", each coloured by speaker, followed by the position counter.
func RenderContext(w io.Writer, doc *transcript.Document, context int) error {
	if doc.Len() == 0 {
		_, err := fmt.Fprintln(w, "No content loaded")
		return err
	}

	var out strings.Builder
	out.WriteString(infoStyle.Render(InfoLine(doc)) + "\n\n")

	start, end := Window(doc, context)
	for i := start; i < end; i++ {
		b := doc.Blocks[i]
		prefix := "   "
		if i == doc.Current {
			prefix = ">> "
		}
		line := prefix + b.Text
		switch {
		case i == doc.Current:
			line = currentStyle.Render(line)
		case b.Speaker != nil:
			line = SpeakerStyle(*b.Speaker).Render(line)
		case b.IsMarker():
			line = mutedStyle.Render(line)
		}
		out.WriteString(line + "\n\n")
	}

	fmt.Fprintf(&out, "Current: %d/%d\n", doc.Current+1, doc.Len())
	_, err := io.WriteString(w, out.String())
	return err
}

// RenderSpeakers writes the speaker legend with the assignment key for each.
func RenderSpeakers(w io.Writer, doc *transcript.Document) error {
	var out strings.Builder
	for i, name := range doc.Speakers {
		out.WriteString(SpeakerStyle(i).Render(fmt.Sprintf(" %d: %s ", i+1, name)) + "\n")
	}
	_, err := io.WriteString(w, out.String())
	return err
}
