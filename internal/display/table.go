package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/grovetools/capsgat/internal/transcript"
)

// PrintUnassignedTable prints the blocks still waiting for a speaker.
func PrintUnassignedTable(blocks []transcript.UnassignedBlock, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "BLOCK\tTEXT")
	for _, b := range blocks {
		fmt.Fprintf(w, "%d\t%s\n", b.Position, b.Preview)
	}
	return w.Flush()
}

// PrintBlocksTable prints every block with its speaker and timing.
func PrintBlocksTable(doc *transcript.Document, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "BLOCK\tINDEX\tSTART\tEND\tSPEAKER\tTURN\tTEXT")
	for i, b := range doc.Blocks {
		speaker := doc.SpeakerLabel(b)
		switch {
		case b.IsPause:
			speaker = "(pause)"
		case b.IsComment:
			speaker = "(comment)"
		case b.IsEmpty:
			speaker = "(empty)"
		}
		turn := ""
		if b.TurnStart {
			turn = "*"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, b.Index, b.StartTime, b.EndTime, speaker, turn, b.Preview(60))
	}
	return w.Flush()
}
