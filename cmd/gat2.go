package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/grovetools/capsgat/internal/transcript"
	"github.com/spf13/cobra"
)

// placementFlags binds --at and --new-line.
type placementFlags struct {
	at      int
	newLine bool
}

func (f *placementFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.at, "at", 0, "Character position for inline insertion (default: start of the text)")
	cmd.Flags().BoolVarP(&f.newLine, "new-line", "n", false, "Put the symbol on its own line after the block")
	cmd.MarkFlagsMutuallyExclusive("at", "new-line")
}

func (f *placementFlags) placement() transcript.Placement {
	if f.newLine {
		return transcript.OwnLine()
	}
	return transcript.Inline(f.at)
}

func newPauseCmd(opts *rootOptions) *cobra.Command {
	var place placementFlags

	cmd := &cobra.Command{
		Use:   "pause <symbol|tenths>",
		Short: "Insert a pause or breath symbol",
		Long: `Insert a GAT2 pause or breath symbol: (.) (-) (--) (---) °h °hh °hhh h° hh° hhh°.
A number from 1 to 50 inserts a measured pause in tenths of a second, e.g. 8 -> (0.8).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol, err := pauseSymbol(args[0])
			if err != nil {
				return err
			}
			return opts.runEdit(cmd, "pause", func(doc *transcript.Document, pos int) error {
				return doc.InsertSymbol(pos, symbol, place.placement())
			})
		},
	}
	addProjectFlags(cmd, opts, true)
	place.register(cmd)
	return cmd
}

func pauseSymbol(arg string) (string, error) {
	if tenths, err := strconv.Atoi(arg); err == nil {
		return transcript.MeasuredPause(tenths)
	}
	sym, ok := transcript.LookupSymbol(arg)
	if !ok {
		return "", fmt.Errorf("unknown symbol %q (see 'capsgat symbols')", arg)
	}
	if !sym.Placeable() {
		return "", fmt.Errorf("%s (%s) is not a pause or breath symbol", sym.Notation, sym.Description)
	}
	return sym.Notation, nil
}

func newCommentCmd(opts *rootOptions) *cobra.Command {
	var place placementFlags

	cmd := &cobra.Command{
		Use:   "comment <text>...",
		Short: "Insert a ((comment))",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return opts.runEdit(cmd, "comment", func(doc *transcript.Document, pos int) error {
				return doc.InsertComment(pos, text, place.placement())
			})
		},
	}
	addProjectFlags(cmd, opts, true)
	place.register(cmd)
	return cmd
}

func newActionCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action <start> <end> <description>...",
		Short: "Annotate words with a non-verbal action",
		Long:  "Wrap the characters from <start> up to <end> as <<description> words>.",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := parseSelection(args[0], args[1])
			if err != nil {
				return err
			}
			desc := strings.Join(args[2:], " ")
			return opts.runEdit(cmd, "action", func(doc *transcript.Document, pos int) error {
				return doc.Action(pos, sel, desc)
			})
		},
	}
	addProjectFlags(cmd, opts, true)
	return cmd
}

func newOverlapCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overlap <start> <end> <prev-start> <prev-end>",
		Short: "Mark overlapping speech with the previous block",
		Long:  "Bracket characters <start>..<end> of this block and <prev-start>..<prev-end> of the previous block. The bracket in this block is indented to line up with the previous one.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := parseSelection(args[0], args[1])
			if err != nil {
				return err
			}
			prev, err := parseSelection(args[2], args[3])
			if err != nil {
				return err
			}
			return opts.runEdit(cmd, "overlap", func(doc *transcript.Document, pos int) error {
				return doc.Overlap(pos, cur, prev)
			})
		},
	}
	addProjectFlags(cmd, opts, true)
	return cmd
}

func parseSelection(start, end string) (transcript.Selection, error) {
	s, err := parsePosition(start, "selection start")
	if err != nil {
		return transcript.Selection{}, err
	}
	e, err := parsePosition(end, "selection end")
	if err != nil {
		return transcript.Selection{}, err
	}
	return transcript.Selection{Start: s, End: e}, nil
}

func newSymbolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the GAT2 symbols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "SYMBOL\tMEANING\tCOMMAND")
			for _, s := range transcript.Symbols {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Notation, s.Description, symbolCommand(s))
			}
			return w.Flush()
		},
	}
}

func symbolCommand(s transcript.Symbol) string {
	switch s.Kind {
	case transcript.KindMeasuredPause:
		return "pause <tenths>"
	case transcript.KindComment:
		return "comment <text>"
	case transcript.KindAction:
		return "action <start> <end> <description>"
	case transcript.KindOverlap:
		return "overlap <start> <end> <prev-start> <prev-end>"
	default:
		return "pause " + s.Notation
	}
}
