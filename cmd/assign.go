package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grovetools/capsgat/internal/transcript"
	"github.com/spf13/cobra"
)

// resolveSpeaker accepts a 1-based speaker number or a speaker name.
func resolveSpeaker(doc *transcript.Document, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(doc.Speakers) {
			return 0, fmt.Errorf("speaker %d of %d: %w", n, len(doc.Speakers), transcript.ErrOutOfRange)
		}
		return n - 1, nil
	}
	for i, name := range doc.Speakers {
		if strings.EqualFold(name, arg) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown speaker %q (have %s)", arg, strings.Join(doc.Speakers, ", "))
}

func newAssignCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <speaker>",
		Short: "Assign a speaker to a block and move to the next unassigned one",
		Long:  "Assign a speaker, given by number (1-based) or name, to the current block or --block. Turn starts are recomputed and the cursor moves to the next unassigned block.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runEdit(cmd, "assign", func(doc *transcript.Document, pos int) error {
				speaker, err := resolveSpeaker(doc, args[0])
				if err != nil {
					return err
				}
				return doc.Assign(pos, speaker)
			})
		},
	}
	addProjectFlags(cmd, opts, true)
	return cmd
}

func newUnassignCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unassign",
		Short: "Remove the speaker from a block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runEdit(cmd, "unassign", func(doc *transcript.Document, pos int) error {
				return doc.Unassign(pos)
			})
		},
	}
	addProjectFlags(cmd, opts, true)
	return cmd
}
