package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grovetools/capsgat/internal/transcript"
	"github.com/spf13/cobra"
)

func parsePosition(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, arg)
	}
	return n, nil
}

func newSplitCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <position>",
		Short: "Split a block after the given character",
		Long:  "Split a block into two after <position> characters. Both halves are trimmed and must keep some text; the new block keeps the speaker and timing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := parsePosition(args[0], "split position")
			if err != nil {
				return err
			}
			return opts.runEdit(cmd, "split", func(doc *transcript.Document, pos int) error {
				return doc.Split(pos, at)
			})
		},
	}
	addProjectFlags(cmd, opts, true)
	return cmd
}

func newMergeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge a block with the one after it",
		Long:  "Append the next block to this one. Only allowed when this block has no speaker or both blocks have the same speaker.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runEdit(cmd, "merge", func(doc *transcript.Document, pos int) error {
				return doc.Merge(pos)
			})
		},
	}
	addProjectFlags(cmd, opts, true)
	return cmd
}

func newEditCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <text>...",
		Short: "Replace the text of a block",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return opts.runEdit(cmd, "edit", func(doc *transcript.Document, pos int) error {
				return doc.Edit(pos, text)
			})
		},
	}
	addProjectFlags(cmd, opts, true)
	return cmd
}

func newEmptyCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "empty",
		Short: "Insert an empty line after a block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runEdit(cmd, "empty", func(doc *transcript.Document, pos int) error {
				return doc.InsertEmpty(pos)
			})
		},
	}
	addProjectFlags(cmd, opts, true)
	return cmd
}
