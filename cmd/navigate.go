package cmd

import (
	"fmt"
	"strconv"

	"github.com/grovetools/capsgat/internal/transcript"
	"github.com/spf13/cobra"
)

func newNavigateCmds(opts *rootOptions) []*cobra.Command {
	next := &cobra.Command{
		Use:   "next",
		Short: "Move to the next block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runEdit(cmd, "next", func(doc *transcript.Document, _ int) error {
				doc.Next()
				return nil
			})
		},
	}
	addProjectFlags(next, opts, false)

	prev := &cobra.Command{
		Use:   "prev",
		Short: "Move to the previous block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runEdit(cmd, "prev", func(doc *transcript.Document, _ int) error {
				doc.Prev()
				return nil
			})
		},
	}
	addProjectFlags(prev, opts, false)

	gotoCmd := &cobra.Command{
		Use:   "goto <block>",
		Short: "Move to a block by its 1-based position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid block position %q", args[0])
			}
			return opts.runEdit(cmd, "goto", func(doc *transcript.Document, _ int) error {
				return doc.Goto(n - 1)
			})
		},
	}
	addProjectFlags(gotoCmd, opts, false)

	nextUnassigned := &cobra.Command{
		Use:   "next-unassigned",
		Short: "Move to the next block without a speaker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runEdit(cmd, "next-unassigned", func(doc *transcript.Document, _ int) error {
				if !doc.FindNextUnassigned() {
					fmt.Fprintln(cmd.OutOrStdout(), "All blocks have a speaker.")
				}
				return nil
			})
		},
	}
	addProjectFlags(nextUnassigned, opts, false)

	return []*cobra.Command{next, prev, gotoCmd, nextUnassigned}
}
