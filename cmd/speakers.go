package cmd

import (
	"fmt"
	"strconv"

	"github.com/grovetools/capsgat/internal/display"
	"github.com/grovetools/capsgat/internal/transcript"
	"github.com/spf13/cobra"
)

func newSpeakersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speakers [count]",
		Short: "List speakers or change how many there are",
		Long:  "Without arguments, list the speakers. With a count from 2 to 8, add speakers (named by letter) or drop the last ones; blocks of dropped speakers become unassigned.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				p, err := opts.loadProject()
				if err != nil {
					return err
				}
				return display.RenderSpeakers(cmd.OutOrStdout(), p.Document)
			}

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid speaker count %q", args[0])
			}
			return opts.runEdit(cmd, "speakers", func(doc *transcript.Document, _ int) error {
				return doc.SetSpeakerCount(n)
			})
		},
	}
	addProjectFlags(cmd, opts, false)

	rename := &cobra.Command{
		Use:   "rename <speaker> <name>",
		Short: "Rename a speaker",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runEdit(cmd, "rename", func(doc *transcript.Document, _ int) error {
				idx, err := resolveSpeaker(doc, args[0])
				if err != nil {
					return err
				}
				return doc.RenameSpeaker(idx, args[1])
			})
		},
	}
	addProjectFlags(rename, opts, false)
	cmd.AddCommand(rename)

	return cmd
}
