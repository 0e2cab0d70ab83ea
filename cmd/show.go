package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/capsgat/internal/display"
	"github.com/grovetools/capsgat/internal/transcript"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var (
		all     bool
		context int
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the blocks around the current one",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.loadProject()
			if err != nil {
				return err
			}
			doc := p.Document
			out := cmd.OutOrStdout()

			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				start, end := 0, doc.Len()
				if !all {
					start, end = display.Window(doc, contextSize(opts, context))
				}
				data, err := json.MarshalIndent(struct {
					Current  int                `json:"current"`
					Speakers []string           `json:"speakers"`
					Blocks   []transcript.Block `json:"blocks"`
				}{doc.Current + 1, doc.Speakers, doc.Blocks[start:end]}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal blocks: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if all {
				return display.PrintBlocksTable(doc, out)
			}
			if err := display.RenderSpeakers(out, doc); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return display.RenderContext(out, doc, contextSize(opts, context))
		},
	}

	addProjectFlags(cmd, opts, false)
	cmd.Flags().BoolVar(&all, "all", false, "List every block as a table")
	cmd.Flags().IntVar(&context, "context", 0, "Blocks to show on each side of the current one (default from config, 5)")

	return cmd
}

func contextSize(opts *rootOptions, flag int) int {
	if flag > 0 {
		return flag
	}
	return opts.cfg.ContextSize()
}

func newUnassignedCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unassigned",
		Short: "List blocks without a speaker",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.loadProject()
			if err != nil {
				return err
			}
			blocks := p.Document.Unassigned()

			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				if blocks == nil {
					blocks = []transcript.UnassignedBlock{}
				}
				data, err := json.MarshalIndent(blocks, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal blocks: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if len(blocks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "All blocks have a speaker.")
				return nil
			}
			return display.PrintUnassignedTable(blocks, cmd.OutOrStdout())
		},
	}

	addProjectFlags(cmd, opts, false)

	return cmd
}
