package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/capsgat/internal/project"
	"github.com/grovetools/capsgat/internal/transcript"
	"github.com/spf13/cobra"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var (
		output    string
		jsonMode  string
		gapFactor float64
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "import <source>",
		Short: "Create a project from an SRT, TSV, JSON or text transcript",
		Long: `Create a .gat2 project from a source transcript. The format follows the file
extension: .srt, .tsv (start_ms, end_ms, text), .json (token/timestamp output,
Whisper segments, or block lists) or .txt (one block per line).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			if output == "" {
				output = strings.TrimSuffix(source, filepath.Ext(source)) + project.Extension
			}
			if !force {
				if _, err := os.Stat(output); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", output)
				} else if !errors.Is(err, os.ErrNotExist) {
					return err
				}
			}

			if jsonMode == "" {
				jsonMode = opts.cfg.JSONMode()
			}
			if gapFactor == 0 {
				gapFactor = opts.cfg.Import.GapFactor
			}
			mode := transcript.JSONMode(jsonMode)
			switch mode {
			case transcript.JSONOneBlock, transcript.JSONTokens, transcript.JSONAutoSegment:
			default:
				return fmt.Errorf("unknown JSON mode %q (want one_block, tokens or auto_segment)", jsonMode)
			}

			parser := transcript.NewParser(transcript.ParseOptions{JSONMode: mode, GapFactor: gapFactor})
			doc, err := parser.ParseFile(source)
			if err != nil {
				return err
			}
			if doc.Len() == 0 {
				return fmt.Errorf("%s: %w", source, transcript.ErrNoBlocks)
			}
			if len(opts.cfg.Speakers) > 0 {
				doc.Speakers = append([]string(nil), opts.cfg.Speakers...)
			}

			p := project.New(doc)
			if err := p.Save(output); err != nil {
				return err
			}

			timing := "with timestamps"
			if !doc.HasTimestamps {
				timing = "without timestamps"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d blocks %s from %s into %s\n", doc.Len(), timing, source, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Project file to create (default: <source>.gat2)")
	cmd.Flags().StringVar(&jsonMode, "json-mode", "", "Token JSON import: one_block, tokens or auto_segment (default from config)")
	cmd.Flags().Float64Var(&gapFactor, "gap-factor", 0, "Pause threshold for auto_segment as a multiple of the mean token gap (default 2.5)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing project file")

	return cmd
}
