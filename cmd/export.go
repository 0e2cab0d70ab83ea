package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/capsgat/internal/formatters"
	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"
)

var ulogExport = grovelogging.NewLogger("cmd.export")

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		output       string
		formatFlag   string
		noTimestamps bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the aligned GAT2 transcript as HTML or plain text",
		Long:  "Export the speaker-assigned blocks as a numbered, column-aligned GAT2 transcript. Without --output the transcript is written to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.loadProject()
			if err != nil {
				return err
			}
			doc := p.Document

			if ext := strings.TrimPrefix(filepath.Ext(output), "."); formatFlag == "" && ext != "" {
				if f, err := formatters.ParseFormat(ext); err == nil {
					formatFlag = string(f)
				}
			}
			if formatFlag == "" {
				formatFlag = opts.cfg.ExportFormat()
			}
			format, err := formatters.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			fopts := formatters.Options{IncludeTimestamps: opts.cfg.ExportTimestamps() && !noTimestamps}
			if fopts.IncludeTimestamps && !doc.HasTimestamps {
				ulogExport.Info("Transcript has no timestamps; exporting without them")
			}
			rendered, err := formatters.Render(doc, format, fopts)
			if err != nil {
				return err
			}

			if output == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), rendered+"\n")
				return err
			}
			if filepath.Ext(output) == "" {
				output += format.Extension()
			}
			if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transcript exported to %s\n", output)
			return nil
		},
	}

	addProjectFlags(cmd, opts, false)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (format from its extension unless --format is set)")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Export format: html or txt (default from config, html)")
	cmd.Flags().BoolVar(&noTimestamps, "no-timestamps", false, "Leave out the {HH:MM:SS} turn times")

	return cmd
}
