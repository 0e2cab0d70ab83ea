package cmd

import (
	"fmt"

	"github.com/grovetools/capsgat/internal/display"
	"github.com/grovetools/capsgat/internal/project"
	"github.com/grovetools/capsgat/internal/transcript"
	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"
)

var ulogEdit = grovelogging.NewLogger("cmd.edit")

// loadProject opens the project named by --project.
func (o *rootOptions) loadProject() (*project.Project, error) {
	if o.projectPath == "" {
		return nil, fmt.Errorf("no project given: use --project <file%s>", project.Extension)
	}
	return project.Load(o.projectPath)
}

// target resolves --block to a 0-based position, defaulting to the cursor.
func (o *rootOptions) target(doc *transcript.Document) (int, error) {
	if doc.Len() == 0 {
		return 0, transcript.ErrNoBlocks
	}
	if o.block == 0 {
		return doc.Current, nil
	}
	pos := o.block - 1
	if pos < 0 || pos >= doc.Len() {
		return 0, fmt.Errorf("block %d of %d: %w", o.block, doc.Len(), transcript.ErrOutOfRange)
	}
	return pos, nil
}

// editFunc applies one editor operation to the block at pos.
type editFunc func(doc *transcript.Document, pos int) error

// runEdit loads the project, applies fn, saves, and shows the new state.
// Operations that act on a specific block leave the cursor on it unless the
// operation itself moves the cursor.
func (o *rootOptions) runEdit(cmd *cobra.Command, op string, fn editFunc) error {
	p, err := o.loadProject()
	if err != nil {
		return err
	}
	doc := p.Document
	pos, err := o.target(doc)
	if err != nil {
		return err
	}
	if o.block != 0 {
		doc.Current = pos
	}

	if err := fn(doc, pos); err != nil {
		return fmt.Errorf("%s block %d: %w", op, pos+1, err)
	}
	if err := p.Save(o.projectPath); err != nil {
		return err
	}

	ulogEdit.WithField("op", op).
		WithField("block", pos+1).
		WithField("blocks", doc.Len()).
		Info("Applied edit")

	return display.RenderContext(cmd.OutOrStdout(), doc, o.cfg.ContextSize())
}
