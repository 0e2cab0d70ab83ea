// Package capsgat exposes transcript import, GAT2 annotation and export for
// use outside the capsgat command.
package capsgat

import (
	"github.com/grovetools/capsgat/internal/formatters"
	"github.com/grovetools/capsgat/internal/project"
	"github.com/grovetools/capsgat/internal/transcript"
)

type (
	// Document is an annotated transcript with its editor operations.
	Document = transcript.Document
	// Block is a single transcript segment.
	Block = transcript.Block
	// ParseOptions tune how source transcripts are read.
	ParseOptions = transcript.ParseOptions
	// Project is a document saved as a .gat2 file.
	Project = project.Project
	// Format is an export format.
	Format = formatters.Format
)

const (
	FormatHTML = formatters.FormatHTML
	FormatText = formatters.FormatText
)

// ImportFile parses an SRT, TSV, JSON or text transcript.
func ImportFile(path string, opts ParseOptions) (*Document, error) {
	return transcript.NewParser(opts).ParseFile(path)
}

// NewProject wraps a document for saving.
func NewProject(doc *Document) *Project {
	return project.New(doc)
}

// LoadProject reads a .gat2 project file.
func LoadProject(path string) (*Project, error) {
	return project.Load(path)
}

// Export renders the document's speaker-assigned blocks as a GAT2 transcript.
func Export(doc *Document, format Format, includeTimestamps bool) (string, error) {
	return formatters.Render(doc, format, formatters.Options{IncludeTimestamps: includeTimestamps})
}
