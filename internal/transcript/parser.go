package transcript

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported transcript format")
	ErrNoTranscriptData  = errors.New("no recognizable transcript data")
)

// Format identifies a source transcript format.
type Format string

const (
	FormatSRT  Format = "srt"
	FormatText Format = "txt"
	FormatJSON Format = "json"
	FormatTSV  Format = "tsv"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FormatSRT, nil
	case ".txt":
		return FormatText, nil
	case ".json":
		return FormatJSON, nil
	case ".tsv":
		return FormatTSV, nil
	default:
		return "", fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedFormat)
	}
}

// JSONMode chooses how a token/timestamp JSON transcript is split into
// blocks.
type JSONMode string

const (
	JSONOneBlock    JSONMode = "one_block"
	JSONTokens      JSONMode = "tokens"
	JSONAutoSegment JSONMode = "auto_segment"
)

// DefaultGapFactor is the multiple of the mean token gap that ends a segment.
const DefaultGapFactor = 2.5

// ParseOptions tune the readers.
type ParseOptions struct {
	JSONMode  JSONMode
	GapFactor float64
}

func (o ParseOptions) withDefaults() ParseOptions {
	if o.JSONMode == "" {
		o.JSONMode = JSONOneBlock
	}
	if o.GapFactor <= 0 {
		o.GapFactor = DefaultGapFactor
	}
	return o
}

// Parser reads source transcripts into documents.
type Parser struct {
	opts   ParseOptions
	logger *logrus.Entry
}

// NewParser creates a parser with the given options.
func NewParser(opts ParseOptions) *Parser {
	return &Parser{
		opts:   opts.withDefaults(),
		logger: grovelogging.NewLogger("transcript-parser"),
	}
}

// ParseFile reads path and parses it according to its extension.
func (p *Parser) ParseFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	doc, err := p.Parse(format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	doc.SourceFile = path

	p.logger.WithFields(logrus.Fields{
		"file":   path,
		"format": format,
		"blocks": doc.Len(),
	}).Info("Parsed transcript")
	return doc, nil
}

// Parse converts raw file content in the given format to a document.
func (p *Parser) Parse(format Format, data []byte) (*Document, error) {
	content := normalizeNewlines(string(data))

	switch format {
	case FormatSRT:
		return NewDocument(p.parseSRT(content), true), nil
	case FormatText:
		return NewDocument(parseText(content), false), nil
	case FormatTSV:
		blocks, err := parseTSV(content)
		if err != nil {
			return nil, err
		}
		return NewDocument(blocks, true), nil
	case FormatJSON:
		blocks, err := p.parseJSON([]byte(content))
		if err != nil {
			return nil, err
		}
		return NewDocument(blocks, hasAnyStartTime(blocks)), nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}

func normalizeNewlines(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func hasAnyStartTime(blocks []Block) bool {
	for _, b := range blocks {
		if b.StartTime != "" {
			return true
		}
	}
	return false
}
