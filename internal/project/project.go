// Package project saves and restores annotation work as .gat2 JSON files.
package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grovetools/capsgat/internal/transcript"
	grovelogging "github.com/grovetools/core/logging"
)

// Extension is the file extension of project files.
const Extension = ".gat2"

// ErrEmptyProject is returned when saving a document without blocks.
var ErrEmptyProject = errors.New("nothing to save: transcript has no blocks")

// Project is a document plus the identity of the file it lives in.
type Project struct {
	ID       uuid.UUID
	SavedAt  time.Time
	Document *transcript.Document
}

// block is the on-disk block. Files from older editor versions kept the
// SRT milliseconds apart from an HH:MM:SS start/end time.
type block struct {
	transcript.Block
	StartMs *int `json:"start_ms,omitempty"`
	EndMs   *int `json:"end_ms,omitempty"`
}

type file struct {
	ID                uuid.UUID `json:"project_id"`
	SavedAt           time.Time `json:"saved_at"`
	Blocks            []block   `json:"srt_blocks"`
	CurrentBlockIndex int       `json:"current_block_index"`
	Speakers          []string  `json:"speakers"`
	SourceFile        string    `json:"source_file"`
	FileHasTimestamps *bool     `json:"file_has_timestamps,omitempty"`
}

// New wraps a freshly imported document.
func New(doc *transcript.Document) *Project {
	return &Project{ID: uuid.New(), Document: doc}
}

// Marshal encodes the project with two-space indentation and without HTML
// escaping, so GAT2 brackets and non-ASCII text stay readable.
func (p *Project) Marshal() ([]byte, error) {
	doc := p.Document
	if doc == nil || doc.Len() == 0 {
		return nil, ErrEmptyProject
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	hasTimestamps := doc.HasTimestamps
	f := file{
		ID:                p.ID,
		SavedAt:           p.SavedAt,
		Blocks:            make([]block, len(doc.Blocks)),
		CurrentBlockIndex: doc.Current,
		Speakers:          doc.Speakers,
		SourceFile:        doc.SourceFile,
		FileHasTimestamps: &hasTimestamps,
	}
	for i, b := range doc.Blocks {
		f.Blocks[i] = block{Block: b}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("failed to encode project: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a project file and checks the cursor and speaker list.
// Blocks pointing at a speaker past the list are loaded unassigned.
func Unmarshal(data []byte) (*Project, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}
	if f.Blocks == nil {
		return nil, fmt.Errorf("project has no srt_blocks field")
	}

	doc := &transcript.Document{
		Blocks:        make([]transcript.Block, len(f.Blocks)),
		Speakers:      f.Speakers,
		Current:       f.CurrentBlockIndex,
		HasTimestamps: true,
		SourceFile:    f.SourceFile,
	}
	if f.FileHasTimestamps != nil {
		doc.HasTimestamps = *f.FileHasTimestamps
	}
	if len(doc.Speakers) == 0 {
		doc.Speakers = append([]string(nil), transcript.DefaultSpeakers...)
	}
	for i, b := range f.Blocks {
		b.StartTime = withMillis(b.StartTime, b.StartMs)
		b.EndTime = withMillis(b.EndTime, b.EndMs)
		doc.Blocks[i] = b.Block
	}
	dropDanglingSpeakers(doc)
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}

	return &Project{ID: f.ID, SavedAt: f.SavedAt, Document: doc}, nil
}

// dropDanglingSpeakers unassigns blocks whose speaker is past the speaker
// list. Older editors shrank the list without clearing assignments.
func dropDanglingSpeakers(doc *transcript.Document) {
	dropped := 0
	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		if b.Speaker != nil && (*b.Speaker < 0 || *b.Speaker >= len(doc.Speakers)) {
			b.Speaker = nil
			dropped++
		}
	}
	if dropped == 0 {
		return
	}
	doc.RecomputeTurns()
	grovelogging.NewLogger("project").
		WithField("blocks", dropped).
		WithField("speakers", len(doc.Speakers)).
		Warn("Unassigned blocks with an unknown speaker")
}

func withMillis(ts string, ms *int) string {
	if ts == "" || ms == nil || strings.Contains(ts, ",") {
		return ts
	}
	return fmt.Sprintf("%s,%03d", ts, *ms)
}

// Save writes the project to path, stamping the save time. The file is
// written next to its destination first and renamed into place.
func (p *Project) Save(path string) error {
	prev := p.SavedAt
	p.SavedAt = time.Now().UTC().Truncate(time.Second)
	data, err := p.Marshal()
	if err != nil {
		p.SavedAt = prev
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".capsgat-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set project permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write project: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	grovelogging.NewLogger("project").
		WithField("file", path).
		WithField("blocks", p.Document.Len()).
		Debug("Saved project")
	return nil
}

// Load reads a project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project: %w", err)
	}
	p, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return p, nil
}
