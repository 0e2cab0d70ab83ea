package transcript

import (
	"errors"
	"fmt"
)

var (
	ErrNoBlocks        = errors.New("transcript has no blocks")
	ErrOutOfRange      = errors.New("position out of range")
	ErrSpeakerMismatch = errors.New("blocks belong to different speakers")
	ErrEmptySelection  = errors.New("selection is empty")
	ErrInvalidSplit    = errors.New("split position leaves an empty block")
	ErrNeedsPrevious   = errors.New("operation requires a previous block")
)

// Document is an annotated transcript: its blocks, the speaker names and the
// position of the block being worked on.
type Document struct {
	Blocks        []Block
	Speakers      []string
	Current       int
	HasTimestamps bool
	SourceFile    string
}

// NewDocument wraps parsed blocks with the default speaker set.
func NewDocument(blocks []Block, hasTimestamps bool) *Document {
	speakers := make([]string, len(DefaultSpeakers))
	copy(speakers, DefaultSpeakers)
	return &Document{
		Blocks:        blocks,
		Speakers:      speakers,
		HasTimestamps: hasTimestamps,
	}
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.Blocks)
}

// CurrentBlock returns the block under the cursor.
func (d *Document) CurrentBlock() (*Block, error) {
	if len(d.Blocks) == 0 {
		return nil, ErrNoBlocks
	}
	return &d.Blocks[d.Current], nil
}

// Block returns the block at position i.
func (d *Document) Block(i int) (*Block, error) {
	if err := d.checkPos(i); err != nil {
		return nil, err
	}
	return &d.Blocks[i], nil
}

// SpeakerLabel returns the name of the block's speaker, or "UNASSIGNED".
func (d *Document) SpeakerLabel(b Block) string {
	if b.Speaker == nil || *b.Speaker >= len(d.Speakers) {
		return "UNASSIGNED"
	}
	return d.Speakers[*b.Speaker]
}

// Validate checks the cursor and speaker references.
func (d *Document) Validate() error {
	if len(d.Speakers) < MinSpeakers || len(d.Speakers) > MaxSpeakers {
		return fmt.Errorf("speaker count %d outside %d..%d", len(d.Speakers), MinSpeakers, MaxSpeakers)
	}
	if len(d.Blocks) == 0 {
		if d.Current != 0 {
			return fmt.Errorf("cursor %d on empty transcript: %w", d.Current, ErrOutOfRange)
		}
		return nil
	}
	if d.Current < 0 || d.Current >= len(d.Blocks) {
		return fmt.Errorf("cursor %d: %w", d.Current, ErrOutOfRange)
	}
	for i, b := range d.Blocks {
		if b.Speaker != nil && (*b.Speaker < 0 || *b.Speaker >= len(d.Speakers)) {
			return fmt.Errorf("block %d references speaker %d: %w", i+1, *b.Speaker, ErrOutOfRange)
		}
	}
	return nil
}

func (d *Document) checkPos(i int) error {
	if len(d.Blocks) == 0 {
		return ErrNoBlocks
	}
	if i < 0 || i >= len(d.Blocks) {
		return fmt.Errorf("block %d of %d: %w", i+1, len(d.Blocks), ErrOutOfRange)
	}
	return nil
}

func (d *Document) nextIndex() int {
	highest := 0
	for _, b := range d.Blocks {
		highest = max(highest, b.Index)
	}
	return highest + 1
}

func (d *Document) insertAfter(i int, b Block) {
	d.Blocks = append(d.Blocks, Block{})
	copy(d.Blocks[i+2:], d.Blocks[i+1:])
	d.Blocks[i+1] = b
	if d.Current > i {
		d.Current++
	}
}

// RecomputeTurns rebuilds every turn-start flag from the speaker sequence.
// Marker blocks never start a turn and are skipped when looking back for the
// previous speaker; an unassigned block always starts one.
func (d *Document) RecomputeTurns() {
	var prev *int
	havePrev := false
	for i := range d.Blocks {
		b := &d.Blocks[i]
		if b.IsMarker() {
			b.TurnStart = false
			continue
		}
		if b.Speaker == nil {
			b.TurnStart = true
		} else {
			b.TurnStart = !havePrev || !sameSpeaker(prev, b.Speaker)
		}
		prev = b.Speaker
		havePrev = true
	}
}
