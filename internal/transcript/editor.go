package transcript

import (
	"fmt"
	"strings"
)

// Next moves the cursor one block forward. It reports whether it moved.
func (d *Document) Next() bool {
	if d.Current < len(d.Blocks)-1 {
		d.Current++
		return true
	}
	return false
}

// Prev moves the cursor one block back. It reports whether it moved.
func (d *Document) Prev() bool {
	if d.Current > 0 {
		d.Current--
		return true
	}
	return false
}

// Goto places the cursor on block i.
func (d *Document) Goto(i int) error {
	if err := d.checkPos(i); err != nil {
		return err
	}
	d.Current = i
	return nil
}

// FindNextUnassigned moves the cursor to the next unassigned speech block,
// wrapping around the end. If every block is assigned the cursor advances by
// one when it can. It reports whether an unassigned block was found.
func (d *Document) FindNextUnassigned() bool {
	n := len(d.Blocks)
	for step := 1; step <= n; step++ {
		i := (d.Current + step) % n
		if b := d.Blocks[i]; !b.Assigned() && !b.IsMarker() {
			d.Current = i
			return true
		}
	}
	d.Next()
	return false
}

// Assign gives block i to speaker and moves on to the next unassigned block.
func (d *Document) Assign(i, speaker int) error {
	if err := d.checkPos(i); err != nil {
		return err
	}
	if speaker < 0 || speaker >= len(d.Speakers) {
		return fmt.Errorf("speaker %d of %d: %w", speaker+1, len(d.Speakers), ErrOutOfRange)
	}
	d.Blocks[i].Speaker = speakerPtr(speaker)
	d.RecomputeTurns()
	d.Current = i
	d.FindNextUnassigned()
	return nil
}

// Unassign clears the speaker of block i.
func (d *Document) Unassign(i int) error {
	if err := d.checkPos(i); err != nil {
		return err
	}
	d.Blocks[i].Speaker = nil
	d.RecomputeTurns()
	return nil
}

// Split cuts block i after pos runes. Both halves are trimmed and must be
// non-empty. The second half becomes a new block right after i and copies
// block i apart from its text and index.
func (d *Document) Split(i, pos int) error {
	if err := d.checkPos(i); err != nil {
		return err
	}
	b := &d.Blocks[i]
	text := []rune(b.Text)
	if pos <= 0 || pos >= len(text) {
		return fmt.Errorf("position %d in %d characters: %w", pos, len(text), ErrInvalidSplit)
	}
	before := strings.TrimSpace(string(text[:pos]))
	after := strings.TrimSpace(string(text[pos:]))
	if before == "" || after == "" {
		return ErrInvalidSplit
	}

	nb := b.Clone()
	nb.Index = d.nextIndex()
	nb.Text = after
	b.Text = before

	d.insertAfter(i, nb)
	d.RecomputeTurns()
	return nil
}

// Merge appends block i+1 to block i. Block i must be unassigned or share
// the speaker of the next block.
func (d *Document) Merge(i int) error {
	if err := d.checkPos(i); err != nil {
		return err
	}
	if i >= len(d.Blocks)-1 {
		return fmt.Errorf("block %d is the last one: %w", i+1, ErrOutOfRange)
	}
	cur, next := &d.Blocks[i], d.Blocks[i+1]
	if cur.Speaker != nil && !sameSpeaker(cur.Speaker, next.Speaker) {
		return ErrSpeakerMismatch
	}

	cur.Text = cur.Text + " " + next.Text
	cur.EndTime = next.EndTime

	d.Blocks = append(d.Blocks[:i+1], d.Blocks[i+2:]...)
	if d.Current > i {
		d.Current--
	}
	d.RecomputeTurns()
	return nil
}

// Edit replaces the text of block i.
func (d *Document) Edit(i int, text string) error {
	if err := d.checkPos(i); err != nil {
		return err
	}
	d.Blocks[i].Text = text
	return nil
}

// InsertEmpty adds an empty line after block i and moves the cursor onto it.
func (d *Document) InsertEmpty(i int) error {
	if err := d.checkPos(i); err != nil {
		return err
	}
	d.insertAfter(i, Block{Index: d.nextIndex(), IsEmpty: true})
	d.Current = i + 1
	d.RecomputeTurns()
	return nil
}

// SetSpeakerCount grows or shrinks the speaker list. New speakers get the
// generated letter names; blocks that pointed at a removed speaker are
// unassigned.
func (d *Document) SetSpeakerCount(n int) error {
	if n < MinSpeakers || n > MaxSpeakers {
		return fmt.Errorf("speaker count %d outside %d..%d: %w", n, MinSpeakers, MaxSpeakers, ErrOutOfRange)
	}
	if n < len(d.Speakers) {
		d.Speakers = d.Speakers[:n]
	}
	for len(d.Speakers) < n {
		d.Speakers = append(d.Speakers, SpeakerName(len(d.Speakers)))
	}
	for i := range d.Blocks {
		if s := d.Blocks[i].Speaker; s != nil && *s >= n {
			d.Blocks[i].Speaker = nil
		}
	}
	d.RecomputeTurns()
	return nil
}

// RenameSpeaker changes the display name of speaker idx.
func (d *Document) RenameSpeaker(idx int, name string) error {
	if idx < 0 || idx >= len(d.Speakers) {
		return fmt.Errorf("speaker %d of %d: %w", idx+1, len(d.Speakers), ErrOutOfRange)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("speaker name is empty")
	}
	d.Speakers[idx] = name
	return nil
}

// UnassignedBlock is an entry of the unassigned list.
type UnassignedBlock struct {
	Position int    `json:"position"` // 1-based
	Preview  string `json:"preview"`
}

// Unassigned lists the speech blocks that still have no speaker.
func (d *Document) Unassigned() []UnassignedBlock {
	var out []UnassignedBlock
	for i, b := range d.Blocks {
		if b.Assigned() || b.IsMarker() {
			continue
		}
		out = append(out, UnassignedBlock{Position: i + 1, Preview: b.Preview(50)})
	}
	return out
}
