package transcript

import (
	"fmt"
	"strings"
)

// SymbolKind groups GAT2 symbols by how they are inserted.
type SymbolKind int

const (
	KindPause SymbolKind = iota
	KindBreath
	KindMeasuredPause
	KindComment
	KindAction
	KindOverlap
)

// Symbol is an entry of the GAT2 notation catalog.
type Symbol struct {
	Notation    string
	Description string
	Kind        SymbolKind
}

// Symbols is the GAT2 catalog in picker order.
var Symbols = []Symbol{
	{"(.)", "micropause", KindPause},
	{"(-)", "short pause", KindPause},
	{"(--)", "medium pause", KindPause},
	{"(---)", "long pause", KindPause},
	{"(_._)", "measured pause", KindMeasuredPause},
	{"(())", "comment", KindComment},
	{"<<>>", "action", KindAction},
	{"[ ]", "overlap", KindOverlap},
	{"°h", "short inhale", KindBreath},
	{"°hh", "medium inhale", KindBreath},
	{"°hhh", "long inhale", KindBreath},
	{"h°", "short exhale", KindBreath},
	{"hh°", "medium exhale", KindBreath},
	{"hhh°", "long exhale", KindBreath},
}

// LookupSymbol finds a catalog entry by notation.
func LookupSymbol(notation string) (Symbol, bool) {
	for _, s := range Symbols {
		if s.Notation == notation {
			return s, true
		}
	}
	return Symbol{}, false
}

// Placeable reports whether the symbol is inserted as-is at a position,
// as opposed to needing extra input (duration, comment text, a selection).
func (s Symbol) Placeable() bool {
	return s.Kind == KindPause || s.Kind == KindBreath
}

const (
	MinMeasuredPause = 1
	MaxMeasuredPause = 50
)

// MeasuredPause renders a pause given in tenths of a second, e.g. 8 -> (0.8).
func MeasuredPause(tenths int) (string, error) {
	if tenths < MinMeasuredPause || tenths > MaxMeasuredPause {
		return "", fmt.Errorf("measured pause %d outside %d..%d tenths: %w", tenths, MinMeasuredPause, MaxMeasuredPause, ErrOutOfRange)
	}
	return fmt.Sprintf("(%.1f)", float64(tenths)/10), nil
}

// Comment renders a transcriber comment, ((text)).
func Comment(text string) string {
	return "((" + text + "))"
}

// Placement says where an inserted symbol goes.
type Placement struct {
	// NewLine puts the symbol on its own marker block after the target.
	NewLine bool
	// Position is the rune offset for inline insertion.
	Position int
}

// Inline returns a placement at rune offset pos.
func Inline(pos int) Placement { return Placement{Position: pos} }

// OwnLine returns a placement on a new line.
func OwnLine() Placement { return Placement{NewLine: true} }

// InsertSymbol places a pause, breath or measured pause into block i.
func (d *Document) InsertSymbol(i int, symbol string, at Placement) error {
	return d.insertNotation(i, symbol, at, Block{IsPause: true})
}

// InsertComment places ((text)) into block i.
func (d *Document) InsertComment(i int, text string, at Placement) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("comment is empty")
	}
	return d.insertNotation(i, Comment(text), at, Block{IsComment: true})
}

func (d *Document) insertNotation(i int, notation string, at Placement, marker Block) error {
	if err := d.checkPos(i); err != nil {
		return err
	}
	if at.NewLine {
		marker.Index = d.nextIndex()
		marker.Text = notation
		d.insertAfter(i, marker)
		d.RecomputeTurns()
		return nil
	}

	b := &d.Blocks[i]
	text := []rune(b.Text)
	if at.Position < 0 || at.Position > len(text) {
		return fmt.Errorf("position %d in %d characters: %w", at.Position, len(text), ErrOutOfRange)
	}
	b.Text = strings.TrimSpace(string(text[:at.Position]) + " " + notation + " " + string(text[at.Position:]))
	return nil
}

// Selection is a half-open rune range within a block's text.
type Selection struct {
	Start, End int
}

func (s Selection) apply(text []rune) (before, selected, after string, err error) {
	if s.Start < 0 || s.End > len(text) || s.Start > s.End {
		return "", "", "", fmt.Errorf("selection %d-%d in %d characters: %w", s.Start, s.End, len(text), ErrOutOfRange)
	}
	if s.Start == s.End {
		return "", "", "", ErrEmptySelection
	}
	return string(text[:s.Start]), string(text[s.Start:s.End]), string(text[s.End:]), nil
}

// Action annotates the selected words of block i with a non-verbal action:
// <<description> words>.
func (d *Document) Action(i int, sel Selection, description string) error {
	if err := d.checkPos(i); err != nil {
		return err
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("action description is empty")
	}
	b := &d.Blocks[i]
	before, selected, after, err := sel.apply([]rune(b.Text))
	if err != nil {
		return err
	}
	b.Text = fmt.Sprintf("%s<<%s> %s>%s", before, description, selected, after)
	return nil
}

// Overlap brackets simultaneous speech in block i and the block before it.
// The bracket in block i is indented by the offset of the bracket in the
// previous block so the two line up.
func (d *Document) Overlap(i int, cur, prev Selection) error {
	if err := d.checkPos(i); err != nil {
		return err
	}
	if i == 0 {
		return ErrNeedsPrevious
	}
	cb, pb := &d.Blocks[i], &d.Blocks[i-1]

	cBefore, cSel, cAfter, err := cur.apply([]rune(cb.Text))
	if err != nil {
		return fmt.Errorf("current block: %w", err)
	}
	pBefore, pSel, pAfter, err := prev.apply([]rune(pb.Text))
	if err != nil {
		return fmt.Errorf("previous block: %w", err)
	}

	indent := strings.Repeat(" ", prev.Start)
	cb.Text = fmt.Sprintf("%s%s[%s]%s", cBefore, indent, cSel, cAfter)
	pb.Text = fmt.Sprintf("%s[%s]%s", pBefore, pSel, pAfter)
	return nil
}
