// Package transcript holds the annotated transcript model, the GAT2 editor
// operations and the readers for the supported subtitle formats.
package transcript

// Block is a single segment of transcript text.
type Block struct {
	Index     int    `json:"index"`
	StartTime string `json:"start_time"` // HH:MM:SS,mmm or empty
	EndTime   string `json:"end_time"`
	Text      string `json:"text"`
	Speaker   *int   `json:"speaker"` // nil while unassigned
	TurnStart bool   `json:"is_turn_start"`

	IsPause   bool `json:"is_pause,omitempty"`
	IsComment bool `json:"is_comment,omitempty"`
	IsEmpty   bool `json:"is_empty,omitempty"`
}

// NewBlock returns an unassigned block that starts a turn, the state every
// parser hands out.
func NewBlock(index int, start, end, text string) Block {
	return Block{
		Index:     index,
		StartTime: start,
		EndTime:   end,
		Text:      text,
		TurnStart: true,
	}
}

// IsMarker reports whether the block is a pause, comment or empty line
// rather than speech.
func (b Block) IsMarker() bool {
	return b.IsPause || b.IsComment || b.IsEmpty
}

// Assigned reports whether a speaker has been set.
func (b Block) Assigned() bool {
	return b.Speaker != nil
}

// SpeakerIs reports whether the block is assigned to speaker idx.
func (b Block) SpeakerIs(idx int) bool {
	return b.Speaker != nil && *b.Speaker == idx
}

// Preview returns the first n runes of the block text, with an ellipsis when
// the text was cut.
func (b Block) Preview(n int) string {
	r := []rune(b.Text)
	if len(r) <= n {
		return b.Text
	}
	return string(r[:n]) + "..."
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	c := b
	if b.Speaker != nil {
		s := *b.Speaker
		c.Speaker = &s
	}
	return c
}

func speakerPtr(idx int) *int {
	return &idx
}

func sameSpeaker(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// DefaultSpeakers are the names used for a fresh document.
var DefaultSpeakers = []string{"A", "B", "C", "D"}

const (
	MinSpeakers = 2
	MaxSpeakers = 8
)

// SpeakerName returns the generated name for speaker position idx: A, B, C...
func SpeakerName(idx int) string {
	return string(rune('A' + idx))
}
