package formatters

import (
	"fmt"
	"strings"
	"testing"

	"github.com/grovetools/capsgat/internal/transcript"
	"github.com/stretchr/testify/require"
)

type line struct {
	start   string
	text    string
	speaker int // -1 for unassigned
}

func newDoc(lines ...line) *transcript.Document {
	blocks := make([]transcript.Block, 0, len(lines))
	for i, l := range lines {
		b := transcript.NewBlock(i+1, l.start, "", l.text)
		if l.speaker >= 0 {
			s := l.speaker
			b.Speaker = &s
		}
		blocks = append(blocks, b)
	}
	doc := transcript.NewDocument(blocks, true)
	doc.RecomputeTurns()
	return doc
}

func conversation() *transcript.Document {
	return newDoc(
		line{"00:00:00,000", "so (.) what now", 0},
		line{"00:00:01,200", "hm", 0},
		line{"00:00:02,900", "yes", 1},
	)
}

func TestTextWithoutTimestamps(t *testing.T) {
	got := Text(conversation(), Options{})
	require.Equal(t, strings.Join([]string{
		"1   A:   so (.) what now",
		"2        hm",
		"3   B:   yes",
	}, "\n"), got)
}

func TestTextWithTimestamps(t *testing.T) {
	got := Text(conversation(), Options{IncludeTimestamps: true})
	require.Equal(t, strings.Join([]string{
		"{00:00:00}   1   A:   so (.) what now",
		"             2        hm",
		"{00:00:02}   3   B:   yes",
	}, "\n"), got)
}

func TestTextSpeakerWidth(t *testing.T) {
	doc := conversation()
	require.NoError(t, doc.RenameSpeaker(0, "Anna"))

	got := Text(doc, Options{})
	require.Equal(t, strings.Join([]string{
		"1   Anna:   so (.) what now",
		"2           hm",
		"3   B:      yes",
	}, "\n"), got)
}

func TestTextWideCharacters(t *testing.T) {
	doc := conversation()
	require.NoError(t, doc.RenameSpeaker(0, "李"))

	// 李 occupies two terminal columns.
	got := Text(doc, Options{})
	require.Equal(t, strings.Join([]string{
		"1   李:   so (.) what now",
		"2         hm",
		"3   B:    yes",
	}, "\n"), got)
}

func TestTextSkipsUnassignedAndKeepsMarkers(t *testing.T) {
	doc := newDoc(
		line{"00:00:00,000", "not yet", -1},
		line{"00:00:01,000", "hello", 1},
		line{"00:00:02,000", "bye", 1},
	)
	require.NoError(t, doc.InsertComment(1, "laughs", transcript.OwnLine()))
	require.NoError(t, doc.InsertEmpty(3))

	got := Text(doc, Options{IncludeTimestamps: true})
	require.Equal(t, strings.Join([]string{
		"{00:00:01}   1   B:   hello",
		"             2        ((laughs))",
		"             3        bye",
	}, "\n"), got)
}

func TestTextFirstLineTrimmed(t *testing.T) {
	doc := newDoc(line{"00:00:01,000", "hello", 0})
	require.NoError(t, doc.InsertComment(0, "music", transcript.OwnLine()))
	require.NoError(t, doc.Unassign(0))

	got := Text(doc, Options{IncludeTimestamps: true})
	require.Equal(t, "1        ((music))", got)
}

func TestTextTurnStartWithoutTime(t *testing.T) {
	doc := newDoc(
		line{"", "untimed", 0},
		line{"00:00:03,000", "timed", 1},
	)
	got := Text(doc, Options{IncludeTimestamps: true})
	require.Equal(t, strings.Join([]string{
		"1   A:   untimed",
		"{00:00:03}   2   B:   timed",
	}, "\n"), got)
}

func TestTextLineNumberPadding(t *testing.T) {
	lines := make([]line, 0, 10)
	for i := range 10 {
		lines = append(lines, line{"", fmt.Sprintf("w%d", i), i % 2})
	}
	got := strings.Split(Text(newDoc(lines...), Options{}), "\n")
	require.Len(t, got, 10)
	require.Equal(t, "01   A:   w0", got[0])
	require.Equal(t, "10   B:   w9", got[9])
}

func TestTextEmpty(t *testing.T) {
	require.Equal(t, "", Text(transcript.NewDocument(nil, false), Options{}))
}
