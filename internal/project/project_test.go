package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/grovetools/capsgat/internal/transcript"
	"github.com/stretchr/testify/require"
)

func sampleDoc(t *testing.T) *transcript.Document {
	t.Helper()
	doc := transcript.NewDocument([]transcript.Block{
		transcript.NewBlock(1, "00:00:01,000", "00:00:02,500", "Grüß dich"),
		transcript.NewBlock(2, "00:00:03,000", "00:00:04,000", "na ja"),
	}, true)
	doc.SourceFile = "/data/talk.srt"
	require.NoError(t, doc.Assign(0, 1))
	require.NoError(t, doc.Action(1, transcript.Selection{Start: 0, End: 2}, "laughs"))
	require.NoError(t, doc.InsertSymbol(0, "(.)", transcript.OwnLine()))
	return doc
}

func TestMarshalRoundTrip(t *testing.T) {
	doc := sampleDoc(t)
	p := New(doc)

	data, err := p.Marshal()
	require.NoError(t, err)
	require.Contains(t, string(data), `"text": "<<laughs> na> ja"`)
	require.Contains(t, string(data), `"text": "Grüß dich"`)
	require.Contains(t, string(data), `"is_pause": true`)
	require.Contains(t, string(data), `"file_has_timestamps": true`)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, doc, got.Document)
}

func TestMarshalAssignsID(t *testing.T) {
	p := &Project{Document: sampleDoc(t)}
	_, err := p.Marshal()
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, p.ID)
}

func TestMarshalEmpty(t *testing.T) {
	_, err := New(transcript.NewDocument(nil, false)).Marshal()
	require.ErrorIs(t, err, ErrEmptyProject)

	_, err = (&Project{}).Marshal()
	require.ErrorIs(t, err, ErrEmptyProject)
}

func TestUnmarshalLegacy(t *testing.T) {
	data := []byte(`{
  "srt_blocks": [
    {"index": 1, "start_time": "00:00:01", "end_time": "00:00:02", "start_ms": 250, "end_ms": 5,
     "text": "hi", "speaker": null, "is_turn_start": true},
    {"index": 2, "start_time": "00:00:03,000", "end_time": "", "end_ms": 7,
     "text": "there", "speaker": 0, "is_turn_start": true}
  ],
  "current_block_index": 1,
  "source_file": "old.srt"
}`)

	p, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, uuid.Nil, p.ID)

	doc := p.Document
	require.True(t, doc.HasTimestamps)
	require.Equal(t, transcript.DefaultSpeakers, doc.Speakers)
	require.Equal(t, 1, doc.Current)
	require.Equal(t, "00:00:01,250", doc.Blocks[0].StartTime)
	require.Equal(t, "00:00:02,005", doc.Blocks[0].EndTime)
	require.Equal(t, "00:00:03,000", doc.Blocks[1].StartTime)
	require.Equal(t, "", doc.Blocks[1].EndTime)
	require.True(t, doc.Blocks[1].SpeakerIs(0))
}

func TestUnmarshalDanglingSpeaker(t *testing.T) {
	data := []byte(`{
  "srt_blocks": [
    {"index": 1, "text": "one", "speaker": 0, "is_turn_start": true},
    {"index": 2, "text": "two", "speaker": 3, "is_turn_start": false},
    {"index": 3, "text": "three", "speaker": 0, "is_turn_start": false}
  ],
  "speakers": ["A", "B"],
  "current_block_index": 2
}`)

	p, err := Unmarshal(data)
	require.NoError(t, err)

	doc := p.Document
	require.True(t, doc.Blocks[0].SpeakerIs(0))
	require.False(t, doc.Blocks[1].Assigned())
	require.True(t, doc.Blocks[1].TurnStart)
	require.True(t, doc.Blocks[2].SpeakerIs(0))
	require.True(t, doc.Blocks[2].TurnStart)
	require.Equal(t, 2, doc.Current)
}

func TestUnmarshalInvalid(t *testing.T) {
	tcs := []struct {
		name          string
		data          string
		expectedError string
	}{
		{
			name:          "not json",
			data:          `{`,
			expectedError: "failed to decode project",
		},
		{
			name:          "no blocks",
			data:          `{"speakers": ["A", "B"]}`,
			expectedError: "project has no srt_blocks field",
		},
		{
			name:          "cursor out of range",
			data:          `{"srt_blocks": [{"index": 1, "text": "x"}], "current_block_index": 3}`,
			expectedError: "invalid project: cursor 3",
		},
		{
			name:          "too many speakers",
			data:          `{"srt_blocks": [], "speakers": ["A", "B", "C", "D", "E", "F", "G", "H", "I"]}`,
			expectedError: "speaker count 9",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tc.data))
			require.ErrorContains(t, err, tc.expectedError)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk"+Extension)

	p := New(sampleDoc(t))
	require.NoError(t, p.Save(path))
	require.False(t, p.SavedAt.IsZero())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
	require.True(t, p.SavedAt.Equal(got.SavedAt))
	require.Equal(t, p.Document, got.Document)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
}

func TestSaveEmptyLeavesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk"+Extension)
	require.NoError(t, New(sampleDoc(t)).Save(path))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.ErrorIs(t, New(transcript.NewDocument(nil, true)).Save(path), ErrEmptyProject)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.gat2"))
	require.ErrorContains(t, err, "failed to read project")
}
