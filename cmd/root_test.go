package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/capsgat/internal/project"
	"github.com/stretchr/testify/require"
)

const talkSRT = `1
00:00:01,000 --> 00:00:02,000
so what now

2
00:00:02,000 --> 00:00:02,800
hm

3
00:00:03,000 --> 00:00:04,500
yes
`

// execute runs the CLI with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CAPSGAT_CONFIG", "")
	t.Setenv("CAPSGAT_LOG_LEVEL", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	require.NoError(t, err, out)
	return out
}

// importTalk writes the sample SRT and imports it, returning the project path.
func importTalk(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "talk.srt")
	require.NoError(t, os.WriteFile(src, []byte(talkSRT), 0o644))

	out := mustExecute(t, "import", src)
	proj := filepath.Join(dir, "talk"+project.Extension)
	require.Contains(t, out, "Imported 3 blocks with timestamps")
	require.FileExists(t, proj)
	return proj
}

func TestImport(t *testing.T) {
	proj := importTalk(t)

	p, err := project.Load(proj)
	require.NoError(t, err)
	require.Equal(t, 3, p.Document.Len())
	require.Equal(t, "so what now", p.Document.Blocks[0].Text)
	require.True(t, strings.HasSuffix(p.Document.SourceFile, "talk.srt"))

	src := strings.TrimSuffix(proj, project.Extension) + ".srt"
	_, err = execute(t, "import", src)
	require.ErrorContains(t, err, "already exists")

	mustExecute(t, "import", src, "--force")
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "import", filepath.Join(dir, "talk.docx"))
	require.ErrorContains(t, err, "unsupported transcript format")

	src := filepath.Join(dir, "tokens.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"tokens": ["a"], "timestamps": [0]}`), 0o644))
	_, err = execute(t, "import", src, "--json-mode", "words")
	require.ErrorContains(t, err, "unknown JSON mode")
}

func TestImportTokensAutoSegment(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tokens.json")
	data := `{"tokens": ["so", " what", " now", " yes"], "timestamps": [0, 0.25, 0.5, 4.5]}`
	require.NoError(t, os.WriteFile(src, []byte(data), 0o644))

	out := mustExecute(t, "import", src, "--json-mode", "auto_segment", "-o", filepath.Join(dir, "tok.gat2"))
	require.Contains(t, out, "Imported 2 blocks with timestamps")

	p, err := project.Load(filepath.Join(dir, "tok.gat2"))
	require.NoError(t, err)
	require.Equal(t, "so what now", p.Document.Blocks[0].Text)
	require.Equal(t, " yes", p.Document.Blocks[1].Text)
}

func TestAnnotateAndExport(t *testing.T) {
	proj := importTalk(t)

	out := mustExecute(t, "assign", "A", "-f", proj)
	require.Contains(t, out, "Current: 2/3")
	mustExecute(t, "assign", "1", "-f", proj)
	mustExecute(t, "assign", "b", "-f", proj)

	out = mustExecute(t, "unassigned", "-f", proj)
	require.Equal(t, "All blocks have a speaker.\n", out)

	mustExecute(t, "pause", "(.)", "--at", "2", "-b", "1", "-f", proj)

	out = mustExecute(t, "export", "-f", proj, "--format", "txt")
	require.Equal(t, strings.Join([]string{
		"{00:00:01}   1   A:   so (.)  what now",
		"             2        hm",
		"{00:00:03}   3   B:   yes",
	}, "\n")+"\n", out)

	out = mustExecute(t, "export", "-f", proj, "--format", "txt", "--no-timestamps")
	require.Equal(t, strings.Join([]string{
		"1   A:   so (.)  what now",
		"2        hm",
		"3   B:   yes",
	}, "\n")+"\n", out)

	htmlPath := filepath.Join(filepath.Dir(proj), "talk.html")
	out = mustExecute(t, "export", "-f", proj, "-o", htmlPath)
	require.Contains(t, out, "Transcript exported to "+htmlPath)
	data, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "<title>GAT2 Transcript</title>")

	bare := filepath.Join(filepath.Dir(proj), "plain")
	mustExecute(t, "export", "-f", proj, "-o", bare, "--format", "txt")
	require.FileExists(t, bare+".txt")
}

func TestEditCommands(t *testing.T) {
	proj := importTalk(t)
	mustExecute(t, "assign", "A", "-b", "1", "-f", proj)
	mustExecute(t, "assign", "A", "-b", "2", "-f", proj)

	mustExecute(t, "merge", "-b", "1", "-f", proj)
	p, err := project.Load(proj)
	require.NoError(t, err)
	require.Equal(t, 2, p.Document.Len())
	require.Equal(t, "so what now hm", p.Document.Blocks[0].Text)
	require.Equal(t, "00:00:02,800", p.Document.Blocks[0].EndTime)

	mustExecute(t, "split", "11", "-b", "1", "-f", proj)
	mustExecute(t, "edit", "hm", "hm", "-b", "2", "-f", proj)
	mustExecute(t, "comment", "laughs", "-n", "-b", "2", "-f", proj)
	mustExecute(t, "action", "0", "3", "nods", "-b", "4", "-f", proj)
	mustExecute(t, "overlap", "0", "2", "0", "2", "-b", "2", "-f", proj)
	mustExecute(t, "pause", "8", "-n", "-b", "1", "-f", proj)
	mustExecute(t, "empty", "-b", "5", "-f", proj)

	p, err = project.Load(proj)
	require.NoError(t, err)
	var texts []string
	for _, b := range p.Document.Blocks {
		texts = append(texts, b.Text)
	}
	require.Equal(t, []string{
		"[so] what now",
		"(0.8)",
		"[hm] hm",
		"((laughs))",
		"<<nods> yes>",
		"",
	}, texts)
	require.Equal(t, 5, p.Document.Current)

	_, err = execute(t, "merge", "-b", "9", "-f", proj)
	require.ErrorContains(t, err, "block 9 of 6")

	_, err = execute(t, "split", "0", "-b", "1", "-f", proj)
	require.ErrorContains(t, err, "split position leaves an empty block")
}

func TestMergeDifferentSpeakers(t *testing.T) {
	proj := importTalk(t)
	mustExecute(t, "assign", "A", "-b", "1", "-f", proj)
	mustExecute(t, "assign", "B", "-b", "2", "-f", proj)

	_, err := execute(t, "merge", "-b", "1", "-f", proj)
	require.ErrorContains(t, err, "blocks belong to different speakers")
}

func TestNavigation(t *testing.T) {
	proj := importTalk(t)

	out := mustExecute(t, "next", "-f", proj)
	require.Contains(t, out, ">> hm")
	out = mustExecute(t, "goto", "3", "-f", proj)
	require.Contains(t, out, "Current: 3/3")
	out = mustExecute(t, "prev", "-f", proj)
	require.Contains(t, out, "Current: 2/3")

	// Assigning the last block wraps the cursor to the first unassigned one.
	out = mustExecute(t, "assign", "A", "-b", "3", "-f", proj)
	require.Contains(t, out, "Current: 1/3")
	out = mustExecute(t, "next-unassigned", "-f", proj)
	require.Contains(t, out, "Current: 2/3")

	_, err := execute(t, "goto", "7", "-f", proj)
	require.ErrorContains(t, err, "position out of range")
}

func TestShow(t *testing.T) {
	proj := importTalk(t)

	out := mustExecute(t, "show", "-f", proj)
	require.Contains(t, out, " 1: A ")
	require.Contains(t, out, ">> so what now")

	out = mustExecute(t, "show", "--all", "-f", proj)
	require.Contains(t, out, "SPEAKER")
	require.Contains(t, out, "UNASSIGNED")

	out = mustExecute(t, "show", "--json", "--context", "1", "-f", proj)
	var view struct {
		Current int `json:"current"`
		Blocks  []struct {
			Text string `json:"text"`
		} `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.Equal(t, 1, view.Current)
	require.Len(t, view.Blocks, 2)

	out = mustExecute(t, "unassigned", "--json", "-f", proj)
	require.Contains(t, out, `"position": 3`)
}

func TestSpeakers(t *testing.T) {
	proj := importTalk(t)
	mustExecute(t, "assign", "D", "-b", "1", "-f", proj)
	mustExecute(t, "assign", "A", "-b", "2", "-f", proj)

	mustExecute(t, "speakers", "3", "-f", proj)
	mustExecute(t, "speakers", "rename", "1", "Anna", "-f", proj)

	out := mustExecute(t, "speakers", "-f", proj)
	require.Contains(t, out, " 1: Anna ")
	require.Contains(t, out, " 3: C ")
	require.NotContains(t, out, " 4: D ")

	p, err := project.Load(proj)
	require.NoError(t, err)
	require.False(t, p.Document.Blocks[0].Assigned(), "speaker D was removed")
	require.True(t, p.Document.Blocks[1].SpeakerIs(0))

	_, err = execute(t, "speakers", "12", "-f", proj)
	require.ErrorContains(t, err, "speaker count 12")

	_, err = execute(t, "assign", "Zed", "-f", proj)
	require.ErrorContains(t, err, `unknown speaker "Zed"`)
}

func TestPauseArguments(t *testing.T) {
	proj := importTalk(t)

	_, err := execute(t, "pause", "(_._)", "-f", proj)
	require.ErrorContains(t, err, "is not a pause or breath symbol")

	_, err = execute(t, "pause", "(....)", "-f", proj)
	require.ErrorContains(t, err, "unknown symbol")

	_, err = execute(t, "pause", "99", "-f", proj)
	require.ErrorContains(t, err, "measured pause 99")

	_, err = execute(t, "pause", "(.)", "--at", "1", "-n", "-f", proj)
	require.Error(t, err)
}

func TestSymbols(t *testing.T) {
	out := mustExecute(t, "symbols")
	require.Contains(t, out, "micropause")
	require.Contains(t, out, "pause <tenths>")
	require.Contains(t, out, "hhh°")
}

func TestVersion(t *testing.T) {
	out := mustExecute(t, "version")
	require.True(t, strings.HasPrefix(out, "capsgat dev"))

	require.Contains(t, out, "  Commit:    unknown\n")
	require.Contains(t, out, "  Arch:      ")

	out = mustExecute(t, "version", "--json")
	require.Contains(t, out, `"version": "dev"`)
	require.Contains(t, out, `"buildArch": "`)

	out = mustExecute(t, "--version")
	require.Contains(t, out, "capsgat dev\n  Commit:    unknown\n")
}

func TestProjectFlagRequired(t *testing.T) {
	_, err := execute(t, "show")
	require.ErrorContains(t, err, `required flag(s) "project" not set`)
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capsgat.yml")
	require.NoError(t, os.WriteFile(path, []byte("speakers: [Interviewer, Guest]\ncontext_blocks: 2\n"), 0o644))

	out := mustExecute(t, "config", "show", "--config", path)
	require.Contains(t, out, "# source: "+path)
	require.Contains(t, out, "- Interviewer")
	require.Contains(t, out, "context_blocks: 2")

	out = mustExecute(t, "config", "schema")
	require.Contains(t, out, `"title": "CapsGAT Configuration"`)

	_, err := execute(t, "config", "show", "--config", filepath.Join(dir, "missing.yml"))
	require.ErrorContains(t, err, "failed to read config")
}

func TestStandardFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capsgat.yml")
	require.NoError(t, os.WriteFile(path, []byte("context_blocks: 4\n"), 0o644))

	out := mustExecute(t, "config", "show", "-c", path)
	require.Contains(t, out, "# source: "+path)
	require.Contains(t, out, "context_blocks: 4")

	out = mustExecute(t, "version", "--verbose")
	require.True(t, strings.HasPrefix(out, "capsgat dev"))

	_, err := execute(t, "version", "--log-level", "loud")
	require.ErrorContains(t, err, `invalid log level "loud"`)
}

func TestImportUsesConfiguredSpeakers(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "capsgat.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("speakers: [Interviewer, Guest]\n"), 0o644))
	src := filepath.Join(dir, "talk.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello\nthere\n"), 0o644))

	out := mustExecute(t, "import", src, "--config", cfg)
	require.Contains(t, out, "Imported 2 blocks without timestamps")

	p, err := project.Load(filepath.Join(dir, "talk.gat2"))
	require.NoError(t, err)
	require.Equal(t, []string{"Interviewer", "Guest"}, p.Document.Speakers)
	require.False(t, p.Document.HasTimestamps)
}
