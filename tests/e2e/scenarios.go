package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
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

// runResult is the outcome of one capsgat invocation.
type runResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Error    error
}

// capsgat runs the binary with an isolated config home and shows its output.
func capsgat(ctx *harness.Context, args ...string) (runResult, error) {
	bin, err := FindProjectBinary()
	if err != nil {
		return runResult{}, err
	}
	cmd := command.New(bin, args...).Env("XDG_CONFIG_HOME=" + ctx.GetString("config_home"))
	result := cmd.Run()
	ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
	return runResult{
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
		ExitCode: result.ExitCode,
		Error:    result.Error,
	}, nil
}

// setupTalk writes a three-cue SRT file into a fresh directory.
func setupTalk(ctx *harness.Context) error {
	dir := ctx.NewDir("talk")
	src := filepath.Join(dir, "talk.srt")
	if err := fs.WriteString(src, talkSRT); err != nil {
		return fmt.Errorf("failed to write talk.srt: %w", err)
	}
	ctx.Set("config_home", ctx.NewDir("config"))
	ctx.Set("src", src)
	ctx.Set("project", filepath.Join(dir, "talk.gat2"))
	return nil
}

// runStep builds a step that runs capsgat and checks it succeeded and
// printed every string in want.
func runStep(name string, args func(ctx *harness.Context) []string, want ...string) harness.Step {
	return harness.NewStep(name, func(ctx *harness.Context) error {
		result, err := capsgat(ctx, args(ctx)...)
		if err != nil {
			return err
		}

		if err := assert.Equal(0, result.ExitCode, name+" should exit successfully"); err != nil {
			return err
		}
		for _, w := range want {
			if err := assert.Contains(result.Stdout, w, name+" output"); err != nil {
				return err
			}
		}
		return nil
	})
}

// AnnotateExportScenario imports an SRT file, assigns speakers, adds a pause
// and exports the transcript.
func AnnotateExportScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "capsgat-annotate-export",
		Description: "Imports an SRT file, assigns speakers, inserts a pause and exports GAT2 text and HTML.",
		Tags:        []string{"import", "annotate", "export"},
		Steps: []harness.Step{
			harness.NewStep("Setup SRT transcript", setupTalk),
			runStep("Run 'capsgat import'", func(ctx *harness.Context) []string {
				return []string{"import", ctx.GetString("src")}
			}, "Imported 3 blocks with timestamps"),
			runStep("Assign speaker A to block 1", func(ctx *harness.Context) []string {
				return []string{"assign", "A", "-b", "1", "-f", ctx.GetString("project")}
			}, "Current: 2/3"),
			runStep("Assign speaker A to block 2", func(ctx *harness.Context) []string {
				return []string{"assign", "1", "-f", ctx.GetString("project")}
			}),
			runStep("Assign speaker B to block 3", func(ctx *harness.Context) []string {
				return []string{"assign", "B", "-f", ctx.GetString("project")}
			}),
			runStep("Check nothing is unassigned", func(ctx *harness.Context) []string {
				return []string{"unassigned", "-f", ctx.GetString("project")}
			}, "All blocks have a speaker."),
			runStep("Insert a micropause", func(ctx *harness.Context) []string {
				return []string{"pause", "(.)", "--at", "2", "-b", "1", "-f", ctx.GetString("project")}
			}, "so (.)  what now"),
			runStep("Export GAT2 text", func(ctx *harness.Context) []string {
				return []string{"export", "--format", "txt", "-f", ctx.GetString("project")}
			},
				"{00:00:01}   1   A:   so (.)  what now\n",
				"             2        hm\n",
				"{00:00:03}   3   B:   yes\n",
			),
			harness.NewStep("Export HTML to a file", func(ctx *harness.Context) error {
				out := filepath.Join(filepath.Dir(ctx.GetString("project")), "talk.html")
				result, err := capsgat(ctx, "export", "-o", out, "-f", ctx.GetString("project"))
				if err != nil {
					return err
				}
				if result.Error != nil {
					return fmt.Errorf("capsgat export failed: %w", result.Error)
				}

				html, err := fs.ReadString(out)
				if err != nil {
					return fmt.Errorf("failed to read exported HTML: %w", err)
				}
				if err := assert.Contains(html, "<title>GAT2 Transcript</title>", "HTML title"); err != nil {
					return err
				}
				return assert.Contains(html, "B:   yes", "HTML body")
			}),
			harness.NewStep("Read blocks as JSON", func(ctx *harness.Context) error {
				result, err := capsgat(ctx, "show", "--json", "-f", ctx.GetString("project"))
				if err != nil {
					return err
				}
				if result.ExitCode != 0 {
					return fmt.Errorf("capsgat show --json failed: %s", result.Stderr)
				}

				var view struct {
					Blocks []map[string]interface{} `json:"blocks"`
				}
				if err := json.Unmarshal([]byte(result.Stdout), &view); err != nil {
					return fmt.Errorf("failed to parse JSON output: %w", err)
				}
				return assert.Equal(3, len(view.Blocks), "show --json should list the window of blocks")
			}),
		},
	}
}

// ImportErrorsScenario checks that bad input fails without creating a project.
func ImportErrorsScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "capsgat-import-errors",
		Description: "Rejects unsupported transcript files and edits on missing projects.",
		Tags:        []string{"import", "errors"},
		Steps: []harness.Step{
			harness.NewStep("Setup SRT transcript", setupTalk),
			harness.NewStep("Import an unsupported file", func(ctx *harness.Context) error {
				src := filepath.Join(filepath.Dir(ctx.GetString("src")), "talk.docx")
				if err := fs.WriteString(src, "binary"); err != nil {
					return err
				}
				result, err := capsgat(ctx, "import", src)
				if err != nil {
					return err
				}

				if result.ExitCode == 0 {
					return fmt.Errorf("expected import of %s to fail", src)
				}
				return assert.Contains(result.Stderr, "unsupported transcript format", "error message")
			}),
			harness.NewStep("Assign on a missing project", func(ctx *harness.Context) error {
				result, err := capsgat(ctx, "assign", "A", "-f", ctx.GetString("project"))
				if err != nil {
					return err
				}

				if result.ExitCode == 0 {
					return fmt.Errorf("expected assign on a missing project to fail")
				}
				return assert.Contains(result.Stderr, "failed to read project", "error message")
			}),
		},
	}
}
