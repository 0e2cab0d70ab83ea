// Package logging applies command-line log settings to the grove component
// loggers capsgat creates.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "CAPSGAT_LOG_LEVEL"

// Components lists every component logger in capsgat.
var Components = []string{
	"cmd",
	"cmd.edit",
	"cmd.export",
	"project",
	"transcript-parser",
}

// Setup sends grove log output to w. A level overrides the grove.yml level
// on every component logger and turns its output on. An empty level falls
// back to $CAPSGAT_LOG_LEVEL; with neither set the grove defaults stay.
func Setup(w io.Writer, level string) error {
	if w != nil {
		grovelogging.SetGlobalOutput(w)
	}

	if level == "" {
		level = os.Getenv(EnvLevel)
	}
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	for _, c := range Components {
		l := grovelogging.NewLogger(c).Logger
		l.SetLevel(lvl)
		l.SetOutput(grovelogging.GetGlobalOutput())
	}
	return nil
}
