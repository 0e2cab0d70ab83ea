package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvBinary overrides the capsgat binary under test.
const EnvBinary = "CAPSGAT_BINARY"

// FindProjectBinary returns $CAPSGAT_BINARY or bin/capsgat under the working
// directory, which is where `make build` puts it.
func FindProjectBinary() (string, error) {
	if bin := os.Getenv(EnvBinary); bin != "" {
		return bin, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("could not get working directory: %w", err)
	}
	bin := filepath.Join(wd, "bin", "capsgat")
	if _, err := os.Stat(bin); err != nil {
		return "", fmt.Errorf("capsgat binary not found (run make build or set %s): %w", EnvBinary, err)
	}
	return bin, nil
}
