package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/grovetools/core/cli"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/grovetools/capsgat/cmd.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func versionInfo() cli.VersionInfo {
	return cli.VersionInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		BuildArch: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// NewVersionCmd prints build information.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of capsgat",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo()

			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				data, err := json.MarshalIndent(struct {
					Version   string `json:"version"`
					Commit    string `json:"commit"`
					BuildDate string `json:"buildDate"`
					BuildArch string `json:"buildArch"`
					GoVersion string `json:"goVersion"`
				}{info.Version, info.Commit, info.BuildDate, info.BuildArch, runtime.Version()}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal version info: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "capsgat %s\n", info.Version)
			fmt.Fprintf(out, "  Commit:    %s\n", info.Commit)
			fmt.Fprintf(out, "  Built:     %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Arch:      %s\n", info.BuildArch)
			return nil
		},
	}
}
