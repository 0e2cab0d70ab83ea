package cmd

import (
	"os"

	"github.com/grovetools/capsgat/config"
	"github.com/grovetools/capsgat/internal/logging"
	"github.com/grovetools/core/cli"
	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"
)

var ulog = grovelogging.NewLogger("cmd")

// rootOptions carries the persistent flags and the loaded config to every
// subcommand.
type rootOptions struct {
	logLevel    string
	projectPath string
	block       int

	cfg       *config.Config
	cfgSource string
}

// NewRootCmd creates the root command for capsgat.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.Default()}

	rootCmd := cli.NewStandardCommand(
		"capsgat",
		"Speaker and GAT2 annotation of subtitle transcripts",
	)
	rootCmd.Long = "Import SRT, TSV, JSON or plain-text transcripts into a .gat2 project, assign speakers, add GAT2 notation and export aligned transcripts."
	rootCmd.SilenceUsage = true
	rootCmd.Version = Version
	cli.SetVersionTemplate(rootCmd, versionInfo())
	rootCmd.PersistentFlags().Lookup("config").Usage = "Config file (default ./capsgat.yml, then $XDG_CONFIG_HOME/capsgat/config.yml)"
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (default $CAPSGAT_LOG_LEVEL, or debug with --verbose)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnv(); err != nil {
			return err
		}
		level := opts.logLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && level == "" {
			level = "debug"
		}
		if err := logging.Setup(os.Stderr, level); err != nil {
			return err
		}

		configPath, _ := cmd.Flags().GetString("config")
		cfg, path, err := config.Load(configPath)
		if err != nil {
			return err
		}
		opts.cfg = cfg
		opts.cfgSource = path
		if path != "" {
			ulog.WithField("config", path).Debug("Loaded config")
		}
		return nil
	}

	rootCmd.AddCommand(newImportCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newUnassignedCmd(opts))
	rootCmd.AddCommand(newNavigateCmds(opts)...)
	rootCmd.AddCommand(newAssignCmd(opts))
	rootCmd.AddCommand(newUnassignCmd(opts))
	rootCmd.AddCommand(newSplitCmd(opts))
	rootCmd.AddCommand(newMergeCmd(opts))
	rootCmd.AddCommand(newEditCmd(opts))
	rootCmd.AddCommand(newPauseCmd(opts))
	rootCmd.AddCommand(newCommentCmd(opts))
	rootCmd.AddCommand(newActionCmd(opts))
	rootCmd.AddCommand(newOverlapCmd(opts))
	rootCmd.AddCommand(newEmptyCmd(opts))
	rootCmd.AddCommand(newSymbolsCmd())
	rootCmd.AddCommand(newSpeakersCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// addProjectFlags registers the flags shared by commands that work on a
// project file.
func addProjectFlags(cmd *cobra.Command, opts *rootOptions, withBlock bool) {
	cmd.Flags().StringVarP(&opts.projectPath, "project", "f", "", "Project file (.gat2)")
	_ = cmd.MarkFlagRequired("project")
	if withBlock {
		cmd.Flags().IntVarP(&opts.block, "block", "b", 0, "Block position to act on, 1-based (default: the current block)")
	}
}
