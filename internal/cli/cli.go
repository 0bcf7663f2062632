package cli

import (
	"tsteg/internal/logging"

	"github.com/spf13/cobra"
)

type rootOpts struct {
	cpuProfile    string
	memProfileDir string
	logLevel      string
	logFile       string
}

// RootCommand wires every subcommand under tsteg. Logging and profiling are set up before any subcommand runs, and
// profiling is torn down by StopProfiler.
func RootCommand() *cobra.Command {
	opts := rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "tsteg",
		Short:         "Hide text in the least significant bits of images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Configure(opts.logLevel, opts.logFile); err != nil {
				return err
			}
			return StartProfiler(opts.cpuProfile, opts.memProfileDir)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Minimum level to log. Options are debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stdout. The file is rotated once it reaches 100MB")

	rootCmd.AddCommand(ImageCommands(), ServeAppCommand())
	return rootCmd
}
