package cli

import (
	"github.com/spf13/cobra"
	"os"
	"sync/atomic"
	"textsteg/internal/logging"
)

type rootOpts struct {
	logLevel      string
	cpuProfile    string
	memProfileDir string
}

// RootCommand builds the textsteg command tree. The returned profiler is started before any command runs and must
// be stopped by the caller once it is done, possibly from another goroutine
func RootCommand() (*cobra.Command, func()) {
	var (
		opts     rootOpts
		profiler atomic.Pointer[Profiler]
	)

	rootCmd := &cobra.Command{
		Use:           "textsteg",
		Short:         "Hide text messages in the least significant bits of image pixels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logging.SetLevel(level)
			if cmd.Name() != "serve" {
				logging.SetOutput(os.Stderr)
			}

			p, err := StartProfiler(opts.cpuProfile, opts.memProfileDir)
			if err != nil {
				return err
			}
			profiler.Store(p)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level. Options are debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(ImageCommands(), InteractiveCommand(), ServeAppCommand())

	return rootCmd, func() {
		if p := profiler.Load(); p != nil {
			p.Stop()
		}
	}
}
