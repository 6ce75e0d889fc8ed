package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/k1LoW/errors"
	"github.com/spf13/cobra"
)

// Set with -ldflags at release time.
var (
	version  = "dev"
	revision = "HEAD"
)

var (
	profile    string
	configFile string
	debug      bool
	logFile    string
	stdioLog   string
)

var rootCmd = &cobra.Command{
	Use:          "postermaker",
	Short:        "postermaker renders short messages onto themed poster images",
	Long:         `postermaker renders a title and a short text onto a themed 600x900 poster and offers it for download.`,
	SilenceUsage: true,
	Version:      fmt.Sprintf("%s (rev:%s)", version, revision),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logPath := stdioLog
		if logPath == "" {
			logPath = os.Getenv("POSTERMAKER_STDIO_LOG")
		}
		if logPath != "" {
			if err := redirectStdIO(logPath); err != nil {
				return fmt.Errorf("stdio log redirect: %w", err)
			}
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if debug {
			if b, merr := json.MarshalIndent(errors.StackTraces(err), "", "  "); merr == nil {
				_, _ = fmt.Fprintln(os.Stderr, string(b))
			}
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "", "", "config profile name")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/postermaker/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "", "", "also write JSON logs to this file")
	rootCmd.PersistentFlags().StringVarP(&stdioLog, "stdio-log", "", "", "redirect stdout+stderr (including panics) to this file; also configurable via POSTERMAKER_STDIO_LOG")
}
