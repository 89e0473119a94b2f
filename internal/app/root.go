package app

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/njm2360/apktool/internal/logger"
)

var (
	flagConfig  string
	flagRoot    string
	flagADB     string
	flagDB      string
	flagSerial  string
	flagVerbose bool

	// RootCmd is the root command for apktool
	RootCmd = &cobra.Command{
		Use:   "apktool",
		Short: "Back up and restore third-party Android apps over adb",
		Long: `apktool pulls the APK files of third-party applications from a
connected Android device into local backup snapshots, and reinstalls a
previously backed-up set.

Backups are plain directories: one folder per snapshot, one subfolder per
package, containing the package's APK files (split APKs included). A
differential backup pulls only the packages missing from a previously
selected base snapshot.

Examples:
  # Create or extend a backup (interactive)
  apktool backup

  # Reinstall a backed-up set (interactive)
  apktool install

  # Show the device's third-party packages
  apktool list

  # Show recorded backup runs
  apktool history

  # Check adb, device and storage health
  apktool doctor`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := logger.Init(flagVerbose)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.config/apktool/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "backup root directory (default: ./backup)")
	RootCmd.PersistentFlags().StringVar(&flagADB, "adb", "", "adb binary path (default: adb on PATH)")
	RootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "history database path (default: ~/.apktool/apktool.db)")
	RootCmd.PersistentFlags().StringVarP(&flagSerial, "serial", "s", "", "target device serial")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command. An unrecognized subcommand prints usage
// and exits successfully instead of failing.
func Execute() error {
	defer logger.Cleanup()

	if err := RootCmd.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			_ = RootCmd.Help()
			return nil
		}
		return err
	}
	return nil
}
