package app

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/njm2360/apktool/internal/backup"
	"github.com/njm2360/apktool/internal/output"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Reinstall a backed-up set of apps on the connected device",
	Long: `Reinstall every package of a previously created backup snapshot
on the connected device.

The snapshot is chosen interactively by number. Packages with a single
APK file are installed with 'adb install'; split APKs use
'adb install-multiple'. A failing package is reported and installation
continues with the next one.`,
	RunE: runInstall,
}

func init() {
	RootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	bridge := s.bridge()
	if err := checkDevice(bridge); err != nil {
		return err
	}

	if _, err := os.Stat(s.root); os.IsNotExist(err) {
		return fmt.Errorf("backup root not found. Run 'apktool backup' first")
	}

	snapshots, err := backup.ListSnapshots(s.root)
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		fmt.Fprintln(os.Stderr, "No backups found.")
		return nil
	}

	fmt.Println("Select backup to install:")
	fmt.Print(output.RenderSnapshotMenu(snapshots))

	reader := bufio.NewReader(os.Stdin)
	n, err := promptNumber(reader, os.Stdout, "Enter number: ", 1, len(snapshots))
	if err != nil {
		return err
	}

	snapshotDir := filepath.Join(s.root, snapshots[n-1])
	engine := backup.New(bridge, s.root)

	return installSnapshot(engine, snapshotDir)
}

// installSnapshot installs every package directory of one snapshot,
// continuing past per-package failures.
func installSnapshot(engine *backup.Engine, snapshotDir string) error {
	entries, err := os.ReadDir(snapshotDir)
	if err != nil {
		return fmt.Errorf("failed to read snapshot %s: %w", snapshotDir, err)
	}

	var packages []string
	for _, entry := range entries {
		if entry.IsDir() {
			packages = append(packages, entry.Name())
		}
	}
	sort.Strings(packages)

	if len(packages) == 0 {
		fmt.Fprintf(os.Stderr, "No packages found in %s.\n", snapshotDir)
		return nil
	}

	installed := 0
	var failures []string

	for _, pkg := range packages {
		if err := engine.InstallPackageDir(filepath.Join(snapshotDir, pkg)); err != nil {
			fmt.Printf("✗ %s: %v\n", pkg, err)
			failures = append(failures, pkg)
			continue
		}
		fmt.Printf("✓ Installed %s\n", pkg)
		installed++
	}

	fmt.Printf("\nInstalled %d of %d packages\n", installed, len(packages))
	if len(failures) > 0 {
		fmt.Printf("✗ Failed: %d (%v)\n", len(failures), failures)
	}

	return nil
}
