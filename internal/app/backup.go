package app

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/njm2360/apktool/internal/backup"
	"github.com/njm2360/apktool/internal/output"
	"github.com/njm2360/apktool/internal/store"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up third-party apps from the connected device",
	Long: `Back up the APK files of all third-party applications on the
connected device into a snapshot directory under the backup root.

Two interactive modes:
  1. New Backup          pull every third-party package into a fresh snapshot
  2. Differential Backup pull only the packages missing from a selected
                         base snapshot, into that base snapshot

Snapshot naming: an empty name uses the current timestamp; any "$date"
in the name is replaced by it. Split APKs are pulled file by file, and a
local name collision gets a numeric suffix before the extension.`,
	RunE: runBackup,
}

func init() {
	RootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	bridge := s.bridge()
	if err := checkDevice(bridge); err != nil {
		return err
	}

	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("failed to create backup root: %w", err)
	}

	engine := backup.New(bridge, s.root)
	reader := bufio.NewReader(os.Stdin)

	mode, err := promptBackupMode(reader, os.Stdout)
	if err != nil {
		return err
	}

	switch mode {
	case modeNew:
		return runNewBackup(engine, s, reader)
	default:
		return runDifferentialBackup(engine, s, reader)
	}
}

func runNewBackup(engine *backup.Engine, s *settings, reader *bufio.Reader) error {
	timestamp := time.Now().Format(backup.TimestampFormat)

	name, err := promptSnapshotName(reader, os.Stdout, s.root, timestamp)
	if err != nil {
		return err
	}

	return performBackup(engine, s, &store.Backup{
		Name: name,
		Kind: store.KindFull,
		Path: filepath.Join(s.root, name),
	}, "")
}

func runDifferentialBackup(engine *backup.Engine, s *settings, reader *bufio.Reader) error {
	snapshots, err := backup.ListSnapshots(s.root)
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		fmt.Fprintln(os.Stderr, "No backups found.")
		return nil
	}

	fmt.Println("Select base backup:")
	fmt.Print(output.RenderSnapshotMenu(snapshots))

	// A bad selection aborts the mode instead of re-prompting.
	n, ok, err := promptNumberOnce(reader, os.Stdout, "Enter number: ", 1, len(snapshots))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Invalid selection.")
		return nil
	}

	base := snapshots[n-1]
	baseDir := filepath.Join(s.root, base)

	// Differential runs pull the delta into the base snapshot itself.
	return performBackup(engine, s, &store.Backup{
		Name:     base,
		Kind:     store.KindDifferential,
		BaseName: base,
		Path:     baseDir,
	}, baseDir)
}

// performBackup plans and runs one backup into run.Path, then records the
// run in the history index.
func performBackup(engine *backup.Engine, s *settings, run *store.Backup, baseDir string) error {
	if err := os.MkdirAll(run.Path, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	plan, err := engine.Plan(baseDir)
	if err != nil {
		return err
	}

	run.CreatedAt = time.Now()

	if len(plan.Packages) == 0 {
		fmt.Println("No package differences found for device.")
		recordRun(s, run, nil)
		return nil
	}

	fmt.Printf("Backing up %d packages to %s\n", len(plan.Packages), run.Path)
	progress := output.NewProgress(len(plan.Packages), "Backing up packages")

	var recorded []*store.BackupPackage
	var failures []string

	for _, pkg := range plan.Packages {
		files, err := engine.Extract(pkg, run.Path)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", pkg, err))
			progress.Increment()
			continue
		}

		recorded = append(recorded, &store.BackupPackage{
			Package:   pkg,
			FileCount: files,
		})
		progress.Increment()
	}

	progress.Finish()

	fmt.Printf("\n✓ Backed up %d of %d packages\n", len(recorded), len(plan.Packages))
	if len(failures) > 0 {
		fmt.Printf("\n✗ %d failures:\n", len(failures))
		for _, failure := range failures {
			fmt.Printf("  - %s\n", failure)
		}
	}

	run.PackageCount = len(recorded)
	recordRun(s, run, recorded)

	return nil
}
