package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/njm2360/apktool/internal/output"
	"github.com/njm2360/apktool/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [backup-id]",
	Short: "Show recorded backup runs",
	Long: `Show backup runs recorded in the history index, newest first.

With a backup ID, lists the packages pulled during that run. The index
is an audit trail only; the backup directories on disk remain the source
of truth.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	RootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	st, err := openIndex(s)
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid backup ID %q", args[0])
		}
		return showBackupPackages(st, id)
	}

	backups, err := st.ListBackups()
	if err != nil {
		return err
	}

	fmt.Print(output.RenderBackupTable(backups))
	return nil
}

func showBackupPackages(st *store.Store, id int64) error {
	b, err := st.GetBackup(id)
	if err != nil {
		return err
	}

	packages, err := st.ListBackupPackages(id)
	if err != nil {
		return err
	}

	fmt.Printf("Backup %d: %s (%s, %d packages)\n\n", b.ID, b.Name, b.Kind, b.PackageCount)
	for _, p := range packages {
		if p.FileCount == 1 {
			fmt.Printf("  %s (1 file)\n", p.Package)
		} else {
			fmt.Printf("  %s (%d files)\n", p.Package, p.FileCount)
		}
	}

	return nil
}
