package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose common issues and check system health",
	Long: `Runs diagnostic checks on your apktool setup.

Checks:
  • adb binary is executable
  • A device is connected and authorized
  • Backup root exists and holds snapshots
  • History database is accessible`,
	RunE: runDoctor,
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println("Running apktool diagnostics...")
	fmt.Println()

	// Criticals fail the run with exit 1; warnings only annotate.
	criticalIssues := 0
	warningIssues := 0

	s, err := loadSettings()
	if err != nil {
		fmt.Println("✗ Configuration error:", err)
		return fmt.Errorf("doctor found a configuration problem")
	}

	// Check 1: adb executable
	bridge := s.bridge()
	if version, err := bridge.Version(); err != nil {
		fmt.Println("✗ adb not executable:", err)
		fmt.Println("  Action: Install Android platform-tools or set --adb")
		criticalIssues++
	} else {
		fmt.Println("✓ adb found:", version)
	}

	// Check 2: device connected — warning only, backups just need it later
	if criticalIssues == 0 {
		devices, err := bridge.Devices()
		if err != nil {
			fmt.Println("⚠ Cannot query devices:", err)
			warningIssues++
		} else {
			connected := 0
			for _, d := range devices {
				if d.State == "device" {
					connected++
				} else {
					fmt.Printf("⚠ Device %s is %s\n", d.Serial, d.State)
					warningIssues++
				}
			}
			if connected == 0 {
				fmt.Println("⚠ No authorized device connected")
				fmt.Println("  Action: Connect a device and accept the USB debugging prompt")
				warningIssues++
			} else {
				fmt.Printf("✓ %d device(s) connected\n", connected)
			}
		}
	}

	// Check 3: backup root
	if info, err := os.Stat(s.root); os.IsNotExist(err) {
		fmt.Println("⚠ Backup root does not exist yet:", s.root)
		fmt.Println("  This is normal before the first backup")
		warningIssues++
	} else if err != nil {
		fmt.Println("✗ Cannot access backup root:", err)
		criticalIssues++
	} else if !info.IsDir() {
		fmt.Println("✗ Backup root is not a directory:", s.root)
		criticalIssues++
	} else {
		fmt.Println("✓ Backup root found:", s.root)
	}

	// Check 4: history database
	if st, err := openIndex(s); err != nil {
		fmt.Println("✗ Cannot open history database:", err)
		criticalIssues++
	} else {
		count, countErr := st.CountBackups()
		st.Close()
		if countErr != nil {
			fmt.Println("✗ Cannot read history database:", countErr)
			criticalIssues++
		} else {
			fmt.Printf("✓ History database accessible (%d recorded runs)\n", count)
		}
	}

	fmt.Println()
	switch {
	case criticalIssues > 0:
		return fmt.Errorf("doctor found %d critical issue(s)", criticalIssues)
	case warningIssues > 0:
		fmt.Printf("Done: %d warning(s), no critical issues.\n", warningIssues)
	default:
		fmt.Println("All checks passed.")
	}

	return nil
}
