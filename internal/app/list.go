package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njm2360/apktool/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List third-party packages on the connected device",
	Long: `List the third-party (user-installed) packages on the connected
device, as reported by 'pm list packages -3'.`,
	RunE: runList,
}

func init() {
	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	bridge := s.bridge()
	if err := checkDevice(bridge); err != nil {
		return err
	}

	packages, err := bridge.ListThirdPartyPackages()
	if err != nil {
		return err
	}

	fmt.Print(output.RenderPackageList(packages))
	fmt.Printf("\n%d third-party packages\n", len(packages))

	return nil
}
