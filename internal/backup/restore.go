package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CollectAPKFiles returns the APK files inside one package directory,
// sorted by name.
func CollectAPKFiles(packageDir string) ([]string, error) {
	entries, err := os.ReadDir(packageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read package directory %s: %w", packageDir, err)
	}

	var apks []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".apk") {
			apks = append(apks, filepath.Join(packageDir, entry.Name()))
		}
	}
	sort.Strings(apks)

	return apks, nil
}

// InstallPackageDir installs the APK files found in one package directory
// on the device: a single file goes through `adb install`, split APKs go
// through `adb install-multiple` as one session.
func (e *Engine) InstallPackageDir(packageDir string) error {
	apks, err := CollectAPKFiles(packageDir)
	if err != nil {
		return err
	}

	if len(apks) == 0 {
		return fmt.Errorf("no APK files found in %s", packageDir)
	}

	if len(apks) == 1 {
		return e.bridge.Install(apks[0])
	}
	return e.bridge.InstallMultiple(apks)
}
