package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extract pulls every APK file of one package into
// <snapshotDir>/<pkg>/. It returns the number of files pulled. A failed
// pull of one split is reported on stderr and the remaining files are
// still attempted.
func (e *Engine) Extract(pkg, snapshotDir string) (int, error) {
	remotePaths, err := e.bridge.PackagePaths(pkg)
	if err != nil {
		return 0, err
	}

	packageDir := filepath.Join(snapshotDir, pkg)
	if err := os.MkdirAll(packageDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create package directory: %w", err)
	}

	pulled := 0
	for _, remote := range remotePaths {
		name := filepath.Base(strings.TrimSpace(remote))
		if name == "" || name == "." || name == "/" {
			fmt.Fprintf(os.Stderr, "    warning: unusable installer path %q\n", remote)
			continue
		}

		local := NextAvailablePath(filepath.Join(packageDir, name))

		if err := e.bridge.Pull(remote, local); err != nil {
			fmt.Fprintf(os.Stderr, "    warning: failed to pull %s: %v\n", name, err)
			continue
		}

		if _, err := os.Stat(local); err != nil {
			fmt.Fprintf(os.Stderr, "    warning: %s was not created\n", name)
			continue
		}

		pulled++
	}

	if pulled == 0 {
		return 0, fmt.Errorf("no installer files pulled for %s", pkg)
	}

	return pulled, nil
}

// NextAvailablePath returns path itself when nothing exists there, or the
// first "<stem>_N<ext>" variant (N = 1, 2, ...) that does not exist yet.
func NextAvailablePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
