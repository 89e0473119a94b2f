package backup

import (
	"fmt"
	"path/filepath"
)

// Plan is the set of packages one backup run will pull.
type Plan struct {
	// Packages to back up, in device listing order.
	Packages []string
	// Base holds the names already present in the base snapshot, empty
	// for a full backup.
	Base []string
}

// Plan computes the packages to back up: every third-party package on the
// device minus the names already present in baseDir. An empty baseDir
// plans a full backup.
func (e *Engine) Plan(baseDir string) (*Plan, error) {
	devicePackages, err := e.bridge.ListThirdPartyPackages()
	if err != nil {
		return nil, fmt.Errorf("failed to list device packages: %w", err)
	}

	var basePackages []string
	if baseDir != "" {
		basePackages, err = PackageNames(filepath.Clean(baseDir))
		if err != nil {
			return nil, err
		}
	}

	return &Plan{
		Packages: Diff(devicePackages, basePackages),
		Base:     basePackages,
	}, nil
}

// Diff returns the elements of device not contained in base, preserving
// device order.
func Diff(device, base []string) []string {
	seen := make(map[string]struct{}, len(base))
	for _, name := range base {
		seen[name] = struct{}{}
	}

	var out []string
	for _, name := range device {
		if _, ok := seen[name]; !ok {
			out = append(out, name)
		}
	}

	return out
}
