package backup

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ListSnapshots returns the names of all snapshot directories under the
// backup root, sorted. Plain files under the root are ignored.
func ListSnapshots(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup root %s: %w", root, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

// PackageNames returns the entry names inside a snapshot directory, one
// per backed-up package.
func PackageNames(snapshotDir string) ([]string, error) {
	entries, err := os.ReadDir(snapshotDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", snapshotDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}

// ExpandName resolves the user-entered snapshot name. An empty name
// becomes the timestamp; any "$date" occurrence is replaced by it.
func ExpandName(name, timestamp string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return timestamp
	}
	return strings.ReplaceAll(name, "$date", timestamp)
}

// TimestampFormat is the reference layout for generated snapshot names.
const TimestampFormat = "20060102150405"
