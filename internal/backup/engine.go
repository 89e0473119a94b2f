// Package backup implements the apktool backup engine: snapshot
// directories under the backup root, set-difference planning against a
// base snapshot, APK extraction from the device, and reinstallation of a
// snapshot's packages.
package backup

import (
	"github.com/njm2360/apktool/internal/adb"
)

// Engine runs backup and restore operations against one device through
// the adb client, storing snapshots under root.
type Engine struct {
	bridge *adb.Client
	root   string
}

// New creates an Engine for the given adb client and backup root.
func New(bridge *adb.Client, root string) *Engine {
	return &Engine{bridge: bridge, root: root}
}
