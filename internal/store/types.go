package store

import "time"

// Backup kinds recorded in the history index.
const (
	KindFull         = "full"
	KindDifferential = "differential"
)

// Backup represents one recorded backup run.
type Backup struct {
	ID           int64
	Name         string
	Kind         string // KindFull or KindDifferential
	BaseName     string // base snapshot name for differential runs
	CreatedAt    time.Time
	PackageCount int
	Path         string // snapshot directory the run wrote into
}

// BackupPackage represents a package pulled during a backup run.
type BackupPackage struct {
	BackupID  int64
	Package   string
	FileCount int // APK files pulled for the package (splits included)
}
