package store

import (
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.CreateSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

func TestInsertAndGetBackup(t *testing.T) {
	db := newTestStore(t)

	run := &Backup{
		Name:         "phone-20260830",
		Kind:         KindFull,
		CreatedAt:    time.Now().Truncate(time.Second),
		PackageCount: 3,
		Path:         "/backups/phone-20260830",
	}

	id, err := db.InsertBackup(run)
	if err != nil {
		t.Fatalf("InsertBackup failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("Expected positive backup ID, got %d", id)
	}

	got, err := db.GetBackup(id)
	if err != nil {
		t.Fatalf("GetBackup failed: %v", err)
	}

	if got.Name != run.Name {
		t.Errorf("Name = %s, want %s", got.Name, run.Name)
	}
	if got.Kind != KindFull {
		t.Errorf("Kind = %s, want %s", got.Kind, KindFull)
	}
	if got.PackageCount != 3 {
		t.Errorf("PackageCount = %d, want 3", got.PackageCount)
	}
	if !got.CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, run.CreatedAt)
	}
}

func TestGetBackupNotFound(t *testing.T) {
	db := newTestStore(t)

	if _, err := db.GetBackup(42); err == nil {
		t.Error("Expected error for missing backup")
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	db := newTestStore(t)

	old := &Backup{
		Name:      "old",
		Kind:      KindFull,
		CreatedAt: time.Now().Add(-48 * time.Hour),
		Path:      "/backups/old",
	}
	recent := &Backup{
		Name:      "recent",
		Kind:      KindDifferential,
		BaseName:  "old",
		CreatedAt: time.Now(),
		Path:      "/backups/old",
	}

	if _, err := db.InsertBackup(old); err != nil {
		t.Fatalf("InsertBackup(old) failed: %v", err)
	}
	if _, err := db.InsertBackup(recent); err != nil {
		t.Fatalf("InsertBackup(recent) failed: %v", err)
	}

	backups, err := db.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}

	if len(backups) != 2 {
		t.Fatalf("Expected 2 backups, got %d", len(backups))
	}
	if backups[0].Name != "recent" {
		t.Errorf("Expected recent first, got %s", backups[0].Name)
	}
	if backups[1].Name != "old" {
		t.Errorf("Expected old second, got %s", backups[1].Name)
	}
	if backups[0].BaseName != "old" {
		t.Errorf("Expected base name old, got %q", backups[0].BaseName)
	}
}

func TestBackupPackagesRoundTrip(t *testing.T) {
	db := newTestStore(t)

	id, err := db.InsertBackup(&Backup{
		Name:      "snap",
		Kind:      KindFull,
		CreatedAt: time.Now(),
		Path:      "/backups/snap",
	})
	if err != nil {
		t.Fatalf("InsertBackup failed: %v", err)
	}

	for _, p := range []*BackupPackage{
		{BackupID: id, Package: "com.b", FileCount: 4},
		{BackupID: id, Package: "com.a", FileCount: 1},
	} {
		if err := db.InsertBackupPackage(p); err != nil {
			t.Fatalf("InsertBackupPackage failed: %v", err)
		}
	}

	packages, err := db.ListBackupPackages(id)
	if err != nil {
		t.Fatalf("ListBackupPackages failed: %v", err)
	}

	if len(packages) != 2 {
		t.Fatalf("Expected 2 packages, got %d", len(packages))
	}
	// Ordered by package name.
	if packages[0].Package != "com.a" || packages[1].Package != "com.b" {
		t.Errorf("Unexpected order: %s, %s", packages[0].Package, packages[1].Package)
	}
	if packages[1].FileCount != 4 {
		t.Errorf("FileCount = %d, want 4", packages[1].FileCount)
	}
}

func TestCountBackups(t *testing.T) {
	db := newTestStore(t)

	count, err := db.CountBackups()
	if err != nil {
		t.Fatalf("CountBackups failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0, got %d", count)
	}

	if _, err := db.InsertBackup(&Backup{
		Name:      "snap",
		Kind:      KindFull,
		CreatedAt: time.Now(),
		Path:      "/backups/snap",
	}); err != nil {
		t.Fatalf("InsertBackup failed: %v", err)
	}

	count, err = db.CountBackups()
	if err != nil {
		t.Fatalf("CountBackups failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1, got %d", count)
	}
}
