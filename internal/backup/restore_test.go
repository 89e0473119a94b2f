package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectAPKFiles(t *testing.T) {
	dir := t.TempDir()

	touch(t, filepath.Join(dir, "split_b.apk"))
	touch(t, filepath.Join(dir, "base.apk"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "BASE.APK"))
	if err := os.Mkdir(filepath.Join(dir, "nested.apk"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	apks, err := CollectAPKFiles(dir)
	if err != nil {
		t.Fatalf("CollectAPKFiles failed: %v", err)
	}

	// Sorted, .apk-only (case-insensitive), directories skipped.
	want := []string{
		filepath.Join(dir, "BASE.APK"),
		filepath.Join(dir, "base.apk"),
		filepath.Join(dir, "split_b.apk"),
	}

	if len(apks) != len(want) {
		t.Fatalf("Expected %d files, got %d: %v", len(want), len(apks), apks)
	}
	for i := range want {
		if apks[i] != want[i] {
			t.Errorf("apks[%d] = %s, want %s", i, apks[i], want[i])
		}
	}
}

func TestCollectAPKFilesEmpty(t *testing.T) {
	apks, err := CollectAPKFiles(t.TempDir())
	if err != nil {
		t.Fatalf("CollectAPKFiles failed: %v", err)
	}
	if len(apks) != 0 {
		t.Errorf("Expected no files, got %v", apks)
	}
}

func TestCollectAPKFilesMissingDir(t *testing.T) {
	_, err := CollectAPKFiles(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Expected error for missing directory")
	}
}
