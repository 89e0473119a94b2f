package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("apk"), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func TestNextAvailablePath(t *testing.T) {
	dir := t.TempDir()

	t.Run("NoCollision", func(t *testing.T) {
		path := filepath.Join(dir, "base.apk")
		if got := NextAvailablePath(path); got != path {
			t.Errorf("Expected %s, got %s", path, got)
		}
	})

	t.Run("SingleCollision", func(t *testing.T) {
		path := filepath.Join(dir, "base.apk")
		touch(t, path)

		want := filepath.Join(dir, "base_1.apk")
		if got := NextAvailablePath(path); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	})

	t.Run("ProbesToFirstFree", func(t *testing.T) {
		path := filepath.Join(dir, "split.apk")
		touch(t, path)
		touch(t, filepath.Join(dir, "split_1.apk"))
		touch(t, filepath.Join(dir, "split_2.apk"))

		want := filepath.Join(dir, "split_3.apk")
		if got := NextAvailablePath(path); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	})

	t.Run("NoExtension", func(t *testing.T) {
		path := filepath.Join(dir, "payload")
		touch(t, path)

		want := filepath.Join(dir, "payload_1")
		if got := NextAvailablePath(path); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	})

	t.Run("SuffixBeforeExtension", func(t *testing.T) {
		path := filepath.Join(dir, "config.arm64.apk")
		touch(t, path)

		// Only the final extension moves behind the suffix.
		want := filepath.Join(dir, "config.arm64_1.apk")
		if got := NextAvailablePath(path); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	})
}
