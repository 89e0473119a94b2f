package app

import (
	"os"
	"path/filepath"
	"testing"
)

func resetFlags(t *testing.T) {
	t.Helper()
	old := []string{flagConfig, flagRoot, flagADB, flagDB, flagSerial}
	t.Cleanup(func() {
		flagConfig, flagRoot, flagADB, flagDB, flagSerial = old[0], old[1], old[2], old[3], old[4]
	})
	flagConfig, flagRoot, flagADB, flagDB, flagSerial = "", "", "", "", ""
}

func TestLoadSettingsDefaults(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}

	if s.root != "backup" {
		t.Errorf("root = %q, want backup", s.root)
	}
	if s.adbPath != "" || s.serial != "" {
		t.Errorf("Expected empty adb/serial defaults, got %+v", s)
	}
	if filepath.Base(s.dbPath) != "apktool.db" {
		t.Errorf("dbPath = %q, want default apktool.db", s.dbPath)
	}
}

func TestLoadSettingsFlagsWinOverConfig(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "backup_root: /from/config\nserial: config-serial\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	flagConfig = cfgPath
	flagRoot = "/from/flag"

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings failed: %v", err)
	}

	if s.root != "/from/flag" {
		t.Errorf("root = %q, want flag value", s.root)
	}
	if s.serial != "config-serial" {
		t.Errorf("serial = %q, want config value", s.serial)
	}
}
