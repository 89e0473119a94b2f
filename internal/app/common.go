package app

import (
	"fmt"
	"os"

	"github.com/njm2360/apktool/internal/adb"
	"github.com/njm2360/apktool/internal/config"
	"github.com/njm2360/apktool/internal/logger"
	"github.com/njm2360/apktool/internal/store"
)

// settings are the resolved paths and device target for one command run.
// Flags win over the config file, which wins over the defaults.
type settings struct {
	root    string
	adbPath string
	dbPath  string
	serial  string
}

func loadSettings() (*settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	s := &settings{
		root:    cfg.BackupRoot,
		adbPath: cfg.ADBPath,
		dbPath:  cfg.DBPath,
		serial:  cfg.Serial,
	}
	if flagRoot != "" {
		s.root = flagRoot
	}
	if flagADB != "" {
		s.adbPath = flagADB
	}
	if flagDB != "" {
		s.dbPath = flagDB
	}
	if flagSerial != "" {
		s.serial = flagSerial
	}

	if s.dbPath == "" {
		s.dbPath, err = config.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *settings) bridge() *adb.Client {
	return adb.New(s.adbPath, s.serial)
}

// checkDevice verifies the two preconditions every device-facing mode
// has: adb is executable and an authorized device is attached.
func checkDevice(bridge *adb.Client) error {
	if !bridge.Available() {
		return fmt.Errorf("adb command not found. Install platform-tools or set --adb")
	}
	if !bridge.DeviceConnected() {
		return fmt.Errorf("no device connected. Check the USB connection and authorize the device")
	}
	return nil
}

// openIndex opens the history database and makes sure the schema exists.
func openIndex(s *settings) (*store.Store, error) {
	st, err := store.New(s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := st.CreateSchema(); err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to create database schema: %w", err)
	}
	return st, nil
}

// recordRun writes a backup run into the history index. Index failures
// must never fail the backup itself, so they are only logged.
func recordRun(s *settings, b *store.Backup, packages []*store.BackupPackage) {
	st, err := openIndex(s)
	if err != nil {
		logger.Global().Warn("history index unavailable", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: backup not recorded in history: %v\n", err)
		return
	}
	defer st.Close()

	id, err := st.InsertBackup(b)
	if err != nil {
		logger.Global().Warn("failed to record backup run", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: backup not recorded in history: %v\n", err)
		return
	}

	for _, p := range packages {
		p.BackupID = id
		if err := st.InsertBackupPackage(p); err != nil {
			logger.Global().Warn("failed to record backup package",
				"package", p.Package, "error", err)
		}
	}
}
