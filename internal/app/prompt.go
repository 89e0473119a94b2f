package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/njm2360/apktool/internal/backup"
)

// The interactive prompts read from a bufio.Reader so tests can drive
// them with canned input instead of os.Stdin.

// promptLine prints the label and reads one trimmed line.
func promptLine(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptNumber asks for a number between min and max (inclusive),
// re-prompting until it gets one.
func promptNumber(r *bufio.Reader, w io.Writer, label string, min, max int) (int, error) {
	for {
		line, err := promptLine(r, w, label)
		if err != nil {
			return 0, err
		}

		n, convErr := strconv.Atoi(line)
		if convErr != nil || n < min || n > max {
			fmt.Fprintln(w, "Invalid selection. Please enter a valid number.")
			continue
		}
		return n, nil
	}
}

// promptNumberOnce asks for a number once; out-of-range or non-numeric
// input yields ok=false.
func promptNumberOnce(r *bufio.Reader, w io.Writer, label string, min, max int) (int, bool, error) {
	line, err := promptLine(r, w, label)
	if err != nil {
		return 0, false, err
	}

	n, convErr := strconv.Atoi(line)
	if convErr != nil || n < min || n > max {
		return 0, false, nil
	}
	return n, true, nil
}

// promptSnapshotName asks for a new snapshot name under root: an empty
// name becomes the timestamp, "$date" is substituted, and a name whose
// directory already exists re-prompts.
func promptSnapshotName(r *bufio.Reader, w io.Writer, root, timestamp string) (string, error) {
	fmt.Fprintln(w, "Enter backup name (or leave empty for timestamp):")
	for {
		line, err := promptLine(r, w, "> ")
		if err != nil {
			return "", err
		}

		name := backup.ExpandName(line, timestamp)
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			fmt.Fprintln(w, "Folder already exists. Try another name.")
			continue
		}
		return name, nil
	}
}

// Backup modes selectable in the backup prompt.
const (
	modeNew          = "new"
	modeDifferential = "differential"
)

// promptBackupMode asks for new vs. differential, re-prompting until the
// answer is 1 or 2.
func promptBackupMode(r *bufio.Reader, w io.Writer) (string, error) {
	for {
		fmt.Fprintln(w, "Select backup mode:")
		fmt.Fprintln(w, "1. New Backup")
		fmt.Fprintln(w, "2. Differential Backup")

		line, err := promptLine(r, w, ": ")
		if err != nil {
			return "", err
		}

		switch line {
		case "1":
			return modeNew, nil
		case "2":
			return modeDifferential, nil
		default:
			fmt.Fprintln(w, "Invalid choice. Please enter 1 or 2.")
		}
	}
}
