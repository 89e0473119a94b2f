// Package output provides terminal output utilities for apktool:
// table rendering for device packages and backup history, a progress bar
// for long-running pulls, and human-readable time formatting.
//
// Table rendering uses ASCII characters and ANSI color codes; color is
// suppressed on non-TTY output and when NO_COLOR is set.
package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/njm2360/apktool/internal/store"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderPackageList renders the device's third-party packages as a
// numbered table, sorted by name.
func RenderPackageList(packages []string) string {
	if len(packages) == 0 {
		return "No third-party packages found.\n"
	}

	sorted := make([]string, len(packages))
	copy(sorted, packages)
	sort.Strings(sorted)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %s\n", "#", "Package"))
	sb.WriteString(strings.Repeat("─", 60))
	sb.WriteString("\n")

	for i, pkg := range sorted {
		sb.WriteString(fmt.Sprintf("%-5d %s\n", i+1, truncate(pkg, 54)))
	}

	return sb.String()
}

// RenderBackupTable renders recorded backup runs, newest first.
func RenderBackupTable(backups []*store.Backup) string {
	if len(backups) == 0 {
		return "No backups recorded.\n"
	}

	sorted := make([]*store.Backup, len(backups))
	copy(sorted, backups)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-22s %-13s %-10s %s\n",
		"ID", "Name", "Kind", "Packages", "Created"))
	sb.WriteString(strings.Repeat("─", 72))
	sb.WriteString("\n")

	for _, b := range sorted {
		kind := b.Kind
		if b.Kind == store.KindDifferential && b.BaseName != "" {
			kind = colorize(colorYellow, kind)
		} else if b.Kind == store.KindFull {
			kind = colorize(colorGreen, kind)
		}

		sb.WriteString(fmt.Sprintf("%-5d %-22s %-13s %-10d %s\n",
			b.ID,
			truncate(b.Name, 22),
			kind,
			b.PackageCount,
			formatRelativeTime(b.CreatedAt)))
	}

	return sb.String()
}

// RenderSnapshotMenu renders snapshot directory names as the numbered
// selection menu used by the interactive prompts.
func RenderSnapshotMenu(names []string) string {
	var sb strings.Builder
	for i, name := range names {
		sb.WriteString(fmt.Sprintf("%d: %s\n", i+1, name))
	}
	return sb.String()
}

// formatRelativeTime converts a timestamp to relative time (e.g., "2 days ago").
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	case diff < 30*24*time.Hour:
		weeks := int(diff.Hours() / 24 / 7)
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	case diff < 365*24*time.Hour:
		months := int(diff.Hours() / 24 / 30)
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	default:
		years := int(diff.Hours() / 24 / 365)
		if years == 1 {
			return "1 year ago"
		}
		return fmt.Sprintf("%d years ago", years)
	}
}

// truncate truncates a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
