// Package adb wraps the Android Debug Bridge executable.
//
// Every device interaction in apktool goes through this package: it builds
// adb command lines, runs them to completion, and parses the line-oriented
// output. There is no protocol implementation here — adb itself is the
// transport.
package adb

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/njm2360/apktool/internal/logger"
)

// Client invokes a specific adb binary, optionally pinned to one device.
type Client struct {
	path   string // adb binary; falls back to "adb" on PATH
	serial string // target device serial, injected as "-s <serial>"
}

// New creates a Client for the given adb binary path and device serial.
// Both may be empty: an empty path resolves to "adb" on PATH, an empty
// serial lets adb pick the only connected device.
func New(path, serial string) *Client {
	return &Client{path: path, serial: serial}
}

func (c *Client) bin() string {
	if c.path != "" {
		return c.path
	}
	return "adb"
}

// command builds an exec.Cmd for adb, injecting "-s <serial>" when a
// target device is configured.
func (c *Client) command(args ...string) *exec.Cmd {
	if c.serial != "" {
		args = append([]string{"-s", c.serial}, args...)
	}
	logger.Global().Debug("adb invocation", "bin", c.bin(), "args", strings.Join(args, " "))
	return exec.Command(c.bin(), args...)
}

// Available reports whether the adb binary can be executed at all.
func (c *Client) Available() bool {
	return c.command("version").Run() == nil
}

// Version returns the first line of `adb version` output.
func (c *Client) Version() (string, error) {
	output, err := c.command("version").Output()
	if err != nil {
		return "", wrapExecErr("adb version", err)
	}
	lines := strings.SplitN(strings.TrimSpace(string(output)), "\n", 2)
	if len(lines) == 0 || lines[0] == "" {
		return "", fmt.Errorf("empty adb version output")
	}
	return strings.TrimSpace(lines[0]), nil
}

// Device is one entry from `adb devices` output.
type Device struct {
	Serial string
	State  string // "device", "unauthorized", "offline", ...
}

// Devices returns all devices known to the adb server.
func (c *Client) Devices() ([]Device, error) {
	output, err := c.command("devices").Output()
	if err != nil {
		return nil, wrapExecErr("adb devices", err)
	}
	return ParseDevices(string(output)), nil
}

// DeviceConnected reports whether at least one device is attached and in
// the "device" state (authorized and ready).
func (c *Client) DeviceConnected() bool {
	devices, err := c.Devices()
	if err != nil {
		return false
	}
	for _, d := range devices {
		if d.State == "device" {
			return true
		}
	}
	return false
}

// ParseDevices parses `adb devices` output. The header line, server
// startup noise and blank lines are skipped; remaining lines are
// "<serial>\t<state>" pairs.
func ParseDevices(output string) []Device {
	var devices []Device
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "List of devices") ||
			strings.HasPrefix(line, "*") ||
			strings.Contains(line, "daemon") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		devices = append(devices, Device{Serial: fields[0], State: fields[1]})
	}
	return devices
}

// ListThirdPartyPackages returns the package names of all third-party
// (user-installed) applications on the device, via `pm list packages -3`.
func (c *Client) ListThirdPartyPackages() ([]string, error) {
	output, err := c.command("shell", "pm", "list", "packages", "-3").Output()
	if err != nil {
		return nil, wrapExecErr("pm list packages", err)
	}
	return ParsePackageLines(string(output)), nil
}

// PackagePaths resolves the on-device APK file paths for a package via
// `pm path`. Split APKs yield multiple paths.
func (c *Client) PackagePaths(pkg string) ([]string, error) {
	output, err := c.command("shell", "pm", "path", pkg).Output()
	if err != nil {
		return nil, wrapExecErr(fmt.Sprintf("pm path %s", pkg), err)
	}
	paths := ParsePackageLines(string(output))
	if len(paths) == 0 {
		return nil, fmt.Errorf("no installer path reported for %s", pkg)
	}
	return paths, nil
}

// ParsePackageLines extracts the values of "package:"-prefixed lines from
// pm output. Lines without the prefix are ignored.
func ParsePackageLines(output string) []string {
	var values []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "package:") {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(line, "package:"))
		if value != "" {
			values = append(values, value)
		}
	}
	return values
}

// Pull copies a file from the device to a local path.
func (c *Client) Pull(remote, local string) error {
	output, err := c.command("pull", remote, local).CombinedOutput()
	if err != nil {
		return fmt.Errorf("adb pull %s failed: %w (output: %s)",
			remote, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Install installs a single APK file on the device.
func (c *Client) Install(apk string) error {
	output, err := c.command("install", apk).CombinedOutput()
	if err != nil {
		return fmt.Errorf("adb install failed: %w (output: %s)",
			err, strings.TrimSpace(string(output)))
	}
	return nil
}

// InstallMultiple installs a set of split APKs belonging to one package
// in a single session via `adb install-multiple`.
func (c *Client) InstallMultiple(apks []string) error {
	if len(apks) == 0 {
		return fmt.Errorf("no APK files to install")
	}
	args := append([]string{"install-multiple"}, apks...)
	output, err := c.command(args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("adb install-multiple failed: %w (output: %s)",
			err, strings.TrimSpace(string(output)))
	}
	return nil
}

// wrapExecErr wraps a command error, surfacing captured stderr when the
// command ran but exited non-zero.
func wrapExecErr(what string, err error) error {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return fmt.Errorf("%s failed: %w (stderr: %s)",
			what, err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return fmt.Errorf("%s failed: %w", what, err)
}
