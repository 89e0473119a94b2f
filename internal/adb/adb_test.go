package adb

import (
	"reflect"
	"testing"
)

// Test data: sample `adb devices` output
const mockDevicesOutput = `List of devices attached
emulator-5554	device
R58M123ABC	unauthorized
192.168.1.20:5555	offline

`

// Test data: sample `pm list packages -3` output
const mockPackageListOutput = `package:com.example.app
package:org.mozilla.firefox
package:com.spotify.music
`

func TestParseDevices(t *testing.T) {
	devices := ParseDevices(mockDevicesOutput)

	expected := []Device{
		{Serial: "emulator-5554", State: "device"},
		{Serial: "R58M123ABC", State: "unauthorized"},
		{Serial: "192.168.1.20:5555", State: "offline"},
	}

	if !reflect.DeepEqual(devices, expected) {
		t.Errorf("ParseDevices() = %v, want %v", devices, expected)
	}
}

func TestParseDevicesSkipsNoise(t *testing.T) {
	output := "* daemon not running; starting now at tcp:5037\n" +
		"* daemon started successfully\n" +
		"List of devices attached\n" +
		"abc123\tdevice\n"

	devices := ParseDevices(output)

	if len(devices) != 1 {
		t.Fatalf("Expected 1 device, got %d: %v", len(devices), devices)
	}
	if devices[0].Serial != "abc123" || devices[0].State != "device" {
		t.Errorf("Unexpected device: %+v", devices[0])
	}
}

func TestParseDevicesEmpty(t *testing.T) {
	devices := ParseDevices("List of devices attached\n\n")
	if len(devices) != 0 {
		t.Errorf("Expected no devices, got %v", devices)
	}
}

func TestParsePackageLines(t *testing.T) {
	packages := ParsePackageLines(mockPackageListOutput)

	expected := []string{
		"com.example.app",
		"org.mozilla.firefox",
		"com.spotify.music",
	}

	if !reflect.DeepEqual(packages, expected) {
		t.Errorf("ParsePackageLines() = %v, want %v", packages, expected)
	}
}

func TestParsePackageLinesCRLF(t *testing.T) {
	// adb shell output from some devices carries \r\n line endings.
	output := "package:com.example.app\r\npackage:com.other.app\r\n"

	packages := ParsePackageLines(output)

	expected := []string{"com.example.app", "com.other.app"}
	if !reflect.DeepEqual(packages, expected) {
		t.Errorf("ParsePackageLines() = %v, want %v", packages, expected)
	}
}

func TestParsePackageLinesIgnoresNoise(t *testing.T) {
	output := "garbage line\n\npackage:com.example.app\npackage:\nWARNING: something\n"

	packages := ParsePackageLines(output)

	if len(packages) != 1 || packages[0] != "com.example.app" {
		t.Errorf("Expected only com.example.app, got %v", packages)
	}
}

func TestParsePackageLinesPaths(t *testing.T) {
	// pm path output reuses the same prefix for APK file paths.
	output := "package:/data/app/com.example.app-1/base.apk\n" +
		"package:/data/app/com.example.app-1/split_config.arm64_v8a.apk\n"

	paths := ParsePackageLines(output)

	if len(paths) != 2 {
		t.Fatalf("Expected 2 paths, got %d: %v", len(paths), paths)
	}
	if paths[0] != "/data/app/com.example.app-1/base.apk" {
		t.Errorf("Unexpected first path: %s", paths[0])
	}
}

func TestClientSerialInjection(t *testing.T) {
	c := New("", "emulator-5554")
	cmd := c.command("shell", "pm", "path", "com.example.app")

	args := cmd.Args
	// args[0] is the binary
	if len(args) < 3 || args[1] != "-s" || args[2] != "emulator-5554" {
		t.Errorf("Expected -s emulator-5554 injection, got %v", args)
	}
}

func TestClientBinFallback(t *testing.T) {
	if got := New("", "").bin(); got != "adb" {
		t.Errorf("Expected default binary adb, got %s", got)
	}
	if got := New("/opt/sdk/adb", "").bin(); got != "/opt/sdk/adb" {
		t.Errorf("Expected configured binary, got %s", got)
	}
}
