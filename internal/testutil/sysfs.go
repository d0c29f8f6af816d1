package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// controlFileRelPath mirrors the kernel layout of the EPP control file
// relative to a per-CPU directory.
const controlFileRelPath = "cpufreq/energy_performance_preference"

// ControlFilePath returns the EPP control file path for a core under root.
func ControlFilePath(root string, core int) string {
	return filepath.Join(root, fmt.Sprintf("cpu%d", core), controlFileRelPath)
}

// WriteControlFile creates root/cpu<core>/cpufreq/energy_performance_preference
// holding value plus a trailing newline, creating parent directories as needed.
func WriteControlFile(t *testing.T, root string, core int, value string) {
	t.Helper()

	path := ControlFilePath(root, core)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create cpu dir for core %d: %v", core, err)
	}
	if err := os.WriteFile(path, []byte(value+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write control file for core %d: %v", core, err)
	}
}

// MkCPUDir creates root/cpu<core> without a cpufreq control file, modeling a
// CPU entry whose driver does not expose EPP.
func MkCPUDir(t *testing.T, root string, core int) {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(root, fmt.Sprintf("cpu%d", core)), 0o755); err != nil {
		t.Fatalf("failed to create cpu dir for core %d: %v", core, err)
	}
}

// MkDir creates an arbitrary subdirectory of root, for non-CPU sysfs entries
// such as the shared cpufreq policy directory.
func MkDir(t *testing.T, root, name string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", name, err)
	}
}
