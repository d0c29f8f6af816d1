// Package cpufreq locates and accesses per-CPU energy performance preference
// control files exposed through the /sys filesystem.
package cpufreq

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultRoot is the kernel's per-CPU device directory.
const DefaultRoot = "/sys/devices/system/cpu"

// controlFileRelPath is the EPP control file location relative to a per-CPU
// directory. It exists only when the cpufreq driver runs in active mode.
const controlFileRelPath = "cpufreq/energy_performance_preference"

// cpuDirPrefix prefixes per-CPU directory names (cpu0, cpu1, ...).
const cpuDirPrefix = "cpu"

// ErrNoControlFiles indicates that discovery completed without finding any
// EPP control files, meaning the host does not expose the interface.
var ErrNoControlFiles = errors.New("no CPU energy preference files found")

// ErrInvalidCoreIndex indicates a control file path whose CPU directory name
// matched the expected prefix but did not carry a parsable core index.
var ErrInvalidCoreIndex = errors.New("invalid CPU number in path")

// ControlLocation identifies one core's EPP control file.
type ControlLocation struct {
	// Core is the logical CPU index parsed from the directory name.
	Core int

	// Path is the full path of the control file.
	Path string
}

// Discover scans root for directories named cpu<N> that expose an EPP control
// file and returns their locations sorted by path. Note that path order is
// lexicographic, so cpu10 sorts before cpu2; readers reconstruct numeric
// order from the core index when they need it.
//
// It returns ErrNoControlFiles when the scan succeeds but no control files
// exist, which distinguishes an unsupported host from an enumeration failure.
func Discover(root string) ([]ControlLocation, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", root, err)
	}

	var locations []ControlLocation
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		core, ok := parseCPUDirName(entry.Name())
		if !ok {
			continue // Not a per-CPU directory (cpufreq, power, ...).
		}

		path := filepath.Join(root, entry.Name(), controlFileRelPath)
		if _, err := os.Stat(path); err != nil {
			continue // CPU present but no EPP knob exposed.
		}

		locations = append(locations, ControlLocation{Core: core, Path: path})
	}

	if len(locations) == 0 {
		return nil, ErrNoControlFiles
	}

	sort.Slice(locations, func(i, j int) bool {
		return locations[i].Path < locations[j].Path
	})

	return locations, nil
}

// parseCPUDirName extracts the core index from a directory name of the form
// cpu<digits>. Any other name, including a bare "cpu" or a non-numeric
// suffix, is rejected.
func parseCPUDirName(name string) (int, bool) {
	digits, found := strings.CutPrefix(name, cpuDirPrefix)
	if !found {
		return 0, false
	}
	return parseCoreNumber(digits)
}

// parseCoreNumber parses the digit suffix of a cpu<digits> name. Core
// indexes fit 32 bits; discovery and ParseCoreIndex share this parser so a
// name admitted by one is never rejected by the other.
func parseCoreNumber(digits string) (int, bool) {
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// ParseCoreIndex recovers the core index from a control file path by
// examining the grandparent directory name (.../cpu<N>/cpufreq/<file>).
//
// A directory name without the cpu prefix returns ok == false and no error;
// discovery guarantees the shape, so callers treat this as a skippable
// anomaly. A name that carries the prefix but whose remainder does not parse
// as a number is an invariant violation and returns ErrInvalidCoreIndex.
func ParseCoreIndex(path string) (core int, ok bool, err error) {
	cpuDir := filepath.Base(filepath.Dir(filepath.Dir(path)))

	digits, found := strings.CutPrefix(cpuDir, cpuDirPrefix)
	if !found {
		return 0, false, nil
	}

	n, ok := parseCoreNumber(digits)
	if !ok {
		return 0, false, fmt.Errorf("%w: %q in %s", ErrInvalidCoreIndex, cpuDir, path)
	}

	return n, true, nil
}

// ReadValue reads a control file and returns its content with surrounding
// whitespace trimmed.
func ReadValue(path string) (string, error) {
	//nolint:gosec // G304: Path comes from /sys discovery.
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteValue writes value plus a trailing newline to a control file. The file
// is opened write-in-place (no truncate, no create) to match sysfs semantics,
// and the write is handed to the kernel before the call returns.
func WriteValue(path, value string) error {
	//nolint:gosec // G304: Path comes from /sys discovery.
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}

	if _, err := f.Write([]byte(value + "\n")); err != nil {
		f.Close() // nolint:errcheck
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to flush write to %s: %w", path, err)
	}

	return nil
}
