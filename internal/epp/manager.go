package epp

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/eppctl/eppctl/internal/sys/cpufreq"
)

// PermissionError reports a control file write denied by the kernel, which
// almost always means the process lacks root privileges.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied writing %s: root privileges are required to modify EPP settings", e.Path)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

// Manager applies and reads EPP profiles across a fixed set of control file
// locations discovered at startup. A manager owns its location list for the
// lifetime of one invocation and never rescans.
type Manager struct {
	locations []cpufreq.ControlLocation
	logger    zerolog.Logger
}

// NewManager returns a manager operating on the given locations.
func NewManager(locations []cpufreq.ControlLocation, logger zerolog.Logger) *Manager {
	return &Manager{
		locations: locations,
		logger:    logger,
	}
}

// Apply writes the profile's token to every control file in order. Writes
// are sequential and not transactional: when a location fails, earlier
// locations keep the new value and later ones are left untouched. The error
// identifies the failing location; a permission denial is returned as a
// *PermissionError.
func (m *Manager) Apply(profile Profile) error {
	token := profile.Token()

	for _, loc := range m.locations {
		if err := cpufreq.WriteValue(loc.Path, token); err != nil {
			if errors.Is(err, os.ErrPermission) {
				return &PermissionError{Path: loc.Path, Err: err}
			}
			return err
		}
		m.logger.Debug().
			Int("core", loc.Core).
			Str("value", token).
			Msg("wrote EPP value")
	}

	return nil
}

// Read collects the current value of every control file, labels each entry by
// core, and returns the entries sorted by label. A location whose path no
// longer carries a cpu<N> directory name is skipped with a warning; discovery
// guarantees the shape, so hitting one means the list was built elsewhere.
func (m *Manager) Read() ([]Entry, error) {
	entries := make([]Entry, 0, len(m.locations))

	for _, loc := range m.locations {
		core, ok, err := cpufreq.ParseCoreIndex(loc.Path)
		if err != nil {
			return nil, err
		}
		if !ok {
			m.logger.Warn().
				Str("path", loc.Path).
				Msg("could not extract CPU number from path, skipping")
			continue
		}

		value, err := cpufreq.ReadValue(loc.Path)
		if err != nil {
			return nil, err
		}

		entries = append(entries, Entry{
			Label: fmt.Sprintf("CPU%02d", core),
			Value: value,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})

	return entries, nil
}
