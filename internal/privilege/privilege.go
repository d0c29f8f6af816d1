// Package privilege detects the privilege context eppctl runs under.
//
// Writing EPP control files requires root, so the CLI uses this package to
// decide whether a permission failure deserves a "re-run with sudo" hint and
// to log the invoking user when running under sudo.
package privilege

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
)

// UserContext identifies the user that invoked the process, accounting for
// sudo escalation.
type UserContext struct {
	Username string
	UID      int
	GID      int
}

// IsRoot reports whether the process runs with root privileges (euid == 0).
func IsRoot() bool {
	return os.Geteuid() == 0
}

// IsRunningUnderSudo reports whether the process was started via sudo, based
// on the SUDO_USER environment variable.
func IsRunningUnderSudo() bool {
	return os.Getenv("SUDO_USER") != ""
}

// DetectOriginalUser returns the identity of the invoking user. When running
// under sudo it reconstructs the original user from SUDO_USER/SUDO_UID/
// SUDO_GID; otherwise it returns the current user.
func DetectOriginalUser() (*UserContext, error) {
	sudoUser := os.Getenv("SUDO_USER")
	if sudoUser != "" {
		uidStr := os.Getenv("SUDO_UID")
		gidStr := os.Getenv("SUDO_GID")

		if uidStr == "" || gidStr == "" {
			return nil, fmt.Errorf("SUDO_USER set but SUDO_UID or SUDO_GID missing")
		}

		uid, err := strconv.Atoi(uidStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SUDO_UID: %w", err)
		}

		gid, err := strconv.Atoi(gidStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SUDO_GID: %w", err)
		}

		return &UserContext{
			Username: sudoUser,
			UID:      uid,
			GID:      gid,
		}, nil
	}

	u, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	return &UserContext{
		Username: u.Username,
		UID:      os.Getuid(),
		GID:      os.Getgid(),
	}, nil
}
