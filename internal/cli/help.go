package cli

import (
	"fmt"
	"strings"

	"github.com/eppctl/eppctl/internal/epp"
)

// profileHelpSection builds the per-profile explanation block shown in the
// command help, one bullet per profile with its description indented below.
func profileHelpSection() string {
	var b strings.Builder
	b.WriteString("EPP Profiles Explanations:\n")

	const indent = "  "
	for _, p := range epp.Profiles() {
		fmt.Fprintf(&b, "- %s\n", p.Token())
		for _, line := range strings.Split(p.Description(), "\n") {
			fmt.Fprintf(&b, "%s%s\n", indent, line)
		}
	}

	return b.String()
}
