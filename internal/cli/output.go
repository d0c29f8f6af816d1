package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/eppctl/eppctl/internal/epp"
)

// OutputFormat selects how the show report is rendered.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// supportedFormats lists the formats accepted by the --format flag.
var supportedFormats = []OutputFormat{FormatTable, FormatJSON}

func formatNames() []string {
	names := make([]string, len(supportedFormats))
	for i, f := range supportedFormats {
		names[i] = string(f)
	}
	return names
}

// validateFormat checks that format names a supported output format.
func validateFormat(format string) error {
	for _, s := range supportedFormats {
		if format == string(s) {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q, must be one of: %s",
		format, strings.Join(formatNames(), ", "))
}

// renderEntries writes the report in the requested format.
func renderEntries(w io.Writer, entries []epp.Entry, format OutputFormat) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	default:
		_, err := io.WriteString(w, epp.FormatEntries(entries))
		return err
	}
}
