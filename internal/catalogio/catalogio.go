// Package catalogio parses the textual catalog formats cmd/scheduga
// accepts into timetable.SubjectRequest / timetable.Lock values. CSV is
// grounded on parse.go's line-oriented, error-line-numbered reader; JSON
// is grounded on json.go's schema-driven decode. Both are outer-boundary
// I/O, out of the core library's scope (spec §1), needed only to make
// the CLI runnable end-to-end.
package catalogio

import (
	"fmt"
	"os"
	"strings"

	"github.com/campusforge/scheduga/timetable"
)

// Load reads a catalog from path, dispatching on its extension: ".json"
// uses the JSON schema, anything else is treated as CSV.
func Load(path string) ([]timetable.SubjectRequest, []timetable.Lock, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("catalogio: opening %q: %w", path, err)
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return ParseJSON(f)
	}
	return ParseCSV(f)
}
