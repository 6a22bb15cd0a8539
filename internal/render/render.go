package render

import (
	"encoding/json"
	"fmt"

	"github.com/wharris/fleetgen/internal/fleet"
)

// Document renders the record sequence as the canonical fixture document: a
// JSON array with 2-space indentation, fields in struct order, and a single
// trailing newline. Every sink receives these exact bytes, so the file and
// console outputs are identical by construction.
func Document(records []fleet.ClusterRecord) ([]byte, error) {
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render fixture document: %w", err)
	}
	return append(out, '\n'), nil
}
