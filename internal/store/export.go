package store

import (
	"encoding/json"
	"os"
)

// ExportJSON writes a single run's metadata to path as indented JSON.
func ExportJSON(path string, meta *RunMetadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
