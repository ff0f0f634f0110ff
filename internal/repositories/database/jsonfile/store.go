// Package jsonfile persists whole-state blobs as JSON snapshot files for
// single-user local deployments. Writes are atomic: the payload goes to a
// .tmp file first and replaces the real file with a rename, so a crash
// mid-write never corrupts the previous snapshot.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func writeAtomic(path string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return os.Rename(tmp, path)
}
