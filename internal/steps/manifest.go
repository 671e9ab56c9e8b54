package steps

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/akhil41/zsh-shell-customizer/internal/fsutil"
	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

const manifestSchemaVersion = 1

// Manifest records one run's outcomes and where its backups live. The
// rollback command reads it to find the most recent backup directory.
type Manifest struct {
	SchemaVersion int      `json:"schema_version"`
	StartedAtUTC  string   `json:"started_at_utc"`
	BackupDir     string   `json:"backup_dir,omitempty"`
	Results       []Result `json:"results"`
}

// WriteManifest stores the run's manifest at path.
func WriteManifest(path string, startedAt time.Time, backupDir string, results []Result) error {
	m := Manifest{
		SchemaVersion: manifestSchemaVersion,
		StartedAtUTC:  startedAt.UTC().Format(time.RFC3339),
		BackupDir:     backupDir,
		Results:       results,
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf(messages.ManifestWriteFmt, path, err)
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.ManifestWriteFmt, path, err)
	}
	return nil
}

// ReadManifest loads the manifest at path.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf(messages.ManifestReadFmt, path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf(messages.ManifestReadFmt, path, err)
	}
	if m.SchemaVersion != manifestSchemaVersion {
		return Manifest{}, fmt.Errorf(messages.ManifestSchemaFmt, m.SchemaVersion)
	}
	return m, nil
}
