// Package backup snapshots files before a run mutates them.
//
// Each run owns one timestamped directory under the backup parent. The first
// snapshot of a file within a run is ground truth for rollback: later calls
// for the same path are no-ops, so a single restore returns the file to its
// pre-run content.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/akhil41/zsh-shell-customizer/internal/fsutil"
	"github.com/akhil41/zsh-shell-customizer/internal/logging"
	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

// Suffix marks backup copies inside a run directory.
const Suffix = ".backup"

// dirStamp names run directories; it sorts lexicographically by creation time.
const dirStamp = "20060102-150405"

// Record describes one first-write-wins snapshot.
type Record struct {
	Original string
	Backup   string
	At       time.Time
}

// Facility manages the backup directory for a single run.
type Facility struct {
	dir     string
	records map[string]Record
	now     func() time.Time
	log     zerolog.Logger
}

// New creates a facility rooted at parent. The run directory is created
// lazily on the first snapshot, so declined runs leave nothing behind.
func New(parent string, now func() time.Time) *Facility {
	if now == nil {
		now = time.Now
	}
	return &Facility{
		dir:     filepath.Join(parent, now().Format(dirStamp)),
		records: make(map[string]Record),
		now:     now,
		log:     logging.GetLogger("backup"),
	}
}

// Dir returns the run's backup directory path.
func (f *Facility) Dir() string {
	return f.dir
}

// File snapshots path into the run directory. Calling it twice in one run
// keeps the first snapshot. A missing original is a no-op, recorded as
// created=false with no error.
func (f *Facility) File(path string) (Record, bool, error) {
	clean := filepath.Clean(path)
	if rec, ok := f.records[clean]; ok {
		return rec, false, nil
	}
	if _, err := os.Stat(clean); os.IsNotExist(err) {
		return Record{}, false, nil
	} else if err != nil {
		return Record{}, false, fmt.Errorf(messages.BackupCopyFmt, clean, err)
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return Record{}, false, fmt.Errorf(messages.BackupCreateDirFmt, f.dir, err)
	}
	dst := filepath.Join(f.dir, filepath.Base(clean)+Suffix)
	if err := fsutil.CopyFile(clean, dst); err != nil {
		return Record{}, false, fmt.Errorf(messages.BackupCopyFmt, clean, err)
	}

	rec := Record{Original: clean, Backup: dst, At: f.now()}
	f.records[clean] = rec
	f.log.Info().Str("original", clean).Str("backup", dst).Msg("backed up file")
	return rec, true, nil
}

// Restore copies the run's snapshot of path back over the original.
func (f *Facility) Restore(path string) error {
	clean := filepath.Clean(path)
	rec, ok := f.records[clean]
	if !ok {
		return fmt.Errorf(messages.BackupNoRecordFmt, clean)
	}
	if err := fsutil.CopyFile(rec.Backup, rec.Original); err != nil {
		return fmt.Errorf(messages.BackupRestoreFmt, rec.Original, rec.Backup, err)
	}
	f.log.Info().Str("original", rec.Original).Msg("restored file from backup")
	return nil
}

// Records returns the run's backup records sorted by original path.
func (f *Facility) Records() []Record {
	out := make([]Record, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Original < out[j].Original })
	return out
}

// RestoreDir copies every *.backup file under dir back into targets, keyed by
// basename. Used by the rollback command against a previous run's directory;
// targets maps backup basenames (without Suffix) to destination paths.
func RestoreDir(dir string, targets map[string]string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	restored := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		base, ok := strings.CutSuffix(name, Suffix)
		if !ok || base == "" {
			continue
		}
		dst, ok := targets[base]
		if !ok {
			continue
		}
		if err := fsutil.CopyFile(filepath.Join(dir, name), dst); err != nil {
			return restored, fmt.Errorf(messages.BackupRestoreFmt, dst, name, err)
		}
		restored++
	}
	return restored, nil
}
