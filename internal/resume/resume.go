// Package resume persists the step queue across a shell handoff. When the
// shell step switches the session to the freshly installed zsh, the remaining
// steps are written to a token file, the process execs zsh, and the hidden
// resume command picks the queue back up.
package resume

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/akhil41/zsh-shell-customizer/internal/fsutil"
	"github.com/akhil41/zsh-shell-customizer/internal/logging"
	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

const schemaVersion = 1

// MaxAge bounds how old a token may be. Anything older belongs to an
// abandoned run and is discarded rather than replayed.
const MaxAge = time.Hour

// ErrNoToken reports that no token file exists.
var ErrNoToken = errors.New(messages.ResumeNoToken)

// ErrStale reports a token older than MaxAge.
var ErrStale = errors.New("resume token is stale")

// Token is the JSON payload written before a shell handoff.
type Token struct {
	SchemaVersion  int      `json:"schema_version"`
	CreatedAtUTC   string   `json:"created_at_utc"`
	Remaining      []string `json:"remaining"`
	AssumeDefaults bool     `json:"assume_defaults"`
}

// Write stores the remaining queue at path.
func Write(path string, remaining []string, assumeDefaults bool) error {
	token := Token{
		SchemaVersion:  schemaVersion,
		CreatedAtUTC:   time.Now().UTC().Format(time.RFC3339),
		Remaining:      remaining,
		AssumeDefaults: assumeDefaults,
	}
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf(messages.ResumeTokenWriteFmt, path, err)
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o600); err != nil {
		return fmt.Errorf(messages.ResumeTokenWriteFmt, path, err)
	}
	log := logging.GetLogger("resume")
	log.Info().Str("path", path).Strs("remaining", remaining).Msg("wrote resume token")
	return nil
}

// Consume loads and deletes the token at path. The file is removed even when
// the token turns out to be invalid or stale, so a bad token can never wedge
// the command.
func Consume(path string, now time.Time) (Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Token{}, ErrNoToken
		}
		return Token{}, fmt.Errorf(messages.ResumeTokenDecodeFmt, path, err)
	}
	_ = os.Remove(path)

	var token Token
	if err := json.Unmarshal(data, &token); err != nil {
		return Token{}, fmt.Errorf(messages.ResumeTokenDecodeFmt, path, err)
	}
	if token.SchemaVersion != schemaVersion {
		return Token{}, fmt.Errorf(messages.ResumeTokenSchemaFmt, token.SchemaVersion)
	}
	createdAt, err := time.Parse(time.RFC3339, token.CreatedAtUTC)
	if err != nil {
		return Token{}, fmt.Errorf(messages.ResumeTokenDecodeFmt, path, err)
	}
	if now.Sub(createdAt) > MaxAge {
		return Token{}, ErrStale
	}
	return token, nil
}

// execFunc is swappable in tests; unix.Exec never returns on success.
var execFunc = unix.Exec

// ExecShell replaces the current process with zsh running the resume command
// of this binary. Only reached after the token is on disk.
func ExecShell(zshPath string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf(messages.ResumeExecFailedFmt, zshPath, err)
	}
	argv := []string{zshPath, "-c", fmt.Sprintf("%q %s", exe, messages.ResumeUse)}
	if err := execFunc(zshPath, argv, os.Environ()); err != nil {
		return fmt.Errorf(messages.ResumeExecFailedFmt, zshPath, err)
	}
	return nil
}
