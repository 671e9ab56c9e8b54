// Package zshrc patches the user's shell configuration file.
//
// Only two mutation shapes exist: append-line-if-absent and single-pass
// pattern replacement. Both are self-idempotent and write through a
// temp-file-then-rename sequence. Every mutation snapshots the file into the
// run's backup directory first.
package zshrc

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/rs/zerolog"

	"github.com/akhil41/zsh-shell-customizer/internal/backup"
	"github.com/akhil41/zsh-shell-customizer/internal/fsutil"
	"github.com/akhil41/zsh-shell-customizer/internal/logging"
	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

var pluginsLineRe = regexp.MustCompile(`(?m)^plugins=\(([^)]*)\)[ \t]*$`)

// Patcher applies idempotent edits to a single config file.
type Patcher struct {
	path   string
	backup *backup.Facility
	log    zerolog.Logger
}

// NewPatcher creates a patcher for path. Mutations are preceded by a
// first-write-wins snapshot into fac.
func NewPatcher(path string, fac *backup.Facility) *Patcher {
	return &Patcher{path: path, backup: fac, log: logging.GetLogger("zshrc")}
}

// Path returns the patched file's path.
func (p *Patcher) Path() string {
	return p.path
}

// Contains reports whether the file contains line as an exact full line.
func (p *Patcher) Contains(line string) (bool, error) {
	content, err := p.read()
	if err != nil {
		return false, err
	}
	return containsLine(content, line), nil
}

// AppendLineIfAbsent appends line unless it is already present as an exact
// full line. Reports whether the file changed.
func (p *Patcher) AppendLineIfAbsent(line string) (bool, error) {
	content, err := p.read()
	if err != nil {
		return false, err
	}
	updated, changed := appendLineIfAbsent(content, line)
	if !changed {
		return false, nil
	}
	return true, p.write(content, updated)
}

// ReplacePattern rewrites the first match of re with repl. When re does not
// match and fallbackLine is non-empty, fallbackLine is appended instead.
// Reports whether the file changed.
func (p *Patcher) ReplacePattern(re *regexp.Regexp, repl string, fallbackLine string) (bool, error) {
	content, err := p.read()
	if err != nil {
		return false, err
	}
	updated, changed := replacePattern(content, re, repl)
	if !changed && fallbackLine != "" && !containsLine(content, fallbackLine) {
		updated, changed = appendLineIfAbsent(content, fallbackLine)
	}
	if !changed {
		return false, nil
	}
	return true, p.write(content, updated)
}

// AppendPlugin inserts name into the plugins=(...) list if absent.
// Reports whether the file changed.
func (p *Patcher) AppendPlugin(name string) (bool, error) {
	content, err := p.read()
	if err != nil {
		return false, err
	}
	updated, changed, err := appendPluginToken(content, name)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}
	return true, p.write(content, updated)
}

// HasPlugin reports whether name appears in the plugins=(...) list.
func (p *Patcher) HasPlugin(name string) (bool, error) {
	content, err := p.read()
	if err != nil {
		return false, err
	}
	m := pluginsLineRe.FindStringSubmatch(content)
	if m == nil {
		return false, nil
	}
	for _, tok := range strings.Fields(m[1]) {
		if tok == name {
			return true, nil
		}
	}
	return false, nil
}

func (p *Patcher) read() (string, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf(messages.PatchReadFmt, p.path, err)
	}
	return string(data), nil
}

func (p *Patcher) write(before string, after string) error {
	if p.backup != nil {
		if _, _, err := p.backup.File(p.path); err != nil {
			return err
		}
	}
	p.log.Debug().Str("path", p.path).Msg(diffPreview(p.path, before, after))
	if err := fsutil.WriteFileAtomic(p.path, []byte(after), 0o644); err != nil {
		return fmt.Errorf(messages.PatchWriteFmt, p.path, err)
	}
	return nil
}

// diffPreview renders a unified diff of a pending change for the log.
func diffPreview(path string, before string, after string) string {
	return udiff.Unified(path, path+" (patched)", before, after)
}

func containsLine(content string, line string) bool {
	for _, got := range strings.Split(content, "\n") {
		if got == line {
			return true
		}
	}
	return false
}

func appendLineIfAbsent(content string, line string) (string, bool) {
	if containsLine(content, line) {
		return content, false
	}
	if content == "" {
		return line + "\n", true
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + line + "\n", true
}

func replacePattern(content string, re *regexp.Regexp, repl string) (string, bool) {
	loc := re.FindStringIndex(content)
	if loc == nil {
		return content, false
	}
	updated := content[:loc[0]] + re.ReplaceAllString(content[loc[0]:loc[1]], repl) + content[loc[1]:]
	if updated == content {
		return content, false
	}
	return updated, true
}

func appendPluginToken(content string, name string) (string, bool, error) {
	m := pluginsLineRe.FindStringSubmatchIndex(content)
	if m == nil {
		// No plugins line yet: create one.
		updated, changed := appendLineIfAbsent(content, "plugins=("+name+")")
		return updated, changed, nil
	}
	inner := content[m[2]:m[3]]
	tokens := strings.Fields(inner)
	for _, tok := range tokens {
		if tok == name {
			return content, false, nil
		}
	}
	tokens = append(tokens, name)
	updated := content[:m[2]] + strings.Join(tokens, " ") + content[m[3]:]
	return updated, true, nil
}
