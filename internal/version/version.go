// Package version selects stable interpreter versions from manager output.
package version

import (
	"errors"
	"regexp"
	"strings"

	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

// ErrNoStableVersion indicates no line matched the strict pattern.
var ErrNoStableVersion = errors.New(messages.VersionNoMatch)

// strictRe matches bare N.N.N lines only: pre-release or suffixed versions
// (2.7.0-rc1, 3.2.0.dev) are never "latest stable".
var strictRe = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// LatestStable returns the lexicographically last line of output matching the
// strict N.N.N pattern. Version managers list versions in ascending order, so
// the last match is the newest stable release.
func LatestStable(output string) (string, error) {
	latest := ""
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strictRe.MatchString(line) {
			continue
		}
		if line > latest {
			latest = line
		}
	}
	if latest == "" {
		return "", ErrNoStableVersion
	}
	return latest, nil
}
