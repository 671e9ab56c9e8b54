// Package testutil provides shared test doubles.
package testutil

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// Call records one command invocation against a FakeSystem.
type Call struct {
	Name string
	Args []string
}

// String renders the call as a single command line, for assertions.
func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// FakeSystem implements execx.System with scripted results.
// The zero value succeeds every Run, returns "" from every Output, and
// resolves every LookPath.
type FakeSystem struct {
	mu sync.Mutex

	// RunErrs maps a command line (as Call.String()) to an error.
	RunErrs map[string]error
	// Outputs maps a command line to captured stdout.
	Outputs map[string]string
	// OutputErrs maps a command line to an error.
	OutputErrs map[string]error
	// MissingBinaries fails LookPath for the named binaries.
	MissingBinaries map[string]bool

	Calls []Call
}

func (s *FakeSystem) record(name string, args []string) Call {
	call := Call{Name: name, Args: append([]string(nil), args...)}
	s.mu.Lock()
	s.Calls = append(s.Calls, call)
	s.mu.Unlock()
	return call
}

// Run records the call and returns any scripted error.
func (s *FakeSystem) Run(_ context.Context, name string, args ...string) error {
	call := s.record(name, args)
	if err, ok := s.RunErrs[call.String()]; ok {
		return err
	}
	return nil
}

// Output records the call and returns any scripted stdout or error.
func (s *FakeSystem) Output(_ context.Context, name string, args ...string) (string, error) {
	call := s.record(name, args)
	if err, ok := s.OutputErrs[call.String()]; ok {
		return "", err
	}
	return s.Outputs[call.String()], nil
}

// LookPath resolves every binary except those marked missing.
func (s *FakeSystem) LookPath(name string) (string, error) {
	if s.MissingBinaries[name] {
		return "", fmt.Errorf("%s: %w", name, exec.ErrNotFound)
	}
	return "/usr/bin/" + name, nil
}

// CommandLines returns every recorded call as a command line.
func (s *FakeSystem) CommandLines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.Calls))
	for i, call := range s.Calls {
		out[i] = call.String()
	}
	return out
}

// Ran reports whether a command line was recorded.
func (s *FakeSystem) Ran(line string) bool {
	for _, got := range s.CommandLines() {
		if got == line {
			return true
		}
	}
	return false
}
