// Package prompt implements the yes/no confirmation gate.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/akhil41/zsh-shell-customizer/internal/messages"
	"github.com/akhil41/zsh-shell-customizer/internal/terminal"
)

// ErrCancelled is returned when the user aborts a prompt with Ctrl+C.
var ErrCancelled = errors.New("prompt cancelled")

// Prompter asks yes/no questions. def is returned untouched by
// implementations that never prompt (forced mode).
type Prompter interface {
	Confirm(title string, def bool) (bool, error)
}

// Huh renders confirmation prompts with charmbracelet/huh.
type Huh struct {
	isTerminal func() bool
}

// NewHuh creates a Huh prompter using the default terminal check.
func NewHuh() *Huh {
	return &Huh{isTerminal: terminal.Stdio}
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// promptKeyMap maps Ctrl+C to form abort so a cancel surfaces as
// huh.ErrUserAborted rather than killing the process mid-render.
func promptKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c"))
	return km
}

// Confirm renders a yes/no prompt with the given default answer.
func (p *Huh) Confirm(title string, def bool) (bool, error) {
	checker := p.isTerminal
	if checker == nil {
		checker = terminal.Stdio
	}
	if !checker() {
		return false, fmt.Errorf(messages.PromptRequiresTerminal)
	}

	value := def
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&value),
		),
	)
	form.WithKeyMap(promptKeyMap())
	form.WithProgramOptions(tea.WithOutput(os.Stderr))

	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, err
	}
	return value, nil
}

// Forced answers every prompt with its default, for --yes runs.
type Forced struct{}

// Confirm returns the default answer without prompting.
func (Forced) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}

// Funcs adapts a callback into a Prompter, for tests.
type Funcs struct {
	ConfirmFunc func(title string, def bool) (bool, error)
}

// Confirm delegates to ConfirmFunc, or declines when none is configured.
func (f Funcs) Confirm(title string, def bool) (bool, error) {
	if f.ConfirmFunc == nil {
		return false, nil
	}
	return f.ConfirmFunc(title, def)
}
