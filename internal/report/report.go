// Package report re-derives the installed state of every feature from the
// system itself. It deliberately ignores what the current run recorded: a
// declined step whose feature was already present still reports as installed,
// and a step that claimed success but left nothing behind reports as missing.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/akhil41/zsh-shell-customizer/internal/execx"
	"github.com/akhil41/zsh-shell-customizer/internal/messages"
	"github.com/akhil41/zsh-shell-customizer/internal/paths"
	"github.com/akhil41/zsh-shell-customizer/internal/steps"
	"github.com/akhil41/zsh-shell-customizer/internal/zshrc"
)

// Status classifies one probed feature.
type Status string

const (
	StatusOK      Status = "ok"
	StatusPartial Status = "partial"
	StatusMissing Status = "missing"
)

// Result is one probed feature's state.
type Result struct {
	Status  Status
	Feature string
	// Detail explains a partial state; empty otherwise.
	Detail string
}

// Probe re-derives feature state from PATH lookups, marker paths, and the
// shell config file.
type Probe struct {
	Paths   paths.Paths
	Sys     execx.System
	Patcher *zshrc.Patcher
}

// All probes every feature in install order.
func (p *Probe) All() []Result {
	return []Result{
		p.Shell(),
		p.Framework(),
		p.Theme(),
		p.Plugins(),
		p.Font(),
		p.Runtime(),
		p.Colorls(),
	}
}

func (p *Probe) Shell() Result {
	if _, err := p.Sys.LookPath("zsh"); err != nil {
		return Result{Status: StatusMissing, Feature: messages.ReportFeatureShell}
	}
	return Result{Status: StatusOK, Feature: messages.ReportFeatureShell}
}

func (p *Probe) Framework() Result {
	if dirExists(p.Paths.OhMyZsh) {
		return Result{Status: StatusOK, Feature: messages.ReportFeatureFramework}
	}
	return Result{Status: StatusMissing, Feature: messages.ReportFeatureFramework}
}

func (p *Probe) Theme() Result {
	cloned := dirExists(p.Paths.ThemeDir())
	set, err := p.Patcher.Contains(steps.ThemeLine)
	if err != nil {
		set = false
	}
	switch {
	case cloned && set:
		return Result{Status: StatusOK, Feature: messages.ReportFeatureTheme}
	case cloned:
		return Result{Status: StatusPartial, Feature: messages.ReportFeatureTheme, Detail: messages.ReportDetailThemeLineUnset}
	case set:
		return Result{Status: StatusPartial, Feature: messages.ReportFeatureTheme, Detail: messages.ReportDetailThemeNotCloned}
	default:
		return Result{Status: StatusMissing, Feature: messages.ReportFeatureTheme}
	}
}

func (p *Probe) Plugins() Result {
	found := 0
	partial := 0
	detail := ""
	for _, plugin := range steps.Plugins {
		cloned := dirExists(p.Paths.PluginDir(plugin.Name))
		listed, err := p.Patcher.HasPlugin(plugin.Name)
		if err != nil {
			listed = false
		}
		switch {
		case cloned && listed:
			found++
		case cloned:
			partial++
			if detail == "" {
				detail = fmt.Sprintf(messages.ReportDetailPluginUnlistedFmt, plugin.Name)
			}
		case listed:
			partial++
			if detail == "" {
				detail = fmt.Sprintf(messages.ReportDetailPluginMissingFmt, plugin.Name)
			}
		default:
			if detail == "" {
				detail = fmt.Sprintf(messages.ReportDetailPluginMissingFmt, plugin.Name)
			}
		}
	}
	switch {
	case found == len(steps.Plugins):
		return Result{Status: StatusOK, Feature: messages.ReportFeaturePlugins}
	case found > 0 || partial > 0:
		return Result{Status: StatusPartial, Feature: messages.ReportFeaturePlugins, Detail: detail}
	default:
		return Result{Status: StatusMissing, Feature: messages.ReportFeaturePlugins}
	}
}

func (p *Probe) Font() Result {
	matches, err := filepath.Glob(filepath.Join(p.Paths.FontDir, steps.FontGlob))
	if err == nil && len(matches) > 0 {
		return Result{Status: StatusOK, Feature: messages.ReportFeatureFont}
	}
	return Result{Status: StatusMissing, Feature: messages.ReportFeatureFont}
}

func (p *Probe) Runtime() Result {
	if _, err := p.Sys.LookPath("ruby"); err == nil {
		return Result{Status: StatusOK, Feature: messages.ReportFeatureRuntime}
	}
	if _, err := p.Sys.LookPath("rbenv"); err == nil || fileExists(filepath.Join(p.Paths.RbenvRoot, "bin", "rbenv")) {
		return Result{Status: StatusPartial, Feature: messages.ReportFeatureRuntime, Detail: messages.ReportDetailRbenvWithoutRuby}
	}
	return Result{Status: StatusMissing, Feature: messages.ReportFeatureRuntime}
}

func (p *Probe) Colorls() Result {
	present := 0
	for _, line := range steps.ColorlsAliases {
		has, err := p.Patcher.Contains(line)
		if err == nil && has {
			present++
		}
	}
	switch {
	case present == len(steps.ColorlsAliases):
		return Result{Status: StatusOK, Feature: messages.ReportFeatureColorls}
	case present > 0:
		return Result{Status: StatusPartial, Feature: messages.ReportFeatureColorls, Detail: messages.ReportDetailAliasesPartial}
	default:
		return Result{Status: StatusMissing, Feature: messages.ReportFeatureColorls}
	}
}

// Render prints the probed results with severity-coded prefixes.
func Render(out io.Writer, results []Result) {
	_, _ = fmt.Fprintln(out, messages.ReportHeader)
	for _, r := range results {
		var label, line string
		switch r.Status {
		case StatusOK:
			label = color.GreenString(messages.ReportStatusOKLabel)
			line = fmt.Sprintf(messages.ReportInstalledFmt, r.Feature)
		case StatusPartial:
			label = color.YellowString(messages.ReportStatusPartialLabel)
			line = fmt.Sprintf(messages.ReportPartialFmt, r.Feature, r.Detail)
		default:
			label = color.RedString(messages.ReportStatusMissingLabel)
			line = fmt.Sprintf(messages.ReportNotInstalledFmt, r.Feature)
		}
		_, _ = fmt.Fprintf(out, messages.ReportLineFmt, label, line)
	}
}

// NextSteps derives the follow-up instructions that apply to the probed
// state. getenv supplies SHELL; pass os.Getenv outside tests.
func NextSteps(results []Result, getenv func(string) string) []string {
	status := make(map[string]Status, len(results))
	for _, r := range results {
		status[r.Feature] = r.Status
	}

	var out []string
	if status[messages.ReportFeatureShell] == StatusOK {
		if filepath.Base(getenv("SHELL")) != "zsh" {
			out = append(out, messages.ReportNextDefaultShell)
		}
		out = append(out, messages.ReportNextRestartShell)
	}
	if status[messages.ReportFeatureTheme] == StatusOK {
		out = append(out, messages.ReportNextP10kConfig)
	}
	if status[messages.ReportFeatureFont] == StatusOK {
		out = append(out, messages.ReportNextSetFont)
	}
	return out
}

// RenderNextSteps prints the instruction list, if any.
func RenderNextSteps(out io.Writer, nextSteps []string) {
	if len(nextSteps) == 0 {
		return
	}
	_, _ = fmt.Fprintln(out, messages.ReportNextStepsHeader)
	for _, step := range nextSteps {
		_, _ = fmt.Fprintf(out, messages.ReportNextLineFmt, step)
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
