package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/akhil41/zsh-shell-customizer/internal/backup"
	"github.com/akhil41/zsh-shell-customizer/internal/config"
	"github.com/akhil41/zsh-shell-customizer/internal/execx"
	"github.com/akhil41/zsh-shell-customizer/internal/logging"
	"github.com/akhil41/zsh-shell-customizer/internal/messages"
	"github.com/akhil41/zsh-shell-customizer/internal/paths"
	"github.com/akhil41/zsh-shell-customizer/internal/pkgmgr"
	"github.com/akhil41/zsh-shell-customizer/internal/platform"
	"github.com/akhil41/zsh-shell-customizer/internal/prompt"
	"github.com/akhil41/zsh-shell-customizer/internal/report"
	"github.com/akhil41/zsh-shell-customizer/internal/resume"
	"github.com/akhil41/zsh-shell-customizer/internal/runlock"
	"github.com/akhil41/zsh-shell-customizer/internal/steps"
	"github.com/akhil41/zsh-shell-customizer/internal/terminal"
	"github.com/akhil41/zsh-shell-customizer/internal/ui"
	"github.com/akhil41/zsh-shell-customizer/internal/zshrc"
)

// Seams for tests; production uses the real implementations.
var (
	resolvePathsFunc  = paths.Resolve
	detectFunc        = platform.Detect
	isInteractiveFunc = terminal.Stdio
	loadConfigFunc    = func() (config.Config, error) { return config.Load(config.DefaultPath()) }
	newPrompterFunc   = newPrompter
	acquireLockFunc   = runlock.Acquire
	execShellFunc     = resume.ExecShell
	goosFunc          = func() string { return runtime.GOOS }
)

// newPrompter picks the prompter for a run. Forced mode answers every
// question with its default; otherwise a terminal is required up front so a
// piped invocation fails at startup instead of mid-run.
func newPrompter(assumeDefaults bool) (prompt.Prompter, error) {
	switch {
	case assumeDefaults:
		return prompt.Forced{}, nil
	case isInteractiveFunc():
		return prompt.NewHuh(), nil
	default:
		return nil, errors.New(messages.RunNonTTYErr)
	}
}

func newRunCmd() *cobra.Command {
	var assumeYes bool
	var dryRun bool
	cmd := &cobra.Command{
		Use:   messages.RunUse,
		Short: messages.RunShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd, assumeYes, dryRun, nil)
		},
	}
	cmd.Flags().BoolVar(&assumeYes, messages.FlagYes, false, messages.FlagYesUsage)
	cmd.Flags().BoolVar(&dryRun, messages.FlagDryRun, false, messages.FlagDryRunUsage)
	return cmd
}

// runBootstrap is the shared entry point of `run` and `resume`. only narrows
// the step list when resuming a handed-off queue; nil means all steps.
func runBootstrap(cmd *cobra.Command, assumeYes bool, dryRun bool, only []string) error {
	out := cmd.OutOrStdout()

	p, err := resolvePathsFunc()
	if err != nil {
		return err
	}
	logging.Setup(p.LogFile, 0)
	logger := logging.GetLogger("cli")

	cfg, err := loadConfigFunc()
	if err != nil {
		return err
	}
	if assumeYes {
		cfg.AssumeDefaults = true
	}
	p.ApplyCustomDir(cfg.CustomDir)

	sys := &execx.RealSystem{Timeout: cfg.CommandTimeout}
	plat, err := detectFunc(goosFunc(), sys.LookPath)
	if err != nil {
		return err
	}

	list := steps.All()
	if only != nil {
		list = steps.Named(only)
	}

	console := ui.New(out)

	if dryRun {
		console.Printf(messages.RunDryRunHeader)
		for _, s := range list {
			console.Printf(messages.RunDryRunLineFmt, s.Name, s.Prompt)
		}
		return nil
	}

	prompter, err := newPrompterFunc(cfg.AssumeDefaults)
	if err != nil {
		return err
	}

	lock, err := acquireLockFunc(p.LockFile)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console.Printf(messages.RunWelcomeFmt, plat.OS, plat.Manager.Name)
	proceed, err := prompter.Confirm(messages.RunTopLevelAsk, true)
	if err != nil {
		return err
	}
	if !proceed {
		console.Printf(messages.RunCancelled)
		return &SilentExitError{Code: 1}
	}

	fac := backup.New(p.BackupParent, nil)
	sc := &steps.Context{
		Platform: plat,
		Paths:    p,
		Config:   cfg,
		Prompter: prompter,
		Sys:      sys,
		Pkg:      pkgmgr.New(plat, sys),
		Backup:   fac,
		Patcher:  zshrc.NewPatcher(p.Zshrc, fac),
		Console:  console,
	}

	started := time.Now()
	res, runErr := steps.Run(ctx, sc, list)

	backupDir := ""
	if len(fac.Records()) > 0 {
		backupDir = fac.Dir()
	}
	if err := steps.WriteManifest(p.Manifest, started, backupDir, res.Results); err != nil {
		console.Warnf(messages.ManifestWriteWarnFmt, err)
	}

	if runErr != nil {
		switch {
		case errors.Is(runErr, context.Canceled) || ctx.Err() != nil:
			console.Printf(messages.RunInterrupted)
			return &SilentExitError{Code: 1}
		case errors.Is(runErr, prompt.ErrCancelled):
			console.Printf(messages.RunCancelled)
			return &SilentExitError{Code: 1}
		default:
			return runErr
		}
	}

	if len(res.Remaining) > 0 {
		console.Infof(messages.StepHandoffWritingToken)
		if err := resume.Write(p.ResumeToken, res.Remaining, cfg.AssumeDefaults); err != nil {
			return err
		}
		zshPath, err := sys.LookPath("zsh")
		if err != nil {
			return err
		}
		logger.Info().Str("shell", zshPath).Strs("remaining", res.Remaining).Msg("handing off to new shell")
		_ = lock.Release()
		return execShellFunc(zshPath)
	}

	probe := &report.Probe{Paths: p, Sys: sys, Patcher: sc.Patcher}
	results := probe.All()
	report.Render(out, results)
	report.RenderNextSteps(out, report.NextSteps(results, os.Getenv))
	return nil
}
