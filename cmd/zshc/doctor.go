package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/akhil41/zsh-shell-customizer/internal/backup"
	"github.com/akhil41/zsh-shell-customizer/internal/execx"
	"github.com/akhil41/zsh-shell-customizer/internal/logging"
	"github.com/akhil41/zsh-shell-customizer/internal/messages"
	"github.com/akhil41/zsh-shell-customizer/internal/report"
	"github.com/akhil41/zsh-shell-customizer/internal/zshrc"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p, err := resolvePathsFunc()
			if err != nil {
				return err
			}
			logging.Setup(p.LogFile, 0)

			cfg, err := loadConfigFunc()
			if err != nil {
				return err
			}
			p.ApplyCustomDir(cfg.CustomDir)

			// The probe only reads; the backup facility exists solely to
			// satisfy the patcher and never creates a directory.
			sys := &execx.RealSystem{Timeout: cfg.CommandTimeout}
			probe := &report.Probe{
				Paths:   p,
				Sys:     sys,
				Patcher: zshrc.NewPatcher(p.Zshrc, backup.New(p.BackupParent, nil)),
			}
			results := probe.All()
			report.Render(out, results)
			report.RenderNextSteps(out, report.NextSteps(results, os.Getenv))
			return nil
		},
	}
}
