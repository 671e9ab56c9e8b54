package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/akhil41/zsh-shell-customizer/internal/backup"
	"github.com/akhil41/zsh-shell-customizer/internal/logging"
	"github.com/akhil41/zsh-shell-customizer/internal/messages"
	"github.com/akhil41/zsh-shell-customizer/internal/steps"
)

func newRollbackCmd() *cobra.Command {
	var runStamp string
	cmd := &cobra.Command{
		Use:   messages.RollbackUse,
		Short: messages.RollbackShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p, err := resolvePathsFunc()
			if err != nil {
				return err
			}
			logging.Setup(p.LogFile, 0)

			dir, err := backupDirFor(p.BackupParent, p.Manifest, runStamp)
			if err != nil {
				return err
			}

			// The config file is the only file runs back up today; extend
			// this map if a step ever snapshots something else.
			targets := map[string]string{filepath.Base(p.Zshrc): p.Zshrc}
			restored, err := backup.RestoreDir(dir, targets)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.RollbackRestoredFmt, restored, dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&runStamp, messages.FlagRollbackRun, "", messages.FlagRollbackRunUsage)
	return cmd
}

// backupDirFor picks the backup directory to restore: the named run when
// given, otherwise the last run's manifest entry, otherwise the newest
// directory under parent.
func backupDirFor(parent string, manifestPath string, runStamp string) (string, error) {
	if runStamp != "" {
		dir := filepath.Join(parent, runStamp)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return "", fmt.Errorf(messages.RollbackRunNotFoundFmt, runStamp, parent)
		}
		return dir, nil
	}

	if m, err := steps.ReadManifest(manifestPath); err == nil && m.BackupDir != "" {
		if info, statErr := os.Stat(m.BackupDir); statErr == nil && info.IsDir() {
			return m.BackupDir, nil
		}
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		return "", fmt.Errorf(messages.RollbackNoBackups)
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	if len(dirs) == 0 {
		return "", fmt.Errorf(messages.RollbackNoBackups)
	}
	// Directory names are timestamps, so lexical order is creation order.
	sort.Strings(dirs)
	return filepath.Join(parent, dirs[len(dirs)-1]), nil
}
