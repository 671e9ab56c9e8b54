package main

import (
	"github.com/spf13/cobra"

	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newResumeCmd())
	cmd.AddCommand(newRollbackCmd())
	return cmd
}
