package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/akhil41/zsh-shell-customizer/internal/logging"
	"github.com/akhil41/zsh-shell-customizer/internal/messages"
	"github.com/akhil41/zsh-shell-customizer/internal/resume"
	"github.com/akhil41/zsh-shell-customizer/internal/steps"
)

// newResumeCmd continues a handed-off run. Hidden: it only makes sense when
// invoked by the shell step's exec, never by hand.
func newResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:    messages.ResumeUse,
		Short:  messages.ResumeShort,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p, err := resolvePathsFunc()
			if err != nil {
				return err
			}
			logging.Setup(p.LogFile, 0)

			token, err := resume.Consume(p.ResumeToken, time.Now())
			switch {
			case errors.Is(err, resume.ErrNoToken):
				_, _ = fmt.Fprintln(out, messages.ResumeNoToken)
				return nil
			case errors.Is(err, resume.ErrStale):
				_, _ = fmt.Fprintf(out, messages.ResumeTokenStaleFmt+"\n", p.ResumeToken, resume.MaxAge)
				return nil
			case err != nil:
				return err
			}

			for _, name := range token.Remaining {
				if !steps.KnownStep(name) {
					return fmt.Errorf(messages.ResumeUnknownStepFmt, name)
				}
			}
			if len(token.Remaining) == 0 {
				_, _ = fmt.Fprintln(out, messages.ResumeNoToken)
				return nil
			}

			_, _ = fmt.Fprintf(out, messages.ResumeContinuingFmt, "zsh", len(token.Remaining))
			return runBootstrap(cmd, token.AssumeDefaults, false, token.Remaining)
		},
	}
}
