package steps

import (
	"context"
	"fmt"

	"github.com/akhil41/zsh-shell-customizer/internal/config"
	"github.com/akhil41/zsh-shell-customizer/internal/logging"
	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

// RunResult reports every executed step plus the queue left behind by a
// shell handoff.
type RunResult struct {
	Results []Result
	// Remaining is non-empty when the run stopped for a handoff; it lists
	// the step names still to execute, in order.
	Remaining []string
}

// Run executes steps sequentially against c. Only a mandatory step's failure
// (or a dependency miss under the abort policy, or a cancelled prompt) stops
// the run; every other failure is recorded and the run continues.
func Run(ctx context.Context, c *Context, list []Step) (RunResult, error) {
	logger := logging.GetLogger("steps")
	var res RunResult

	record := func(s Step, outcome Outcome, err error) {
		r := Result{Step: s.Name, Outcome: outcome}
		if err != nil {
			r.Err = err.Error()
		}
		res.Results = append(res.Results, r)
		logger.Info().Str("step", s.Name).Str("outcome", string(outcome)).Err(err).Msg("step finished")
	}

	for i, s := range list {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		present, err := s.Precondition(ctx, c)
		if err != nil {
			record(s, Failed, err)
			if s.Mandatory {
				return res, fmt.Errorf(messages.StepMandatoryFailedFmt, s.Name, err)
			}
			continue
		}
		if present {
			c.Console.Successf(messages.StepAlreadyPresentFmt, s.Name)
			record(s, AlreadyPresent, nil)
			continue
		}

		if s.Requires != nil {
			missing, err := s.Requires(ctx, c)
			if err != nil {
				record(s, Failed, err)
				continue
			}
			if missing != "" {
				record(s, DependencyNotMet, nil)
				if c.Config.DependencyPolicy == config.DependencyAbort {
					return res, fmt.Errorf(messages.StepDependencyAbortFmt, s.Name, missing)
				}
				c.Console.Warnf(messages.StepDependencySkipFmt, s.Name, missing)
				continue
			}
		}

		accepted, err := c.Prompter.Confirm(s.Prompt, s.Default)
		if err != nil {
			// Cancelled prompts end the run; the step was never started.
			return res, err
		}
		if !accepted {
			c.Console.Infof(messages.StepDeclinedFmt, s.Name)
			record(s, Skipped, nil)
			continue
		}

		if s.NeedsSudo && c.Pkg != nil && c.Pkg.NeedsSudo() {
			if err := c.Pkg.EnsureSudo(ctx); err != nil {
				if s.Mandatory {
					return res, fmt.Errorf(messages.StepMandatoryFailedFmt, s.Name, fmt.Errorf(messages.StepSudoCheckFailedFmt, err))
				}
				c.Console.Warnf(messages.StepPrivilegeDeniedFmt, s.Name)
				record(s, Skipped, nil)
				continue
			}
		}

		if err := s.Action(ctx, c); err != nil {
			c.Console.Errorf(messages.StepFailedFmt, s.Name, err)
			record(s, Failed, err)
			if s.Mandatory {
				return res, fmt.Errorf(messages.StepMandatoryFailedFmt, s.Name, err)
			}
			continue
		}

		if err := s.Verify(ctx, c); err != nil {
			verifyErr := fmt.Errorf(messages.StepVerifyFailedFmt, s.Name, err)
			outcome := Failed
			if s.Rollback != nil {
				wantRollback, promptErr := c.Prompter.Confirm(fmt.Sprintf(messages.StepPromptRollbackFmt, s.Name), true)
				if promptErr != nil {
					return res, promptErr
				}
				if wantRollback {
					if rbErr := s.Rollback(ctx, c); rbErr != nil {
						c.Console.Errorf(messages.StepRollbackFailedFmt, s.Name, rbErr)
					} else {
						c.Console.Warnf(messages.StepRolledBackFmt, s.Name)
						outcome = RolledBack
					}
				}
			}
			record(s, outcome, verifyErr)
			if s.Mandatory {
				return res, fmt.Errorf(messages.StepMandatoryFailedFmt, s.Name, err)
			}
			continue
		}

		c.Console.Successf(messages.StepInstalledFmt, s.Name)
		record(s, Installed, nil)

		if c.handoff {
			for _, rest := range list[i+1:] {
				res.Remaining = append(res.Remaining, rest.Name)
			}
			return res, nil
		}
	}
	return res, nil
}
