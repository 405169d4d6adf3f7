// Package saga runs an ordered list of forward steps, each paired with a
// compensating action, in place of a distributed transaction. When a step
// fails, the compensations of every strictly earlier step run in reverse
// order; the compensation path is derived from the list of completed steps
// rather than duplicated at each failure site.
package saga

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Step is one forward action and the action that undoes it. Compensate may
// be nil when a failure of this step leaves nothing to undo.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// StepError reports a forward failure after a fully successful
// compensation pass. The saga's side effects have been undone.
type StepError struct {
	Step        string
	Err         error
	Compensated []string
}

func (e *StepError) Error() string {
	if len(e.Compensated) == 0 {
		return fmt.Sprintf("saga step %s failed: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("saga step %s failed (compensated: %s): %v",
		e.Step, strings.Join(e.Compensated, ", "), e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// CompensationError reports that a compensating action itself failed. The
// remaining compensations were not attempted, compensation failures are not
// retried, and cross-system state is now inconsistent until an operator
// reconciles it manually.
type CompensationError struct {
	Step        string // the compensation that failed
	Err         error  // its failure
	Cause       error  // the forward failure that triggered compensation
	Compensated []string
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("compensation %s failed: %v (triggered by: %v)", e.Step, e.Err, e.Cause)
}

func (e *CompensationError) Unwrap() error { return e.Err }

// Execute runs steps strictly in order. On the first forward failure it
// compensates every completed step in reverse order and returns a
// *StepError, or a *CompensationError when a rollback call also fails.
func Execute(ctx context.Context, log zerolog.Logger, steps []Step) error {
	done := make([]Step, 0, len(steps))

	for _, step := range steps {
		log.Debug().Str("step", step.Name).Msg("saga step starting")
		if err := step.Run(ctx); err != nil {
			log.Warn().Str("step", step.Name).Err(err).Msg("saga step failed, compensating")
			return compensate(ctx, log, done, step.Name, err)
		}
		log.Debug().Str("step", step.Name).Msg("saga step completed")
		done = append(done, step)
	}
	return nil
}

func compensate(ctx context.Context, log zerolog.Logger, done []Step, failedStep string, cause error) error {
	compensated := make([]string, 0, len(done))

	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			log.Error().Str("step", step.Name).Err(err).
				Msg("compensation failed, manual reconciliation required")
			return &CompensationError{
				Step:        step.Name,
				Err:         err,
				Cause:       cause,
				Compensated: compensated,
			}
		}
		log.Info().Str("step", step.Name).Msg("compensation completed")
		compensated = append(compensated, step.Name)
	}

	return &StepError{Step: failedStep, Err: cause, Compensated: compensated}
}
