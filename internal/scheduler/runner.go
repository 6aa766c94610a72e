package scheduler

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/segyhp/accrual-engine/internal/domain"
	customError "github.com/segyhp/accrual-engine/pkg/errors"
)

type Sweeper interface {
	Sweep(ctx context.Context) (*domain.SweepResult, error)
}

// Runner executes a sweep only when its gate allows it.
type Runner struct {
	name    string
	sweeper Sweeper
	gate    Gate
	clock   Clock
}

func NewRunner(name string, sweeper Sweeper, gate Gate, clock Clock) *Runner {
	return &Runner{name: name, sweeper: sweeper, gate: gate, clock: clock}
}

func (r *Runner) Name() string { return r.name }

// RunIfDue sweeps when the gate is open. skipped is true when the interval has not elapsed yet.
func (r *Runner) RunIfDue(ctx context.Context) (result *domain.SweepResult, skipped bool, err error) {
	allowed, err := r.gate.Allow(ctx, r.clock.Now())
	if err != nil {
		return nil, false, customError.WrapCacheError(err)
	}
	if !allowed {
		log.WithField("job", r.name).Debug("Sweep skipped, interval not elapsed")
		return nil, true, nil
	}

	result, err = r.sweeper.Sweep(ctx)
	if err != nil {
		// A failed pass does not count against the interval
		if releaseErr := r.gate.Release(context.WithoutCancel(ctx)); releaseErr != nil {
			log.WithField("job", r.name).WithError(releaseErr).Warn("Failed to release sweep gate")
		}
		return nil, false, err
	}
	return result, false, nil
}

// Job binds a runner to a cron schedule.
type Job struct {
	Spec    string
	Runner  *Runner
	Timeout time.Duration
}

func (j Job) run() {
	ctx := context.Background()
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	logger := log.WithField("job", j.Runner.Name())
	result, skipped, err := j.Runner.RunIfDue(ctx)
	switch {
	case err != nil:
		logger.WithError(err).Error("Sweep job failed")
	case skipped:
		logger.Debug("Sweep job skipped")
	default:
		logger.WithFields(log.Fields{
			"processed":            result.Processed,
			"transactions_created": result.TransactionsCreated,
		}).Info("Sweep job finished")
	}
}
