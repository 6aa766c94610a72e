package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// New returns a cron scheduler with seconds precision that skips a run while the previous one is
// still in progress.
func New() *cron.Cron {
	return cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
}

// Register adds every job to c.
func Register(c *cron.Cron, jobs ...Job) error {
	for _, job := range jobs {
		if _, err := c.AddFunc(job.Spec, job.run); err != nil {
			return fmt.Errorf("schedule %s job (%s): %w", job.Runner.Name(), job.Spec, err)
		}
		log.WithFields(log.Fields{
			"job":  job.Runner.Name(),
			"spec": job.Spec,
		}).Info("Scheduled sweep job")
	}
	return nil
}
