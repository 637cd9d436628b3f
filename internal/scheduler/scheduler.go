// Package scheduler runs the background scrape on a cron spec.
package scheduler

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

type Task func(ctx context.Context) error

// Start schedules task on the given standard cron spec ("0 6 * * *") and
// returns a stop function. Task errors are logged, never fatal: the next
// tick retries the whole scrape anyway.
func Start(ctx context.Context, spec, name string, task Task) (stop func(), err error) {
	c := cron.New()

	_, err = c.AddFunc(spec, func() {
		if err := task(ctx); err != nil {
			log.Printf("[%s] error: %v", name, err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("[%s] scheduled spec=%q", name, spec)

	return func() {
		stopCtx := c.Stop()
		<-stopCtx.Done()
	}, nil
}
