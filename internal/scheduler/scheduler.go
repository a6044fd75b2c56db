package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the watchlist analysis on a cron schedule.
type Scheduler struct {
	Cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{Cron: cron.New(cron.WithSeconds())}
}

// Register schedules the task under the given cron expression
// (six-field, seconds included).
func (s *Scheduler) Register(spec string, task func()) error {
	if _, err := s.Cron.AddFunc(spec, task); err != nil {
		return fmt.Errorf("register watch task %q: %w", spec, err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}
