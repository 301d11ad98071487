package rebuild

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
)

// Scheduler re-runs the generation pipeline on a cron schedule when the
// current plan calls for incremental regeneration. A plan small enough for
// full rebuilds on every deploy gets one initial pass and no schedule.
type Scheduler struct {
	pipeline *Pipeline
	schedule string
	logger   logger.Interface

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// NewScheduler creates a scheduler. schedule is a standard five-field cron
// expression, e.g. "*/30 * * * *".
func NewScheduler(pipeline *Pipeline, schedule string, log logger.Interface) *Scheduler {
	return &Scheduler{
		pipeline: pipeline,
		schedule: schedule,
		logger:   log,
	}
}

// Start runs one immediate pipeline pass and, when the resulting plan sets
// incremental regeneration, schedules periodic re-runs. The context governs
// the initial pass and every scheduled run.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("parse rebuild schedule %q: %w", s.schedule, err)
	}

	plan, err := s.pipeline.Run(ctx)
	if err != nil {
		return fmt.Errorf("initial generation pass: %w", err)
	}

	if !plan.UseIncrementalRegeneration {
		s.logger.Info("Plan below regeneration threshold, not scheduling rebuilds",
			"pages", plan.TotalPages)

		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	s.cron = cron.New()

	_, err = s.cron.AddFunc(s.schedule, func() {
		if ctx.Err() != nil {
			return
		}

		if _, runErr := s.pipeline.Run(ctx); runErr != nil {
			s.logger.Error("Scheduled generation pass failed", "error", runErr)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule rebuild: %w", err)
	}

	s.cron.Start()
	s.running = true
	s.logger.Info("Scheduled incremental rebuilds", "schedule", s.schedule)

	return nil
}

// Stop halts the schedule and waits for any in-flight pass to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	<-s.cron.Stop().Done()
	s.running = false
	s.logger.Info("Rebuild scheduler stopped")
}
