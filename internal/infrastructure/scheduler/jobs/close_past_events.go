// Package jobs contains scheduled job implementations for the school
// events hub.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mergington-hub/school-events-hub/internal/domain/event"
	"github.com/mergington-hub/school-events-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// CLOSE PAST EVENTS JOB
// ══════════════════════════════════════════════════════════════════════════════

// ClosePastEventsJob marks published events as completed once their
// date has passed. Rosters stay intact so attendance and completion
// points can still be awarded afterwards.
type ClosePastEventsJob struct {
	eventRepo event.Repository
	logger    *slog.Logger
	now       func() time.Time
}

// NewClosePastEventsJob creates a new close past events job.
func NewClosePastEventsJob(eventRepo event.Repository, logger *slog.Logger) *ClosePastEventsJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClosePastEventsJob{
		eventRepo: eventRepo,
		logger:    logger,
		now:       timeutil.Now,
	}
}

// Name implements scheduler.Job.
func (j *ClosePastEventsJob) Name() string {
	return "close_past_events"
}

// Description implements scheduler.Job.
func (j *ClosePastEventsJob) Description() string {
	return "Marks published events as completed once their date has passed"
}

// Run implements scheduler.Job.
func (j *ClosePastEventsJob) Run(ctx context.Context) error {
	events, err := j.eventRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}

	now := j.now()
	closed := 0
	for _, e := range events {
		if e.Status != event.StatusPublished {
			continue
		}
		// Events close at the end of their calendar day, not mid-day.
		if timeutil.DaysUntil(now, e.Date) >= 0 {
			continue
		}

		e.Status = event.StatusCompleted
		e.UpdatedAt = now
		if err := j.eventRepo.Save(ctx, e); err != nil {
			return fmt.Errorf("save event %s: %w", e.ID, err)
		}

		j.logger.Info("event closed",
			slog.String("event_id", e.ID),
			slog.String("event_name", e.Name),
		)
		closed++
	}

	if closed > 0 {
		j.logger.Info("past events closed", slog.Int("count", closed))
	}
	return nil
}
