package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/osse101/GoldenEgg_Go/internal/game"
	"github.com/osse101/GoldenEgg_Go/internal/logger"
)

// Job is a unit of periodic work
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Scheduler runs periodic jobs on a gocron scheduler. A job never overlaps
// with itself; a run that is still going when the next is due is skipped.
type Scheduler struct {
	sched gocron.Scheduler
}

func New() (*Scheduler, error) {
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{sched: sched}, nil
}

// Every registers job to run at the given interval. When immediately is set
// the first run happens as soon as the scheduler starts.
func (s *Scheduler) Every(name string, interval time.Duration, immediately bool, job Job) error {
	opts := []gocron.JobOption{
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if immediately {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err := s.sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { run(name, job) }),
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}

	slog.Default().Info(LogMsgJobScheduled, "job", name, "interval", interval)
	return nil
}

func run(name string, job Job) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgJobFailed, "job", name, "error", err)
	}
}

func (s *Scheduler) Start() {
	s.sched.Start()
	slog.Default().Info(LogMsgSchedulerStarted, "jobs", len(s.sched.Jobs()))
}

// Shutdown stops scheduling and waits for running jobs until ctx is done
func (s *Scheduler) Shutdown(ctx context.Context) error {
	done := make(chan error, 1)
	go func() { done <- s.sched.Shutdown() }()

	select {
	case err := <-done:
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgSchedulerStopErr, "error", err)
			return err
		}
		logger.FromContext(ctx).Info(LogMsgSchedulerStopped)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DeadlineJob rolls the game deadline forward once it has passed
type DeadlineJob struct {
	service game.Service
	now     func() time.Time
}

func NewDeadlineJob(service game.Service) *DeadlineJob {
	return &DeadlineJob{service: service, now: time.Now}
}

func (j *DeadlineJob) Process(ctx context.Context) error {
	return j.service.RolloverDeadline(ctx, j.now())
}
