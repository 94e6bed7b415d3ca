package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GoldenEgg_Go/mocks"
)

func TestDeadlineJob_Process(t *testing.T) {
	svc := mocks.NewMockGameService(t)
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	job := &DeadlineJob{service: svc, now: func() time.Time { return now }}

	svc.EXPECT().RolloverDeadline(mock.Anything, now).Return(nil).Once()

	assert.NoError(t, job.Process(context.Background()))
}

func TestScheduler_RunsJobImmediately(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	ran := make(chan struct{}, 1)
	require.NoError(t, s.Every("probe", time.Hour, true, JobFunc(func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})))

	s.Start()
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestScheduler_RepeatsAndSurvivesErrors(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	var runs atomic.Int32
	require.NoError(t, s.Every("flaky", 20*time.Millisecond, false, JobFunc(func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("database unavailable")
	})))

	s.Start()
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestScheduler_RejectsInvalidInterval(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	assert.Error(t, s.Every("broken", 0, false, JobFunc(func(ctx context.Context) error { return nil })))
}

func TestScheduler_ShutdownHonoursContext(t *testing.T) {
	s, err := New()
	require.NoError(t, err)
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Shutdown(ctx))
}
