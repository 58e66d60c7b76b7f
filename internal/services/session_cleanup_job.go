package services

import (
	"context"
	"dietai/internal/repository"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultCleanupSchedule = "0 3 * * *"
	DefaultSessionTTL      = 720 * time.Hour
	cleanupRunTimeout      = time.Minute
)

// SessionCleanupJob purges onboarding sessions that have not been touched
// for longer than the configured TTL.
type SessionCleanupJob struct {
	sessions repository.OnboardingSessionRepository
	schedule string
	ttl      time.Duration
	cron     *cron.Cron
	now      func() time.Time
	log      *zap.Logger

	mu      sync.Mutex
	running bool
}

func NewSessionCleanupJob(sessions repository.OnboardingSessionRepository, schedule string, ttl time.Duration, loc *time.Location, log *zap.Logger) *SessionCleanupJob {
	if schedule == "" {
		schedule = DefaultCleanupSchedule
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionCleanupJob{
		sessions: sessions,
		schedule: schedule,
		ttl:      ttl,
		cron:     cron.New(cron.WithLocation(loc)),
		now:      time.Now,
		log:      log,
	}
}

func (j *SessionCleanupJob) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.running {
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("invalid cleanup schedule %q: %w", j.schedule, err)
	}
	j.cron.Start()
	j.running = true

	j.log.Info("Onboarding session cleanup scheduled",
		zap.String("schedule", j.schedule),
		zap.Duration("ttl", j.ttl),
	)
	return nil
}

// Stop waits for a run in progress to finish.
func (j *SessionCleanupJob) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	<-j.cron.Stop().Done()
}

func (j *SessionCleanupJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupRunTimeout)
	defer cancel()

	if _, err := j.RunOnce(ctx); err != nil {
		j.log.Error("Onboarding session cleanup failed", zap.Error(err))
	}
}

// RunOnce deletes every session last updated before now minus the TTL.
func (j *SessionCleanupJob) RunOnce(ctx context.Context) (int64, error) {
	cutoff := j.now().Add(-j.ttl)
	deleted, err := j.sessions.DeleteUpdatedBefore(ctx, cutoff)
	if err != nil {
		return 0, storageError("delete stale onboarding sessions", err)
	}
	j.log.Info("Onboarding session cleanup finished",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff),
	)
	return deleted, nil
}
