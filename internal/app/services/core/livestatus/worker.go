package livestatus

import (
	"context"
	"schoolbell-service/internal/app/config"
	"schoolbell-service/internal/app/contracts"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const notifyTimeout = 5 * time.Second

// Worker re-evaluates the live status on every tick and publishes a bell
// event whenever the phase of the day changes. Only the instance holding the
// leader lock publishes.
type Worker struct {
	log        *zap.Logger
	cfg        *config.InternalConfig
	locker     contracts.LockerService
	liveStatus contracts.LiveStatusUsecase
	schedule   contracts.ScheduleReader
	notifier   contracts.BellNotifier
	clock      func() time.Time

	tickMu      sync.Mutex
	mu          sync.Mutex
	last        *models.Status
	leaderToken string

	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	liveStatus contracts.LiveStatusUsecase,
	schedule contracts.ScheduleReader,
	notifier contracts.BellNotifier,
) *Worker {
	return &Worker{
		log:        log,
		cfg:        cfg,
		locker:     lockerSvc,
		liveStatus: liveStatus,
		schedule:   schedule,
		notifier:   notifier,
		clock:      time.Now,
	}
}

// Start schedules the tick with the configured spec, falling back to one
// tick per second when the spec does not parse.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := newTickCron()
	spec := w.cfg.Bell.WorkerCronSpec
	_, err := c.AddFunc(spec, func() { w.Tick(w.runCtx) })
	if err != nil {
		w.log.Warn("livestatus.worker: failed to schedule with provided cron spec; falling back to default",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = newTickCron()
		_, _ = c.AddFunc(constvars.BellWorkerDefaultSpec, func() { w.Tick(w.runCtx) })
	}
	c.Start()
	w.cron = c
	w.log.Info("livestatus.worker: started", zap.String(constvars.LoggingCronSpecKey, spec))
}

// newTickCron skips a tick while the previous one is still running.
func newTickCron() *cron.Cron {
	return cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
}

// Stop waits for a running tick and then gives up leadership.
func (w *Worker) Stop() {
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
	if w.cancel != nil {
		w.cancel()
	}

	w.mu.Lock()
	token := w.leaderToken
	w.leaderToken = ""
	w.mu.Unlock()
	if token != "" && w.locker != nil {
		unlockCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := w.locker.Unlock(unlockCtx, constvars.RedisKeyBellLeader, token); err != nil {
			w.log.Warn("livestatus.worker: failed to release leader lock", zap.Error(err))
		}
	}
}

// Tick evaluates the status once. The first evaluation only records the
// phase; later ones publish when it differs from the previous tick.
func (w *Worker) Tick(ctx context.Context) {
	w.tickMu.Lock()
	defer w.tickMu.Unlock()

	if !w.ensureLeadership(ctx) {
		return
	}

	status, err := w.liveStatus.CurrentStatus(ctx)
	if err != nil {
		w.log.Warn("livestatus.worker: status evaluation failed", zap.Error(err))
		return
	}

	w.mu.Lock()
	previous := w.last
	w.last = &status
	w.mu.Unlock()

	if previous == nil || previous.SameAs(status) {
		return
	}

	event := BuildBellEvent(*previous, status, w.schedule, w.clock())
	w.log.Info("livestatus.worker: status changed",
		zap.String(constvars.LoggingPreviousKindKey, string(previous.Kind)),
		zap.String(constvars.LoggingStatusKindKey, string(status.Kind)),
		zap.Int(constvars.LoggingCountdownKey, status.CountdownSeconds),
	)

	notifyCtx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if err := w.notifier.Notify(notifyCtx, event); err != nil {
		w.log.Warn("livestatus.worker: failed to publish bell event", zap.Error(err))
	}
}

// ensureLeadership acquires the leader lock or refreshes the one already
// held. Losing the lock resets the recorded phase so a new leader does not
// replay a stale transition.
func (w *Worker) ensureLeadership(ctx context.Context) bool {
	if w.locker == nil {
		return true
	}
	ttl := time.Duration(w.cfg.Bell.LeaderLockTTL) * time.Second

	w.mu.Lock()
	token := w.leaderToken
	w.mu.Unlock()

	if token != "" {
		err := w.locker.Refresh(ctx, constvars.RedisKeyBellLeader, token, ttl)
		if err == nil {
			return true
		}
		w.log.Warn("livestatus.worker: lost leader lock", zap.Error(err))
		w.mu.Lock()
		w.leaderToken = ""
		w.last = nil
		w.mu.Unlock()
	}

	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyBellLeader, ttl)
	if err != nil {
		w.log.Warn("livestatus.worker: leader lock attempt failed", zap.Error(err))
		return false
	}
	if !acquired {
		w.log.Debug("livestatus.worker: leader lock not acquired; another instance is running")
		return false
	}

	w.mu.Lock()
	w.leaderToken = token
	w.mu.Unlock()
	w.log.Info("livestatus.worker: leader lock acquired", zap.Duration(constvars.LoggingLockExpirationKey, ttl))
	return true
}

func BuildBellEvent(previous, current models.Status, schedule contracts.ScheduleReader, occurredAt time.Time) models.BellEvent {
	event := models.BellEvent{
		Kind:             current.Kind,
		PreviousKind:     previous.Kind,
		CountdownSeconds: current.CountdownSeconds,
		Countdown:        FormatCountdown(current.CountdownSeconds),
		OccurredAt:       occurredAt,
	}
	if current.Entry != nil {
		event.LessonNumber = current.Entry.LessonNumber
		event.Cabinet = current.Entry.Cabinet
		if lesson, ok := schedule.LessonByID(current.Entry.LessonID); ok {
			event.LessonName = lesson.Name
		}
	}
	return event
}
