package cron

import (
	"context"
	"fmt"
	"time"

	"vetcare/services/slots"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeGenerateSlots = "slots:generate"

// DefaultGenerationSpec runs generation shortly after midnight UTC.
const DefaultGenerationSpec = "5 0 * * *"

// SlotWorker owns the periodic scheduler that enqueues generation tasks and the
// server that executes them.
type SlotWorker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
	logger    *zap.Logger
}

// NewGenerateSlotsTask builds the generation task. Unique keeps overlapping triggers
// from queueing a second run while one is pending.
func NewGenerateSlotsTask() *asynq.Task {
	return asynq.NewTask(TypeGenerateSlots, nil,
		asynq.MaxRetry(3),
		asynq.Timeout(10*time.Minute),
		asynq.Unique(time.Hour),
	)
}

// NewSlotWorker wires the generation handler and registers the periodic task.
func NewSlotWorker(redisOpt asynq.RedisClientOpt, cronSpec string, svc slots.SlotService, logger *zap.Logger) (*SlotWorker, error) {
	if cronSpec == "" {
		cronSpec = DefaultGenerationSpec
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 1,
		Queues: map[string]int{
			"default": 1,
		},
		Logger: logger.Sugar(),
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeGenerateSlots, HandleGenerateTask(svc, logger))

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Location: time.UTC,
		Logger:   logger.Sugar(),
	})
	if _, err := scheduler.Register(cronSpec, NewGenerateSlotsTask()); err != nil {
		return nil, fmt.Errorf("invalid slot generation schedule %q: %w", cronSpec, err)
	}

	return &SlotWorker{server: srv, scheduler: scheduler, mux: mux, logger: logger}, nil
}

// Start launches the worker and the scheduler in the background.
func (w *SlotWorker) Start() error {
	if err := w.server.Start(w.mux); err != nil {
		return fmt.Errorf("failed to start slot worker: %w", err)
	}
	if err := w.scheduler.Start(); err != nil {
		w.server.Shutdown()
		return fmt.Errorf("failed to start slot scheduler: %w", err)
	}
	w.logger.Info("Slot generation worker started")
	return nil
}

func (w *SlotWorker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
	w.logger.Info("Slot generation worker stopped")
}

// HandleGenerateTask runs one generation pass per task.
func HandleGenerateTask(svc slots.SlotService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		started := time.Now()
		result, err := svc.GenerateVeterinarianSlots(ctx)
		if err != nil {
			logger.Error("Scheduled slot generation failed", zap.String("task", task.Type()), zap.Error(err))
			return err
		}
		logger.Info("Scheduled slot generation finished",
			zap.Int("created", result.SlotsCreated),
			zap.Int("skipped", result.SlotsSkipped),
			zap.Duration("took", time.Since(started)),
		)
		return nil
	}
}
