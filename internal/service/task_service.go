package service

import (
	"context"
	"encoding/json"
	"time"

	"taskwarrior_web/internal/domain"
	"taskwarrior_web/internal/logger"
	"taskwarrior_web/internal/taskwarrior"
)

// Exporter produces raw `task export` output.
type Exporter interface {
	Export(ctx context.Context) ([]byte, error)
}

// TaskService runs the export pipeline. It holds no per-request state, so a
// single instance serves concurrent requests, each with its own export run.
type TaskService struct {
	exporter Exporter
	now      func() time.Time
}

func NewTaskService(exporter Exporter) *TaskService {
	return NewTaskServiceWithClock(exporter, time.Now)
}

// NewTaskServiceWithClock creates a service with an injected clock
func NewTaskServiceWithClock(exporter Exporter, now func() time.Time) *TaskService {
	return &TaskService{exporter: exporter, now: now}
}

// RawRecords returns the exported records untouched.
func (s *TaskService) RawRecords(ctx context.Context) ([]json.RawMessage, error) {
	out, err := s.export(ctx)
	if err != nil {
		return nil, err
	}
	records, err := taskwarrior.Decode(out)
	if err != nil {
		logger.WithContext(ctx).Warn("task export output rejected", "error", err)
		return nil, err
	}
	return records, nil
}

// Enriched returns normalized tasks in export order.
func (s *TaskService) Enriched(ctx context.Context) ([]domain.EnrichedTask, error) {
	out, err := s.export(ctx)
	if err != nil {
		return nil, err
	}
	raws, err := taskwarrior.DecodeTasks(out)
	if err != nil {
		logger.WithContext(ctx).Warn("task export output rejected", "error", err)
		return nil, err
	}
	tasks, err := NormalizeAll(raws, s.now())
	if err != nil {
		logger.WithContext(ctx).Warn("task normalization failed", "error", err)
		return nil, err
	}
	return tasks, nil
}

// EnrichedByUrgency returns normalized tasks, most urgent first.
func (s *TaskService) EnrichedByUrgency(ctx context.Context) ([]domain.EnrichedTask, error) {
	tasks, err := s.Enriched(ctx)
	if err != nil {
		return nil, err
	}
	return SortByUrgency(tasks), nil
}

func (s *TaskService) export(ctx context.Context) ([]byte, error) {
	log := logger.WithContext(ctx)
	start := time.Now()

	out, err := s.exporter.Export(ctx)
	elapsed := time.Since(start)
	ExportDuration.Observe(elapsed.Seconds())

	if err != nil {
		kind := domain.KindOf(err)
		ExportRuns.WithLabelValues(kind.String()).Inc()
		log.Warn("task export failed", "kind", kind.String(), "error", err, "duration", elapsed)
		return nil, err
	}

	ExportRuns.WithLabelValues("ok").Inc()
	log.Debug("task export finished", "bytes", len(out), "duration", elapsed)
	return out, nil
}
