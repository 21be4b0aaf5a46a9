package service

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"taskwarrior_web/internal/domain"
	"taskwarrior_web/internal/taskwarrior"
)

// Normalize converts one exported record into an EnrichedTask relative to now.
func Normalize(raw taskwarrior.RawTask, now time.Time) (domain.EnrichedTask, error) {
	task := domain.EnrichedTask{
		Description: valueOr(raw.Description, ""),
		Status:      valueOr(raw.Status, domain.StatusPending),
		Urgency:     valueOr(raw.Urgency, 0),
		Project:     raw.Project,
	}

	if raw.Priority != nil {
		if p, ok := domain.PriorityFromCode(*raw.Priority); ok {
			task.Priority = &p
		}
	}

	if raw.Due == nil || *raw.Due == "" {
		return task, nil
	}

	due, err := time.Parse(taskwarrior.TimeLayout, *raw.Due)
	if err != nil {
		return domain.EnrichedTask{}, domain.NewTaskError(domain.ErrDateFormat,
			fmt.Sprintf("expected date string with format 'YYYYMMDDTHHMMSSZ' but got '%s'", *raw.Due), err)
	}
	due = due.UTC()
	now = now.UTC()
	task.Due = &due

	diff := domain.Diff(now, due)
	switch {
	case now.After(due):
		task.OverdueBy = &diff
	case now.Before(due):
		task.DueIn = &diff
	}
	// due exactly now: neither offset is set

	return task, nil
}

// NormalizeAll normalizes every record in order. The first date error fails
// the whole batch.
func NormalizeAll(raws []taskwarrior.RawTask, now time.Time) ([]domain.EnrichedTask, error) {
	tasks := make([]domain.EnrichedTask, 0, len(raws))
	for _, raw := range raws {
		t, err := Normalize(raw, now)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// SortByUrgency returns a copy ordered by urgency, highest first. Ties keep
// their input order.
func SortByUrgency(tasks []domain.EnrichedTask) []domain.EnrichedTask {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b domain.EnrichedTask) int {
		return cmp.Compare(b.Urgency, a.Urgency)
	})
	return sorted
}

// valueOr treats nil and the zero value alike, like a missing key.
func valueOr[T comparable](v *T, def T) T {
	var zero T
	if v == nil || *v == zero {
		return def
	}
	return *v
}
