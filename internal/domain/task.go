package domain

import "time"

// Priority - human readable task priority
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// StatusPending is used when the export carries no status.
const StatusPending = "pending"

var priorityCodes = map[string]Priority{
	"H": PriorityHigh,
	"M": PriorityMedium,
	"L": PriorityLow,
}

// PriorityFromCode maps a Taskwarrior priority code (H, M, L).
func PriorityFromCode(code string) (Priority, bool) {
	p, ok := priorityCodes[code]
	return p, ok
}

// EnrichedTask - normalized task with computed due offsets.
// Nil pointers serialize as null.
type EnrichedTask struct {
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    *Priority  `json:"priority"`
	Project     *string    `json:"project"`
	Due         *time.Time `json:"due"`
	DueIn       *TimeDiff  `json:"due_in"`
	OverdueBy   *TimeDiff  `json:"overdue_by"`
	Urgency     float64    `json:"urgency"`
}
