package taskwarrior

import (
	"encoding/json"
	"fmt"

	"taskwarrior_web/internal/domain"
)

// TimeLayout is the timestamp format of the export: YYYYMMDDTHHMMSSZ, always UTC.
const TimeLayout = "20060102T150405Z"

// RawTask is one record of `task export`. Every field is optional; a nil
// pointer means the key was absent or null.
type RawTask struct {
	ID          *int64   `json:"id"`
	Description *string  `json:"description"`
	Due         *string  `json:"due"`
	Entry       *string  `json:"entry"`
	Modified    *string  `json:"modified"`
	Priority    *string  `json:"priority"`
	Project     *string  `json:"project"`
	Status      *string  `json:"status"`
	UUID        *string  `json:"uuid"`
	Urgency     *float64 `json:"urgency"`
}

// ParseRawTask decodes a single exported record. A record whose fields
// have the wrong JSON types is a shape error.
func ParseRawTask(rec json.RawMessage) (RawTask, error) {
	var t RawTask
	if err := json.Unmarshal(rec, &t); err != nil {
		return RawTask{}, domain.NewTaskError(domain.ErrShape,
			fmt.Sprintf("%s: %v", shapeDetail, err), err)
	}
	return t, nil
}
