package taskwarrior

import (
	"bytes"
	"encoding/json"
	"fmt"

	"taskwarrior_web/internal/domain"
)

const (
	parseDetail = "`task export` generated invalid JSON"
	shapeDetail = "`task export` produced unexpected JSON shape"
)

// Decode parses export output into its records, in the order the tool
// emitted them. The output must be a JSON array whose elements are all objects.
func Decode(stdout []byte) ([]json.RawMessage, error) {
	if !json.Valid(stdout) {
		return nil, domain.NewTaskError(domain.ErrParse, parseDetail, nil)
	}

	trimmed := bytes.TrimSpace(stdout)
	if trimmed[0] != '[' {
		return nil, domain.NewTaskError(domain.ErrShape, shapeDetail+": top-level value is not an array", nil)
	}

	records := make([]json.RawMessage, 0)
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, domain.NewTaskError(domain.ErrShape, shapeDetail, err)
	}

	for i, rec := range records {
		if len(rec) == 0 || rec[0] != '{' {
			return nil, domain.NewTaskError(domain.ErrShape,
				fmt.Sprintf("%s: element %d is not an object", shapeDetail, i), nil)
		}
	}
	return records, nil
}

// DecodeTasks is Decode followed by ParseRawTask on every record.
func DecodeTasks(stdout []byte) ([]RawTask, error) {
	records, err := Decode(stdout)
	if err != nil {
		return nil, err
	}
	tasks := make([]RawTask, 0, len(records))
	for _, rec := range records {
		t, err := ParseRawTask(rec)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
