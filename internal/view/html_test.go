package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"taskwarrior_web/internal/domain"
)

func render(t *testing.T, tasks []domain.EnrichedTask) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, tasks); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func TestRenderOptionalFields(t *testing.T) {
	high := domain.PriorityHigh
	project := "home"
	due := time.Date(2024, 6, 3, 15, 4, 0, 0, time.UTC)

	out := render(t, []domain.EnrichedTask{
		{
			Description: "full",
			Status:      "pending",
			Priority:    &high,
			Project:     &project,
			Due:         &due,
			DueIn:       &domain.TimeDiff{Days: 2, Hours: 3, Minutes: 4},
			Urgency:     7.5,
		},
		{Description: "bare", Status: "pending"},
	})

	full, bare, ok := strings.Cut(out, "bare")
	if !ok {
		t.Fatalf("second task missing from output:\n%s", out)
	}

	for _, want := range []string{
		"<h2>full</h2>",
		"<strong>Priority:</strong> HIGH",
		"<strong>Project:</strong> home",
		"<strong>Due:</strong> " + due.In(time.Local).Format(DueLayout),
		"2 days, 3 hours, 4 minutes",
		"<strong>Urgency:</strong> 7.5",
	} {
		if !strings.Contains(full, want) {
			t.Errorf("expected %q in output:\n%s", want, full)
		}
	}
	if strings.Contains(full, "Overdue by") {
		t.Errorf("overdue row should be hidden")
	}

	for _, hidden := range []string{"Priority:", "Project:", "Due:", "Due in:", "Urgency:"} {
		if strings.Contains(bare, hidden) {
			t.Errorf("%q should be hidden for a bare task:\n%s", hidden, bare)
		}
	}
	if !strings.Contains(bare, "<strong>Status:</strong> pending") {
		t.Errorf("status is always shown:\n%s", bare)
	}
}

func TestRenderOverdueAndEscaping(t *testing.T) {
	out := render(t, []domain.EnrichedTask{{
		Description: "<script>alert(1)</script>",
		Status:      "pending",
		OverdueBy:   &domain.TimeDiff{Days: 1, Hours: 2, Minutes: 0},
	}})

	if strings.Contains(out, "<script>") {
		t.Fatalf("description must be escaped:\n%s", out)
	}
	if !strings.Contains(out, "1 days, 2 hours, 0 minutes") {
		t.Fatalf("overdue row missing:\n%s", out)
	}
}

func TestRenderKeepsGivenOrder(t *testing.T) {
	out := render(t, []domain.EnrichedTask{
		{Description: "first", Urgency: 1},
		{Description: "second", Urgency: 9},
	})
	if strings.Index(out, "first") > strings.Index(out, "second") {
		t.Fatalf("Render must not reorder tasks")
	}
}

func TestRenderEmpty(t *testing.T) {
	out := render(t, nil)
	if strings.Contains(out, `class="task"`) {
		t.Fatalf("no task blocks expected:\n%s", out)
	}
}
