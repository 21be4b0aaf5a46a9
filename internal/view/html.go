// Package view renders enriched tasks as HTML.
package view

import (
	"embed"
	"html/template"
	"io"
	"strconv"
	"time"

	"taskwarrior_web/internal/domain"
)

// TasksTemplate is the template name registered with gin.
const TasksTemplate = "tasks.html"

// DueLayout is how due dates are shown, in the server's local zone.
const DueLayout = "Monday, January 02, 2006 at 03:04 PM"

//go:embed templates/*.html
var templateFS embed.FS

var tasksTemplate = template.Must(template.ParseFS(templateFS, "templates/"+TasksTemplate))

// Template returns the parsed templates, for gin's SetHTMLTemplate.
func Template() *template.Template {
	return tasksTemplate
}

// taskView holds the display strings of one task; empty means "not shown".
type taskView struct {
	Description string
	Status      string
	Priority    string
	Project     string
	Due         string
	DueIn       *domain.TimeDiff
	OverdueBy   *domain.TimeDiff
	Urgency     string
}

func newTaskView(t domain.EnrichedTask) taskView {
	v := taskView{
		Description: t.Description,
		Status:      t.Status,
		DueIn:       t.DueIn,
		OverdueBy:   t.OverdueBy,
	}
	if t.Priority != nil {
		v.Priority = string(*t.Priority)
	}
	if t.Project != nil {
		v.Project = *t.Project
	}
	if t.Due != nil {
		v.Due = t.Due.In(time.Local).Format(DueLayout)
	}
	if t.Urgency != 0 {
		v.Urgency = strconv.FormatFloat(t.Urgency, 'f', -1, 64)
	}
	return v
}

// Data builds the template data for tasks, in the order given.
func Data(tasks []domain.EnrichedTask) map[string]any {
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, newTaskView(t))
	}
	return map[string]any{"Tasks": views}
}

// Render writes the tasks page to w.
func Render(w io.Writer, tasks []domain.EnrichedTask) error {
	return tasksTemplate.ExecuteTemplate(w, TasksTemplate, Data(tasks))
}
