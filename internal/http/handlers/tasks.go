package handlers

import (
	"context"
	"net/http"

	"taskwarrior_web/internal/view"

	"github.com/gin-gonic/gin"
)

// exportContext keeps request values (logger, request id) but not the
// request's cancellation: an export, once started, runs until it exits or
// times out.
func exportContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

// ListTasks returns the export records as emitted by Taskwarrior
func (h *Handler) ListTasks(c *gin.Context) {
	records, err := h.Tasks.RawRecords(exportContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// ListEnrichedTasks returns normalized tasks in export order
func (h *Handler) ListEnrichedTasks(c *gin.Context) {
	tasks, err := h.Tasks.Enriched(exportContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// ListEnrichedTasksHTML renders normalized tasks, most urgent first
func (h *Handler) ListEnrichedTasksHTML(c *gin.Context) {
	tasks, err := h.Tasks.EnrichedByUrgency(exportContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.HTML(http.StatusOK, view.TasksTemplate, view.Data(tasks))
}
