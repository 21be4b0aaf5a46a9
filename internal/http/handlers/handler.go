package handlers

import (
	"errors"

	"taskwarrior_web/internal/domain"
	"taskwarrior_web/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Tasks *service.TaskService
}

func NewHandler(tasks *service.TaskService) *Handler {
	return &Handler{Tasks: tasks}
}

// respondError aborts with the status mapped from err and a {"detail": ...} body.
func respondError(c *gin.Context, err error) {
	detail := "internal server error"
	var te *domain.TaskError
	if errors.As(err, &te) {
		detail = te.Detail
	}
	c.AbortWithStatusJSON(domain.StatusCode(err), gin.H{"detail": detail})
}
