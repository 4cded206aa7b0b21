package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/testgrader/internal/dto"
	"github.com/lshigami/testgrader/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StatusFor maps the service error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConsistency):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a dto.ErrorResponse with the mapped status.
func RespondError(ctx *gin.Context, message string, err error) {
	status := StatusFor(err)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("path", ctx.FullPath()).Int("status", status).Msg(message)
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// ParseUintParam reads a positive numeric path parameter, answering 400 when it is malformed.
func ParseUintParam(ctx *gin.Context, name, label string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + label + " format"})
		return 0, false
	}
	return uint(val), true
}

// ParseUserID reads a caller-issued user identifier from a path or query value.
func ParseUserID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health godoc
// @Summary Liveness and database check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /healthz [get]
func (c *HealthController) Health(ctx *gin.Context) {
	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		log.Error().Err(err).Msg("Health check: database unreachable")
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "database unreachable", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"})
}
