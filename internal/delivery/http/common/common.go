package http_common

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
)

// UserIDKey is where the auth middleware leaves the caller id.
const UserIDKey = "user_id"

// ErrorResponse DTO для ответа с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"not found"`
}

// Response DTO для успешного ответа
type Response struct {
	Success bool   `json:"success" example:"true"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, Response{Success: true, Data: data})
}

func Fail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{Message: message})
}

// CallerID is empty for anonymous requests.
func CallerID(ctx *gin.Context) string {
	return ctx.GetString(UserIDKey)
}

// Error maps domain errors to statuses. Internal details are logged
// and never leave the process.
func Error(ctx *gin.Context, logger *slog.Logger, op string, err error) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		logger.Error(op+" failed", slog.String("error", err.Error()))
	} else {
		logger.Warn(op+" rejected",
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
	}
	Fail(ctx, status, message)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInternal):
		return http.StatusInternalServerError, "internal error"
	case errors.Is(err, model.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, model.ErrResourceNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, model.ErrInvalidState):
		return http.StatusConflict, err.Error()
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrUpstream):
		return http.StatusBadGateway, "movie catalog unavailable"
	case errors.Is(err, model.ErrEmptyPool):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
