package http_auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/common"
	service_token_auth "github.com/humanbelnik/kinoswap/swipematch/internal/service/auth/token"
)

type TokenIssuer interface {
	Auth(code string, userID string) (string, error)
}

type Controller struct {
	service TokenIssuer
	logger  *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	service TokenIssuer,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		service: service,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("", c.auth)
}

// AuthRequestDTO DTO для запроса аутентификации
type AuthRequestDTO struct {
	Code   string `json:"code" binding:"required" example:"secret123"`
	UserID string `json:"user_id" binding:"required" example:"c0ffee00-0000-4000-8000-000000000001"`
}

// AuthResponseDTO DTO с токеном пользователя
type AuthResponseDTO struct {
	Token string `json:"token"`
}

// Auth выдает токен пользователя
// @Summary Аутентификация пользователя
// @Description Проверяет код и возвращает Bearer токен для указанного пользователя
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body AuthRequestDTO true "Данные для аутентификации"
// @Success 200 {object} http_common.Response{data=AuthResponseDTO}
// @Failure 400 {object} http_common.ErrorResponse "Неверный формат запроса"
// @Failure 403 {object} http_common.ErrorResponse "Неверный код аутентификации"
// @Failure 500 {object} http_common.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth [post]
func (c *Controller) auth(ctx *gin.Context) {
	var req AuthRequestDTO

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", slog.String("error", err.Error()))
		http_common.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	token, err := c.service.Auth(req.Code, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service_token_auth.ErrWrongCode):
			c.logger.Warn("wrong code", slog.String("user_id", req.UserID))
			http_common.Fail(ctx, http.StatusForbidden, "forbidden")
		case errors.Is(err, service_token_auth.ErrInvalidUser):
			http_common.Fail(ctx, http.StatusBadRequest, err.Error())
		default:
			c.logger.Error("internal auth error", slog.String("error", err.Error()))
			http_common.Fail(ctx, http.StatusInternalServerError, "internal error")
		}
		return
	}

	http_common.OK(ctx, http.StatusOK, AuthResponseDTO{Token: token})
}
