package http_swipe

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/common"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
)

//go:generate mockery --name=Usecase --output=./mocks/swipe/usecase --filename=usecase.go
type Usecase interface {
	RecordSwipe(ctx context.Context, sessionID uuid.UUID, callerID string, movieID model.MovieID, direction model.Direction) (model.SwipeResult, error)
	Swipes(ctx context.Context, sessionID uuid.UUID, callerID string) ([]model.Swipe, error)
}

type Controller struct {
	uc   Usecase
	auth gin.HandlerFunc

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc Usecase,
	auth gin.HandlerFunc,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	swipes := router.Group("/sessions/:session_id/swipes", c.auth)
	swipes.POST("", c.swipe)
	swipes.GET("", c.list)
}

// SwipeRequestDTO
type SwipeRequestDTO struct {
	MovieID   model.MovieID `json:"movie_id" binding:"required" example:"603"`
	Direction string        `json:"direction" binding:"required" example:"right" enums:"left,right,super"`
}

// SwipeResultDTO
type SwipeResultDTO struct {
	Matched bool           `json:"matched" example:"true"`
	MovieID *model.MovieID `json:"movie_id,omitempty" example:"603"`
}

// SwipeDTO
type SwipeDTO struct {
	MovieID   model.MovieID `json:"movie_id" example:"603"`
	Direction string        `json:"direction" example:"left"`
	SwipedAt  time.Time     `json:"swiped_at"`
}

// @Summary Свайп фильма
// @Description Сохраняет решение участника. Когда все участники лайкнули фильм, сессия завершается совпадением
// @Tags Swipes
// @Accept json
// @Produce json
// @Param session_id path string true "UUID сессии"
// @Param request body SwipeRequestDTO true "Фильм и направление"
// @Success 200 {object} http_common.Response{data=SwipeResultDTO}
// @Failure 400 {object} http_common.ErrorResponse "Неверное направление"
// @Failure 403 {object} http_common.ErrorResponse "Не участник"
// @Failure 404 {object} http_common.ErrorResponse "Сессия или фильм не найдены"
// @Failure 409 {object} http_common.ErrorResponse "Сессия уже завершена"
// @Security BearerAuth
// @Router /sessions/{session_id}/swipes [post]
func (c *Controller) swipe(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		http_common.Fail(ctx, http.StatusBadRequest, "invalid session id")
		return
	}
	var req SwipeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	res, err := c.uc.RecordSwipe(ctx, id, http_common.CallerID(ctx), req.MovieID, model.Direction(req.Direction))
	if err != nil {
		http_common.Error(ctx, c.logger, "record swipe", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, SwipeResultDTO{
		Matched: res.Matched,
		MovieID: res.MovieID,
	})
}

// @Summary Свои свайпы
// @Tags Swipes
// @Produce json
// @Param session_id path string true "UUID сессии"
// @Success 200 {object} http_common.Response{data=[]SwipeDTO}
// @Failure 403 {object} http_common.ErrorResponse "Не участник"
// @Security BearerAuth
// @Router /sessions/{session_id}/swipes [get]
func (c *Controller) list(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		http_common.Fail(ctx, http.StatusBadRequest, "invalid session id")
		return
	}

	swipes, err := c.uc.Swipes(ctx, id, http_common.CallerID(ctx))
	if err != nil {
		http_common.Error(ctx, c.logger, "list swipes", err)
		return
	}

	out := make([]SwipeDTO, len(swipes))
	for i, s := range swipes {
		out[i] = SwipeDTO{MovieID: s.MovieID, Direction: string(s.Direction), SwipedAt: s.SwipedAt}
	}
	http_common.OK(ctx, http.StatusOK, out)
}
