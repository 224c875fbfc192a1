package http_session

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

//go:generate mockery --name=Usecase --output=./mocks/session/usecase --filename=usecase.go
type Usecase interface {
	Create(ctx context.Context, callerID string, invited []string, filters model.Filters) (model.Session, error)
	Join(ctx context.Context, callerID string, code string) (model.Session, error)
	Start(ctx context.Context, sessionID uuid.UUID, callerID string) (model.Session, error)
	UpdatePreferences(ctx context.Context, sessionID uuid.UUID, callerID string, filters model.Filters) (model.Session, error)
	Delete(ctx context.Context, sessionID uuid.UUID, callerID string) error
	Get(ctx context.Context, sessionID uuid.UUID, callerID string) (model.Session, error)
	Active(ctx context.Context, callerID string) ([]model.Session, error)
	History(ctx context.Context, callerID string) ([]model.Session, error)
	Participants(ctx context.Context, sessionID uuid.UUID, callerID string) (model.ParticipantsInfo, error)
	Movies(ctx context.Context, sessionID uuid.UUID, callerID string) ([]model.EnrichedMovie, error)
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
	sessions := router.Group("/sessions", c.auth)
	{
		sessions.POST("", c.create)
		sessions.GET("/active", c.active)
		sessions.GET("/history", c.history)
		sessions.POST("/join", c.join)
		sessions.GET("/:session_id", c.get)
		sessions.DELETE("/:session_id", c.delete)
		sessions.POST("/:session_id/start", c.start)
		sessions.PUT("/:session_id/preferences", c.updatePreferences)
		sessions.GET("/:session_id/participants", c.participants)
		sessions.GET("/:session_id/movies", c.movies)
	}
}

// CreateRequestDTO DTO для создания сессии
type CreateRequestDTO struct {
	ParticipantIDs []string      `json:"participant_ids" example:"bob,carol"`
	Filters        model.Filters `json:"filters"`
}

// JoinRequestDTO DTO для входа в сессию по коду
type JoinRequestDTO struct {
	Code string `json:"code" binding:"required" example:"3fa2b7c1"`
}

// PreferencesRequestDTO DTO для смены фильтров
type PreferencesRequestDTO struct {
	Filters model.Filters `json:"filters"`
}

// SessionDTO DTO сессии
type SessionDTO struct {
	ID             uuid.UUID       `json:"id" swaggertype:"string" example:"3fa2b7c1-0000-4000-8000-000000000001"`
	Code           string          `json:"code" example:"3fa2b7c1"`
	HostID         string          `json:"host_id"`
	ParticipantIDs []string        `json:"participant_ids"`
	Status         string          `json:"status" enums:"active,started,completed,expired"`
	Pool           []model.MovieID `json:"pool"`
	Filters        model.Filters   `json:"filters"`
	MatchedMovieID *model.MovieID  `json:"matched_movie_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ExpiresAt      time.Time       `json:"expires_at"`
}

// ParticipantsDTO DTO состояния лобби
type ParticipantsDTO struct {
	Count   int    `json:"count" example:"3"`
	Status  string `json:"status" example:"active"`
	Started bool   `json:"started" example:"false"`
}

func ConvertFromSession(s model.Session) SessionDTO {
	pool := s.Pool
	if pool == nil {
		pool = []model.MovieID{}
	}
	return SessionDTO{
		ID:             s.ID,
		Code:           s.ShortCode(),
		HostID:         s.HostID,
		ParticipantIDs: s.ParticipantIDs,
		Status:         s.Status,
		Pool:           pool,
		Filters:        s.Filters,
		MatchedMovieID: s.MatchedMovieID,
		CreatedAt:      s.CreatedAt,
		ExpiresAt:      s.ExpiresAt,
	}
}

func ConvertFromSessionList(sessions []model.Session) []SessionDTO {
	out := make([]SessionDTO, len(sessions))
	for i, s := range sessions {
		out[i] = ConvertFromSession(s)
	}
	return out
}

// @Summary Создание сессии
// @Description Создает сессию, собирает пул фильмов по фильтрам. Вызвавший становится хостом
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body CreateRequestDTO true "Приглашенные участники и фильтры"
// @Success 201 {object} http_common.Response{data=SessionDTO}
// @Failure 400 {object} http_common.ErrorResponse "Неверные фильтры"
// @Failure 401 {object} http_common.ErrorResponse "Не авторизован"
// @Failure 422 {object} http_common.ErrorResponse "Нет фильмов под фильтры"
// @Failure 502 {object} http_common.ErrorResponse "Каталог недоступен"
// @Security BearerAuth
// @Router /sessions [post]
func (c *Controller) create(ctx *gin.Context) {
	var req CreateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	s, err := c.uc.Create(ctx, http_common.CallerID(ctx), req.ParticipantIDs, req.Filters)
	if err != nil {
		http_common.Error(ctx, c.logger, "create session", err)
		return
	}
	http_common.OK(ctx, http.StatusCreated, ConvertFromSession(s))
}

// @Summary Вход в сессию
// @Description Добавляет вызвавшего в сессию по короткому коду или полному id
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body JoinRequestDTO true "Код сессии"
// @Success 200 {object} http_common.Response{data=SessionDTO}
// @Failure 404 {object} http_common.ErrorResponse "Сессия не найдена"
// @Failure 409 {object} http_common.ErrorResponse "Сессия уже началась"
// @Security BearerAuth
// @Router /sessions/join [post]
func (c *Controller) join(ctx *gin.Context) {
	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	s, err := c.uc.Join(ctx, http_common.CallerID(ctx), req.Code)
	if err != nil {
		http_common.Error(ctx, c.logger, "join session", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, ConvertFromSession(s))
}

// @Summary Активные сессии
// @Tags Sessions
// @Produce json
// @Success 200 {object} http_common.Response{data=[]SessionDTO}
// @Security BearerAuth
// @Router /sessions/active [get]
func (c *Controller) active(ctx *gin.Context) {
	sessions, err := c.uc.Active(ctx, http_common.CallerID(ctx))
	if err != nil {
		http_common.Error(ctx, c.logger, "list active sessions", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, ConvertFromSessionList(sessions))
}

// @Summary История совпадений
// @Tags Sessions
// @Produce json
// @Success 200 {object} http_common.Response{data=[]SessionDTO}
// @Security BearerAuth
// @Router /sessions/history [get]
func (c *Controller) history(ctx *gin.Context) {
	sessions, err := c.uc.History(ctx, http_common.CallerID(ctx))
	if err != nil {
		http_common.Error(ctx, c.logger, "list session history", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, ConvertFromSessionList(sessions))
}

// @Summary Получение сессии
// @Tags Sessions
// @Produce json
// @Param session_id path string true "UUID сессии"
// @Success 200 {object} http_common.Response{data=SessionDTO}
// @Failure 403 {object} http_common.ErrorResponse "Не участник"
// @Failure 404 {object} http_common.ErrorResponse "Сессия не найдена"
// @Security BearerAuth
// @Router /sessions/{session_id} [get]
func (c *Controller) get(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	s, err := c.uc.Get(ctx, id, http_common.CallerID(ctx))
	if err != nil {
		http_common.Error(ctx, c.logger, "get session", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, ConvertFromSession(s))
}

// @Summary Удаление сессии
// @Description Только хост. Удаляет сессию вместе со свайпами
// @Tags Sessions
// @Param session_id path string true "UUID сессии"
// @Success 204
// @Failure 403 {object} http_common.ErrorResponse "Не хост"
// @Failure 404 {object} http_common.ErrorResponse "Сессия не найдена"
// @Security BearerAuth
// @Router /sessions/{session_id} [delete]
func (c *Controller) delete(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := c.uc.Delete(ctx, id, http_common.CallerID(ctx)); err != nil {
		http_common.Error(ctx, c.logger, "delete session", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Старт свайпов
// @Description Только хост. Переводит лобби в статус started
// @Tags Sessions
// @Produce json
// @Param session_id path string true "UUID сессии"
// @Success 200 {object} http_common.Response{data=SessionDTO}
// @Failure 403 {object} http_common.ErrorResponse "Не хост"
// @Failure 409 {object} http_common.ErrorResponse "Сессия завершена"
// @Security BearerAuth
// @Router /sessions/{session_id}/start [post]
func (c *Controller) start(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	s, err := c.uc.Start(ctx, id, http_common.CallerID(ctx))
	if err != nil {
		http_common.Error(ctx, c.logger, "start session", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, ConvertFromSession(s))
}

// @Summary Смена фильтров
// @Description Пересобирает пул и сбрасывает все свайпы сессии
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "UUID сессии"
// @Param request body PreferencesRequestDTO true "Новые фильтры"
// @Success 200 {object} http_common.Response{data=SessionDTO}
// @Failure 409 {object} http_common.ErrorResponse "Сессия завершена"
// @Failure 422 {object} http_common.ErrorResponse "Нет фильмов под фильтры"
// @Security BearerAuth
// @Router /sessions/{session_id}/preferences [put]
func (c *Controller) updatePreferences(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req PreferencesRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	s, err := c.uc.UpdatePreferences(ctx, id, http_common.CallerID(ctx), req.Filters)
	if err != nil {
		http_common.Error(ctx, c.logger, "update preferences", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, ConvertFromSession(s))
}

// @Summary Состояние лобби
// @Tags Sessions
// @Produce json
// @Param session_id path string true "UUID сессии"
// @Success 200 {object} http_common.Response{data=ParticipantsDTO}
// @Failure 403 {object} http_common.ErrorResponse "Не участник"
// @Security BearerAuth
// @Router /sessions/{session_id}/participants [get]
func (c *Controller) participants(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	info, err := c.uc.Participants(ctx, id, http_common.CallerID(ctx))
	if err != nil {
		http_common.Error(ctx, c.logger, "session participants", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, ParticipantsDTO{
		Count:   info.Count,
		Status:  info.Status,
		Started: info.Started,
	})
}

// @Summary Фильмы пула
// @Description Карточки фильмов пула в порядке свайпа
// @Tags Sessions
// @Produce json
// @Param session_id path string true "UUID сессии"
// @Success 200 {object} http_common.Response{data=[]model.EnrichedMovie}
// @Failure 403 {object} http_common.ErrorResponse "Не участник"
// @Security BearerAuth
// @Router /sessions/{session_id}/movies [get]
func (c *Controller) movies(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	movies, err := c.uc.Movies(ctx, id, http_common.CallerID(ctx))
	if err != nil {
		http_common.Error(ctx, c.logger, "session movies", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, movies)
}

func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		http_common.Fail(ctx, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}
