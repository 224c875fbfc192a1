package http_friend

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

//go:generate mockery --name=Usecase --output=./mocks/friend/usecase --filename=usecase.go
type Usecase interface {
	List(ctx context.Context, callerID string) ([]model.Friendship, error)
	SendRequest(ctx context.Context, callerID, targetID string) (model.Friendship, error)
	Accept(ctx context.Context, callerID string, id uuid.UUID) (model.Friendship, error)
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
	friends := router.Group("/friends", c.auth)
	friends.GET("", c.list)
	friends.POST("/requests", c.request)
	friends.POST("/requests/:friendship_id/accept", c.accept)
}

// FriendRequestDTO
type FriendRequestDTO struct {
	UserID string `json:"user_id" binding:"required" example:"bob"`
}

// FriendshipDTO
type FriendshipDTO struct {
	ID         uuid.UUID  `json:"id" swaggertype:"string"`
	FriendID   string     `json:"friend_id"`
	Status     string     `json:"status" enums:"pending,accepted"`
	CreatedAt  time.Time  `json:"created_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
}

// ConvertFromFriendship shows the pair from the caller's side.
func ConvertFromFriendship(f model.Friendship, callerID string) FriendshipDTO {
	friend := f.UserID1
	if friend == callerID {
		friend = f.UserID2
	}
	return FriendshipDTO{
		ID:         f.ID,
		FriendID:   friend,
		Status:     f.Status,
		CreatedAt:  f.CreatedAt,
		AcceptedAt: f.AcceptedAt,
	}
}

// @Summary Список друзей
// @Tags Friends
// @Produce json
// @Success 200 {object} http_common.Response{data=[]FriendshipDTO}
// @Security BearerAuth
// @Router /friends [get]
func (c *Controller) list(ctx *gin.Context) {
	callerID := http_common.CallerID(ctx)
	friends, err := c.uc.List(ctx, callerID)
	if err != nil {
		http_common.Error(ctx, c.logger, "list friends", err)
		return
	}

	out := make([]FriendshipDTO, len(friends))
	for i, f := range friends {
		out[i] = ConvertFromFriendship(f, callerID)
	}
	http_common.OK(ctx, http.StatusOK, out)
}

// @Summary Заявка в друзья
// @Description Повторная заявка возвращает уже существующую пару
// @Tags Friends
// @Accept json
// @Produce json
// @Param request body FriendRequestDTO true "Кого добавить"
// @Success 201 {object} http_common.Response{data=FriendshipDTO}
// @Failure 400 {object} http_common.ErrorResponse "Заявка самому себе"
// @Security BearerAuth
// @Router /friends/requests [post]
func (c *Controller) request(ctx *gin.Context) {
	var req FriendRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Fail(ctx, http.StatusBadRequest, "invalid request format")
		return
	}

	callerID := http_common.CallerID(ctx)
	f, err := c.uc.SendRequest(ctx, callerID, req.UserID)
	if err != nil {
		http_common.Error(ctx, c.logger, "send friend request", err)
		return
	}
	http_common.OK(ctx, http.StatusCreated, ConvertFromFriendship(f, callerID))
}

// @Summary Принять заявку
// @Tags Friends
// @Produce json
// @Param friendship_id path string true "UUID заявки"
// @Success 200 {object} http_common.Response{data=FriendshipDTO}
// @Failure 403 {object} http_common.ErrorResponse "Чужая заявка"
// @Failure 404 {object} http_common.ErrorResponse "Заявка не найдена"
// @Security BearerAuth
// @Router /friends/requests/{friendship_id}/accept [post]
func (c *Controller) accept(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("friendship_id"))
	if err != nil {
		http_common.Fail(ctx, http.StatusBadRequest, "invalid friendship id")
		return
	}

	callerID := http_common.CallerID(ctx)
	f, err := c.uc.Accept(ctx, callerID, id)
	if err != nil {
		http_common.Error(ctx, c.logger, "accept friend request", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, ConvertFromFriendship(f, callerID))
}
