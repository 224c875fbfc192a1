package http_movie

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/common"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
)

//go:generate mockery --name=Usecase --output=./mocks/movie/usecase --filename=usecase.go
type Usecase interface {
	GetEnriched(ctx context.Context, id model.MovieID) (model.EnrichedMovie, error)
	Search(ctx context.Context, query string, page int) (model.Page, error)
	Popular(ctx context.Context, page int) (model.Page, error)
	TopRated(ctx context.Context, page int) (model.Page, error)
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
	movies := router.Group("/movies", c.auth)
	movies.GET("/search", c.search)
	movies.GET("/popular", c.popular)
	movies.GET("/top-rated", c.topRated)
	movies.GET("/:movie_id", c.getMovie)
}

// @Summary Карточка фильма
// @Description Детали фильма с трейлером и рейтингами. Отдается из кеша, пока он свежий
// @Tags Movies
// @Produce json
// @Param movie_id path int true "TMDb id фильма" example(603)
// @Success 200 {object} http_common.Response{data=model.EnrichedMovie}
// @Failure 400 {object} http_common.ErrorResponse "Неверный id"
// @Failure 404 {object} http_common.ErrorResponse "Фильм не найден"
// @Failure 502 {object} http_common.ErrorResponse "Каталог недоступен"
// @Security BearerAuth
// @Router /movies/{movie_id} [get]
func (c *Controller) getMovie(ctx *gin.Context) {
	idParam := ctx.Param("movie_id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		c.logger.Warn("invalid movie id", slog.String("id", idParam))
		http_common.Fail(ctx, http.StatusBadRequest, "invalid movie id")
		return
	}

	movie, err := c.uc.GetEnriched(ctx, id)
	if err != nil {
		http_common.Error(ctx, c.logger, "get movie", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, movie)
}

// @Summary Поиск фильмов
// @Tags Movies
// @Produce json
// @Param query query string true "Строка поиска"
// @Param page query int false "Страница" default(1)
// @Success 200 {object} http_common.Response{data=model.Page}
// @Failure 400 {object} http_common.ErrorResponse "Пустой запрос"
// @Failure 502 {object} http_common.ErrorResponse "Каталог недоступен"
// @Security BearerAuth
// @Router /movies/search [get]
func (c *Controller) search(ctx *gin.Context) {
	page, ok := pageParam(ctx)
	if !ok {
		return
	}

	out, err := c.uc.Search(ctx, ctx.Query("query"), page)
	if err != nil {
		http_common.Error(ctx, c.logger, "search movies", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, out)
}

// @Summary Популярные фильмы
// @Tags Movies
// @Produce json
// @Param page query int false "Страница" default(1)
// @Success 200 {object} http_common.Response{data=model.Page}
// @Failure 502 {object} http_common.ErrorResponse "Каталог недоступен"
// @Security BearerAuth
// @Router /movies/popular [get]
func (c *Controller) popular(ctx *gin.Context) {
	page, ok := pageParam(ctx)
	if !ok {
		return
	}

	out, err := c.uc.Popular(ctx, page)
	if err != nil {
		http_common.Error(ctx, c.logger, "popular movies", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, out)
}

// @Summary Фильмы с высоким рейтингом
// @Tags Movies
// @Produce json
// @Param page query int false "Страница" default(1)
// @Success 200 {object} http_common.Response{data=model.Page}
// @Failure 502 {object} http_common.ErrorResponse "Каталог недоступен"
// @Security BearerAuth
// @Router /movies/top-rated [get]
func (c *Controller) topRated(ctx *gin.Context) {
	page, ok := pageParam(ctx)
	if !ok {
		return
	}

	out, err := c.uc.TopRated(ctx, page)
	if err != nil {
		http_common.Error(ctx, c.logger, "top rated movies", err)
		return
	}
	http_common.OK(ctx, http.StatusOK, out)
}

func pageParam(ctx *gin.Context) (int, bool) {
	raw := ctx.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil {
		http_common.Fail(ctx, http.StatusBadRequest, "invalid page")
		return 0, false
	}
	return page, true
}
