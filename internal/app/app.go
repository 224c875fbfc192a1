package app

import (
	"errors"
	"log"
	"log/slog"

	"github.com/humanbelnik/kinoswap/swipematch/internal/config"
	http_auth "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/auth"
	http_friend "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/friend"
	http_init "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/init"
	http_access_middleware "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/middleware/access"
	http_auth_middleware "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/middleware/auth"
	http_movie "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/movie"
	http_session "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/session"
	http_swagger "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/swagger"
	http_swipe "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/swipe"
	infra_omdb "github.com/humanbelnik/kinoswap/swipematch/internal/infra/omdb"
	infra_postgres_friendship "github.com/humanbelnik/kinoswap/swipematch/internal/infra/postgres/friendship"
	infra_pg_init "github.com/humanbelnik/kinoswap/swipematch/internal/infra/postgres/init"
	infra_postgres_moviecache "github.com/humanbelnik/kinoswap/swipematch/internal/infra/postgres/moviecache"
	infra_postgres_session "github.com/humanbelnik/kinoswap/swipematch/internal/infra/postgres/session"
	infra_postgres_swipe "github.com/humanbelnik/kinoswap/swipematch/internal/infra/postgres/swipe"
	infra_rabbitmq_publisher "github.com/humanbelnik/kinoswap/swipematch/internal/infra/rabbitmq/publisher"
	infra_redis_init "github.com/humanbelnik/kinoswap/swipematch/internal/infra/redis/init"
	infra_redis_listcache "github.com/humanbelnik/kinoswap/swipematch/internal/infra/redis/listcache"
	infra_tmdb "github.com/humanbelnik/kinoswap/swipematch/internal/infra/tmdb"
	service_token_auth "github.com/humanbelnik/kinoswap/swipematch/internal/service/auth/token"
	service_catalog_cache "github.com/humanbelnik/kinoswap/swipematch/internal/service/catalog_cache"
	service_pool "github.com/humanbelnik/kinoswap/swipematch/internal/service/pool"
	usecase_friend "github.com/humanbelnik/kinoswap/swipematch/internal/usecase/friend"
	usecase_movie "github.com/humanbelnik/kinoswap/swipematch/internal/usecase/movie"
	usecase_session "github.com/humanbelnik/kinoswap/swipematch/internal/usecase/session"
	usecase_swipe "github.com/humanbelnik/kinoswap/swipematch/internal/usecase/swipe"
)

func Go(cfg *config.Config) {
	logger := slog.Default()

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	listCache := infra_redis_listcache.New(redisConn, cfg.Redis.Prefix, cfg.Redis.TTL)
	catalog := service_catalog_cache.New(
		infra_tmdb.New(cfg.Catalog, infra_tmdb.WithLogger(logger)),
		listCache,
		service_catalog_cache.WithLogger(logger),
	)
	poolBuilder := service_pool.New(catalog,
		service_pool.WithPageCeiling(cfg.Session.PageCeiling),
		service_pool.WithLogger(logger),
	)

	movieOpts := []usecase_movie.UsecaseOption{
		usecase_movie.WithFreshness(cfg.MovieCache.Freshness),
		usecase_movie.WithLogger(logger),
	}
	ratings, err := infra_omdb.New(cfg.Ratings)
	switch {
	case err == nil:
		movieOpts = append(movieOpts, usecase_movie.WithRatings(ratings))
	case errors.Is(err, infra_omdb.ErrNotConfigured):
		logger.Warn("secondary ratings disabled", slog.String("reason", err.Error()))
	default:
		log.Fatalf("ratings client: %v", err)
	}

	sessionRepository := infra_postgres_session.New(pgConn)
	swipeRepository := infra_postgres_swipe.New(pgConn)
	movieRepository := infra_postgres_moviecache.New(pgConn)
	friendRepository := infra_postgres_friendship.New(pgConn)

	movieUC := usecase_movie.New(catalog, movieRepository, movieOpts...)
	sessionUC := usecase_session.New(sessionRepository, poolBuilder, movieUC,
		usecase_session.WithPoolSize(cfg.Session.PoolSize),
		usecase_session.WithTTL(cfg.Session.TTL),
		usecase_session.WithLogger(logger),
	)

	swipeOpts := []usecase_swipe.UsecaseOption{usecase_swipe.WithLogger(logger)}
	if cfg.RabbitMQ.URL != "" {
		swipeOpts = append(swipeOpts, usecase_swipe.WithPublisher(
			infra_rabbitmq_publisher.New(cfg.RabbitMQ, infra_rabbitmq_publisher.WithLogger(logger)),
		))
	}
	swipeUC := usecase_swipe.New(sessionRepository, swipeRepository, swipeOpts...)
	friendUC := usecase_friend.New(friendRepository, usecase_friend.WithLogger(logger))

	authService := service_token_auth.New(cfg.Auth)
	authRequired := http_auth_middleware.New(authService, http_auth_middleware.WithLogger(logger)).AuthRequired()

	controllerPool := http_init.NewControllerPool()
	controllerPool.AllowOrigins(cfg.HTTP.AllowOrigins...)
	controllerPool.Use(http_access_middleware.ReadOnly(cfg.HTTP.Mode))
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_auth.New(authService, http_auth.WithLogger(logger)))
	controllerPool.Add(http_session.New(sessionUC, authRequired, http_session.WithLogger(logger)))
	controllerPool.Add(http_swipe.New(swipeUC, authRequired, http_swipe.WithLogger(logger)))
	controllerPool.Add(http_movie.New(movieUC, authRequired, http_movie.WithLogger(logger)))
	controllerPool.Add(http_friend.New(friendUC, authRequired, http_friend.WithLogger(logger)))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
