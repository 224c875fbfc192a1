package main

import (
	"github.com/humanbelnik/kinoswap/swipematch/internal/config"
	http_auth "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/auth"
	http_init "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/init"
	service_token_auth "github.com/humanbelnik/kinoswap/swipematch/internal/service/auth/token"
)

// Token issuer only. Shares AUTH_SECRET with the API so its tokens verify there.
func main() {
	cfg := config.Load()
	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_auth.New(service_token_auth.New(cfg.Auth)))
	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
