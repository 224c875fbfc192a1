package main

import (
	"github.com/humanbelnik/kinoswap/swipematch/internal/app"
	"github.com/humanbelnik/kinoswap/swipematch/internal/config"
)

// @title Swipematch API
// @version 1.0
// @description Групповой подбор фильма свайпами
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Go(config.Load())
}
