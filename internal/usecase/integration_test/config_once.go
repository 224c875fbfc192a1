//go:build integration
// +build integration

package integrationtest

import (
	"sync"

	"github.com/humanbelnik/kinoswap/swipematch/internal/config"
)

var (
	cfg     *config.Config
	cfgOnce sync.Once
)

// getConfig reads the environment only; go test owns the command line.
func getConfig() *config.Config {
	cfgOnce.Do(func() {
		cfg = config.FromEnv()
	})
	return cfg
}
