package memcache_fx

import (
	"go.uber.org/fx"
	"tripcheck/internal/config"
	mem "tripcheck/pkg/memcache"
)

var Module = fx.Provide(provideResultCache)

func provideResultCache(cfg *config.Config) mem.ResultStore {
	return mem.NewResultCache(cfg.CacheEntries)
}
