package common

import (
	"fmt"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"

	"github.com/ezhulati/choose-my-power-sub003/internal/cache"
	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/config"
	"github.com/ezhulati/choose-my-power-sub003/internal/market"
	"github.com/ezhulati/choose-my-power-sub003/internal/planner"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
	"github.com/ezhulati/choose-my-power-sub003/internal/seometa"
)

// Engine bundles the wired routing-engine components commands operate on.
type Engine struct {
	Registry  *registry.Registry
	Cache     cache.Interface
	Market    market.Provider
	Resolver  *canonical.Resolver
	Planner   *planner.Planner
	Generator *seometa.Generator
}

// NewEngine wires the full engine from configuration: registry, decision
// cache, market provider, resolver, planner, and metadata generator.
func NewEngine(deps CommandDeps) (*Engine, error) {
	reg, err := loadRegistry(deps.Config.Registry)
	if err != nil {
		return nil, err
	}

	store, err := buildCache(deps.Config.Cache)
	if err != nil {
		return nil, err
	}

	provider, err := buildMarket(deps)
	if err != nil {
		return nil, err
	}

	resolver := canonical.NewResolver(reg, store, deps.Logger)

	return &Engine{
		Registry:  reg,
		Cache:     store,
		Market:    provider,
		Resolver:  resolver,
		Planner:   planner.New(reg, resolver, provider, deps.Config.Planner.Planner(), deps.Logger),
		Generator: seometa.New(deps.Config.Site.OGImageBase),
	}, nil
}

// loadRegistry loads the configured city registry, falling back to the
// embedded default table.
func loadRegistry(cfg config.RegistryConfig) (*registry.Registry, error) {
	if cfg.Path != "" {
		reg, err := registry.Load(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("load registry %s: %w", cfg.Path, err)
		}

		return reg, nil
	}

	reg, err := registry.Default()
	if err != nil {
		return nil, fmt.Errorf("load embedded registry: %w", err)
	}

	return reg, nil
}

// buildCache constructs the configured decision cache backend.
func buildCache(cfg config.CacheConfig) (cache.Interface, error) {
	switch cfg.Backend {
	case "memory":
		return cache.NewMemory(cfg.MaxEntries), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		return cache.NewRedis(client, cfg.TTL), nil
	case "none":
		return cache.NewNoOp(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// buildMarket constructs the configured market-data provider. A nil provider
// is valid; market-gated rules then fall back to their allow/deny lists.
func buildMarket(deps CommandDeps) (market.Provider, error) {
	cfg := deps.Config.Market

	switch cfg.Source {
	case "none":
		return nil, nil
	case "file":
		provider, err := market.LoadFile(cfg.SnapshotPath)
		if err != nil {
			return nil, fmt.Errorf("load market snapshot %s: %w", cfg.SnapshotPath, err)
		}

		return provider, nil
	case "elastic":
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: cfg.Elastic.Addresses,
			APIKey:    cfg.Elastic.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("create elasticsearch client: %w", err)
		}

		return market.NewElastic(client, cfg.Elastic.Index, deps.Logger), nil
	default:
		return nil, fmt.Errorf("unknown market source %q", cfg.Source)
	}
}
