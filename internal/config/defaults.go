package config

import (
	"github.com/spf13/viper"

	"github.com/ezhulati/choose-my-power-sub003/internal/cache"
	"github.com/ezhulati/choose-my-power-sub003/internal/planner"
)

// setDefaults registers every configuration key with its default value.
// Registration also makes keys visible to AutomaticEnv, so any knob here can
// be overridden with CMP_SECTION_KEY.
func setDefaults(v *viper.Viper) {
	v.SetDefault("site.base_url", "https://choosemypower.example")
	v.SetDefault("site.og_image_base", "https://cdn.choosemypower.example/og")

	v.SetDefault("registry.path", "")

	v.SetDefault("planner.batch_size", planner.DefaultBatchSize)
	v.SetDefault("planner.global_page_cap", planner.DefaultGlobalPageCap)
	v.SetDefault("planner.tier1_cap", planner.DefaultTier1Cap)
	v.SetDefault("planner.tier2_cap", planner.DefaultTier2Cap)
	v.SetDefault("planner.tier3_cap", planner.DefaultTier3Cap)
	v.SetDefault("planner.time_budget", planner.DefaultTimeBudget)
	v.SetDefault("planner.page_build_cost", planner.DefaultPageBuildCost)
	v.SetDefault("planner.isr_threshold", planner.DefaultISRThreshold)
	v.SetDefault("planner.concurrency", planner.DefaultConcurrency)

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.max_entries", cache.DefaultMaxEntries)
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.redis.addr", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)

	v.SetDefault("market.source", "none")
	v.SetDefault("market.snapshot_path", "")
	v.SetDefault("market.elastic.addresses", []string{"http://localhost:9200"})
	v.SetDefault("market.elastic.index", "seo-market-metrics")
	v.SetDefault("market.elastic.api_key", "")

	v.SetDefault("sitemap.out_dir", "public")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
}

// Planner converts the decoded planner section into the planner's own
// configuration type.
func (c PlannerConfig) Planner() planner.Config {
	return planner.Config{
		TierCaps: map[int]int{
			1: c.Tier1Cap,
			2: c.Tier2Cap,
			3: c.Tier3Cap,
		},
		GlobalPageCap: c.GlobalPageCap,
		BatchSize:     c.BatchSize,
		TimeBudget:    c.TimeBudget,
		PageBuildCost: c.PageBuildCost,
		ISRThreshold:  c.ISRThreshold,
		Concurrency:   c.Concurrency,
	}
}
