package common

import (
	"encoding/json"
	"time"

	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/metrics"
)

// FreshnessCache puts a time-bounded cache in front of the upstream fetchers.
// Short is used for weather and flight listings, Long for roster hours.
// Concurrent misses on the same key each load independently.
type FreshnessCache struct {
	store   CacheInterface
	metrics *metrics.MetricsRegistry
	Short   time.Duration
	Long    time.Duration
}

// NewFreshnessCache wraps store. Zero TTLs fall back to the package defaults.
func NewFreshnessCache(store CacheInterface, short, long time.Duration, m *metrics.MetricsRegistry) *FreshnessCache {
	if short <= 0 {
		short = constants.ShortCacheTTL
	}
	if long <= 0 {
		long = constants.LongCacheTTL
	}
	return &FreshnessCache{store: store, metrics: m, Short: short, Long: long}
}

// Store exposes the backend, mainly for health checks
func (fc *FreshnessCache) Store() CacheInterface { return fc.store }

// Fetch returns the cached value for prefix+param or calls load. The loaded
// value is stored only when load reports it as upstream data; fallbacks are
// handed to the caller but not cached, so the next call tries again.
func Fetch[T any](fc *FreshnessCache, prefix constants.CachePrefix, param string, ttl time.Duration, load func() (T, bool)) T {
	key := string(prefix) + param

	if val, found := fc.store.Get(key); found {
		if v, ok := decodeCached[T](val); ok {
			fc.count(prefix, true)
			return v
		}
		logging.Warn("Dropping undecodable cache entry", "key", key)
		fc.store.Delete(key)
	}
	fc.count(prefix, false)

	v, real := load()
	if real {
		fc.store.Set(key, v, ttl)
	}
	return v
}

func decodeCached[T any](val interface{}) (T, bool) {
	var zero T
	switch v := val.(type) {
	case T:
		return v, true
	case json.RawMessage:
		var out T
		if err := json.Unmarshal(v, &out); err != nil {
			return zero, false
		}
		return out, true
	}
	return zero, false
}

func (fc *FreshnessCache) count(prefix constants.CachePrefix, hit bool) {
	if fc.metrics == nil {
		return
	}
	if hit {
		fc.metrics.CacheHitsTotal.WithLabelValues(string(prefix)).Inc()
		return
	}
	fc.metrics.CacheMissesTotal.WithLabelValues(string(prefix)).Inc()
}
