package pricing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/julianstephens/habitleaf/internal/billing"
	"github.com/julianstephens/habitleaf/internal/constants"
	"github.com/julianstephens/habitleaf/internal/i18n"
)

// KV is the persisted key-value store the resolver caches into. Absent keys
// are reported through the bool, not an error.
type KV interface {
	GetValue(key string) (string, bool, error)
	SetValue(key, value string) error
	DeleteValue(key string) error
}

// Resolver decides which plan list a region gets, with a time-bounded cache
// in front of the live store lookup. It never returns an error to its
// caller: every failure path degrades to the deterministic fallback table
// and is only logged.
type Resolver struct {
	kv     KV
	lookup billing.PriceLookup
	logger *log.Logger
	now    func() time.Time
	lang   string
	ttl    time.Duration
}

type ResolverOption func(*Resolver)

// WithResolverClock overrides the wall clock, mainly for tests.
func WithResolverClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) { r.now = now }
}

// WithLanguage sets the language used for plan display strings.
func WithLanguage(lang string) ResolverOption {
	return func(r *Resolver) { r.lang = lang }
}

// WithTTL overrides the cache expiry window.
func WithTTL(ttl time.Duration) ResolverOption {
	return func(r *Resolver) { r.ttl = ttl }
}

// NewResolver wires a resolver from its collaborators. lookup may be nil
// when no billing backend is configured; fetches then always use the
// fallback table.
func NewResolver(kv KV, lookup billing.PriceLookup, logger *log.Logger, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		kv:     kv,
		lookup: lookup,
		logger: logger,
		now:    time.Now,
		lang:   i18n.Default,
		ttl:    constants.PriceCacheTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// cachedPrices is the persisted cache payload.
type cachedPrices struct {
	Region Region        `json:"region"`
	Plans  []PricingPlan `json:"plans"`
}

// FetchPrices resolves the plan list for a region: cache when fresh, live
// store lookup when possible, fallback table otherwise.
func (r *Resolver) FetchPrices(ctx context.Context, region Region) []PricingPlan {
	if plans, ok := r.cached(region); ok {
		r.logger.Debug("using cached prices", "region", region)
		return plans
	}

	plans := FallbackPlans(region, r.lang)

	if r.lookup != nil {
		storePrices, err := r.lookup.Prices(ctx, SKUs())
		switch {
		case err != nil:
			r.logger.Warn("store price lookup failed, using fallback prices", "region", region, "error", err)
		case len(storePrices) == 0:
			r.logger.Warn("store price lookup returned no prices, using fallback prices", "region", region)
		default:
			r.logger.Debug("fetched store prices", "region", region, "count", len(storePrices))
			plans = MergeStorePrices(plans, storePrices)
		}
	} else {
		r.logger.Debug("no billing backend configured, using fallback prices", "region", region)
	}

	// A failed lookup still advances the cache timestamp so the next 24h of
	// callers don't retry a dead store.
	if err := r.persist(region, plans); err != nil {
		r.logger.Error("failed to cache prices", "region", region, "error", err)
	}

	return plans
}

// ClearCache removes the persisted cache entry unconditionally. Idempotent.
func (r *Resolver) ClearCache() error {
	if err := r.kv.DeleteValue(constants.PriceCacheKey); err != nil {
		return err
	}
	return r.kv.DeleteValue(constants.PriceCacheTimestampKey)
}

// cached returns the persisted plan list when it exists, matches the region,
// and is younger than the TTL. Expired entries are removed on read. Storage
// and decoding failures count as misses.
func (r *Resolver) cached(region Region) ([]PricingPlan, bool) {
	raw, ok, err := r.kv.GetValue(constants.PriceCacheKey)
	if err != nil {
		r.logger.Warn("failed to read price cache", "error", err)
		return nil, false
	}
	stamp, stampOK, err := r.kv.GetValue(constants.PriceCacheTimestampKey)
	if err != nil {
		r.logger.Warn("failed to read price cache timestamp", "error", err)
		return nil, false
	}
	if !ok || !stampOK {
		return nil, false
	}

	cachedAt, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		r.logger.Warn("malformed price cache timestamp", "timestamp", stamp)
		return nil, false
	}
	if r.now().Sub(cachedAt) >= r.ttl {
		if err := r.ClearCache(); err != nil {
			r.logger.Warn("failed to drop expired price cache", "error", err)
		}
		return nil, false
	}

	var cached cachedPrices
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		r.logger.Warn("malformed price cache payload", "error", err)
		return nil, false
	}
	if cached.Region != region {
		return nil, false
	}

	return cached.Plans, true
}

func (r *Resolver) persist(region Region, plans []PricingPlan) error {
	payload, err := json.Marshal(cachedPrices{Region: region, Plans: plans})
	if err != nil {
		return err
	}
	if err := r.kv.SetValue(constants.PriceCacheKey, string(payload)); err != nil {
		return err
	}
	return r.kv.SetValue(constants.PriceCacheTimestampKey, r.now().Format(time.RFC3339))
}
