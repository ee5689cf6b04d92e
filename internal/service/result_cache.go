package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"

	"saudade-match/internal/domain"
)

const (
	defaultResultCacheSize = 1024
	defaultResultCacheTTL  = 10 * time.Minute
)

// ResultCache guarda resultados de compatibilidad por par de perfiles normalizados y locale.
type ResultCache interface {
	Get(ctx context.Context, key string) (domain.SaudadeCompatibilityResult, bool)
	Set(ctx context.Context, key string, result domain.SaudadeCompatibilityResult)
}

// ResultCacheKey deriva una clave estable del par (a, b) ya normalizado, el locale y los pesos.
// El orden importa: shared elements siguen el orden del perfil a.
func ResultCacheKey(a, b domain.CulturalDepthProfile, locale domain.Locale, weights CompatibilityWeights) string {
	payload, err := json.Marshal(struct {
		A       domain.CulturalDepthProfile `json:"a"`
		B       domain.CulturalDepthProfile `json:"b"`
		Locale  domain.Locale               `json:"locale"`
		Weights CompatibilityWeights        `json:"weights"`
	}{a, b, locale, weights})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

type cachedResult struct {
	result   domain.SaudadeCompatibilityResult
	storedAt time.Time
}

type memoryResultCache struct {
	cache *lru.Cache[string, cachedResult]
	ttl   time.Duration
}

// NewMemoryResultCache crea un LRU en proceso con expiración por entrada.
func NewMemoryResultCache(size int, ttl time.Duration) ResultCache {
	if size <= 0 {
		size = defaultResultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultResultCacheTTL
	}
	cache, err := lru.New[string, cachedResult](size)
	if err != nil {
		return nopResultCache{}
	}
	return &memoryResultCache{cache: cache, ttl: ttl}
}

func (c *memoryResultCache) Get(_ context.Context, key string) (domain.SaudadeCompatibilityResult, bool) {
	if key == "" {
		return domain.SaudadeCompatibilityResult{}, false
	}
	entry, ok := c.cache.Get(key)
	if !ok {
		return domain.SaudadeCompatibilityResult{}, false
	}
	if time.Since(entry.storedAt) >= c.ttl {
		c.cache.Remove(key)
		return domain.SaudadeCompatibilityResult{}, false
	}
	return entry.result, true
}

func (c *memoryResultCache) Set(_ context.Context, key string, result domain.SaudadeCompatibilityResult) {
	if key == "" {
		return
	}
	c.cache.Add(key, cachedResult{result: result, storedAt: time.Now().UTC()})
}

type redisKVClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisResultCache struct {
	client redisKVClient
	ttl    time.Duration
	prefix string
}

// NewRedisResultCache comparte resultados entre réplicas. Con client nil devuelve nil.
func NewRedisResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = defaultResultCacheTTL
	}
	return &redisResultCache{
		client: client,
		ttl:    ttl,
		prefix: "compat:result:",
	}
}

func (c *redisResultCache) Get(ctx context.Context, key string) (domain.SaudadeCompatibilityResult, bool) {
	if strings.TrimSpace(key) == "" {
		return domain.SaudadeCompatibilityResult{}, false
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return domain.SaudadeCompatibilityResult{}, false
	}
	var result domain.SaudadeCompatibilityResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.SaudadeCompatibilityResult{}, false
	}
	return result, true
}

func (c *redisResultCache) Set(ctx context.Context, key string, result domain.SaudadeCompatibilityResult) {
	if strings.TrimSpace(key) == "" {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	_ = c.client.Set(ctx, c.prefix+key, payload, c.ttl).Err()
}

// tieredResultCache consulta primero el LRU local y luego Redis; un acierto remoto se copia al local.
type tieredResultCache struct {
	local  ResultCache
	remote ResultCache
}

// NewTieredResultCache combina ambos niveles. Si remote es nil devuelve local tal cual.
func NewTieredResultCache(local, remote ResultCache) ResultCache {
	if local == nil {
		local = nopResultCache{}
	}
	if remote == nil {
		return local
	}
	return &tieredResultCache{local: local, remote: remote}
}

func (c *tieredResultCache) Get(ctx context.Context, key string) (domain.SaudadeCompatibilityResult, bool) {
	if result, ok := c.local.Get(ctx, key); ok {
		return result, true
	}
	result, ok := c.remote.Get(ctx, key)
	if ok {
		c.local.Set(ctx, key, result)
	}
	return result, ok
}

func (c *tieredResultCache) Set(ctx context.Context, key string, result domain.SaudadeCompatibilityResult) {
	c.local.Set(ctx, key, result)
	c.remote.Set(ctx, key, result)
}

type nopResultCache struct{}

func (nopResultCache) Get(context.Context, string) (domain.SaudadeCompatibilityResult, bool) {
	return domain.SaudadeCompatibilityResult{}, false
}

func (nopResultCache) Set(context.Context, string, domain.SaudadeCompatibilityResult) {}
