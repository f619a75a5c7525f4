package identity

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

const (
	// CacheTTL: сколько живёт определённый по токену пользователь.
	CacheTTL = 50 * time.Minute

	cachePrefix = "AUTH_"
)

// Resolver определяет пользователя по токену с кэшированием и пишет аудит-лог.
type Resolver struct {
	source Source
	cache  Cache
	clock  clock.Clock
	logger *zap.SugaredLogger
}

// NewResolver собирает резолвер. cache == nil: собственный TTLCache, clk == nil: системные часы.
func NewResolver(source Source, cache Cache, clk clock.Clock, logger *zap.SugaredLogger) *Resolver {
	if clk == nil {
		clk = clock.New()
	}
	if cache == nil {
		cache = NewTTLCache(clk)
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Resolver{source: source, cache: cache, clock: clk, logger: logger}
}

// Resolve возвращает пользователя для credential; operation попадает только в аудит-лог.
func (r *Resolver) Resolve(ctx context.Context, credential, operation string) (Identity, error) {
	if credential == "" {
		return Identity{}, &ResolutionError{Err: ErrNoCredential}
	}

	key := cacheKey(credential)
	if id, ok := r.cache.Get(key); ok {
		r.audit(id, operation)
		return id, nil
	}

	id, err := r.source.Identify(ctx, credential)
	if err != nil {
		return Identity{}, err
	}
	r.cache.Set(key, id, CacheTTL)

	r.audit(id, operation)
	return id, nil
}

func (r *Resolver) audit(id Identity, operation string) {
	r.logger.Infof("%s has %s at %s", id.Name, operation, r.clock.Now().Format(time.RFC3339))
}

// cacheKey не хранит сам токен в памяти процесса, только его хеш.
func cacheKey(credential string) string {
	sum := blake2b.Sum256([]byte(credential))
	return cachePrefix + hex.EncodeToString(sum[:])
}
