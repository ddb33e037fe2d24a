package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"peakdash-service/internal/analytics/core/domain"
	"peakdash-service/internal/analytics/core/ports"
	"peakdash-service/internal/logging"
	"peakdash-service/internal/observability"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "peakdash:collection:"

// CachedReader keeps a short-lived JSON snapshot of each collection in redis.
// Cache failures are logged and never surface to the caller.
type CachedReader struct {
	next   ports.DocumentReaderPort
	client Client
	ttl    time.Duration
}

var _ ports.DocumentReaderPort = (*CachedReader)(nil)

func NewCachedReader(next ports.DocumentReaderPort, client Client, ttl time.Duration) *CachedReader {
	return &CachedReader{next: next, client: client, ttl: ttl}
}

func (r *CachedReader) ListDocuments(ctx context.Context, collection string) ([]domain.Document, error) {
	key := keyPrefix + collection
	log := logging.Ctx(ctx)

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var docs []domain.Document
		jerr := json.Unmarshal(raw, &docs)
		if jerr == nil {
			observability.SnapshotCacheHits.Inc()
			return docs, nil
		}
		log.Warn().Err(jerr).Str("key", key).Msg("discarding unreadable snapshot")
	case errors.Is(err, goredis.Nil):
	default:
		log.Warn().Err(err).Str("key", key).Msg("snapshot cache read failed")
	}
	observability.SnapshotCacheMisses.Inc()

	docs, err := r.next.ListDocuments(ctx, collection)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(docs)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("snapshot encode failed")
		return docs, nil
	}
	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("snapshot cache write failed")
	}

	return docs, nil
}
