// Package cached wraps a graph.Provider with a redis read-through cache.
// Cache failures are logged and fall through to the underlying provider;
// redis being down never fails a read.
package cached

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/forensilink/backend/internal/graph"
	"github.com/forensilink/backend/internal/store"
	"github.com/forensilink/backend/pkg/logger"
)

const defaultTTL = 5 * time.Minute

type Graph struct {
	next  graph.Provider
	redis *redis.Client
	ttl   time.Duration
}

var _ graph.Provider = (*Graph)(nil)

func New(next graph.Provider, client *redis.Client) *Graph {
	return &Graph{
		next:  next,
		redis: client,
		ttl:   defaultTTL,
	}
}

func cacheKey(caseID string) string {
	return fmt.Sprintf("graph:case:%s", caseID)
}

func (g *Graph) Assemble(ctx context.Context, caseID string) (*store.Graph, error) {
	key := cacheKey(caseID)

	payload, err := g.redis.Get(ctx, key).Bytes()
	if err == nil {
		var cached store.Graph
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
		logger.Warn("Dropping undecodable graph cache entry", "key", key, "err", err)
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn("Graph cache read failed", "key", key, "err", err)
	}

	assembled, err := g.next.Assemble(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(assembled); err == nil {
		if err := g.redis.Set(ctx, key, payload, g.ttl).Err(); err != nil {
			logger.Warn("Graph cache write failed", "key", key, "err", err)
		}
	}

	return assembled, nil
}

func (g *Graph) Invalidate(ctx context.Context, caseID string) error {
	if err := g.redis.Del(ctx, cacheKey(caseID)).Err(); err != nil {
		logger.Warn("Graph cache invalidation failed", "case_id", caseID, "err", err)
		return err
	}
	return g.next.Invalidate(ctx, caseID)
}
