package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"doctor-verification/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// RedisCountKeyPrefix prefixes the per-status doctor profile counters
const RedisCountKeyPrefix = "verification:count:"

// RedisCountEpochKey is bumped on every committed change. A rebuild only stores
// its counts when the epoch it read before loading is still current.
const RedisCountEpochKey = RedisCountKeyPrefix + "epoch"

const (
	statsRedisTimeout = 2 * time.Second
	rebuildFlightKey  = "rebuild"
)

var errCountsInvalidated = errors.New("verification counts invalidated during rebuild")

// invalidateScript bumps the epoch and drops every counter in one step
var invalidateScript = redis.NewScript(`
	redis.call('INCR', KEYS[1])
	redis.call('DEL', unpack(KEYS, 2))
	return 1
`)

// CountLoader returns the authoritative per-status counts from the database
type CountLoader func(ctx context.Context) (map[entity.VerificationStatus]int64, error)

// VerificationStatsService caches doctor profile counts per verification status
// in Redis for the admin dashboard. PostgreSQL stays the source of truth.
type VerificationStatsService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	loader      CountLoader
	ttl         time.Duration
	group       singleflight.Group
}

func NewVerificationStatsService(redisClient *redis.Client, log *logrus.Logger, loader CountLoader, ttl time.Duration) *VerificationStatsService {
	return &VerificationStatsService{
		redisClient: redisClient,
		log:         log,
		loader:      loader,
		ttl:         ttl,
	}
}

func countKey(status entity.VerificationStatus) string {
	return RedisCountKeyPrefix + string(status)
}

// SyncFromDatabase overwrites every counter with the database values.
// Called on startup and whenever a read finds the cache cold. When a change is
// committed while the counts load, the loaded counts are returned but not cached.
func (s *VerificationStatsService) SyncFromDatabase(ctx context.Context) (map[entity.VerificationStatus]int64, error) {
	epoch, epochErr := s.redisClient.Get(ctx, RedisCountEpochKey).Result()
	if errors.Is(epochErr, redis.Nil) {
		epoch, epochErr = "", nil
	}

	counts, err := s.loader(ctx)
	if err != nil {
		return nil, fmt.Errorf("load status counts: %w", err)
	}
	if epochErr != nil {
		return counts, fmt.Errorf("read counts epoch: %w", epochErr)
	}

	err = s.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, RedisCountEpochKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != epoch {
			return errCountsInvalidated
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, status := range entity.VerificationStatuses {
				pipe.Set(ctx, countKey(status), counts[status], s.ttl)
			}
			return nil
		})
		return err
	}, RedisCountEpochKey)

	switch {
	case errors.Is(err, errCountsInvalidated), errors.Is(err, redis.TxFailedErr):
		s.log.Debugf("Discarded verification counts rebuild, a change was committed meanwhile")
		return counts, nil
	case err != nil:
		return counts, fmt.Errorf("store status counts: %w", err)
	}

	s.log.Debugf("Synced verification counts: %v", counts)
	return counts, nil
}

// GetCounts serves counts from Redis, rebuilding once when any counter is missing.
// Concurrent misses share a single rebuild. When Redis is unavailable the
// database counts are returned directly.
func (s *VerificationStatsService) GetCounts(ctx context.Context) (map[entity.VerificationStatus]int64, error) {
	keys := make([]string, 0, len(entity.VerificationStatuses))
	for _, status := range entity.VerificationStatuses {
		keys = append(keys, countKey(status))
	}

	values, err := s.redisClient.MGet(ctx, keys...).Result()
	if err == nil {
		if counts, ok := parseCounts(values); ok {
			return counts, nil
		}
	} else {
		s.log.Warnf("Failed to read verification counts from Redis: %+v", err)
	}

	result, err, _ := s.group.Do(rebuildFlightKey, func() (interface{}, error) {
		counts, syncErr := s.SyncFromDatabase(ctx)
		if syncErr != nil && counts == nil {
			return nil, syncErr
		}
		if syncErr != nil {
			s.log.Warnf("Failed to cache verification counts: %+v", syncErr)
		}
		return counts, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(map[entity.VerificationStatus]int64), nil
}

// RecordCreated invalidates the counts after a profile was created
func (s *VerificationStatsService) RecordCreated(ctx context.Context, status entity.VerificationStatus) {
	if s == nil {
		return
	}
	s.invalidate(ctx, "created "+string(status))
}

// RecordTransition invalidates the counts after a committed status change.
// Counters are never adjusted in place: a rebuild running concurrently may
// already include the change, and adjusting on top of it would count it twice.
func (s *VerificationStatsService) RecordTransition(ctx context.Context, from, to entity.VerificationStatus) {
	if s == nil || from == to {
		return
	}
	s.invalidate(ctx, string(from)+" -> "+string(to))
}

// invalidate bumps the epoch and drops every counter so the next read rebuilds from the database
func (s *VerificationStatsService) invalidate(ctx context.Context, change string) {
	ctx, cancel := context.WithTimeout(ctx, statsRedisTimeout)
	defer cancel()

	keys := make([]string, 0, len(entity.VerificationStatuses)+1)
	keys = append(keys, RedisCountEpochKey)
	for _, status := range entity.VerificationStatuses {
		keys = append(keys, countKey(status))
	}
	if err := invalidateScript.Run(ctx, s.redisClient, keys).Err(); err != nil {
		s.log.Warnf("Failed to invalidate verification counts after %s: %+v", change, err)
	}
}

func parseCounts(values []interface{}) (map[entity.VerificationStatus]int64, bool) {
	counts := make(map[entity.VerificationStatus]int64, len(entity.VerificationStatuses))
	for i, status := range entity.VerificationStatuses {
		raw, ok := values[i].(string)
		if !ok {
			return nil, false
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false
		}
		counts[status] = n
	}
	return counts, true
}
