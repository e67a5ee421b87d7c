package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"doctor-verification/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StatsServiceSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	calls  atomic.Int32
	counts map[entity.VerificationStatus]int64
	svc    *VerificationStatsService
}

func (s *StatsServiceSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.calls.Store(0)
	s.counts = map[entity.VerificationStatus]int64{
		entity.VerificationStatusPending:  3,
		entity.VerificationStatusApproved: 5,
	}
	loader := func(ctx context.Context) (map[entity.VerificationStatus]int64, error) {
		s.calls.Add(1)
		out := make(map[entity.VerificationStatus]int64, len(s.counts))
		for k, v := range s.counts {
			out[k] = v
		}
		return out, nil
	}
	s.svc = NewVerificationStatsService(s.client, quietLogger(), loader, time.Minute)
}

func (s *StatsServiceSuite) TearDownTest() {
	s.client.Close()
}

func TestStatsServiceSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceSuite))
}

func (s *StatsServiceSuite) TestSyncWritesEveryStatusWithTTL() {
	_, err := s.svc.SyncFromDatabase(context.Background())
	s.Require().NoError(err)

	pending, err := s.mr.Get(RedisCountKeyPrefix + "pending")
	s.Require().NoError(err)
	s.Equal("3", pending)

	rejected, err := s.mr.Get(RedisCountKeyPrefix + "rejected")
	s.Require().NoError(err)
	s.Equal("0", rejected)

	s.Equal(time.Minute, s.mr.TTL(RedisCountKeyPrefix+"approved"))
}

func (s *StatsServiceSuite) TestGetCountsRebuildsOnMissOnly() {
	ctx := context.Background()

	counts, err := s.svc.GetCounts(ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), counts[entity.VerificationStatusPending])
	s.Equal(int64(0), counts[entity.VerificationStatusRejected])
	s.Equal(int32(1), s.calls.Load())

	_, err = s.svc.GetCounts(ctx)
	s.Require().NoError(err)
	s.Equal(int32(1), s.calls.Load(), "warm cache must not hit the database")

	s.mr.FastForward(2 * time.Minute)
	_, err = s.svc.GetCounts(ctx)
	s.Require().NoError(err)
	s.Equal(int32(2), s.calls.Load())
}

func (s *StatsServiceSuite) TestRecordTransitionInvalidates() {
	ctx := context.Background()
	_, err := s.svc.SyncFromDatabase(ctx)
	s.Require().NoError(err)

	s.counts[entity.VerificationStatusPending] = 2
	s.counts[entity.VerificationStatusRejected] = 1
	s.svc.RecordTransition(ctx, entity.VerificationStatusPending, entity.VerificationStatusRejected)

	s.False(s.mr.Exists(RedisCountKeyPrefix + "pending"))
	s.False(s.mr.Exists(RedisCountKeyPrefix + "rejected"))

	counts, err := s.svc.GetCounts(ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), counts[entity.VerificationStatusPending])
	s.Equal(int64(1), counts[entity.VerificationStatusRejected])
	s.Equal(int64(5), counts[entity.VerificationStatusApproved])
	s.Equal(int32(2), s.calls.Load())
}

func (s *StatsServiceSuite) TestRecordTransitionSameStatusIsNoop() {
	ctx := context.Background()
	_, err := s.svc.SyncFromDatabase(ctx)
	s.Require().NoError(err)

	s.svc.RecordTransition(ctx, entity.VerificationStatusPending, entity.VerificationStatusPending)

	s.True(s.mr.Exists(RedisCountKeyPrefix + "pending"))
	s.False(s.mr.Exists(RedisCountEpochKey))
}

// A rebuild that already saw the new row must not be adjusted a second time.
func (s *StatsServiceSuite) TestRecordCreatedAfterRebuildDoesNotDoubleCount() {
	ctx := context.Background()

	s.counts[entity.VerificationStatusPending] = 4
	_, err := s.svc.SyncFromDatabase(ctx)
	s.Require().NoError(err)
	s.svc.RecordCreated(ctx, entity.VerificationStatusPending)

	counts, err := s.svc.GetCounts(ctx)
	s.Require().NoError(err)
	s.Equal(int64(4), counts[entity.VerificationStatusPending])
}

// A change committed while the counts load makes the loaded snapshot stale; it is not cached.
func TestStatsService_RebuildDiscardedWhenChangeCommitsDuringLoad(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	var (
		svc   *VerificationStatsService
		calls int
	)
	svc = NewVerificationStatsService(client, quietLogger(), func(ctx context.Context) (map[entity.VerificationStatus]int64, error) {
		calls++
		if calls == 1 {
			svc.RecordTransition(ctx, entity.VerificationStatusPending, entity.VerificationStatusApproved)
			return map[entity.VerificationStatus]int64{entity.VerificationStatusPending: 1}, nil
		}
		return map[entity.VerificationStatus]int64{entity.VerificationStatusApproved: 1}, nil
	}, time.Minute)

	counts, err := svc.GetCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[entity.VerificationStatusPending])
	assert.False(t, mr.Exists(RedisCountKeyPrefix+"pending"), "stale snapshot must not be cached")

	counts, err = svc.GetCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts[entity.VerificationStatusPending])
	assert.Equal(t, int64(1), counts[entity.VerificationStatusApproved])

	approved, err := mr.Get(RedisCountKeyPrefix + "approved")
	require.NoError(t, err)
	assert.Equal(t, "1", approved)
}

func (s *StatsServiceSuite) TestGetCountsFallsBackWhenRedisDown() {
	s.mr.Close()

	counts, err := s.svc.GetCounts(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(5), counts[entity.VerificationStatusApproved])
}

func TestStatsService_ConcurrentMissesShareRebuild(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(ctx context.Context) (map[entity.VerificationStatus]int64, error) {
		calls.Add(1)
		<-release
		return map[entity.VerificationStatus]int64{entity.VerificationStatusPending: 1}, nil
	}
	svc := NewVerificationStatsService(client, quietLogger(), loader, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counts, err := svc.GetCounts(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, int64(1), counts[entity.VerificationStatusPending])
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(2))
}

func TestStatsService_LoaderError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	boom := errors.New("db down")
	svc := NewVerificationStatsService(client, quietLogger(), func(ctx context.Context) (map[entity.VerificationStatus]int64, error) {
		return nil, boom
	}, time.Minute)

	_, err := svc.GetCounts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
