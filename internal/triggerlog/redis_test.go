package triggerlog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisRecorder_RecordAndStats(t *testing.T) {
	_, client := setupRedis(t)
	r := NewRedisRecorder(client, "", zap.NewNop())

	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	for _, id := range []string{"a", "b", "b", "a", "c"} {
		r.Record(id)
	}

	stats := r.Stats()
	assert.Equal(t, 5, stats.TotalTriggers)
	assert.Equal(t, 3, stats.UniqueRules)
	assert.Equal(t, map[string]int{"a": 2, "b": 2, "c": 1}, stats.RuleFrequency)
	require.NotNil(t, stats.MostTriggered)
	assert.Equal(t, "a", stats.MostTriggered.RuleID)

	entries, err := r.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 5)
	assert.Equal(t, "a", entries[0].RuleID)
	assert.True(t, fixed.Equal(entries[0].Timestamp))
}

func TestRedisRecorder_SharedAcrossInstances(t *testing.T) {
	_, client := setupRedis(t)
	first := NewRedisRecorder(client, "shared", zap.NewNop())
	second := NewRedisRecorder(client, "shared", zap.NewNop())
	other := NewRedisRecorder(client, "other", zap.NewNop())

	first.Record("x")
	second.Record("x")

	assert.Equal(t, 2, first.Stats().TotalTriggers)
	assert.Equal(t, 2, second.Stats().TotalTriggers)
	assert.Equal(t, 0, other.Stats().TotalTriggers)
}

func TestRedisRecorder_Reset(t *testing.T) {
	mr, client := setupRedis(t)
	r := NewRedisRecorder(client, "", zap.NewNop())

	r.Record("a")
	assert.True(t, mr.Exists(DefaultRedisKey))

	r.Reset()
	assert.False(t, mr.Exists(DefaultRedisKey))

	stats := r.Stats()
	assert.Equal(t, 0, stats.TotalTriggers)
	assert.Nil(t, stats.MostTriggered)
	assert.NotNil(t, stats.RuleFrequency)
}

func TestRedisRecorder_SkipsMalformedEntries(t *testing.T) {
	mr, client := setupRedis(t)
	r := NewRedisRecorder(client, "", zap.NewNop())

	r.Record("a")
	_, err := mr.Push(DefaultRedisKey, "not json")
	require.NoError(t, err)
	r.Record("b")

	stats := r.Stats()
	assert.Equal(t, 2, stats.TotalTriggers)
}

func TestRedisRecorder_Unavailable(t *testing.T) {
	mr, client := setupRedis(t)
	r := NewRedisRecorder(client, "", zap.NewNop())
	mr.Close()

	assert.Error(t, r.Ping(context.Background()))
	assert.NotPanics(t, func() {
		r.Record("a")
		r.Reset()
	})
	stats := r.Stats()
	assert.Equal(t, 0, stats.TotalTriggers)

	_, err := r.StatsContext(context.Background())
	assert.Error(t, err)

	_, err = ReadStats(context.Background(), r)
	assert.Error(t, err)
}

func TestRedisRecorder_RecordBatchIsOneCommand(t *testing.T) {
	mr, client := setupRedis(t)
	r := NewRedisRecorder(client, "", zap.NewNop())

	r.Record("warm_up")
	before := mr.CommandCount()

	RecordAll(r, []string{"a", "b", "c", "d"})
	assert.Equal(t, before+1, mr.CommandCount())

	entries, err := r.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 5)
	assert.Equal(t, "a", entries[1].RuleID)
	assert.Equal(t, "d", entries[4].RuleID)

	before = mr.CommandCount()
	RecordAll(r, nil)
	assert.Equal(t, before, mr.CommandCount())
}

func TestRedisRecorder_StatsContext(t *testing.T) {
	_, client := setupRedis(t)
	r := NewRedisRecorder(client, "", zap.NewNop())

	for _, id := range []string{"b", "a", "a", "b"} {
		r.Record(id)
	}

	stats, err := r.StatsContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalTriggers)
	require.NotNil(t, stats.MostTriggered)
	assert.Equal(t, "b", stats.MostTriggered.RuleID)
}

func TestRedisRecorder_Ping(t *testing.T) {
	_, client := setupRedis(t)
	r := NewRedisRecorder(client, "", zap.NewNop())
	assert.NoError(t, r.Ping(context.Background()))
}
