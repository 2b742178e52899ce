package triggerlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/furfindr/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultRedisKey is the list that holds trigger entries.
const DefaultRedisKey = "furfindr:rule_triggers"

const redisOpTimeout = 2 * time.Second

// RedisRecorder keeps the trigger log in a Redis list so that every replica
// of the service appends to, and reports on, the same log. Entries are JSON
// encoded TriggerEntry values in append order.
//
// Recorder has no error channel, so Redis failures are logged and the
// affected trigger or query is dropped.
type RedisRecorder struct {
	client *redis.Client
	key    string
	now    func() time.Time
	logger *zap.Logger
}

// NewRedisRecorder creates a RedisRecorder writing to key. An empty key uses
// DefaultRedisKey.
func NewRedisRecorder(client *redis.Client, key string, logger *zap.Logger) *RedisRecorder {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisRecorder{
		client: client,
		key:    key,
		now:    time.Now,
		logger: logger.Named("trigger_log"),
	}
}

// Ping checks the Redis connection.
func (r *RedisRecorder) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Record implements Recorder.
func (r *RedisRecorder) Record(ruleID string) {
	r.RecordBatch([]string{ruleID})
}

// RecordBatch implements BatchRecorder with a single RPUSH, so one
// evaluation costs at most one round trip.
func (r *RedisRecorder) RecordBatch(ruleIDs []string) {
	if len(ruleIDs) == 0 {
		return
	}

	ts := r.now().UTC()
	values := make([]interface{}, 0, len(ruleIDs))
	for _, id := range ruleIDs {
		data, err := json.Marshal(domain.TriggerEntry{RuleID: id, Timestamp: ts})
		if err != nil {
			r.logger.Error("encode trigger entry", zap.String("rule_id", id), zap.Error(err))
			continue
		}
		values = append(values, data)
	}
	if len(values) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.RPush(ctx, r.key, values...).Err(); err != nil {
		r.logger.Warn("triggers not recorded", zap.Strings("rule_ids", ruleIDs), zap.Error(err))
	}
}

// Entries returns every stored entry in append order.
func (r *RedisRecorder) Entries(ctx context.Context) ([]domain.TriggerEntry, error) {
	raw, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read trigger log: %w", err)
	}

	entries := make([]domain.TriggerEntry, 0, len(raw))
	for _, item := range raw {
		var e domain.TriggerEntry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			r.logger.Warn("skipping malformed trigger entry", zap.Error(err))
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// StatsContext implements StatsReader.
func (r *RedisRecorder) StatsContext(ctx context.Context) (domain.TriggerStats, error) {
	entries, err := r.Entries(ctx)
	if err != nil {
		return domain.TriggerStats{}, err
	}
	return summarize(entries), nil
}

// Stats implements Recorder. A read failure is logged and reported as an
// empty log; use StatsContext to observe it.
func (r *RedisRecorder) Stats() domain.TriggerStats {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	stats, err := r.StatsContext(ctx)
	if err != nil {
		r.logger.Warn("trigger stats unavailable", zap.Error(err))
		return summarize(nil)
	}
	return stats
}

// Reset implements Recorder.
func (r *RedisRecorder) Reset() {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		r.logger.Warn("trigger log not reset", zap.Error(err))
	}
}
