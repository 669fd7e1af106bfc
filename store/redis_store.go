package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dnsvet/dnsvet/config"
	"github.com/dnsvet/dnsvet/log"
	"github.com/dnsvet/dnsvet/model"

	retry "github.com/avast/retry-go/v4"
	"github.com/go-redis/redis/v8"
)

const (
	recordKeyPrefix = "dnsvet:record:"
	indexKeyPrefix  = "dnsvet:index:"
)

// RedisStore keeps analysis records as JSON values, with a per-name sorted
// set indexing snapshots by analysis time
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the configured redis instance, retrying
// transient connection failures
func NewRedisStore(cfg *config.StoreConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Target,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	ctx := context.Background()

	err := retry.Do(
		func() error {
			return client.Ping(ctx).Err()
		},
		retry.Attempts(uint(cfg.ConnectionAttempts)),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(cfg.ConnectionCooldown.ToDuration()),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.PrefixedLog("redis_store").Warnf("can't connect to redis, retrying attempt %d: %s", n+1, err)
		}))
	if err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("can't connect to redis at '%s': %w", cfg.Target, err)
	}

	return &RedisStore{client: client}, nil
}

func newRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// FetchLatest implements `AnalysisStore`
func (r *RedisStore) FetchLatest(ctx context.Context, name model.DomainName) (*model.AnalysisRecord, error) {
	keys, err := r.client.ZRevRange(ctx, indexKey(name), 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("can't query analysis index for '%s': %w", name, err)
	}

	if len(keys) == 0 {
		return nil, ErrNotFound
	}

	data, err := r.client.Get(ctx, keys[0]).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("can't fetch analysis record for '%s': %w", name, err)
	}

	var record model.AnalysisRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("can't decode analysis record for '%s': %w", name, err)
	}

	return &record, nil
}

// Insert implements `AnalysisStore`
func (r *RedisStore) Insert(ctx context.Context, record *model.AnalysisRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("can't encode analysis record for '%s': %w", record.Name, err)
	}

	key := fmt.Sprintf("%s%s:%d", recordKeyPrefix, record.Name.Fqdn(), record.AnalyzedAt.UnixNano())

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, string(payload), 0)
	pipe.ZAdd(ctx, indexKey(record.Name), &redis.Z{
		Score:  float64(record.AnalyzedAt.Unix()),
		Member: key,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("can't persist analysis record for '%s': %w", record.Name, err)
	}

	return nil
}

// Close implements `AnalysisStore`
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func indexKey(name model.DomainName) string {
	return indexKeyPrefix + name.Fqdn()
}
