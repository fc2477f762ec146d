package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
)

const (
	redisKeyPrefix  = "rpm:roster:"
	maxApplyRetries = 5
)

var ErrTooManyRetries = errors.New("roster entry kept changing during update")

// RedisCache shares the roster between server processes. Apply runs as an
// optimistic WATCH/MULTI transaction on the patient's key.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache stores entries with the given expiry; zero keeps them forever.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func key(patientID string) string {
	return redisKeyPrefix + patientID
}

func decode(raw []byte) (Entry, error) {
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return Entry{}, fmt.Errorf("decode roster entry: %w", err)
	}
	return e, nil
}

func (c *RedisCache) Apply(ctx context.Context, patientName string, r *models.VitalReading) (Entry, error) {
	k := key(r.PatientID)
	var merged Entry

	txf := func(tx *redis.Tx) error {
		current := Entry{}
		raw, err := tx.Get(ctx, k).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			if current, err = decode(raw); err != nil {
				return err
			}
		}

		merged, _ = Merge(current, patientName, r)
		payload, err := json.Marshal(merged)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, payload, c.ttl)
			return nil
		})
		return err
	}

	for range maxApplyRetries {
		err := c.client.Watch(ctx, txf, k)
		if err == nil {
			return merged, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			common.GetCategoryLogger(common.LoggerNameRosterCache, common.LoggerCategoryRosterSnapshot).
				Debug("Roster entry changed during update, retrying", zap.String("patient_id", r.PatientID))
			continue
		}
		return Entry{}, err
	}
	return Entry{}, ErrTooManyRetries
}

func (c *RedisCache) Get(ctx context.Context, patientID string) (Entry, bool, error) {
	raw, err := c.client.Get(ctx, key(patientID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	e, err := decode(raw)
	if err != nil {
		return Entry{}, false, err
	}
	return e, true, nil
}

func (c *RedisCache) Delete(ctx context.Context, patientID string) error {
	return c.client.Del(ctx, key(patientID)).Err()
}
