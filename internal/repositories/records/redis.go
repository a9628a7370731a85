package records

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dexseed/internal/entities/dex"
	"github.com/KirkDiggler/dexseed/internal/errors"
	redisclient "github.com/KirkDiggler/dexseed/internal/redis"
)

const (
	recordKeyPrefix = "dex:record:"
	indexKey        = "dex:records"

	// Error messages
	errRecordNil     = "record cannot be nil"
	errNumberInvalid = "record number must be positive"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis record repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed record repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.Number <= 0 {
		return nil, errors.InvalidArgument(errNumberInvalid)
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal record %d", input.Record.Number)
	}

	number := input.Record.Number
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, GetKey(number), data, 0)
	pipe.ZAdd(ctx, indexKey, redis.Z{Score: float64(number), Member: strconv.Itoa(number)})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save record %d", number)
	}

	return &SaveOutput{Number: number}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Number <= 0 {
		return nil, errors.InvalidArgument(errNumberInvalid)
	}

	result, err := r.client.Get(ctx, GetKey(input.Number)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("record %d not found", input.Number)
		}
		return nil, errors.Wrapf(err, "failed to get record %d", input.Number)
	}

	var record dex.Record
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss,
			fmt.Sprintf("failed to unmarshal record %d", input.Number))
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	members, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read record index")
	}

	slog.DebugContext(ctx, "listing records from index",
		"index_key", indexKey,
		"count", len(members))

	records := make([]*dex.Record, 0, len(members))
	for _, member := range members {
		number, err := strconv.Atoi(member)
		if err != nil {
			slog.WarnContext(ctx, "skipping malformed index member",
				"member", member)
			continue
		}

		out, err := r.Get(ctx, GetInput{Number: number})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "record missing, cleaning up index",
					"number", number)
				r.client.ZRem(ctx, indexKey, member)
				continue
			}
			return nil, err
		}
		records = append(records, out.Record)
	}

	return &ListOutput{Records: records}, nil
}

func (r *redisRepository) Prune(ctx context.Context, input PruneInput) (*PruneOutput, error) {
	output := &PruneOutput{}

	iter := r.client.Scan(ctx, 0, recordKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		output.Checked++

		data, err := r.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return output, errors.Wrapf(err, "failed to read %s", key)
		}

		if reason := corruption(key, data); reason != "" {
			slog.WarnContext(ctx, "corrupted record",
				"key", key,
				"reason", reason)
			output.Corrupted = append(output.Corrupted, key)
		}
	}
	if err := iter.Err(); err != nil {
		return output, errors.Wrap(err, "failed to scan record keys")
	}

	if input.DryRun {
		return output, nil
	}

	for _, key := range output.Corrupted {
		pipe := r.client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.ZRem(ctx, indexKey, key[len(recordKeyPrefix):])
		if _, err := pipe.Exec(ctx); err != nil {
			return output, errors.Wrapf(err, "failed to delete %s", key)
		}
		output.Removed++
	}

	return output, nil
}

// corruption returns why data stored under key is not a usable record, or
// "" when it is
func corruption(key, data string) string {
	var record dex.Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return "invalid json"
	}
	if record.Number <= 0 {
		return "missing record number"
	}
	if GetKey(record.Number) != key {
		return fmt.Sprintf("stored under the wrong key for record %d", record.Number)
	}
	return ""
}

// GetKey returns the Redis key for a record number
// Exposed for testing purposes
func GetKey(number int) string {
	return fmt.Sprintf("%s%d", recordKeyPrefix, number)
}

// IndexKey returns the sorted-set key listing every stored number
func IndexKey() string {
	return indexKey
}
