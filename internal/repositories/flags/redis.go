package flags

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

const (
	booleanField = "boolean:"
	valueField   = "value:"

	// maxConcurrentReads bounds GetMany fan-out
	maxConcurrentReads = 8
)

// redisRepo stores one hash per entity: boolean:<key> fields hold "1",
// value:<key> fields hold JSON.
type redisRepo struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis creates a Redis-backed flag repository with keys "<prefix>:<entity id>"
func NewRedis(client redis.UniversalClient, prefix string) Repository {
	if prefix == "" {
		prefix = "flags"
	}
	return &redisRepo{client: client, prefix: prefix}
}

func (r *redisRepo) key(entityID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, entityID)
}

func (r *redisRepo) Get(ctx context.Context, entityID string) (*Record, error) {
	if entityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	fields, err := r.client.HGetAll(ctx, r.key(entityID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read flags for '%s'", entityID)
	}
	if len(fields) == 0 {
		return nil, errors.NotFoundf("flags for '%s' not found", entityID).
			WithMeta("entity_id", entityID)
	}

	return decodeRecord(entityID, fields)
}

func (r *redisRepo) GetMany(ctx context.Context, entityIDs []string) (map[string]*Record, error) {
	var (
		mu  sync.Mutex
		out = make(map[string]*Record, len(entityIDs))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for _, id := range entityIDs {
		g.Go(func() error {
			record, err := r.Get(ctx, id)
			if errors.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			out[id] = record
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *redisRepo) SetBoolean(ctx context.Context, entityID, key string, on bool) error {
	if entityID == "" || key == "" {
		return errors.InvalidArgument("entity ID and key are required")
	}

	field := booleanField + key
	var err error
	if on {
		err = r.client.HSet(ctx, r.key(entityID), field, "1").Err()
	} else {
		err = r.client.HDel(ctx, r.key(entityID), field).Err()
	}
	if err != nil {
		return errors.Wrapf(err, "failed to write boolean flag %q", key).
			WithMeta("entity_id", entityID)
	}
	return nil
}

func (r *redisRepo) SetValues(ctx context.Context, entityID string, values map[string]any) error {
	if entityID == "" {
		return errors.InvalidArgument("entity ID is required")
	}

	var set []any
	var remove []string
	for _, key := range slices.Sorted(maps.Keys(values)) {
		value := values[key]
		if value == nil {
			remove = append(remove, valueField+key)
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, fmt.Sprintf("flag %q is not serializable", key))
		}
		set = append(set, valueField+key, string(encoded))
	}

	pipe := r.client.Pipeline()
	if len(set) > 0 {
		pipe.HSet(ctx, r.key(entityID), set...)
	}
	if len(remove) > 0 {
		pipe.HDel(ctx, r.key(entityID), remove...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to write flags for '%s'", entityID)
	}
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, entityID string) error {
	if err := r.client.Del(ctx, r.key(entityID)).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete flags for '%s'", entityID)
	}
	return nil
}

func decodeRecord(entityID string, fields map[string]string) (*Record, error) {
	record := &Record{EntityID: entityID, Boolean: map[string]bool{}, Values: map[string]any{}}
	for field, raw := range fields {
		switch {
		case strings.HasPrefix(field, booleanField):
			record.Boolean[strings.TrimPrefix(field, booleanField)] = true
		case strings.HasPrefix(field, valueField):
			var value any
			if err := json.Unmarshal([]byte(raw), &value); err != nil {
				return nil, errors.Wrapf(err, "corrupt flag %q for '%s'", field, entityID)
			}
			record.Values[strings.TrimPrefix(field, valueField)] = value
		}
	}
	return record, nil
}
