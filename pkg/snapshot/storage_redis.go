package snapshot

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// RedisStorage keeps the current snapshot and its predecessor under two keys of a namespace.
type RedisStorage struct {
	client    *redis.Client
	key       string
	backupKey string
	logger    zerolog.Logger
}

var _ Storage = (*RedisStorage)(nil)

// maxStoreAttempts bounds the retries of a Store whose watched key was modified concurrently.
const maxStoreAttempts = 5

type RedisStorageOptions struct {
	Addr      string
	Password  string
	DB        int
	Namespace string
}

// NewRedisStorage connects to redis and checks the connection.
func NewRedisStorage(ctx context.Context, opts RedisStorageOptions, logger zerolog.Logger) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, eris.Wrapf(err, "failed to connect to redis at %s", opts.Addr)
	}
	return NewRedisStorageFromClient(client, opts.Namespace, logger), nil
}

// NewRedisStorageFromClient wraps an existing client.
func NewRedisStorageFromClient(client *redis.Client, namespace string, logger zerolog.Logger) *RedisStorage {
	key := namespace + ":snapshot"
	return &RedisStorage{
		client:    client,
		key:       key,
		backupKey: key + ":backup",
		logger:    logger,
	}
}

func (r *RedisStorage) Store(ctx context.Context, snapshot *Snapshot) error {
	data, err := marshal(snapshot)
	if err != nil {
		return err
	}

	// The previous snapshot is read under WATCH. A write to the key before EXEC aborts the rotation.
	rotate := func(tx *redis.Tx) error {
		previous, err := tx.Get(ctx, r.key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return eris.Wrap(err, "failed to read previous snapshot")
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if previous != nil {
				pipe.Set(ctx, r.backupKey, previous, 0)
			}
			pipe.Set(ctx, r.key, data, 0)
			return nil
		})
		return err
	}

	for attempt := 1; ; attempt++ {
		err = r.client.Watch(ctx, rotate, r.key)
		if !errors.Is(err, redis.TxFailedErr) || attempt == maxStoreAttempts {
			break
		}
		r.logger.Debug().Str("key", r.key).Int("attempt", attempt).Msg("snapshot key changed during store, retrying")
	}
	if err != nil {
		return eris.Wrap(err, "failed to store snapshot")
	}

	r.logger.Debug().
		Str("key", r.key).
		Stringer("id", snapshot.ID).
		Int("bytes", len(data)).
		Msg("snapshot stored")
	return nil
}

func (r *RedisStorage) Load(ctx context.Context) (*Snapshot, error) {
	return r.load(ctx, r.key)
}

// LoadBackup retrieves the snapshot that was current before the last Store.
func (r *RedisStorage) LoadBackup(ctx context.Context) (*Snapshot, error) {
	return r.load(ctx, r.backupKey)
}

func (r *RedisStorage) load(ctx context.Context, key string) (*Snapshot, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, eris.Wrapf(ErrSnapshotNotFound, "no snapshot at key %s", key)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read key %s", key)
	}
	return unmarshal(data)
}

// Close closes the redis client.
func (r *RedisStorage) Close() error {
	return r.client.Close()
}
