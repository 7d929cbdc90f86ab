package snapshot

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/raven-engine/raven/pkg/ecs"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Options selects and configures a snapshot backend.
type Options struct {
	// Storage is the backend type ("NOP", "FILE", "REDIS").
	Storage string `env:"RAVEN_SNAPSHOT_STORAGE" envDefault:"NOP"`

	// Codec is the ecs codec used to serialize worlds ("json", "yaml", "binary").
	Codec string `env:"RAVEN_SNAPSHOT_CODEC" envDefault:"binary"`

	// Dir is the directory of the FILE backend.
	Dir string `env:"RAVEN_SNAPSHOT_DIR" envDefault:".raven"`

	// Namespace prefixes the keys of the REDIS backend.
	Namespace string `env:"RAVEN_SNAPSHOT_NAMESPACE" envDefault:"raven"`

	RedisAddr     string `env:"RAVEN_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"RAVEN_REDIS_PASSWORD"`
	RedisDB       int    `env:"RAVEN_REDIS_DB" envDefault:"0"`
}

// LoadOptions reads Options from the environment.
func LoadOptions() (Options, error) {
	opts := Options{}
	if err := env.Parse(&opts); err != nil {
		return opts, eris.Wrap(err, "failed to parse snapshot config")
	}
	if err := opts.Validate(); err != nil {
		return opts, eris.Wrap(err, "failed to validate snapshot config")
	}
	return opts, nil
}

func (opts *Options) Validate() error {
	storageType, err := ParseStorageType(opts.Storage)
	if err != nil {
		return err
	}
	if _, err := ecs.CodecByName(opts.Codec); err != nil {
		return eris.Wrap(err, "invalid snapshot codec")
	}
	switch storageType {
	case StorageTypeFile:
		if opts.Dir == "" {
			return eris.New("snapshot directory cannot be empty for FILE storage")
		}
	case StorageTypeRedis:
		if opts.RedisAddr == "" {
			return eris.New("redis address cannot be empty for REDIS storage")
		}
		if opts.Namespace == "" {
			return eris.New("namespace cannot be empty for REDIS storage")
		}
		if opts.RedisDB < 0 {
			return eris.Errorf("invalid redis db %d", opts.RedisDB)
		}
	case StorageTypeNop, StorageTypeUndefined:
	}
	return nil
}

// NewStorage builds the backend selected by opts.
func NewStorage(ctx context.Context, opts Options, logger zerolog.Logger) (Storage, error) {
	if err := opts.Validate(); err != nil {
		return nil, eris.Wrap(err, "invalid options passed")
	}
	storageType, _ := ParseStorageType(opts.Storage)
	logger = logger.With().Str("component", "snapshot").Str("storage", storageType.String()).Logger()

	switch storageType {
	case StorageTypeFile:
		return NewFileStorage(opts.Dir, logger)
	case StorageTypeRedis:
		return NewRedisStorage(ctx, RedisStorageOptions{
			Addr:      opts.RedisAddr,
			Password:  opts.RedisPassword,
			DB:        opts.RedisDB,
			Namespace: opts.Namespace,
		}, logger)
	case StorageTypeNop:
		return NewNopStorage(), nil
	case StorageTypeUndefined:
	}
	return nil, eris.Errorf("unsupported storage type %s", storageType)
}
