// Package snapshot persists serialized worlds.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/shamaton/msgpack/v3"
)

// Snapshot is a point-in-time capture of a world.
type Snapshot struct {
	ID        uuid.UUID
	Timestamp time.Time
	Codec     string // Name of the ecs codec that produced Data
	Entities  int    // Live entity count at capture time
	Data      []byte
	Schemas   map[string][]byte // JSON schema per component name, checked on restore
	Version   uint32
}

const CurrentVersion uint32 = 1

var ErrSnapshotNotFound = errors.New("snapshot not found")

// Storage provides persistence for world snapshots.
type Storage interface {
	// Store saves the snapshot, atomically replacing any existing snapshot. The previous snapshot
	// is kept as a backup where the backend supports it.
	Store(ctx context.Context, snapshot *Snapshot) error

	// Load retrieves the current snapshot. Returns ErrSnapshotNotFound if none exists.
	Load(ctx context.Context) (*Snapshot, error)
}

// StorageType names a Storage backend.
type StorageType uint8

const (
	StorageTypeUndefined StorageType = iota
	StorageTypeNop
	StorageTypeFile
	StorageTypeRedis
)

var storageTypeNames = [...]string{ //nolint:gochecknoglobals // enum table
	StorageTypeUndefined: "UNDEFINED",
	StorageTypeNop:       "NOP",
	StorageTypeFile:      "FILE",
	StorageTypeRedis:     "REDIS",
}

func (s StorageType) String() string {
	if int(s) < len(storageTypeNames) {
		return storageTypeNames[s]
	}
	return storageTypeNames[StorageTypeUndefined]
}

func (s StorageType) IsValid() bool {
	return s > StorageTypeUndefined && int(s) < len(storageTypeNames)
}

// ParseStorageType accepts the String form of a valid type in any case.
func ParseStorageType(name string) (StorageType, error) {
	for i, candidate := range storageTypeNames {
		if t := StorageType(i); t.IsValid() && strings.EqualFold(name, candidate) { //nolint:gosec // small index
			return t, nil
		}
	}
	return StorageTypeUndefined, eris.Errorf("invalid snapshot storage type: %q", name)
}

// -------------------------------------------------------------------------------------------------
// Envelope
// -------------------------------------------------------------------------------------------------

// envelope is the stored form of a Snapshot shared by the file and redis backends.
type envelope struct {
	ID        string            `msgpack:"id"`
	Timestamp int64             `msgpack:"ts"`
	Codec     string            `msgpack:"codec"`
	Entities  int               `msgpack:"entities"`
	Data      []byte            `msgpack:"data"`
	Schemas   map[string][]byte `msgpack:"schemas"`
	Version   uint32            `msgpack:"version"`
}

func marshal(s *Snapshot) ([]byte, error) {
	if s == nil {
		return nil, eris.New("snapshot is nil")
	}
	data, err := msgpack.Marshal(envelope{
		ID:        s.ID.String(),
		Timestamp: s.Timestamp.UnixNano(),
		Codec:     s.Codec,
		Entities:  s.Entities,
		Data:      s.Data,
		Schemas:   s.Schemas,
		Version:   s.Version,
	})
	if err != nil {
		return nil, eris.Wrap(err, "failed to marshal snapshot")
	}
	return data, nil
}

func unmarshal(data []byte) (s *Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = eris.Wrap(fmt.Errorf("panic: %v", r), "failed to unmarshal snapshot")
		}
	}()

	var env envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return nil, eris.Wrap(err, "failed to unmarshal snapshot")
	}
	id, err := uuid.Parse(env.ID)
	if err != nil {
		return nil, eris.Wrap(err, "invalid snapshot id")
	}
	return &Snapshot{
		ID:        id,
		Timestamp: time.Unix(0, env.Timestamp).UTC(),
		Codec:     env.Codec,
		Entities:  env.Entities,
		Data:      env.Data,
		Schemas:   env.Schemas,
		Version:   env.Version,
	}, nil
}
