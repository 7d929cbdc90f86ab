package snapshot

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/raven-engine/raven/pkg/ecs"
	"github.com/rotisserie/eris"
)

// Save serializes w with codec and stores the result.
func Save(ctx context.Context, storage Storage, w *ecs.World, codec ecs.Codec) (*Snapshot, error) {
	data, err := w.Serialize(codec)
	if err != nil {
		return nil, eris.Wrap(err, "failed to serialize world")
	}

	snap := &Snapshot{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Codec:     codec.Name(),
		Entities:  w.Len(),
		Data:      data,
		Schemas:   w.ComponentSchemas(),
		Version:   CurrentVersion,
	}
	if err := storage.Store(ctx, snap); err != nil {
		return nil, eris.Wrap(err, "failed to store snapshot")
	}
	return snap, nil
}

// Restore loads the current snapshot into w, which must be empty and have every component type
// of the snapshot registered with an unchanged layout.
func Restore(ctx context.Context, storage Storage, w *ecs.World) (*Snapshot, error) {
	snap, err := storage.Load(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "failed to load snapshot")
	}
	if snap.Version != CurrentVersion {
		return nil, eris.Errorf("unsupported snapshot version %d (want %d)", snap.Version, CurrentVersion)
	}

	if err := w.ValidateSchemas(snap.Schemas); err != nil {
		return nil, eris.Wrapf(err, "snapshot %s", snap.ID)
	}

	codec, err := ecs.CodecByName(snap.Codec)
	if err != nil {
		return nil, eris.Wrapf(err, "snapshot %s", snap.ID)
	}
	if err := w.Deserialize(codec, snap.Data); err != nil {
		return nil, eris.Wrapf(err, "failed to restore snapshot %s", snap.ID)
	}
	return snap, nil
}
