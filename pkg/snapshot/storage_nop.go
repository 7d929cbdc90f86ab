package snapshot

import (
	"context"

	"github.com/rotisserie/eris"
)

// NopStorage accepts every snapshot and keeps none, so Load always reports ErrSnapshotNotFound.
type NopStorage struct{}

var _ Storage = NopStorage{}

func NewNopStorage() NopStorage {
	return NopStorage{}
}

func (NopStorage) Store(context.Context, *Snapshot) error {
	return nil
}

func (NopStorage) Load(context.Context) (*Snapshot, error) {
	return nil, eris.Wrap(ErrSnapshotNotFound, "nop storage keeps no snapshots")
}
