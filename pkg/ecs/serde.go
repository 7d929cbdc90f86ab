package ecs

import (
	"github.com/rotisserie/eris"
)

// TaggedComponent is one encoded component instance together with the name of its type.
type TaggedComponent struct {
	Type  string
	Value []byte
}

// EntityRecord is the serialized form of one live entity.
type EntityRecord struct {
	ID         EntityID
	Version    Version
	Components []TaggedComponent
}

// Records encodes every live entity in ascending id order. Components are grouped by type in
// sorted name order and keep their attach order within a type.
func (w *World) Records(codec Codec) ([]EntityRecord, error) {
	entities := w.Entities()
	records := make([]EntityRecord, len(entities))
	for i, e := range entities {
		record := EntityRecord{ID: e.ID, Version: e.Version}
		for _, name := range w.poolNames {
			tagged, err := w.pools[name].encode(e.ID, codec)
			if err != nil {
				return nil, eris.Wrapf(err, "failed to encode entity %s", e)
			}
			record.Components = append(record.Components, tagged...)
		}
		records[i] = record
	}
	return records, nil
}

// Serialize encodes the world with codec.
func (w *World) Serialize(codec Codec) ([]byte, error) {
	records, err := w.Records(codec)
	if err != nil {
		return nil, err
	}
	data, err := codec.EncodeRecords(records)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to encode records with %s codec", codec.Name())
	}
	w.logger.Debug().
		Str("codec", codec.Name()).
		Int("entities", len(records)).
		Int("bytes", len(data)).
		Msg("world serialized")
	return data, nil
}

// Deserialize loads data produced by Serialize into w, which must not have created any entity.
// Every component type found in data must be registered on w beforehand.
func (w *World) Deserialize(codec Codec, data []byte) error {
	records, err := decodeRecords(codec, data)
	if err != nil {
		return eris.Wrapf(err, "failed to decode records with %s codec", codec.Name())
	}
	if err := w.LoadRecords(codec, records); err != nil {
		return err
	}
	w.logger.Debug().
		Str("codec", codec.Name()).
		Int("entities", len(records)).
		Int("slots", len(w.entities.slots)).
		Msg("world deserialized")
	return nil
}

type decodedRecord struct {
	entity     Entity
	types      []*componentType
	components []Component
}

// LoadRecords restores records into w. Ids missing from records become destroyed slots available
// for reuse. Records are validated and every component decoded before w is modified, so w is
// left untouched on error.
func (w *World) LoadRecords(codec Codec, records []EntityRecord) error {
	if len(w.entities.slots) != 0 {
		return eris.Wrapf(ErrWorldNotEmpty, "world has %d entity slots", len(w.entities.slots))
	}

	decoded := make([]decodedRecord, len(records))
	for i, record := range records {
		if record.ID == noEntity || int(record.ID) >= w.maxSlots {
			return eris.Wrapf(ErrMalformedRecords, "record %d has id %d outside [0, %d)", i, record.ID, w.maxSlots)
		}
		if i > 0 && record.ID <= records[i-1].ID {
			return eris.Wrapf(ErrMalformedRecords, "record %d has id %d after id %d", i, record.ID, records[i-1].ID)
		}

		d := decodedRecord{
			entity:     Entity{ID: record.ID, Version: record.Version},
			types:      make([]*componentType, len(record.Components)),
			components: make([]Component, len(record.Components)),
		}
		for j, tagged := range record.Components {
			ct, ok := w.components.lookup(tagged.Type)
			if !ok {
				return eris.Wrapf(ErrUnknownComponent, "entity %d component %d has type %q", record.ID, j, tagged.Type)
			}
			c, err := decodeComponent(ct, codec, tagged.Value)
			if err != nil {
				return eris.Wrapf(err, "entity %d component %d", record.ID, j)
			}
			d.types[j] = ct
			d.components[j] = c
		}
		decoded[i] = d
	}

	for _, d := range decoded {
		w.entities.restore(d.entity.ID, d.entity.Version)
		for j, ct := range d.types {
			ct.inject(w, d.entity, d.components[j])
		}
	}
	w.entities.rebuildFreeList()
	return nil
}

// decodeRecords and decodeComponent turn decoder panics into ErrMalformedRecords.
func decodeRecords(codec Codec, data []byte) (records []EntityRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = eris.Wrapf(ErrMalformedRecords, "decoder panic: %v", r)
		}
	}()
	return codec.DecodeRecords(data)
}

func decodeComponent(ct *componentType, codec Codec, data []byte) (c Component, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = eris.Wrapf(ErrMalformedRecords, "decoder panic in %s: %v", ct.name, r)
		}
	}()
	return ct.decode(codec, data)
}
