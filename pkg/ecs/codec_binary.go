package ecs

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/rotisserie/eris"
	"github.com/shamaton/msgpack/v3"
)

const binaryCodecName = "binary"

var binaryMagic = []byte("RVN1") //nolint:gochecknoglobals // constant byte prefix

const (
	checksumSize   = 8
	lengthSize     = 4
	minBinarySize  = 4 + 1 + checksumSize // magic, zero count, checksum
	minRecordBytes = lengthSize + 1
)

// BinaryCodec encodes records as a length-prefixed stream of MessagePack bodies:
//
//	magic "RVN1" | uvarint record count | (uint32 BE length | msgpack record)* | uint64 BE xxhash64
//
// The trailing checksum covers every byte before it.
type BinaryCodec struct{}

var _ Codec = BinaryCodec{}

type binaryRecord struct {
	ID         uint32            `msgpack:"id"`
	Version    uint32            `msgpack:"version"`
	Components []binaryComponent `msgpack:"components"`
}

type binaryComponent struct {
	Type  string `msgpack:"type"`
	Value []byte `msgpack:"value"`
}

func (BinaryCodec) Name() string {
	return binaryCodecName
}

func (BinaryCodec) EncodeValue(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, eris.Wrap(err, "failed to marshal msgpack value")
	}
	return data, nil
}

func (BinaryCodec) DecodeValue(data []byte, v any) error {
	return unmarshalMsgpack(data, v)
}

// unmarshalMsgpack recovers from decoder panics, which msgpack raises on some malformed inputs.
func unmarshalMsgpack(data []byte, v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = eris.Wrap(fmt.Errorf("panic: %v", r), "failed to unmarshal msgpack value")
		}
	}()

	if err := msgpack.Unmarshal(data, v); err != nil {
		return eris.Wrap(err, "failed to unmarshal msgpack value")
	}
	return nil
}

func (BinaryCodec) EncodeRecords(records []EntityRecord) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(binaryMagic)
	buf.Write(binary.AppendUvarint(nil, uint64(len(records))))

	for i, record := range records {
		wire := binaryRecord{
			ID:         uint32(record.ID),
			Version:    uint32(record.Version),
			Components: make([]binaryComponent, len(record.Components)),
		}
		for j, c := range record.Components {
			wire.Components[j] = binaryComponent{Type: c.Type, Value: c.Value}
		}

		body, err := msgpack.Marshal(wire)
		if err != nil {
			return nil, eris.Wrapf(err, "failed to marshal record %d", i)
		}
		if uint64(len(body)) > math.MaxUint32 {
			return nil, eris.Errorf("record %d is %d bytes, larger than the length prefix allows", i, len(body))
		}
		buf.Write(binary.BigEndian.AppendUint32(nil, uint32(len(body))))
		buf.Write(body)
	}

	buf.Write(binary.BigEndian.AppendUint64(nil, xxhash.Sum64(buf.Bytes())))
	return buf.Bytes(), nil
}

func (BinaryCodec) DecodeRecords(data []byte) ([]EntityRecord, error) {
	if len(data) < minBinarySize {
		return nil, eris.Wrapf(ErrMalformedRecords, "binary stream is %d bytes", len(data))
	}

	payload, sum := data[:len(data)-checksumSize], data[len(data)-checksumSize:]
	if got, want := xxhash.Sum64(payload), binary.BigEndian.Uint64(sum); got != want {
		return nil, eris.Wrapf(ErrChecksumMismatch, "got %016x, want %016x", got, want)
	}

	if !bytes.HasPrefix(payload, binaryMagic) {
		return nil, eris.Wrap(ErrMalformedRecords, "missing binary stream magic")
	}
	rest := payload[len(binaryMagic):]

	count, n := binary.Uvarint(rest)
	if n <= 0 {
		return nil, eris.Wrap(ErrMalformedRecords, "invalid record count")
	}
	rest = rest[n:]
	if count > uint64(len(rest)/minRecordBytes) {
		return nil, eris.Wrapf(ErrMalformedRecords, "record count %d exceeds stream size", count)
	}

	records := make([]EntityRecord, 0, count)
	for i := range count {
		if len(rest) < lengthSize {
			return nil, eris.Wrapf(ErrMalformedRecords, "record %d: truncated length", i)
		}
		size := binary.BigEndian.Uint32(rest)
		rest = rest[lengthSize:]
		if uint64(size) > uint64(len(rest)) {
			return nil, eris.Wrapf(ErrMalformedRecords, "record %d: length %d exceeds stream", i, size)
		}

		var wire binaryRecord
		if err := unmarshalMsgpack(rest[:size], &wire); err != nil {
			return nil, eris.Wrapf(ErrMalformedRecords, "record %d: %v", i, err)
		}
		rest = rest[size:]

		comps := make([]TaggedComponent, len(wire.Components))
		for j, c := range wire.Components {
			if err := checkTagged(int(i), j, c.Type, c.Value); err != nil { //nolint:gosec // i < count
				return nil, err
			}
			comps[j] = TaggedComponent{Type: c.Type, Value: c.Value}
		}
		records = append(records, EntityRecord{
			ID:         EntityID(wire.ID),
			Version:    Version(wire.Version),
			Components: comps,
		})
	}

	if len(rest) != 0 {
		return nil, eris.Wrapf(ErrMalformedRecords, "%d trailing bytes after records", len(rest))
	}
	return records, nil
}
