package ecs

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Codec turns component values and record streams into bytes. The JSON and YAML codecs produce
// self-describing text, the binary codec a compact checksummed stream.
type Codec interface {
	Name() string

	EncodeValue(v any) ([]byte, error)
	// DecodeValue decodes data into v, which must be a pointer.
	DecodeValue(data []byte, v any) error

	EncodeRecords(records []EntityRecord) ([]byte, error)
	DecodeRecords(data []byte) ([]EntityRecord, error)
}

// CodecByName returns the codec registered under name ("json", "yaml" or "binary").
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case jsonCodecName:
		return JSONCodec{}, nil
	case yamlCodecName:
		return YAMLCodec{}, nil
	case binaryCodecName:
		return BinaryCodec{}, nil
	default:
		return nil, eris.Wrapf(ErrUnknownCodec, "%q", name)
	}
}

// checkTagged rejects components without a type tag or a value.
func checkTagged(recordIdx, compIdx int, typ string, value []byte) error {
	if typ == "" {
		return eris.Wrapf(ErrMalformedRecords, "record %d component %d has no type", recordIdx, compIdx)
	}
	if len(value) == 0 {
		return eris.Wrapf(ErrMalformedRecords, "record %d component %d (%s) has no value", recordIdx, compIdx, typ)
	}
	return nil
}
