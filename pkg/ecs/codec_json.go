package ecs

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

const jsonCodecName = "json"

// JSONCodec encodes records as a JSON array:
//
//	[{"id":0,"version":2,"components":[{"type":"position","value":{"X":1,"Y":2,"Z":0}}]}]
type JSONCodec struct{}

var _ Codec = JSONCodec{}

type jsonRecord struct {
	ID         EntityID        `json:"id"`
	Version    Version         `json:"version"`
	Components []jsonComponent `json:"components"`
}

type jsonComponent struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

func (JSONCodec) Name() string {
	return jsonCodecName
}

func (JSONCodec) EncodeValue(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, eris.Wrap(err, "failed to marshal json value")
	}
	return data, nil
}

func (JSONCodec) DecodeValue(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return eris.Wrap(err, "failed to unmarshal json value")
	}
	return nil
}

func (JSONCodec) EncodeRecords(records []EntityRecord) ([]byte, error) {
	wire := make([]jsonRecord, len(records))
	for i, record := range records {
		comps := make([]jsonComponent, len(record.Components))
		for j, c := range record.Components {
			comps[j] = jsonComponent{Type: c.Type, Value: json.RawMessage(c.Value)}
		}
		wire[i] = jsonRecord{ID: record.ID, Version: record.Version, Components: comps}
	}

	data, err := json.Marshal(wire)
	if err != nil {
		return nil, eris.Wrap(err, "failed to marshal json records")
	}
	return data, nil
}

func (JSONCodec) DecodeRecords(data []byte) ([]EntityRecord, error) {
	var wire []jsonRecord
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, eris.Wrapf(ErrMalformedRecords, "invalid json: %v", err)
	}

	records := make([]EntityRecord, len(wire))
	for i, w := range wire {
		comps := make([]TaggedComponent, len(w.Components))
		for j, c := range w.Components {
			if err := checkTagged(i, j, c.Type, c.Value); err != nil {
				return nil, err
			}
			comps[j] = TaggedComponent{Type: c.Type, Value: []byte(c.Value)}
		}
		records[i] = EntityRecord{ID: w.ID, Version: w.Version, Components: comps}
	}
	return records, nil
}
