package ecs

import (
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

const yamlCodecName = "yaml"

// YAMLCodec encodes records as a YAML sequence with the same shape as JSONCodec.
type YAMLCodec struct{}

var _ Codec = YAMLCodec{}

type yamlRecord struct {
	ID         EntityID        `yaml:"id"`
	Version    Version         `yaml:"version"`
	Components []yamlComponent `yaml:"components"`
}

type yamlComponent struct {
	Type  string    `yaml:"type"`
	Value yaml.Node `yaml:"value"`
}

func (YAMLCodec) Name() string {
	return yamlCodecName
}

func (YAMLCodec) EncodeValue(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, eris.Wrap(err, "failed to marshal yaml value")
	}
	return data, nil
}

func (YAMLCodec) DecodeValue(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return eris.Wrap(err, "failed to unmarshal yaml value")
	}
	return nil
}

func (YAMLCodec) EncodeRecords(records []EntityRecord) ([]byte, error) {
	wire := make([]yamlRecord, len(records))
	for i, record := range records {
		comps := make([]yamlComponent, len(record.Components))
		for j, c := range record.Components {
			// Embed the value as a node, not as a quoted string.
			var doc yaml.Node
			if err := yaml.Unmarshal(c.Value, &doc); err != nil {
				return nil, eris.Wrapf(err, "record %d component %d is not yaml", i, j)
			}
			if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
				return nil, eris.Errorf("record %d component %d is not a single yaml document", i, j)
			}
			comps[j] = yamlComponent{Type: c.Type, Value: *doc.Content[0]}
		}
		wire[i] = yamlRecord{ID: record.ID, Version: record.Version, Components: comps}
	}

	data, err := yaml.Marshal(wire)
	if err != nil {
		return nil, eris.Wrap(err, "failed to marshal yaml records")
	}
	return data, nil
}

func (YAMLCodec) DecodeRecords(data []byte) ([]EntityRecord, error) {
	var wire []yamlRecord
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, eris.Wrapf(ErrMalformedRecords, "invalid yaml: %v", err)
	}

	records := make([]EntityRecord, len(wire))
	for i, w := range wire {
		comps := make([]TaggedComponent, len(w.Components))
		for j, c := range w.Components {
			var value []byte
			if c.Value.Kind != 0 {
				var err error
				if value, err = yaml.Marshal(&c.Value); err != nil {
					return nil, eris.Wrapf(ErrMalformedRecords, "record %d component %d: %v", i, j, err)
				}
			}
			if err := checkTagged(i, j, c.Type, value); err != nil {
				return nil, err
			}
			comps[j] = TaggedComponent{Type: c.Type, Value: value}
		}
		records[i] = EntityRecord{ID: w.ID, Version: w.Version, Components: comps}
	}
	return records, nil
}
