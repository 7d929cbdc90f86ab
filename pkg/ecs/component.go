package ecs

import (
	"reflect"
	"slices"

	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"
)

// Component is the interface that all component types must implement. Name is the stable type
// discriminator used to key pools and to tag serialized instances, so it must be unique per type
// and must not change between runs that share serialized data.
type Component interface {
	Name() string
}

// componentType carries what the world needs to handle a component type without knowing T.
type componentType struct {
	name    string
	typ     reflect.Type
	schema  []byte // JSON schema of T
	newPool func() anyPool
	decode  func(codec Codec, data []byte) (Component, error)
	inject  func(w *World, e Entity, c Component)
}

// componentRegistry maps component names to their types.
type componentRegistry struct {
	types map[string]*componentType
}

func newComponentRegistry() componentRegistry {
	return componentRegistry{types: make(map[string]*componentType)}
}

// register adds T to the registry. Registering the same type twice is a no-op, registering a
// different type under an existing name is an error.
func register[T Component](r *componentRegistry) (*componentType, error) {
	var zero T
	name := zero.Name()
	if name == "" {
		return nil, eris.Errorf("component %T has an empty name", zero)
	}

	typ := reflect.TypeFor[T]()
	if existing, ok := r.types[name]; ok {
		if existing.typ != typ {
			return nil, eris.Wrapf(ErrComponentNameConflict, "%q is %s, not %s", name, existing.typ, typ)
		}
		return existing, nil
	}

	schema, err := jsonschema.ReflectFromType(typ).MarshalJSON()
	if err != nil {
		return nil, eris.Wrapf(err, "component %q must be json serializable", name)
	}

	ct := &componentType{
		name:   name,
		typ:    typ,
		schema: schema,
		newPool: func() anyPool {
			return newNamedPool[T](name)
		},
		decode: func(codec Codec, data []byte) (Component, error) {
			var c T
			if err := codec.DecodeValue(data, &c); err != nil {
				return nil, eris.Wrapf(err, "failed to decode %s", name)
			}
			return c, nil
		},
		inject: func(w *World, e Entity, c Component) {
			Attach(w, e, c.(T)) //nolint:forcetypeassert // produced by decode above
		},
	}
	r.types[name] = ct
	return ct, nil
}

func (r *componentRegistry) lookup(name string) (*componentType, bool) {
	ct, ok := r.types[name]
	return ct, ok
}

// names returns the registered component names in sorted order.
func (r *componentRegistry) names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// validateSchema reports an error wrapping ErrComponentSchemaMismatch if stored differs from the
// schema of ct.
func (ct *componentType) validateSchema(stored []byte) error {
	patch, err := jsondiff.CompareJSON(stored, ct.schema)
	if err != nil {
		return eris.Wrapf(err, "failed to compare schema of %q", ct.name)
	}
	if len(patch) != 0 {
		return eris.Wrapf(ErrComponentSchemaMismatch, "%q: %s", ct.name, patch)
	}
	return nil
}
