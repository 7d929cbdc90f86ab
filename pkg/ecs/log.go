package ecs

import "github.com/rs/zerolog"

// LogWorld logs the registered component types, the pools and the number of live entities.
func LogWorld(logger *zerolog.Logger, w *World, level zerolog.Level) {
	names := w.ComponentNames()
	event := logger.WithLevel(level)
	event.Int("total_components", len(names))
	event.Strs("components", names)

	pools := zerolog.Arr()
	for _, name := range w.poolNames {
		pools = pools.Dict(zerolog.Dict().
			Str("component_name", name).
			Int("entities", w.pools[name].len()))
	}
	event.Array("pools", pools)

	event.Int("total_entities", w.Len())
	event.Int("entity_slots", len(w.entities.slots))
	event.Send()
}

// LogEntity logs the number of instances e holds per component type.
func LogEntity(logger *zerolog.Logger, w *World, e Entity, level zerolog.Level) {
	event := logger.WithLevel(level).Stringer("entity", e).Bool("alive", w.Alive(e))
	if w.Alive(e) {
		counts := zerolog.Dict()
		for _, name := range w.poolNames {
			if n := w.pools[name].count(e.ID); n > 0 {
				counts = counts.Int(name, n)
			}
		}
		event.Dict("components", counts)
	}
	event.Send()
}
