package ecs

import (
	"math"
	"strconv"

	"github.com/kelindar/bitmap"
	"github.com/raven-engine/raven/pkg/assert"
)

// EntityID indexes a slot in the world's entity table.
type EntityID uint32

// Version counts how many times an entity slot has been destroyed.
type Version uint32

// Entity is a generational handle. A handle stays valid until its entity is destroyed; after
// that, the recycled slot hands out the same ID with a higher Version, so stale handles never
// alias the new entity.
type Entity struct {
	ID      EntityID
	Version Version
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.ID), 10) + "v" + strconv.FormatUint(uint64(e.Version), 10)
}

// noEntity terminates the free list.
const noEntity EntityID = math.MaxUint32

// entitySlot is alive when link points at its own index. A destroyed slot reuses link as the
// next pointer of the free list.
type entitySlot struct {
	link    EntityID
	version Version
}

// entityTable owns entity identity. Slots are never removed, only relabeled, so the table size is
// the high-water mark of simultaneously allocated ids.
type entityTable struct {
	slots         []entitySlot
	destroyedHead EntityID      // Most recently destroyed slot, or noEntity
	alive         bitmap.Bitmap // Ids of live slots, kept in sync with slots for ordered scans
}

func newEntityTable() entityTable {
	return entityTable{
		slots:         make([]entitySlot, 0, 64),
		destroyedHead: noEntity,
	}
}

// create pops the free list head or appends a fresh slot at version 0.
func (t *entityTable) create() Entity {
	if t.destroyedHead != noEntity {
		id := t.destroyedHead
		slot := &t.slots[id]
		t.destroyedHead = slot.link
		slot.link = id
		t.alive.Set(uint32(id))
		return Entity{ID: id, Version: slot.version}
	}

	id := EntityID(len(t.slots)) //nolint:gosec // bounded by the assertion below
	assert.That(id != noEntity, "entity id space exhausted")
	t.slots = append(t.slots, entitySlot{link: id})
	t.alive.Set(uint32(id))
	return Entity{ID: id}
}

func (t *entityTable) exists(e Entity) bool {
	if int(e.ID) >= len(t.slots) {
		return false
	}
	slot := t.slots[e.ID]
	return slot.link == e.ID && slot.version == e.Version
}

// destroy bumps the slot version and pushes it onto the free list. Returns false for stale
// handles.
func (t *entityTable) destroy(e Entity) bool {
	if !t.exists(e) {
		return false
	}
	slot := &t.slots[e.ID]
	slot.version++
	slot.link = t.destroyedHead
	t.destroyedHead = e.ID
	t.alive.Remove(uint32(e.ID))
	return true
}

// isAlive reports whether slot id holds a live entity, whatever its version.
func (t *entityTable) isAlive(id EntityID) bool {
	return int(id) < len(t.slots) && t.slots[id].link == id
}

// current returns the live handle for id. The caller guarantees id is alive.
func (t *entityTable) current(id EntityID) Entity {
	assert.That(t.isAlive(id), "entity %d is not alive", id)
	return Entity{ID: id, Version: t.slots[id].version}
}

// live returns every live handle in ascending id order.
func (t *entityTable) live() []Entity {
	entities := make([]Entity, 0, t.alive.Count())
	t.alive.Range(func(id uint32) {
		entities = append(entities, Entity{ID: EntityID(id), Version: t.slots[id].version})
	})
	return entities
}

func (t *entityTable) count() int {
	return t.alive.Count()
}

// -------------------------------------------------------------------------------------------------
// Restoring from records
// -------------------------------------------------------------------------------------------------

// restore marks (id, version) alive, growing the table with placeholder slots for any gap.
// Placeholders start at version 1 so no handle minted before the snapshot can match a reused gap.
// Placeholders are threaded onto the free list by rebuildFreeList once every record is restored.
func (t *entityTable) restore(id EntityID, version Version) {
	for EntityID(len(t.slots)) <= id { //nolint:gosec // id < noEntity is checked by the caller
		t.slots = append(t.slots, entitySlot{link: noEntity, version: 1})
	}
	t.slots[id] = entitySlot{link: id, version: version}
	t.alive.Set(uint32(id))
}

// rebuildFreeList chains every slot that is not alive. Slots are pushed in ascending order, so the
// highest free id is reused first, matching what destroying them in ascending order would do.
func (t *entityTable) rebuildFreeList() {
	t.destroyedHead = noEntity
	for i := range t.slots {
		id := EntityID(i) //nolint:gosec // table length never exceeds noEntity
		if t.alive.Contains(uint32(id)) {
			continue
		}
		t.slots[i].link = t.destroyedHead
		t.destroyedHead = id
	}
}
