package ecs

import (
	"slices"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// World owns entity identity and one Pool per component type ever attached.
type World struct {
	entities   entityTable
	components componentRegistry
	pools      map[string]anyPool
	poolNames  []string // Sorted keys of pools, for stable serialization order
	maxSlots   int      // Largest entity table LoadRecords may build
	logger     zerolog.Logger
}

// DefaultMaxSlots bounds the entity table built from decoded records.
const DefaultMaxSlots = 1 << 24

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for world lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) {
		w.logger = logger.With().Str("component", "ecs").Logger()
	}
}

// WithMaxSlots bounds the entity table LoadRecords may build, so a corrupt record cannot force a
// huge allocation.
func WithMaxSlots(n int) Option {
	return func(w *World) {
		w.maxSlots = n
	}
}

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	w := &World{
		entities:   newEntityTable(),
		components: newComponentRegistry(),
		pools:      make(map[string]anyPool),
		maxSlots:   DefaultMaxSlots,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Create returns a new live entity, recycling the most recently destroyed slot if there is one.
func (w *World) Create() Entity {
	return w.entities.create()
}

// Destroy removes every component of e and invalidates the handle. Stale handles are ignored.
func (w *World) Destroy(e Entity) {
	if !w.entities.exists(e) {
		return
	}
	for _, name := range w.poolNames {
		w.pools[name].clear(e.ID)
	}
	w.entities.destroy(e)
	w.logger.Trace().Stringer("entity", e).Msg("entity destroyed")
}

// Alive reports whether e refers to a live entity.
func (w *World) Alive(e Entity) bool {
	return w.entities.exists(e)
}

// Entities returns every live entity in ascending id order.
func (w *World) Entities() []Entity {
	return w.entities.live()
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.count()
}

// ComponentNames returns the names of every registered component type, sorted.
func (w *World) ComponentNames() []string {
	return w.components.names()
}

// ComponentSchemas returns the JSON schema of every registered component type, keyed by name.
func (w *World) ComponentSchemas() map[string][]byte {
	schemas := make(map[string][]byte, len(w.components.types))
	for name, ct := range w.components.types {
		schemas[name] = ct.schema
	}
	return schemas
}

// ValidateSchemas checks schemas recorded by ComponentSchemas, possibly in another process,
// against the component types registered on w. Names w does not know are ignored.
func (w *World) ValidateSchemas(schemas map[string][]byte) error {
	for _, name := range w.components.names() {
		stored, ok := schemas[name]
		if !ok {
			continue
		}
		ct, _ := w.components.lookup(name)
		if err := ct.validateSchema(stored); err != nil {
			return err
		}
	}
	return nil
}

// RegisterComponent makes T known to the world so serialized instances of it can be decoded.
// Attach registers implicitly.
func RegisterComponent[T Component](w *World) error {
	_, err := register[T](&w.components)
	return err
}

// poolFor returns the pool of T if one has been created.
func poolFor[T Component](w *World) (*Pool[T], bool) {
	var zero T
	p, ok := w.pools[zero.Name()]
	if !ok {
		return nil, false
	}
	typed, ok := p.(*Pool[T])
	if !ok {
		panic(eris.Wrapf(ErrComponentNameConflict, "%q is not stored as %T", zero.Name(), zero))
	}
	return typed, true
}

// ensurePool returns the pool of T, creating it on first use.
func ensurePool[T Component](w *World) *Pool[T] {
	if p, ok := poolFor[T](w); ok {
		return p
	}
	ct, err := register[T](&w.components)
	if err != nil {
		panic(err)
	}
	p := ct.newPool()
	w.pools[ct.name] = p
	idx, _ := slices.BinarySearch(w.poolNames, ct.name)
	w.poolNames = slices.Insert(w.poolNames, idx, ct.name)
	w.logger.Debug().Str("name", ct.name).Msg("component pool created")
	return p.(*Pool[T]) //nolint:forcetypeassert // newPool builds a *Pool[T]
}

// PoolReader is the read-only view of a world's pool. Mutation goes through the world so that only
// live entities ever hold components.
type PoolReader[T any] interface {
	Count(id EntityID) int
	Has(id EntityID) bool
	Values(id EntityID) []T
	GetNth(id EntityID, n int) (*Ref[T], bool)
	GetAll(id EntityID) []*Ref[T]
	EntityIDs() []EntityID
	Len() int
	PageCount() int
}

var _ PoolReader[int] = (*Pool[int])(nil)

// poolView hides every method of the wrapped pool beyond PoolReader.
type poolView[T any] struct {
	PoolReader[T]
}

// PoolOf returns a read-only view of the pool storing T, if any instance of T was ever attached.
func PoolOf[T Component](w *World) (PoolReader[T], bool) {
	p, ok := poolFor[T](w)
	if !ok {
		return nil, false
	}
	return poolView[T]{p}, true
}

// -------------------------------------------------------------------------------------------------
// Component operations
// -------------------------------------------------------------------------------------------------

// Attach adds an instance of T to e. Instances of the same type are kept in attach order. Does
// nothing if e is not alive.
//
// Example:
//
//	player := w.Create()
//	ecs.Attach(w, player, Position{X: 1})
//	ecs.Attach(w, player, Buff{Kind: "haste"})
//	ecs.Attach(w, player, Buff{Kind: "shield"}) // player now holds two Buffs
func Attach[T Component](w *World, e Entity, component T) {
	if !w.entities.exists(e) {
		return
	}
	ensurePool[T](w).Attach(e.ID, component)
}

// DetachOne removes the first instance of T from e.
func DetachOne[T Component](w *World, e Entity) (T, bool) {
	p, ok := livePool[T](w, e)
	if !ok {
		var zero T
		return zero, false
	}
	return p.DetachOne(e.ID)
}

// DetachAll removes every instance of T from e and returns them in attach order.
func DetachAll[T Component](w *World, e Entity) []T {
	p, ok := livePool[T](w, e)
	if !ok {
		return nil
	}
	return p.DetachAll(e.ID)
}

// GetOne borrows the first instance of T on e. The borrow must be released.
func GetOne[T Component](w *World, e Entity) (*Ref[T], bool) {
	return GetNth[T](w, e, 0)
}

// GetOneMut mutably borrows the first instance of T on e. The borrow must be released.
func GetOneMut[T Component](w *World, e Entity) (*RefMut[T], bool) {
	return GetNthMut[T](w, e, 0)
}

func GetNth[T Component](w *World, e Entity, n int) (*Ref[T], bool) {
	p, ok := livePool[T](w, e)
	if !ok {
		return nil, false
	}
	return p.GetNth(e.ID, n)
}

func GetNthMut[T Component](w *World, e Entity, n int) (*RefMut[T], bool) {
	p, ok := livePool[T](w, e)
	if !ok {
		return nil, false
	}
	return p.GetNthMut(e.ID, n)
}

// GetAll borrows every instance of T on e in attach order.
func GetAll[T Component](w *World, e Entity) []*Ref[T] {
	p, ok := livePool[T](w, e)
	if !ok {
		return nil
	}
	return p.GetAll(e.ID)
}

// GetAllMut mutably borrows every instance of T on e in attach order.
func GetAllMut[T Component](w *World, e Entity) []*RefMut[T] {
	p, ok := livePool[T](w, e)
	if !ok {
		return nil
	}
	return p.GetAllMut(e.ID)
}

// Get returns a copy of the first instance of T on e.
func Get[T Component](w *World, e Entity) (T, bool) {
	ref, ok := GetOne[T](w, e)
	if !ok {
		var zero T
		return zero, false
	}
	defer ref.Release()
	return ref.Get(), true
}

// Values returns copies of every instance of T on e in attach order.
func Values[T Component](w *World, e Entity) []T {
	p, ok := livePool[T](w, e)
	if !ok {
		return nil
	}
	return p.Values(e.ID)
}

// Count returns the number of instances of T on e.
func Count[T Component](w *World, e Entity) int {
	p, ok := livePool[T](w, e)
	if !ok {
		return 0
	}
	return p.Count(e.ID)
}

// Has reports whether e holds at least one instance of T.
func Has[T Component](w *World, e Entity) bool {
	return Count[T](w, e) > 0
}

// livePool returns the pool of T when e is alive and the pool exists.
func livePool[T Component](w *World, e Entity) (*Pool[T], bool) {
	if !w.entities.exists(e) {
		return nil, false
	}
	return poolFor[T](w)
}
