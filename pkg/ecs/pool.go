package ecs

import (
	"math"

	"github.com/raven-engine/raven/pkg/assert"
	"github.com/rotisserie/eris"
)

// PageSize is the number of entity ids covered by one sparse page.
const PageSize = 100

// sparseTombstone marks a page slot whose entity holds no instance.
const sparseTombstone int32 = -1

type page [PageSize]int32

func newPage() *page {
	var p page
	for i := range p {
		p[i] = sparseTombstone
	}
	return &p
}

func (p *page) empty() bool {
	for _, k := range p {
		if k != sparseTombstone {
			return false
		}
	}
	return true
}

func split(id EntityID) (int, int) {
	return int(id) / PageSize, int(id) % PageSize
}

// anyPool is the type-erased view of a Pool that World keeps in its pool map.
type anyPool interface {
	name() string
	clear(id EntityID)
	count(id EntityID) int
	entityIDs() []EntityID
	len() int
	encode(id EntityID, codec Codec) ([]TaggedComponent, error)
}

var _ anyPool = &Pool[int]{}

// Pool stores every instance of one component type. It is a paged sparse set: sparse maps an
// entity id to an index into the dense packed and components arrays, which stay index aligned and
// are compacted with swap-removal. An entity may hold several instances, kept in attach order.
//
// Invariants:
//   - sparse[page][offset] == k iff packed[k] is the entity id.
//   - components[k] is never empty.
//   - the last page of sparse is never nil.
type Pool[T any] struct {
	compName   string
	sparse     []*page
	packed     []EntityID
	components [][]*cell[T]
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return newNamedPool[T]("")
}

func newNamedPool[T any](name string) *Pool[T] {
	const initialCapacity = 16
	return &Pool[T]{
		compName:   name,
		packed:     make([]EntityID, 0, initialCapacity),
		components: make([][]*cell[T], 0, initialCapacity),
	}
}

// index returns the packed index of id.
func (p *Pool[T]) index(id EntityID) (int, bool) {
	pg, off := split(id)
	if pg >= len(p.sparse) || p.sparse[pg] == nil {
		return 0, false
	}
	k := p.sparse[pg][off]
	if k == sparseTombstone {
		return 0, false
	}
	return int(k), true
}

// Attach adds an instance for id. If id already holds instances the new one is appended after
// them, otherwise id gets a new packed slot.
func (p *Pool[T]) Attach(id EntityID, component T) {
	if k, ok := p.index(id); ok {
		p.components[k] = append(p.components[k], newCell(component))
		return
	}

	assert.That(len(p.packed) < math.MaxInt32, "pool %q is full", p.compName)

	pg, off := split(id)
	for len(p.sparse) <= pg {
		p.sparse = append(p.sparse, nil)
	}
	if p.sparse[pg] == nil {
		p.sparse[pg] = newPage()
	}
	p.sparse[pg][off] = int32(len(p.packed)) //nolint:gosec // bounded by the assertion above
	p.packed = append(p.packed, id)
	p.components = append(p.components, []*cell[T]{newCell(component)})
}

// DetachOne removes the first instance of id. Removing the last instance removes id from the pool
// entirely.
func (p *Pool[T]) DetachOne(id EntityID) (T, bool) {
	k, ok := p.index(id)
	if !ok {
		var zero T
		return zero, false
	}

	instances := p.components[k]
	if len(instances) == 1 {
		return p.DetachAll(id)[0], true
	}

	first := instances[0].value
	copy(instances, instances[1:])
	instances[len(instances)-1] = nil
	p.components[k] = instances[:len(instances)-1]
	return first, true
}

// DetachAll removes every instance of id and returns them in attach order.
func (p *Pool[T]) DetachAll(id EntityID) []T {
	k, ok := p.index(id)
	if !ok {
		return nil
	}

	instances := p.components[k]
	values := make([]T, len(instances))
	for i, c := range instances {
		values[i] = c.value
	}

	// Swap the removed slot with the last one and fix the sparse entry of the entity moved in.
	last := len(p.packed) - 1
	if k != last {
		moved := p.packed[last]
		p.packed[k] = moved
		p.components[k] = p.components[last]
		movedPage, movedOff := split(moved)
		p.sparse[movedPage][movedOff] = int32(k) //nolint:gosec // k < len(packed)
	}
	p.packed = p.packed[:last]
	p.components[last] = nil
	p.components = p.components[:last]

	pg, off := split(id)
	p.sparse[pg][off] = sparseTombstone
	if p.sparse[pg].empty() {
		p.sparse[pg] = nil
		p.trimPages()
	}
	return values
}

// trimPages drops trailing nil pages.
func (p *Pool[T]) trimPages() {
	n := len(p.sparse)
	for n > 0 && p.sparse[n-1] == nil {
		n--
	}
	clear(p.sparse[n:])
	p.sparse = p.sparse[:n]
}

// cellAt returns the nth instance cell of id, or nil.
func (p *Pool[T]) cellAt(id EntityID, n int) *cell[T] {
	k, ok := p.index(id)
	if !ok || n < 0 || n >= len(p.components[k]) {
		return nil
	}
	return p.components[k][n]
}

// GetNth borrows the nth instance of id.
func (p *Pool[T]) GetNth(id EntityID, n int) (*Ref[T], bool) {
	c := p.cellAt(id, n)
	if c == nil {
		return nil, false
	}
	return c.borrow(), true
}

// GetNthMut mutably borrows the nth instance of id. Panics if that instance is already borrowed.
func (p *Pool[T]) GetNthMut(id EntityID, n int) (*RefMut[T], bool) {
	c := p.cellAt(id, n)
	if c == nil {
		return nil, false
	}
	return c.borrowMut(), true
}

func (p *Pool[T]) GetOne(id EntityID) (*Ref[T], bool) {
	return p.GetNth(id, 0)
}

func (p *Pool[T]) GetOneMut(id EntityID) (*RefMut[T], bool) {
	return p.GetNthMut(id, 0)
}

// GetAll borrows every instance of id in attach order.
func (p *Pool[T]) GetAll(id EntityID) []*Ref[T] {
	k, ok := p.index(id)
	if !ok {
		return nil
	}
	refs := make([]*Ref[T], len(p.components[k]))
	for i, c := range p.components[k] {
		refs[i] = c.borrow()
	}
	return refs
}

// GetAllMut mutably borrows every instance of id in attach order.
func (p *Pool[T]) GetAllMut(id EntityID) []*RefMut[T] {
	k, ok := p.index(id)
	if !ok {
		return nil
	}
	refs := make([]*RefMut[T], len(p.components[k]))
	for i, c := range p.components[k] {
		refs[i] = c.borrowMut()
	}
	return refs
}

// Values copies every instance of id without holding a borrow.
func (p *Pool[T]) Values(id EntityID) []T {
	k, ok := p.index(id)
	if !ok {
		return nil
	}
	values := make([]T, len(p.components[k]))
	for i, c := range p.components[k] {
		values[i] = c.value
	}
	return values
}

// Count returns the number of instances id holds.
func (p *Pool[T]) Count(id EntityID) int {
	k, ok := p.index(id)
	if !ok {
		return 0
	}
	return len(p.components[k])
}

func (p *Pool[T]) Has(id EntityID) bool {
	_, ok := p.index(id)
	return ok
}

// EntityIDs returns a snapshot of the entities held, in packed order.
func (p *Pool[T]) EntityIDs() []EntityID {
	ids := make([]EntityID, len(p.packed))
	copy(ids, p.packed)
	return ids
}

// Len returns the number of entities holding at least one instance.
func (p *Pool[T]) Len() int {
	return len(p.packed)
}

// PageCount returns the number of sparse pages, including nil pages below the last one.
func (p *Pool[T]) PageCount() int {
	return len(p.sparse)
}

// -------------------------------------------------------------------------------------------------
// Type-erased operations
// -------------------------------------------------------------------------------------------------

func (p *Pool[T]) name() string {
	return p.compName
}

func (p *Pool[T]) clear(id EntityID) {
	p.DetachAll(id)
}

func (p *Pool[T]) count(id EntityID) int {
	return p.Count(id)
}

func (p *Pool[T]) entityIDs() []EntityID {
	return p.EntityIDs()
}

func (p *Pool[T]) len() int {
	return p.Len()
}

func (p *Pool[T]) encode(id EntityID, codec Codec) ([]TaggedComponent, error) {
	k, ok := p.index(id)
	if !ok {
		return nil, nil
	}
	tagged := make([]TaggedComponent, len(p.components[k]))
	for i, c := range p.components[k] {
		data, err := codec.EncodeValue(c.value)
		if err != nil {
			return nil, eris.Wrapf(err, "failed to encode %s instance %d of entity %d", p.compName, i, id)
		}
		tagged[i] = TaggedComponent{Type: p.compName, Value: data}
	}
	return tagged, nil
}
