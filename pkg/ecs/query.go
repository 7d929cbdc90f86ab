package ecs

//go:generate go run ../../internal/cmd/genquery --out query_generated.go

// cursor drives every query view. It walks the driving id list front to back and produces, per
// matching entity, the instance index tuple to fetch from each pool.
//
// In shallow mode every match yields the all-zero tuple once. In deep mode the instance counts of
// the entity are read when the cursor reaches it and the cartesian product of indices is produced
// in odometer order, last pool fastest. An entity missing any of the types is skipped in both
// modes. Instances attached to the current entity while its product is being produced are not
// visited. If an instance of the current entity is detached meanwhile, the view skips the rest of
// that entity.
type cursor struct {
	world  *World
	pools  []anyPool
	ids    []EntityID
	deep   bool
	id     EntityID
	counts []int
	digits []int
	active bool // Remaining tuples of id are still to be produced
}

func newCursor(w *World, deep bool, pools ...anyPool) *cursor {
	c := &cursor{
		world:  w,
		pools:  pools,
		deep:   deep,
		counts: make([]int, len(pools)),
		digits: make([]int, len(pools)),
	}
	for _, p := range pools {
		if p == nil {
			return c
		}
	}
	c.ids = drivingIDs(pools)
	return c
}

// drivingIDs returns the shortest entity list among pools. Ties go to the earliest pool.
func drivingIDs(pools []anyPool) []EntityID {
	shortest := pools[0]
	for _, p := range pools[1:] {
		if p.len() < shortest.len() {
			shortest = p
		}
	}
	return shortest.entityIDs()
}

// next returns the next entity id and index tuple. The tuple is reused between calls.
func (c *cursor) next() (EntityID, []int, bool) {
	for {
		if c.active {
			if c.advance() {
				return c.id, c.digits, true
			}
			c.active = false
		}

		if len(c.ids) == 0 {
			return 0, nil, false
		}
		id := c.ids[0]
		c.ids = c.ids[1:]

		if !c.load(id) {
			continue
		}
		clear(c.digits)
		c.id = id
		c.active = c.deep
		return id, c.digits, true
	}
}

// load reads the per-pool instance counts of id and reports whether id is alive and every pool
// holds it.
func (c *cursor) load(id EntityID) bool {
	if !c.world.entities.isAlive(id) {
		return false
	}
	for i, p := range c.pools {
		c.counts[i] = p.count(id)
		if c.counts[i] == 0 {
			return false
		}
	}
	return true
}

// advance increments the index tuple with carry from the right.
func (c *cursor) advance() bool {
	for i := len(c.digits) - 1; i >= 0; i-- {
		c.digits[i]++
		if c.digits[i] < c.counts[i] {
			return true
		}
		c.digits[i] = 0
	}
	return false
}

// skip abandons the remaining tuples of the current entity.
func (c *cursor) skip() {
	c.active = false
}

func (c *cursor) entity(id EntityID) Entity {
	return c.world.entities.current(id)
}

// erase converts a possibly nil pool into an anyPool without producing a typed nil interface.
func erase[T any](p *Pool[T], ok bool) anyPool {
	if !ok {
		return nil
	}
	return p
}

// yieldReleased hands row to yield and releases it once yield returns, even by panicking.
func yieldReleased[R Releaser](yield func(Entity, R) bool, e Entity, row R) bool {
	defer row.Release()
	return yield(e, row)
}

// collectRows drains next. If next panics, the rows already taken are released first.
func collectRows[R Releaser](next func() (R, bool)) []R {
	var rows []R
	done := false
	defer func() {
		if !done {
			ReleaseAll(rows)
		}
	}()
	for {
		row, ok := next()
		if !ok {
			done = true
			return rows
		}
		rows = append(rows, row)
	}
}
