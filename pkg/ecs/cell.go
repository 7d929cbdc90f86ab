package ecs

import "github.com/rotisserie/eris"

const exclusive = -1

// cell holds one component instance and tracks outstanding borrows of it. state is the number of
// shared borrows, or exclusive while a mutable borrow is held.
type cell[T any] struct {
	value T
	state int
}

func newCell[T any](value T) *cell[T] {
	return &cell[T]{value: value}
}

func (c *cell[T]) borrow() *Ref[T] {
	if c.state == exclusive {
		panic(eris.Wrap(ErrBorrowConflict, "cannot borrow: instance is mutably borrowed"))
	}
	c.state++
	return &Ref[T]{cell: c}
}

func (c *cell[T]) borrowMut() *RefMut[T] {
	switch {
	case c.state == exclusive:
		panic(eris.Wrap(ErrBorrowConflict, "cannot borrow mutably: instance is mutably borrowed"))
	case c.state > 0:
		panic(eris.Wrapf(ErrBorrowConflict, "cannot borrow mutably: instance has %d shared borrows", c.state))
	}
	c.state = exclusive
	return &RefMut[T]{cell: c}
}

func (c *cell[T]) borrowed() bool {
	return c.state != 0
}

// Releaser is implemented by borrow guards.
type Releaser interface {
	Release()
}

// ReleaseAll releases every guard in refs.
func ReleaseAll[R Releaser](refs []R) {
	for _, r := range refs {
		r.Release()
	}
}

// Ref is a shared borrow of one component instance. Any number of Refs to the same instance may
// be held at once, but none may coexist with a RefMut. Release must be called when done.
type Ref[T any] struct {
	cell *cell[T]
}

// Get returns a copy of the borrowed instance.
func (r *Ref[T]) Get() T {
	if r.cell == nil {
		panic(eris.New("use of released component borrow"))
	}
	return r.cell.value
}

// Release ends the borrow. Releasing twice, or releasing a nil guard, is a no-op.
func (r *Ref[T]) Release() {
	if r == nil || r.cell == nil {
		return
	}
	r.cell.state--
	r.cell = nil
}

// RefMut is an exclusive borrow of one component instance.
type RefMut[T any] struct {
	cell *cell[T]
}

// Get returns a pointer into the pool. The pointer must not be retained after Release.
func (r *RefMut[T]) Get() *T {
	if r.cell == nil {
		panic(eris.New("use of released component borrow"))
	}
	return &r.cell.value
}

// Set overwrites the borrowed instance.
func (r *RefMut[T]) Set(value T) {
	*r.Get() = value
}

// Release ends the borrow. Releasing twice, or releasing a nil guard, is a no-op.
func (r *RefMut[T]) Release() {
	if r == nil || r.cell == nil {
		return
	}
	r.cell.state = 0
	r.cell = nil
}
