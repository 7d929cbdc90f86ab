package ecs

import "github.com/rotisserie/eris"

var (
	// ErrBorrowConflict is the panic value (wrapped) raised when a component instance is borrowed
	// in a way that overlaps an outstanding borrow of the same instance.
	ErrBorrowConflict = eris.New("component instance is already borrowed")

	ErrUnknownComponent      = eris.New("unknown component type")
	ErrComponentNameConflict = eris.New("component name is registered to a different type")
	ErrMalformedRecords      = eris.New("malformed entity records")
	ErrWorldNotEmpty         = eris.New("world already holds entities")
	ErrChecksumMismatch      = eris.New("checksum mismatch")
	ErrUnknownCodec          = eris.New("unknown codec")

	// ErrComponentSchemaMismatch is returned when stored data was written by a component type whose
	// layout differs from the registered one.
	ErrComponentSchemaMismatch = eris.New("component schema does not match")
)
