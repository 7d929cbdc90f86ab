package ecs

import (
	"testing"

	. "github.com/raven-engine/raven/pkg/testutils" //nolint:revive // test components
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld_CreateAfterDestroy(t *testing.T) {
	t.Parallel()
	w := NewWorld()

	e := w.Create()
	w.Destroy(e)
	recycled := w.Create()

	assert.Equal(t, e.ID, recycled.ID)
	assert.Equal(t, e.Version+1, recycled.Version)
	assert.False(t, w.Alive(e))
	assert.True(t, w.Alive(recycled))
}

func TestWorld_AttachDetach(t *testing.T) {
	t.Parallel()
	w := NewWorld()
	e := w.Create()

	Attach(w, e, Health{Value: 10})
	got, ok := Get[Health](w, e)
	require.True(t, ok)
	assert.Equal(t, Health{Value: 10}, got)

	detached, ok := DetachOne[Health](w, e)
	require.True(t, ok)
	assert.Equal(t, Health{Value: 10}, detached)
	_, ok = Get[Health](w, e)
	assert.False(t, ok)
	assert.False(t, Has[Health](w, e))
}

func TestWorld_MultipleInstances(t *testing.T) {
	t.Parallel()
	w := NewWorld()
	e := w.Create()

	Attach(w, e, Tag{Label: "a"})
	Attach(w, e, Tag{Label: "b"})
	Attach(w, e, Tag{Label: "c"})

	assert.Equal(t, 3, Count[Tag](w, e))
	refs := GetAll[Tag](w, e)
	require.Len(t, refs, 3)
	assert.Equal(t, "b", refs[1].Get().Label)
	ReleaseAll(refs)

	nth, ok := GetNth[Tag](w, e, 2)
	require.True(t, ok)
	assert.Equal(t, "c", nth.Get().Label)
	nth.Release()

	for _, ref := range GetAllMut[Tag](w, e) {
		ref.Get().Label += "!"
		ref.Release()
	}
	assert.Equal(t, []Tag{{Label: "a!"}, {Label: "b!"}, {Label: "c!"}}, Values[Tag](w, e))

	assert.Equal(t, []Tag{{Label: "a!"}, {Label: "b!"}, {Label: "c!"}}, DetachAll[Tag](w, e))
	assert.Equal(t, 0, Count[Tag](w, e))
	p, ok := PoolOf[Tag](w)
	require.True(t, ok)
	assert.NotContains(t, p.EntityIDs(), e.ID)
}

func TestWorld_PoolOfIsReadOnly(t *testing.T) {
	t.Parallel()
	w := NewWorld()
	e := w.Create()
	Attach(w, e, Tag{Label: "a"})

	p, ok := PoolOf[Tag](w)
	require.True(t, ok)
	assert.Equal(t, []Tag{{Label: "a"}}, p.Values(e.ID))
	assert.Equal(t, []EntityID{e.ID}, p.EntityIDs())

	// The view cannot be asserted back to something that attaches or detaches.
	_, attaches := p.(interface{ Attach(id EntityID, component Tag) })
	assert.False(t, attaches)
	_, detaches := p.(interface{ DetachAll(id EntityID) []Tag })
	assert.False(t, detaches)
	_, isPool := p.(*Pool[Tag])
	assert.False(t, isPool)

	// The view tracks later changes made through the world.
	w.Destroy(e)
	assert.Zero(t, p.Len())
}

func TestWorld_GetOneMut(t *testing.T) {
	t.Parallel()
	w := NewWorld()
	e := w.Create()
	Attach(w, e, Position{X: 1})

	ref, ok := GetOneMut[Position](w, e)
	require.True(t, ok)
	ref.Get().X = 5
	ref.Release()

	got, _ := Get[Position](w, e)
	assert.InDelta(t, 5.0, got.X, 0)

	m, ok := GetNthMut[Position](w, e, 0)
	require.True(t, ok)
	m.Set(Position{Y: 2})
	m.Release()
	assert.Equal(t, []Position{{Y: 2}}, Values[Position](w, e))
}

func TestWorld_DestroyClearsEveryPool(t *testing.T) {
	t.Parallel()
	w := NewWorld()

	e := w.Create()
	other := w.Create()
	Attach(w, e, Health{Value: 1})
	Attach(w, e, Position{X: 1})
	Attach(w, e, Tag{Label: "x"})
	Attach(w, e, Tag{Label: "y"})
	Attach(w, other, Tag{Label: "z"})

	w.Destroy(e)

	// Recycle the slot so the checks below run against a live id with no components.
	recycled := w.Create()
	require.Equal(t, e.ID, recycled.ID)

	assert.False(t, Has[Health](w, recycled))
	assert.False(t, Has[Position](w, recycled))
	assert.False(t, Has[Tag](w, recycled))
	for _, name := range w.poolNames {
		assert.Equal(t, 0, w.pools[name].count(e.ID), "pool %s", name)
	}
	assert.Equal(t, []Tag{{Label: "z"}}, Values[Tag](w, other))
}

func TestWorld_StaleHandles(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		run  func(t *testing.T, w *World, stale Entity)
	}{
		{
			name: "attach is a no-op",
			run: func(t *testing.T, w *World, stale Entity) {
				t.Helper()
				Attach(w, stale, Health{Value: 1})
				_, ok := PoolOf[Health](w)
				assert.False(t, ok, "no pool should be created for a stale attach")
			},
		},
		{
			name: "lookups are absent",
			run: func(t *testing.T, w *World, stale Entity) {
				t.Helper()
				_, ok := GetOne[Tag](w, stale)
				assert.False(t, ok)
				_, ok = GetOneMut[Tag](w, stale)
				assert.False(t, ok)
				assert.Nil(t, GetAll[Tag](w, stale))
				assert.Nil(t, GetAllMut[Tag](w, stale))
				assert.Nil(t, Values[Tag](w, stale))
				assert.Equal(t, 0, Count[Tag](w, stale))
			},
		},
		{
			name: "detach is a no-op",
			run: func(t *testing.T, w *World, stale Entity) {
				t.Helper()
				_, ok := DetachOne[Tag](w, stale)
				assert.False(t, ok)
				assert.Nil(t, DetachAll[Tag](w, stale))
			},
		},
		{
			name: "destroy does not touch the recycled entity",
			run: func(t *testing.T, w *World, stale Entity) {
				t.Helper()
				recycled := w.Create()
				Attach(w, recycled, Tag{Label: "new"})
				w.Destroy(stale)
				assert.True(t, w.Alive(recycled))
				assert.Equal(t, []Tag{{Label: "new"}}, Values[Tag](w, recycled))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := NewWorld()
			e := w.Create()
			Attach(w, e, Tag{Label: "old"})
			w.Destroy(e)
			tc.run(t, w, e)
		})
	}
}

func TestWorld_Entities(t *testing.T) {
	t.Parallel()
	w := NewWorld()

	entities := make([]Entity, 6)
	for i := range entities {
		entities[i] = w.Create()
	}
	w.Destroy(entities[1])
	w.Destroy(entities[4])
	recycled := w.Create()

	assert.Equal(t, []Entity{
		entities[0],
		{ID: 2},
		{ID: 3},
		{ID: 4, Version: 1},
		{ID: 5},
	}, w.Entities())
	assert.Equal(t, Entity{ID: 4, Version: 1}, recycled)
	assert.Equal(t, 5, w.Len())
}

func TestWorld_RegisterComponent(t *testing.T) {
	t.Parallel()
	w := NewWorld()

	require.NoError(t, RegisterComponent[Health](w))
	require.NoError(t, RegisterComponent[Health](w))
	require.NoError(t, RegisterComponent[Position](w))
	assert.Equal(t, []string{"health", "position"}, w.ComponentNames())

	// Registering does not create pools.
	_, ok := PoolOf[Health](w)
	assert.False(t, ok)

	err := RegisterComponent[fakeHealth](w)
	assert.True(t, eris.Is(err, ErrComponentNameConflict), "got %v", err)

	err = RegisterComponent[unnamed](w)
	assert.Error(t, err)
}

func TestWorld_AttachConflictingNamePanics(t *testing.T) {
	t.Parallel()
	w := NewWorld()
	e := w.Create()
	Attach(w, e, Health{Value: 1})

	err := recoverError(func() { Attach(w, e, fakeHealth{}) })
	assert.True(t, eris.Is(err, ErrComponentNameConflict), "got %v", err)
}

// fakeHealth claims the name of Health.
type fakeHealth struct{}

func (fakeHealth) Name() string { return "health" }

type unnamed struct{}

func (unnamed) Name() string { return "" }

func TestWorld_ValidateSchemas(t *testing.T) {
	t.Parallel()

	src := NewWorld()
	require.NoError(t, RegisterComponent[Health](src))
	require.NoError(t, RegisterComponent[Position](src))
	schemas := src.ComponentSchemas()
	require.Len(t, schemas, 2)
	assert.Contains(t, string(schemas["health"]), "Value")

	same := NewWorld()
	require.NoError(t, RegisterComponent[Health](same))
	require.NoError(t, same.ValidateSchemas(schemas))

	// Names the world does not know are skipped.
	require.NoError(t, NewWorld().ValidateSchemas(schemas))

	changed := NewWorld()
	require.NoError(t, RegisterComponent[fakeHealth](changed))
	err := changed.ValidateSchemas(schemas)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrComponentSchemaMismatch))
}
