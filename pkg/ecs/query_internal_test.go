package ecs

import (
	"fmt"
	"testing"

	. "github.com/raven-engine/raven/pkg/testutils" //nolint:revive // test components
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shallowXY struct {
	entity Entity
	x, y   string
}

func collectXY(v *View2[CompX, CompY]) []shallowXY {
	var got []shallowXY
	for e, row := range v.Iter() {
		got = append(got, shallowXY{entity: e, x: row.C1.Get().F, y: row.C2.Get().F})
	}
	return got
}

func TestQuery_ShallowScenario(t *testing.T) {
	t.Parallel()
	w := NewWorld()

	e1 := w.Create()
	Attach(w, e1, CompX{F: "A"})
	Attach(w, e1, CompX{F: "B"})
	Attach(w, e1, CompY{F: "C"})
	e2 := w.Create()
	Attach(w, e2, CompX{F: "D"})
	Attach(w, e2, CompY{F: "E"})
	Attach(w, e2, CompY{F: "F"})

	assert.Equal(t, []shallowXY{
		{entity: e1, x: "A", y: "C"},
		{entity: e2, x: "D", y: "E"},
	}, collectXY(QueryShallow2[CompX, CompY](w)))
}

func TestQuery_ShallowSkipsPartialMatches(t *testing.T) {
	t.Parallel()
	w := NewWorld()

	both1 := w.Create()
	onlyY := w.Create()
	both2 := w.Create()
	onlyX := w.Create()
	Attach(w, both1, CompX{F: "x1"})
	Attach(w, both1, CompY{F: "y1"})
	Attach(w, onlyY, CompY{F: "lonely"})
	Attach(w, both2, CompX{F: "x2"})
	Attach(w, both2, CompY{F: "y2"})
	Attach(w, onlyX, CompX{F: "lonely"})

	rows := QueryShallow2[CompX, CompY](w).Collect()
	defer ReleaseAll(rows)

	require.Len(t, rows, 2)
	assert.Equal(t, both1, rows[0].Entity)
	assert.Equal(t, "x1", rows[0].C1.Get().F)
	assert.Equal(t, "y1", rows[0].C2.Get().F)
	assert.Equal(t, [2]int{0, 0}, rows[0].Indices)
	assert.Equal(t, both2, rows[1].Entity)
	assert.Equal(t, "x2", rows[1].C1.Get().F)
	assert.Equal(t, "y2", rows[1].C2.Get().F)
}

func TestQuery_DeepOdometerOrder(t *testing.T) {
	t.Parallel()
	w := NewWorld()

	e := w.Create()
	Attach(w, e, CompX{F: "A0"})
	Attach(w, e, CompX{F: "A1"})
	Attach(w, e, CompY{F: "B0"})
	Attach(w, e, CompY{F: "B1"})

	var got [][2]string
	var indices [][2]int
	for _, row := range QueryDeep2[CompX, CompY](w).Iter() {
		got = append(got, [2]string{row.C1.Get().F, row.C2.Get().F})
		indices = append(indices, row.Indices)
	}

	assert.Equal(t, [][2]string{{"A0", "B0"}, {"A0", "B1"}, {"A1", "B0"}, {"A1", "B1"}}, got)
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, indices)
}

func TestQuery_DeepMatchesCartesianProduct(t *testing.T) {
	t.Parallel()

	// Exhaustively try every instance count in [0, 2] for three types on two entities.
	g := NewGen()
	for !g.Done() {
		w := NewWorld()
		var counts [2][3]int
		entities := [2]Entity{w.Create(), w.Create()}
		for i, e := range entities {
			for j := range 3 {
				counts[i][j] = g.Intn(2)
			}
			for k := range counts[i][0] {
				Attach(w, e, CompX{F: fmt.Sprint(k)})
			}
			for k := range counts[i][1] {
				Attach(w, e, CompY{F: fmt.Sprint(k)})
			}
			for k := range counts[i][2] {
				Attach(w, e, Tag{Label: fmt.Sprint(k)})
			}
		}

		got := make(map[Entity][][3]int)
		for e, row := range QueryDeep3[CompX, CompY, Tag](w).Iter() {
			// Each row must carry the instances its indices name.
			assert.Equal(t, fmt.Sprint(row.Indices[0]), row.C1.Get().F)
			assert.Equal(t, fmt.Sprint(row.Indices[1]), row.C2.Get().F)
			assert.Equal(t, fmt.Sprint(row.Indices[2]), row.C3.Get().Label)
			got[e] = append(got[e], row.Indices)
		}

		want := make(map[Entity][][3]int)
		for i, e := range entities {
			for a := range counts[i][0] {
				for b := range counts[i][1] {
					for c := range counts[i][2] {
						want[e] = append(want[e], [3]int{a, b, c})
					}
				}
			}
		}
		assert.Equal(t, want, got, "counts %v", counts)
	}
}

func TestQuery_DrivingList(t *testing.T) {
	t.Parallel()

	t.Run("shortest pool drives and its order is kept", func(t *testing.T) {
		t.Parallel()
		w := NewWorld()
		entities := make([]Entity, 4)
		for i := range entities {
			entities[i] = w.Create()
			Attach(w, entities[i], CompX{F: fmt.Sprint(i)})
		}
		Attach(w, entities[3], CompY{F: "3"})
		Attach(w, entities[1], CompY{F: "1"})

		v := QueryShallow2[CompX, CompY](w)
		assert.Equal(t, []EntityID{entities[3].ID, entities[1].ID}, v.cur.ids)

		var order []Entity
		for e := range v.Iter() {
			order = append(order, e)
		}
		assert.Equal(t, []Entity{entities[3], entities[1]}, order)
	})

	t.Run("ties go to the first type", func(t *testing.T) {
		t.Parallel()
		w := NewWorld()
		a, b := w.Create(), w.Create()
		Attach(w, a, CompX{F: "a"})
		Attach(w, b, CompX{F: "b"})
		Attach(w, b, CompY{F: "b"})
		Attach(w, a, CompY{F: "a"})

		assert.Equal(t, []EntityID{a.ID, b.ID}, QueryShallow2[CompX, CompY](w).cur.ids)
		assert.Equal(t, []EntityID{b.ID, a.ID}, QueryShallow2[CompY, CompX](w).cur.ids)
	})

	t.Run("swap-removal reorders the driving list", func(t *testing.T) {
		t.Parallel()
		w := NewWorld()
		entities := make([]Entity, 3)
		for i := range entities {
			entities[i] = w.Create()
			Attach(w, entities[i], CompX{F: fmt.Sprint(i)})
		}
		DetachAll[CompX](w, entities[0])

		var order []Entity
		for e := range QueryShallow1[CompX](w).Iter() {
			order = append(order, e)
		}
		assert.Equal(t, []Entity{entities[2], entities[1]}, order)
	})

	t.Run("missing pool yields nothing", func(t *testing.T) {
		t.Parallel()
		w := NewWorld()
		e := w.Create()
		Attach(w, e, CompX{F: "x"})

		_, ok := QueryShallow2[CompX, CompY](w).Next()
		assert.False(t, ok)
		_, ok = QueryDeepMut2[CompY, CompX](w).Next()
		assert.False(t, ok)
	})
}

func TestQuery_DeepMutOverlappingBorrowsPanic(t *testing.T) {
	t.Parallel()
	w := NewWorld()

	e := w.Create()
	Attach(w, e, CompX{F: "A"})
	Attach(w, e, CompY{F: "C"})
	Attach(w, e, CompY{F: "D"})

	// Collecting keeps every row's borrows alive, so the second row borrows CompX #0 again.
	err := recoverError(func() { QueryDeepMut2[CompX, CompY](w).Collect() })
	assert.True(t, eris.Is(err, ErrBorrowConflict), "got %v", err)
}

func TestQuery_PanickingQueryReleasesBorrows(t *testing.T) {
	t.Parallel()

	newWorld := func() (*World, Entity) {
		w := NewWorld()
		e := w.Create()
		Attach(w, e, CompX{F: "A"})
		Attach(w, e, CompY{F: "C"})
		Attach(w, e, CompY{F: "D"})
		return w, e
	}

	testCases := []struct {
		name string
		run  func(w *World, e Entity) error
	}{
		{
			name: "collect conflicting with an earlier row",
			run: func(w *World, _ Entity) error {
				return recoverError(func() { QueryDeepMut2[CompX, CompY](w).Collect() })
			},
		},
		{
			name: "second type of a row already borrowed",
			run: func(w *World, e Entity) error {
				held, ok := GetOne[CompY](w, e)
				if !ok {
					return nil
				}
				defer held.Release()
				return recoverError(func() { QueryShallowMut2[CompX, CompY](w).Next() })
			},
		},
		{
			name: "loop body panics",
			run: func(w *World, _ Entity) error {
				return recoverError(func() {
					for range QueryDeepMut2[CompX, CompY](w).Iter() {
						panic(eris.Wrap(ErrBorrowConflict, "body failed"))
					}
				})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w, e := newWorld()

			err := tc.run(w, e)
			require.True(t, eris.Is(err, ErrBorrowConflict), "got %v", err)

			// Property: nothing stays borrowed once the panic is recovered.
			assert.NotPanics(t, func() {
				x, ok := GetOneMut[CompX](w, e)
				require.True(t, ok)
				x.Release()
				for _, y := range GetAllMut[CompY](w, e) {
					y.Release()
				}
			})
			got, ok := Get[CompX](w, e)
			assert.True(t, ok)
			assert.Equal(t, CompX{F: "A"}, got)
		})
	}
}

func TestQuery_SkipsIDsWithoutLiveEntity(t *testing.T) {
	t.Parallel()
	w := NewWorld()

	e := w.Create()
	Attach(w, e, CompX{F: "live"})
	Attach(w, e, CompY{F: "y"})

	// Only the world attaches through pools, so an orphan id can only be planted from inside.
	p, ok := poolFor[CompX](w)
	require.True(t, ok)
	p.Attach(e.ID+7, CompX{F: "orphan"})

	assert.NotPanics(t, func() {
		var got []string
		for _, row := range QueryShallow1[CompX](w).Iter() {
			got = append(got, row.C1.Get().F)
		}
		assert.Equal(t, []string{"live"}, got)

		rows := QueryDeepMut1[CompX](w).Collect()
		assert.Len(t, rows, 1)
		ReleaseAll(rows)
	})
}

func TestQuery_DeepMutIterReleasesRows(t *testing.T) {
	t.Parallel()
	w := NewWorld()

	e := w.Create()
	Attach(w, e, CompX{F: "A"})
	Attach(w, e, CompY{F: "C"})
	Attach(w, e, CompY{F: "D"})

	assert.NotPanics(t, func() {
		for _, row := range QueryDeepMut2[CompX, CompY](w).Iter() {
			row.C1.Get().F += "+"
			row.C2.Get().F += row.C1.Get().F
		}
	})

	assert.Equal(t, []CompX{{F: "A++"}}, Values[CompX](w, e))
	assert.Equal(t, []CompY{{F: "CA+"}, {F: "DA++"}}, Values[CompY](w, e))
}

func TestQuery_MutableDistinctInstances(t *testing.T) {
	t.Parallel()
	w := NewWorld()

	a, b := w.Create(), w.Create()
	Attach(w, a, Health{Value: 1})
	Attach(w, b, Health{Value: 2})

	// Rows of different entities hold exclusive borrows at the same time.
	rows := QueryShallowMut1[Health](w).Collect()
	require.Len(t, rows, 2)
	for _, row := range rows {
		row.C1.Get().Value *= 10
	}
	ReleaseAll(rows)

	assert.Equal(t, []Health{{Value: 10}}, Values[Health](w, a))
	assert.Equal(t, []Health{{Value: 20}}, Values[Health](w, b))
}

func TestQuery_BreakReleasesBorrows(t *testing.T) {
	t.Parallel()
	w := NewWorld()
	e := w.Create()
	Attach(w, e, Health{Value: 1})
	Attach(w, w.Create(), Health{Value: 2})

	for range QueryShallowMut1[Health](w).Iter() {
		break
	}

	assert.NotPanics(t, func() {
		ref, ok := GetOneMut[Health](w, e)
		require.True(t, ok)
		ref.Release()
	})
}

func TestQuery_MutationDuringDeepIteration(t *testing.T) {
	t.Parallel()

	t.Run("instances attached to the current entity are not visited", func(t *testing.T) {
		t.Parallel()
		w := NewWorld()
		e := w.Create()
		Attach(w, e, CompX{F: "A"})
		Attach(w, e, CompY{F: "B"})

		rows := 0
		for range QueryDeep2[CompX, CompY](w).Iter() {
			Attach(w, e, CompY{F: "late"})
			rows++
		}
		assert.Equal(t, 1, rows)
	})

	t.Run("detaching an instance skips the rest of the entity", func(t *testing.T) {
		t.Parallel()
		w := NewWorld()
		e := w.Create()
		next := w.Create()
		Attach(w, e, CompX{F: "A"})
		Attach(w, e, CompY{F: "B0"})
		Attach(w, e, CompY{F: "B1"})
		Attach(w, next, CompX{F: "N"})
		Attach(w, next, CompY{F: "N"})

		var seen []string
		for _, row := range QueryDeep2[CompX, CompY](w).Iter() {
			seen = append(seen, row.C2.Get().F)
			if row.Entity == e {
				DetachOne[CompY](w, e)
			}
		}
		assert.Equal(t, []string{"B0", "N"}, seen)
	})

	t.Run("entities destroyed ahead of the cursor are skipped", func(t *testing.T) {
		t.Parallel()
		w := NewWorld()
		first, second := w.Create(), w.Create()
		Attach(w, first, Health{Value: 1})
		Attach(w, second, Health{Value: 2})

		var seen []Entity
		for e := range QueryDeep1[Health](w).Iter() {
			seen = append(seen, e)
			w.Destroy(second)
		}
		assert.Equal(t, []Entity{first}, seen)
	})
}

func TestQuery_ArityCoverage(t *testing.T) {
	t.Parallel()
	w := NewWorld()

	full := w.Create()
	Attach(w, full, CompX{F: "x"})
	Attach(w, full, CompY{F: "y"})
	Attach(w, full, Tag{Label: "t"})
	Attach(w, full, Health{Value: 1})
	Attach(w, full, Position{X: 1})
	Attach(w, full, Velocity{X: 2})
	Attach(w, full, Velocity{X: 3})
	partial := w.Create()
	Attach(w, partial, CompX{F: "p"})
	Attach(w, partial, Velocity{X: 9})

	assert.Equal(t, 2, countRows(QueryShallow1[Velocity](w).Collect()))
	assert.Equal(t, 3, countRows(QueryDeep1[Velocity](w).Collect()))
	assert.Equal(t, 2, countRows(QueryShallow2[CompX, Velocity](w).Collect()))
	assert.Equal(t, 1, countRows(QueryShallow3[CompX, CompY, Tag](w).Collect()))
	assert.Equal(t, 1, countRows(QueryShallow4[CompX, CompY, Tag, Health](w).Collect()))
	assert.Equal(t, 1, countRows(QueryShallow5[CompX, CompY, Tag, Health, Position](w).Collect()))
	assert.Equal(t, 2, countRows(QueryDeep4[CompX, CompY, Tag, Velocity](w).Collect()))
	assert.Equal(t, 1, countRows(QueryShallowMut5[CompX, CompY, Tag, Health, Position](w).Collect()))

	var indices [][6]int
	for _, row := range QueryDeepMut6[CompX, CompY, Tag, Health, Position, Velocity](w).Iter() {
		indices = append(indices, row.Indices)
		row.C6.Get().X += 10
	}
	assert.Equal(t, [][6]int{{0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 1}}, indices)
	assert.Equal(t, []Velocity{{X: 12}, {X: 13}}, Values[Velocity](w, full))

	shallow := QueryShallowMut6[CompX, CompY, Tag, Health, Position, Velocity](w).Collect()
	require.Len(t, shallow, 1)
	assert.Equal(t, full, shallow[0].Entity)
	ReleaseAll(shallow)

	deep := QueryDeep6[CompX, CompY, Tag, Health, Position, Velocity](w).Collect()
	assert.Len(t, deep, 2)
	ReleaseAll(deep)
}

// countRows releases rows and returns how many there were.
func countRows[R Releaser](rows []R) int {
	ReleaseAll(rows)
	return len(rows)
}
