package testutils

import "github.com/raven-engine/raven/pkg/assert"

const maxGenDepth = 32

type genDigit struct{ value, bound uint32 }

// Gen enumerates every sequence of bounded choices a test body makes, one sequence per loop:
//
//	g := testutils.NewGen()
//	for !g.Done() {
//		n := g.Intn(3) // visits 0, 1, 2, 3 across iterations
//		...
//	}
//
// Each iteration records the choices made and their bounds. Advancing bumps the rightmost choice
// that is still below its bound and resets everything to its right, so the sequences come out in
// lexicographic order. See https://matklad.github.io/2021/11/07/generate-all-the-things.html.
type Gen struct {
	started bool
	digits  [maxGenDepth]genDigit
	pos     int
	depth   int
}

func NewGen() *Gen {
	return &Gen{}
}

// Done reports whether every sequence has been visited. It must be called once before each
// iteration, including the first.
func (g *Gen) Done() bool {
	if !g.started {
		g.started = true
		return false
	}
	for i := g.depth - 1; i >= 0; i-- {
		if g.digits[i].value < g.digits[i].bound {
			g.digits[i].value++
			g.depth = i + 1
			g.pos = 0
			return false
		}
	}
	return true
}

func (g *Gen) next(bound uint32) uint32 {
	assert.That(g.pos < maxGenDepth, "gen: more than %d choices in one iteration", maxGenDepth)
	if g.pos == g.depth {
		g.digits[g.pos] = genDigit{}
		g.depth++
	}
	d := &g.digits[g.pos]
	d.bound = bound
	g.pos++
	return d.value
}

// Intn returns a value in [0, bound].
func (g *Gen) Intn(bound int) int {
	return int(g.next(uint32(bound))) //nolint:gosec // bound is small in tests
}

// Range returns a value in [lo, hi].
func (g *Gen) Range(lo, hi int) int {
	assert.That(lo <= hi, "gen: empty range [%d, %d]", lo, hi)
	return lo + g.Intn(hi-lo)
}

func (g *Gen) Bool() bool {
	return g.Intn(1) == 1
}

// Pick returns one element of a non-empty slice.
func Pick[T any](g *Gen, s []T) T {
	assert.That(len(s) > 0, "gen: pick from empty slice")
	return s[g.Intn(len(s)-1)]
}
