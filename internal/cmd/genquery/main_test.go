package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	src, err := generate(3)
	require.NoError(t, err)

	code := string(src)
	assert.True(t, strings.HasPrefix(code, "// Code generated by genquery. DO NOT EDIT."))
	for _, decl := range []string{
		"type Row1[T1 Component] struct",
		"type RowMut3[T1, T2, T3 Component] struct",
		"func QueryShallow2[T1, T2 Component](w *World) *View2[T1, T2]",
		"func QueryDeepMut3[T1, T2, T3 Component](w *World) *ViewMut3[T1, T2, T3]",
	} {
		assert.Contains(t, code, decl)
	}
	assert.NotContains(t, code, "View4")
}

func TestGenerate_MatchesCheckedIn(t *testing.T) {
	t.Parallel()

	want, err := os.ReadFile(filepath.Join("..", "..", "..", "pkg", "ecs", "query_generated.go"))
	require.NoError(t, err)

	got, err := generate(6)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "query_generated.go is stale, run go generate ./pkg/ecs")
}

func TestGenerate_InvalidArity(t *testing.T) {
	t.Parallel()

	_, err := generate(0)
	require.Error(t, err)
}

func TestArity(t *testing.T) {
	t.Parallel()

	a := Arity{N: 3, I: []int{1, 2, 3}}
	assert.Equal(t, "T1, T2, T3", a.Params())
	assert.Equal(t, "T1, T2, T3 Component", a.Constraint())
}
