// Command genquery writes the fixed-arity query views of package ecs.
//
// Usage:
//
//	go run ./internal/cmd/genquery --out pkg/ecs/query_generated.go --max 6
package main

import (
	"bytes"
	"go/format"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

type variant struct {
	Row     string // Row type name prefix
	View    string // View type name prefix
	Shallow string // Shallow constructor prefix
	Deep    string // Deep constructor prefix
	Ref     string // Borrow guard type
	Borrow  string // cell method producing the guard
	Desc    string
}

var variants = []variant{ //nolint:gochecknoglobals // generator input
	{Row: "Row", View: "View", Shallow: "QueryShallow", Deep: "QueryDeep", Ref: "Ref", Borrow: "borrow",
		Desc: "read-only"},
	{Row: "RowMut", View: "ViewMut", Shallow: "QueryShallowMut", Deep: "QueryDeepMut", Ref: "RefMut",
		Borrow: "borrowMut", Desc: "mutable"},
}

type Arity struct {
	N int
	I []int
}

func (a Arity) Params() string {
	names := make([]string, len(a.I))
	for k, i := range a.I {
		names[k] = "T" + strconv.Itoa(i)
	}
	return strings.Join(names, ", ")
}

func (a Arity) Constraint() string {
	return a.Params() + " Component"
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	out := pflag.StringP("out", "o", "query_generated.go", "output file")
	maxArity := pflag.Int("max", 6, "largest arity to generate")
	pflag.Parse()

	src, err := generate(*maxArity)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to generate query views")
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		logger.Fatal().Err(err).Str("out", *out).Msg("failed to write query views")
	}
	logger.Info().Str("out", *out).Int("max", *maxArity).Msg("generated query views")
}

func generate(maxArity int) ([]byte, error) {
	if maxArity < 1 {
		return nil, eris.Errorf("max arity must be positive, got %d", maxArity)
	}

	tmpl, err := template.New("views").Parse(viewTemplate)
	if err != nil {
		return nil, eris.Wrap(err, "failed to parse template")
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	for n := 1; n <= maxArity; n++ {
		a := Arity{N: n}
		for i := 1; i <= n; i++ {
			a.I = append(a.I, i)
		}
		for _, v := range variants {
			if err := tmpl.Execute(&buf, struct {
				Arity
				V variant
			}{a, v}); err != nil {
				return nil, eris.Wrapf(err, "failed to render arity %d", n)
			}
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, eris.Wrap(err, "generated code does not parse")
	}
	return src, nil
}

const header = `// Code generated by genquery. DO NOT EDIT.

package ecs

import "iter"
`

const viewTemplate = `
// -------------------------------------------------------------------------------------------------
// Arity {{.N}}, {{.V.Desc}}
// -------------------------------------------------------------------------------------------------

// {{.V.Row}}{{.N}} is one result of a {{.V.Desc}} query over {{.N}} component types. Indices holds
// the instance index fetched for each type.
type {{.V.Row}}{{.N}}[{{.Constraint}}] struct {
	Entity  Entity
	Indices [{{.N}}]int
{{- range .I}}
	C{{.}} *{{$.V.Ref}}[T{{.}}]
{{- end}}
}

// Release releases every borrow held by the row.
func (r {{.V.Row}}{{.N}}[{{.Params}}]) Release() {
{{- range .I}}
	r.C{{.}}.Release()
{{- end}}
}

// borrow fills the guards of r. If a borrow panics, the guards already taken are released.
func (r *{{.V.Row}}{{.N}}[{{.Params}}]) borrow({{range $k, $i := .I}}{{if $k}}, {{end}}c{{$i}} *cell[T{{$i}}]{{end}}) {
	done := false
	defer func() {
		if !done {
			r.Release()
		}
	}()
{{- range .I}}
	r.C{{.}} = c{{.}}.{{$.V.Borrow}}()
{{- end}}
	done = true
}

// {{.V.View}}{{.N}} iterates the entities holding every one of {{.N}} component types.
type {{.V.View}}{{.N}}[{{.Constraint}}] struct {
	cur *cursor
{{- range .I}}
	p{{.}} *Pool[T{{.}}]
{{- end}}
}

// {{.V.Shallow}}{{.N}} yields the first instance of each type for every matching entity.
func {{.V.Shallow}}{{.N}}[{{.Constraint}}](w *World) *{{.V.View}}{{.N}}[{{.Params}}] {
	return new{{.V.View}}{{.N}}[{{.Params}}](w, false)
}

// {{.V.Deep}}{{.N}} yields every combination of instances for every matching entity.
func {{.V.Deep}}{{.N}}[{{.Constraint}}](w *World) *{{.V.View}}{{.N}}[{{.Params}}] {
	return new{{.V.View}}{{.N}}[{{.Params}}](w, true)
}

func new{{.V.View}}{{.N}}[{{.Constraint}}](w *World, deep bool) *{{.V.View}}{{.N}}[{{.Params}}] {
{{- range .I}}
	p{{.}}, ok{{.}} := poolFor[T{{.}}](w)
{{- end}}
	return &{{.V.View}}{{.N}}[{{.Params}}]{
		cur: newCursor(w, deep{{range .I}}, erase(p{{.}}, ok{{.}}){{end}}),
{{- range .I}}
		p{{.}}: p{{.}},
{{- end}}
	}
}

// Next returns the next row. Its borrows are held until the row is released.
func (v *{{.V.View}}{{.N}}[{{.Params}}]) Next() ({{.V.Row}}{{.N}}[{{.Params}}], bool) {
	for {
		id, idx, ok := v.cur.next()
		if !ok {
			return {{.V.Row}}{{.N}}[{{.Params}}]{}, false
		}
{{- range $k, $i := .I}}
		c{{$i}} := v.p{{$i}}.cellAt(id, idx[{{$k}}])
{{- end}}
		if {{range $k, $i := .I}}{{if $k}} || {{end}}c{{$i}} == nil{{end}} {
			v.cur.skip()
			continue
		}
		row := {{.V.Row}}{{.N}}[{{.Params}}]{
			Entity:  v.cur.entity(id),
			Indices: [{{.N}}]int{ {{- range $k, $i := .I}}{{if $k}}, {{end}}idx[{{$k}}]{{end -}} },
		}
		row.borrow({{range $k, $i := .I}}{{if $k}}, {{end}}c{{$i}}{{end}})
		return row, true
	}
}

// Iter ranges over the remaining rows, releasing each row when the loop body returns or panics.
func (v *{{.V.View}}{{.N}}[{{.Params}}]) Iter() iter.Seq2[Entity, {{.V.Row}}{{.N}}[{{.Params}}]] {
	return func(yield func(Entity, {{.V.Row}}{{.N}}[{{.Params}}]) bool) {
		for {
			row, ok := v.Next()
			if !ok || !yieldReleased(yield, row.Entity, row) {
				return
			}
		}
	}
}

// Collect returns every remaining row with its borrows held. If a row cannot be borrowed, the rows
// collected so far are released before the panic propagates.
func (v *{{.V.View}}{{.N}}[{{.Params}}]) Collect() []{{.V.Row}}{{.N}}[{{.Params}}] {
	return collectRows(v.Next)
}
`
