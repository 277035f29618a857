package gen

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape is an ordered list of type-parameter indices of a source tuple.
// The shape [0 2] over Tuple3[T0, T1, T2] describes Tuple2[T0, T2].
type Shape []int

// Len returns the arity of the tuple the shape describes.
func (s Shape) Len() int { return len(s) }

// TypeName returns the Go type name of the tuple the shape describes.
func (s Shape) TypeName() string { return TupleName(len(s)) }

// String renders the shape as a type expression, for example "Tuple2[T0, T2]".
func (s Shape) String() string {
	if len(s) == 0 {
		return TupleName(0)
	}
	params := make([]string, len(s))
	for i, p := range s {
		params[i] = TypeParam(p)
	}
	return TupleName(len(s)) + "[" + strings.Join(params, ", ") + "]"
}

// Artifact is the fully derived description of the accessor for one
// (arity, position) pair.
type Artifact struct {
	Arity     int
	Position  int
	Marker    Marker
	Remainder Shape // every position except Position, order preserved
	Left      Shape // positions 0..Position inclusive
	Right     Shape // positions Position+1..Arity-1
}

// Name returns the Go type name of the accessor.
func (a *Artifact) Name() string {
	return TupleName(a.Arity) + "At" + strconv.Itoa(a.Position)
}

// Method returns the name of the tuple method that returns the accessor.
func (a *Artifact) Method() string {
	return "At" + strconv.Itoa(a.Position)
}

// Field returns the tuple field the accessor reads and writes.
func (a *Artifact) Field() string {
	return FieldName(a.Position)
}

// Elem returns the type parameter of the accessed element.
func (a *Artifact) Elem() string {
	return TypeParam(a.Position)
}

// String describes the artifact and its derived shapes.
func (a *Artifact) String() string {
	return fmt.Sprintf("%s: %s pop=%s split=(%s, %s)",
		a.Name(), a.Elem(), a.Remainder, a.Left, a.Right)
}

// Derive computes the artifact for position i of a tuple of arity s.
// The three result shapes are fixed here so the emitted accessor never
// inspects its position at run time.
func Derive(s, i int) (*Artifact, error) {
	if s < 1 {
		return nil, NewRangeError(s, -1, 0, "arity must be at least 1")
	}
	if i < 0 || i >= s {
		return nil, NewRangeError(s, i, 0, "position must be in [0, arity)")
	}
	a := &Artifact{
		Arity:     s,
		Position:  i,
		Marker:    Marker{Index: i},
		Remainder: make(Shape, 0, s-1),
		Left:      make(Shape, 0, i+1),
		Right:     make(Shape, 0, s-i-1),
	}
	for p := range s {
		if p != i {
			a.Remainder = append(a.Remainder, p)
		}
		if p <= i {
			a.Left = append(a.Left, p)
		} else {
			a.Right = append(a.Right, p)
		}
	}
	return a, nil
}

// Plan is the complete artifact set for a maximum arity.
type Plan struct {
	MaxArity  int
	Markers   []Marker
	artifacts [][]*Artifact // artifacts[s-1][i]
}

// NewPlan derives every artifact for arities 1..n.
func NewPlan(n int) (*Plan, error) {
	if n < 1 {
		return nil, NewConfigError("MaxArity", n, "maximum arity must be at least 1")
	}
	p := &Plan{
		MaxArity:  n,
		Markers:   Markers(n),
		artifacts: make([][]*Artifact, n),
	}
	for s := 1; s <= n; s++ {
		row := make([]*Artifact, s)
		for i := range s {
			a, err := Derive(s, i)
			if err != nil {
				return nil, err
			}
			row[i] = a
		}
		p.artifacts[s-1] = row
	}
	return p, nil
}

// Arity returns the artifacts of arity s ordered by position.
func (p *Plan) Arity(s int) []*Artifact {
	if s < 1 || s > p.MaxArity {
		return nil
	}
	return p.artifacts[s-1]
}

// Lookup returns the artifact for (s, i).
func (p *Plan) Lookup(s, i int) (*Artifact, error) {
	if s < 1 || s > p.MaxArity {
		return nil, NewRangeError(s, -1, p.MaxArity, "no tuple of this arity was generated")
	}
	if i < 0 || i >= s {
		return nil, NewRangeError(s, i, p.MaxArity, "position must be in [0, arity)")
	}
	return p.artifacts[s-1][i], nil
}

// All returns every artifact, arities outward and positions inward.
func (p *Plan) All() []*Artifact {
	all := make([]*Artifact, 0, p.Count())
	for _, row := range p.artifacts {
		all = append(all, row...)
	}
	return all
}

// Count returns the number of artifacts, n(n+1)/2.
func (p *Plan) Count() int {
	var c int
	for _, row := range p.artifacts {
		c += len(row)
	}
	return c
}

// TupleName returns the Go type name of the tuple of arity s.
func TupleName(s int) string { return "Tuple" + strconv.Itoa(s) }

// TypeParam returns the name of the i-th type parameter.
func TypeParam(i int) string { return "T" + strconv.Itoa(i) }

// FieldName returns the name of the i-th tuple field.
func FieldName(i int) string { return "V" + strconv.Itoa(i) }
