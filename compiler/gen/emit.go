package gen

import (
	"strconv"

	"github.com/dave/jennifer/jen"
)

// ref builds a reference to an identifier of the tuple package. Files inside
// the tuple package use jen.Id; other packages qualify the name.
type ref func(name string) *jen.Statement

func localRef(name string) *jen.Statement { return jen.Id(name) }

func qualRef(path string) ref {
	return func(name string) *jen.Statement { return jen.Qual(path, name) }
}

// typeParams returns the declaration list [T0, T1, ..., Tn-1 any].
func typeParams(n int) []jen.Code {
	ps := make([]jen.Code, n)
	for i := range n {
		ps[i] = jen.Id(TypeParam(i))
	}
	ps[n-1] = jen.Id(TypeParam(n - 1)).Any()
	return ps
}

// typeArgs returns the instantiation list T0, T1, ..., Tn-1.
func typeArgs(n int) []jen.Code {
	as := make([]jen.Code, n)
	for i := range n {
		as[i] = jen.Id(TypeParam(i))
	}
	return as
}

func fullShape(n int) Shape {
	s := make(Shape, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// shapeType renders the tuple type of a shape, e.g. Tuple2[T0, T2].
func shapeType(r ref, s Shape) *jen.Statement {
	if len(s) == 0 {
		return r(TupleName(0))
	}
	args := make([]jen.Code, len(s))
	for i, p := range s {
		args[i] = jen.Id(TypeParam(p))
	}
	return r(s.TypeName()).Types(args...)
}

// shapeValue renders a composite literal of a shape, taking the value of
// each slot from src.
func shapeValue(r ref, s Shape, src func(p int) jen.Code) *jen.Statement {
	return shapeType(r, s).ValuesFunc(func(g *jen.Group) {
		for i, p := range s {
			g.Id(FieldName(i)).Op(":").Add(src(p))
		}
	})
}

// genIndex emits the position markers and the Index constraint.
func genIndex(f *jen.File, markers []Marker) {
	for _, m := range markers {
		f.Commentf("%s marks position %d of a tuple.", m.Name(), m.Index)
		f.Type().Id(m.Name()).Struct()
	}
	f.Comment("Index is satisfied by every position marker.")
	f.Type().Id("Index").Interface(jen.UnionFunc(func(g *jen.Group) {
		for _, m := range markers {
			g.Id(m.Name())
		}
	}))
}

// genEmpty emits Tuple0.
func genEmpty(f *jen.File) {
	name := TupleName(0)
	f.Commentf("%s is the empty tuple. It is the remainder of a popped %s and the", name, TupleName(1))
	f.Comment("right half of a split at the last position.")
	f.Type().Id(name).Struct()

	f.Comment("Len returns the number of elements in the tuple.")
	f.Func().Params(jen.Id(name)).Id("Len").Params().Int().Block(
		jen.Return(jen.Lit(0)),
	)
}

// genTuple emits the tuple type of arity s with its constructor.
func genTuple(f *jen.File, s int) {
	name := TupleName(s)
	f.Commentf("%s is a fixed-size sequence of %d heterogeneous elements.", name, s)
	f.Type().Id(name).Types(typeParams(s)...).StructFunc(func(g *jen.Group) {
		for i := range s {
			g.Id(FieldName(i)).Id(TypeParam(i))
		}
	})

	ctor := "New" + strconv.Itoa(s)
	f.Commentf("%s returns a %s holding the given values.", ctor, name)
	f.Func().Id(ctor).Types(typeParams(s)...).ParamsFunc(func(g *jen.Group) {
		for i := range s {
			g.Id("v" + strconv.Itoa(i)).Id(TypeParam(i))
		}
	}).Add(shapeType(localRef, fullShape(s))).Block(
		jen.Return(shapeValue(localRef, fullShape(s), func(p int) jen.Code {
			return jen.Id("v" + strconv.Itoa(p))
		})),
	)

	f.Comment("Len returns the number of elements in the tuple.")
	f.Func().Params(shapeType(localRef, fullShape(s))).Id("Len").Params().Int().Block(
		jen.Return(jen.Lit(s)),
	)
}

// genArtifact emits the accessor of one (arity, position) pair. All shapes
// come from the artifact; nothing here depends on other artifacts.
func genArtifact(f *jen.File, a *Artifact) {
	tuple := func() *jen.Statement { return shapeType(localRef, fullShape(a.Arity)) }
	acc := func() *jen.Statement { return jen.Id(a.Name()).Types(typeArgs(a.Arity)...) }
	elem := func() *jen.Statement { return jen.Id(a.Elem()) }
	field := func(p int) jen.Code { return jen.Id("a").Dot("t").Dot(FieldName(p)) }
	recv := func() *jen.Statement { return jen.Id("a").Add(acc()) }

	f.Commentf("%s accesses position %d of a %s.", a.Name(), a.Position, TupleName(a.Arity))
	f.Type().Id(a.Name()).Types(typeParams(a.Arity)...).Struct(
		jen.Id("t").Op("*").Add(tuple()),
	)

	f.Commentf("%s returns the accessor for position %d.", a.Method(), a.Position)
	f.Func().Params(jen.Id("t").Op("*").Add(tuple())).Id(a.Method()).Params().Add(acc()).Block(
		jen.Return(acc().Values(jen.Id("t").Op(":").Id("t"))),
	)

	f.Comment("Index returns the position of the element.")
	f.Func().Params(acc()).Id("Index").Params().Int().Block(
		jen.Return(jen.Lit(a.Position)),
	)

	f.Comment("Marker returns the position marker.")
	f.Func().Params(acc()).Id("Marker").Params().Id(a.Marker.Name()).Block(
		jen.Return(jen.Id(a.Marker.Name()).Values()),
	)

	f.Commentf("Get returns the element at position %d.", a.Position)
	f.Func().Params(recv()).Id("Get").Params().Add(elem()).Block(
		jen.Return(field(a.Position)),
	)

	f.Commentf("Ptr returns a pointer to the element at position %d.", a.Position)
	f.Func().Params(recv()).Id("Ptr").Params().Op("*").Add(elem()).Block(
		jen.Return(jen.Op("&").Add(field(a.Position))),
	)

	f.Commentf("Set replaces the element at position %d.", a.Position)
	f.Func().Params(recv()).Id("Set").Params(jen.Id("v").Add(elem())).Block(
		jen.Add(field(a.Position)).Op("=").Id("v"),
	)

	f.Commentf("Map replaces the element at position %d with the result of fn.", a.Position)
	f.Func().Params(recv()).Id("Map").Params(jen.Id("fn").Func().Params(elem()).Add(elem())).Block(
		jen.Add(field(a.Position)).Op("=").Id("fn").Call(field(a.Position)),
	)

	f.Commentf("Pop returns the element at position %d and the remaining elements in order.", a.Position)
	f.Func().Params(recv()).Id("Pop").Params().Params(elem(), shapeType(localRef, a.Remainder)).Block(
		jen.Return(field(a.Position), shapeValue(localRef, a.Remainder, field)),
	)

	f.Commentf("SplitAt returns positions 0 through %d and the positions after them.", a.Position)
	f.Func().Params(recv()).Id("SplitAt").Params().Params(shapeType(localRef, a.Left), shapeType(localRef, a.Right)).Block(
		jen.Return(shapeValue(localRef, a.Left, field), shapeValue(localRef, a.Right, field)),
	)
}

// genArity emits the tuple of arity s and every accessor for it.
func genArity(f *jen.File, p *Plan, s int) {
	genTuple(f, s)
	for _, a := range p.Arity(s) {
		genArtifact(f, a)
	}
}
