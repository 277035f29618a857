// Package tuple provides fixed-arity heterogeneous tuples with typed access
// by position.
//
// A TupleN holds N values of independent types in fields V0 through V(N-1).
// AtI returns the accessor for position I. The accessor reads, writes and
// transforms the element in place, removes it with Pop and splits the tuple
// right after it with SplitAt. The result types of Pop and SplitAt are
// fixed per position, so a position beyond the arity of a tuple, or a
// mismatched element type, is a compile error:
//
//	t := tuple.New3("ada", 'L', 36)
//	name, rest := t.At0().Pop() // string, Tuple2[rune, int]
//	t.At2().Map(func(age int) int { return age + 1 })
//	left, right := t.At1().SplitAt() // Tuple2[string, rune], Tuple1[int]
//
// Every accessor of position I at arity N implements
// Position[IndexI, TI, Rem, Left, Right], which lets generic code require
// "an accessor of position I" without naming the tuple.
//
// The package is generated by tuplegen from tuplegen.yaml at the module
// root; run go generate after changing the maximum arity.
package tuple

//go:generate go run ../cmd/tuplegen generate --config ../tuplegen.yaml
