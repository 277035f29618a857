package gen

import (
	"fmt"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/typedtuple/compiler/load"
)

// Record is a resolved named tuple declaration.
type Record struct {
	Name      string
	Comment   string
	Fields    []*RecordField
	Accessors []*Accessor
	// Ambiguous lists the element types that have no by-type accessor
	// because several unnamed positions share them.
	Ambiguous []string
}

// Arity returns the number of elements in the record.
func (r *Record) Arity() int { return len(r.Fields) }

// RecordField is one element of a record.
type RecordField struct {
	Position int
	Type     string // type expression as declared
	Import   string // import path of a qualified type
	Name     string // explicit accessor name, if any

	prefix string // leading "[]" and "*" tokens
	ident  string // unqualified type name, empty for composite types
}

// key identifies the element type across positions. The builtin aliases
// byte and rune share a key with uint8 and int32.
func (f *RecordField) key() string {
	t := strings.Join(strings.Fields(f.Type), "")
	if f.Import == "" {
		switch f.ident {
		case "byte":
			t = f.prefix + "uint8"
		case "rune":
			t = f.prefix + "int32"
		}
	}
	return f.Import + "|" + t
}

// code renders the field type.
func (f *RecordField) code() jen.Code {
	if f.Import == "" {
		return jen.Id(f.Type)
	}
	if f.prefix == "" {
		return jen.Qual(f.Import, f.ident)
	}
	return jen.Op(f.prefix).Qual(f.Import, f.ident)
}

// Accessor is a by-type (or by-name) method on a record that returns the
// position accessor of one element.
type Accessor struct {
	Name     string
	Position int
}

// resolveRecords validates record declarations against the plan.
func resolveRecords(c *Config, p *Plan) ([]*Record, error) {
	var (
		recs = make([]*Record, 0, len(c.Records))
		seen = make(map[string]bool)
	)
	for _, lr := range c.Records {
		r, err := resolveRecord(lr, p)
		if err != nil {
			return nil, err
		}
		if seen[r.Name] {
			return nil, NewRecordError(r.Name, -1, "declared more than once", nil)
		}
		if !c.SeparateRecords() && reservedName(r.Name) {
			return nil, NewRecordError(r.Name, -1, "name collides with a generated tuple identifier", nil)
		}
		seen[r.Name] = true
		recs = append(recs, r)
	}
	return recs, nil
}

func resolveRecord(lr *load.Record, p *Plan) (*Record, error) {
	name := inflect.Camelize(lr.Name)
	if !token.IsIdentifier(name) || !token.IsExported(name) {
		return nil, NewRecordError(lr.Name, -1, "name does not form an exported Go identifier", nil)
	}
	if len(lr.Fields) == 0 {
		return nil, NewRecordError(name, -1, "record has no fields", nil)
	}
	if len(lr.Fields) > p.MaxArity {
		return nil, NewRangeError(len(lr.Fields), -1, p.MaxArity,
			fmt.Sprintf("record %s has more elements than the maximum arity", name))
	}
	r := &Record{
		Name:    name,
		Comment: lr.Comment,
		Fields:  make([]*RecordField, len(lr.Fields)),
	}
	for i, fd := range lr.Fields {
		rf, err := resolveField(name, i, fd)
		if err != nil {
			return nil, err
		}
		r.Fields[i] = rf
	}

	// Group positions by element type.
	var (
		order  []string
		groups = make(map[string][]int)
	)
	for _, rf := range r.Fields {
		k := rf.key()
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], rf.Position)
	}

	used := make(map[string]int)
	addAccessor := func(method string, pos int) error {
		if prev, ok := used[method]; ok {
			return NewRecordError(name, pos, fmt.Sprintf("accessor %s already used by field %d", method, prev), nil)
		}
		used[method] = pos
		r.Accessors = append(r.Accessors, &Accessor{Name: method, Position: pos})
		return nil
	}
	for _, rf := range r.Fields {
		if rf.Name == "" {
			continue
		}
		if err := addAccessor("By"+inflect.Camelize(rf.Name), rf.Position); err != nil {
			return nil, err
		}
	}
	for _, k := range order {
		positions := groups[k]
		var unnamed []int
		for _, pos := range positions {
			if r.Fields[pos].Name == "" {
				unnamed = append(unnamed, pos)
			}
		}
		if len(unnamed) == 0 {
			continue
		}
		rf := r.Fields[unnamed[0]]
		if len(positions) > 1 {
			if lr.Strict {
				return nil, NewAmbiguityError(name, rf.Type, unnamed)
			}
			r.Ambiguous = append(r.Ambiguous, rf.Type)
			continue
		}
		suffix := typeSuffix(rf)
		if suffix == "" {
			if lr.Strict {
				return nil, NewRecordError(name, rf.Position, fmt.Sprintf("type %s needs a name to be addressed", rf.Type), nil)
			}
			continue
		}
		if err := addAccessor("By"+suffix, rf.Position); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func resolveField(record string, pos int, fd *load.Field) (*RecordField, error) {
	if fd == nil || strings.TrimSpace(fd.Type) == "" {
		return nil, NewRecordError(record, pos, "missing type", nil)
	}
	rf := &RecordField{
		Position: pos,
		Type:     strings.TrimSpace(fd.Type),
		Import:   fd.Import,
		Name:     fd.Name,
	}
	if _, err := parser.ParseExpr(rf.Type); err != nil {
		return nil, NewRecordError(record, pos, "invalid type expression", err)
	}
	if rf.Name != "" && !token.IsIdentifier(inflect.Camelize(rf.Name)) {
		return nil, NewRecordError(record, pos, fmt.Sprintf("name %q does not form a Go identifier", rf.Name), nil)
	}
	rest := rf.Type
	for {
		switch {
		case strings.HasPrefix(rest, "[]"):
			rf.prefix += "[]"
			rest = rest[2:]
			continue
		case strings.HasPrefix(rest, "*"):
			rf.prefix += "*"
			rest = rest[1:]
			continue
		}
		break
	}
	pkg, ident, qualified := strings.Cut(rest, ".")
	switch {
	case qualified:
		if rf.Import == "" {
			return nil, NewRecordError(record, pos, fmt.Sprintf("qualified type %s needs an import path", rf.Type), nil)
		}
		if !token.IsIdentifier(pkg) || !token.IsIdentifier(ident) {
			return nil, NewRecordError(record, pos, fmt.Sprintf("unsupported qualified type %s", rf.Type), nil)
		}
		rf.ident = ident
	case rf.Import != "":
		return nil, NewRecordError(record, pos, fmt.Sprintf("import %s given for unqualified type %s", rf.Import, rf.Type), nil)
	case token.IsIdentifier(rest):
		rf.ident = rest
	}
	return rf, nil
}

// typeSuffix derives the accessor suffix from the element type:
// int64 -> Int64, time.Time -> Time, []byte -> ByteSlice, *User -> UserPtr.
// Composite types without a name yield "".
func typeSuffix(rf *RecordField) string {
	if rf.ident == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(cases.Title(language.English, cases.NoLower).String(rf.ident))
	for i := len(rf.prefix) - 1; i >= 0; i-- {
		switch rf.prefix[i] {
		case '*':
			b.WriteString("Ptr")
		case ']':
			b.WriteString("Slice")
			i--
		}
	}
	return b.String()
}

// reservedName reports whether name is produced by the tuple generator.
func reservedName(name string) bool {
	switch name {
	case "Index", "Position":
		return true
	}
	for _, prefix := range []string{"Tuple", "Index", "New"} {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok || rest == "" {
			continue
		}
		num, _, _ := strings.Cut(rest, "At")
		if _, err := strconv.Atoi(num); err == nil {
			return true
		}
	}
	return false
}

// genRecords emits the record types, constructors and accessors.
func genRecords(f *jen.File, r ref, recs []*Record) {
	for _, rec := range recs {
		genRecord(f, r, rec)
	}
}

func genRecord(f *jen.File, r ref, rec *Record) {
	n := rec.Arity()
	elems := func() []jen.Code {
		cs := make([]jen.Code, n)
		for i, rf := range rec.Fields {
			cs[i] = rf.code()
		}
		return cs
	}
	tuple := func() *jen.Statement { return r(TupleName(n)).Types(elems()...) }

	if rec.Comment != "" {
		f.Comment(rec.Comment)
	} else {
		types := make([]string, n)
		for i, rf := range rec.Fields {
			types[i] = rf.Type
		}
		f.Commentf("%s is a named tuple of (%s).", rec.Name, strings.Join(types, ", "))
	}
	f.Type().Id(rec.Name).Struct(tuple())

	ctor := "New" + rec.Name
	f.Commentf("%s returns a %s holding the given values.", ctor, rec.Name)
	f.Func().Id(ctor).ParamsFunc(func(g *jen.Group) {
		for i, rf := range rec.Fields {
			g.Id("v" + strconv.Itoa(i)).Add(rf.code())
		}
	}).Id(rec.Name).Block(
		jen.Return(jen.Id(rec.Name).Values(
			jen.Id(TupleName(n)).Op(":").Add(tuple()).ValuesFunc(func(g *jen.Group) {
				for i := range n {
					g.Id(FieldName(i)).Op(":").Id("v" + strconv.Itoa(i))
				}
			}),
		)),
	)

	for _, acc := range rec.Accessors {
		rf := rec.Fields[acc.Position]
		accType := r(TupleName(n) + "At" + strconv.Itoa(acc.Position)).Types(elems()...)
		f.Commentf("%s returns the accessor for the %s element at position %d.", acc.Name, rf.Type, acc.Position)
		f.Func().Params(jen.Id("r").Op("*").Id(rec.Name)).Id(acc.Name).Params().Add(accType).Block(
			jen.Return(jen.Id("r").Dot("At" + strconv.Itoa(acc.Position)).Call()),
		)
	}
}
