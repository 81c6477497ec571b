package pgqb

import (
	"fmt"
	"reflect"

	"github.com/mitranim/refut"
)

/*
Returns the column expressions for a "select" clause listing every `db`-tagged
field of the given struct type. The input may also be a struct pointer, a
struct slice or a pointer to one; nil values are fine as long as they carry the
type. Anything else panics with `ErrInvalidInput`.

Nested structs are flattened into aliased paths, except for `time.Time` and
types implementing `sql.Scanner`, which are treated as plain columns:

	type Inner struct {
		Id string `db:"id"`
	}

	type Outer struct {
		Name  string `db:"name"`
		Inner Inner  `db:"inner"`
	}

	Cols(Outer{}) // []string{`"name"`, `("inner")."id" AS "inner.id"`}
*/
func Cols(dest any) []string {
	rtype := colsRtype(dest)
	if rtype == nil || rtype.Kind() != reflect.Struct {
		panic(ErrInvalidInput.while(`listing struct columns`).because(
			fmt.Errorf(`expected struct, got %v`, rtype),
		))
	}
	return appendStructCols(nil, rtype, nil)
}

func colsRtype(dest any) reflect.Type {
	rtype := reflect.TypeOf(dest)
	if rtype == nil {
		return nil
	}
	rtype = refut.RtypeDeref(rtype)
	if rtype.Kind() == reflect.Slice {
		return refut.RtypeDeref(rtype.Elem())
	}
	return rtype
}

// Path is the chain of enclosing column names, outermost first.
func appendStructCols(out []string, rtype reflect.Type, path []string) []string {
	err := refut.TraverseStructRtype(rtype, func(sfield reflect.StructField, _ []int) error {
		name := sfieldColumnName(sfield)
		if name == "" {
			return nil
		}

		frtype := refut.RtypeDeref(sfield.Type)
		// A nested struct without tagged fields is selected as a single column.
		if frtype.Kind() == reflect.Struct && !isScannableRtype(frtype) {
			prev := len(out)
			out = appendStructCols(out, frtype, append(path[:len(path):len(path)], name))
			if len(out) > prev {
				return nil
			}
		}

		out = append(out, colExpr(path, name))
		return nil
	})
	try(err)
	return out
}

/*
Top-level columns are just quoted. Nested ones select the composite field and
alias it with the dotted path, which is what row scanners expect:

	("outer")."inner"."id" AS "outer.inner.id"
*/
func colExpr(path []string, name string) string {
	var buf []byte
	if len(path) > 0 {
		for i, elem := range path {
			if i == 0 {
				appendEnclosed(&buf, `("`, elem, `")`)
			} else {
				appendEnclosed(&buf, `"`, elem, `"`)
			}
			appendStr(&buf, `.`)
		}
		appendEnclosed(&buf, `"`, name, `"`)
		appendStr(&buf, ` AS `)
	}

	appendStr(&buf, `"`)
	for _, elem := range path {
		appendStr(&buf, elem)
		appendStr(&buf, `.`)
	}
	appendStr(&buf, name)
	appendStr(&buf, `"`)
	return bytesToMutableString(buf)
}
