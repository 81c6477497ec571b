package pgqb

import (
	"database/sql"
	"database/sql/driver"
	"reflect"
	"time"
	"unsafe"

	"github.com/mitranim/refut"
)

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed from
the standard library. Reasonably safe. Should not be used when the underlying
byte array is volatile.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func appendStr(buf *[]byte, str string) {
	*buf = append(*buf, str...)
}

func appendEnclosed(buf *[]byte, prefix, infix, suffix string) {
	appendStr(buf, prefix)
	appendStr(buf, infix)
	appendStr(buf, suffix)
}

// Appends a single space unless the buffer is empty.
func appendSep(buf *[]byte) {
	if len(*buf) > 0 {
		appendStr(buf, ` `)
	}
}

// Appends `keyword` followed by the items joined by `infix`. Nop when empty.
func appendSection(buf *[]byte, keyword string, items []string, infix string) {
	if len(items) == 0 {
		return
	}
	appendSep(buf)
	appendStr(buf, keyword)
	appendStr(buf, ` `)
	for i, val := range items {
		if i > 0 {
			appendStr(buf, infix)
		}
		appendStr(buf, val)
	}
}

func try(err error) {
	if err != nil {
		panic(err)
	}
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}

func isNil(val any) bool {
	return val == nil || isValueNil(reflect.ValueOf(val))
}

func isValueNil(val reflect.Value) bool {
	return !val.IsValid() || isNilable(val.Kind()) && val.IsNil()
}

func isNilable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return true
	default:
		return false
	}
}

func normNil(val any) any {
	if isNil(val) {
		return nil
	}
	return val
}

/*
Normalizes a value by attempting SQL encoding. Used for detecting values that
are equivalent to SQL `null`, such as nil pointers and `sql.Null*` with
`.Valid = false`.
*/
func norm(val any) (any, error) {
	valuer, ok := val.(driver.Valuer)
	if ok {
		if refut.IsNil(valuer) {
			return nil, nil
		}

		var err error
		val, err = valuer.Value()
		if err != nil {
			return nil, err
		}
	}
	return normNil(val), nil
}

/*
Returns a copy of the value which doesn't share mutable memory with the input,
as far as this is possible without knowing the type. Byte slices, other slices
and maps are shallow-copied. Types implementing `Duper` are copied by their own
method. Pointers and everything else are returned as-is.
*/
func dup(val any) any {
	switch val := val.(type) {
	case nil:
		return nil
	case Duper:
		return val.Dup()
	case []byte:
		if val == nil {
			return val
		}
		return append(make([]byte, 0, len(val)), val...)
	}

	rval := reflect.ValueOf(val)

	switch rval.Kind() {
	case reflect.Slice:
		if rval.IsNil() {
			return val
		}
		out := reflect.MakeSlice(rval.Type(), rval.Len(), rval.Len())
		reflect.Copy(out, rval)
		return out.Interface()

	case reflect.Map:
		if rval.IsNil() {
			return val
		}
		out := reflect.MakeMapWithSize(rval.Type(), rval.Len())
		iter := rval.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface()

	default:
		return val
	}
}

func sfieldColumnName(sfield reflect.StructField) string {
	return refut.TagIdent(sfield.Tag.Get(`db`))
}

var timeRtype = reflect.TypeOf(time.Time{})
var sqlScannerRtype = reflect.TypeOf((*sql.Scanner)(nil)).Elem()

func isScannableRtype(rtype reflect.Type) bool {
	return rtype != nil &&
		(rtype == timeRtype || reflect.PtrTo(rtype).Implements(sqlScannerRtype))
}
