package pgqb

import (
	"fmt"
	"reflect"

	"github.com/lib/pq"
	"github.com/mitranim/refut"
)

/*
State shared by statements with a "where" clause: the parameter bucket and the
condition fragments. Embedded in `Select` and `Update`, which get the methods
below. Conditions are joined with "AND" in call order. Parameter indexes follow
the order of pushes, not the order in which clauses appear in the final text.
*/
type where struct {
	bucket Bucket
	conds  []string
}

/*
Appends a boolean expression verbatim. Any ordinal parameters in the text must
refer to values already in the bucket, for example obtained via `.Param`:

	qb := NewSelect(`users`)
	one := qb.Param(18)
	two := qb.Param(28)
	qb.WhereRaw(fmt.Sprintf(`age = $%d OR age = $%d`, one, two))
*/
func (self *where) WhereRaw(text string) {
	self.conds = append(self.conds, text)
}

/*
Appends a parametrized boolean expression. Ordinal parameters in the text are
local to the provided arguments and start at `$1`. They're renumbered to match
the bucket:

	qb := NewSelect(`users`)
	qb.WhereEq(`active`, true)
	qb.Where(`age = $1 OR age = $2`, 18, 28)
	qb.String() // SELECT * FROM users WHERE active = $1 AND (age = $2 OR age = $3)

The expression is wrapped in parens, since it may contain lower-precedence
operators. Panics on invalid parameters; see `CheckUnused`.
*/
func (self *where) Where(text string, args ...any) {
	self.conds = append(self.conds, `(`+fragment(&self.bucket, text, args)+`)`)
}

// Appends "<field> = $N", pushing the value into the bucket.
func (self *where) WhereEq(field string, val any) {
	self.whereOp(field, ` = `, val)
}

// Appends "<field> <> $N", pushing the value into the bucket.
func (self *where) WhereNe(field string, val any) {
	self.whereOp(field, ` <> `, val)
}

// Appends "<field> IS NULL".
func (self *where) WhereNull(field string) {
	self.conds = append(self.conds, field+` IS NULL`)
}

// Appends "<field> IS NOT NULL".
func (self *where) WhereNotNull(field string) {
	self.conds = append(self.conds, field+` IS NOT NULL`)
}

/*
Appends "<field> = any($N)". The input must be a slice or array; it's copied
and wrapped via `pq.Array`, which makes it usable as a single parameter with
any "database/sql" driver.
*/
func (self *where) WhereAny(field string, slice any) {
	self.whereArray(field, ` = any(`, slice)
}

// Appends "<field> <> all($N)". Inverse of `.WhereAny`.
func (self *where) WhereNotAny(field string, slice any) {
	self.whereArray(field, ` <> all(`, slice)
}

/*
Scans a struct, appending one condition for each field tagged with `db`:
"<col>" = $N for regular values, and "<col>" IS NULL for values that encode to
SQL null, such as nil pointers. Embedded structs are treated as part of the
enclosing struct. The input must be a struct or a struct pointer; a nil pointer
appends nothing. Panics on other inputs.
*/
func (self *where) WhereStruct(val any) {
	traverseStructDbFields(val, func(col string, val any) {
		normed, err := norm(val)
		try(err)

		var buf []byte
		appendEnclosed(&buf, `"`, col, `"`)

		if normed == nil {
			appendStr(&buf, ` IS NULL`)
		} else {
			appendStr(&buf, ` = `)
			self.bucket.param(val).Append(&buf)
		}
		self.conds = append(self.conds, bytesToMutableString(buf))
	})
}

/*
Pushes a value into the bucket, returning its 1-based index for use in
hand-written fragments passed to `.WhereRaw` or `(*Update).SetComputed`.
*/
func (self *where) Param(val any) int { return self.bucket.Push(val) }

func (self *where) whereOp(field, op string, val any) {
	buf := make([]byte, 0, len(field)+len(op)+4)
	appendStr(&buf, field)
	appendStr(&buf, op)
	self.bucket.param(val).Append(&buf)
	self.conds = append(self.conds, bytesToMutableString(buf))
}

func (self *where) whereArray(field, op string, slice any) {
	kind := reflect.ValueOf(slice).Kind()
	if kind != reflect.Slice && kind != reflect.Array {
		panic(ErrInvalidInput.while(`appending array condition`).because(
			fmt.Errorf(`expected slice or array, got %T`, slice),
		))
	}

	buf := make([]byte, 0, len(field)+len(op)+5)
	appendStr(&buf, field)
	appendStr(&buf, op)
	self.bucket.param(pq.Array(dup(slice))).Append(&buf)
	appendStr(&buf, `)`)
	self.conds = append(self.conds, bytesToMutableString(buf))
}

func (self *where) appendWhere(buf *[]byte) {
	appendSection(buf, `WHERE`, self.conds, ` AND `)
}

func (self *where) reify(text string) (string, []any) {
	return text, self.bucket.Consume()
}

func (self *where) tryReify(text string) (_ string, _ []any, err error) {
	defer rec(&err)
	return text, self.bucket.Consume(), nil
}

func traverseStructDbFields(input any, fun func(string, any)) {
	rval := reflect.ValueOf(input)
	if !rval.IsValid() {
		panic(ErrInvalidInput.while(`traversing struct for DB fields`).because(
			fmt.Errorf(`expected struct, got nil`),
		))
	}

	rtype := refut.RtypeDeref(rval.Type())
	if rtype.Kind() != reflect.Struct {
		panic(ErrInvalidInput.while(`traversing struct for DB fields`).because(
			fmt.Errorf(`expected struct, got %q`, rtype),
		))
	}

	if refut.IsRvalNil(rval) {
		return
	}

	err := refut.TraverseStructRval(rval, func(rval reflect.Value, sfield reflect.StructField, _ []int) error {
		colName := sfieldColumnName(sfield)
		if colName == "" {
			return nil
		}
		fun(colName, rval.Interface())
		return nil
	})
	try(err)
}
