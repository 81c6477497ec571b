package pgqb

/*
Builder for a single "update" statement. Same usage pattern as `Select`:

	qb := NewUpdate(`users`)
	qb.WhereEq(`id`, 42)
	qb.Set(`name`, `rick`)

	text, args := qb.Reify()

Is equivalent to:

	text := `UPDATE users SET name = $2 WHERE id = $1`
	args := []any{42, `rick`}

Note that parameter indexes follow the order of calls, not the order of
clauses in the rendered text.
*/
type Update struct {
	where
	table     string
	sets      []string
	returning []string
}

// Creates an "update" builder for the given table.
func NewUpdate(table string) *Update { return &Update{table: table} }

// Appends the assignment "<field> = $N", pushing the value into the bucket.
func (self *Update) Set(field string, val any) {
	buf := make([]byte, 0, len(field)+6)
	appendStr(&buf, field)
	appendStr(&buf, ` = `)
	self.bucket.param(val).Append(&buf)
	self.sets = append(self.sets, bytesToMutableString(buf))
}

// Appends the assignment "<field> = <expr>" with the expression included
// verbatim, for example `SetComputed("updated_at", "now()")`.
func (self *Update) SetComputed(field, expr string) {
	self.sets = append(self.sets, field+` = `+expr)
}

/*
Scans a struct, appending the assignment "<col>" = $N for each field tagged
with `db`. Embedded structs are treated as part of the enclosing struct. The
input must be a struct or a struct pointer; a nil pointer appends nothing.
Panics on other inputs.

	qb := NewUpdate(`users`)
	qb.SetStruct(struct {
		Name string `db:"name"`
		Age  int    `db:"age"`
	}{"rick", 70})

	qb.String() // UPDATE users SET "name" = $1, "age" = $2
*/
func (self *Update) SetStruct(val any) {
	traverseStructDbFields(val, func(col string, val any) {
		var buf []byte
		appendEnclosed(&buf, `"`, col, `" = `)
		self.bucket.param(val).Append(&buf)
		self.sets = append(self.sets, bytesToMutableString(buf))
	})
}

// Appends columns or expressions to the "returning" clause.
func (self *Update) Returning(cols ...string) {
	self.returning = append(self.returning, cols...)
}

/*
Renders the statement: "update", "set", "where", "returning", omitting empty
sections. Doesn't modify the builder and can be called any number of times.
*/
func (self *Update) String() string {
	return bytesToMutableString(self.Append(nil))
}

// Implement the `Appender` interface. See `.String`.
func (self *Update) Append(text []byte) []byte {
	var buf []byte
	appendStr(&buf, `UPDATE `)
	appendStr(&buf, self.table)
	appendSection(&buf, `SET`, self.sets, `, `)
	self.appendWhere(&buf)
	appendSection(&buf, `RETURNING`, self.returning, `, `)
	return append(text, buf...)
}

// Returns the rendered text and the arguments, consuming the bucket. Panics if
// called more than once. Implements `Stmt`.
func (self *Update) Reify() (string, []any) { return self.reify(self.String()) }

// Same as `.Reify`, but returns an error instead of panicking.
func (self *Update) TryReify() (string, []any, error) { return self.tryReify(self.String()) }
