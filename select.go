package pgqb

/*
Builder for a single "select" statement. Accumulates clause fragments in any
order and renders them in the fixed SQL order via `.String`. Every method that
takes a value pushes it into the builder's bucket and references it by its
ordinal parameter. Use `.Reify` to obtain the text and the arguments for
execution; it consumes the bucket and must be the last call.

Example:

	qb := NewSelect(`users`)
	qb.Select(`id`, `name`)
	qb.WhereEq(`active`, true)
	qb.OrderBy(OrdDesc(`created_at`))
	qb.Limit(10)

	text, args := qb.Reify()

Is equivalent to:

	text := `SELECT id, name FROM users WHERE active = $1 ORDER BY created_at DESC LIMIT $2`
	args := []any{true, int64(10)}
*/
type Select struct {
	where
	from   string
	with   []string
	cols   []string
	joins  []Join
	groups []string
	ords   []Ord
	limit  string
	offset string
}

// Creates a "select" builder for the given table or table expression.
func NewSelect(from string) *Select { return &Select{from: from} }

// Appends columns or arbitrary expressions to the projection. When no columns
// are provided, the statement selects "*".
func (self *Select) Select(cols ...string) {
	self.cols = append(self.cols, cols...)
}

/*
Appends the columns derived from the struct type of `dest`, as per `Cols`.
Accepts a struct, a struct pointer, a struct slice or a pointer to a struct
slice, using it only as a type carrier.
*/
func (self *Select) SelectCols(dest any) {
	self.cols = append(self.cols, Cols(dest)...)
}

/*
Adds a common table expression, rendered as "name AS (query)" in the "with"
clause before the main statement. Multiple expressions are comma-separated in
call order. Ordinal parameters in the query are local to the provided
arguments; see `(*Select).Where`.
*/
func (self *Select) With(name, query string, args ...any) {
	self.with = append(self.with, name+` AS (`+fragment(&self.bucket, query, args)+`)`)
}

// Appends "INNER JOIN <table> ON <on>".
func (self *Select) InnerJoin(table, on string) { self.Join(InnerJoin(table, on)) }

// Appends "LEFT JOIN <table> ON <on>".
func (self *Select) LeftJoin(table, on string) { self.Join(LeftJoin(table, on)) }

// Appends "LEFT OUTER JOIN <table> ON <on>".
func (self *Select) LeftOuterJoin(table, on string) { self.Join(LeftOuterJoin(table, on)) }

// Appends arbitrary joins, rendered in call order.
func (self *Select) Join(joins ...Join) {
	self.joins = append(self.joins, joins...)
}

// Appends fields to the "group by" clause.
func (self *Select) GroupBy(fields ...string) {
	self.groups = append(self.groups, fields...)
}

// Appends orderings to the "order by" clause, preserving call order.
func (self *Select) OrderBy(ords ...Ord) {
	self.ords = append(self.ords, ords...)
}

/*
Pushes the value into the bucket and uses its parameter for "limit".

Calling this again replaces the parameter in the text, but the previously
pushed value stays in the bucket, unreferenced. Postgres rejects prepared
statements whose parameters can't be typed, so a builder should set the limit
at most once.
*/
func (self *Select) Limit(val int64) {
	self.limit = self.placeholder(val)
}

// Pushes the value into the bucket and uses its parameter for "offset". Has
// the same caveat as `.Limit` when called repeatedly.
func (self *Select) Offset(val int64) {
	self.offset = self.placeholder(val)
}

func (self *Select) placeholder(val any) string {
	var buf []byte
	self.bucket.param(val).Append(&buf)
	return bytesToMutableString(buf)
}

/*
Renders the statement. Sections are emitted in the fixed order "with",
"select", "from", joins, "where", "group by", "order by", "limit", "offset".
Empty sections are omitted. Doesn't modify the builder and can be called any
number of times, including after `.Reify`.
*/
func (self *Select) String() string {
	return bytesToMutableString(self.Append(nil))
}

// Implement the `Appender` interface. See `.String`.
func (self *Select) Append(text []byte) []byte {
	var buf []byte
	appendSection(&buf, `WITH`, self.with, `, `)

	if len(self.cols) > 0 {
		appendSection(&buf, `SELECT`, self.cols, `, `)
	} else {
		appendSep(&buf)
		appendStr(&buf, `SELECT *`)
	}

	appendStr(&buf, ` FROM `)
	appendStr(&buf, self.from)

	for _, val := range self.joins {
		appendStr(&buf, ` `)
		buf = val.Append(buf)
	}

	self.appendWhere(&buf)
	appendSection(&buf, `GROUP BY`, self.groups, `, `)

	if len(self.ords) > 0 {
		appendStr(&buf, ` ORDER BY `)
		for i, val := range self.ords {
			if i > 0 {
				appendStr(&buf, `, `)
			}
			buf = val.Append(buf)
		}
	}

	if self.limit != `` {
		appendEnclosed(&buf, ` LIMIT `, self.limit, ``)
	}
	if self.offset != `` {
		appendEnclosed(&buf, ` OFFSET `, self.offset, ``)
	}
	return append(text, buf...)
}

/*
Returns the rendered text and the arguments for a prepared-statement call,
such as `(*sql.DB).QueryContext`. Consumes the bucket: panics if called more
than once. Implements `Stmt`.
*/
func (self *Select) Reify() (string, []any) { return self.reify(self.String()) }

// Same as `.Reify`, but returns an error instead of panicking.
func (self *Select) TryReify() (string, []any, error) { return self.tryReify(self.String()) }
