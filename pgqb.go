package pgqb

/*
Appends a text repesentation. Sometimes allows better efficiency than
`fmt.Stringer`. Implemented by `Select`, `Update`, `Join`, `Ord`, `Dir`.
*/
type Appender interface {
	Append([]byte) []byte
}

/*
Short for "statement". Anything that produces final SQL text with its ordered
arguments, ready for a prepared-statement call. The arguments correspond 1:1 to
the ordinal parameters "$1".."$N" in the text. Implemented by `*Select` and
`*Update`, whose `.Reify` consumes the parameter bucket: a statement may be
reified only once.
*/
type Stmt interface {
	Reify() (string, []any)
}

var (
	_ = Stmt((*Select)(nil))
	_ = Stmt((*Update)(nil))
	_ = Appender((*Select)(nil))
	_ = Appender((*Update)(nil))
	_ = Appender(Join{})
	_ = Appender(Ord{})
	_ = Appender(Dir(0))
)
