package pgqb

import (
	"fmt"
)

const (
	JoinInner     JoinKind = 0
	JoinLeft      JoinKind = 1
	JoinLeftOuter JoinKind = 2
)

// Enum for join kind: "INNER", "LEFT", "LEFT OUTER".
type JoinKind byte

// Implement `fmt.Stringer`. Returns an empty string for unknown values.
func (self JoinKind) String() string {
	switch self {
	case JoinInner:
		return `INNER`
	case JoinLeft:
		return `LEFT`
	case JoinLeftOuter:
		return `LEFT OUTER`
	default:
		return ``
	}
}

/*
Structured representation of one join in a "from" clause. Renders as:

	<KIND> JOIN <table> ON <condition>

Both the table and the condition are included verbatim.
*/
type Join struct {
	Kind  JoinKind
	Table string
	On    string
}

// Shortcut for `Join{JoinInner, table, on}`.
func InnerJoin(table, on string) Join { return Join{JoinInner, table, on} }

// Shortcut for `Join{JoinLeft, table, on}`.
func LeftJoin(table, on string) Join { return Join{JoinLeft, table, on} }

// Shortcut for `Join{JoinLeftOuter, table, on}`.
func LeftOuterJoin(table, on string) Join { return Join{JoinLeftOuter, table, on} }

// Implement the `Appender` interface, sometimes allowing more efficient text
// encoding. Panics on an unknown join kind.
func (self Join) Append(text []byte) []byte {
	kind := self.Kind.String()
	if kind == `` {
		panic(ErrInvalidInput.while(`appending join`).because(
			fmt.Errorf(`unknown join kind %d`, self.Kind),
		))
	}
	appendStr(&text, kind)
	appendEnclosed(&text, ` JOIN `, self.Table, ` ON `)
	appendStr(&text, self.On)
	return text
}

// Implement the `fmt.Stringer` interface for debug purposes.
func (self Join) String() string { return bytesToMutableString(self.Append(nil)) }
