package pgqb

import (
	"fmt"

	"github.com/mitranim/sqlp"
)

/*
Optional interface for bind values that own mutable memory not reachable by a
shallow copy. When a value implementing `Duper` is pushed into a `Bucket`, the
bucket stores the result of `.Dup()` instead of the value itself.
*/
type Duper interface{ Dup() any }

/*
Ordered container of bind values. Each pushed value gets a 1-based index equal
to its position, which corresponds to the ordinal parameter "$N" in the
statement text. Indexes are assigned once and never reused or reordered.

Values are duplicated on push (see `Duper`), so the bucket exclusively owns
what it stores. The contents are extracted exactly once via `.Consume`, which
moves them to the caller. A consumed bucket rejects further pushes.

The zero value is an empty bucket ready to use.
*/
type Bucket struct {
	args     []any
	consumed bool
}

/*
Prealloc tool. Makes a `Bucket` with the specified capacity of the args buffer.
*/
func MakeBucket(argsCap int) Bucket {
	return Bucket{args: make([]any, 0, argsCap)}
}

/*
Appends a duplicate of the value, returning its 1-based index. Panics if the
bucket has already been consumed.
*/
func (self *Bucket) Push(val any) int {
	if self.consumed {
		panic(ErrConsumed.while(fmt.Sprintf(`pushing %#v`, val)))
	}
	self.args = append(self.args, dup(val))
	return len(self.args)
}

// Amount of stored values.
func (self *Bucket) Len() int { return len(self.args) }

// True if `.Consume` has been called.
func (self *Bucket) IsConsumed() bool { return self.consumed }

/*
Moves the stored values to the caller, in push order: element `i-1` binds to
the parameter "$i". Afterwards, the bucket retains no reference to the values.
Panics if called more than once.
*/
func (self *Bucket) Consume() []any {
	if self.consumed {
		panic(ErrConsumed.while(`consuming bucket`))
	}
	out := self.args
	self.args = nil
	self.consumed = true
	return out
}

// Same as `.Push`, but returns the ordinal parameter for appending to text.
func (self *Bucket) param(val any) sqlp.NodeOrdinalParam {
	return sqlp.NodeOrdinalParam(self.Push(val))
}
