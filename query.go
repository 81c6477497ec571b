package pgqb

import (
	"fmt"

	"github.com/mitranim/sqlp"
)

/*
If true (default), arguments not referenced by any ordinal parameter cause
panics in functions like `(*Select).Where`. If false, unused arguments are
silently dropped and never reach the bucket. Turning this off can be convenient
in development, when changing queries rapidly.
*/
var CheckUnused = true

/*
Appends a parametrized SQL fragment to `buf`, moving its arguments into the
bucket. The fragment's ordinal parameters are local: the count always starts
at `$1` and refers to `args[0]`. Each referenced argument is pushed into the
bucket once, on first use, and every occurrence of its parameter is rewritten
to the bucket index. For example, with an empty bucket, this:

	appendFragment(&buf, &bucket, `a = $2 or b = $1 or c = $2`, []any{10, 20})

Appends `a = $1 or b = $2 or c = $1` and pushes 20, then 10.

Panics when: the fragment has named parameters; a parameter doesn't have a
corresponding argument; an argument doesn't have a corresponding parameter
(unless `CheckUnused` is false).
*/
func appendFragment(buf *[]byte, bucket *Bucket, src string, args []any) {
	nodes := fragmentNodes(src, args)

	ords := make([]sqlp.NodeOrdinalParam, len(args))
	for _, node := range nodes {
		param, ok := node.(sqlp.NodeOrdinalParam)
		if !ok {
			node.Append(buf)
			continue
		}

		index := param.Index()
		if ords[index] == 0 {
			ords[index] = bucket.param(args[index])
		}
		ords[index].Append(buf)
	}
}

// Tokenizes and validates the fragment without touching the bucket, so an
// invalid fragment leaves no orphan values behind.
func fragmentNodes(src string, args []any) []sqlp.Node {
	tokenizer := sqlp.Tokenizer{Source: src}
	used := make([]bool, len(args))
	var nodes []sqlp.Node

	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}

		switch node := node.(type) {
		case sqlp.NodeOrdinalParam:
			index := node.Index()
			if index < 0 || index >= len(args) {
				panic(ErrOrdinalOutOfBounds.while(`appending SQL fragment`).because(
					fmt.Errorf(`ordinal parameter %v exceeds argument count %v`, int(node), len(args)),
				))
			}
			used[index] = true

		case sqlp.NodeNamedParam:
			panic(ErrUnexpectedParameter.while(`appending SQL fragment`).because(
				fmt.Errorf(`expected only ordinal params, got named param %q`, string(node)),
			))
		}
		nodes = append(nodes, node)
	}

	if CheckUnused {
		for i, arg := range args {
			if !used[i] {
				panic(ErrUnusedArgument.while(`appending SQL fragment`).because(
					fmt.Errorf(`unused argument %#v at index %v`, arg, i),
				))
			}
		}
	}
	return nodes
}

// Renders a parametrized fragment into a standalone string. See
// `appendFragment`.
func fragment(bucket *Bucket, src string, args []any) string {
	if len(args) == 0 && !hasParams(src) {
		return src
	}
	var buf []byte
	appendFragment(&buf, bucket, src, args)
	return bytesToMutableString(buf)
}

func hasParams(src string) bool {
	tokenizer := sqlp.Tokenizer{Source: src}
	for {
		switch tokenizer.Next().(type) {
		case nil:
			return false
		case sqlp.NodeOrdinalParam, sqlp.NodeNamedParam:
			return true
		}
	}
}
