package pgqb

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppendFragment(t *testing.T) {
	t.Run(`sequential`, func(t *testing.T) {
		var bucket Bucket
		var buf []byte
		appendFragment(&buf, &bucket, `one = $1 and two = $2`, list{10, 20})
		appendFragment(&buf, &bucket, ` and three = $1 and four = $1`, list{30})
		appendFragment(&buf, &bucket, ` and five = $1 and six = $2`, list{40, 50})

		eq(t, `one = $1 and two = $2 and three = $3 and four = $3 and five = $4 and six = $5`, string(buf))
		eq(t, list{10, 20, 30, 40, 50}, bucket.Consume())
	})

	t.Run(`push on first use`, func(t *testing.T) {
		var bucket Bucket
		bucket.Push(`existing`)

		var buf []byte
		appendFragment(&buf, &bucket, `a = $3 and b = $1 and c = $3 and d = $2`, list{10, 20, 30})

		eq(t, `a = $2 and b = $3 and c = $2 and d = $4`, string(buf))
		eq(t, list{`existing`, 30, 10, 20}, bucket.Consume())
	})

	t.Run(`preserves casts and strings`, func(t *testing.T) {
		var bucket Bucket
		bucket.Push(0)

		var buf []byte
		appendFragment(&buf, &bucket, `col = $1::text and other = '$1'`, list{10})

		eq(t, `col = $2::text and other = '$1'`, string(buf))
		eq(t, list{0, 10}, bucket.Consume())
	})
}

func TestAppendFragment_invalid(t *testing.T) {
	var bucket Bucket
	bucket.Push(`existing`)

	var buf []byte
	panicsWith(t, ErrOrdinalOutOfBounds, func() {
		appendFragment(&buf, &bucket, `a = $1 and b = $3`, list{10, 20})
	})
	panicsWith(t, ErrUnusedArgument, func() {
		appendFragment(&buf, &bucket, `a = $1`, list{10, 20})
	})

	eq(t, ``, string(buf))
	eq(t, list{`existing`}, bucket.Consume())
}

func TestFragment(t *testing.T) {
	var bucket Bucket
	eq(t, `plain text`, fragment(&bucket, `plain text`, nil))
	eq(t, `id = $1`, fragment(&bucket, `id = $1`, list{10}))
	eq(t, 1, bucket.Len())
}

func TestErr(t *testing.T) {
	test := func(src Err, exp string) {
		t.Helper()
		eq(t, exp, src.Error())
		eq(t, exp, fmt.Sprintf(`%v`, src))
	}

	test(Err{}, ``)
	test(Err{While: `doing some operation`}, `[pgqb] while doing some operation`)
	test(ErrConsumed, `[pgqb] Consumed: bucket already consumed`)
	test(
		ErrConsumed.while(`consuming bucket`),
		`[pgqb] Consumed while consuming bucket: bucket already consumed`,
	)
	test(
		ErrInvalidInput.while(`parsing`).because(errors.New(`some cause`)),
		`[pgqb] InvalidInput while parsing: some cause`,
	)
}

func TestErr_Is(t *testing.T) {
	cause := errors.New(`some cause`)
	err := ErrInvalidInput.while(`parsing`).because(cause)

	eq(t, true, errors.Is(err, ErrInvalidInput))
	eq(t, true, errors.Is(err, cause))
	eq(t, false, errors.Is(err, ErrConsumed))
	eq(t, true, errors.Is(fmt.Errorf(`wrapped: %w`, err), ErrInvalidInput))
	eq(t, cause, errors.Unwrap(err))
}
