package pgqb

import (
	"testing"
	"time"
)

type dupCounter struct{ count *int }

func (self dupCounter) Dup() any {
	*self.count++
	return dupCounter{self.count}
}

func TestBucket(t *testing.T) {
	t.Run(`empty`, func(t *testing.T) {
		var bucket Bucket
		eq(t, 0, bucket.Len())
		eq(t, false, bucket.IsConsumed())
		eq(t, 0, len(bucket.Consume()))
		eq(t, true, bucket.IsConsumed())
	})

	t.Run(`indexes follow push order`, func(t *testing.T) {
		var bucket Bucket
		vals := list{42, true, `x`, nil, 3.5, int64(-1)}

		for i, val := range vals {
			eq(t, i, bucket.Len())
			eq(t, i+1, bucket.Push(val))
		}

		eq(t, len(vals), bucket.Len())
		eq(t, vals, bucket.Consume())
	})

	t.Run(`prealloc`, func(t *testing.T) {
		bucket := MakeBucket(8)
		eq(t, 1, bucket.Push(10))
		eq(t, 2, bucket.Push(20))
		eq(t, list{10, 20}, bucket.Consume())
	})
}

func TestBucket_Consume_twice(t *testing.T) {
	var bucket Bucket
	bucket.Push(10)
	eq(t, list{10}, bucket.Consume())

	panicsWith(t, ErrConsumed, func() { bucket.Consume() })
	panics(t, `bucket already consumed`, func() { bucket.Consume() })
}

func TestBucket_Push_after_Consume(t *testing.T) {
	var bucket Bucket
	bucket.Consume()
	panicsWith(t, ErrConsumed, func() { bucket.Push(10) })
	eq(t, 0, bucket.Len())
}

func TestBucket_Consume_moves(t *testing.T) {
	var bucket Bucket
	bucket.Push(10)
	bucket.Push(20)

	out := bucket.Consume()
	eq(t, list{10, 20}, out)
	eq(t, 0, bucket.Len())

	out[0] = 30
	eq(t, 0, bucket.Len())
}

func TestBucket_Push_duplicates(t *testing.T) {
	t.Run(`bytes`, func(t *testing.T) {
		var bucket Bucket
		src := []byte(`one`)
		bucket.Push(src)
		src[0] = 'x'
		eq(t, list{[]byte(`one`)}, bucket.Consume())
	})

	t.Run(`slice`, func(t *testing.T) {
		var bucket Bucket
		src := []int64{10, 20}
		bucket.Push(src)
		src[0] = 30
		eq(t, list{[]int64{10, 20}}, bucket.Consume())
	})

	t.Run(`map`, func(t *testing.T) {
		var bucket Bucket
		src := map[string]string{`one`: `two`}
		bucket.Push(src)
		src[`one`] = `three`
		eq(t, list{map[string]string{`one`: `two`}}, bucket.Consume())
	})

	t.Run(`nil slice`, func(t *testing.T) {
		var bucket Bucket
		bucket.Push([]byte(nil))
		bucket.Push([]string(nil))
		eq(t, list{[]byte(nil), []string(nil)}, bucket.Consume())
	})

	t.Run(`value types`, func(t *testing.T) {
		var bucket Bucket
		inst := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
		bucket.Push(inst)
		bucket.Push([2]int{1, 2})
		eq(t, list{inst, [2]int{1, 2}}, bucket.Consume())
	})

	t.Run(`duper`, func(t *testing.T) {
		var bucket Bucket
		var count int
		bucket.Push(dupCounter{&count})
		bucket.Push(dupCounter{&count})
		eq(t, 2, count)
	})
}
