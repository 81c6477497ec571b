package pgqb_test

import (
	"fmt"

	"github.com/mitranim/pgqb"
)

func ExampleSelect() {
	qb := pgqb.NewSelect(`publishers`)
	qb.Select(`id`, `name`)
	qb.WhereEq(`country`, `NL`)
	qb.WhereNe(`status`, `closed`)
	qb.OrderBy(pgqb.OrdAsc(`name`))
	qb.Limit(10)
	qb.Offset(20)

	fmt.Println(qb.Reify())
	// Output:
	// SELECT id, name FROM publishers WHERE country = $1 AND status <> $2 ORDER BY name ASC LIMIT $3 OFFSET $4 [NL closed 10 20]
}

func ExampleSelect_With() {
	qb := pgqb.NewSelect(`publishers_view`)
	qb.With(`publishers_count`, `SELECT publisher_id, count(*) FROM articles WHERE kind = $1 GROUP BY publisher_id`, `post`)
	qb.WhereEq(`count`, 0)

	fmt.Println(qb.Reify())
	// Output:
	// WITH publishers_count AS (SELECT publisher_id, count(*) FROM articles WHERE kind = $1 GROUP BY publisher_id) SELECT * FROM publishers_view WHERE count = $2 [post 0]
}

func ExampleUpdate() {
	qb := pgqb.NewUpdate(`users`)
	qb.WhereEq(`id`, 42)
	qb.Set(`username`, `rick`)
	qb.SetComputed(`updated_at`, `now()`)

	fmt.Println(qb.Reify())
	// Output:
	// UPDATE users SET username = $2, updated_at = now() WHERE id = $1 [42 rick]
}

func ExampleBucket() {
	var bucket pgqb.Bucket
	fmt.Println(bucket.Push(10), bucket.Push(`two`), bucket.Len())
	fmt.Println(bucket.Consume())
	// Output:
	// 1 2 2
	// [10 two]
}

func ExampleCols() {
	type Inner struct {
		Id string `db:"id"`
	}

	type Outer struct {
		Name  string `db:"name"`
		Inner Inner  `db:"inner"`
	}

	qb := pgqb.NewSelect(`outers`)
	qb.SelectCols((*Outer)(nil))

	fmt.Println(qb.String())
	// Output:
	// SELECT "name", ("inner")."id" AS "inner.id" FROM outers
}
