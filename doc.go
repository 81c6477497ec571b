/*
Postgres Query Builder: builds "select" and "update" statements with positional
parameters such as $1, $2, and so on, together with the ordered list of
arguments for a prepared-statement call.

Key Features

• Clauses can be added in any order. The text is always rendered in the fixed
SQL order, omitting empty sections.

• Every value goes into a parameter bucket, which assigns it the next ordinal
at the time of the call. The count always starts at 1.

• Values are copied on push. The bucket owns them until the final call to
`Reify`, which moves them to the caller.

• Hand-written fragments can use their own local $1, $2... which are
renumbered to match the bucket. See `(*Select).Where` and `(*Select).With`.

• Supports converting structs to columns, assignments and conditions.

• Small executors for "database/sql" and pgx. See `DB` and `Pgx`.

Examples

See `Select`, `Update` and the package examples.
*/
package pgqb
