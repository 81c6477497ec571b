package pgqb

import (
	"errors"
	"fmt"
	r "reflect"
	"runtime"
	"strings"
	"testing"
)

type list = []any

func eq(t testing.TB, exp, act any) {
	t.Helper()
	if !r.DeepEqual(exp, act) {
		t.Fatalf(`
expected (detailed):
	%#[1]v
actual (detailed):
	%#[2]v
expected (simple):
	%[1]v
actual (simple):
	%[2]v
`, exp, act)
	}
}

func notEq(t testing.TB, exp, act any) {
	t.Helper()
	if r.DeepEqual(exp, act) {
		t.Fatalf(`
unexpected equality (detailed):
	%#[1]v
unexpected equality (simple):
	%[1]v
`, exp, act)
	}
}

func panics(t testing.TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(
			`expected %v to panic with a message containing %q, found %q`,
			funcName(fun), msg, str,
		)
	}
}

func panicsWith(t testing.TB, exp error, fun func()) {
	t.Helper()
	val := catchAny(fun)

	err, _ := val.(error)
	if err == nil {
		t.Fatalf(`expected %v to panic with an error, found %#v`, funcName(fun), val)
	}
	if !errors.Is(err, exp) {
		t.Fatalf(`expected %v to panic with %q, found %q`, funcName(fun), exp, err)
	}
}

func funcName(val any) string {
	return runtime.FuncForPC(r.ValueOf(val).Pointer()).Name()
}

func catchAny(fun func()) (val any) {
	defer recAny(&val)
	fun()
	return
}

func recAny(ptr *any) { *ptr = recover() }

func testStmt(t testing.TB, stmt interface {
	Stmt
	String() string
}, expText string, expArgs list) {
	t.Helper()
	eq(t, expText, stmt.String())

	text, args := stmt.Reify()
	eq(t, expText, text)
	eq(t, expArgs, args)
}
