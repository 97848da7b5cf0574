package config

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// exprOf extracts the inner expression from a "$(...)" value.
func exprOf(s string) (expr string, ok bool) {
	if strings.HasPrefix(s, "$(") && strings.HasSuffix(s, ")") {
		expr = s[2 : len(s)-1]
		ok = true
	}
	return
}

// Eval evaluates a $() expression with the given integer bindings
// predeclared.
func Eval(expr string, bindings map[string]int64) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, n := range bindings {
		pred[key] = starlark.MakeInt64(n)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value = st_int64
	return
}
