package wispybuiltins

import (
	"fmt"
	"os"
	"strings"

	wispyparse "github.com/jasonflorentino/wispy/parse"
	wispyread "github.com/jasonflorentino/wispy/read"

	"github.com/jasonflorentino/wispy"
)

// Print implements `print v ...`: print each value separated by spaces,
// then a newline, returning an empty SExpr.
var Print = wispy.NewBuiltin("print", func(_ *wispy.Environment, args *wispy.Expr) wispy.Value {
	parts := make([]string, 0, args.Length())
	for _, v := range args.ChildSlice() {
		parts = append(parts, v.String())
	}
	fmt.Fprintln(os.Stdout, strings.Join(parts, " "))
	return wispy.NewSExpr()
})

// MakeError implements `error "msg"` -> Error("msg").
var MakeError = wispy.NewBuiltin("error", func(_ *wispy.Environment, args *wispy.Expr) wispy.Value {
	if e := requireArity("error", args, 1); e != nil {
		return e
	}
	s, e := getString("error", args, 0)
	if e != nil {
		return e
	}
	return wispy.NewError(s.GoString())
})

// Load implements `load "path"`: parse the named file, read every
// top-level form, and evaluate each one in the global environment — the
// same parse-then-read pipeline the REPL driver (cmd/wispy) uses for a
// line of input, reused here directly. The env passed to a builtin call is
// whatever frame the call happened in, which may be a Lambda's local frame
// nested several calls deep, so Load climbs to the root of the chain
// first: a binding made by a loaded file must persist globally, not vanish
// with the calling frame.
var Load = wispy.NewBuiltin("load", func(env *wispy.Environment, args *wispy.Expr) wispy.Value {
	if e := requireArity("load", args, 1); e != nil {
		return e
	}
	path, e := getString("load", args, 0)
	if e != nil {
		return e
	}

	f, err := os.Open(path.GoString())
	if err != nil {
		return wispy.ErrCouldNotLoad(err.Error())
	}
	defer f.Close()

	program, err := wispyparse.Parse(f)
	if err != nil {
		return wispy.ErrCouldNotLoad(err.Error())
	}

	root := env
	for root.Parent() != nil {
		root = root.Parent()
	}

	for _, form := range wispyread.ReadProgram(program) {
		result := wispy.Eval(root, form)
		if err, isErr := result.(*wispy.Error); isErr {
			fmt.Fprintln(os.Stdout, err.String())
		}
	}
	return wispy.NewSExpr()
})
