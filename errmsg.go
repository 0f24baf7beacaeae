package wispy

import "fmt"

// Error-message constructors, one per kind of evaluation failure. Keeping
// the exact wording in one place is what lets the evaluator, the call
// machinery and every builtin agree on the same diagnostics byte-for-byte.

// ErrUnboundSymbol reports a Symbol with no binding reachable from env.
func ErrUnboundSymbol(name string) *Error {
	return NewError(fmt.Sprintf("Unbound symbol '%s'", name))
}

// ErrWrongType reports an argument-shape assertion failure: function name,
// zero-based argument index, the kind actually given, and the kind wanted.
func ErrWrongType(fn string, index int, got, want Kind) *Error {
	return NewError(fmt.Sprintf(
		"Function '%s' passed incorrect type for argument %d. Got %s, Expected %s",
		fn, index, got, want))
}

// ErrWrongArity reports a builtin called with the wrong number of arguments.
func ErrWrongArity(fn string, got, want int) *Error {
	return NewError(fmt.Sprintf(
		"Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
		fn, got, want))
}

// ErrEmptyArg reports a QExpr argument that was required to be non-empty.
func ErrEmptyArg(fn string, index int) *Error {
	return NewError(fmt.Sprintf("Function '%s' passed {} for argument %d.", fn, index))
}

// ErrDivisionByZero reports `/` or `%` with a zero divisor.
func ErrDivisionByZero() *Error { return NewError("Division by zero!") }

// ErrNotANumber reports an arithmetic operand that was not a Number.
func ErrNotANumber() *Error { return NewError("Cannot operate on non-number!") }

// ErrSExprStartsWrong reports an SExpr whose first evaluated child is not a
// Function.
func ErrSExprStartsWrong(got Kind) *Error {
	return NewError(fmt.Sprintf(
		"S-Expression starts with incorrect type. Got %s, Expected %s.", got, KindFunction))
}

// ErrTooManyArgs reports a Lambda call given more arguments than it has
// (non-variadic) formals for.
func ErrTooManyArgs(given, total int) *Error {
	return NewError(fmt.Sprintf(
		"Function passed too many arguments. Got %d, Expected %d.", given, total))
}

// ErrBadVariadicFormat reports `&` in a formals list not followed by
// exactly one symbol.
func ErrBadVariadicFormat() *Error {
	return NewError("Function format invalid. Symbol '&' not followed by single symbol.")
}

// ErrNonSymbolFormal reports a non-Symbol element found in a `def`/`=`
// symbol list or a Lambda's formals list. The original C implementation
// this is based on truncates this message to a stray fragment of its
// format string; this reimplementation always emits it in full.
func ErrNonSymbolFormal(fn string, got Kind) *Error {
	return NewError(fmt.Sprintf(
		"Function '%s' cannot define non-symbol! Got %s, Expected %s.", fn, got, KindSymbol))
}

// ErrSymbolCountMismatch reports a `def`/`=` call whose symbol list length
// doesn't match its value count.
func ErrSymbolCountMismatch(fn string, gotSymbols, gotValues int) *Error {
	return NewError(fmt.Sprintf(
		"Function '%s' passed incorrect number of arguments for symbols. Got %d, Expected %d.",
		fn, gotSymbols, gotValues))
}

// ErrDuplicateFormal reports a `\` or `def`/`=` symbol list containing the
// same Symbol more than once.
func ErrDuplicateFormal(fn string) *Error {
	return NewError(fmt.Sprintf("Function '%s' passed duplicate symbol in binding list.", fn))
}

// ErrInvalidNumber reports a number literal that overflows a signed 64-bit
// integer.
func ErrInvalidNumber() *Error { return NewError("Invalid number") }

// ErrCouldNotLoad wraps a parser diagnostic raised while `load`ing a file.
func ErrCouldNotLoad(detail string) *Error {
	return NewError(fmt.Sprintf("Could not load Library %s", detail))
}
