package wispy

// Call applies fn (a Builtin or Lambda) to args (an SExpr of already
// evaluated values).
func Call(env *Environment, fn Value, args *Expr) Value {
	if b, ok := fn.(*Builtin); ok {
		return b.Fn(env, args)
	}
	lam, ok := fn.(*Lambda)
	if !ok {
		return ErrSExprStartsWrong(fn.Kind())
	}
	return callLambda(env, lam, args)
}

// callLambda binds args against lam's formals and, once fully applied,
// evaluates the body. It never mutates lam itself: every call starts from
// a fresh local frame copied from the Lambda's template, so repeated or
// curried calls against the same Lambda value never interfere with one
// another.
func callLambda(callerEnv *Environment, lam *Lambda, args *Expr) Value {
	formals := append([]Value(nil), lam.Formals.ChildSlice()...)
	argVals := args.ChildSlice()
	given, total := len(argVals), len(formals)

	localEnv := lam.Env.copyLocal()

	ai := 0
	for ai < len(argVals) {
		if len(formals) == 0 {
			return ErrTooManyArgs(given, total)
		}
		sym := formals[0].(Symbol)
		formals = formals[1:]

		if sym == AmpSymbol {
			if len(formals) != 1 {
				return ErrBadVariadicFormat()
			}
			varSym, isSym := formals[0].(Symbol)
			if !isSym {
				return ErrBadVariadicFormat()
			}
			rest := append([]Value(nil), argVals[ai:]...)
			localEnv.Put(varSym, NewQExpr(rest...))
			formals = nil
			ai = len(argVals)
			break
		}

		localEnv.Put(sym, argVals[ai])
		ai++
	}

	if len(formals) > 0 {
		if sym0, isSym := formals[0].(Symbol); isSym && sym0 == AmpSymbol {
			if len(formals) != 2 {
				return ErrBadVariadicFormat()
			}
			varSym, isSym := formals[1].(Symbol)
			if !isSym {
				return ErrBadVariadicFormat()
			}
			localEnv.Put(varSym, NewQExpr())
			formals = nil
		}
	}

	if len(formals) == 0 {
		localEnv.SetParent(callerEnv)
		body := NewSExpr(append([]Value(nil), lam.Body.ChildSlice()...)...)
		result := Eval(localEnv, body)
		localEnv.SetParent(nil)
		return result
	}

	// Formals remain: automatic currying — hand back a partially-applied
	// copy rather than erroring.
	return &Lambda{
		Formals: NewQExpr(formals...),
		Body:    NewQExpr(append([]Value(nil), lam.Body.ChildSlice()...)...),
		Env:     localEnv,
	}
}
