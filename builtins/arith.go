package wispybuiltins

import "github.com/jasonflorentino/wispy"

// numbersOf validates that every child of args is a Number. Unlike the
// other builtins' type checks, arithmetic reports this with the dedicated
// "Cannot operate on non-number!" message rather than the generic
// argument-shape Error.
func numbersOf(fn string, args *wispy.Expr) ([]wispy.Number, *wispy.Error) {
	nums := make([]wispy.Number, 0, args.Length())
	for _, v := range args.ChildSlice() {
		n, ok := v.(wispy.Number)
		if !ok {
			return nil, wispy.ErrNotANumber()
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// arithOp builds a left-fold arithmetic builtin: validate all args are
// Numbers, pop the first as the accumulator, negate it if name is "-" and
// there are no further args, otherwise fold the rest in with combine.
func arithOp(name string, combine func(acc, n wispy.Number) wispy.Value) *wispy.Builtin {
	return wispy.NewBuiltin(name, func(_ *wispy.Environment, args *wispy.Expr) wispy.Value {
		nums, e := numbersOf(name, args)
		if e != nil {
			return e
		}
		if len(nums) == 0 {
			return wispy.ErrWrongArity(name, 0, 1)
		}
		acc := nums[0]
		if name == "-" && len(nums) == 1 {
			return -acc
		}
		for _, n := range nums[1:] {
			r := combine(acc, n)
			if err, isErr := r.(*wispy.Error); isErr {
				return err
			}
			acc = r.(wispy.Number)
		}
		return acc
	})
}

// Add implements `+ n n...`.
var Add = arithOp("+", func(acc, n wispy.Number) wispy.Value { return acc + n })

// Sub implements `- n n...`, negating on a single argument.
var Sub = arithOp("-", func(acc, n wispy.Number) wispy.Value { return acc - n })

// Mul implements `* n n...`.
var Mul = arithOp("*", func(acc, n wispy.Number) wispy.Value { return acc * n })

// Div implements `/ n n...`; division by zero returns `Error("Division by zero!")`.
var Div = arithOp("/", func(acc, n wispy.Number) wispy.Value {
	if n.IsZero() {
		return wispy.ErrDivisionByZero()
	}
	return acc / n
})

// Mod implements `% n n...`; modulo by zero returns `Error("Division by zero!")`.
var Mod = arithOp("%", func(acc, n wispy.Number) wispy.Value {
	if n.IsZero() {
		return wispy.ErrDivisionByZero()
	}
	return acc % n
})
