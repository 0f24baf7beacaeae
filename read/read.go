// Package wispyread adapts the syntactic Node tree produced by package
// wispyparse into the runtime Values the evaluator operates on.
package wispyread

import (
	"strconv"
	"strings"

	wispyparse "github.com/jasonflorentino/wispy/parse"

	"github.com/jasonflorentino/wispy"
)

// Read converts one Node into a Value. Grouping nodes (sexpr, qexpr,
// program) recurse into their children, skipping comments.
func Read(n *wispyparse.Node) wispy.Value {
	switch n.Tag {
	case "number":
		return readNumber(n.Contents)
	case "string":
		return readString(n.Contents)
	case "symbol":
		return wispy.Symbol(n.Contents)
	case "sexpr":
		return readSeq(n, wispy.NewSExpr())
	case "qexpr":
		return readSeq(n, wispy.NewQExpr())
	case "program":
		return readSeq(n, wispy.NewSExpr())
	default:
		return wispy.NewError("unknown syntax node: " + n.Tag)
	}
}

// ReadProgram reads every top-level child of a "program" Node, in source
// order, without wrapping them in a containing SExpr — the shape `load`
// needs to evaluate each top-level form independently.
func ReadProgram(n *wispyparse.Node) []wispy.Value {
	values := make([]wispy.Value, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Tag == "comment" {
			continue
		}
		values = append(values, Read(c))
	}
	return values
}

func readSeq(n *wispyparse.Node, into *wispy.Expr) wispy.Value {
	for _, c := range n.Children {
		if c.Tag == "comment" {
			continue
		}
		into.Append(Read(c))
	}
	return into
}

// readNumber parses the integer prefix of a number lexeme as a signed
// base-10 integer: a literal's fractional tail (`3.14`) is lexically
// permitted but discarded, mirroring the original `strtol`-based reader,
// which stops at the first non-digit.
func readNumber(lexeme string) wispy.Value {
	intPart := lexeme
	if i := strings.IndexByte(lexeme, '.'); i >= 0 {
		intPart = lexeme[:i]
	}
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return wispy.ErrInvalidNumber()
	}
	return wispy.Number(n)
}

// readString strips the surrounding quotes and resolves the standard
// escapes.
func readString(lexeme string) wispy.Value {
	inner := lexeme
	if len(inner) >= 2 && inner[0] == '"' && inner[len(inner)-1] == '"' {
		inner = inner[1 : len(inner)-1]
	}
	var sb strings.Builder
	for i := 0; i < len(inner); i++ {
		ch := inner[i]
		if ch == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte('\\')
				sb.WriteByte(inner[i])
			}
			continue
		}
		sb.WriteByte(ch)
	}
	return wispy.MakeString(sb.String())
}
