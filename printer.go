package lisp

import (
	"strconv"
	"strings"
)

// Sprint renders c as S-expression text, per spec.md §4.6.
func Sprint(c Cell) string {
	var sb strings.Builder
	writeCell(&sb, c)
	return sb.String()
}

// Print writes c's S-expression text to sb.
func Print(sb *strings.Builder, c Cell) {
	writeCell(sb, c)
}

func writeCell(sb *strings.Builder, c Cell) {
	switch c.Kind {
	case Number:
		sb.WriteString(strconv.FormatFloat(c.Num, 'g', -1, 64))
	case Name:
		sb.WriteString(c.Str)
	case Proc:
		sb.WriteString("proc")
	case Expr:
		sb.WriteByte('(')
		for i, e := range c.List {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeCell(sb, e)
		}
		sb.WriteByte(')')
	default:
		sb.WriteString(symbolText(c.Kind))
	}
}
