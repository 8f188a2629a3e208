package qcircuit

import (
	"fmt"
	"strings"
)

// gateName returns a human-readable name for the given gate: its Stringer
// form when it has one, its Go type otherwise.
func gateName(g Gate) string {
	if g == nil {
		return "<nil>"
	}
	if s, ok := g.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", g)
}

// FormatOperations returns a human-readable representation of the given
// operations, one per line. The indent string is prepended to each line.
// Wrapped operations additionally list the layers underneath them, outermost
// first, indented one level per layer.
func FormatOperations(ops []Operation, indent string) string {
	var b strings.Builder
	for _, op := range ops {
		depth := 0
		Inspect(op, func(layer Operation) bool {
			if layer == nil {
				depth--
				return false
			}
			fmt.Fprintf(&b, "%s%s%v\n", indent, strings.Repeat("  ", depth), layer)
			depth++
			return true
		})
	}
	return b.String()
}
