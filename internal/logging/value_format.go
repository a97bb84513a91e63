package logging

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// formatValue renders an attribute value for the console, quoting text that
// would otherwise break key=value parsing.
func formatValue(v slog.Value) string {
	var s string
	switch v = v.Resolve(); v.Kind() {
	case slog.KindString:
		s = v.String()
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		// Numbers, durations and bools never need quoting.
		return v.String()
	}
	if s == "" || strings.ContainsAny(s, " \t\n=\"") {
		return strconv.Quote(s)
	}
	return s
}
