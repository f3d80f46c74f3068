package ui

import (
	"strings"

	"github.com/samber/lo"
)

// CN joins class lists, dropping empty entries and repeated classes. The
// first occurrence of a class keeps its position.
func CN(classes ...string) string {
	fields := lo.FlatMap(classes, func(c string, _ int) []string {
		return strings.Fields(c)
	})

	return strings.Join(lo.Uniq(lo.Compact(fields)), " ")
}

// If returns class when cond holds and "" otherwise, for use inside CN.
func If(cond bool, class string) string {
	return lo.Ternary(cond, class, "")
}
