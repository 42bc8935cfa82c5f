package parser

import (
	"sort"
	"strings"
)

// ParseFunc is the shared contract of every parser variant: one expression
// string in, one fully built tree or one typed error out.
type ParseFunc func(input string) (*Node, error)

var grammars = map[string]ParseFunc{
	"prefix":     ParsePrefix,
	"pre":        ParsePrefix,
	"postfix":    ParsePostfix,
	"post":       ParsePostfix,
	"infix":      ParseClimb,
	"in":         ParseClimb,
	"climb":      ParseClimb,
	"rightassoc": ParseRightAssoc,
	"recursive":  ParseRecursive,
	"leftassoc":  ParseLeftAssoc,
}

// Lookup resolves a grammar selector, case-insensitively, to its parser.
func Lookup(name string) (ParseFunc, bool) {
	fn, ok := grammars[strings.ToLower(name)]
	return fn, ok
}

// Grammars returns the canonical selector names, sorted.
func Grammars() []string {
	names := []string{"prefix", "postfix", "infix", "climb", "rightassoc", "recursive", "leftassoc"}
	sort.Strings(names)
	return names
}
