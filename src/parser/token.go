package parser

import (
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// IsValidIdentifier reports whether s can appear unquoted in Cypher.
func IsValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// unquoteIdent strips backtick quoting from an identifier token and
// collapses doubled backticks. Plain identifiers pass through.
func unquoteIdent(s string) string {
	if !strings.HasPrefix(s, "`") {
		return s
	}
	return strings.ReplaceAll(s[1:len(s)-1], "``", "`")
}

// unquoteString strips the single quotes of a String token and resolves
// the escape sequences the lexer admits.
func unquoteString(s string) string {
	body := s[1 : len(s)-1]
	body = strings.ReplaceAll(body, `\'`, "'")
	body = strings.ReplaceAll(body, `\\`, `\`)
	return body
}
