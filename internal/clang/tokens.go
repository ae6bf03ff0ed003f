package clang

import (
	"regexp"
	"strings"
	"unicode"
)

// wrappedQuotes matches a token fully wrapped in one layer of double
// quotes with none embedded.
var wrappedQuotes = regexp.MustCompile(`^"[^"]*"$`)

// splitTokens splits a command line on unquoted whitespace. Quote
// characters toggle quoting but are preserved in the emitted token, so
// stripQuotes can tell fully wrapped tokens from partially quoted ones.
// An unterminated quote runs to the end of the line.
func splitTokens(line string) []string {
	var tokens []string
	var cur strings.Builder
	inSingle, inDouble := false, false

	for _, r := range line {
		switch {
		case r == '\'' && !inDouble:
			inSingle = !inSingle
			cur.WriteRune(r)
		case r == '"' && !inSingle:
			inDouble = !inDouble
			cur.WriteRune(r)
		case unicode.IsSpace(r) && !inSingle && !inDouble:
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

// stripQuotes removes the enclosing double quotes from a fully wrapped
// token. Tokens that are not fully wrapped pass through unchanged.
func stripQuotes(token string) string {
	if wrappedQuotes.MatchString(token) {
		return token[1 : len(token)-1]
	}
	return token
}
