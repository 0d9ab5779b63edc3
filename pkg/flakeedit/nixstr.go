package flakeedit

import (
	"strings"

	"github.com/macropower/nixshellgen/pkg/nix/syntax"
)

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"${", `\${`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// QuoteString renders s as a double-quoted Nix string literal.
func QuoteString(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// AttrName renders name as a single attribute path segment. Valid
// identifiers are written bare; anything else is quoted.
func AttrName(name string) string {
	if isIdent(name) {
		return name
	}

	return QuoteString(name)
}

func isIdent(s string) bool {
	toks := syntax.Lex(s)

	return len(toks) == 1 && toks[0].Kind() == syntax.TokenIdent
}
