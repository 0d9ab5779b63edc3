package syntax

import "strings"

type lexMode uint8

const (
	modeExpr lexMode = iota
	modeString
	modeIndString
)

// lexFrame tracks one level of string/interpolation nesting. Braces are
// counted in expression frames so that the `}` closing an interpolation can
// be told apart from the one closing an attribute set.
type lexFrame struct {
	mode   lexMode
	braces int
}

type lexer struct {
	src    string
	toks   []*Token
	frames []lexFrame
	start  int
	pos    int
}

// Lex splits src into tokens. It never fails: bytes that do not form a valid
// token are emitted as [TokenError]. Concatenating the text of the returned
// tokens yields src.
func Lex(src string) []*Token {
	l := &lexer{
		src:    src,
		frames: []lexFrame{{mode: modeExpr}},
	}

	for l.pos < len(l.src) {
		l.start = l.pos

		switch l.top().mode {
		case modeString:
			l.lexString()
		case modeIndString:
			l.lexIndString()
		default:
			l.lexExpr()
		}
	}

	return l.toks
}

func (l *lexer) top() *lexFrame {
	return &l.frames[len(l.frames)-1]
}

func (l *lexer) push(m lexMode) {
	l.frames = append(l.frames, lexFrame{mode: m})
}

func (l *lexer) pop() {
	if len(l.frames) > 1 {
		l.frames = l.frames[:len(l.frames)-1]
	}
}

func (l *lexer) emit(k Kind) {
	if l.pos == l.start {
		return
	}

	l.toks = append(l.toks, &Token{
		kind:   k,
		text:   l.src[l.start:l.pos],
		offset: l.start,
	})
	l.start = l.pos
}

func (l *lexer) peekAt(i int) byte {
	if l.pos+i < len(l.src) {
		return l.src[l.pos+i]
	}

	return 0
}

func (l *lexer) rest() string {
	return l.src[l.pos:]
}

func (l *lexer) lexExpr() {
	c := l.src[l.pos]

	switch {
	case isSpace(c):
		for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
			l.pos++
		}

		l.emit(TokenWhitespace)

		return

	case c == '#':
		end := strings.IndexByte(l.rest(), '\n')
		if end < 0 {
			l.pos = len(l.src)
		} else {
			l.pos += end
		}

		l.emit(TokenComment)

		return

	case strings.HasPrefix(l.rest(), "/*"):
		end := strings.Index(l.src[l.pos+2:], "*/")
		if end < 0 {
			l.pos = len(l.src)
			l.emit(TokenError)

			return
		}

		l.pos += 2 + end + 2
		l.emit(TokenComment)

		return

	case c == '"':
		l.pos++
		l.emit(TokenStringStart)
		l.push(modeString)

		return

	case strings.HasPrefix(l.rest(), "''"):
		l.pos += 2
		l.emit(TokenIndStringStart)
		l.push(modeIndString)

		return

	case strings.HasPrefix(l.rest(), "${"):
		l.pos += 2
		l.emit(TokenInterpolStart)
		l.push(modeExpr)

		return

	case c == '{':
		l.top().braces++
		l.pos++
		l.emit(TokenLBrace)

		return

	case c == '}':
		l.pos++
		if l.top().braces == 0 && len(l.frames) > 1 {
			l.pop()
			l.emit(TokenInterpolEnd)

			return
		}

		if l.top().braces > 0 {
			l.top().braces--
		}

		l.emit(TokenRBrace)

		return
	}

	if n := l.matchPath(); n > 0 {
		l.pos += n
		l.emit(TokenPath)

		return
	}

	if c == '<' {
		if n := matchSearchPath(l.rest()); n > 0 {
			l.pos += n
			l.emit(TokenSearchPath)

			return
		}
	}

	if isIdentStart(c) {
		if n := matchURI(l.rest()); n > 0 {
			l.pos += n
			l.emit(TokenURI)

			return
		}

		for l.pos < len(l.src) && isIdentChar(l.src[l.pos]) {
			l.pos++
		}

		if kw, ok := keywords[l.src[l.start:l.pos]]; ok {
			l.emit(kw)
		} else {
			l.emit(TokenIdent)
		}

		return
	}

	if isDigit(c) || (c == '.' && isDigit(l.peekAt(1))) {
		l.emit(l.lexNumber())

		return
	}

	if k, n := matchPunct(l.rest()); n > 0 {
		l.pos += n
		l.emit(k)

		return
	}

	l.pos++
	l.emit(TokenError)
}

func (l *lexer) lexNumber() Kind {
	k := TokenInteger
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}

	if l.peekAt(0) == '.' && (isDigit(l.peekAt(1)) || l.pos > l.start) {
		k = TokenFloat
		l.pos++

		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}

	if k == TokenFloat && (l.peekAt(0) == 'e' || l.peekAt(0) == 'E') {
		i := 1
		if l.peekAt(1) == '+' || l.peekAt(1) == '-' {
			i++
		}

		if isDigit(l.peekAt(i)) {
			l.pos += i
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.pos++
			}
		}
	}

	return k
}

func (l *lexer) lexString() {
	for l.pos < len(l.src) {
		switch {
		case l.src[l.pos] == '\\':
			l.pos += 2
			if l.pos > len(l.src) {
				l.pos = len(l.src)
			}

		case strings.HasPrefix(l.rest(), "$${"):
			l.pos += 3

		case strings.HasPrefix(l.rest(), "${"):
			l.emit(TokenStringContent)
			l.pos += 2
			l.emit(TokenInterpolStart)
			l.push(modeExpr)

			return

		case l.src[l.pos] == '"':
			l.emit(TokenStringContent)
			l.pos++
			l.emit(TokenStringEnd)
			l.pop()

			return

		default:
			l.pos++
		}
	}

	l.emit(TokenStringContent)
}

func (l *lexer) lexIndString() {
	for l.pos < len(l.src) {
		switch {
		case strings.HasPrefix(l.rest(), "'''"), strings.HasPrefix(l.rest(), "''$"):
			l.pos += 3

		case strings.HasPrefix(l.rest(), "''\\"):
			l.pos += 4
			if l.pos > len(l.src) {
				l.pos = len(l.src)
			}

		case strings.HasPrefix(l.rest(), "''"):
			l.emit(TokenStringContent)
			l.pos += 2
			l.emit(TokenIndStringEnd)
			l.pop()

			return

		case strings.HasPrefix(l.rest(), "$${"):
			l.pos += 3

		case strings.HasPrefix(l.rest(), "${"):
			l.emit(TokenStringContent)
			l.pos += 2
			l.emit(TokenInterpolStart)
			l.push(modeExpr)

			return

		default:
			l.pos++
		}
	}

	l.emit(TokenStringContent)
}

// matchPath returns the length of a path literal at the current position:
// `./a`, `../a`, `/a`, `~/a` or `a/b`, optionally with a trailing slash.
func (l *lexer) matchPath() int {
	s := l.rest()
	i := 0

	if strings.HasPrefix(s, "~/") {
		i = 1
	} else {
		for i < len(s) && isPathChar(s[i]) {
			i++
		}
	}

	segments := 0
	for i+1 < len(s) && s[i] == '/' && isPathChar(s[i+1]) {
		i++
		for i < len(s) && isPathChar(s[i]) {
			i++
		}

		segments++
	}

	if segments == 0 {
		return 0
	}

	if i < len(s) && s[i] == '/' && (i+1 >= len(s) || s[i+1] != '/') {
		i++
	}

	return i
}

func matchSearchPath(s string) int {
	i := 1
	for i < len(s) && (isPathChar(s[i]) || s[i] == '/') {
		i++
	}

	if i > 1 && i < len(s) && s[i] == '>' {
		return i + 1
	}

	return 0
}

// matchURI returns the length of an unquoted URI such as `github:owner/repo`.
func matchURI(s string) int {
	i := 1
	for i < len(s) && isSchemeChar(s[i]) {
		i++
	}

	if i >= len(s) || s[i] != ':' {
		return 0
	}

	i++
	start := i

	for i < len(s) && isURIChar(s[i]) {
		i++
	}

	if i == start {
		return 0
	}

	return i
}

var puncts = []struct {
	text string
	kind Kind
}{
	{"...", TokenEllipsis},
	{"++", TokenConcat},
	{"//", TokenUpdate},
	{"&&", TokenAnd},
	{"||", TokenOr2},
	{"->", TokenImplication},
	{"==", TokenEqual},
	{"!=", TokenNotEqual},
	{"<=", TokenLessOrEq},
	{">=", TokenMoreOrEq},
	{"|>", TokenPipeRight},
	{"<|", TokenPipeLeft},
	{"[", TokenLBrack},
	{"]", TokenRBrack},
	{"(", TokenLParen},
	{")", TokenRParen},
	{"=", TokenAssign},
	{"@", TokenAt},
	{":", TokenColon},
	{",", TokenComma},
	{".", TokenDot},
	{"?", TokenQuestion},
	{";", TokenSemicolon},
	{"+", TokenAdd},
	{"-", TokenSub},
	{"*", TokenMul},
	{"/", TokenDiv},
	{"<", TokenLess},
	{">", TokenMore},
	{"!", TokenNot},
}

func matchPunct(s string) (Kind, int) {
	for _, p := range puncts {
		if strings.HasPrefix(s, p.text) {
			return p.kind, len(p.text)
		}
	}

	return TokenError, 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '\'' || c == '-'
}

func isPathChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '.' || c == '-' || c == '+'
}

func isSchemeChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '+' || c == '-' || c == '.'
}

func isURIChar(c byte) bool {
	if isIdentStart(c) || isDigit(c) {
		return true
	}

	return strings.IndexByte("%/?:@&=+$,-_.!~*'", c) >= 0
}
