package syntax

import (
	"fmt"
	"unicode/utf8"
)

// tokenEOF is returned by the parser's lookahead once every token has been
// consumed. It never appears in a tree.
const tokenEOF = kindCount

// Parse builds a lossless [Tree] from src. It never fails: problems are
// reported by [Tree.Errors] and the tokens involved are kept in [NodeError]
// nodes, so [Tree.String] always returns src unchanged.
func Parse(src string) *Tree {
	p := &parser{
		toks: Lex(src),
		b:    newBuilder(src),
	}

	if !utf8.ValidString(src) {
		p.errors = append(p.errors, ParseError{
			Message: "source is not valid UTF-8",
			Range:   Range{Start: 0, End: len(src)},
		})
	}

	if p.peek() != tokenEOF {
		p.parseExpr()
	}

	for p.peek() != tokenEOF {
		p.bumpError("unexpected token after expression")
	}

	p.skipTrivia()

	return &Tree{
		root:   p.b.finish(),
		source: src,
		errors: p.errors,
	}
}

type parser struct {
	b      *builder
	toks   []*Token
	errors []ParseError
	pos    int
}

// skipTrivia moves pending whitespace and comments into the current node.
func (p *parser) skipTrivia() {
	for p.pos < len(p.toks) && p.toks[p.pos].kind.IsTrivia() {
		p.b.token(p.toks[p.pos])
		p.pos++
	}
}

// peekN returns the kind of the n-th upcoming significant token.
func (p *parser) peekN(n int) Kind {
	for i := p.pos; i < len(p.toks); i++ {
		if p.toks[i].kind.IsTrivia() {
			continue
		}

		if n == 0 {
			return p.toks[i].kind
		}

		n--
	}

	return tokenEOF
}

func (p *parser) peek() Kind {
	return p.peekN(0)
}

// nextRange returns the range of the next significant token, or an empty
// range at the end of input.
func (p *parser) nextRange() Range {
	for i := p.pos; i < len(p.toks); i++ {
		if !p.toks[i].kind.IsTrivia() {
			return p.toks[i].Range()
		}
	}

	end := len(p.b.stack[0].src)

	return Range{Start: end, End: end}
}

func (p *parser) bump() {
	p.skipTrivia()

	if p.pos < len(p.toks) {
		p.b.token(p.toks[p.pos])
		p.pos++
	}
}

func (p *parser) startNode(k Kind) {
	p.skipTrivia()
	p.b.startNode(k)
}

func (p *parser) checkpoint() checkpoint {
	p.skipTrivia()

	return p.b.checkpoint()
}

func (p *parser) startNodeAt(cp checkpoint, k Kind) {
	p.b.startNodeAt(cp, k)
}

func (p *parser) finishNode() {
	p.b.finishNode()
}

func (p *parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, ParseError{
		Message: fmt.Sprintf(format, args...),
		Range:   p.nextRange(),
	})
}

// bumpError consumes the next token into a [NodeError] node.
func (p *parser) bumpError(msg string) {
	p.errorf("%s, found %s", msg, p.peek())
	p.startNode(NodeError)
	p.bump()
	p.finishNode()
}

func (p *parser) expect(k Kind) bool {
	if p.peek() == k {
		p.bump()

		return true
	}

	p.errorf("expected %s, found %s", k, p.peek())

	return false
}

// recoverTo discards tokens until k (which is then consumed) or the end of
// input.
func (p *parser) recoverTo(k Kind) {
	for {
		switch p.peek() {
		case k:
			p.bump()

			return
		case tokenEOF:
			p.errorf("expected %s, found %s", k, tokenEOF)

			return
		}

		p.bumpError(fmt.Sprintf("expected %s", k))
	}
}

func (p *parser) parseExpr() {
	switch p.peek() {
	case TokenLet:
		if p.peekN(1) != TokenLBrace {
			p.parseLetIn()

			return
		}

	case TokenWith:
		p.parseKeywordExpr(NodeWith)

		return

	case TokenAssert:
		p.parseKeywordExpr(NodeAssert)

		return

	case TokenIf:
		p.parseIfElse()

		return

	case TokenIdent:
		if k := p.peekN(1); k == TokenColon || k == TokenAt {
			p.parseLambda()

			return
		}

	case TokenLBrace:
		if p.isPattern() {
			p.parseLambda()

			return
		}
	}

	p.parseBinary(0)
}

// parseKeywordExpr parses `with e; e` and `assert e; e`.
func (p *parser) parseKeywordExpr(k Kind) {
	p.startNode(k)
	p.bump()
	p.parseExpr()
	p.expect(TokenSemicolon)
	p.parseExpr()
	p.finishNode()
}

func (p *parser) parseIfElse() {
	p.startNode(NodeIfElse)
	p.bump()
	p.parseExpr()
	p.expect(TokenThen)
	p.parseExpr()
	p.expect(TokenElse)
	p.parseExpr()
	p.finishNode()
}

func (p *parser) parseLetIn() {
	p.startNode(NodeLetIn)
	p.bump()
	p.parseBindings(TokenIn)
	p.expect(TokenIn)
	p.parseExpr()
	p.finishNode()
}

// isPattern decides whether the `{` at the cursor opens a lambda pattern
// rather than an attribute set.
func (p *parser) isPattern() bool {
	switch p.peekN(1) {
	case TokenEllipsis:
		return true
	case TokenRBrace:
		k := p.peekN(2)

		return k == TokenColon || k == TokenAt
	case TokenIdent:
		switch p.peekN(2) {
		case TokenComma, TokenQuestion:
			return true
		case TokenRBrace:
			k := p.peekN(3)

			return k == TokenColon || k == TokenAt
		}
	}

	return false
}

func (p *parser) parseLambda() {
	p.startNode(NodeLambda)

	switch p.peek() {
	case TokenIdent:
		if p.peekN(1) == TokenAt {
			p.parsePattern(true)
		} else {
			p.parseIdent()
		}

	case TokenLBrace:
		p.parsePattern(false)
	}

	p.expect(TokenColon)
	p.parseExpr()
	p.finishNode()
}

func (p *parser) parsePattern(bindFirst bool) {
	p.startNode(NodePattern)

	if bindFirst {
		p.startNode(NodePatBind)
		p.parseIdent()
		p.bump()
		p.finishNode()
	}

	p.expect(TokenLBrace)

	for {
		k := p.peek()
		if k == TokenRBrace || k == tokenEOF {
			break
		}

		switch k {
		case TokenEllipsis:
			p.bump()

		case TokenIdent:
			p.startNode(NodePatEntry)
			p.parseIdent()

			if p.peek() == TokenQuestion {
				p.bump()
				p.parseExpr()
			}

			p.finishNode()

		default:
			p.bumpError("expected pattern entry")

			continue
		}

		if p.peek() != TokenComma {
			break
		}

		p.bump()
	}

	p.expect(TokenRBrace)

	if !bindFirst && p.peek() == TokenAt {
		p.startNode(NodePatBind)
		p.bump()

		if p.peek() == TokenIdent {
			p.parseIdent()
		} else {
			p.errorf("expected %s, found %s", TokenIdent, p.peek())
		}

		p.finishNode()
	}

	p.finishNode()
}

type bindingPower struct {
	left, right int
}

var infixPowers = map[Kind]bindingPower{
	TokenPipeRight:   {1, 2},
	TokenPipeLeft:    {1, 2},
	TokenImplication: {4, 3},
	TokenOr2:         {5, 6},
	TokenAnd:         {7, 8},
	TokenEqual:       {9, 10},
	TokenNotEqual:    {9, 10},
	TokenLess:        {11, 12},
	TokenLessOrEq:    {11, 12},
	TokenMore:        {11, 12},
	TokenMoreOrEq:    {11, 12},
	TokenUpdate:      {14, 13},
	TokenAdd:         {17, 18},
	TokenSub:         {17, 18},
	TokenMul:         {19, 20},
	TokenDiv:         {19, 20},
	TokenConcat:      {22, 21},
}

const (
	notPower     = 15
	hasAttrPower = 23
	negatePower  = 24
)

func (p *parser) parseBinary(minPower int) {
	cp := p.checkpoint()

	switch p.peek() {
	case TokenNot:
		p.startNode(NodeUnaryOp)
		p.bump()
		p.parseBinary(notPower)
		p.finishNode()

	case TokenSub:
		p.startNode(NodeUnaryOp)
		p.bump()
		p.parseBinary(negatePower)
		p.finishNode()

	default:
		p.parseApplication()
	}

	for {
		k := p.peek()

		if k == TokenQuestion {
			if hasAttrPower < minPower {
				return
			}

			p.startNodeAt(cp, NodeHasAttr)
			p.bump()
			p.parseAttrpath()
			p.finishNode()

			continue
		}

		bp, ok := infixPowers[k]
		if !ok || bp.left < minPower {
			return
		}

		p.startNodeAt(cp, NodeBinOp)
		p.bump()
		p.parseBinary(bp.right)
		p.finishNode()
	}
}

func (p *parser) parseApplication() {
	cp := p.checkpoint()
	p.parseSelect()

	for startsSimple(p.peek()) {
		p.startNodeAt(cp, NodeApply)
		p.parseSelect()
		p.finishNode()
	}
}

func startsSimple(k Kind) bool {
	switch k {
	case TokenIdent, TokenInteger, TokenFloat, TokenPath, TokenSearchPath, TokenURI,
		TokenStringStart, TokenIndStringStart, TokenLParen, TokenLBrack, TokenLBrace, TokenRec:
		return true
	}

	return false
}

func (p *parser) parseSelect() {
	cp := p.checkpoint()
	p.parseSimple()

	if p.peek() != TokenDot {
		return
	}

	p.startNodeAt(cp, NodeSelect)
	p.bump()
	p.parseAttrpath()

	if p.peek() == TokenOr {
		p.bump()
		p.parseSelect()
	}

	p.finishNode()
}

func (p *parser) parseSimple() {
	switch p.peek() {
	case TokenIdent:
		p.parseIdent()

	case TokenInteger, TokenFloat, TokenURI:
		p.startNode(NodeLiteral)
		p.bump()
		p.finishNode()

	case TokenPath, TokenSearchPath:
		p.startNode(NodePath)
		p.bump()
		p.finishNode()

	case TokenStringStart:
		p.parseString(TokenStringEnd)

	case TokenIndStringStart:
		p.parseString(TokenIndStringEnd)

	case TokenLParen:
		p.startNode(NodeParen)
		p.bump()
		p.parseExpr()
		p.expect(TokenRParen)
		p.finishNode()

	case TokenLBrack:
		p.parseList()

	case TokenLBrace, TokenRec, TokenLet:
		p.parseAttrSet()

	case TokenRBrace, TokenRParen, TokenRBrack, TokenSemicolon, TokenComma, TokenInterpolEnd,
		TokenIn, TokenThen, TokenElse, tokenEOF:
		p.errorf("expected expression, found %s", p.peek())

	default:
		p.bumpError("expected expression")
	}
}

func (p *parser) parseIdent() {
	p.startNode(NodeIdent)
	p.bump()
	p.finishNode()
}

func (p *parser) parseList() {
	p.startNode(NodeList)
	p.bump()

	for {
		k := p.peek()
		if k == TokenRBrack || k == tokenEOF {
			break
		}

		if startsSimple(k) {
			p.parseSelect()
		} else {
			p.bumpError("expected list element")
		}
	}

	p.expect(TokenRBrack)
	p.finishNode()
}

func (p *parser) parseString(end Kind) {
	p.startNode(NodeString)
	p.bump()

	for {
		switch p.peek() {
		case TokenStringContent:
			p.bump()

		case TokenInterpolStart:
			p.startNode(NodeInterpol)
			p.bump()
			p.parseExpr()
			p.recoverTo(TokenInterpolEnd)
			p.finishNode()

		case end:
			p.bump()
			p.finishNode()

			return

		default:
			p.errorf("unterminated string")
			p.finishNode()

			return
		}
	}
}

// parseAttrSet parses `{ ... }`, `rec { ... }` and the legacy `let { ... }`.
func (p *parser) parseAttrSet() {
	p.startNode(NodeAttrSet)

	if k := p.peek(); k == TokenRec || k == TokenLet {
		p.bump()
	}

	p.expect(TokenLBrace)
	p.parseBindings(TokenRBrace)
	p.expect(TokenRBrace)
	p.finishNode()
}

func (p *parser) parseBindings(end Kind) {
	for {
		switch p.peek() {
		case end, tokenEOF:
			return

		case TokenInherit:
			p.parseInherit()

		case TokenIdent, TokenOr, TokenStringStart, TokenInterpolStart:
			p.parseAttrpathValue()

		default:
			p.bumpError("expected binding")
		}
	}
}

func (p *parser) parseAttrpathValue() {
	p.startNode(NodeAttrpathValue)
	p.parseAttrpath()
	p.expect(TokenAssign)
	p.parseExpr()
	p.expect(TokenSemicolon)
	p.finishNode()
}

func (p *parser) parseInherit() {
	p.startNode(NodeInherit)
	p.bump()

	if p.peek() == TokenLParen {
		p.startNode(NodeInheritFrom)
		p.bump()
		p.parseExpr()
		p.expect(TokenRParen)
		p.finishNode()
	}

	for startsAttr(p.peek()) {
		p.parseAttr()
	}

	p.expect(TokenSemicolon)
	p.finishNode()
}

func startsAttr(k Kind) bool {
	return k == TokenIdent || k == TokenOr || k == TokenStringStart || k == TokenInterpolStart
}

func (p *parser) parseAttrpath() {
	p.startNode(NodeAttrpath)
	p.parseAttr()

	for p.peek() == TokenDot {
		p.bump()
		p.parseAttr()
	}

	p.finishNode()
}

func (p *parser) parseAttr() {
	switch p.peek() {
	case TokenIdent, TokenOr:
		p.parseIdent()

	case TokenStringStart:
		p.parseString(TokenStringEnd)

	case TokenInterpolStart:
		p.startNode(NodeDynamic)
		p.bump()
		p.parseExpr()
		p.recoverTo(TokenInterpolEnd)
		p.finishNode()

	default:
		p.errorf("expected attribute, found %s", p.peek())
	}
}
