package syntax

// Kind tags every [Token] and [Node] in a [Tree].
type Kind uint16

const (
	TokenError Kind = iota

	// Trivia.
	TokenWhitespace
	TokenComment

	// Keywords.
	TokenAssert
	TokenElse
	TokenIf
	TokenIn
	TokenInherit
	TokenLet
	TokenOr
	TokenRec
	TokenThen
	TokenWith

	// Punctuation.
	TokenLBrace
	TokenRBrace
	TokenLBrack
	TokenRBrack
	TokenLParen
	TokenRParen
	TokenAssign
	TokenAt
	TokenColon
	TokenComma
	TokenDot
	TokenEllipsis
	TokenQuestion
	TokenSemicolon

	// Operators.
	TokenConcat
	TokenUpdate
	TokenAdd
	TokenSub
	TokenMul
	TokenDiv
	TokenAnd
	TokenOr2
	TokenImplication
	TokenEqual
	TokenNotEqual
	TokenLess
	TokenLessOrEq
	TokenMore
	TokenMoreOrEq
	TokenNot
	TokenPipeRight
	TokenPipeLeft

	// Literals.
	TokenIdent
	TokenInteger
	TokenFloat
	TokenPath
	TokenSearchPath
	TokenURI

	// Strings. Content tokens carry escapes verbatim.
	TokenStringStart
	TokenStringContent
	TokenStringEnd
	TokenIndStringStart
	TokenIndStringEnd
	TokenInterpolStart
	TokenInterpolEnd

	NodeRoot
	NodeError
	NodeApply
	NodeAssert
	NodeAttrpath
	NodeAttrpathValue
	NodeAttrSet
	NodeBinOp
	NodeDynamic
	NodeHasAttr
	NodeIdent
	NodeIfElse
	NodeInherit
	NodeInheritFrom
	NodeInterpol
	NodeLambda
	NodeLetIn
	NodeList
	NodeLiteral
	NodeParen
	NodePath
	NodePattern
	NodePatBind
	NodePatEntry
	NodeSelect
	NodeString
	NodeUnaryOp
	NodeWith

	kindCount
)

var kindNames = [kindCount]string{
	TokenError:          "TOKEN_ERROR",
	TokenWhitespace:     "TOKEN_WHITESPACE",
	TokenComment:        "TOKEN_COMMENT",
	TokenAssert:         "TOKEN_ASSERT",
	TokenElse:           "TOKEN_ELSE",
	TokenIf:             "TOKEN_IF",
	TokenIn:             "TOKEN_IN",
	TokenInherit:        "TOKEN_INHERIT",
	TokenLet:            "TOKEN_LET",
	TokenOr:             "TOKEN_OR",
	TokenRec:            "TOKEN_REC",
	TokenThen:           "TOKEN_THEN",
	TokenWith:           "TOKEN_WITH",
	TokenLBrace:         "TOKEN_L_BRACE",
	TokenRBrace:         "TOKEN_R_BRACE",
	TokenLBrack:         "TOKEN_L_BRACK",
	TokenRBrack:         "TOKEN_R_BRACK",
	TokenLParen:         "TOKEN_L_PAREN",
	TokenRParen:         "TOKEN_R_PAREN",
	TokenAssign:         "TOKEN_ASSIGN",
	TokenAt:             "TOKEN_AT",
	TokenColon:          "TOKEN_COLON",
	TokenComma:          "TOKEN_COMMA",
	TokenDot:            "TOKEN_DOT",
	TokenEllipsis:       "TOKEN_ELLIPSIS",
	TokenQuestion:       "TOKEN_QUESTION",
	TokenSemicolon:      "TOKEN_SEMICOLON",
	TokenConcat:         "TOKEN_CONCAT",
	TokenUpdate:         "TOKEN_UPDATE",
	TokenAdd:            "TOKEN_ADD",
	TokenSub:            "TOKEN_SUB",
	TokenMul:            "TOKEN_MUL",
	TokenDiv:            "TOKEN_DIV",
	TokenAnd:            "TOKEN_AND_AND",
	TokenOr2:            "TOKEN_OR_OR",
	TokenImplication:    "TOKEN_IMPLICATION",
	TokenEqual:          "TOKEN_EQUAL",
	TokenNotEqual:       "TOKEN_NOT_EQUAL",
	TokenLess:           "TOKEN_LESS",
	TokenLessOrEq:       "TOKEN_LESS_OR_EQ",
	TokenMore:           "TOKEN_MORE",
	TokenMoreOrEq:       "TOKEN_MORE_OR_EQ",
	TokenNot:            "TOKEN_INVERT",
	TokenPipeRight:      "TOKEN_PIPE_RIGHT",
	TokenPipeLeft:       "TOKEN_PIPE_LEFT",
	TokenIdent:          "TOKEN_IDENT",
	TokenInteger:        "TOKEN_INTEGER",
	TokenFloat:          "TOKEN_FLOAT",
	TokenPath:           "TOKEN_PATH",
	TokenSearchPath:     "TOKEN_SEARCH_PATH",
	TokenURI:            "TOKEN_URI",
	TokenStringStart:    "TOKEN_STRING_START",
	TokenStringContent:  "TOKEN_STRING_CONTENT",
	TokenStringEnd:      "TOKEN_STRING_END",
	TokenIndStringStart: "TOKEN_IND_STRING_START",
	TokenIndStringEnd:   "TOKEN_IND_STRING_END",
	TokenInterpolStart:  "TOKEN_INTERPOL_START",
	TokenInterpolEnd:    "TOKEN_INTERPOL_END",
	NodeRoot:            "NODE_ROOT",
	NodeError:           "NODE_ERROR",
	NodeApply:           "NODE_APPLY",
	NodeAssert:          "NODE_ASSERT",
	NodeAttrpath:        "NODE_ATTRPATH",
	NodeAttrpathValue:   "NODE_ATTRPATH_VALUE",
	NodeAttrSet:         "NODE_ATTR_SET",
	NodeBinOp:           "NODE_BIN_OP",
	NodeDynamic:         "NODE_DYNAMIC",
	NodeHasAttr:         "NODE_HAS_ATTR",
	NodeIdent:           "NODE_IDENT",
	NodeIfElse:          "NODE_IF_ELSE",
	NodeInherit:         "NODE_INHERIT",
	NodeInheritFrom:     "NODE_INHERIT_FROM",
	NodeInterpol:        "NODE_INTERPOL",
	NodeLambda:          "NODE_LAMBDA",
	NodeLetIn:           "NODE_LET_IN",
	NodeList:            "NODE_LIST",
	NodeLiteral:         "NODE_LITERAL",
	NodeParen:           "NODE_PAREN",
	NodePath:            "NODE_PATH",
	NodePattern:         "NODE_PATTERN",
	NodePatBind:         "NODE_PAT_BIND",
	NodePatEntry:        "NODE_PAT_ENTRY",
	NodeSelect:          "NODE_SELECT",
	NodeString:          "NODE_STRING",
	NodeUnaryOp:         "NODE_UNARY_OP",
	NodeWith:            "NODE_WITH",
}

func (k Kind) String() string {
	switch {
	case k < kindCount:
		return kindNames[k]
	case k == kindCount:
		return "EOF"
	}

	return "UNKNOWN"
}

// IsTrivia reports whether tokens of this kind carry no syntactic meaning.
func (k Kind) IsTrivia() bool {
	return k == TokenWhitespace || k == TokenComment
}

// IsNode reports whether k tags a [Node] rather than a [Token].
func (k Kind) IsNode() bool {
	return k >= NodeRoot && k < kindCount
}

var keywords = map[string]Kind{
	"assert":  TokenAssert,
	"else":    TokenElse,
	"if":      TokenIf,
	"in":      TokenIn,
	"inherit": TokenInherit,
	"let":     TokenLet,
	"or":      TokenOr,
	"rec":     TokenRec,
	"then":    TokenThen,
	"with":    TokenWith,
}
