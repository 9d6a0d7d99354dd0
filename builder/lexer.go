// Package: eqgraph/builder
//
// lexer.go — tokenizer for the equation mini-language.

package builder

import (
	"fmt"
	"strconv"
)

// tokenType enumerates the token kinds of the mini-language.
type tokenType int

const (
	tokEOF tokenType = iota
	tokIdent
	tokNumber
	tokPlus    // +
	tokMinus   // -
	tokStar    // *
	tokSlash   // /
	tokPercent // %
	tokPower   // **
	tokLParen  // (
	tokRParen  // )
	tokComma   // ,
	tokAssign  // = (keyword arguments only)
)

// token is one lexeme with its byte position in the source text.
type token struct {
	typ  tokenType
	text string
	pos  int
	num  float64 // valid when typ == tokNumber
}

// lexer is a single-pass scanner over the equation text.
type lexer struct {
	src string
	pos int
}

// syntaxErrf builds an ErrSyntax with positional context.
func syntaxErrf(pos int, format string, args ...interface{}) error {
	return fmt.Errorf("%s at offset %d: %w", fmt.Sprintf(format, args...), pos, ErrSyntax)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool { return isIdentStart(b) || isDigit(b) }

// next scans and returns the next token.
func (l *lexer) next() (token, error) {
	// 1. Skip whitespace.
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
			continue
		}
		break
	}
	if l.pos >= len(l.src) {
		return token{typ: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	b := l.src[l.pos]

	// 2. Single- and double-character operators.
	switch b {
	case '+':
		l.pos++
		return token{typ: tokPlus, text: "+", pos: start}, nil
	case '-':
		l.pos++
		return token{typ: tokMinus, text: "-", pos: start}, nil
	case '*':
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == '*' {
			l.pos++
			return token{typ: tokPower, text: "**", pos: start}, nil
		}
		return token{typ: tokStar, text: "*", pos: start}, nil
	case '/':
		l.pos++
		return token{typ: tokSlash, text: "/", pos: start}, nil
	case '%':
		l.pos++
		return token{typ: tokPercent, text: "%", pos: start}, nil
	case '(':
		l.pos++
		return token{typ: tokLParen, text: "(", pos: start}, nil
	case ')':
		l.pos++
		return token{typ: tokRParen, text: ")", pos: start}, nil
	case ',':
		l.pos++
		return token{typ: tokComma, text: ",", pos: start}, nil
	case '=':
		l.pos++
		return token{typ: tokAssign, text: "=", pos: start}, nil
	}

	// 3. Numeric literal: digits [.digits] [e[±]digits], or .digits.
	if isDigit(b) || (b == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1])) {
		l.pos++
		for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.') {
			l.pos++
		}
		if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
			l.pos++
			if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
				l.pos++
			}
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.pos++
			}
		}
		text := l.src[start:l.pos]
		num, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token{}, syntaxErrf(start, "malformed number %q", text)
		}
		return token{typ: tokNumber, text: text, pos: start, num: num}, nil
	}

	// 4. Identifier.
	if isIdentStart(b) {
		l.pos++
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		return token{typ: tokIdent, text: l.src[start:l.pos], pos: start}, nil
	}

	return token{}, syntaxErrf(start, "unexpected character %q", string(b))
}
