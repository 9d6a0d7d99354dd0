// Package: eqgraph/builder
//
// parser.go — Pratt parser producing a small expression AST that the
// Factory later resolves and binds into a node graph.

package builder

// node is one AST node. The AST is transient: it exists only between parse
// and bind inside a single Build call, so resolution failures never leak a
// half-built graph.
type node interface {
	at() int
}

type numNode struct {
	val float64
	pos int
}

type identNode struct {
	name string
	pos  int
}

type unaryNode struct {
	op      string // registered function name, e.g. "negate"
	operand node
	pos     int
}

type binaryNode struct {
	op       string // registered function name, e.g. "add"
	lhs, rhs node
	pos      int
}

type callNode struct {
	name    string
	args    []node
	kwNames []string // declaration order
	kwVals  []node
	pos     int
}

func (n *numNode) at() int    { return n.pos }
func (n *identNode) at() int  { return n.pos }
func (n *unaryNode) at() int  { return n.pos }
func (n *binaryNode) at() int { return n.pos }
func (n *callNode) at() int   { return n.pos }

// binaryFuncs maps operator lexemes to the registered function names they
// resolve through, so even the arithmetic primitives go through the
// function table.
var binaryFuncs = map[tokenType]string{
	tokPlus:    "add",
	tokMinus:   "subtract",
	tokStar:    "multiply",
	tokSlash:   "divide",
	tokPower:   "power",
	tokPercent: "mod",
}

// Binding powers. ** is right-associative and binds tighter than unary
// minus, which in turn binds tighter than the multiplicative tier.
const (
	bpAdditive       = 10
	bpMultiplicative = 20
	bpUnary          = 25
	bpPower          = 30
)

func leftBindingPower(t tokenType) int {
	switch t {
	case tokPlus, tokMinus:
		return bpAdditive
	case tokStar, tokSlash, tokPercent:
		return bpMultiplicative
	case tokPower:
		return bpPower
	default:
		return 0
	}
}

// parser holds one token of lookahead over the lexer.
type parser struct {
	lex *lexer
	tok token
}

// parse tokenizes and parses src into an AST.
func parse(src string) (node, error) {
	p := &parser{lex: &lexer{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	root, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if p.tok.typ != tokEOF {
		return nil, syntaxErrf(p.tok.pos, "unexpected %q", p.tok.text)
	}
	return root, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// expression parses with precedence climbing: it consumes prefix material,
// then folds in binary operators while their binding power exceeds minBP.
func (p *parser) expression(minBP int) (node, error) {
	lhs, err := p.prefix()
	if err != nil {
		return nil, err
	}

	for {
		op := p.tok
		lbp := leftBindingPower(op.typ)
		if lbp == 0 || lbp <= minBP {
			return lhs, nil
		}
		if err = p.advance(); err != nil {
			return nil, err
		}

		// Right associativity for **: recurse with lbp-1 so an equal-power
		// operator on the right binds first.
		nextBP := lbp
		if op.typ == tokPower {
			nextBP = lbp - 1
		}
		rhs, err := p.expression(nextBP)
		if err != nil {
			return nil, err
		}
		lhs = &binaryNode{op: binaryFuncs[op.typ], lhs: lhs, rhs: rhs, pos: op.pos}
	}
}

// prefix parses a number, identifier, call, parenthesized group, or unary
// minus.
func (p *parser) prefix() (node, error) {
	tok := p.tok
	switch tok.typ {
	case tokNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &numNode{val: tok.num, pos: tok.pos}, nil

	case tokIdent:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.typ == tokLParen {
			return p.call(tok)
		}
		return &identNode{name: tok.text, pos: tok.pos}, nil

	case tokMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.expression(bpUnary)
		if err != nil {
			return nil, err
		}
		return &unaryNode{op: "negate", operand: operand, pos: tok.pos}, nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		if p.tok.typ != tokRParen {
			return nil, syntaxErrf(p.tok.pos, "expected ')', found %q", p.tok.text)
		}
		if err = p.advance(); err != nil {
			return nil, err
		}
		return inner, nil

	case tokEOF:
		return nil, syntaxErrf(tok.pos, "unexpected end of expression")

	default:
		return nil, syntaxErrf(tok.pos, "unexpected %q", tok.text)
	}
}

// call parses "name( ... )" after the identifier; the current token is '('.
// Positional arguments must precede keyword arguments.
func (p *parser) call(name token) (node, error) {
	out := &callNode{name: name.text, pos: name.pos}
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}

	// Empty argument list.
	if p.tok.typ == tokRParen {
		return out, p.advance()
	}

	for {
		// Keyword argument: ident '=' expr (one token of lookahead decides).
		if p.tok.typ == tokIdent {
			save := *p.lex
			ident := p.tok
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.tok.typ == tokAssign {
				if err := p.advance(); err != nil {
					return nil, err
				}
				val, err := p.expression(0)
				if err != nil {
					return nil, err
				}
				for _, have := range out.kwNames {
					if have == ident.text {
						return nil, syntaxErrf(ident.pos, "duplicate keyword %q", ident.text)
					}
				}
				out.kwNames = append(out.kwNames, ident.text)
				out.kwVals = append(out.kwVals, val)
				if done, err := p.callSeparator(out); done || err != nil {
					return out, err
				}
				continue
			}
			// Not a keyword: rewind and parse as a full expression.
			*p.lex = save
			p.tok = ident
		}

		if len(out.kwNames) > 0 {
			return nil, syntaxErrf(p.tok.pos, "positional argument after keyword argument")
		}
		arg, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		out.args = append(out.args, arg)
		if done, err := p.callSeparator(out); done || err != nil {
			return out, err
		}
	}
}

// callSeparator consumes "," (more arguments follow) or ")" (call is done).
func (p *parser) callSeparator(out *callNode) (bool, error) {
	switch p.tok.typ {
	case tokComma:
		return false, p.advance()
	case tokRParen:
		return true, p.advance()
	default:
		return false, syntaxErrf(p.tok.pos, "expected ',' or ')', found %q", p.tok.text)
	}
}
