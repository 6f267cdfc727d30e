package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/real"
)

// exprParser is a small recursive-descent parser over the operator
// surface spec.md §6 exposes: binary +, -, *, /, ^ and the unary
// functions exp, log, sin, cos, tan, cot, sec, csc, applied to literals
// parsed by pkg/parseliteral (via real.FromString) and parenthesized
// sub-expressions. It exists only to give the CLI something to drive
// pkg/real with; it is not part of the core spec.
type exprParser struct {
	tokens []string
	pos    int
}

var tokenRE = regexp.MustCompile(`\d+(?:\.\d*)?(?:[eE][+-]?\d+)?|[A-Za-z]+|[()+\-*/^,]`)

var unaryFuncs = map[string]func(real.Real) real.Real{
	"exp": real.Real.Exp,
	"log": real.Real.Log,
	"sin": real.Real.Sin,
	"cos": real.Real.Cos,
	"tan": real.Real.Tan,
	"cot": real.Real.Cot,
	"sec": real.Real.Sec,
	"csc": real.Real.Csc,
}

// ParseExpr parses a tiny arithmetic expression into a real.Real.
func ParseExpr(s string) (real.Real, error) {
	toks := tokenRE.FindAllString(strings.TrimSpace(s), -1)
	if len(toks) == 0 {
		return real.Real{}, fmt.Errorf("realcalc: empty expression")
	}
	p := &exprParser{tokens: toks}
	r, err := p.parseExpr()
	if err != nil {
		return real.Real{}, err
	}
	if p.pos != len(p.tokens) {
		return real.Real{}, fmt.Errorf("realcalc: unexpected token %q", p.tokens[p.pos])
	}
	return r, nil
}

func (p *exprParser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *exprParser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *exprParser) parseExpr() (real.Real, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return real.Real{}, err
	}
	for p.peek() == "+" || p.peek() == "-" {
		op := p.next()
		rhs, err := p.parseTerm()
		if err != nil {
			return real.Real{}, err
		}
		if op == "+" {
			lhs = lhs.Add(rhs)
		} else {
			lhs = lhs.Sub(rhs)
		}
	}
	return lhs, nil
}

func (p *exprParser) parseTerm() (real.Real, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return real.Real{}, err
	}
	for p.peek() == "*" || p.peek() == "/" {
		op := p.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return real.Real{}, err
		}
		if op == "*" {
			lhs = lhs.Mul(rhs)
		} else {
			lhs = lhs.Div(rhs)
		}
	}
	return lhs, nil
}

func (p *exprParser) parseUnary() (real.Real, error) {
	if p.peek() == "-" {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return real.Real{}, err
		}
		return real.FromDigits(digit.Zero()).Sub(operand), nil
	}
	return p.parsePower()
}

func (p *exprParser) parsePower() (real.Real, error) {
	base, err := p.parseAtom()
	if err != nil {
		return real.Real{}, err
	}
	if p.peek() == "^" {
		p.next()
		exp, err := p.parseUnary()
		if err != nil {
			return real.Real{}, err
		}
		return base.Pow(exp), nil
	}
	return base, nil
}

func (p *exprParser) parseAtom() (real.Real, error) {
	tok := p.peek()
	switch {
	case tok == "":
		return real.Real{}, fmt.Errorf("realcalc: unexpected end of expression")
	case tok == "(":
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return real.Real{}, err
		}
		if p.peek() != ")" {
			return real.Real{}, fmt.Errorf("realcalc: expected ')', got %q", p.peek())
		}
		p.next()
		return inner, nil
	case isFuncName(tok):
		p.next()
		if p.peek() != "(" {
			return real.Real{}, fmt.Errorf("realcalc: expected '(' after %s", tok)
		}
		p.next()
		arg, err := p.parseExpr()
		if err != nil {
			return real.Real{}, err
		}
		if p.peek() != ")" {
			return real.Real{}, fmt.Errorf("realcalc: expected ')' closing %s(...)", tok)
		}
		p.next()
		return unaryFuncs[tok](arg), nil
	case isNumber(tok):
		p.next()
		return real.FromString(tok)
	default:
		return real.Real{}, fmt.Errorf("realcalc: unexpected token %q", tok)
	}
}

func isFuncName(s string) bool {
	_, ok := unaryFuncs[s]
	return ok
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c >= '0' && c <= '9'
}
