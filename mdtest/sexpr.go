package mdtest

import (
	"fmt"
	"strings"
)

// Node is a parsed s-expression: either an atom or a list.
type Node struct {
	IsList   bool
	Atom     string // atoms; quoted strings keep their quotes stripped
	Quoted   bool   // atom came from a double-quoted string
	Children []*Node
}

// Parse parses a single s-expression. Whitespace (including newlines)
// separates items, so multi-line assertion fences parse as one expression.
func Parse(input string) (*Node, error) {
	p := &sexprParser{input: input}
	p.skipSpace()
	node, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("unexpected trailing content at offset %d", p.pos)
	}
	return node, nil
}

type sexprParser struct {
	input string
	pos   int
}

func (p *sexprParser) parseNode() (*Node, error) {
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of input")
	}

	switch c := p.input[p.pos]; {
	case c == '(':
		p.pos++
		list := &Node{IsList: true}
		for {
			p.skipSpace()
			if p.pos >= len(p.input) {
				return nil, fmt.Errorf("unterminated list")
			}
			if p.input[p.pos] == ')' {
				p.pos++
				return list, nil
			}
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			list.Children = append(list.Children, child)
		}

	case c == ')':
		return nil, fmt.Errorf("unexpected ')' at offset %d", p.pos)

	case c == '"':
		p.pos++
		start := p.pos
		for p.pos < len(p.input) && p.input[p.pos] != '"' {
			p.pos++
		}
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("unterminated string")
		}
		atom := p.input[start:p.pos]
		p.pos++
		return &Node{Atom: atom, Quoted: true}, nil

	default:
		start := p.pos
		for p.pos < len(p.input) && !isSexprSpace(p.input[p.pos]) &&
			p.input[p.pos] != '(' && p.input[p.pos] != ')' {
			p.pos++
		}
		if p.pos == start {
			return nil, fmt.Errorf("empty atom at offset %d", p.pos)
		}
		return &Node{Atom: p.input[start:p.pos]}, nil
	}
}

func (p *sexprParser) skipSpace() {
	for p.pos < len(p.input) && isSexprSpace(p.input[p.pos]) {
		p.pos++
	}
}

func isSexprSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Equal reports whether two s-expressions are structurally identical.
func Equal(a, b *Node) bool {
	if a.IsList != b.IsList {
		return false
	}
	if !a.IsList {
		return a.Atom == b.Atom
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	if !n.IsList {
		if n.Quoted {
			return "\"" + n.Atom + "\""
		}
		return n.Atom
	}
	parts := make([]string, len(n.Children))
	for i, child := range n.Children {
		parts[i] = child.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
