package mdtest

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestParseAtom(t *testing.T) {
	node, err := Parse("noop")
	be.Err(t, err, nil)
	be.True(t, !node.IsList)
	be.Equal(t, node.Atom, "noop")
}

func TestParseQuotedAtom(t *testing.T) {
	node, err := Parse(`"hello world"`)
	be.Err(t, err, nil)
	be.Equal(t, node.Atom, "hello world")
	be.True(t, node.Quoted)
}

func TestParseList(t *testing.T) {
	node, err := Parse(`(binary "+" (num 1) (num 2))`)
	be.Err(t, err, nil)
	be.True(t, node.IsList)
	be.Equal(t, len(node.Children), 4)
	be.Equal(t, node.Children[0].Atom, "binary")
	be.Equal(t, node.Children[1].Atom, "+")
	be.True(t, node.Children[2].IsList)
}

func TestParseEmptyList(t *testing.T) {
	node, err := Parse("()")
	be.Err(t, err, nil)
	be.True(t, node.IsList)
	be.Equal(t, len(node.Children), 0)
}

func TestParseMultiline(t *testing.T) {
	node, err := Parse("(program \"main\"\n  (block\n    (compound (noop))))")
	be.Err(t, err, nil)
	be.Equal(t, node.String(), `(program "main" (block (compound (noop))))`)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"unterminated list", "(num 1"},
		{"unterminated string", `"abc`},
		{"stray close paren", ")"},
		{"trailing content", "(noop) extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			be.True(t, err != nil)
		})
	}
}

func TestEqual(t *testing.T) {
	a, err := Parse(`(assign (ident "a") (num 5))`)
	be.Err(t, err, nil)
	b, err := Parse("(assign\n  (ident \"a\")\n  (num 5))")
	be.Err(t, err, nil)
	be.True(t, Equal(a, b))

	c, err := Parse(`(assign (ident "b") (num 5))`)
	be.Err(t, err, nil)
	be.True(t, !Equal(a, c))
}

func TestEqualIgnoresQuoting(t *testing.T) {
	// "5" and 5 compare equal; quoting is display-only.
	a, err := Parse(`(num "5")`)
	be.Err(t, err, nil)
	b, err := Parse("(num 5)")
	be.Err(t, err, nil)
	be.True(t, Equal(a, b))
}

func TestStringRoundTrip(t *testing.T) {
	input := `(proc "alpha" (params (decl (ident "a") (type "integer"))) (block (compound (noop))))`
	node, err := Parse(input)
	be.Err(t, err, nil)
	be.Equal(t, node.String(), input)
}
