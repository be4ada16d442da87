package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func parseExprString(t *testing.T, source string) *ASTNode {
	t.Helper()
	Init([]byte(source + "\x00"))
	NextToken()
	node, err := ParseExpression()
	be.Err(t, err, nil)
	return node
}

func parseProgramString(t *testing.T, source string) *ASTNode {
	t.Helper()
	Init([]byte(source + "\x00"))
	NextToken()
	node, err := ParseProgram()
	be.Err(t, err, nil)
	return node
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"integer literal", "7", "(num 7)"},
		{"real literal", "2.5", "(num 2.5)"},
		{"addition", "1 + 2", `(binary "+" (num 1) (num 2))`},
		{
			"precedence",
			"2 * 7 + 3",
			`(binary "+" (binary "*" (num 2) (num 7)) (num 3))`,
		},
		{
			"left associativity",
			"10 - 3 - 2",
			`(binary "-" (binary "-" (num 10) (num 3)) (num 2))`,
		},
		{
			"parentheses",
			"2 * (7 + 3)",
			`(binary "*" (num 2) (binary "+" (num 7) (num 3)))`,
		},
		{
			"integer division",
			"10 DIV 4",
			`(binary "DIV" (num 10) (num 4))`,
		},
		{
			"real division",
			"10.0 / 4.0",
			`(binary "/" (num 10) (num 4))`,
		},
		{
			"double unary minus",
			"5 + -(-2)",
			`(binary "+" (num 5) (unary "-" (unary "-" (num 2))))`,
		},
		{"variable", "someVar", `(ident "somevar")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parseExprString(t, tt.input)
			be.Equal(t, ToSExpr(node), tt.expected)
		})
	}
}

func TestParseMinimalProgram(t *testing.T) {
	node := parseProgramString(t, "PROGRAM Tiny; BEGIN END.")
	be.Equal(t, ToSExpr(node), `(program "tiny" (block (compound (noop))))`)
}

func TestParseVarDeclarations(t *testing.T) {
	source := `
PROGRAM Decls;
VAR
    x : INTEGER;
    y, z : REAL;
BEGIN
END.`
	node := parseProgramString(t, source)
	be.Equal(t, ToSExpr(node),
		`(program "decls" (block `+
			`(decl (ident "x") (type "integer")) `+
			`(decl (ident "y") (type "real")) `+
			`(decl (ident "z") (type "real")) `+
			`(compound (noop))))`)
}

func TestParseAssignment(t *testing.T) {
	source := "PROGRAM A; VAR a : INTEGER; BEGIN a := 5 END."
	node := parseProgramString(t, source)
	be.Equal(t, ToSExpr(node),
		`(program "a" (block (decl (ident "a") (type "integer")) `+
			`(compound (assign (ident "a") (num 5)))))`)
}

func TestParseIdentifiersAreCanonicalized(t *testing.T) {
	source := "PROGRAM Mixed; VAR Number : INTEGER; BEGIN nUmBeR := 2 END."
	node := parseProgramString(t, source)
	decl := node.Block.Declarations[0]
	be.Equal(t, decl.VarNode.Name, "number")
	assign := node.Block.Compound.Children[0]
	be.Equal(t, assign.Children[0].Name, "number")
	// Original spelling survives on the token for diagnostics.
	be.Equal(t, assign.Children[0].Token.Literal, "nUmBeR")
}

func TestParseProcedureDeclaration(t *testing.T) {
	source := `
PROGRAM Main;
PROCEDURE Alpha(a : INTEGER; b : INTEGER);
BEGIN
END;
BEGIN
END.`
	node := parseProgramString(t, source)
	be.Equal(t, ToSExpr(node),
		`(program "main" (block `+
			`(proc "alpha" (params `+
			`(decl (ident "a") (type "integer")) `+
			`(decl (ident "b") (type "integer"))) `+
			`(block (compound (noop)))) `+
			`(compound (noop))))`)
}

func TestParseProcedureWithoutParams(t *testing.T) {
	source := "PROGRAM P; PROCEDURE NoArgs; BEGIN END; BEGIN END."
	node := parseProgramString(t, source)
	proc := node.Block.Declarations[0]
	be.Equal(t, proc.Kind, NodeProcDecl)
	be.Equal(t, len(proc.Params), 0)
}

func TestParseProcedureCall(t *testing.T) {
	source := `
PROGRAM Main;
PROCEDURE Alpha(a : INTEGER);
BEGIN
END;
BEGIN
    Alpha(3 + 5)
END.`
	node := parseProgramString(t, source)
	call := node.Block.Compound.Children[0]
	be.Equal(t, call.Kind, NodeProcCall)
	be.Equal(t, call.Name, "alpha")
	be.Equal(t, len(call.Children), 1)
	be.Equal(t, ToSExpr(call.Children[0]), `(binary "+" (num 3) (num 5))`)
}

func TestParseNestedCompound(t *testing.T) {
	source := `
PROGRAM Nested;
BEGIN
    BEGIN
        x := 1
    END;
    y := 2
END.`
	node := parseProgramString(t, source)
	compound := node.Block.Compound
	be.Equal(t, compound.Children[0].Kind, NodeCompound)
	be.Equal(t, compound.Children[1].Kind, NodeAssign)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing dot", "PROGRAM P; BEGIN END"},
		{"missing semicolon between statements", "PROGRAM P; BEGIN a := 1 b := 2 END."},
		{"missing program name", "PROGRAM ; BEGIN END."},
		{"stray tokens after program", "PROGRAM P; BEGIN END. extra"},
		{"illegal character", "PROGRAM P; BEGIN a := @ END."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init([]byte(tt.input + "\x00"))
			NextToken()
			_, err := ParseProgram()
			be.True(t, err != nil)
			be.Equal(t, CodeOf(err), UnexpectedToken)
		})
	}
}

func TestParseErrorCarriesPosition(t *testing.T) {
	Init([]byte("PROGRAM P; BEGIN a := ; END.\x00"))
	NextToken()
	_, err := ParseProgram()
	be.True(t, err != nil)
	le, ok := err.(*LangError)
	be.True(t, ok)
	be.Equal(t, le.Token.Line, 1)
	be.Equal(t, le.Token.Literal, ";")
}
