package mdtest

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestExtractSingleTestCase(t *testing.T) {
	markdown := "# Test: simple addition\n\n" +
		"```pascal-expr\n1 + 2\n```\n\n" +
		"```value\n3\n```\n"

	cases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 1)

	tc := cases[0]
	be.Equal(t, tc.Name, "simple addition")
	be.Equal(t, tc.Input, "1 + 2")
	be.Equal(t, tc.InputType, InputTypeExpr)
	be.Equal(t, len(tc.Assertions), 1)
	be.Equal(t, tc.Assertions[0].Type, AssertionTypeValue)
	be.Equal(t, tc.Assertions[0].Content, "3")
}

func TestExtractMultipleTestCases(t *testing.T) {
	markdown := "# Test: first\n\n" +
		"```pascal-expr\n1\n```\n\n" +
		"```value\n1\n```\n\n" +
		"# Test: second\n\n" +
		"```pascal-program\nPROGRAM P; BEGIN END.\n```\n\n" +
		"```stack\nCALL STACK\n1 PROGRAM p\n```\n"

	cases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 2)
	be.Equal(t, cases[0].Name, "first")
	be.Equal(t, cases[1].Name, "second")
	be.Equal(t, cases[1].InputType, InputTypeProgram)
	be.Equal(t, cases[1].Assertions[0].Type, AssertionTypeStack)
}

func TestExtractParsesASTAssertions(t *testing.T) {
	markdown := "# Test: ast shape\n\n" +
		"```pascal-expr\n1 + 2\n```\n\n" +
		"```ast\n(binary \"+\" (num 1) (num 2))\n```\n"

	cases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)

	assertion := cases[0].Assertions[0]
	be.Equal(t, assertion.Type, AssertionTypeAST)
	be.True(t, assertion.ParsedSexy != nil)
	be.Equal(t, assertion.ParsedSexy.Children[0].Atom, "binary")
}

func TestExtractAllowsMultipleAssertions(t *testing.T) {
	markdown := "# Test: both\n\n" +
		"```pascal-program\nPROGRAM P; VAR a : INTEGER; BEGIN a := 1 END.\n```\n\n" +
		"```ast\n(program \"p\" (block (decl (ident \"a\") (type \"integer\")) (compound (assign (ident \"a\") (num 1)))))\n```\n\n" +
		"```stack\nCALL STACK\n1 PROGRAM p\n  a = 1\n```\n"

	cases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(cases[0].Assertions), 2)
}

func TestExtractIgnoresProse(t *testing.T) {
	markdown := "# Notes\n\nSome explanation.\n\n" +
		"```\nplain code block, no language\n```\n\n" +
		"# Test: real one\n\nProse between fences is fine.\n\n" +
		"```pascal-expr\n7\n```\n\nMore prose.\n\n" +
		"```value\n7\n```\n"

	cases, err := ExtractTestCases(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 1)
	be.Equal(t, cases[0].Name, "real one")
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		wantErr  string
	}{
		{
			"missing input fence",
			"# Test: no input\n\n```value\n1\n```\n",
			"no input fence",
		},
		{
			"missing assertions",
			"# Test: no asserts\n\n```pascal-expr\n1\n```\n",
			"no assertion fences",
		},
		{
			"multiple input fences",
			"# Test: double\n\n```pascal-expr\n1\n```\n\n```pascal-expr\n2\n```\n\n```value\n1\n```\n",
			"multiple input fences",
		},
		{
			"unknown fence language",
			"# Test: bad\n\n```pascal-expr\n1\n```\n\n```bogus\n1\n```\n",
			"unknown fence language",
		},
		{
			"typed fence outside test case",
			"# Intro\n\n```pascal-expr\n1\n```\n",
			"outside of test case",
		},
		{
			"malformed ast assertion",
			"# Test: bad sexpr\n\n```pascal-expr\n1\n```\n\n```ast\n(num 1\n```\n",
			"failed to parse ast assertion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractTestCases(tt.markdown)
			be.True(t, err != nil)
			be.True(t, strings.Contains(err.Error(), tt.wantErr))
		})
	}
}
