package main

import (
	"flag"
	"fmt"
	"os"
)

func showUsage() {
	fmt.Fprintf(os.Stderr, `pas - a tree-walking interpreter for a Pascal subset

Usage:
    pas <command> [arguments]

Commands:
    run <file>      Analyze and execute a .pas file
    check <file>    Analyze a .pas file without executing it
    eval <code>     Evaluate an inline program
    ast <file>      Print the program AST as an s-expression
    repl            Start an interactive session
    help            Show this help message

Examples:
    pas run examples/nested.pas
    pas eval 'PROGRAM t; BEGIN x := 2 + 3 END.'
    pas check myfile.pas

Use "pas <command> -h" for more information about a command.
`)
}

func runCommand(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	quiet := fs.Bool("q", false, "Do not print the final call stack")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pas run [-q] <file>\n")
		fmt.Fprintf(os.Stderr, "Analyze and execute a .pas file\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	source := readSourceFile(fs.Arg(0))
	interpreter, err := runProgram(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Print(interpreter.CallStack().String())
	}
}

func checkCommand(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pas check <file>\n")
		fmt.Fprintf(os.Stderr, "Analyze a .pas file without executing it\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	filename := fs.Arg(0)
	source := readSourceFile(filename)
	if _, err := analyzeProgram(source); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		os.Exit(1)
	}

	fmt.Printf("%s: no errors found\n", filename)
}

func evalCommand(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pas eval <code>\n")
		fmt.Fprintf(os.Stderr, "Evaluate an inline program\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one code argument\n")
		fs.Usage()
		os.Exit(1)
	}

	// Add null terminator as required by lexer
	source := []byte(fs.Arg(0) + "\x00")
	interpreter, err := runProgram(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(interpreter.CallStack().String())
}

func astCommand(args []string) {
	fs := flag.NewFlagSet("ast", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pas ast <file>\n")
		fmt.Fprintf(os.Stderr, "Print the program AST as an s-expression\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one file argument\n")
		fs.Usage()
		os.Exit(1)
	}

	source := readSourceFile(fs.Arg(0))
	Init(source)
	NextToken()
	tree, err := ParseProgram()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(ToSExpr(tree))
}

func readSourceFile(filename string) []byte {
	sourceBytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", filename, err)
		os.Exit(1)
	}
	// Add null terminator as required by lexer
	return append(sourceBytes, '\x00')
}

// analyzeProgram parses and analyzes null-terminated source, returning the
// annotated AST.
func analyzeProgram(source []byte) (*ASTNode, error) {
	Init(source)
	NextToken()
	tree, err := ParseProgram()
	if err != nil {
		return nil, err
	}

	analyzer := NewSemanticAnalyzer()
	if err := analyzer.Analyze(tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// runProgram analyzes and executes null-terminated source, returning the
// interpreter for call-stack inspection.
func runProgram(source []byte) (*Interpreter, error) {
	tree, err := analyzeProgram(source)
	if err != nil {
		return nil, err
	}

	interpreter := NewInterpreter()
	if err := interpreter.Interpret(tree); err != nil {
		return nil, err
	}
	return interpreter, nil
}

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		runCommand(args)
	case "check":
		checkCommand(args)
	case "eval":
		evalCommand(args)
	case "ast":
		astCommand(args)
	case "repl":
		replCommand(args)
	case "help", "-h", "--help":
		showUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		showUsage()
		os.Exit(1)
	}
}
