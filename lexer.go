package main

import (
	"strconv"
	"strings"
)

// TokenType is the type of token (identifier, operator, literal, etc.).
type TokenType string

// Definition of token types
const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT      = "IDENT"      // part10, foo, _bar
	INT_CONST  = "INT_CONST"  // 12345
	REAL_CONST = "REAL_CONST" // 3.14

	// Operators
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	INT_DIV  = "DIV"
	ASSIGN   = ":="

	// Delimiters
	COMMA     = ","
	SEMICOLON = ";"
	COLON     = ":"
	LPAREN    = "("
	RPAREN    = ")"
	DOT       = "."

	// Reserved keywords
	PROGRAM   = "PROGRAM"
	VAR       = "VAR"
	BEGIN     = "BEGIN"
	END       = "END"
	PROCEDURE = "PROCEDURE"
	INTEGER   = "INTEGER"
	REAL      = "REAL"
)

// Token is a single lexical unit together with its source position.
// Literal keeps the original spelling for diagnostics.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Col     int
}

func (t Token) String() string {
	return "Token(" + string(t.Type) + ", \"" + t.Literal + "\") at " +
		strconv.Itoa(t.Line) + ":" + strconv.Itoa(t.Col)
}

// Global lexer input state
var (
	input []byte
	pos   int // current reading position in input
	line  int
	col   int
)

// Global “current token” state
var (
	CurrTokenType  TokenType
	CurrLiteral    string
	CurrIntValue   int64   // only meaningful when CurrTokenType == INT_CONST
	CurrFloatValue float64 // only meaningful when CurrTokenType == REAL_CONST
	CurrLine       int
	CurrCol        int
)

// Init initializes the lexer with the given input (must end with a 0 byte).
func Init(in []byte) {
	input = in
	pos = 0
	line = 1
	col = 1
}

// CurrToken packages the current-token globals into a Token value.
func CurrToken() Token {
	return Token{Type: CurrTokenType, Literal: CurrLiteral, Line: CurrLine, Col: CurrCol}
}

// NextToken scans the next token and stores it in the globals.
// Call repeatedly until CurrTokenType == EOF.
func NextToken() {
	skipWhitespaceAndComments()

	c := input[pos]
	CurrIntValue = 0
	CurrFloatValue = 0
	CurrLine = line
	CurrCol = col

	if c == '+' {
		CurrTokenType = PLUS
		CurrLiteral = string(c)
		advance()

	} else if c == '-' {
		CurrTokenType = MINUS
		CurrLiteral = string(c)
		advance()

	} else if c == '*' {
		CurrTokenType = ASTERISK
		CurrLiteral = string(c)
		advance()

	} else if c == '/' {
		CurrTokenType = SLASH
		CurrLiteral = string(c)
		advance()

	} else if c == ':' {
		if input[pos+1] == '=' {
			CurrTokenType = ASSIGN
			CurrLiteral = ":="
			advance()
			advance()
		} else {
			CurrTokenType = COLON
			CurrLiteral = string(c)
			advance()
		}

	} else if c == ';' {
		CurrTokenType = SEMICOLON
		CurrLiteral = string(c)
		advance()

	} else if c == ',' {
		CurrTokenType = COMMA
		CurrLiteral = string(c)
		advance()

	} else if c == '(' {
		CurrTokenType = LPAREN
		CurrLiteral = string(c)
		advance()

	} else if c == ')' {
		CurrTokenType = RPAREN
		CurrLiteral = string(c)
		advance()

	} else if c == '.' {
		CurrTokenType = DOT
		CurrLiteral = string(c)
		advance()

	} else if c == 0 {
		CurrTokenType = EOF
		CurrLiteral = ""

	} else if isDigit(c) {
		readNumber()

	} else if isLetter(c) {
		lit := readIdentifier()
		// Keywords are case-insensitive in Pascal.
		switch strings.ToUpper(lit) {
		case "PROGRAM":
			CurrTokenType = PROGRAM
		case "VAR":
			CurrTokenType = VAR
		case "BEGIN":
			CurrTokenType = BEGIN
		case "END":
			CurrTokenType = END
		case "PROCEDURE":
			CurrTokenType = PROCEDURE
		case "INTEGER":
			CurrTokenType = INTEGER
		case "REAL":
			CurrTokenType = REAL
		case "DIV":
			CurrTokenType = INT_DIV
		default:
			CurrTokenType = IDENT
		}
		CurrLiteral = lit

	} else {
		CurrTokenType = ILLEGAL
		CurrLiteral = string(c)
		advance()
	}
}

// PeekToken returns the next token type without advancing the lexer.
// Useful for lookahead parsing decisions.
func PeekToken() TokenType {
	savedPos := pos
	savedLine := line
	savedCol := col
	savedTokenType := CurrTokenType
	savedLiteral := CurrLiteral
	savedIntValue := CurrIntValue
	savedFloatValue := CurrFloatValue
	savedTokLine := CurrLine
	savedTokCol := CurrCol

	NextToken()
	nextType := CurrTokenType

	// Restore state
	pos = savedPos
	line = savedLine
	col = savedCol
	CurrTokenType = savedTokenType
	CurrLiteral = savedLiteral
	CurrIntValue = savedIntValue
	CurrFloatValue = savedFloatValue
	CurrLine = savedTokLine
	CurrCol = savedTokCol

	return nextType
}

func advance() {
	if input[pos] == '\n' {
		line++
		col = 1
	} else {
		col++
	}
	pos++
}

func skipWhitespaceAndComments() {
	for {
		c := input[pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			advance()
		} else if c == '{' {
			// Pascal comment: { ... }
			for input[pos] != '}' && input[pos] != 0 {
				advance()
			}
			if input[pos] == '}' {
				advance()
			}
		} else {
			return
		}
	}
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func readIdentifier() string {
	start := pos
	for isLetter(input[pos]) || isDigit(input[pos]) {
		advance()
	}
	return string(input[start:pos])
}

// readNumber scans an integer constant, or a real constant if the digits are
// followed by a '.' and more digits. A bare trailing '.' is the program
// terminator, not a fraction.
func readNumber() {
	start := pos
	for isDigit(input[pos]) {
		advance()
	}

	if input[pos] == '.' && isDigit(input[pos+1]) {
		advance()
		for isDigit(input[pos]) {
			advance()
		}
		lit := string(input[start:pos])
		val, _ := strconv.ParseFloat(lit, 64)
		CurrTokenType = REAL_CONST
		CurrLiteral = lit
		CurrFloatValue = val
		return
	}

	lit := string(input[start:pos])
	val, _ := strconv.ParseInt(lit, 10, 64)
	CurrTokenType = INT_CONST
	CurrLiteral = lit
	CurrIntValue = val
}
