package main

// Recursive-descent parser over the global lexer state. Grammar:
//
//	program            : PROGRAM variable SEMI block DOT
//	block              : declarations compound_statement
//	declarations       : (VAR (variable_declaration SEMI)+)?
//	                     (PROCEDURE ID (LPAREN formal_parameter_list RPAREN)? SEMI block SEMI)*
//	variable_declaration : ID (COMMA ID)* COLON type_spec
//	formal_parameter_list : formal_parameters (SEMI formal_parameters)*
//	formal_parameters  : ID (COMMA ID)* COLON type_spec
//	compound_statement : BEGIN statement_list END
//	statement_list     : statement (SEMI statement)*
//	statement          : compound_statement | proccall_statement
//	                   | assignment_statement | empty
//	proccall_statement : ID LPAREN (expr (COMMA expr)*)? RPAREN
//	assignment_statement : variable ASSIGN expr
//	expr               : term ((PLUS | MINUS) term)*
//	term               : factor ((MUL | DIV | FLOAT_DIV) factor)*
//	factor             : PLUS factor | MINUS factor | INT_CONST
//	                   | REAL_CONST | LPAREN expr RPAREN | variable
//
// Internals panic with a *LangError on the first unexpected token; the
// exported entry points recover and return it.

// ParseProgram parses a whole compilation unit and returns its AST.
func ParseProgram() (node *ASTNode, err error) {
	defer recoverParseError(&err)
	node = parseProgram()
	if CurrTokenType != EOF {
		panic(semanticError(UnexpectedToken, CurrToken()))
	}
	return node, nil
}

// ParseExpression parses a single expression (used by the REPL and the
// expression test corpus).
func ParseExpression() (node *ASTNode, err error) {
	defer recoverParseError(&err)
	node = parseExpr()
	if CurrTokenType != EOF {
		panic(semanticError(UnexpectedToken, CurrToken()))
	}
	return node, nil
}

// ParseReplLine parses either an assignment statement or an expression.
func ParseReplLine() (node *ASTNode, err error) {
	defer recoverParseError(&err)
	if CurrTokenType == IDENT && PeekToken() == ASSIGN {
		node = parseAssignment()
	} else {
		node = parseExpr()
	}
	if CurrTokenType == SEMICOLON {
		skipToken(SEMICOLON)
	}
	if CurrTokenType != EOF {
		panic(semanticError(UnexpectedToken, CurrToken()))
	}
	return node, nil
}

func recoverParseError(err *error) {
	if r := recover(); r != nil {
		if le, ok := r.(*LangError); ok {
			*err = le
			return
		}
		panic(r)
	}
}

// skipToken advances past the current token, asserting it matches the
// expected type.
func skipToken(expectedType TokenType) {
	if CurrTokenType != expectedType {
		panic(semanticError(UnexpectedToken, CurrToken()))
	}
	NextToken()
}

func parseProgram() *ASTNode {
	progToken := CurrToken()
	skipToken(PROGRAM)
	name := parseVariable()
	skipToken(SEMICOLON)
	block := parseBlock()
	skipToken(DOT)

	return &ASTNode{
		Kind:  NodeProgram,
		Token: progToken,
		Name:  name.Name,
		Block: block,
	}
}

func parseBlock() *ASTNode {
	declarations := parseDeclarations()
	compound := parseCompoundStatement()
	return &ASTNode{
		Kind:         NodeBlock,
		Declarations: declarations,
		Compound:     compound,
	}
}

func parseDeclarations() []*ASTNode {
	var declarations []*ASTNode

	if CurrTokenType == VAR {
		skipToken(VAR)
		for CurrTokenType == IDENT {
			declarations = append(declarations, parseVariableDeclaration()...)
			skipToken(SEMICOLON)
		}
	}

	for CurrTokenType == PROCEDURE {
		declarations = append(declarations, parseProcedureDeclaration())
	}

	return declarations
}

// parseVariableDeclaration handles "a, b : INTEGER" and expands it into
// one NodeVarDecl per name.
func parseVariableDeclaration() []*ASTNode {
	varNodes := []*ASTNode{parseVariable()}

	for CurrTokenType == COMMA {
		skipToken(COMMA)
		varNodes = append(varNodes, parseVariable())
	}

	skipToken(COLON)
	typeNode := parseTypeSpec()

	declarations := make([]*ASTNode, 0, len(varNodes))
	for _, varNode := range varNodes {
		declarations = append(declarations, &ASTNode{
			Kind:     NodeVarDecl,
			Token:    varNode.Token,
			VarNode:  varNode,
			TypeNode: typeNode,
		})
	}
	return declarations
}

func parseProcedureDeclaration() *ASTNode {
	skipToken(PROCEDURE)
	procToken := CurrToken()
	name := canonical(CurrLiteral)
	skipToken(IDENT)

	var params []*ASTNode
	if CurrTokenType == LPAREN {
		skipToken(LPAREN)
		params = parseFormalParameterList()
		skipToken(RPAREN)
	}

	skipToken(SEMICOLON)
	block := parseBlock()
	skipToken(SEMICOLON)

	return &ASTNode{
		Kind:   NodeProcDecl,
		Token:  procToken,
		Name:   name,
		Params: params,
		Block:  block,
	}
}

func parseFormalParameterList() []*ASTNode {
	if CurrTokenType != IDENT {
		return nil
	}

	params := parseFormalParameters()
	for CurrTokenType == SEMICOLON {
		skipToken(SEMICOLON)
		params = append(params, parseFormalParameters()...)
	}
	return params
}

// parseFormalParameters handles one "a, b : REAL" group. Each parameter is
// a NodeVarDecl, same shape as a local declaration.
func parseFormalParameters() []*ASTNode {
	varNodes := []*ASTNode{parseVariable()}

	for CurrTokenType == COMMA {
		skipToken(COMMA)
		varNodes = append(varNodes, parseVariable())
	}

	skipToken(COLON)
	typeNode := parseTypeSpec()

	params := make([]*ASTNode, 0, len(varNodes))
	for _, varNode := range varNodes {
		params = append(params, &ASTNode{
			Kind:     NodeVarDecl,
			Token:    varNode.Token,
			VarNode:  varNode,
			TypeNode: typeNode,
		})
	}
	return params
}

func parseTypeSpec() *ASTNode {
	token := CurrToken()
	if CurrTokenType == INTEGER {
		skipToken(INTEGER)
	} else {
		skipToken(REAL)
	}
	return &ASTNode{
		Kind:  NodeType,
		Token: token,
		Name:  canonical(token.Literal),
	}
}

func parseCompoundStatement() *ASTNode {
	skipToken(BEGIN)
	statements := parseStatementList()
	skipToken(END)

	return &ASTNode{
		Kind:     NodeCompound,
		Children: statements,
	}
}

func parseStatementList() []*ASTNode {
	statements := []*ASTNode{parseStatement()}

	for CurrTokenType == SEMICOLON {
		skipToken(SEMICOLON)
		statements = append(statements, parseStatement())
	}

	// A statement directly following another without a semicolon.
	if CurrTokenType == IDENT {
		panic(semanticError(UnexpectedToken, CurrToken()))
	}

	return statements
}

func parseStatement() *ASTNode {
	switch CurrTokenType {
	case BEGIN:
		return parseCompoundStatement()
	case IDENT:
		if PeekToken() == LPAREN {
			return parseProcedureCall()
		}
		return parseAssignment()
	default:
		return &ASTNode{Kind: NodeNoOp}
	}
}

func parseAssignment() *ASTNode {
	left := parseVariable()
	token := CurrToken()
	skipToken(ASSIGN)
	right := parseExpr()

	return &ASTNode{
		Kind:     NodeAssign,
		Token:    token,
		Children: []*ASTNode{left, right},
	}
}

func parseProcedureCall() *ASTNode {
	token := CurrToken()
	name := canonical(CurrLiteral)
	skipToken(IDENT)
	skipToken(LPAREN)

	var args []*ASTNode
	if CurrTokenType != RPAREN {
		args = append(args, parseExpr())
		for CurrTokenType == COMMA {
			skipToken(COMMA)
			args = append(args, parseExpr())
		}
	}
	skipToken(RPAREN)

	return &ASTNode{
		Kind:     NodeProcCall,
		Token:    token,
		Name:     name,
		Children: args,
	}
}

func parseVariable() *ASTNode {
	token := CurrToken()
	name := canonical(CurrLiteral)
	skipToken(IDENT)

	return &ASTNode{
		Kind:  NodeVar,
		Token: token,
		Name:  name,
	}
}

func parseExpr() *ASTNode {
	node := parseTerm()

	for CurrTokenType == PLUS || CurrTokenType == MINUS {
		op := CurrToken()
		skipToken(CurrTokenType)
		right := parseTerm()
		node = &ASTNode{
			Kind:     NodeBinary,
			Token:    op,
			Op:       op.Type,
			Children: []*ASTNode{node, right},
		}
	}
	return node
}

func parseTerm() *ASTNode {
	node := parseFactor()

	for CurrTokenType == ASTERISK || CurrTokenType == INT_DIV || CurrTokenType == SLASH {
		op := CurrToken()
		skipToken(CurrTokenType)
		right := parseFactor()
		node = &ASTNode{
			Kind:     NodeBinary,
			Token:    op,
			Op:       op.Type,
			Children: []*ASTNode{node, right},
		}
	}
	return node
}

func parseFactor() *ASTNode {
	token := CurrToken()
	switch CurrTokenType {
	case PLUS, MINUS:
		skipToken(CurrTokenType)
		return &ASTNode{
			Kind:     NodeUnary,
			Token:    token,
			Op:       token.Type,
			Children: []*ASTNode{parseFactor()},
		}

	case INT_CONST:
		value := IntegerValue(CurrIntValue)
		skipToken(INT_CONST)
		return &ASTNode{Kind: NodeNum, Token: token, Value: value}

	case REAL_CONST:
		value := FloatValue(CurrFloatValue)
		skipToken(REAL_CONST)
		return &ASTNode{Kind: NodeNum, Token: token, Value: value}

	case LPAREN:
		skipToken(LPAREN)
		node := parseExpr()
		skipToken(RPAREN)
		return node

	default:
		return parseVariable()
	}
}
