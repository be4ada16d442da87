package main

// SemanticAnalyzer is a single depth-first traversal of the AST that builds
// scoped symbol tables and establishes that every identifier reference and
// every procedure call is well-formed before execution begins. The first
// error aborts analysis.
type SemanticAnalyzer struct {
	currentScope *SymbolTable
}

func NewSemanticAnalyzer() *SemanticAnalyzer {
	return &SemanticAnalyzer{}
}

// Analyze validates a whole program. On success, every NodeProcCall in the
// tree carries its resolved procedure symbol and the global table remains
// available via CurrentScope.
func (a *SemanticAnalyzer) Analyze(program *ASTNode) error {
	a.currentScope = NewSymbolTable("global", 1, nil)
	if err := a.visit(program); err != nil {
		a.currentScope = nil
		return err
	}
	return nil
}

// CurrentScope exposes the active scope for inspection.
func (a *SemanticAnalyzer) CurrentScope() *SymbolTable {
	return a.currentScope
}

func (a *SemanticAnalyzer) visit(node *ASTNode) error {
	switch node.Kind {
	case NodeNum, NodeType, NodeNoOp:
		return nil

	case NodeBinary:
		if err := a.visit(node.Children[0]); err != nil {
			return err
		}
		return a.visit(node.Children[1])

	case NodeUnary:
		return a.visit(node.Children[0])

	case NodeCompound:
		for _, child := range node.Children {
			if err := a.visit(child); err != nil {
				return err
			}
		}
		return nil

	case NodeAssign:
		if err := a.visit(node.Children[1]); err != nil {
			return err
		}
		return a.visit(node.Children[0])

	case NodeVar:
		if a.currentScope.Lookup(node.Name, false) == nil {
			return semanticError(IdentifierNotFound, node.Token)
		}
		return nil

	case NodeProgram:
		return a.visitBlock(node.Block)

	case NodeBlock:
		return a.visitBlock(node)

	case NodeVarDecl:
		return a.visitVarDecl(node)

	case NodeProcDecl:
		return a.visitProcDecl(node)

	case NodeProcCall:
		return a.visitProcCall(node)

	default:
		return evalError(node.Token, "analyzer: unknown node kind %s", node.Kind)
	}
}

func (a *SemanticAnalyzer) visitBlock(block *ASTNode) error {
	for _, decl := range block.Declarations {
		if err := a.visit(decl); err != nil {
			return err
		}
	}
	return a.visit(block.Compound)
}

func (a *SemanticAnalyzer) visitVarDecl(decl *ASTNode) error {
	typeSymbol := a.currentScope.Lookup(decl.TypeNode.Name, false)
	if typeSymbol == nil {
		return semanticError(IdentifierNotFound, decl.TypeNode.Token)
	}

	name := decl.VarNode.Name
	if a.currentScope.Lookup(name, true) != nil {
		return semanticError(DuplicateIdentifier, decl.VarNode.Token)
	}

	a.currentScope.Insert(NewVariableSymbol(name, typeSymbol))
	return nil
}

func (a *SemanticAnalyzer) visitProcDecl(decl *ASTNode) error {
	procSymbol := NewProcedureSymbol(decl.Name)
	procSymbol.Block = decl.Block

	// The procedure symbol goes into the enclosing scope before the body
	// is analyzed, so recursive and forward calls resolve.
	enclosing := a.currentScope
	enclosing.Insert(procSymbol)

	a.currentScope = NewSymbolTable(decl.Name, enclosing.ScopeLevel+1, enclosing)

	for _, param := range decl.Params {
		typeSymbol := a.currentScope.Lookup(param.TypeNode.Name, false)
		if typeSymbol == nil {
			return semanticError(IdentifierNotFound, param.TypeNode.Token)
		}
		paramSymbol := NewVariableSymbol(param.VarNode.Name, typeSymbol)
		a.currentScope.Insert(paramSymbol)
		procSymbol.FormalParams = append(procSymbol.FormalParams, paramSymbol)
	}

	if err := a.visitBlock(decl.Block); err != nil {
		return err
	}

	a.currentScope = enclosing
	return nil
}

func (a *SemanticAnalyzer) visitProcCall(call *ASTNode) error {
	sym := a.currentScope.Lookup(call.Name, false)
	if sym == nil || sym.Kind != SymbolProcedure {
		return semanticError(IdentifierNotFound, call.Token)
	}

	if len(sym.FormalParams) != len(call.Children) {
		return semanticError(ParameterCountMismatch, call.Token)
	}

	for _, arg := range call.Children {
		if err := a.visit(arg); err != nil {
			return err
		}
	}

	call.Proc = sym
	return nil
}
