package main

import "strings"

// NodeKind represents different types of AST nodes
type NodeKind string

const (
	NodeNum      NodeKind = "NodeNum"
	NodeBinary   NodeKind = "NodeBinary"
	NodeUnary    NodeKind = "NodeUnary"
	NodeVar      NodeKind = "NodeVar"
	NodeAssign   NodeKind = "NodeAssign"
	NodeCompound NodeKind = "NodeCompound"
	NodeBlock    NodeKind = "NodeBlock"
	NodeProgram  NodeKind = "NodeProgram"
	NodeVarDecl  NodeKind = "NodeVarDecl"
	NodeType     NodeKind = "NodeType"
	NodeProcDecl NodeKind = "NodeProcDecl"
	NodeProcCall NodeKind = "NodeProcCall"
	NodeNoOp     NodeKind = "NodeNoOp"
)

// ASTNode represents a node in the Abstract Syntax Tree.
//
// Name holds canonicalized identifier text; identifiers are lower-cased
// exactly once, when the ID token becomes a node. Token keeps the original
// spelling and position for diagnostics.
type ASTNode struct {
	Kind  NodeKind
	Token Token
	// NodeNum:
	Value Value
	// NodeVar, NodeType, NodeProgram, NodeProcDecl, NodeProcCall:
	Name string
	// NodeBinary, NodeUnary:
	Op TokenType
	// NodeBinary: [left, right]; NodeUnary: [operand];
	// NodeAssign: [variable, expression]; NodeCompound: statements;
	// NodeProcCall: actual arguments
	Children []*ASTNode
	// NodeBlock:
	Declarations []*ASTNode
	Compound     *ASTNode
	// NodeProgram, NodeProcDecl:
	Block *ASTNode
	// NodeVarDecl (also used for formal parameters):
	VarNode  *ASTNode
	TypeNode *ASTNode
	// NodeProcDecl:
	Params []*ASTNode
	// NodeProcCall: resolved procedure symbol, filled in by the
	// semantic analyzer so the engine need not re-resolve the callee.
	Proc *Symbol
}

// canonical normalizes identifier text to its single comparison form.
// Pascal identifiers are case-insensitive.
func canonical(name string) string {
	return strings.ToLower(name)
}

// ToSExpr converts an AST node to s-expression string representation
func ToSExpr(node *ASTNode) string {
	switch node.Kind {
	case NodeNum:
		return "(num " + node.Value.String() + ")"
	case NodeVar:
		return "(ident \"" + node.Name + "\")"
	case NodeType:
		return "(type \"" + node.Name + "\")"
	case NodeBinary:
		left := ToSExpr(node.Children[0])
		right := ToSExpr(node.Children[1])
		return "(binary \"" + string(node.Op) + "\" " + left + " " + right + ")"
	case NodeUnary:
		operand := ToSExpr(node.Children[0])
		return "(unary \"" + string(node.Op) + "\" " + operand + ")"
	case NodeAssign:
		return "(assign " + ToSExpr(node.Children[0]) + " " + ToSExpr(node.Children[1]) + ")"
	case NodeCompound:
		result := "(compound"
		for _, child := range node.Children {
			result += " " + ToSExpr(child)
		}
		result += ")"
		return result
	case NodeBlock:
		result := "(block"
		for _, decl := range node.Declarations {
			result += " " + ToSExpr(decl)
		}
		result += " " + ToSExpr(node.Compound) + ")"
		return result
	case NodeProgram:
		return "(program \"" + node.Name + "\" " + ToSExpr(node.Block) + ")"
	case NodeVarDecl:
		return "(decl " + ToSExpr(node.VarNode) + " " + ToSExpr(node.TypeNode) + ")"
	case NodeProcDecl:
		result := "(proc \"" + node.Name + "\" (params"
		for _, param := range node.Params {
			result += " " + ToSExpr(param)
		}
		result += ") " + ToSExpr(node.Block) + ")"
		return result
	case NodeProcCall:
		result := "(call \"" + node.Name + "\""
		for _, arg := range node.Children {
			result += " " + ToSExpr(arg)
		}
		result += ")"
		return result
	case NodeNoOp:
		return "(noop)"
	default:
		return ""
	}
}
