package main

// Interpreter is a tree-walking evaluator over an AST that has passed
// semantic analysis. Variable reads and writes consult only the top-of-
// stack activation record: every frame must already contain bindings for
// every name its body references, which restricts cross-scope data flow to
// explicit parameters. Reading an outer variable that was not passed as a
// parameter is a fatal evaluation error.
type Interpreter struct {
	callStack CallStack
}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// CallStack exposes the final stack state after Interpret, which retains
// the program frame for inspection.
func (ip *Interpreter) CallStack() *CallStack {
	return &ip.callStack
}

// Interpret executes an analyzed program.
func (ip *Interpreter) Interpret(program *ASTNode) error {
	if program.Kind != NodeProgram {
		return evalError(program.Token, "not a program: %s", program.Kind)
	}
	_, err := ip.Eval(program)
	return err
}

// Eval evaluates a single node in the current frame. Statements yield None.
func (ip *Interpreter) Eval(node *ASTNode) (Value, error) {
	switch node.Kind {
	case NodeNum:
		return node.Value, nil

	case NodeBinary:
		return ip.evalBinary(node)

	case NodeUnary:
		return ip.evalUnary(node)

	case NodeVar:
		ar := ip.callStack.Peek()
		if ar == nil {
			return None(), evalError(node.Token, "no active frame")
		}
		v, ok := ar.Get(node.Name)
		if !ok {
			return None(), evalError(node.Token,
				"variable '%s' is not bound in frame %s", node.Name, ar.Name)
		}
		return v, nil

	case NodeAssign:
		value, err := ip.Eval(node.Children[1])
		if err != nil {
			return None(), err
		}
		ar := ip.callStack.Peek()
		if ar == nil {
			return None(), evalError(node.Token, "no active frame")
		}
		ar.Set(node.Children[0].Name, value)
		return None(), nil

	case NodeCompound:
		for _, child := range node.Children {
			if _, err := ip.Eval(child); err != nil {
				return None(), err
			}
		}
		return None(), nil

	case NodeBlock:
		// Declarations have no runtime effect; locals materialize on
		// first assignment.
		return ip.Eval(node.Compound)

	case NodeProgram:
		ip.callStack.Push(NewActivationRecord(node.Name, ARProgram, 1))
		// The program frame stays on the stack after execution so the
		// final bindings can be inspected.
		_, err := ip.Eval(node.Block)
		return None(), err

	case NodeProcCall:
		return ip.evalProcCall(node)

	case NodeVarDecl, NodeProcDecl, NodeType, NodeNoOp:
		return None(), nil

	default:
		return None(), evalError(node.Token, "unknown node kind %s", node.Kind)
	}
}

func (ip *Interpreter) evalBinary(node *ASTNode) (Value, error) {
	left, err := ip.Eval(node.Children[0])
	if err != nil {
		return None(), err
	}
	right, err := ip.Eval(node.Children[1])
	if err != nil {
		return None(), err
	}

	if left.Kind == ValueInteger && right.Kind == ValueInteger {
		switch node.Op {
		case PLUS:
			return IntegerValue(left.Int + right.Int), nil
		case MINUS:
			return IntegerValue(left.Int - right.Int), nil
		case ASTERISK:
			return IntegerValue(left.Int * right.Int), nil
		case INT_DIV:
			if right.Int == 0 {
				return None(), evalError(node.Token, "division by zero")
			}
			return IntegerValue(left.Int / right.Int), nil
		}
		return None(), evalError(node.Token,
			"operator %s is not valid for INTEGER operands", node.Op)
	}

	if left.Kind == ValueFloat && right.Kind == ValueFloat {
		switch node.Op {
		case PLUS:
			return FloatValue(left.Float + right.Float), nil
		case MINUS:
			return FloatValue(left.Float - right.Float), nil
		case ASTERISK:
			return FloatValue(left.Float * right.Float), nil
		case SLASH:
			return FloatValue(left.Float / right.Float), nil
		}
		return None(), evalError(node.Token,
			"operator %s is not valid for REAL operands", node.Op)
	}

	return None(), evalError(node.Token,
		"operator %s requires two operands of the same numeric kind, got %s and %s",
		node.Op, left.Kind, right.Kind)
}

func (ip *Interpreter) evalUnary(node *ASTNode) (Value, error) {
	operand, err := ip.Eval(node.Children[0])
	if err != nil {
		return None(), err
	}

	switch operand.Kind {
	case ValueInteger:
		if node.Op == MINUS {
			return IntegerValue(-operand.Int), nil
		}
		if node.Op == PLUS {
			return operand, nil
		}
	case ValueFloat:
		if node.Op == MINUS {
			return FloatValue(-operand.Float), nil
		}
		if node.Op == PLUS {
			return operand, nil
		}
	}
	return None(), evalError(node.Token,
		"unary %s is not valid for %s operand", node.Op, operand.Kind)
}

func (ip *Interpreter) evalProcCall(node *ASTNode) (Value, error) {
	proc := node.Proc
	if proc == nil {
		return None(), evalError(node.Token,
			"call to '%s' was not resolved by analysis", node.Name)
	}

	ar := NewActivationRecord(proc.Name, ARProcedure, ip.callStack.Len()+1)

	// Arguments are evaluated in the caller's frame, then bound under the
	// formal parameter names in the new frame, in declaration order.
	for i, param := range proc.FormalParams {
		value, err := ip.Eval(node.Children[i])
		if err != nil {
			return None(), err
		}
		ar.Set(param.Name, value)
	}

	ip.callStack.Push(ar)
	_, err := ip.Eval(proc.Block)
	ip.callStack.Pop()

	return None(), err
}
