package main

import "fmt"

// ErrorCode classifies the fatal errors this interpreter can report.
type ErrorCode string

const (
	UnexpectedToken        ErrorCode = "Unexpected token"
	IdentifierNotFound     ErrorCode = "Identifier not found"
	DuplicateIdentifier    ErrorCode = "Duplicate identifier"
	ParameterCountMismatch ErrorCode = "Wrong number of arguments"
	EvaluationError        ErrorCode = "Evaluation error"
)

// LangError is the single error type used by the parser, the semantic
// analyzer, and the execution engine. Every error is fatal: the first one
// aborts the run. Token carries the offending source position.
type LangError struct {
	Code    ErrorCode
	Token   Token
	Message string
}

func (e *LangError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s -> %s", e.Code, e.Token)
}

func semanticError(code ErrorCode, token Token) *LangError {
	return &LangError{Code: code, Token: token}
}

func evalError(token Token, format string, args ...any) *LangError {
	return &LangError{Code: EvaluationError, Token: token, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the ErrorCode from an error produced by this package,
// or "" if the error is of some other type.
func CodeOf(err error) ErrorCode {
	if le, ok := err.(*LangError); ok {
		return le.Code
	}
	return ""
}
