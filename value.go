package main

import "strconv"

// ValueKind discriminates the variants of a runtime Value.
type ValueKind string

const (
	ValueNone    ValueKind = "None"
	ValueInteger ValueKind = "Integer"
	ValueFloat   ValueKind = "Float"
	ValueString  ValueKind = "String"
)

// Value is a runtime value: an integer, a real, identifier text carried
// through name nodes, or nothing. The zero Value is not valid; use None().
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Str   string
}

func None() Value {
	return Value{Kind: ValueNone}
}

func IntegerValue(n int64) Value {
	return Value{Kind: ValueInteger, Int: n}
}

func FloatValue(f float64) Value {
	return Value{Kind: ValueFloat, Float: f}
}

func StringValue(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// IsNumeric reports whether the value is an Integer or a Float.
func (v Value) IsNumeric() bool {
	return v.Kind == ValueInteger || v.Kind == ValueFloat
}

func (v Value) String() string {
	switch v.Kind {
	case ValueInteger:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValueString:
		return v.Str
	default:
		return ""
	}
}
