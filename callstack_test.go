package main

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestActivationRecordBindings(t *testing.T) {
	ar := NewActivationRecord("main", ARProgram, 1)

	_, ok := ar.Get("a")
	be.True(t, !ok)

	ar.Set("a", IntegerValue(5))
	v, ok := ar.Get("a")
	be.True(t, ok)
	be.Equal(t, v, IntegerValue(5))

	// Set overwrites.
	ar.Set("a", FloatValue(2.5))
	v, _ = ar.Get("a")
	be.Equal(t, v, FloatValue(2.5))
}

func TestActivationRecordNamesSorted(t *testing.T) {
	ar := NewActivationRecord("alpha", ARProcedure, 2)
	ar.Set("z", IntegerValue(1))
	ar.Set("a", IntegerValue(2))
	ar.Set("m", IntegerValue(3))

	be.Equal(t, ar.Names(), []string{"a", "m", "z"})
}

func TestActivationRecordString(t *testing.T) {
	ar := NewActivationRecord("main", ARProgram, 1)
	ar.Set("y", FloatValue(2.5))
	ar.Set("x", IntegerValue(17))

	be.Equal(t, ar.String(), "1 PROGRAM main\n  x = 17\n  y = 2.5\n")
}

func TestCallStackPushPopPeek(t *testing.T) {
	var cs CallStack
	be.Equal(t, cs.Len(), 0)
	be.Equal(t, cs.Peek(), (*ActivationRecord)(nil))
	be.Equal(t, cs.Pop(), (*ActivationRecord)(nil))

	program := NewActivationRecord("main", ARProgram, 1)
	proc := NewActivationRecord("alpha", ARProcedure, 2)

	cs.Push(program)
	cs.Push(proc)
	be.Equal(t, cs.Len(), 2)
	be.Equal(t, cs.Peek(), proc)

	be.Equal(t, cs.Pop(), proc)
	be.Equal(t, cs.Len(), 1)
	be.Equal(t, cs.Peek(), program)
}

func TestCallStackStringTopFirst(t *testing.T) {
	var cs CallStack
	cs.Push(NewActivationRecord("main", ARProgram, 1))
	cs.Push(NewActivationRecord("alpha", ARProcedure, 2))

	be.Equal(t, cs.String(),
		"CALL STACK\n2 PROCEDURE alpha\n1 PROGRAM main\n")
}
