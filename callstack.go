package main

import (
	"sort"
	"strconv"
	"strings"
)

// ARKind is the kind of frame an ActivationRecord represents.
type ARKind string

const (
	ARProgram   ARKind = "PROGRAM"
	ARProcedure ARKind = "PROCEDURE"
)

// ActivationRecord is the runtime frame for one active call: its name, its
// kind, its dynamic nesting level (call depth, distinct from the static
// scope level), and the current variable bindings.
type ActivationRecord struct {
	Name         string
	Kind         ARKind
	NestingLevel int
	members      map[string]Value
}

func NewActivationRecord(name string, kind ARKind, nestingLevel int) *ActivationRecord {
	return &ActivationRecord{
		Name:         name,
		Kind:         kind,
		NestingLevel: nestingLevel,
		members:      make(map[string]Value),
	}
}

// Set inserts or overwrites a binding.
func (ar *ActivationRecord) Set(name string, value Value) {
	ar.members[name] = value
}

// Get returns the binding for name, if any.
func (ar *ActivationRecord) Get(name string) (Value, bool) {
	v, ok := ar.members[name]
	return v, ok
}

// Names returns the bound names in sorted order, for inspection.
func (ar *ActivationRecord) Names() []string {
	names := make([]string, 0, len(ar.members))
	for name := range ar.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (ar *ActivationRecord) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(ar.NestingLevel))
	b.WriteString(" ")
	b.WriteString(string(ar.Kind))
	b.WriteString(" ")
	b.WriteString(ar.Name)
	b.WriteString("\n")
	for _, name := range ar.Names() {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString(" = ")
		b.WriteString(ar.members[name].String())
		b.WriteString("\n")
	}
	return b.String()
}

// CallStack is the runtime LIFO stack of activation records. Push, Pop and
// Peek operate on the top only.
type CallStack struct {
	records []*ActivationRecord
}

func (cs *CallStack) Push(ar *ActivationRecord) {
	cs.records = append(cs.records, ar)
}

func (cs *CallStack) Pop() *ActivationRecord {
	if len(cs.records) == 0 {
		return nil
	}
	top := cs.records[len(cs.records)-1]
	cs.records = cs.records[:len(cs.records)-1]
	return top
}

func (cs *CallStack) Peek() *ActivationRecord {
	if len(cs.records) == 0 {
		return nil
	}
	return cs.records[len(cs.records)-1]
}

func (cs *CallStack) Len() int {
	return len(cs.records)
}

// Records returns the frames bottom-up, for post-run inspection.
func (cs *CallStack) Records() []*ActivationRecord {
	return cs.records
}

func (cs *CallStack) String() string {
	var b strings.Builder
	b.WriteString("CALL STACK\n")
	for i := len(cs.records) - 1; i >= 0; i-- {
		b.WriteString(cs.records[i].String())
	}
	return b.String()
}
