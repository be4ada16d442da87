package main

import (
	"sort"
	"strconv"
	"strings"
)

// SymbolKind discriminates the variants of a compile-time Symbol.
type SymbolKind string

const (
	SymbolBuiltin   SymbolKind = "builtin"
	SymbolVariable  SymbolKind = "variable"
	SymbolProcedure SymbolKind = "procedure"
)

// Symbol is the compile-time description of a declared name.
type Symbol struct {
	Kind SymbolKind
	Name string
	// SymbolVariable:
	Type *Symbol
	// SymbolProcedure: formal parameters in declaration order, and the
	// procedure's body block.
	FormalParams []*Symbol
	Block        *ASTNode
}

func NewBuiltinSymbol(name string) *Symbol {
	return &Symbol{Kind: SymbolBuiltin, Name: name}
}

func NewVariableSymbol(name string, typ *Symbol) *Symbol {
	return &Symbol{Kind: SymbolVariable, Name: name, Type: typ}
}

func NewProcedureSymbol(name string) *Symbol {
	return &Symbol{Kind: SymbolProcedure, Name: name}
}

// SymbolTable is the static namespace of one lexical block, chained to the
// table of the enclosing block. ScopeLevel is the static nesting level,
// distinct from the dynamic nesting level of activation records.
type SymbolTable struct {
	symbols    map[string]*Symbol
	ScopeName  string
	ScopeLevel int
	Enclosing  *SymbolTable
}

// NewSymbolTable returns a table pre-populated with the builtin type
// symbols INTEGER and REAL.
func NewSymbolTable(scopeName string, scopeLevel int, enclosing *SymbolTable) *SymbolTable {
	st := &SymbolTable{
		symbols:    make(map[string]*Symbol),
		ScopeName:  scopeName,
		ScopeLevel: scopeLevel,
		Enclosing:  enclosing,
	}
	st.Insert(NewBuiltinSymbol("INTEGER"))
	st.Insert(NewBuiltinSymbol("REAL"))
	return st
}

// Insert stores the symbol in this table, overwriting any existing entry.
// Duplicate detection is the analyzer's job, via a current-scope-only
// Lookup before Insert.
func (st *SymbolTable) Insert(sym *Symbol) {
	st.symbols[canonical(sym.Name)] = sym
}

// Lookup returns the nearest symbol with the given name, walking the
// enclosing chain unless currentScopeOnly is set. Returns nil if the name
// is not found anywhere.
func (st *SymbolTable) Lookup(name string, currentScopeOnly bool) *Symbol {
	key := canonical(name)
	for s := st; s != nil; s = s.Enclosing {
		if sym, ok := s.symbols[key]; ok {
			return sym
		}
		if currentScopeOnly {
			break
		}
	}
	return nil
}

// Len reports the number of symbols in this table only (builtins included).
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

func (st *SymbolTable) String() string {
	names := make([]string, 0, len(st.symbols))
	for name := range st.symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("SCOPE ")
	b.WriteString(st.ScopeName)
	b.WriteString(" (level ")
	b.WriteString(strconv.Itoa(st.ScopeLevel))
	b.WriteString(")\n")
	for _, name := range names {
		sym := st.symbols[name]
		b.WriteString("  ")
		b.WriteString(sym.Name)
		b.WriteString(": ")
		b.WriteString(string(sym.Kind))
		if sym.Type != nil {
			b.WriteString(" of ")
			b.WriteString(sym.Type.Name)
		}
		b.WriteString("\n")
	}
	return b.String()
}
