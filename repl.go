package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const historyFile = ".pas_history"

// replCommand starts an interactive session that evaluates expressions and
// "name := expr" assignments against a persistent scratch frame. There are
// no declarations at the prompt, so static analysis is skipped: assignments
// bind directly into the frame and reading an unbound name reports an
// evaluation error.
func replCommand(args []string) {
	fmt.Println("pas repl - :quit to exit")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	interpreter := NewInterpreter()
	interpreter.CallStack().Push(NewActivationRecord("repl", ARProgram, 1))

	for {
		code, err := ln.Prompt("pas> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit", ":q":
				return
			case ":stack":
				fmt.Print(interpreter.CallStack().String())
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		value, err := evalReplLine(interpreter, code)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			continue
		}
		if value.Kind != ValueNone {
			fmt.Println(value.String())
		}
		ln.AppendHistory(code)
	}
}

func evalReplLine(interpreter *Interpreter, code string) (Value, error) {
	Init([]byte(code + "\x00"))
	NextToken()
	node, err := ParseReplLine()
	if err != nil {
		return None(), err
	}
	return interpreter.Eval(node)
}
