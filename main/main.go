package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dball/conscell/cons"
	"github.com/dball/conscell/core"
	"github.com/dball/conscell/printer"
	"github.com/dball/conscell/reader"
	"github.com/dball/conscell/types"
	"github.com/peterh/liner"
)

// READ reads every form on the line
func READ(s string) (*cons.Cell, error) {
	return reader.ReadStr(cons.Standard, s)
}

// EVAL evaluates one form
func EVAL(env *core.Env, form types.Value) (types.Value, error) {
	return core.Eval(env, form)
}

// PRINT prints a result the way it would appear as a form
func PRINT(value types.Value) string {
	return printer.PrintForm(printer.Config{Readably: true}, value, cons.Standard.TypeOf(value))
}

// rep prints the result of each form on the line, one per line
func rep(env *core.Env, s string) (string, error) {
	forms, err := READ(s)
	if err != nil {
		return "", err
	}
	var out []string
	for form := forms; form != nil; form = form.Next() {
		val, err := EVAL(env, form.Car())
		if err != nil {
			return strings.Join(out, "\n"), err
		}
		out = append(out, PRINT(val))
	}
	return strings.Join(out, "\n"), nil
}

func interactiveRepl(env *core.Env) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(text string) []string {
		var matches []string
		start := strings.LastIndexAny(text, "( ") + 1
		for _, name := range env.Names() {
			if strings.HasPrefix(name, text[start:]) {
				matches = append(matches, text[:start]+name)
			}
		}
		return matches
	})
	historyFile := filepath.Join(os.TempDir(), ".conscell-history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	for {
		text, err := line.Prompt("cells> ")
		if err == nil {
			if strings.TrimSpace(text) == "" {
				continue
			}
			line.AppendHistory(text)
			out, err := rep(env, text)
			if out != "" {
				os.Stdout.WriteString(out + "\n")
			}
			if err != nil {
				os.Stdout.WriteString("#ERROR: " + err.Error() + "\n")
			}
		} else if err == liner.ErrPromptAborted {
		} else if err == io.EOF {
			break
		} else {
			log.Fatalf("liner err %v", err)
		}
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
}

func runFile(env *core.Env, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		n++
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		out, err := rep(env, scanner.Text())
		if out != "" {
			fmt.Println(out)
		}
		if err != nil {
			return fmt.Errorf("%v:%d: %w", path, n, err)
		}
	}
	return scanner.Err()
}

func main() {
	env := core.BuildEnv()
	if len(os.Args) < 2 {
		interactiveRepl(env)
		return
	}
	for _, path := range os.Args[1:] {
		if err := runFile(env, path); err != nil {
			os.Stderr.WriteString(fmt.Sprintf("error: %v\n", err))
			os.Exit(1)
		}
	}
}
