package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/thompson"
	"github.com/npillmayer/thompson/nfa"
	"github.com/npillmayer/thompson/sya"
)

var errUsage = errors.New("usage")
var errUnknownCommand = errors.New("unknown command")
var errUndefined = errors.New("undefined name")

// main() starts an interactive CLI, where users may enter regular
// expressions and test them against input strings. It is intended as a
// sandbox for getting a feeling for Thompson automata.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to NFA.REPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	setTraceLevel(traceLevel(*tlevel))
	//
	// set up REPL
	repl, err := readline.New("nfa> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, syms: NewSymbolTable()}
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	last *thompson.Regexp // most recently compiled expression
	syms *SymbolTable     // named expressions
	repl *readline.Instance
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if quit, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		} else if quit {
			os.Exit(0)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command, given on a line by itself. It returns true if
// the user wants to quit.
//
func (intp *Intp) Eval(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	cmd, args := args[0], args[1:]
	tracer().Debugf("command %q, args = %v", cmd, args)
	var err error
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "post":
		err = intp.withPattern(args, 1, func(re *thompson.Regexp) error {
			pterm.Info.Println(re.Postfix())
			return nil
		})
	case "nfa":
		err = intp.withPattern(args, 1, func(re *thompson.Regexp) error {
			pterm.Info.Printf("%d states\n", re.Automaton().Size())
			pterm.Println(nfa.Describe(re.Automaton()))
			return nil
		})
	case "tree":
		err = intp.withPattern(args, 1, func(re *thompson.Regexp) error {
			pterm.Println(re.String())
			return printTree(re.Postfix())
		})
	case "match":
		err = intp.withPattern(args, 2, func(re *thompson.Regexp) error {
			return intp.match(re, args[1])
		})
	case "dot":
		err = intp.withPattern(args, 2, func(re *thompson.Regexp) error {
			return exportFile(args[1], func(f *os.File) error {
				return nfa.ToGraphViz(re.Automaton(), f)
			})
		})
	case "table":
		err = intp.withPattern(args, 1, func(re *thompson.Regexp) error {
			return intp.table(re, args[1:])
		})
	case "def":
		if len(args) < 2 {
			err = fmt.Errorf("%w: def NAME RE", errUsage)
			break
		}
		err = intp.withPattern(args[1:], 1, func(re *thompson.Regexp) error {
			if intp.syms == nil {
				intp.syms = NewSymbolTable()
			}
			if _, old := intp.syms.DefineTag(args[0], re); old != nil {
				pterm.Info.Printf("re-defined %s, was %s\n", args[0], old.re)
			}
			return nil
		})
	case "list":
		intp.syms.Each(func(name string, tag *Tag) {
			pterm.Info.Printf("%-10s = %-20s %s\n", name, tag.re, tag.re.Postfix())
		})
	case "eval":
		expr := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))
		var postfix string
		if postfix, err = sya.Evaluate(expr); err == nil {
			pterm.Info.Println(postfix)
		}
	default:
		err = fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return false, err
}

// withPattern compiles the first argument and calls f with the result.
// A pattern of "_" denotes the most recently compiled expression, "$name"
// denotes a named expression.
func (intp *Intp) withPattern(args []string, min int, f func(*thompson.Regexp) error) error {
	if len(args) < min {
		return fmt.Errorf("%w: command needs %d argument(s)", errUsage, min)
	}
	var re *thompson.Regexp
	switch pattern := args[0]; {
	case pattern == "_" && intp.last != nil:
		re = intp.last
	case len(pattern) > 1 && pattern[0] == '$':
		tag := intp.syms.ResolveTag(pattern[1:])
		if tag == nil {
			return fmt.Errorf("%w: %s", errUndefined, pattern[1:])
		}
		re = tag.re
	default:
		var err error
		if re, err = thompson.Compile(pattern); err != nil {
			return err
		}
	}
	intp.last = re
	return f(re)
}

func (intp *Intp) match(re *thompson.Regexp, input string) error {
	ok, err := re.Match(input)
	if err != nil {
		return err
	}
	if ok {
		pterm.Info.Printf("%q matches %q\n", re.String(), input)
	} else {
		pterm.Info.Printf("%q does not match %q\n", re.String(), input)
	}
	return nil
}

func (intp *Intp) table(re *thompson.Regexp, args []string) error {
	t := nfa.TransitionTable(re.Automaton())
	if len(args) > 0 {
		return exportFile(args[0], func(f *os.File) error {
			return nfa.TableAsHTML(t, f)
		})
	}
	var b strings.Builder
	b.WriteString("state  ε      ")
	for _, sym := range t.Symbols() {
		b.WriteString(fmt.Sprintf("%-7c", sym))
	}
	b.WriteString("\n")
	for id := 0; id < t.States(); id++ {
		mark := " "
		if t.IsAccepting(id) {
			mark = "*"
		}
		b.WriteString(fmt.Sprintf("%s%-5d ", mark, id))
		e1, e2 := t.Epsilon(id)
		b.WriteString(fmt.Sprintf("%-7s", cell(t, e1, e2)))
		for _, sym := range t.Symbols() {
			b.WriteString(fmt.Sprintf("%-7s", cell(t, t.Target(id, sym), t.NullValue())))
		}
		b.WriteString("\n")
	}
	pterm.Println(b.String())
	return nil
}

func cell(t *nfa.Table, v1, v2 int32) string {
	if v1 == t.NullValue() {
		return "-"
	} else if v2 == t.NullValue() {
		return fmt.Sprintf("%d", v1)
	}
	return fmt.Sprintf("%d/%d", v1, v2)
}

func exportFile(name string, export func(*os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = export(f); err != nil {
		return err
	}
	pterm.Info.Printf("wrote %s\n", name)
	return nil
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"thompson", "thompson.syntax", "thompson.nfa",
		"thompson.scanner", "thompson.sya", "thompson.repl"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
