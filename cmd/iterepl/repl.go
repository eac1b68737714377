package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/timtadh/lexmachine"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/iteratable"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI where users may manipulate a wrapping
// set and step through iteration passes. It is intended as a sandbox for
// getting a feel for the cursor semantics: insert a couple of elements,
// consume part of a pass, abandon it, and watch the next pass resume.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to the iteratable set sandbox")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	scan, err := newCommandScanner()
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	rl, err := readline.New("iter> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		set:  iteratable.NewSet(0),
		repl: rl,
		scan: scan,
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
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
	set  *iteratable.Set
	pass *iteratable.Iterator // pass in progress, nil between passes
	repl *readline.Instance
	scan *commandScanner
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
		if quit := intp.execute(line); quit {
			break
		}
	}
	println("Good bye!")
}

// execute runs a single command line.
func (intp *Intp) execute(line string) bool {
	tokens := intp.scan.tokenize(line)
	if len(tokens) == 0 {
		return false
	}
	cmd, args := tokens[0], tokens[1:]
	switch cmd.Type {
	case tokAdd:
		intp.add(args)
	case tokDel:
		intp.del(args)
	case tokNext:
		intp.next(args)
	case tokPass:
		intp.fullPass()
	case tokShow:
		intp.show()
	case tokTrace:
		if len(args) != 1 {
			pterm.Error.Println("Usage: trace Debug|Info|Error")
			break
		}
		tracer().SetTraceLevel(traceLevel(lexeme(args[0])))
	case tokHelp:
		pterm.Info.Println("Commands: add el… | del el | next [n] | pass | show | trace level | quit")
	case tokQuit:
		return true
	default:
		pterm.Error.Printf("Unknown command '%s', try 'help'\n", lexeme(cmd))
	}
	return false
}

// add inserts elements. Mutating the set abandons a pass in progress; the
// cursor position is kept.
func (intp *Intp) add(args []*lexmachine.Token) {
	if len(args) == 0 {
		pterm.Error.Println("Usage: add element…")
		return
	}
	intp.pass = nil
	for _, arg := range args {
		el := lexeme(arg)
		if intp.set.Insert(el) {
			pterm.Info.Printf("added '%s'\n", el)
		} else {
			pterm.Info.Printf("'%s' already present\n", el)
		}
	}
}

func (intp *Intp) del(args []*lexmachine.Token) {
	if len(args) == 0 {
		pterm.Error.Println("Usage: del element…")
		return
	}
	intp.pass = nil
	for _, arg := range args {
		el := lexeme(arg)
		if intp.set.Remove(el) {
			pterm.Info.Printf("removed '%s'\n", el)
		} else {
			pterm.Info.Printf("'%s' not a member\n", el)
		}
	}
}

// next steps the pass in progress by n elements (default 1), starting a
// pass if none is live. Exhaustion of the pass is reported, not silently
// skipped over, so users can see the pass boundary.
func (intp *Intp) next(args []*lexmachine.Token) {
	n := 1
	if len(args) > 0 {
		var err error
		if n, err = strconv.Atoi(lexeme(args[0])); err != nil || n < 1 {
			pterm.Error.Println("Usage: next [count]")
			return
		}
	}
	if intp.pass == nil {
		intp.pass = intp.set.Iter()
	}
	for i := 0; i < n; i++ {
		el, ok := intp.pass.Next()
		if !ok {
			pterm.Info.Println("pass exhausted")
			intp.pass = nil
			return
		}
		pterm.Info.Printf("→ %v\n", el)
	}
}

// fullPass runs a fresh pass to exhaustion, abandoning a pass in progress.
func (intp *Intp) fullPass() {
	intp.pass = nil
	it := intp.set.Iter()
	count := 0
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		pterm.Info.Printf("→ %v\n", el)
		count++
	}
	pterm.Info.Printf("pass yielded %d elements\n", count)
}

func (intp *Intp) show() {
	pterm.Info.Printf("%v\n", intp.set)
	for _, el := range intp.set.Values() {
		pterm.Info.Printf("  %v\n", el)
	}
}

func lexeme(tok *lexmachine.Token) string {
	return string(tok.Lexeme)
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
