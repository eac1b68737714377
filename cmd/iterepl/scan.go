package main

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token values for the REPL command language. Commands are keywords,
// everything else is a word (set elements are symbolic names) or a number.
const (
	tokWord = iota + 1
	tokNumber
	tokAdd
	tokDel
	tokNext
	tokPass
	tokShow
	tokTrace
	tokHelp
	tokQuit
)

var keywords = map[string]int{
	"add":   tokAdd,
	"del":   tokDel,
	"next":  tokNext,
	"pass":  tokPass,
	"show":  tokShow,
	"trace": tokTrace,
	"help":  tokHelp,
	"quit":  tokQuit,
}

// commandScanner tokenizes REPL input lines with a lexmachine lexer.
type commandScanner struct {
	lexer *lexmachine.Lexer
}

// newCommandScanner builds the lexer for the command language. It will
// return an error if compiling the DFA failed.
func newCommandScanner() (*commandScanner, error) {
	cs := &commandScanner{}
	cs.lexer = lexmachine.NewLexer()
	cs.lexer.Add([]byte(`( |\t)+`), skip)
	for name, id := range keywords {
		cs.lexer.Add([]byte(name), makeToken(id))
	}
	cs.lexer.Add([]byte(`[0-9]+`), makeToken(tokNumber))
	cs.lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), makeToken(tokWord))
	if err := cs.lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return cs, nil
}

// tokenize scans one input line into tokens. Unscannable input is skipped
// over, with the error traced.
func (cs *commandScanner) tokenize(line string) []*lexmachine.Token {
	s, err := cs.lexer.Scanner([]byte(line))
	if err != nil {
		tracer().Errorf("scanner error: %v", err)
		return nil
	}
	var tokens []*lexmachine.Token
	for {
		tok, err, eof := s.Next()
		for err != nil {
			tracer().Errorf("scanner error: %v", err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				s.TC = ui.FailTC
			}
			tok, err, eof = s.Next()
		}
		if eof {
			return tokens
		}
		tokens = append(tokens, tok.(*lexmachine.Token))
	}
}

// skip is a scanner action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a scanner action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
