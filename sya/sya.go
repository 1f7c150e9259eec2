package sya

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/thompson"
	"github.com/npillmayer/thompson/scanner"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Errors reported by the evaluator. Errors returned from Evaluate wrap one of
// these into an *EvalError.
var (
	ErrMismatchedParens = errors.New("mismatched parentheses")
	ErrUnknownToken     = errors.New("unknown token")
	ErrUnknownOperator  = errors.New("unknown operator")
	ErrInvalidOperator  = errors.New("invalid operator definition")
)

// EvalError is an error located at a span of the input.
type EvalError struct {
	Err    error
	Lexeme string
	Span   thompson.Span
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%v: %q at %s", e.Err, e.Lexeme, e.Span)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// Token types. Literals use their character code.
const (
	tokWord  thompson.TokType = 1
	tokLeft  thompson.TokType = '('
	tokRight thompson.TokType = ')'
	tokComma thompson.TokType = ','
)

// Evaluator converts infix expressions to postfix, using a table of
// operators. Evaluators are safe for concurrent use.
type Evaluator struct {
	ops   map[rune]Operator
	lexer *scanner.LMAdapter
}

// NewEvaluator creates an evaluator for a set of operators. If no operators
// are given, DefaultOperators is used.
//
// Operator symbols must be printable ASCII characters other than letters,
// digits, '_', parentheses and comma. Every symbol may be defined once.
func NewEvaluator(ops ...Operator) (*Evaluator, error) {
	if len(ops) == 0 {
		ops = DefaultOperators()
	}
	ev := &Evaluator{ops: make(map[rune]Operator, len(ops))}
	literals := []string{"(", ")", ","}
	for _, op := range ops {
		if !validOperatorSymbol(op.Symbol) {
			return nil, fmt.Errorf("%w: symbol %q not allowed", ErrInvalidOperator, op.Symbol)
		}
		if _, dup := ev.ops[op.Symbol]; dup {
			return nil, fmt.Errorf("%w: symbol %q defined twice", ErrInvalidOperator, op.Symbol)
		}
		ev.ops[op.Symbol] = op
		literals = append(literals, string(op.Symbol))
	}
	tokenIds := map[string]int{"WORD": int(tokWord)}
	for _, lit := range literals {
		tokenIds[lit] = int(lit[0])
	}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[a-zA-Z0-9_]+`), scanner.MakeToken("WORD", tokenIds["WORD"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
	}
	lexer, err := scanner.NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		return nil, err
	}
	ev.lexer = lexer
	return ev, nil
}

var defaultEvaluator *Evaluator
var defaultOnce sync.Once

// Evaluate converts an infix expression to postfix, using the default
// operator table.
func Evaluate(expr string) (string, error) {
	defaultOnce.Do(func() {
		ev, err := NewEvaluator()
		if err != nil {
			panic(err)
		}
		defaultEvaluator = ev
	})
	return defaultEvaluator.Evaluate(expr)
}

// IsOperator returns true if token denotes an operator of the evaluator.
func (ev *Evaluator) IsOperator(token string) bool {
	if len(token) != 1 {
		return false
	}
	_, ok := ev.ops[rune(token[0])]
	return ok
}

// Precedence returns the precedence of an operator.
func (ev *Evaluator) Precedence(op rune) (int, error) {
	o, ok := ev.ops[op]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
	return o.Precedence, nil
}

// Associativity returns the associativity of an operator.
func (ev *Evaluator) Associativity(op rune) (Associativity, error) {
	o, ok := ev.ops[op]
	if !ok {
		return Left, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
	return o.Assoc, nil
}

// Tokenize splits an expression into tokens, dropping whitespace. Characters
// which do not form a token result in an error wrapping ErrUnknownToken.
func (ev *Evaluator) Tokenize(expr string) ([]thompson.Token, error) {
	sc, err := ev.lexer.Scanner(expr)
	if err != nil {
		return nil, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr != nil {
			return
		}
		evErr := &EvalError{Err: ErrUnknownToken, Lexeme: e.Error()}
		if ui, ok := e.(*machines.UnconsumedInput); ok && ui.StartTC < len(expr) {
			from := uint64(ui.StartTC)
			evErr.Lexeme = expr[ui.StartTC : ui.StartTC+1]
			evErr.Span = thompson.Span{from, from + 1}
		}
		scanErr = evErr
	})
	var tokens []thompson.Token
	for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
		tokens = append(tokens, tok)
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return tokens, nil
}

// Evaluate converts an infix expression to postfix.
//
// Operands and function names are copied to the output in order of
// appearance. Operators leave the operator stack as soon as an operator of
// lower precedence arrives. A function name is emitted after its closing
// parenthesis.
func (ev *Evaluator) Evaluate(expr string) (string, error) {
	tokens, err := ev.Tokenize(expr)
	if err != nil {
		return "", err
	}
	tracer().Debugf("evaluate %q", expr)
	var out strings.Builder
	opstack := arraystack.New() // of thompson.Token
	emit := func(tok thompson.Token) {
		out.WriteString(tok.Lexeme())
	}
	for _, tok := range tokens {
		lexeme := tok.Lexeme()
		switch tok.TokType() {
		case tokWord:
			if IsOperand(lexeme) {
				emit(tok)
			} else if IsFunctionName(lexeme) {
				opstack.Push(tok)
			} else {
				return "", &EvalError{Err: ErrUnknownToken, Lexeme: lexeme, Span: tok.Span()}
			}
		case tokComma:
			for !opstack.Empty() && topType(opstack) != tokLeft {
				emit(pop(opstack))
			}
		case tokLeft:
			opstack.Push(tok)
		case tokRight:
			for !opstack.Empty() && topType(opstack) != tokLeft {
				emit(pop(opstack))
			}
			if opstack.Empty() {
				return "", &EvalError{Err: ErrMismatchedParens, Lexeme: lexeme, Span: tok.Span()}
			}
			pop(opstack) // discard '('
			if !opstack.Empty() && topType(opstack) == tokWord {
				emit(pop(opstack))
			}
		default:
			op, ok := ev.ops[rune(lexeme[0])]
			if !ok {
				return "", &EvalError{Err: ErrUnknownToken, Lexeme: lexeme, Span: tok.Span()}
			}
			for !opstack.Empty() && ev.yields(op, top(opstack)) {
				emit(pop(opstack))
			}
			opstack.Push(tok)
		}
	}
	for !opstack.Empty() {
		tok := pop(opstack)
		if tok.TokType() == tokLeft {
			return "", &EvalError{Err: ErrMismatchedParens, Lexeme: tok.Lexeme(), Span: tok.Span()}
		}
		emit(tok)
	}
	tracer().Debugf("postfix %q", out.String())
	return out.String(), nil
}

// yields is true if the operator on top of the stack has to be output before
// op is pushed.
func (ev *Evaluator) yields(op Operator, t thompson.Token) bool {
	if t.TokType() == tokLeft || t.TokType() == tokWord {
		return false
	}
	other := ev.ops[rune(t.Lexeme()[0])]
	if other.Precedence > op.Precedence {
		return true
	}
	return other.Precedence == op.Precedence && op.Assoc == Left
}

func top(stack *arraystack.Stack) thompson.Token {
	t, _ := stack.Peek()
	return t.(thompson.Token)
}

func topType(stack *arraystack.Stack) thompson.TokType {
	return top(stack).TokType()
}

func pop(stack *arraystack.Stack) thompson.Token {
	t, _ := stack.Pop()
	return t.(thompson.Token)
}
