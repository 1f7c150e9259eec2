package syntax

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var conversions = []struct {
	regex, postfix string
}{
	// literals
	{"", ""},
	{"a", "a"},
	{"ab", "ab."},
	{"abc", "ab.c."},
	// alternation
	{"a|b", "ab|"},
	{"a|b|c", "abc||"},
	{"ab|cd", "ab.cd.|"},
	// repetition
	{"a*", "a*"},
	{"a+", "a+"},
	{"a?", "a?"},
	{"a*b+", "a*b+."},
	{"a|b*", "ab*|"},
	{"ab*", "ab*."},
	{"a*b", "a*b."},
	// grouping
	{"(a)", "a"},
	{"((a))", "a"},
	{"(a|b)c", "ab|c."},
	{"a(b|c)", "abc|."},
	{"a(b)", "ab."},
	{"(ab)*", "ab.*"},
	{"(a|b)*", "ab|*"},
	{"(a|b)(c|d)", "ab|cd|."},
	{"(a|(b|c))", "abc||"},
	// complex expressions
	{"a(b|c)*d", "abc|*.d."},
	{"(a|b)*c(d|e)?", "ab|*c.de|?."},
	{"a+b?c*", "a+b?.c*."},
	{"a*b|c+", "a*b.c+|"},
	{"(a*)*", "a**"},
	{"äö|ü", "äö.ü|"},
}

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.syntax")
	defer teardown()
	//
	for i, c := range conversions {
		postfix, err := Convert(c.regex)
		if err != nil {
			t.Errorf("#%d: unexpected error for %q: %v", i, c.regex, err)
			continue
		}
		if postfix != c.postfix {
			t.Errorf("#%d: expected %q to convert to %q, is %q", i, c.regex, c.postfix, postfix)
		}
	}
}

var malformed = []struct {
	regex string
	pos   int
}{
	{"(a|)", 3},  // ends with alternation in parentheses
	{"|a", 0},    // starts with alternation
	{"a|", 2},    // ends with alternation
	{"(*)", 1},   // no atom before *
	{"*", 0},     // nothing to repeat
	{"a|+", 2},   // nothing to repeat after alternation
	{"(a", 2},    // unclosed parenthesis
	{"(a|", 3},   // unclosed parenthesis
	{"(", 1},     // unclosed parenthesis
	{"a)", 1},    // unopened parenthesis
	{")", 0},     // unopened parenthesis
	{"()", 1},    // empty group
	{"a.b", 1},   // '.' is reserved
	{"(a))", 3},  // one closing parenthesis too many
	{"a(|b)", 2}, // alternation without left operand inside group
}

func TestConvertErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.syntax")
	defer teardown()
	//
	for i, c := range malformed {
		postfix, err := Convert(c.regex)
		if err == nil {
			t.Errorf("#%d: expected %q to be rejected, converted to %q", i, c.regex, postfix)
			continue
		}
		if !errors.Is(err, ErrInvalidExpression) {
			t.Errorf("#%d: expected error for %q to be ErrInvalidExpression, is %v", i, c.regex, err)
		}
		var xerr *ExpressionError
		if !errors.As(err, &xerr) {
			t.Errorf("#%d: expected error for %q to be an ExpressionError", i, c.regex)
			continue
		}
		if xerr.Pos != c.pos {
			t.Errorf("#%d: expected error for %q at position %d, is %d", i, c.regex, c.pos, xerr.Pos)
		}
	}
}

func TestMustConvertPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected MustConvert to panic for malformed expression")
		}
	}()
	MustConvert("(a|")
}

func TestIsOperator(t *testing.T) {
	for _, r := range ".|?*+" {
		if !IsOperator(r) {
			t.Errorf("Expected %q to be an operator", r)
		}
	}
	for _, r := range "a()ε" {
		if IsOperator(r) {
			t.Errorf("Expected %q not to be an operator", r)
		}
	}
}
