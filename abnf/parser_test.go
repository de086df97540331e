package abnf

import (
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertParse(t *testing.T, expected []Rule, src string) bool { //nolint:unparam
	rules, err := Parse(src)
	if se, ok := err.(SyntaxError); ok {
		t.Logf("\n%s", se.Context())
	}
	return assert.NoError(t, err) && assert.Equal(t, expected, rules)
}

func TestParseStrings(t *testing.T) {
	for _, str := range []string{
		`""`,
		`"f"`,
		`"foo"`,
		`r"foo"`,
		`#"foo"#`,
		`r#"foo"#`,
		`r#"f"oo"#`,
		`r#"f""oo"#`,
		`r##"f"#oo"##`,
		`r##"f"测试#oo"##`,
		`"测试"`,
	} {
		str := str
		t.Run(str, func(t *testing.T) {
			assertParse(t, []Rule{{Name: "x", Body: []List{{Atom(str)}}}}, "x = "+str)
		})
	}
}

func TestParseExample(t *testing.T) {
	src := `
x = "x"
y = x "foo" extern-rule
  / x x
`
	assertParse(t, []Rule{
		{Name: "x", Body: []List{{Atom(`"x"`)}}},
		{Name: "y", Body: []List{
			{Atom("x"), Atom(`"foo"`), Atom("extern_rule")},
			{Atom("x"), Atom("x")},
		}},
	}, src)
}

func TestParsePatterns(t *testing.T) {
	assertParse(t, []Rule{{Name: "a", Body: []List{{
		Repeat{Pats: List{Atom("b")}, Kind: Star},
		Repeat{Pats: List{Atom("c")}, Kind: Plus},
		List{Atom("d"), Atom("e")},
		Repeat{Pats: List{Atom("f"), Atom("g")}, Kind: Optional},
		List{},
		Repeat{Pats: List{List{Atom("h"), Atom(`"i"`)}}, Kind: Star},
	}}}}, `a = *b + c (d e) [ f g ] () * ( h "i" )`)
}

func TestParseAdjacentPatterns(t *testing.T) {
	assertParse(t, []Rule{{Name: "a", Body: []List{{
		Atom(`"b"`), Atom(`"c"`), List{Atom("d")}, Atom("e"),
	}}}}, `a="b""c"(d)e`)
}

func TestParseAlternativesKeepOrder(t *testing.T) {
	assertParse(t, []Rule{
		{Name: "z", Body: []List{{Atom("c")}, {Atom("b")}, {Atom("a")}}},
		{Name: "a", Body: []List{{Atom("z")}}},
	}, "z = c / b\n/ a\na = z")
}

func TestParseSemicolons(t *testing.T) {
	assertParse(t, []Rule{
		{Name: "a", Body: []List{{Atom("b")}}},
		{Name: "c", Body: []List{{Atom("d")}, {Atom("e")}}},
	}, "a = b;\nc = d / e ;\n")
}

func TestParseDefinitionLookahead(t *testing.T) {
	assertParse(t, []Rule{
		{Name: "a", Body: []List{{Atom("b")}}},
		{Name: "c", Body: []List{{Atom("d")}}},
	}, "a = b c\t=\r\nd")
}

func TestParseIdents(t *testing.T) {
	assertParse(t, []Rule{
		{Name: "foo_bar", Body: []List{{Atom("baz_qux"), Atom("r"), Atom("rx"), Atom("日本"), Atom("_9")}}},
	}, "foo-bar = baz-qux r rx 日本 _9")
}

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", " \t\r\n "} {
		rules, err := Parse(src)
		require.NoError(t, err)
		assert.Empty(t, rules)
	}
}

var allPatterns = []string{`"("`, `"*"`, `"+"`, `"["`, "ident", "string"}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		name     string
		src      string
		line     int
		col      int
		expected []string
	}{
		{name: "unterminated string", src: `x = "abc`, line: 1, col: 5, expected: allPatterns},
		{name: "unterminated raw string", src: `x = r#"abc"`, line: 1, col: 5, expected: allPatterns},
		{name: "missing body", src: `x =`, line: 1, col: 4, expected: allPatterns},
		{name: "missing name", src: `= x`, line: 1, col: 1, expected: []string{"EOF", "ident"}},
		{name: "empty alternative", src: "x = a\n  / )", line: 2, col: 5, expected: allPatterns},
		{name: "empty brackets", src: `x = [ ]`, line: 1, col: 7, expected: allPatterns},
		{name: "wide column", src: `é = "x`, line: 1, col: 5, expected: allPatterns},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			rules, err := Parse(test.src)
			assert.Nil(t, rules)
			require.Error(t, err)
			require.IsType(t, SyntaxError{}, err)
			se := err.(SyntaxError)
			assert.Equal(t, test.line, se.Line)
			assert.Equal(t, test.col, se.Column)
			assert.Equal(t, test.expected, se.Expected)
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse(`x = "`) })
	assert.NotPanics(t, func() { MustParse(`x = "y"`) })
}

func TestParseTrace(t *testing.T) {
	hook := logtest.NewGlobal()
	level := logrus.GetLevel()
	logrus.SetOutput(io.Discard)
	logrus.SetLevel(logrus.TraceLevel)
	defer logrus.SetOutput(os.Stderr)
	defer logrus.SetLevel(level)

	MustParse("a = b")
	entries := hook.AllEntries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "--> def@0", entries[0].Message)
	assert.Contains(t, messages(entries), "<-- def@0: ok=true end=5")
	assert.Equal(t, "<-- def@5: ok=false end=5", hook.LastEntry().Message)
}

func messages(entries []*logrus.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message)
	}
	return out
}
