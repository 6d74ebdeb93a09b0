package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	specerrors "github.com/vocabgen/specdoc/errors"
	"github.com/vocabgen/specdoc/vocab"
)

func TestTermListShape(t *testing.T) {
	// The exact join string is load-bearing for byte compatibility.
	got := TermList([]string{"knows", "name"})
	want := "    <a href=\"#term_knows\">knows</a>,\n" +
		"    <a href=\"#term_name\">name</a>\n"
	assert.Equal(t, want, got)

	assert.Equal(t, "", TermList(nil), "empty list renders as empty string")
	assert.Equal(t,
		"    <a href=\"#term_maker\">maker</a>\n",
		TermList([]string{"maker"}))
}

func TestClassPage(t *testing.T) {
	c := &vocab.Class{
		Term: vocab.Term{
			URI:     "http://example.org/v#Person",
			Name:    "Person",
			Label:   "Person",
			Comment: "A person.",
		},
	}
	lists := map[vocab.ListKind][]string{
		vocab.DomainProperties: {"knows", "name"},
		vocab.SubClasses:       nil,
	}

	page := Defaults().ClassPage(c, lists, nil)
	assert.Contains(t, page, `id="term_Person"`)
	assert.Contains(t, page, "<h3>Class: Person</h3>")
	assert.Contains(t, page, "http://example.org/v#Person")
	assert.Contains(t, page, "    <a href=\"#term_knows\">knows</a>,\n    <a href=\"#term_name\">name</a>\n")
	// Empty list leaves the label line bare.
	assert.Contains(t, page, "<li>Subclasses:\n</li>")
	assert.NotContains(t, page, "%NAME%")
}

func TestClassPageNoEscaping(t *testing.T) {
	// Substitution is literal; markup in comments passes through, exactly
	// as the old generator emitted it.
	c := &vocab.Class{Term: vocab.Term{Name: "A", Comment: `uses <em> & "quotes"`}}
	page := Defaults().ClassPage(c, nil, nil)
	assert.Contains(t, page, `uses <em> & "quotes"`)
}

func TestIndexPage(t *testing.T) {
	v := &vocab.Vocabulary{
		Classes: []*vocab.Class{
			{Term: vocab.Term{Name: "Agent"}},
			{Term: vocab.Term{Name: "Person"}},
		},
		Properties: []*vocab.Property{
			{Term: vocab.Term{Name: "knows"}},
		},
	}
	page := Defaults().IndexPage(v)
	assert.Contains(t, page, `<a href="#term_Agent">Agent</a> | <a href="#term_Person">Person</a>`)
	assert.Contains(t, page, `<a href="#term_knows">knows</a>`)
}

func TestExpandUnknownTokenStays(t *testing.T) {
	got := expand("a %KNOWN% b %UNKNOWN% c", map[string]string{"KNOWN": "x"})
	assert.Equal(t, "a x b %UNKNOWN% c", got)
}

func TestLinkifier(t *testing.T) {
	l := NewLinkifier([]string{"Fund", "FundingModel", "Agent"})

	got := l.Apply("A FundingModel is held by an Agent.")
	assert.Equal(t,
		`A <a href="#term_FundingModel">FundingModel</a> is held by an <a href="#term_Agent">Agent</a>.`,
		got)

	// Longest match wins; "Fund" must not split "FundingModel".
	got = l.Apply("Fund and FundingModel")
	assert.Equal(t,
		`<a href="#term_Fund">Fund</a> and <a href="#term_FundingModel">FundingModel</a>`,
		got)
}

func TestLinkifierNil(t *testing.T) {
	var l *Linkifier
	assert.Equal(t, "text", l.Apply("text"))
}

func TestLinkifierDoesNotRescan(t *testing.T) {
	l := NewLinkifier([]string{"term_x", "x"})
	got := l.Apply("x")
	// The inserted anchor contains "term_x" and "x"; neither may be
	// replaced again.
	assert.Equal(t, `<a href="#term_x">x</a>`, got)
	assert.Equal(t, 1, strings.Count(got, "<a "))
}

func TestLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "class.tpl"), []byte("C %NAME%"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.tpl"), []byte("I %CLASSLIST%"), 0o644))

	tpl, err := LoadTemplates(dir)
	require.NoError(t, err)
	page := tpl.ClassPage(&vocab.Class{Term: vocab.Term{Name: "X"}}, nil, nil)
	assert.Equal(t, "C X", page)

	_, err = LoadTemplates(t.TempDir())
	assert.ErrorIs(t, err, specerrors.ErrNoTemplate)
}
