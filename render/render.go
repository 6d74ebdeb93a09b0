// Package render produces the HTML fragments of the documentation pages.
//
// Templates are the legacy format: plain HTML with %UPPERCASE%
// placeholders. Substitution is literal, with no escaping pass and no
// whitespace normalization. That is deliberate: byte-for-byte
// compatibility with the decommissioned generator depends on its quirks,
// like term lists whose items are joined with ",\n    " and a lone
// newline before the closing tag.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	specerrors "github.com/vocabgen/specdoc/errors"
	"github.com/vocabgen/specdoc/vocab"
)

// Default templates, used when no template directory is configured. They
// match the fragments shipped with the last release of the old generator.
const (
	DefaultClassTemplate = `<div class="specterm" id="term_%NAME%">
<h3>Class: %NAME%</h3>
<em>%LABEL%</em> - %COMMENT% <br/>
<table>
<tr><th>URI:</th><td>%URI%</td></tr>
</table>
<ul>
<li>Properties include:
%DOMAINPROPS%</li>
<li>Used with:
%RANGEPROPS%</li>
<li>Subclasses:
%SUBCLASSES%</li>
<li>Disjoint with:
%DISJOINTS%</li>
</ul>
</div>
`

	DefaultIndexTemplate = `<div class="azlist">
<p>Classes: |%CLASSLIST%|</p>
<p>Properties: |%PROPLIST%|</p>
</div>
`
)

// Templates holds the page fragments the generator expands.
type Templates struct {
	class string
	index string
}

// Defaults returns the built-in legacy fragments.
func Defaults() *Templates {
	return &Templates{class: DefaultClassTemplate, index: DefaultIndexTemplate}
}

// LoadTemplates reads class.tpl and index.tpl from dir.
func LoadTemplates(dir string) (*Templates, error) {
	class, err := os.ReadFile(filepath.Join(dir, "class.tpl"))
	if err != nil {
		return nil, fmt.Errorf("%w: class.tpl: %v", specerrors.ErrNoTemplate, err)
	}
	index, err := os.ReadFile(filepath.Join(dir, "index.tpl"))
	if err != nil {
		return nil, fmt.Errorf("%w: index.tpl: %v", specerrors.ErrNoTemplate, err)
	}
	return &Templates{class: string(class), index: string(index)}, nil
}

// ClassPage expands the class fragment. lists carries the four
// relationship lists in their final (reordered) form; the linkifier turns
// term mentions inside the class comment into anchors.
func (t *Templates) ClassPage(c *vocab.Class, lists map[vocab.ListKind][]string, linkify *Linkifier) string {
	return expand(t.class, map[string]string{
		"NAME":        c.Name,
		"LABEL":       c.Label,
		"COMMENT":     linkify.Apply(c.Comment),
		"URI":         c.URI,
		"DOMAINPROPS": TermList(lists[vocab.DomainProperties]),
		"RANGEPROPS":  TermList(lists[vocab.RangeProperties]),
		"SUBCLASSES":  TermList(lists[vocab.SubClasses]),
		"DISJOINTS":   TermList(lists[vocab.Disjoints]),
	})
}

// IndexPage expands the index fragment with the full term listings in
// document order (the index was never hash-ordered).
func (t *Templates) IndexPage(v *vocab.Vocabulary) string {
	var classes, props []string
	for _, c := range v.Classes {
		classes = append(classes, anchor(c.Name))
	}
	for _, p := range v.Properties {
		props = append(props, anchor(p.Name))
	}
	return expand(t.index, map[string]string{
		"CLASSLIST": strings.Join(classes, " | "),
		"PROPLIST":  strings.Join(props, " | "),
	})
}

// TermList renders a relationship list in the legacy shape: each term an
// anchor, indented four spaces, joined with ",\n    ", and a trailing
// newline. Empty lists render as an empty string, leaving the bare label
// line exactly as the old generator left it.
func TermList(names []string) string {
	if len(names) == 0 {
		return ""
	}
	items := make([]string, len(names))
	for i, n := range names {
		items[i] = anchor(n)
	}
	return "    " + strings.Join(items, ",\n    ") + "\n"
}

func anchor(name string) string {
	return fmt.Sprintf("<a href=\"#term_%s\">%s</a>", name, name)
}

// expand replaces %KEY% tokens with their values, literally and in a
// single pass. Unknown tokens stay in place, which is how the old
// generator surfaced template typos.
func expand(tpl string, vars map[string]string) string {
	pairs := make([]string, 0, 2*len(vars))
	for k, v := range vars {
		pairs = append(pairs, "%"+k+"%", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
