package vocab

import (
	"bytes"
	"fmt"
	"strings"

	specerrors "github.com/vocabgen/specdoc/errors"
)

// Well-known predicate and type URIs of the schema vocabularies the legacy
// generator understood.
const (
	rdfType         = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	rdfProperty     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#Property"
	rdfsClass       = "http://www.w3.org/2000/01/rdf-schema#Class"
	rdfsLabel       = "http://www.w3.org/2000/01/rdf-schema#label"
	rdfsComment     = "http://www.w3.org/2000/01/rdf-schema#comment"
	rdfsDomain      = "http://www.w3.org/2000/01/rdf-schema#domain"
	rdfsRange       = "http://www.w3.org/2000/01/rdf-schema#range"
	rdfsSubClassOf  = "http://www.w3.org/2000/01/rdf-schema#subClassOf"
	owlClass        = "http://www.w3.org/2002/07/owl#Class"
	owlObjectProp   = "http://www.w3.org/2002/07/owl#ObjectProperty"
	owlDatatypeProp = "http://www.w3.org/2002/07/owl#DatatypeProperty"
	owlDisjointWith = "http://www.w3.org/2002/07/owl#disjointWith"
)

// triple is one parsed N-Triples statement. Object is a URI unless Literal
// is set, in which case it is the unescaped literal lexical form.
type triple struct {
	subject   string
	predicate string
	object    string
	literal   bool
}

// Parse scans N-Triples data and builds the vocabulary model. Statement
// order is preserved everywhere the model keeps a list; that order is what
// the order engine permutes.
func Parse(data []byte) (*Vocabulary, error) {
	triples, err := scan(data)
	if err != nil {
		return nil, err
	}
	return build(triples)
}

// scan splits data into statements. Supported subset: URI subjects and
// predicates, URI or literal objects, '#' comment lines, blank lines.
// Language tags and datatype suffixes on literals are dropped.
func scan(data []byte) ([]triple, error) {
	var out []triple
	lineno := 0
	for len(data) > 0 {
		lineno++
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		t, err := parseStatement(string(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func parseStatement(line string) (triple, error) {
	var t triple

	rest, ok := strings.CutSuffix(line, ".")
	if !ok {
		return t, fmt.Errorf("%w: missing terminating '.'", specerrors.ErrBadTriple)
	}
	rest = strings.TrimSpace(rest)

	t.subject, rest, ok = cutURI(rest)
	if !ok {
		return t, fmt.Errorf("%w: bad subject", specerrors.ErrBadTriple)
	}
	t.predicate, rest, ok = cutURI(rest)
	if !ok {
		return t, fmt.Errorf("%w: bad predicate", specerrors.ErrBadTriple)
	}

	rest = strings.TrimSpace(rest)
	switch {
	case strings.HasPrefix(rest, "<"):
		t.object, rest, ok = cutURI(rest)
		if !ok || strings.TrimSpace(rest) != "" {
			return t, fmt.Errorf("%w: bad object URI", specerrors.ErrBadTriple)
		}
	case strings.HasPrefix(rest, `"`):
		lit, ok := cutLiteral(rest)
		if !ok {
			return t, fmt.Errorf("%w: bad literal", specerrors.ErrBadTriple)
		}
		t.object = lit
		t.literal = true
	default:
		return t, fmt.Errorf("%w: object is neither URI nor literal", specerrors.ErrBadTriple)
	}
	return t, nil
}

// cutURI consumes a leading <...> token and returns the URI, the remainder,
// and whether a well-formed token was present.
func cutURI(s string) (uri, rest string, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "<") {
		return "", s, false
	}
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", s, false
	}
	return s[1:end], s[end+1:], true
}

// cutLiteral consumes a leading quoted literal. The remainder after the
// closing quote (language tag, datatype) is discarded.
func cutLiteral(s string) (string, bool) {
	var b strings.Builder
	i := 1 // past opening quote
	for i < len(s) {
		c := s[i]
		switch c {
		case '"':
			return b.String(), true
		case '\\':
			if i+1 >= len(s) {
				return "", false
			}
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"', '\\':
				b.WriteByte(s[i])
			default:
				// Pass unknown escapes through untouched; the legacy
				// generator did not validate them either.
				b.WriteByte('\\')
				b.WriteByte(s[i])
			}
		default:
			b.WriteByte(c)
		}
		i++
	}
	return "", false
}

// localName extracts the term name: the fragment if present, otherwise the
// last path segment.
func localName(uri string) string {
	if i := strings.LastIndexByte(uri, '#'); i >= 0 {
		return uri[i+1:]
	}
	if i := strings.LastIndexByte(uri, '/'); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

// build assembles the model in two passes: term discovery first (so
// relationship statements may precede or follow type statements), then
// attribute and relationship collection in document order.
func build(triples []triple) (*Vocabulary, error) {
	v := &Vocabulary{
		classByName: make(map[string]*Class),
		propByName:  make(map[string]*Property),
	}
	classByURI := make(map[string]*Class)
	propByURI := make(map[string]*Property)

	for _, t := range triples {
		if t.predicate != rdfType || t.literal {
			continue
		}
		switch t.object {
		case rdfsClass, owlClass:
			if _, dup := classByURI[t.subject]; dup {
				continue
			}
			c := &Class{Term: Term{URI: t.subject, Name: localName(t.subject)}}
			classByURI[t.subject] = c
			v.classByName[c.Name] = c
			v.Classes = append(v.Classes, c)
		case rdfProperty, owlObjectProp, owlDatatypeProp:
			if _, dup := propByURI[t.subject]; dup {
				continue
			}
			p := &Property{Term: Term{URI: t.subject, Name: localName(t.subject)}}
			propByURI[t.subject] = p
			v.propByName[p.Name] = p
			v.Properties = append(v.Properties, p)
		}
	}

	if len(v.Classes) == 0 && len(v.Properties) == 0 {
		return nil, specerrors.ErrEmptyVocab
	}

	for _, t := range triples {
		switch t.predicate {
		case rdfsLabel:
			if c := classByURI[t.subject]; c != nil && c.Label == "" {
				c.Label = t.object
			} else if p := propByURI[t.subject]; p != nil && p.Label == "" {
				p.Label = t.object
			}
		case rdfsComment:
			if c := classByURI[t.subject]; c != nil && c.Comment == "" {
				c.Comment = t.object
			} else if p := propByURI[t.subject]; p != nil && p.Comment == "" {
				p.Comment = t.object
			}
		case rdfsDomain:
			p := propByURI[t.subject]
			c := classByURI[t.object]
			if p == nil || c == nil {
				continue
			}
			p.Domains = appendOnce(p.Domains, c.Name)
			c.DomainProps = appendOnce(c.DomainProps, p.Name)
		case rdfsRange:
			p := propByURI[t.subject]
			c := classByURI[t.object]
			if p == nil || c == nil {
				continue
			}
			p.Ranges = appendOnce(p.Ranges, c.Name)
			c.RangeProps = appendOnce(c.RangeProps, p.Name)
		case rdfsSubClassOf:
			sub := classByURI[t.subject]
			super := classByURI[t.object]
			if sub == nil || super == nil {
				continue
			}
			super.SubClasses = appendOnce(super.SubClasses, sub.Name)
		case owlDisjointWith:
			a := classByURI[t.subject]
			b := classByURI[t.object]
			if a == nil || b == nil {
				continue
			}
			// The legacy model recorded the declaration on both sides.
			a.Disjoints = appendOnce(a.Disjoints, b.Name)
			b.Disjoints = appendOnce(b.Disjoints, a.Name)
		}
	}

	return v, nil
}

// appendOnce appends s unless already present. Re-stated triples must not
// duplicate list entries; first occurrence fixes the document position.
func appendOnce(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}
