// Package vocab loads RDF vocabulary descriptions and builds the
// class/property model the generator renders. Input is the N-Triples
// subset the legacy toolchain exchanged; extraction is deliberately plain,
// the interesting behavior lives in the ordering of the relationship
// lists, which this package records strictly in document order (first
// statement wins) for the order engine to permute.
package vocab

// ListKind names one of the four per-class relationship lists whose legacy
// ordering the generator reproduces.
type ListKind string

const (
	// DomainProperties lists properties declaring this class as domain.
	DomainProperties ListKind = "domain-properties"

	// RangeProperties lists properties declaring this class as range.
	RangeProperties ListKind = "range-properties"

	// SubClasses lists known direct subclasses of this class.
	SubClasses ListKind = "subclasses"

	// Disjoints lists classes declared disjoint with this class.
	Disjoints ListKind = "disjoints"
)

// ListKinds enumerates the relationship kinds in the order the legacy
// generator emitted their sections.
var ListKinds = []ListKind{DomainProperties, RangeProperties, SubClasses, Disjoints}

// Term is the common identity of a class or property.
type Term struct {
	URI     string
	Name    string // local name: fragment, or last path segment
	Label   string // rdfs:label, empty if undeclared
	Comment string // rdfs:comment, empty if undeclared
}

// Class is a vocabulary class with its four relationship lists, each in
// document order of the statements that produced it.
type Class struct {
	Term
	DomainProps []string
	RangeProps  []string
	SubClasses  []string
	Disjoints   []string
}

// List returns the relationship list for kind, nil for an unknown kind.
func (c *Class) List(kind ListKind) []string {
	switch kind {
	case DomainProperties:
		return c.DomainProps
	case RangeProperties:
		return c.RangeProps
	case SubClasses:
		return c.SubClasses
	case Disjoints:
		return c.Disjoints
	default:
		return nil
	}
}

// Property is a vocabulary property with its declared domains and ranges.
type Property struct {
	Term
	Domains []string
	Ranges  []string
}

// Vocabulary is the extracted model. Classes and Properties preserve
// document order of the defining statements.
type Vocabulary struct {
	Classes    []*Class
	Properties []*Property

	classByName map[string]*Class
	propByName  map[string]*Property
}

// ClassByName returns the class with the given local name, or nil.
func (v *Vocabulary) ClassByName(name string) *Class {
	return v.classByName[name]
}

// PropertyByName returns the property with the given local name, or nil.
func (v *Vocabulary) PropertyByName(name string) *Property {
	return v.propByName[name]
}

// TermNames returns the local names of every class and property, classes
// first, each group in document order. The renderer linkifies these.
func (v *Vocabulary) TermNames() []string {
	names := make([]string, 0, len(v.Classes)+len(v.Properties))
	for _, c := range v.Classes {
		names = append(names, c.Name)
	}
	for _, p := range v.Properties {
		names = append(names, p.Name)
	}
	return names
}
