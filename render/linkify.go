package render

import "strings"

// Linkifier rewrites mentions of known term names inside documentation
// prose into page-local anchors. Matching is longest-name-first so that
// "FundingModel" is not captured by a shorter term like "Fund", and the
// single-pass replacer never rescans text it has already emitted, so an
// inserted anchor cannot be linkified again.
//
// A nil Linkifier applies nothing, keeping callers free of nil checks.
type Linkifier struct {
	replacer *strings.Replacer
}

// NewLinkifier builds a Linkifier over the given term names. Empty names
// are ignored.
func NewLinkifier(names []string) *Linkifier {
	sorted := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			sorted = append(sorted, n)
		}
	}
	// Insertion sort by descending length; stable for equal lengths so
	// document order breaks ties the way the old generator did.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && len(sorted[j]) > len(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	pairs := make([]string, 0, 2*len(sorted))
	for _, n := range sorted {
		pairs = append(pairs, n, anchor(n))
	}
	return &Linkifier{replacer: strings.NewReplacer(pairs...)}
}

// Apply rewrites term mentions in text. Unknown text passes through
// unchanged.
func (l *Linkifier) Apply(text string) string {
	if l == nil || l.replacer == nil {
		return text
	}
	return l.replacer.Replace(text)
}
