package specdoc

import (
	specerrors "github.com/vocabgen/specdoc/errors"
	"github.com/vocabgen/specdoc/internal/legacyhash"
	"github.com/vocabgen/specdoc/internal/slottable"
)

// Width selects which historical build of the legacy runtime to emulate.
// The two builds hashed strings with the same algorithm shape but
// different native word sizes, so they wrap at different points and
// produce unrelated orderings. There is no default: callers state which
// output they are reproducing.
type Width int

const (
	// Width32 emulates the 32-bit build of the legacy runtime.
	Width32 Width = 32

	// Width64 emulates the 64-bit build of the legacy runtime.
	Width64 Width = 64
)

// String returns "32" or "64", or "invalid" for any other value.
func (w Width) String() string {
	switch w {
	case Width32:
		return "32"
	case Width64:
		return "64"
	default:
		return "invalid"
	}
}

// hashFunc returns the bit-pattern hash for the width, or ErrInvalidWidth.
// Widths other than 32 and 64 are contract violations and are never
// silently defaulted.
func (w Width) hashFunc() (slottable.HashFunc, error) {
	switch w {
	case Width32:
		return legacyhash.Bits32, nil
	case Width64:
		return legacyhash.Bits64, nil
	default:
		return nil, specerrors.ErrInvalidWidth
	}
}

// Reorder returns candidates in the order the legacy generator would have
// emitted them: the physical slot order of its string-hashed container
// after inserting each candidate once, in the given document order.
//
// Duplicates are dropped, first occurrence wins; callers are expected to
// pass deduplicated lists, and the drop is defensive rather than an error.
// Fewer than two distinct candidates come back unchanged (as a fresh
// slice), since ordering is unobservable below that and the table is not
// worth constructing.
//
// The result is always a permutation of the deduplicated input.
func Reorder(candidates []string, w Width) ([]string, error) {
	hash, err := w.hashFunc()
	if err != nil {
		return nil, err
	}

	distinct := dedup(candidates)
	if len(distinct) < 2 {
		return distinct, nil
	}

	table := slottable.New(hash)
	for _, c := range distinct {
		table.Insert(c)
	}
	return table.Keys(), nil
}

// dedup returns a fresh slice with repeats removed, keeping the first
// occurrence of each string.
func dedup(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
