package vocab

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Load reads an N-Triples file and builds the vocabulary model.
//
// The file is memory-mapped rather than slurped: vocabulary dumps from the
// legacy toolchain bundle every imported schema and run to tens of
// megabytes, and the scanner only needs one sequential pass over the
// bytes. Empty files skip the mapping (mmap of length 0 fails) and report
// ErrEmptyVocab through Parse.
func Load(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat vocabulary: %w", err)
	}
	if info.Size() == 0 {
		return Parse(nil)
	}

	fadviseSequential(int(f.Fd()), 0, info.Size())

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("map vocabulary: %w", err)
	}
	defer m.Unmap()

	v, err := Parse(m)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}
