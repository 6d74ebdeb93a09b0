package specdoc

import (
	"fmt"
	"os"

	"github.com/sugawarayuuta/sonnet"
)

// Manifest maps each generated filename to the xxhash64 of its bytes.
// Compatibility runs compare manifests instead of shipping the captured
// legacy tree around.
type Manifest map[string]uint64

// write stores the manifest as JSON. Object keys marshal in sorted order,
// so manifests of identical trees are themselves byte-identical.
func (m Manifest) write(path string) error {
	data, err := sonnet.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// LoadManifest reads a manifest written by Generate (or captured from a
// legacy tree by cmd/specdoc's -manifest mode).
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := sonnet.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}

// Diff compares two manifests and returns the filenames whose checksums
// differ or that are present on only one side, sorted lexically by the
// caller if needed (map iteration order is not normalized here).
func (m Manifest) Diff(other Manifest) []string {
	var diffs []string
	for name, sum := range m {
		if otherSum, ok := other[name]; !ok || otherSum != sum {
			diffs = append(diffs, name)
		}
	}
	for name := range other {
		if _, ok := m[name]; !ok {
			diffs = append(diffs, name)
		}
	}
	return diffs
}
