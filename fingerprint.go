package specdoc

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns the xxHash3-128 of a rendered page, little-endian
// low half first. Golden tests pin fingerprints of whole pages instead of
// embedding multi-kilobyte HTML literals; any byte drift from the captured
// legacy output changes the fingerprint.
func Fingerprint(page []byte) [16]byte {
	h := xxh3.Hash128(page)
	var out [16]byte
	binary.LittleEndian.PutUint64(out[0:8], h.Lo)
	binary.LittleEndian.PutUint64(out[8:16], h.Hi)
	return out
}
