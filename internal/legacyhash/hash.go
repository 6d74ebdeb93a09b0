// Package legacyhash reimplements, bit for bit, the string hash of the
// decommissioned generator's runtime. Two historical variants exist: builds
// of that runtime used either a 32-bit or a 64-bit native word, and the
// wraparound points of the multiply differ between them, so the variants do
// not agree on most inputs. Callers pick whichever variant the output they
// are reproducing was generated with.
//
// The algorithm, for a non-empty string s of length n with byte values c:
//
//	x = c[0] << 7
//	for each i in [0, n): x = x*1000003 ^ c[i]
//	x ^= n
//	if x == -1: x = -2
//
// with every step wrapping in the active word width. The empty string
// hashes to 0. The -1 result is remapped to -2 because the emulated
// container reserved -1 as its "hash not yet computed" marker.
//
// Strings are hashed as their raw bytes. The legacy runtime hashed 8-bit
// strings; vocabulary identifiers are ASCII in practice, and non-ASCII
// input is hashed byte-wise without any decoding pass.
package legacyhash

// multiplier is the prime the legacy runtime folded each byte with.
const multiplier = 1000003

// Hash32 returns the 32-bit variant of the legacy string hash.
func Hash32(s string) int32 {
	if len(s) == 0 {
		return 0
	}
	x := uint32(s[0]) << 7
	for i := 0; i < len(s); i++ {
		x = x*multiplier ^ uint32(s[i])
	}
	x ^= uint32(len(s))
	h := int32(x)
	if h == -1 {
		h = -2
	}
	return h
}

// Hash64 returns the 64-bit variant of the legacy string hash.
func Hash64(s string) int64 {
	if len(s) == 0 {
		return 0
	}
	x := uint64(s[0]) << 7
	for i := 0; i < len(s); i++ {
		x = x*multiplier ^ uint64(s[i])
	}
	x ^= uint64(len(s))
	h := int64(x)
	if h == -1 {
		h = -2
	}
	return h
}

// Bits32 returns the 32-bit hash of s as its unsigned bit pattern,
// zero-extended to 64 bits. This is the form the slot prober consumes:
// masking and right-shifting a zero-extended pattern behaves identically
// to doing the same arithmetic in the narrow width.
func Bits32(s string) uint64 {
	return uint64(uint32(Hash32(s)))
}

// Bits64 returns the 64-bit hash of s as its unsigned bit pattern.
func Bits64(s string) uint64 {
	return uint64(Hash64(s))
}
