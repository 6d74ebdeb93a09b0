// Orderbench measures hash-order emulation throughput and sanity-checks
// the permutation property on synthetic term sets far larger than any real
// vocabulary.
//
// Usage:
//
//	go run ./cmd/orderbench -keys 100000 -width 64 -iters 5
//
// Flags:
//
//	-keys   Number of synthetic identifiers per run (default: 100,000)
//	-width  Legacy hash width, 32 or 64 (default: 64)
//	-iters  Timed repetitions (default: 5)
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"runtime"
	"syscall"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/vocabgen/specdoc"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024 // Convert KB to bytes on Linux
	}
	return maxRSS
}

// syntheticKeys builds n distinct identifier-shaped strings. Murmur3 over
// the counter gives deterministic, well-spread names so runs compare
// across machines.
func syntheticKeys(n int) []string {
	keys := make([]string, n)
	var buf [8]byte
	seed := uint32(0x1234)
	for i := range keys {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		h1, h2 := murmur3.Sum128WithSeed(buf[:], seed)
		keys[i] = fmt.Sprintf("term_%016x%016x", h1, h2)
	}
	return keys
}

func main() {
	keysFlag := flag.Int("keys", 100_000, "number of synthetic identifiers")
	widthFlag := flag.Int("width", 64, "legacy hash width (32 or 64)")
	itersFlag := flag.Int("iters", 5, "timed repetitions")
	flag.Parse()

	width := specdoc.Width(*widthFlag)
	numKeys := *keysFlag

	fmt.Printf("Generating %d synthetic identifiers...\n", numKeys)
	keys := syntheticKeys(numKeys)

	var best time.Duration
	for i := 0; i < *itersFlag; i++ {
		start := time.Now()
		ordered, err := specdoc.Reorder(keys, width)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("reorder failed: %v\n", err)
			os.Exit(1)
		}
		if len(ordered) != numKeys {
			fmt.Printf("permutation violated: %d in, %d out\n", numKeys, len(ordered))
			os.Exit(1)
		}
		if best == 0 || elapsed < best {
			best = elapsed
		}
		fmt.Printf("iter %d: %v (%.0f keys/sec)\n",
			i, elapsed, float64(numKeys)/elapsed.Seconds())
	}

	seen := make(map[string]bool, numKeys)
	ordered, _ := specdoc.Reorder(keys, width)
	for _, k := range ordered {
		if seen[k] {
			fmt.Printf("permutation violated: duplicate %q\n", k)
			os.Exit(1)
		}
		seen[k] = true
	}
	for _, k := range keys {
		if !seen[k] {
			fmt.Printf("permutation violated: missing %q\n", k)
			os.Exit(1)
		}
	}

	fmt.Printf("\nbest: %v (%.0f keys/sec), width %s, peak RSS %d MiB\n",
		best, float64(numKeys)/best.Seconds(), width, getMaxRSS()/(1<<20))
}
