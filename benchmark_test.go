package specdoc

import (
	"fmt"
	"testing"
)

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("term-%d", i)
	}
	return keys
}

func BenchmarkReorder(b *testing.B) {
	for _, n := range []int{4, 32, 256, 4096} {
		keys := benchKeys(n)
		for _, w := range []Width{Width32, Width64} {
			b.Run(fmt.Sprintf("n=%d/width=%s", n, w), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := Reorder(keys, w); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkOrderMemoHit(b *testing.B) {
	m := orderMemo{entries: make(map[uint64][]string)}
	keys := benchKeys(64)
	if _, err := m.reorder(keys, Width64); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.reorder(keys, Width64); err != nil {
			b.Fatal(err)
		}
	}
}
