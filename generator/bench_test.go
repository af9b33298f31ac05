package generator_test

import (
	"testing"

	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
)

// BenchmarkGenerate runs every algorithm on a 101×101 grid.
func BenchmarkGenerate(b *testing.B) {
	size := grid.Size{Width: 101, Height: 101}
	for _, a := range generator.Algorithms() {
		b.Run(a.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = generator.Generate(a, size, int64(i))
			}
		})
	}
}
