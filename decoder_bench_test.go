package delimited

import (
	"strconv"
	"testing"
	"time"
)

type benchTrade struct {
	ID       int `csvName:"id"`
	Symbol   string
	Price    float64
	Quantity *int
	Traded   time.Time
}

func benchLines(n int) []string {
	lines := make([]string, 0, n+1)
	lines = append(lines, "id,Symbol,Price,Quantity,Traded")
	for i := 0; i < n; i++ {
		lines = append(lines, strconv.Itoa(i)+",ABC,12.5,100,2023-01-15T12:30:45Z")
	}
	return lines
}

func BenchmarkDecoder_Next(b *testing.B) {
	lines := benchLines(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		decoder, err := NewDecoder[benchTrade](Lines(lines...))
		if err != nil {
			b.Fatal(err)
		}
		for _, err := range decoder.All() {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
