package partition

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		n        int
		expected []Range
	}{
		{
			name:     "empty input",
			data:     "",
			n:        4,
			expected: []Range{{0, 0}},
		},
		{
			name:     "single worker takes everything",
			data:     "hello world",
			n:        1,
			expected: []Range{{0, 11}},
		},
		{
			name:     "boundary on separator",
			data:     "abc def",
			n:        2,
			expected: []Range{{0, 3}, {4, 7}},
		},
		{
			name:     "boundary inside word is extended",
			data:     "ab cd ef",
			n:        2,
			expected: []Range{{0, 5}, {6, 8}},
		},
		{
			name:     "extension absorbs most of the next chunk",
			data:     "abcdef gh",
			n:        3,
			expected: []Range{{0, 6}, {7, 9}},
		},
		{
			name:     "more workers than bytes",
			data:     "a b",
			n:        5,
			expected: []Range{{0, 1}, {2, 3}},
		},
		{
			name:     "one long word",
			data:     "abcdefgh",
			n:        4,
			expected: []Range{{0, 8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split([]byte(tt.data), tt.n)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Split(%q, %d) = %v, want %v", tt.data, tt.n, got, tt.expected)
			}
		})
	}
}

// TestSplitBoundaries checks, over random inputs, that ranges never cut a word
// and that the only bytes left out are the separators at range ends.
func TestSplitBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []byte("abcXYZ .,1\n")

	for iter := 0; iter < 500; iter++ {
		data := make([]byte, rng.Intn(200))
		for i := range data {
			data[i] = alphabet[rng.Intn(len(alphabet))]
		}
		n := 1 + rng.Intn(16)

		ranges := Split(data, n)
		if len(ranges) == 0 || len(ranges) > n {
			t.Fatalf("Split(%q, %d) returned %d ranges", data, n, len(ranges))
		}

		next := 0
		for i, r := range ranges {
			if r.Start != next {
				t.Fatalf("Split(%q, %d): range %d starts at %d, want %d", data, n, i, r.Start, next)
			}
			if r.End < r.Start || r.End > len(data) {
				t.Fatalf("Split(%q, %d): range %d = %v out of bounds", data, n, i, r)
			}
			if r.End < len(data) && IsAlpha(data[r.End]) {
				t.Fatalf("Split(%q, %d): range %d ends on letter %q", data, n, i, data[r.End])
			}
			if r.Start > 0 && IsAlpha(data[r.Start-1]) && r.Start < len(data) && IsAlpha(data[r.Start]) {
				t.Fatalf("Split(%q, %d): range %d starts inside a word", data, n, i)
			}
			next = r.End + 1
		}
		if last := ranges[len(ranges)-1]; last.End != len(data) {
			t.Fatalf("Split(%q, %d): last range ends at %d, want %d", data, n, last.End, len(data))
		}
	}
}

func TestIsAlpha(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
		if got := IsAlpha(byte(b)); got != want {
			t.Errorf("IsAlpha(%#x) = %v, want %v", b, got, want)
		}
	}
	if got := ToLower('Q'); got != 'q' {
		t.Errorf("ToLower('Q') = %q, want 'q'", got)
	}
	if got := ToLower('7'); got != '7' {
		t.Errorf("ToLower('7') = %q, want '7'", got)
	}
}
