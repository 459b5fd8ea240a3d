// Package partition splits an input buffer into word-aligned byte ranges,
// one per map task.
package partition

// Range is the half-open byte range [Start, End) scanned by one map task.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes in r.
func (r Range) Len() int { return r.End - r.Start }

// IsAlpha reports whether b is an ASCII letter. Everything else separates words.
func IsAlpha(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// ToLower folds an ASCII upper-case letter to lower case.
func ToLower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Split divides data into at most n contiguous ranges of roughly len(data)/n
// bytes each. A proposed end that falls inside a run of letters is pushed
// forward past the run, so the byte at every End is either a separator or
// the end of data. The next range starts one byte after it.
//
// Together with the skipped separators the ranges cover all of data.
// Fewer than n ranges are returned when data runs out first, which happens
// whenever n exceeds len(data) or long words absorb later chunks.
// n must be at least 1.
func Split(data []byte, n int) []Range {
	size := len(data)
	chunk := size / n

	ranges := make([]Range, 0, n)
	for start := 0; len(ranges) < n && start <= size; {
		end := min(size, start+chunk)
		for end < size && IsAlpha(data[end]) {
			end++
		}
		ranges = append(ranges, Range{Start: start, End: end})
		start = end + 1
	}
	return ranges
}
