package merge

import (
	"container/heap"
	"fmt"
	"io"
	"strconv"

	"github.com/andreyflyagin/wordcounter/internal/wcerrors"
)

// Global merges reduced buckets, each sorted with ByFrequency, and writes one
// "<word> <count>\n" line per entry to w in ByFrequency order. Each line is
// passed to w with its own Write call as soon as it is merged. It returns the
// number of lines w fully accepted. The first failed write stops the merge
// and is returned wrapped in ErrWrite; lines already written are left in place.
func Global(buckets [][]WordCount, w io.Writer) (int, error) {
	h := make(freqHeap, 0, len(buckets))
	for _, b := range buckets {
		if len(b) > 0 {
			h = append(h, &cursor{seq: b})
		}
	}
	heap.Init(&h)

	var line []byte
	written := 0
	for h.Len() > 0 {
		c := h[0]
		wc := c.head()

		line = append(line[:0], wc.Word...)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(wc.Count), 10)
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return written, fmt.Errorf("%w: %w", wcerrors.ErrWrite, err)
		}
		written++

		if c.advance() {
			heap.Fix(&h, 0)
		} else {
			heap.Pop(&h)
		}
	}

	return written, nil
}
