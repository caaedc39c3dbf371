package ngramidx

import "github.com/hupe1980/ngramidx/vector"

// FindTopK runs Find and returns the k highest-scoring matches in descending
// score order. k < 1 returns nil.
//
// Memory is bounded by k regardless of how many entries match.
func (i *Index[T]) FindTopK(q vector.Vector, k int) []Match[T] {
	if k < 1 {
		return nil
	}

	h := make(matchHeap[T], 0, k)

	for m := range i.Find(q) {
		if len(h) < k {
			h.push(m)
		} else if m.Score > h[0].Score {
			h[0] = m
			h.down(0, len(h))
		}
	}

	matches := make([]Match[T], len(h))
	for j := len(h) - 1; j >= 0; j-- {
		matches[j] = h.pop()
	}

	return matches
}

// matchHeap is a min-heap of matches, specialized to avoid interface boxing.
type matchHeap[T any] []Match[T]

func (h *matchHeap[T]) push(m Match[T]) {
	*h = append(*h, m)
	h.up(len(*h) - 1)
}

func (h *matchHeap[T]) pop() Match[T] {
	old := *h
	n := len(old) - 1
	root := old[0]
	old[0] = old[n]
	*h = old[:n]
	h.down(0, len(*h))
	return root
}

func (h matchHeap[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || h[j].Score >= h[i].Score {
			break
		}
		h[i], h[j] = h[j], h[i]
		j = i
	}
}

func (h matchHeap[T]) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h[j2].Score < h[j1].Score {
			j = j2
		}
		if h[j].Score >= h[i].Score {
			break
		}
		h[i], h[j] = h[j], h[i]
		i = j
	}
}
