// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package huffman

import "container/heap"

type item[W weight] struct {
	w   W
	idx int
}

// itemHeap is a min-heap ordered by (weight, index), so that equal weights
// break ties deterministically on the original index.
type itemHeap[W weight] []item[W]

func (h itemHeap[W]) Len() int { return len(h) }

func (h itemHeap[W]) Less(i, j int) bool {
	if h[i].w != h[j].w {
		return h[i].w < h[j].w
	}
	return h[i].idx < h[j].idx
}

func (h itemHeap[W]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[W]) Push(x any) { *h = append(*h, x.(item[W])) }

func (h *itemHeap[W]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// buildMerges runs the greedy Huffman construction over weights, invoking
// merge(i0, i1, next) once per internal node created, in construction
// order, where next (starting at len(weights)) is that node's index.
// Panics if weights is empty.
func buildMerges[W weight](weights []W, merge func(i0, i1, next int)) {
	n := len(weights)
	if n == 0 {
		panic("huffman: no weights given")
	}

	h := make(itemHeap[W], n)
	for i, w := range weights {
		h[i] = item[W]{w: w, idx: i}
	}
	heap.Init(&h)

	next := n
	for h.Len() >= 2 {
		a := heap.Pop(&h).(item[W])
		b := heap.Pop(&h).(item[W])
		merge(a.idx, b.idx, next)
		heap.Push(&h, item[W]{w: a.w + b.w, idx: next})
		next++
	}
}
