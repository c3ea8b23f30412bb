// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package distribution

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// OptimalWeights turns a probability mass function into a fixed-point
// weight vector of the same length: every weight is at least 1, the
// weights sum to exactly TOTAL (2^B, represented by the wraparound
// sentinel), and the vector minimizes cross-entropy to pmf subject to those
// two constraints. Panics on an empty or all-zero pmf, or one longer than
// TOTAL.
func OptimalWeights[W Word](pmf []float64) []W {
	n := len(pmf)
	if n == 0 {
		panic("distribution: OptimalWeights given empty pmf")
	}
	total := uint64(1) << bits[W]()
	if uint64(n) > total {
		panic("distribution: OptimalWeights given more symbols than TOTAL")
	}
	sum := floats.Sum(pmf)
	if sum <= 0 {
		panic("distribution: OptimalWeights given an all-zero pmf")
	}
	if n == 1 {
		return []W{0} // full mass, represented by the wrap sentinel
	}

	freeWeight := total - uint64(n)
	weights := make([]uint64, n)
	remaining := freeWeight
	for i, p := range pmf {
		share := uint64(math.Floor(p / sum * float64(freeWeight)))
		weights[i] = share + 1
		remaining -= share
	}

	win := make([]float64, n)
	loss := make([]float64, n)
	recompute := func(i int) {
		w := weights[i]
		win[i] = pmf[i] * math.Log1p(1/float64(w))
		if w == 1 {
			loss[i] = math.Inf(1)
		} else {
			loss[i] = -pmf[i] * math.Log1p(-1/float64(w))
		}
	}
	for i := range pmf {
		recompute(i)
	}

	// Phase 2: distribute the leftover weight, largest win first, ties
	// broken by ascending original index.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for remaining > 0 {
		sort.SliceStable(order, func(a, b int) bool {
			return win[order[a]] > win[order[b]]
		})
		batch := remaining
		if batch > uint64(n) {
			batch = uint64(n)
		}
		for k := uint64(0); k < batch; k++ {
			i := order[k]
			weights[i]++
			recompute(i)
		}
		remaining -= batch
	}

	// Phase 3: buyer/seller local improvement. buyer is the symbol that
	// gains the most cross-entropy per unit weight added; seller is the
	// symbol that loses the least per unit weight removed. Transfer one
	// unit at a time until no such beneficial transfer remains. Ties break
	// asymmetrically, matching the ground truth's max_by/min_by semantics:
	// buyer keeps the last maximal index, seller keeps the first minimal
	// index.
	for {
		buyer, seller := 0, 0
		for i := 1; i < n; i++ {
			if win[i] >= win[buyer] {
				buyer = i
			}
			if loss[i] < loss[seller] {
				seller = i
			}
		}
		if buyer == seller || win[buyer] <= loss[seller] {
			break
		}
		weights[seller]--
		weights[buyer]++
		recompute(seller)
		recompute(buyer)
	}

	out := make([]W, n)
	for i, w := range weights {
		out[i] = W(w)
	}
	return out
}
