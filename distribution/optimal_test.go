// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package distribution

import (
	"sort"
	"testing"
)

var trivialHist = []uint32{
	56319, 134860032, 47755520, 60775168, 75699200, 92529920, 111023616, 130420736,
	150257408, 169970176, 188869632, 424260864, 229548800, 236082432, 238252287, 234666240,
	1, 1, 227725568, 216746240, 202127104, 185095936, 166533632, 146508800, 126643712,
	107187968, 88985600, 72576000, 57896448, 45617664, 34893056, 26408448, 19666688,
	14218240, 10050048, 7164928, 13892864,
}

var nontrivialHist = []uint32{
	1, 186545, 237403, 295700, 361445, 433686, 509456, 586943, 663946, 737772, 1657269,
	896675, 922197, 930672, 916665, 0, 0, 0, 0, 0, 723031, 650522, 572300, 494702, 418703,
	347600, 1, 283500, 226158, 178194, 136301, 103158, 76823, 55540, 39258, 27988, 54269,
}

// TestOptimalWeightsTrivial checks that feeding the solver an
// already-quantized distribution (summing to exactly 2^32) reproduces it
// bit-for-bit.
func TestOptimalWeightsTrivial(t *testing.T) {
	var sum uint64
	pmf := make([]float64, len(trivialHist))
	for i, h := range trivialHist {
		sum += uint64(h)
		pmf[i] = float64(h)
	}
	if sum != 1<<32 {
		t.Fatalf("fixture does not sum to 2^32: got %d", sum)
	}

	weights := OptimalWeights[uint32](pmf)
	if len(weights) != len(trivialHist) {
		t.Fatalf("got %d weights, want %d", len(weights), len(trivialHist))
	}
	for i, w := range weights {
		if w != trivialHist[i] {
			t.Fatalf("weight %d: got %d, want %d", i, w, trivialHist[i])
		}
	}
}

func TestOptimalWeightsNontrivial(t *testing.T) {
	var sum uint64
	pmf := make([]float64, len(nontrivialHist))
	for i, h := range nontrivialHist {
		sum += uint64(h)
		pmf[i] = float64(h)
	}
	if sum == 1<<32 {
		t.Fatalf("fixture unexpectedly sums to 2^32")
	}

	weights := OptimalWeights[uint32](pmf)
	if len(weights) != len(nontrivialHist) {
		t.Fatalf("got %d weights, want %d", len(weights), len(nontrivialHist))
	}

	var total uint64
	for i, w := range weights {
		if w == 0 {
			t.Fatalf("weight %d is zero", i)
		}
		total += uint64(w)
	}
	if total != 1<<32 {
		t.Fatalf("weights sum to %d, want 2^32", total)
	}

	type pair struct{ w, hist uint32 }
	pairs := make([]pair, len(weights))
	for i := range weights {
		pairs[i] = pair{weights[i], nontrivialHist[i]}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].w < pairs[j].w })
	var last uint32
	for _, p := range pairs {
		if p.hist < last {
			t.Fatalf("sorting by weight is not compatible with sorting by hist: %d < %d", p.hist, last)
		}
		last = p.hist
	}
}
