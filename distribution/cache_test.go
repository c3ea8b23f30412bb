// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package distribution

import "testing"

func TestCategoricalCacheReusesResult(t *testing.T) {
	pmf := make([]float64, len(nontrivialHist))
	for i, h := range nontrivialHist {
		pmf[i] = float64(h)
	}

	cache := NewCategoricalCache[int32, uint32](64, 16)
	first := cache.Get(pmf, -127)
	second := cache.Get(pmf, -127)

	if first != second {
		t.Fatalf("expected cache hit to return the same *Categorical, got distinct pointers")
	}

	other := cache.Get(pmf, -90)
	if other == first {
		t.Fatalf("distinct minSymbol should not hit the same cache entry")
	}
}
