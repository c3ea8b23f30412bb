// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package distribution

import (
	"encoding/binary"
	"hash/maphash"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"
)

type cacheKey = uint64

func hashConstructionArgs(pmf []float64, minSymbol int64) cacheKey {
	d := xxhash.New()
	for _, p := range pmf {
		binary.Write(d, binary.LittleEndian, p)
	}
	binary.Write(d, binary.LittleEndian, minSymbol)
	return d.Sum64()
}

var cacheSeed = maphash.MakeSeed()

func cacheHasher(k cacheKey) uint64 {
	return maphash.Comparable(cacheSeed, k)
}

// CategoricalCache memoizes FromContinuousProbabilities results, keyed by a
// hash of their construction arguments, behind a TinyLFU admission cache —
// avoiding repeat runs of the optimal-weights solver for repeated (pmf,
// minSymbol) pairs. Safe for concurrent use by multiple goroutines.
type CategoricalCache[S Signed, W Word] struct {
	mu    sync.Mutex
	inner *tinylfu.T[cacheKey, *Categorical[S, W]]
}

// NewCategoricalCache creates a cache admitting up to size distinct models,
// sampling the most recent samples accesses to estimate admission frequency.
func NewCategoricalCache[S Signed, W Word](samples, size int) *CategoricalCache[S, W] {
	return &CategoricalCache[S, W]{
		inner: tinylfu.New[cacheKey, *Categorical[S, W]](samples, size, cacheHasher),
	}
}

// Get returns a previously built Categorical for (pmf, minSymbol) if one is
// cached, otherwise builds one via FromContinuousProbabilities, caches it,
// and returns it.
func (c *CategoricalCache[S, W]) Get(pmf []float64, minSymbol S) *Categorical[S, W] {
	key := hashConstructionArgs(pmf, int64(minSymbol))

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.inner.Get(key); ok {
		return v
	}
	v := FromContinuousProbabilities[S, W](pmf, minSymbol)
	c.inner.Add(key, v)
	return v
}
