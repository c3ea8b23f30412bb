// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package distribution

import "errors"

// ErrNotInDomain is returned by QuantizedDistribution's
// LeftCumulativeAndProbability when the given symbol falls outside the
// quantizer's domain. Categorical panics on an out-of-range symbol instead.
var ErrNotInDomain = errors.New("distribution: symbol not in domain")
