// Copyright (c) Elliot Nunn
// Licensed under the MIT license

// Package huffman builds canonical Huffman codebooks — encoder and decoder
// tree representations — from symbol weights, for use by a Huffman-based
// entropy coding front-end.
package huffman

import "errors"

// ErrNaNProbability is returned by the *FromFloatProbabilities constructors
// when given a NaN input.
var ErrNaNProbability = errors.New("huffman: probability is NaN")

// ErrImpossibleSymbol is returned by EncodeSymbol for a symbol index outside
// the tree's alphabet.
var ErrImpossibleSymbol = errors.New("huffman: impossible symbol")

// ErrOutOfCompressedData is returned by DecodeSymbol when the bit source is
// exhausted mid-codeword.
var ErrOutOfCompressedData = errors.New("huffman: out of compressed data")

// weight is the set of types a Huffman tree may be built from.
type weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
