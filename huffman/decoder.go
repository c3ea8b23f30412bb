// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package huffman

import "math"

// DecoderHuffmanTree is the decoder-side representation of a Huffman
// codebook: n-1 pairs of child indices, with the root the last entry.
type DecoderHuffmanTree struct {
	nodes [][2]int
	n     int
}

// DecoderHuffmanTreeFromProbabilities builds a decoder tree from symbol
// weights via the standard greedy construction. Panics on empty input or
// more symbols than this representation's node indices can address.
func DecoderHuffmanTreeFromProbabilities[W weight](weights []W) *DecoderHuffmanTree {
	n := len(weights)
	if n == 0 {
		panic("huffman: no weights given")
	}
	if n > math.MaxInt/2 {
		panic("huffman: too many symbols")
	}

	nodes := make([][2]int, 0, n-1)
	buildMerges(weights, func(i0, i1, next int) {
		nodes = append(nodes, [2]int{i0, i1})
	})
	return &DecoderHuffmanTree{nodes: nodes, n: n}
}

// DecoderHuffmanTreeFromFloatProbabilities is like
// DecoderHuffmanTreeFromProbabilities but rejects NaN weights up front.
func DecoderHuffmanTreeFromFloatProbabilities(weights []float64) (*DecoderHuffmanTree, error) {
	for _, w := range weights {
		if w != w { // NaN
			return nil, ErrNaNProbability
		}
	}
	return DecoderHuffmanTreeFromProbabilities(weights), nil
}

// NumSymbols returns the size of the tree's alphabet.
func (t *DecoderHuffmanTree) NumSymbols() int { return t.n }

// BitSource supplies bits to DecodeSymbol one at a time. *Codeword
// satisfies this directly, so encoder output can be decoded without an
// adapter.
type BitSource interface {
	Next() (bit bool, ok bool)
}

// DecodeSymbol walks source's bits from the root to a leaf, returning the
// decoded symbol index.
func (t *DecoderHuffmanTree) DecodeSymbol(source BitSource) (int, error) {
	idx := 2 * len(t.nodes)
	for idx >= t.n {
		bit, ok := source.Next()
		if !ok {
			return 0, ErrOutOfCompressedData
		}
		pair := t.nodes[idx-t.n]
		if bit {
			idx = pair[1]
		} else {
			idx = pair[0]
		}
	}
	return idx, nil
}
