// Copyright (c) Elliot Nunn
// Licensed under the MIT license

// Command probcheck builds probability models from weight histograms or a
// continuous distribution and prints a diagnostic table of the resulting
// per-symbol cumulative and probability. The histogram subcommand's table
// also lists each symbol's Huffman codeword.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/elliotnunn/probcore/distribution"
	"github.com/elliotnunn/probcore/huffman"
)

func main() {
	app := &cli.App{
		Name:  "probcheck",
		Usage: "inspect probability models built by the probcore distribution and huffman packages",
		Commands: []*cli.Command{
			histogramCommand(),
			normalCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func histogramCommand() *cli.Command {
	return &cli.Command{
		Name:  "histogram",
		Usage: "build a Categorical model from weight-histogram files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "weights", Required: true, Usage: "glob pattern matching histogram files"},
			&cli.IntFlag{Name: "min-symbol", Value: 0},
		},
		Action: func(c *cli.Context) error {
			matches, err := doublestar.FilepathGlob(c.String("weights"))
			if err != nil {
				return fmt.Errorf("globbing %q: %w", c.String("weights"), err)
			}
			if len(matches) == 0 {
				return fmt.Errorf("no files matched %q", c.String("weights"))
			}

			for _, path := range matches {
				pmf, err := readHistogram(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				log.Printf("%s: %d symbols", path, len(pmf))

				minSymbol := int32(c.Int("min-symbol"))
				dist := distribution.FromContinuousProbabilities[int32, uint32](pmf, minSymbol)
				enc := huffman.EncoderHuffmanTreeFromProbabilities(weightsFromCategorical(dist, minSymbol, len(pmf)))
				printTable(path, dist, enc, minSymbol, len(pmf))
			}
			return nil
		},
	}
}

func normalCommand() *cli.Command {
	return &cli.Command{
		Name:  "normal",
		Usage: "quantize a Gaussian onto an integer domain and print its model",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "mean", Value: 0},
			&cli.Float64Flag{Name: "std", Value: 1},
			&cli.IntFlag{Name: "lo", Value: -127},
			&cli.IntFlag{Name: "hi", Value: 127},
		},
		Action: func(c *cli.Context) error {
			lo, hi := int32(c.Int("lo")), int32(c.Int("hi"))
			quantizer := distribution.NewLeakyQuantizer[int32, uint32](lo, hi)
			dist := quantizer.Quantize(distuv.Normal{Mu: c.Float64("mean"), Sigma: c.Float64("std")})

			tw := table.NewWriter()
			tw.AppendHeader(table.Row{"symbol", "cumulative", "probability"})
			var total uint64
			for s := lo; s <= hi; s++ {
				cum, prob, err := dist.LeftCumulativeAndProbability(s)
				if err != nil {
					return err
				}
				total += uint64(prob)
				tw.AppendRow(table.Row{s, cum, prob})
			}
			tw.AppendFooter(table.Row{"", "total", total})
			fmt.Println(tw.Render())
			return nil
		},
	}
}

func readHistogram(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pmf []float64
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
		if err != nil {
			return nil, err
		}
		pmf = append(pmf, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pmf, nil
}

// weightsFromCategorical re-derives the fixed-point weight vector from a
// built Categorical, so the same symbol weights drive both the cumulative
// table and the Huffman codebook.
func weightsFromCategorical(dist *distribution.Categorical[int32, uint32], minSymbol int32, n int) []uint32 {
	weights := make([]uint32, n)
	for i := 0; i < n; i++ {
		_, prob, err := dist.LeftCumulativeAndProbability(minSymbol + int32(i))
		if err != nil {
			panic(err)
		}
		weights[i] = prob
	}
	return weights
}

func printTable(path string, dist *distribution.Categorical[int32, uint32], enc *huffman.EncoderHuffmanTree, minSymbol int32, n int) {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"symbol", "cumulative", "probability", "codeword"})
	for i := 0; i < n; i++ {
		cum, prob, err := dist.LeftCumulativeAndProbability(minSymbol + int32(i))
		if err != nil {
			log.Fatal(err)
		}
		cw, err := enc.EncodeSymbol(i)
		if err != nil {
			log.Fatal(err)
		}
		tw.AppendRow(table.Row{minSymbol + int32(i), cum, prob, cw.String()})
	}
	fmt.Printf("%s:\n%s\n", path, tw.Render())
}
