package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/wafcore/waf/activation"
	"github.com/wafcore/waf/cooccurrence"
	"github.com/wafcore/waf/sparsematrix"
	"github.com/wafcore/waf/termset"
)

func runWordActivationForce(args []string) int {
	fs := flag.NewFlagSet("word-activation-force", flag.ContinueOnError)
	coPath := fs.String("co-occurrence", "", "co-occurrence matrix file (required)")
	freqPath := fs.String("frequency", "", "frequency-vector file (required)")
	output := fs.String("output", "", "WAF matrix output file (required)")
	precision := fs.Float64("precision", 1e-6, "minimum WAF value to keep, epsilon")
	bucketRows := fs.Int("sr", 16, "bucket-hash row modulus used when reading the co-occurrence matrix")
	bucketCols := fs.Int("sc", 16, "bucket-hash column modulus used when reading the co-occurrence matrix")
	logPath := fs.String("log", "", "redirect log output to this file")
	if err := fs.Parse(args); err != nil {
		return -1
	}
	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer closeLog()

	if *coPath == "" || *freqPath == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "word-activation-force: --co-occurrence, --frequency and --output are required")
		return -1
	}

	coFile, err := os.Open(*coPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer coFile.Close()

	var zero cooccurrence.CoEntry
	co, err := sparsematrix.New[cooccurrence.CoEntry](0, 0, zero, *bucketRows, *bucketCols)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	if err := cooccurrence.ReadMatrix(bufio.NewReader(coFile), co); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	freqFile, err := os.Open(*freqPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	freq, err := termset.ReadFrequencies(freqFile)
	freqFile.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	waf, err := activation.Compute(co, freq, alwaysCare, *precision)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	out, err := os.Create(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer out.Close()
	if err := waf.WriteTo(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	logger.Printf("computed WAF matrix: %d edges", waf.Size())
	return 0
}
