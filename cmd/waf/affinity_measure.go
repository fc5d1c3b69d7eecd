package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/wafcore/waf/affinity"
	"github.com/wafcore/waf/crosslist"
)

func runAffinityMeasure(args []string) int {
	fs := flag.NewFlagSet("affinity-measure", flag.ContinueOnError)
	wafPath := fs.String("waf", "", "WAF matrix file (required)")
	output := fs.String("output", "", "affinity matrix output file (required)")
	precision := fs.Float64("precision", 1e-6, "minimum affinity value to keep, epsilon")
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

	if *wafPath == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "affinity-measure: --waf and --output are required")
		return -1
	}

	wafFile, err := os.Open(*wafPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer wafFile.Close()

	waf := crosslist.New[float64](0, 0, 0)
	if err := waf.ReadFrom(bufio.NewReader(wafFile)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	aff, err := affinity.Compute(waf, alwaysCare, *precision)
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
	if err := aff.WriteTo(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	logger.Printf("computed affinity matrix: %d entries", aff.Size())
	return 0
}
