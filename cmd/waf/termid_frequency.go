package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wafcore/waf/termset"
)

func runTermidFrequency(args []string) int {
	fs := flag.NewFlagSet("termid-frequency", flag.ContinueOnError)
	input := fs.String("input", "", "termid stream file (required)")
	output := fs.String("output", "", "frequency-vector output file (required)")
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

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "termid-frequency: --input and --output are required")
		return -1
	}

	in, err := os.Open(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer in.Close()

	freq := termset.NewFrequencies()
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	count := 0
	for sc.Scan() {
		for _, field := range strings.Fields(sc.Text()) {
			id, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return -1
			}
			freq.Add(termset.Termid(id), 1)
			count++
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	out, err := os.Create(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer out.Close()
	if err := termset.WriteFrequencies(out, freq); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	logger.Printf("accumulated frequencies over %d termid occurrences", count)
	return 0
}
