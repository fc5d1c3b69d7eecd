package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/wafcore/waf/cooccurrence"
	"github.com/wafcore/waf/sparsematrix"
	"github.com/wafcore/waf/termset"
)

func alwaysCare(termset.Termid) bool { return true }

func runCoOccurrence(args []string) int {
	fs := flag.NewFlagSet("co-occurrence", flag.ContinueOnError)
	input := fs.String("input", "", "termid stream file, one paragraph per line (required)")
	output := fs.String("output", "", "co-occurrence matrix output file (required)")
	window := fs.Int("window", 5, "sliding window width W")
	bucketRows := fs.Int("sr", 16, "bucket-hash row modulus for the co-occurrence matrix")
	bucketCols := fs.Int("sc", 16, "bucket-hash column modulus for the co-occurrence matrix")
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
		fmt.Fprintln(os.Stderr, "co-occurrence: --input and --output are required")
		return -1
	}

	in, err := os.Open(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer in.Close()

	var terms []termset.Termid
	var maxID uint64
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	paragraph := 0
	for sc.Scan() {
		if paragraph > 0 {
			terms = append(terms, termset.DelimTermid)
		}
		for _, field := range strings.Fields(sc.Text()) {
			id, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return -1
			}
			if id > maxID {
				maxID = id
			}
			terms = append(terms, termset.Termid(id))
		}
		paragraph++
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	size := int(maxID) + 1
	var zero cooccurrence.CoEntry
	target, err := sparsematrix.New[cooccurrence.CoEntry](size, size, zero, *bucketRows, *bucketCols)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	if err := cooccurrence.Accumulate(terms, alwaysCare, alwaysCare, *window, target); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	cooccurrence.MeanDistance(target)

	out, err := os.Create(*output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer out.Close()
	if err := cooccurrence.WriteMatrix(out, target); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	logger.Printf("accumulated co-occurrence over %d termids across %d paragraphs", len(terms), paragraph)
	return 0
}
