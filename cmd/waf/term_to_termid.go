package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/wafcore/waf/internal/tokenize"
	"github.com/wafcore/waf/termset"
)

func runTermToTermid(args []string) int {
	fs := flag.NewFlagSet("term-to-termid", flag.ContinueOnError)
	input := fs.String("input", "", "text stream, one paragraph per line (required)")
	termsPath := fs.String("termset", "", "term set file, read if present and rewritten with any new terms (required)")
	output := fs.String("output", "", "termid stream output file (required)")
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

	if *input == "" || *termsPath == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "term-to-termid: --input, --termset and --output are required")
		return -1
	}

	terms := termset.NewSet()
	if f, err := os.Open(*termsPath); err == nil {
		read, err := termset.ReadTermSet(f)
		f.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return -1
		}
		terms = read
	}

	in, err := os.Open(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer in.Close()

	paragraphs, err := tokenize.Paragraphs(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	ids, err := tokenize.AssignTermids(paragraphs, terms)
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
	w := bufio.NewWriter(out)
	for _, row := range ids {
		for i, id := range row {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%d", id)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	tf, err := os.Create(*termsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}
	defer tf.Close()
	if err := termset.WriteTermSet(tf, terms); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return -1
	}

	logger.Printf("tokenized %d paragraphs, %d distinct terms", len(paragraphs), terms.Len())
	return 0
}
