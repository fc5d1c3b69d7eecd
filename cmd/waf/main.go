// Command waf is the shell façade over the WAF analytics core: a
// subcommand dispatch table mirroring the original's func_table in
// main.cpp/waf_shell.cpp, kept a thin boundary over the analytic
// packages rather than a reimplementation of them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(-1)
	}

	funcTable := map[string]func([]string) int{
		"term-to-termid":        runTermToTermid,
		"termid-frequency":      runTermidFrequency,
		"co-occurrence":         runCoOccurrence,
		"word-activation-force": runWordActivationForce,
		"affinity-measure":      runAffinityMeasure,
		"analyze-matrix":        runAnalyzeMatrix,
		"filter-termset":        runFilterTermset,
		"help":                  runHelp,
	}

	cmd, ok := funcTable[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "try 'waf help' for more information.")
		os.Exit(-1)
	}

	os.Exit(cmd(os.Args[2:]))
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: waf <command> <command-options>")
	fmt.Fprintln(os.Stderr, "try 'waf help' for more information.")
}
