package main

import "fmt"

func runHelp(args []string) int {
	fmt.Println(`waf - Word Activation Force analytics core

usage: waf <command> <command-options>

commands:
  term-to-termid         tokenize a text stream into a termid stream
  termid-frequency       accumulate a frequency vector from a termid stream
  co-occurrence          accumulate a windowed co-occurrence matrix
  word-activation-force  compute the WAF matrix from co-occurrence + frequency
  affinity-measure       compute the symmetric affinity matrix from a WAF matrix
  analyze-matrix         report dimensions, entry count and a spectral-radius estimate
  filter-termset         filter a term set by frequency bounds
  help                   show this message

Every command takes --key value options; a --log <path> option redirects
log output, absent --log silences informational logs.`)
	return 0
}
