// Package tokenize is a deliberately small stand-in for the out-of-scope
// Aho-Corasick tokenizer: it satisfies exactly the surface contract relied
// on downstream — given a byte stream and a term set, yield a sequence of
// term identifiers with sentinel separators — and nothing more.
package tokenize

import (
	"bufio"
	"io"
	"unicode"

	"github.com/wafcore/waf/termset"
)

// Words splits s on runs of characters that are neither letters nor
// digits, lower-casing each token.
func Words(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cur = append(cur, unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()
	return words
}

// Paragraphs reads r line by line, one paragraph per line, splitting each
// line into words.
func Paragraphs(r io.Reader) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	var paragraphs [][]string
	for sc.Scan() {
		paragraphs = append(paragraphs, Words(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return paragraphs, nil
}

// AssignTermids maps every word in paragraphs to a termid, inserting new
// bindings into terms as unseen words are encountered. The next unused
// id is found the way the original's avail_termid helper does: scanning
// upward from the last id handed out.
func AssignTermids(paragraphs [][]string, terms *termset.Set) ([][]termset.Termid, error) {
	var next termset.Termid
	ids := make([][]termset.Termid, len(paragraphs))
	for i, words := range paragraphs {
		row := make([]termset.Termid, len(words))
		for j, w := range words {
			id, ok := terms.ID(w)
			if !ok {
				for terms.Has(next) {
					next++
				}
				id = next
				if err := terms.Insert(id, w); err != nil {
					return nil, err
				}
				next++
			}
			row[j] = id
		}
		ids[i] = row
	}
	return ids, nil
}

// Flatten inserts termset.DelimTermid between (not after) each paragraph,
// producing the single termid stream the co-occurrence engine consumes.
func Flatten(paragraphs [][]termset.Termid) []termset.Termid {
	var out []termset.Termid
	for i, row := range paragraphs {
		if i > 0 {
			out = append(out, termset.DelimTermid)
		}
		out = append(out, row...)
	}
	return out
}
