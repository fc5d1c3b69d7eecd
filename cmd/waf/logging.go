package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

// newLogger builds the *log.Logger every subcommand reports progress
// through: absent --log, informational logs are silenced (spec §6);
// --log <path> redirects them to that file.
func newLogger(logPath string) (*log.Logger, func(), error) {
	if logPath == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.Create(logPath)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
}

// sliceValue is a repeated flag.Value, grounded in the kortschak/ins CLI
// pattern: each occurrence of the flag appends to the slice.
type sliceValue []string

func (s *sliceValue) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func (s *sliceValue) String() string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("%q", []string(*s))
}
