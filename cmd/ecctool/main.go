// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func main() {
	cfg := config{DebugLevel: defaultDebugLevel}
	parser, err := newParser(&cfg)
	if err != nil {
		fatalf("%v\n", err)
	}

	_, err = parser.Parse()
	if logRotator != nil {
		logRotator.Close()
	}
	if err != nil {
		// The parser prints the error, including those returned by the
		// commands.
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
