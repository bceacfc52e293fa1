/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the CLI's progress and diagnostic output.
// Library packages return errors and never log.
package logger

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu sync.Mutex
	// Default logs to stderr. Set to io.Discard for silent mode.
	output io.Writer = os.Stderr
	logger            = log.New(output, "", 0)
	quiet   bool
	verbose bool
)

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = log.New(output, "", 0)
}

// SetQuiet suppresses Info and Debug messages. Warnings and errors still print.
func SetQuiet(q bool) {
	mu.Lock()
	defer mu.Unlock()
	quiet = q
}

// SetVerbose enables Debug messages. Quiet wins over verbose.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

func current() (*log.Logger, bool) {
	mu.Lock()
	defer mu.Unlock()
	return logger, quiet
}

// Error logs an error message.
func Error(format string, args ...any) {
	l, _ := current()
	l.Printf("error: "+format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	l, _ := current()
	l.Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	l, q := current()
	if q {
		return
	}
	l.Printf(format, args...)
}

// Debug logs a debug message when verbose output is on.
func Debug(format string, args ...any) {
	mu.Lock()
	l, show := logger, verbose && !quiet
	mu.Unlock()
	if show {
		l.Printf("debug: "+format, args...)
	}
}
