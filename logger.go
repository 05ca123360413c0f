// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laplacian

import "log"

// Logger receives optional diagnostic events from Build and Solve.
// Implementations must be safe to call from a single goroutine (the core
// is single-threaded per build/solve); no
// concurrency guarantees beyond that are made.
type Logger interface {
	Log(event string, kv ...any)
}

// StdLogger adapts a standard library *log.Logger to the Logger
// interface, for callers who just want build/solve events on stderr.
type StdLogger struct {
	*log.Logger
}

// NewStdLogger returns a StdLogger writing to log.Default().
func NewStdLogger() StdLogger {
	return StdLogger{Logger: log.Default()}
}

// Log implements Logger by printing event followed by its key-value
// pairs.
func (s StdLogger) Log(event string, kv ...any) {
	args := make([]any, 0, len(kv)+1)
	args = append(args, event)
	args = append(args, kv...)
	s.Logger.Println(args...)
}

func logEvent(l Logger, event string, kv ...any) {
	if l == nil {
		return
	}
	l.Log(event, kv...)
}
