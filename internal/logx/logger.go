// Copyright (c) 2026 blairtcg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package logx is the leveled diagnostic logger of the cracklepop command.
//
// Lines have the form "TAG prefix: message key=value ..." where TAG is the
// four character level name, coloured with lipgloss when enabled. Writes are
// serialized, so a Logger may be shared between goroutines.
package logx

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Options configures a Logger.
type Options struct {
	// Level sets the minimum level written. Lower levels are discarded.
	Level Level
	// Prefix is written before every message.
	Prefix string
	// Color enables ANSI colours on the level tags.
	Color bool
}

// Logger writes leveled lines to an io.Writer.
type Logger struct {
	level  Level
	prefix string
	tags   map[Level]string

	mu      sync.Mutex
	out     io.Writer
	lastErr error
}

// New constructs a Logger writing to w. A nil w means standard error.
func New(w io.Writer, o Options) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		level:  o.Level,
		prefix: o.Prefix,
		tags:   levelTags(lipgloss.NewRenderer(w), o.Color),
		out:    w,
	}
}

// Enabled reports whether lines at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

// Debug writes a message with key-value pairs at DebugLevel.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.log(DebugLevel, msg, keyvals)
}

// Info writes a message with key-value pairs at InfoLevel.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.log(InfoLevel, msg, keyvals)
}

// Warn writes a message with key-value pairs at WarnLevel.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.log(WarnLevel, msg, keyvals)
}

// Error writes a message with key-value pairs at ErrorLevel.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.log(ErrorLevel, msg, keyvals)
}

func (l *Logger) log(level Level, msg string, keyvals []any) {
	if !l.Enabled(level) {
		return
	}

	b := getBuffer()
	defer putBuffer(b)

	b.WriteString(l.tags[level])
	b.WriteByte(' ')
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteString(": ")
	}
	b.WriteString(msg)

	// A trailing key without a value is dropped.
	for i := 0; i+1 < len(keyvals); i += 2 {
		key := formatAny(keyvals[i])
		if key == "" {
			continue
		}
		val := formatAny(keyvals[i+1])

		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		if val == "" || strings.ContainsAny(val, " =\"\n") {
			b.B = strconv.AppendQuote(b.B, val)
		} else {
			b.WriteString(val)
		}
	}
	b.WriteByte('\n')

	l.mu.Lock()
	_, err := l.out.Write(b.B)
	if err != nil && err != l.lastErr {
		// Report each distinct failure once.
		l.lastErr = err
		fmt.Fprintf(os.Stderr, "logx: write error: %v\n", err)
	}
	l.mu.Unlock()
}
