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

// Command cracklepop prints the Crackle/Pop sequence of [1, n] with one write to standard output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"cracklepop"
	"cracklepop/internal/logx"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// colorMode selects when labels and log tags are coloured.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func (m colorMode) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

func (m *colorMode) UnmarshalText(text []byte) error {
	switch v := colorMode(text); v {
	case colorAuto, colorAlways, colorNever:
		*m = v
		return nil
	}
	return fmt.Errorf("unrecognized color mode: %q", text)
}

// enabled resolves the mode for w.
func (m colorMode) enabled(w io.Writer) bool {
	switch m {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	return cracklepop.IsTerminal(w)
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		color    = colorAuto
		logLevel = logx.InfoLevel
		rule     = cracklepop.DefaultRule()
		limit    int
		capacity int
	)

	fs := flag.NewFlagSet("cracklepop", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&limit, "n", cracklepop.DefaultLimit, "last integer of the range [1, n], at most 255")
	fs.StringVar(&rule.Crackle, "crackle", rule.Crackle, "label for multiples of -crackle-div")
	fs.StringVar(&rule.Pop, "pop", rule.Pop, "label for multiples of -pop-div")
	fs.Func("crackle-div", "crackle divisor (default 3)", uint8Flag(&rule.CrackleDivisor))
	fs.Func("pop-div", "pop divisor (default 5)", uint8Flag(&rule.PopDivisor))
	fs.IntVar(&capacity, "capacity", 0, "output buffer size in bytes, 0 for the worst case")
	fs.TextVar(&color, "color", colorAuto, "colour labels: auto, always or never")
	fs.TextVar(&logLevel, "log-level", logx.InfoLevel, "minimum diagnostic level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := logx.New(stderr, logx.Options{
		Level:  logLevel,
		Prefix: "cracklepop",
		Color:  color.enabled(stderr),
	})

	var styles *cracklepop.Styles
	if color.enabled(stdout) {
		r := lipgloss.NewRenderer(stdout)
		if color == colorAlways {
			r.SetColorProfile(termenv.ANSI256)
		}
		styles = cracklepop.NewStyles(r)
	}

	if limit == 0 {
		// Options treats zero as the default; on the command line it is a mistake.
		log.Error("invalid configuration", "err", fmt.Errorf("%w: 0 is outside [1, 255]", cracklepop.ErrInvalidLimit))
		return 1
	}

	p, err := cracklepop.NewPrinter(cracklepop.Options{
		Limit:    limit,
		Rule:     rule,
		Capacity: capacity,
		Styles:   styles,
	})
	if err != nil {
		log.Error("invalid configuration", "err", err)
		return 1
	}
	log.Debug("printing", "limit", limit, "capacity", p.Cap(), "styled", styles != nil)

	if err := p.Print(stdout); err != nil {
		log.Error("write failed", "err", err)
		return 1
	}
	// Terminals and pipes reject fsync; only a failed write is fatal.
	if err := cracklepop.SyncSink(stdout); err != nil {
		log.Debug("sync skipped", "err", err)
	}
	return 0
}

func uint8Flag(dst *uint8) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return err
		}
		*dst = uint8(v)
		return nil
	}
}
