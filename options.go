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

package cracklepop

import (
	"errors"
	"math"
)

// DefaultLimit is the last integer of the range when Options.Limit is zero.
const DefaultLimit = 100

var (
	// ErrInvalidLimit means the range limit is outside [1, 255].
	ErrInvalidLimit = errors.New("cracklepop: invalid limit")
	// ErrInvalidRule means a rule has a zero divisor or an empty label.
	ErrInvalidRule = errors.New("cracklepop: invalid rule")
	// ErrCapacityTooSmall means an explicit capacity cannot hold one pass of output.
	ErrCapacityTooSmall = errors.New("cracklepop: capacity too small")
)

// Options configures a Printer.
type Options struct {
	// Limit is the last integer of the range [1, Limit]. It must not exceed 255.
	// It defaults to DefaultLimit.
	Limit int

	// Rule selects the record for each integer. The zero Rule means DefaultRule.
	Rule Rule

	// Capacity sets the buffer size in bytes. Zero derives the worst case for
	// Limit and the labels. An explicit value below the exact output length of
	// one pass is rejected.
	Capacity int

	// Styles renders the labels. Nil writes them as plain text.
	Styles *Styles
}

func (o Options) withDefaults() Options {
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if o.Rule == (Rule{}) {
		o.Rule = DefaultRule()
	}
	return o
}

// Capacity returns the worst case number of bytes one pass over [1, limit] can produce.
//
// Every record is assumed to be as wide as the widest label or the widest
// number, plus the newline. For the default rule and a limit of 100 that is
// 100 * (len("CracklePop") + 1) bytes.
func Capacity(limit uint8, r Rule) int {
	labels := r.labels()
	return worstCase(limit, &labels)
}

// OutputLen returns the exact number of bytes one pass over [1, limit] produces.
func OutputLen(limit uint8, r Rule) int {
	labels := r.labels()
	return outputLen(limit, r, &labels)
}

func worstCase(limit uint8, labels *[kindCount]string) int {
	widest := Uint8Len(limit)
	for _, l := range labels {
		widest = max(widest, len(l))
	}
	return int(limit) * (widest + 1)
}

func outputLen(limit uint8, r Rule, labels *[kindCount]string) int {
	total := 0
	for i := 1; i <= int(limit); i++ {
		n := uint8(i)
		if k := r.Classify(n); k == KindNumber {
			total += Uint8Len(n)
		} else {
			total += len(labels[k])
		}
		total++
	}
	return total
}

func validLimit(limit int) bool {
	return limit >= 1 && limit <= math.MaxUint8
}
