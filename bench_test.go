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
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// crackleBuilder builds the output the straightforward way: labels are
// concatenated per record and numbers go through strconv.
func crackleBuilder(limit int) string {
	var sb strings.Builder
	sb.Grow(Capacity(uint8(limit), DefaultRule()))
	for n := 1; n <= limit; n++ {
		crackle := n%3 == 0
		pop := n%5 == 0
		if crackle {
			sb.WriteString("Crackle")
		}
		if pop {
			sb.WriteString("Pop")
		}
		if !crackle && !pop {
			sb.WriteString(strconv.Itoa(n))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func crackleFmt(w io.Writer, limit int) {
	for n := 1; n <= limit; n++ {
		switch {
		case n%15 == 0:
			fmt.Fprintln(w, "CracklePop")
		case n%3 == 0:
			fmt.Fprintln(w, "Crackle")
		case n%5 == 0:
			fmt.Fprintln(w, "Pop")
		default:
			fmt.Fprintln(w, n)
		}
	}
}

func BenchmarkCracklePopPrinter(b *testing.B) {
	assert := assert.New(b)
	p, err := NewPrinter(Options{})
	assert.NoError(err)

	p.Fill()
	assert.Equal(crackleBuilder(100), string(p.Bytes()))

	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		p.Fill()
	}
}

func BenchmarkCracklePopPrinterFlush(b *testing.B) {
	p, err := NewPrinter(Options{})
	assert.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		p.Print(io.Discard)
	}
}

func BenchmarkCracklePopBuilder(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		crackleBuilder(100)
	}
}

func BenchmarkCracklePopFmt(b *testing.B) {
	assert := assert.New(b)
	var buf bytes.Buffer
	crackleFmt(&buf, 100)
	assert.Equal(crackleBuilder(100), buf.String())

	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		buf.Reset()
		crackleFmt(&buf, 100)
	}
}

func BenchmarkUint8Below100(b *testing.B) {
	fb := NewFixedBuffer(2 * 100)
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		fb.Reset()
		for x := 0; x < 100; x++ {
			fb.AppendUint8(uint8(x))
		}
	}
}

func BenchmarkUint8Above100(b *testing.B) {
	fb := NewFixedBuffer(3 * 100)
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		fb.Reset()
		for x := 100; x < 200; x++ {
			fb.AppendUint8(uint8(x))
		}
	}
}

func BenchmarkUint8Strconv(b *testing.B) {
	dst := make([]byte, 0, 2*100)
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		dst = dst[:0]
		for x := 0; x < 100; x++ {
			dst = strconv.AppendUint(dst, uint64(x), 10)
		}
	}
}

func BenchmarkUint8Fprintf(b *testing.B) {
	var buf bytes.Buffer
	buf.Grow(2 * 100)
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		buf.Reset()
		for x := 0; x < 100; x++ {
			fmt.Fprintf(&buf, "%d", x)
		}
	}
}

func BenchmarkUint8EncodeSink(b *testing.B) {
	var buf bytes.Buffer
	buf.Grow(2 * 100)
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		buf.Reset()
		for x := 0; x < 100; x++ {
			EncodeUint8(&buf, uint8(x))
		}
	}
}
