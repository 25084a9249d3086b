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
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fifteen = "1\n2\nCrackle\n4\nPop\nCrackle\n7\n8\nCrackle\nPop\n11\nCrackle\n13\n14\nCracklePop\n"

func TestPrinterFifteen(t *testing.T) {
	p, err := NewPrinter(Options{Limit: 15})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, p.Print(&out))
	assert.Equal(t, fifteen, out.String())
}

func TestPrinterReuse(t *testing.T) {
	p, err := NewPrinter(Options{Limit: 15})
	require.NoError(t, err)

	var out bytes.Buffer
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Print(&out))
	}
	assert.Equal(t, strings.Repeat(fifteen, 3), out.String())

	p.Fill()
	p.Fill()
	assert.Equal(t, fifteen, string(p.Bytes()))
}

func TestPrinterDefaults(t *testing.T) {
	p, err := NewPrinter(Options{})
	require.NoError(t, err)
	assert.Equal(t, 1100, p.Cap())

	p.Fill()
	lines := strings.Split(strings.TrimSuffix(string(p.Bytes()), "\n"), "\n")
	require.Len(t, lines, 100)
	assert.Equal(t, "1", lines[0])
	assert.Equal(t, "CracklePop", lines[89])
	assert.Equal(t, "98", lines[97])
	assert.Equal(t, "Pop", lines[99])
	assert.Equal(t, OutputLen(100, DefaultRule()), len(p.Bytes()))
}

func TestPrinterMaxLimit(t *testing.T) {
	p, err := NewPrinter(Options{Limit: 255})
	require.NoError(t, err)

	p.Fill()
	lines := strings.Split(strings.TrimSuffix(string(p.Bytes()), "\n"), "\n")
	require.Len(t, lines, 255)
	assert.Equal(t, "254", lines[253])
	assert.Equal(t, "CracklePop", lines[254])
}

func TestPrinterOptionErrors(t *testing.T) {
	_, err := NewPrinter(Options{Limit: 256})
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = NewPrinter(Options{Limit: -1})
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = NewPrinter(Options{Rule: Rule{CrackleDivisor: 3, Crackle: "C", Pop: "P"}})
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = NewPrinter(Options{Limit: 15, Capacity: len(fifteen) - 1})
	assert.ErrorIs(t, err, ErrCapacityTooSmall)

	p, err := NewPrinter(Options{Limit: 15, Capacity: len(fifteen)})
	require.NoError(t, err)
	p.Fill()
	assert.Equal(t, fifteen, string(p.Bytes()))
}

func TestPrinterSinkFailure(t *testing.T) {
	p, err := NewPrinter(Options{Limit: 15})
	require.NoError(t, err)

	assert.ErrorIs(t, p.Print(&failingSink{}), errSinkDown)

	var out bytes.Buffer
	require.NoError(t, p.Print(&out))
	assert.Equal(t, fifteen, out.String())
}

func TestPrinterFillDoesNotAllocate(t *testing.T) {
	p, err := NewPrinter(Options{Limit: 255})
	require.NoError(t, err)

	assert.Zero(t, testing.AllocsPerRun(100, p.Fill))
}

func TestPrinterStyles(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	st := NewStyles(r)

	p, err := NewPrinter(Options{Limit: 15, Styles: st})
	require.NoError(t, err)

	p.Fill()
	lines := strings.Split(strings.TrimSuffix(string(p.Bytes()), "\n"), "\n")
	require.Len(t, lines, 15)

	assert.Equal(t, "1", lines[0])
	assert.Equal(t, st.Crackle.Render("Crackle"), lines[2])
	assert.Equal(t, st.Pop.Render("Pop"), lines[4])
	assert.Equal(t, st.CracklePop.Render("CracklePop"), lines[14])
	assert.Contains(t, lines[14], "\x1b[")

	widest := max(len(lines[2]), len(lines[4]), len(lines[14]))
	assert.Equal(t, 15*(widest+1), p.Cap())
}

func TestStylesStyle(t *testing.T) {
	st := DefaultStyles()

	_, ok := st.Style(KindNumber)
	assert.False(t, ok)
	for _, k := range []Kind{KindCrackle, KindPop, KindCracklePop} {
		_, ok := st.Style(k)
		assert.True(t, ok, k.String())
	}

	var none *Styles
	labels := DefaultRule().labels()
	assert.Equal(t, labels, none.render(labels))
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(&out, Options{Limit: 15}))
	assert.Equal(t, fifteen, out.String())

	assert.ErrorIs(t, Run(&out, Options{Limit: 300}), ErrInvalidLimit)
}

func TestEncodeRange(t *testing.T) {
	b := NewFixedBuffer(Capacity(15, DefaultRule()))
	EncodeRange(b, 15, DefaultRule())
	assert.Equal(t, fifteen, b.String())
}

func TestCapacity(t *testing.T) {
	r := DefaultRule()

	assert.Equal(t, 1100, Capacity(100, r))
	assert.Equal(t, 11, Capacity(1, r))
	assert.Equal(t, len(fifteen), OutputLen(15, r))

	for _, limit := range []uint8{1, 2, 15, 99, 100, 101, 255} {
		assert.LessOrEqual(t, OutputLen(limit, r), Capacity(limit, r), "limit=%d", limit)
	}

	short := Rule{CrackleDivisor: 3, PopDivisor: 5, Crackle: "a", Pop: "b"}
	assert.Equal(t, 255*4, Capacity(255, short), "numbers wider than labels")
}

func TestEncodeRangeSizing(t *testing.T) {
	r := DefaultRule()

	assert.NotPanics(t, func() {
		EncodeRange(NewFixedBuffer(Capacity(100, r)), 100, r)
	})
	assert.NotPanics(t, func() {
		EncodeRange(NewFixedBuffer(OutputLen(100, r)), 100, r)
	})

	for i := 0; i < 3; i++ {
		assert.Panics(t, func() {
			EncodeRange(NewFixedBuffer(OutputLen(100, r)-1), 100, r)
		})
	}
}
