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
	"fmt"
	"io"
)

// Printer writes the records of [1, Limit] through one FixedBuffer.
//
// The buffer is allocated once in NewPrinter and reused by every pass, so
// Fill and Print do not allocate. A Printer is not safe for concurrent use.
type Printer struct {
	buf    *FixedBuffer
	rule   Rule
	limit  uint8
	labels [kindCount]string
}

// NewPrinter validates o and allocates the buffer.
func NewPrinter(o Options) (*Printer, error) {
	o = o.withDefaults()
	if !validLimit(o.Limit) {
		return nil, fmt.Errorf("%w: %d is outside [1, 255]", ErrInvalidLimit, o.Limit)
	}
	if err := o.Rule.Validate(); err != nil {
		return nil, err
	}

	p := &Printer{
		rule:   o.Rule,
		limit:  uint8(o.Limit),
		labels: o.Styles.render(o.Rule.labels()),
	}

	capacity := o.Capacity
	if capacity == 0 {
		capacity = worstCase(p.limit, &p.labels)
	} else if need := outputLen(p.limit, p.rule, &p.labels); capacity < need {
		return nil, fmt.Errorf("%w: %d bytes, one pass needs %d", ErrCapacityTooSmall, capacity, need)
	}
	p.buf = NewFixedBuffer(capacity)

	return p, nil
}

// Fill encodes one pass into the buffer, replacing any previous contents.
func (p *Printer) Fill() {
	p.buf.Reset()
	encodeRange(p.buf, p.limit, p.rule, &p.labels)
}

// Bytes returns the output of the last Fill. It is valid until the next Fill or Print.
func (p *Printer) Bytes() []byte {
	return p.buf.View()
}

// Cap returns the capacity of the buffer.
func (p *Printer) Cap() int {
	return p.buf.Cap()
}

// Print fills the buffer and flushes it to s in one write.
func (p *Printer) Print(s Sink) error {
	p.Fill()
	return p.buf.FlushTo(s)
}

// Run prints one pass configured by o to w.
func Run(w io.Writer, o Options) error {
	p, err := NewPrinter(o)
	if err != nil {
		return err
	}
	return p.Print(w)
}

// EncodeRange appends the plain records of [1, limit] to b.
//
// It panics if b cannot hold them. Capacity(limit, r) bytes are always enough.
func EncodeRange(b *FixedBuffer, limit uint8, r Rule) {
	labels := r.labels()
	encodeRange(b, limit, r, &labels)
}

func encodeRange(b *FixedBuffer, limit uint8, r Rule, labels *[kindCount]string) {
	for i := 1; i <= int(limit); i++ {
		n := uint8(i)
		if k := r.Classify(n); k == KindNumber {
			b.AppendUint8Line(n)
		} else {
			b.AppendLineString(labels[k])
		}
	}
}
