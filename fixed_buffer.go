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

// FixedBuffer is an append only byte buffer whose capacity is fixed at construction.
//
// Unlike bytes.Buffer it never grows and it never checks the remaining space
// on append. Writing past Cap panics with a slice bounds error, which marks a
// sizing defect in the caller rather than a condition to recover from. Size
// the buffer for the worst case output of the workload it serves (see
// Capacity) and reuse it across passes with Reset or FlushTo.
//
// A FixedBuffer is not safe for concurrent use. Use one buffer per goroutine.
type FixedBuffer struct {
	buf []byte
	n   int
}

// NewFixedBuffer allocates a FixedBuffer holding exactly capacity bytes.
func NewFixedBuffer(capacity int) *FixedBuffer {
	return &FixedBuffer{buf: make([]byte, capacity)}
}

// extend reserves n bytes at the cursor and returns them for writing.
// It panics when fewer than n bytes remain.
func (b *FixedBuffer) extend(n int) []byte {
	off := b.n
	p := b.buf[off : off+n]
	b.n = off + n
	return p
}

// Append copies p to the end of the buffer.
func (b *FixedBuffer) Append(p []byte) {
	copy(b.extend(len(p)), p)
}

// AppendString copies s to the end of the buffer.
func (b *FixedBuffer) AppendString(s string) {
	copy(b.extend(len(s)), s)
}

// AppendByte appends a single byte.
func (b *FixedBuffer) AppendByte(c byte) {
	b.buf[b.n] = c
	b.n++
}

// AppendLine appends p followed by a newline.
//
// The output is identical to Append(p) followed by AppendByte('\n'), but the
// space for both is reserved at once.
func (b *FixedBuffer) AppendLine(p []byte) {
	d := b.extend(len(p) + 1)
	copy(d, p)
	d[len(p)] = '\n'
}

// AppendLineString appends s followed by a newline.
func (b *FixedBuffer) AppendLineString(s string) {
	d := b.extend(len(s) + 1)
	copy(d, s)
	d[len(s)] = '\n'
}

// AppendUint8 appends the decimal text of x.
func (b *FixedBuffer) AppendUint8(x uint8) {
	var tmp [3]byte
	b.Append(AppendUint8(tmp[:0], x))
}

// AppendUint8Line appends the decimal text of x followed by a newline.
func (b *FixedBuffer) AppendUint8Line(x uint8) {
	var tmp [4]byte
	b.Append(append(AppendUint8(tmp[:0], x), '\n'))
}

// Write implements io.Writer. It always consumes all of p or panics.
func (b *FixedBuffer) Write(p []byte) (int, error) {
	b.Append(p)
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (b *FixedBuffer) WriteString(s string) (int, error) {
	b.AppendString(s)
	return len(s), nil
}

// WriteByte implements io.ByteWriter.
func (b *FixedBuffer) WriteByte(c byte) error {
	b.AppendByte(c)
	return nil
}

// Reset empties the buffer. The previous contents are overwritten by later appends.
func (b *FixedBuffer) Reset() {
	b.n = 0
}

// WriteTo writes the buffered bytes to w in a single Write call and resets the buffer.
//
// The buffer is reset whether or not the write succeeds. A short write
// without an error from w is reported as io.ErrShortWrite.
func (b *FixedBuffer) WriteTo(w io.Writer) (int64, error) {
	if b.n == 0 {
		return 0, nil
	}
	defer b.Reset()

	m, err := w.Write(b.buf[:b.n])
	if err == nil && m != b.n {
		err = io.ErrShortWrite
	}
	return int64(m), err
}

// FlushTo performs the bulk flush of the buffered bytes to s and resets the buffer.
//
// Only a failing sink produces an error. The cursor is reset regardless, so
// a caller that needs to retry must encode the data again.
func (b *FixedBuffer) FlushTo(s Sink) error {
	n := b.n
	if _, err := b.WriteTo(s); err != nil {
		return fmt.Errorf("cracklepop: flush %d bytes: %w", n, err)
	}
	return nil
}

// View returns the written bytes.
//
// The slice aliases the buffer storage. It must be treated as read only and
// is valid only until the next call that modifies the buffer.
func (b *FixedBuffer) View() []byte {
	return b.buf[:b.n:b.n]
}

// String returns a copy of the written bytes as a string.
func (b *FixedBuffer) String() string {
	return string(b.buf[:b.n])
}

// Len returns the number of written bytes.
func (b *FixedBuffer) Len() int { return b.n }

// Cap returns the fixed capacity.
func (b *FixedBuffer) Cap() int { return len(b.buf) }

// Available returns how many bytes can still be appended.
func (b *FixedBuffer) Available() int { return len(b.buf) - b.n }
