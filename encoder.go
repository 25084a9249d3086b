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
	"io"
	"strconv"
)

// AppendUint8 appends the decimal text of x to dst and returns the extended slice.
//
// Values below 100 are written digit by digit, most significant first, with
// no lookups or intermediate strings. Larger values take the general
// strconv path, which is slower but never reached by the default range.
func AppendUint8(dst []byte, x uint8) []byte {
	switch {
	case x < 10:
		return append(dst, '0'+x)
	case x < 100:
		return append(dst, '0'+x/10, '0'+x%10)
	default:
		return strconv.AppendUint(dst, uint64(x), 10)
	}
}

// Uint8Len returns the number of bytes AppendUint8 writes for x.
func Uint8Len(x uint8) int {
	switch {
	case x < 10:
		return 1
	case x < 100:
		return 2
	default:
		return 3
	}
}

// EncodeUint8 writes the decimal text of x to s.
//
// A *FixedBuffer sink is written in place. Any other sink receives the
// digits in one Write call.
func EncodeUint8(s Sink, x uint8) error {
	if fb, ok := s.(*FixedBuffer); ok {
		fb.AppendUint8(x)
		return nil
	}
	var tmp [3]byte
	return writeAll(s, AppendUint8(tmp[:0], x))
}

// EncodeUint8Line writes the decimal text of x followed by a newline to s.
//
// The digits and the newline are a single Write, matching AppendLine.
func EncodeUint8Line(s Sink, x uint8) error {
	if fb, ok := s.(*FixedBuffer); ok {
		fb.AppendUint8Line(x)
		return nil
	}
	var tmp [4]byte
	return writeAll(s, append(AppendUint8(tmp[:0], x), '\n'))
}

func writeAll(s Sink, p []byte) error {
	n, err := s.Write(p)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	return err
}
