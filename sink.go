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

// Sink is any destination that accepts a bulk byte write.
//
// The method set is the one of io.Writer, so terminals, files, bytes.Buffer
// and FixedBuffer all qualify. The encoder and the buffer depend on this
// capability alone.
type Sink interface {
	Write(p []byte) (n int, err error)
}

// Syncer is implemented by sinks that can commit written data to stable storage.
type Syncer interface {
	Sync() error
}

// SyncSink calls Sync on s if it implements Syncer.
func SyncSink(s Sink) error {
	if syncer, ok := s.(Syncer); ok {
		return syncer.Sync()
	}
	return nil
}

// IsTerminal reports whether s is a file descriptor attached to a terminal.
func IsTerminal(s Sink) bool {
	f, ok := s.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isTerminal(f.Fd())
}
