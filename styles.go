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

import "github.com/charmbracelet/lipgloss"

// Styles defines how labels look when a Printer writes to a terminal.
//
// Labels are rendered once when the Printer is built and the rendered bytes
// are reused on every pass. Numbers are never styled.
type Styles struct {
	Crackle    lipgloss.Style
	Pop        lipgloss.Style
	CracklePop lipgloss.Style
}

// DefaultStyles returns the standard label colours using the default renderer,
// which detects the colour profile of standard output.
func DefaultStyles() *Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

// NewStyles returns the standard label colours bound to r.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Crackle:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Pop:        r.NewStyle().Bold(true).Foreground(lipgloss.Color("204")),
		CracklePop: r.NewStyle().Bold(true).Foreground(lipgloss.Color("192")),
	}
}

// Style returns the style of k. KindNumber has none.
func (s *Styles) Style(k Kind) (lipgloss.Style, bool) {
	switch k {
	case KindCrackle:
		return s.Crackle, true
	case KindPop:
		return s.Pop, true
	case KindCracklePop:
		return s.CracklePop, true
	}
	return lipgloss.Style{}, false
}

// render returns labels with every styled entry rendered. A nil Styles leaves them plain.
func (s *Styles) render(labels [kindCount]string) [kindCount]string {
	if s == nil {
		return labels
	}
	for k := range labels {
		if st, ok := s.Style(Kind(k)); ok {
			labels[k] = st.Render(labels[k])
		}
	}
	return labels
}
