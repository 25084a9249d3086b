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
	"errors"
	"fmt"
)

// Kind is the record type the Rule selects for an integer.
type Kind uint8

const (
	// KindNumber records are written as the decimal text of the integer.
	KindNumber Kind = iota
	// KindCrackle records are multiples of the crackle divisor only.
	KindCrackle
	// KindPop records are multiples of the pop divisor only.
	KindPop
	// KindCracklePop records are multiples of both divisors.
	KindCracklePop

	kindCount
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindCrackle:
		return "crackle"
	case KindPop:
		return "pop"
	case KindCracklePop:
		return "cracklepop"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// MarshalText serializes the Kind to its lowercase name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText deserializes a kind name. Matching is case insensitive.
func (k *Kind) UnmarshalText(text []byte) error {
	if k == nil {
		return errors.New("can't unmarshal a nil *Kind")
	}
	switch string(bytes.ToLower(text)) {
	case "number":
		*k = KindNumber
	case "crackle":
		*k = KindCrackle
	case "pop":
		*k = KindPop
	case "cracklepop":
		*k = KindCracklePop
	default:
		return fmt.Errorf("unrecognized kind: %q", text)
	}
	return nil
}

// Rule decides which record is written for each integer.
type Rule struct {
	// CrackleDivisor selects the Crackle label. It defaults to 3.
	CrackleDivisor uint8
	// PopDivisor selects the Pop label. It defaults to 5.
	PopDivisor uint8
	// Crackle is the label for multiples of CrackleDivisor.
	Crackle string
	// Pop is the label for multiples of PopDivisor. Multiples of both get Crackle+Pop.
	Pop string
}

// DefaultRule returns the 3/5 rule with the Crackle and Pop labels.
func DefaultRule() Rule {
	return Rule{
		CrackleDivisor: 3,
		PopDivisor:     5,
		Crackle:        "Crackle",
		Pop:            "Pop",
	}
}

// Validate reports ErrInvalidRule for a zero divisor or an empty label.
func (r Rule) Validate() error {
	switch {
	case r.CrackleDivisor == 0 || r.PopDivisor == 0:
		return fmt.Errorf("%w: divisors must be non-zero", ErrInvalidRule)
	case r.Crackle == "" || r.Pop == "":
		return fmt.Errorf("%w: labels must be non-empty", ErrInvalidRule)
	}
	return nil
}

// Classify returns the record kind for n. Multiples of both divisors are checked first.
func (r Rule) Classify(n uint8) Kind {
	crackle := n%r.CrackleDivisor == 0
	pop := n%r.PopDivisor == 0
	switch {
	case crackle && pop:
		return KindCracklePop
	case crackle:
		return KindCrackle
	case pop:
		return KindPop
	default:
		return KindNumber
	}
}

// Label returns the text written for k. KindNumber has no label.
func (r Rule) Label(k Kind) string {
	switch k {
	case KindCrackle:
		return r.Crackle
	case KindPop:
		return r.Pop
	case KindCracklePop:
		return r.Crackle + r.Pop
	default:
		return ""
	}
}

// labels returns the label of every kind, indexed by Kind.
func (r Rule) labels() [kindCount]string {
	return [kindCount]string{
		KindCrackle:    r.Crackle,
		KindPop:        r.Pop,
		KindCracklePop: r.Crackle + r.Pop,
	}
}
