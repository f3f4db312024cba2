// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"math/big"

	"github.com/decred/weierstrass/field"
)

// arith chains field operations and records the first error encountered so
// the group law formulas read like the math.  Once an error is recorded every
// further operation is a no-op and the caller checks err when done.
type arith struct {
	err error
}

func (a *arith) record(e field.Element, err error) field.Element {
	if err != nil {
		a.err = err
		return field.Element{}
	}
	return e
}

func (a *arith) add(x, y field.Element) field.Element {
	if a.err != nil {
		return field.Element{}
	}
	return a.record(x.Add(y))
}

func (a *arith) sub(x, y field.Element) field.Element {
	if a.err != nil {
		return field.Element{}
	}
	return a.record(x.Sub(y))
}

func (a *arith) mul(x, y field.Element) field.Element {
	if a.err != nil {
		return field.Element{}
	}
	return a.record(x.Mul(y))
}

func (a *arith) div(x, y field.Element) field.Element {
	if a.err != nil {
		return field.Element{}
	}
	return a.record(x.Div(y))
}

func (a *arith) square(x field.Element) field.Element {
	if a.err != nil {
		return field.Element{}
	}
	return a.record(x.Square())
}

func (a *arith) exp(x field.Element, k int64) field.Element {
	if a.err != nil {
		return field.Element{}
	}
	return a.record(x.Exp(big.NewInt(k)))
}

func (a *arith) mulInt(x field.Element, k uint64) field.Element {
	if a.err != nil {
		return field.Element{}
	}
	return a.record(x.MulInt(k))
}
