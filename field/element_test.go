// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"
)

// hexToBigInt converts the passed hex string into a big integer and will panic
// if there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexToBigInt(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

// mustElement returns the element with the passed value in the field with
// modulus p and will panic if there is an error.  It must only be called with
// hard-coded values.
func mustElement(v, p int64) Element {
	e, err := New(big.NewInt(v), big.NewInt(p))
	if err != nil {
		panic(err)
	}
	return e
}

// TestNew ensures element construction enforces the range and modulus
// requirements.
func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		value *big.Int
		p     *big.Int
		err   error
	}{{
		name:  "zero",
		value: big.NewInt(0),
		p:     big.NewInt(7),
	}, {
		name:  "p - 1",
		value: big.NewInt(6),
		p:     big.NewInt(7),
	}, {
		name:  "value equal to p",
		value: big.NewInt(7),
		p:     big.NewInt(7),
		err:   ErrValueOutOfRange,
	}, {
		name:  "value above p",
		value: big.NewInt(100),
		p:     big.NewInt(7),
		err:   ErrValueOutOfRange,
	}, {
		name:  "negative value",
		value: big.NewInt(-1),
		p:     big.NewInt(7),
		err:   ErrValueOutOfRange,
	}, {
		name:  "nil value",
		value: nil,
		p:     big.NewInt(7),
		err:   ErrValueOutOfRange,
	}, {
		name:  "nil modulus",
		value: big.NewInt(1),
		p:     nil,
		err:   ErrInvalidModulus,
	}, {
		name:  "modulus one",
		value: big.NewInt(0),
		p:     big.NewInt(1),
		err:   ErrInvalidModulus,
	}}

	for _, test := range tests {
		e, err := New(test.value, test.p)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if err != nil {
			continue
		}
		if e.Value().Cmp(test.value) != 0 {
			t.Errorf("%s: wrong value -- got %v, want %v", test.name,
				e.Value(), test.value)
		}
		if e.Modulus().Cmp(test.p) != 0 {
			t.Errorf("%s: wrong modulus -- got %v, want %v", test.name,
				e.Modulus(), test.p)
		}
	}
}

// TestNewReduced ensures arbitrary integers are reduced into the field.
func TestNewReduced(t *testing.T) {
	tests := []struct {
		value int64
		p     int64
		want  int64
	}{
		{0, 7, 0},
		{6, 7, 6},
		{7, 7, 0},
		{15, 7, 1},
		{-1, 7, 6},
		{-15, 7, 6},
		{123456789, 17, 123456789 % 17},
	}

	for i, test := range tests {
		e, err := NewReduced(big.NewInt(test.value), big.NewInt(test.p))
		if err != nil {
			t.Errorf("#%d: unexpected error: %v", i, err)
			continue
		}
		if e.Value().Int64() != test.want {
			t.Errorf("#%d: got %v, want %d", i, e.Value(), test.want)
		}
	}
}

// TestArithmetic ensures the basic field operations produce the expected
// results over a small prime.
func TestArithmetic(t *testing.T) {
	type binOp func(a, b Element) (Element, error)
	add := func(a, b Element) (Element, error) { return a.Add(b) }
	sub := func(a, b Element) (Element, error) { return a.Sub(b) }
	mul := func(a, b Element) (Element, error) { return a.Mul(b) }
	div := func(a, b Element) (Element, error) { return a.Div(b) }

	tests := []struct {
		name string
		op   binOp
		a, b int64
		p    int64
		want int64
	}{
		{"2 + 4 mod 7", add, 2, 4, 7, 6},
		{"5 + 4 mod 7", add, 5, 4, 7, 2},
		{"0 + 0 mod 7", add, 0, 0, 7, 0},
		{"2 - 4 mod 7", sub, 2, 4, 7, 5},
		{"4 - 2 mod 7", sub, 4, 2, 7, 2},
		{"3 - 3 mod 7", sub, 3, 3, 7, 0},
		{"2 * 4 mod 7", mul, 2, 4, 7, 1},
		{"6 * 6 mod 7", mul, 6, 6, 7, 1},
		{"5 * 0 mod 7", mul, 5, 0, 7, 0},
		{"2 / 4 mod 7", div, 2, 4, 7, 4},
		{"1 / 3 mod 7", div, 1, 3, 7, 5},
		{"0 / 3 mod 7", div, 0, 3, 7, 0},
		{"16 / 2 mod 17", div, 16, 2, 17, 8},
	}

	for _, test := range tests {
		a, b := mustElement(test.a, test.p), mustElement(test.b, test.p)
		got, err := test.op(a, b)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		want := mustElement(test.want, test.p)
		if !got.Equals(want) {
			t.Errorf("%s: got %v, want %v", test.name, got, want)
		}

		// Ensure the operands were not modified.
		if a.Value().Int64() != test.a || b.Value().Int64() != test.b {
			t.Errorf("%s: operands modified -- got %v, %v", test.name, a, b)
		}
	}
}

// TestDivideByZero ensures division by and inversion of zero are rejected.
func TestDivideByZero(t *testing.T) {
	a, zero := mustElement(3, 7), mustElement(0, 7)
	if _, err := a.Div(zero); !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("Div: mismatched err -- got %v, want %v", err,
			ErrDivideByZero)
	}
	if _, err := zero.Inverse(); !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("Inverse: mismatched err -- got %v, want %v", err,
			ErrDivideByZero)
	}
}

// TestFieldMismatch ensures every binary operation rejects operands from
// different fields.
func TestFieldMismatch(t *testing.T) {
	a, b := mustElement(2, 7), mustElement(2, 11)
	ops := map[string]func() (Element, error){
		"Add": func() (Element, error) { return a.Add(b) },
		"Sub": func() (Element, error) { return a.Sub(b) },
		"Mul": func() (Element, error) { return a.Mul(b) },
		"Div": func() (Element, error) { return a.Div(b) },
	}
	for name, op := range ops {
		if _, err := op(); !errors.Is(err, ErrFieldMismatch) {
			t.Errorf("%s: mismatched err -- got %v, want %v", name, err,
				ErrFieldMismatch)
		}
	}
	if a.SameField(b) || a.Equals(b) {
		t.Error("elements of different fields reported as compatible")
	}
}

// TestZeroValue ensures operations on the zero value of Element fail cleanly
// instead of panicking.
func TestZeroValue(t *testing.T) {
	var zero Element
	a := mustElement(1, 7)
	if _, err := zero.Add(a); !errors.Is(err, ErrInvalidModulus) {
		t.Errorf("Add: mismatched err -- got %v, want %v", err,
			ErrInvalidModulus)
	}
	if _, err := a.Mul(zero); !errors.Is(err, ErrInvalidModulus) {
		t.Errorf("Mul: mismatched err -- got %v, want %v", err,
			ErrInvalidModulus)
	}
	if _, err := zero.Neg(); !errors.Is(err, ErrInvalidModulus) {
		t.Errorf("Neg: mismatched err -- got %v, want %v", err,
			ErrInvalidModulus)
	}
	if _, err := zero.Inverse(); !errors.Is(err, ErrInvalidModulus) {
		t.Errorf("Inverse: mismatched err -- got %v, want %v", err,
			ErrInvalidModulus)
	}
	if !zero.IsZero() || zero.Bytes() != nil || zero.Modulus() != nil {
		t.Error("unexpected zero value accessors")
	}
}

// TestUnaryOps ensures the negation, squaring, exponentiation and inversion
// helpers are consistent with the binary operations.
func TestUnaryOps(t *testing.T) {
	const p = 17
	for v := int64(0); v < p; v++ {
		e := mustElement(v, p)

		neg, err := e.Neg()
		if err != nil {
			t.Fatalf("%d: Neg: unexpected error: %v", v, err)
		}
		if sum, _ := e.Add(neg); !sum.IsZero() {
			t.Errorf("%d: e + -e = %v, want 0", v, sum)
		}

		sq, _ := e.Square()
		mul, _ := e.Mul(e)
		if !sq.Equals(mul) {
			t.Errorf("%d: Square = %v, want %v", v, sq, mul)
		}

		cube, _ := e.Exp(big.NewInt(3))
		want, _ := mul.Mul(e)
		if !cube.Equals(want) {
			t.Errorf("%d: Exp(3) = %v, want %v", v, cube, want)
		}

		tripled, _ := e.MulInt(3)
		want, _ = e.Mul(mustElement(3, p))
		if !tripled.Equals(want) {
			t.Errorf("%d: MulInt(3) = %v, want %v", v, tripled, want)
		}

		if v == 0 {
			continue
		}
		inv, err := e.Inverse()
		if err != nil {
			t.Fatalf("%d: Inverse: unexpected error: %v", v, err)
		}
		if prod, _ := e.Mul(inv); !prod.IsOne() {
			t.Errorf("%d: e * e^-1 = %v, want 1", v, prod)
		}
	}

	if _, err := mustElement(2, p).Exp(big.NewInt(-1)); !errors.Is(err,
		ErrValueOutOfRange) {

		t.Errorf("Exp: mismatched err -- got %v, want %v", err,
			ErrValueOutOfRange)
	}
}

// TestBytes ensures the serialized value is padded to the size of the
// modulus.
func TestBytes(t *testing.T) {
	p := hexToBigInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	e, err := NewFromUint64(0x0102, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := hex.DecodeString("00000000000000000000000000000000000000000" +
		"00000000000000000000102")
	if got := e.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
	if got := e.String(); got != "102" {
		t.Fatalf("String: got %s, want 102", got)
	}
	if e.IsOdd() {
		t.Fatal("0x102 reported as odd")
	}
}

// TestImmutability ensures the accessors do not expose the internal state of
// an element.
func TestImmutability(t *testing.T) {
	e := mustElement(3, 7)
	e.Value().SetInt64(5)
	e.Modulus().SetInt64(11)
	if e.Value().Int64() != 3 || e.Modulus().Int64() != 7 {
		t.Fatalf("element modified through accessor: %v mod %v", e.Value(),
			e.Modulus())
	}
}
