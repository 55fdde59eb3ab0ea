// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// point is an affine point on the curve. The point at infinity is
// represented by a nil x.
type point struct {
	x, y *big.Int
}

func isInfinity(p *point) bool { return p.x == nil }

// addPoints returns p1+p2 using the standard short Weierstrass affine
// addition formulas.
func addPoints(p1, p2 *point) *point {
	if isInfinity(p1) {
		return p2
	}
	if isInfinity(p2) {
		return p1
	}

	if p1.x.Cmp(p2.x) == 0 {
		if p1.y.Cmp(p2.y) != 0 || p1.y.Sign() == 0 {
			return &point{}
		}
		return doublePoint(p1)
	}

	// lambda = (y2 - y1) / (x2 - x1) mod p
	num := new(big.Int).Sub(p2.y, p1.y)
	den := new(big.Int).Sub(p2.x, p1.x)
	den.ModInverse(den, curveP)
	lambda := new(big.Int).Mul(num, den)
	lambda.Mod(lambda, curveP)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p1.x)
	x3.Sub(x3, p2.x)
	x3.Mod(x3, curveP)

	y3 := new(big.Int).Sub(p1.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p1.y)
	y3.Mod(y3, curveP)

	return &point{x: x3, y: y3}
}

// doublePoint returns p+p.
func doublePoint(p *point) *point {
	if isInfinity(p) || p.y.Sign() == 0 {
		return &point{}
	}

	// lambda = 3x^2 / 2y mod p  (a = 0 for secp256k1)
	num := new(big.Int).Mul(p.x, p.x)
	num.Mul(num, big.NewInt(3))
	den := new(big.Int).Lsh(p.y, 1)
	den.ModInverse(den, curveP)
	lambda := new(big.Int).Mul(num, den)
	lambda.Mod(lambda, curveP)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, new(big.Int).Lsh(p.x, 1))
	x3.Mod(x3, curveP)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, curveP)

	return &point{x: x3, y: y3}
}

// scalarMult returns k*p using double-and-add.
func scalarMult(p *point, k *big.Int) *point {
	result := &point{}
	addend := p

	bits := k.BitLen()
	for i := 0; i < bits; i++ {
		if k.Bit(i) == 1 {
			result = addPoints(result, addend)
		}
		addend = doublePoint(addend)
	}
	return result
}

// scalarBaseMult returns k*G.
func scalarBaseMult(k *big.Int) *point {
	return scalarMult(&point{x: curveGx, y: curveGy}, k)
}

// onCurve reports whether (x, y) satisfies y^2 = x^3 + 7 mod p.
func onCurve(x, y *big.Int) bool {
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, curveP)

	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	x3.Add(x3, curveB)
	x3.Mod(x3, curveP)

	return y2.Cmp(x3) == 0
}

// decompressY recovers the y-coordinate for x given the desired
// parity, returning nil if x is not on the curve.
func decompressY(x *big.Int, odd bool) *big.Int {
	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, curveB)
	rhs.Mod(rhs, curveP)

	// p mod 4 == 3 for secp256k1, so sqrt(a) = a^((p+1)/4) mod p.
	exp := new(big.Int).Add(curveP, big.NewInt(1))
	exp.Rsh(exp, 2)
	y := new(big.Int).Exp(rhs, exp, curveP)

	if !onCurve(x, y) {
		return nil
	}

	if y.Bit(0) == 1 != odd {
		y.Sub(curveP, y)
	}
	return y
}
