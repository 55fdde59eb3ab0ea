// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// PublicKey provides facilities for working with secp256k1 public
// keys within this module's address derivation and vote verification
// code.
type PublicKey struct {
	X, Y *big.Int
}

// NewPublicKey instantiates a new public key with the given X, Y
// coordinates.
func NewPublicKey(x, y *big.Int) *PublicKey {
	return &PublicKey{X: x, Y: y}
}

// SerializeUncompressed serializes the public key in the uncompressed
// 0x04 || X || Y format.
func (p *PublicKey) SerializeUncompressed() []byte {
	out := make([]byte, PubKeyBytesLenUncompressed)
	out[0] = 0x04
	putFieldElement(out[1:33], p.X)
	putFieldElement(out[33:65], p.Y)
	return out
}

// SerializeCompressed serializes the public key in the compressed
// 0x02/0x03 || X format, matching the encoding addresses are derived
// from throughout the module.
func (p *PublicKey) SerializeCompressed() []byte {
	out := make([]byte, PubKeyBytesLenCompressed)
	if p.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	putFieldElement(out[1:33], p.X)
	return out
}

func putFieldElement(dst []byte, v *big.Int) {
	b := v.Bytes()
	copy(dst[len(dst)-len(b):], b)
}

// ParsePubKey parses a public key from its compressed or uncompressed
// serialized form.
func ParsePubKey(data []byte) (*PublicKey, error) {
	switch {
	case len(data) == PubKeyBytesLenUncompressed && data[0] == 0x04:
		x := new(big.Int).SetBytes(data[1:33])
		y := new(big.Int).SetBytes(data[33:65])
		if !onCurve(x, y) {
			return nil, fmt.Errorf("secp256k1: point not on curve")
		}
		return &PublicKey{X: x, Y: y}, nil

	case len(data) == PubKeyBytesLenCompressed && (data[0] == 0x02 || data[0] == 0x03):
		x := new(big.Int).SetBytes(data[1:33])
		y := decompressY(x, data[0] == 0x03)
		if y == nil {
			return nil, fmt.Errorf("secp256k1: invalid compressed point")
		}
		return &PublicKey{X: x, Y: y}, nil

	default:
		return nil, fmt.Errorf("secp256k1: invalid public key encoding")
	}
}

// String implements fmt.Stringer.
func (p *PublicKey) String() string {
	return fmt.Sprintf("%x", p.SerializeCompressed())
}

// IsEqual reports whether p and other represent the same point.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	return p.X.Cmp(other.X) == 0 && p.Y.Cmp(other.Y) == 0
}
