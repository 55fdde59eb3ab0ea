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

// Signature is an ECDSA signature over secp256k1.
type Signature struct {
	R, S *big.Int
}

// Sign produces an ECDSA signature over hash using the private key k.
// It is not used by the incentive coordination core directly (votes
// are authenticated by the wire protocol's own signing layer, outside
// this package's scope) but is kept alongside Verify since any future
// consumer of this key type will need both halves.
func Sign(k *PrivateKey, hash []byte) (*Signature, error) {
	z := hashToInt(hash)

	for {
		kNonce, err := GeneratePrivateKey()
		if err != nil {
			return nil, err
		}

		r := scalarBaseMult(kNonce.Key).x
		r = new(big.Int).Mod(r, curveN)
		if r.Sign() == 0 {
			continue
		}

		kInv := new(big.Int).ModInverse(kNonce.Key, curveN)
		s := new(big.Int).Mul(r, k.Key)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, curveN)
		if s.Sign() == 0 {
			continue
		}

		// Canonicalize to the low-S form.
		halfN := new(big.Int).Rsh(curveN, 1)
		if s.Cmp(halfN) > 0 {
			s.Sub(curveN, s)
		}

		return &Signature{R: r, S: s}, nil
	}
}

// Verify reports whether sig is a valid signature over hash by the
// holder of pub.
func Verify(pub *PublicKey, hash []byte, sig *Signature) bool {
	if sig.R.Sign() <= 0 || sig.R.Cmp(curveN) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(curveN) >= 0 {
		return false
	}

	z := hashToInt(hash)

	sInv := new(big.Int).ModInverse(sig.S, curveN)
	u1 := new(big.Int).Mul(z, sInv)
	u1.Mod(u1, curveN)
	u2 := new(big.Int).Mul(sig.R, sInv)
	u2.Mod(u2, curveN)

	p1 := scalarBaseMult(u1)
	p2 := scalarMult(&point{x: pub.X, y: pub.Y}, u2)
	sum := addPoints(p1, p2)

	if isInfinity(sum) {
		return false
	}

	v := new(big.Int).Mod(sum.x, curveN)
	return v.Cmp(sig.R) == 0
}

// hashToInt converts a hash to an integer, truncating a digest wider
// than curveN to its leftmost curveN.BitLen() bits, as ECDSA requires.
func hashToInt(hash []byte) *big.Int {
	z := new(big.Int).SetBytes(hash)
	bitLen := curveN.BitLen()
	if excess := z.BitLen() - bitLen; excess > 0 {
		z.Rsh(z, uint(excess))
	}
	return z
}

// Serialize encodes sig in DER form.
func (sig *Signature) Serialize() []byte {
	rb := asn1Int(sig.R)
	sb := asn1Int(sig.S)

	out := make([]byte, 0, 6+len(rb)+len(sb))
	out = append(out, 0x30, byte(4+len(rb)+len(sb)))
	out = append(out, rb...)
	out = append(out, sb...)
	return out
}

func asn1Int(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}
	if b[0]&0x80 != 0 {
		b = append([]byte{0}, b...)
	}
	out := make([]byte, 0, 2+len(b))
	out = append(out, 0x02, byte(len(b)))
	out = append(out, b...)
	return out
}

// ErrInvalidSignature is returned by callers that validate a
// signature's structure before calling Verify.
var ErrInvalidSignature = fmt.Errorf("secp256k1: invalid signature")
