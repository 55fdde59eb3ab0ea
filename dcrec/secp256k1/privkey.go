// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// PrivateKey provides facilities for working with secp256k1 private
// keys within this module's wallet and signing code.
type PrivateKey struct {
	Key *big.Int
}

// NewPrivateKey instantiates a new private key from a scalar encoded
// as a big integer.
func NewPrivateKey(key *big.Int) *PrivateKey {
	return &PrivateKey{Key: new(big.Int).Mod(key, curveN)}
}

// GeneratePrivateKey returns a new randomly-generated private key,
// sourced from crypto/rand.
func GeneratePrivateKey() (*PrivateKey, error) {
	for {
		buf := make([]byte, PrivKeyBytesLen)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		k := new(big.Int).SetBytes(buf)
		if k.Sign() != 0 && k.Cmp(curveN) < 0 {
			return &PrivateKey{Key: k}, nil
		}
	}
}

// PrivKeyFromBytes returns a private key from a 32-byte big-endian
// encoded scalar.
func PrivKeyFromBytes(pk []byte) *PrivateKey {
	return &PrivateKey{Key: new(big.Int).SetBytes(pk)}
}

// Serialize returns the private key as a 32-byte big-endian slice.
func (p *PrivateKey) Serialize() []byte {
	out := make([]byte, PrivKeyBytesLen)
	b := p.Key.Bytes()
	copy(out[PrivKeyBytesLen-len(b):], b)
	return out
}

// PubKey derives and returns the public key corresponding to p.
func (p *PrivateKey) PubKey() *PublicKey {
	pt := scalarBaseMult(p.Key)
	return &PublicKey{X: pt.x, Y: pt.y}
}

// String implements fmt.Stringer, elided to never print the key
// material in logs by accident.
func (p *PrivateKey) String() string {
	return fmt.Sprintf("PrivateKey(%s)", p.PubKey())
}
