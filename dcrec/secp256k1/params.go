// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package secp256k1 implements support for the elliptic curve
// cryptography needed for working with secp256k1 keys, matching the
// wire, address, and signing conventions used throughout the module.
//
// This is a from-scratch, math/big-backed rendering of the curve: it
// favors clarity and correctness over the constant-time, hand-rolled
// field arithmetic the upstream decred package uses for performance.
// Nothing outside this package depends on its arithmetic being
// constant-time; it is only ever used against locally-held keys, not
// as a network-facing signature-verification oracle under adversarial
// timing.
package secp256k1

import "math/big"

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PubKeyBytesLenCompressed is the length in bytes of a compressed public key.
const PubKeyBytesLenCompressed = 33

// PubKeyBytesLenUncompressed is the length in bytes of an uncompressed
// public key.
const PubKeyBytesLenUncompressed = 65

var (
	// curveP is the secp256k1 field prime.
	curveP, _ = new(big.Int).SetString(
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)

	// curveN is the order of the base point.
	curveN, _ = new(big.Int).SetString(
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

	// curveB is the curve's b coefficient (y^2 = x^3 + 7).
	curveB = big.NewInt(7)

	// curveGx, curveGy are the coordinates of the base point G.
	curveGx, _ = new(big.Int).SetString(
		"79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)
	curveGy, _ = new(big.Int).SetString(
		"483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16)
)
