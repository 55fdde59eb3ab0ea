// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dcrec defines the signature schemes the module's scripts and
// wallet import format can reference.
package dcrec

// SignatureType specifies the signature scheme of a key.
type SignatureType int

const (
	// STEcdsaSecp256k1 specifies that the signature scheme is ECDSA,
	// using the secp256k1 elliptic curve.
	STEcdsaSecp256k1 SignatureType = iota

	// STEd25519 specifies that the signature scheme is EdDSA, using
	// the edwards25519 twisted Edwards curve.
	STEd25519

	// STSchnorrSecp256k1 specifies that the signature scheme is a
	// Schnorr signature, using the secp256k1 elliptic curve.
	STSchnorrSecp256k1
)

// String returns the English text representation of the signature type.
func (t SignatureType) String() string {
	switch t {
	case STEcdsaSecp256k1:
		return "STEcdsaSecp256k1"
	case STEd25519:
		return "STEd25519"
	case STSchnorrSecp256k1:
		return "STSchnorrSecp256k1"
	default:
		return "SignatureType(unknown)"
	}
}
