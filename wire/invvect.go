// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/EXCCoin/exccd/chaincfg/chainhash"
)

// InvType represents the allowed types of inventory vectors.
type InvType uint32

// These constants define the various supported inventory vector types.
const (
	InvTypeError InvType = 0
	InvTypeTx    InvType = 1
	InvTypeBlock InvType = 2

	// InvTypeIVote identifies an inventory item carrying an incentive
	// vote (a serialized wire.MsgIVote payload).
	InvTypeIVote InvType = 0x40000002
)

// ivTypeStrings is a map of inv type to strings for display purposes.
var ivTypeStrings = map[InvType]string{
	InvTypeError: "ERROR",
	InvTypeTx:    "MSG_TX",
	InvTypeBlock: "MSG_BLOCK",
	InvTypeIVote: "MSG_IVOTE",
}

// String returns the InvType in human-readable form.
func (invtype InvType) String() string {
	if s, ok := ivTypeStrings[invtype]; ok {
		return s
	}

	return "Unknown InvType"
}

// InvVect defines a bitcoin-style inventory vector which is used to
// describe data, as specified by the Type field, that a peer wants,
// has, or does not have to another peer.
type InvVect struct {
	Type InvType        // Type of data
	Hash chainhash.Hash // Hash of the data
}

// NewInvVect returns a new InvVect using the provided type and hash.
func NewInvVect(typ InvType, hash *chainhash.Hash) *InvVect {
	return &InvVect{
		Type: typ,
		Hash: *hash,
	}
}

// readInvVect reads an encoded InvVect from r depending on the protocol
// version.
func readInvVect(r io.Reader, pver uint32, iv *InvVect) error {
	if err := readElement(r, &iv.Type); err != nil {
		return err
	}
	return readElement(r, &iv.Hash)
}

// writeInvVect serializes an InvVect to w depending on the protocol
// version.
func writeInvVect(w io.Writer, pver uint32, iv *InvVect) error {
	if err := writeElement(w, iv.Type); err != nil {
		return err
	}
	return writeElement(w, &iv.Hash)
}
