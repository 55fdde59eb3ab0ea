// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"

	"github.com/EXCCoin/exccd/chaincfg/chainhash"
)

// CmdIVote is the protocol command string used to advertise and relay
// incentive votes (the "ivote" message of the incentive coordination
// protocol).
const CmdIVote = "ivote"

// MaxIVoteAddressSize is the maximum serialized size, in bytes, of the
// wallet-address field of an incentive vote.  Wallet addresses are
// base58-like strings and are never anywhere near this long; the limit
// only exists to bound a malicious peer's ability to make us allocate.
const MaxIVoteAddressSize = 256

// MaxIVotePublicKeySize is the maximum serialized size, in bytes, of the
// voter public key field. A compressed secp256k1 public key is 33 bytes;
// this allows headroom for alternate signature schemes without a wire
// format change.
const MaxIVotePublicKeySize = 128

// MsgIVote implements the Message interface and represents an incentive
// vote: a claim, made under VoterPublicKey, that Address should receive
// the incentive reward for BlockHeight+2. The message carries no
// signature field.
//
// Score is computed locally by both the sender (before casting the vote)
// and the receiver (before tallying it); a Score of -1 or lower marks
// the voter ineligible and the vote must be discarded rather than
// tallied.
type MsgIVote struct {
	BlockHeight    uint32
	BlockHash      chainhash.Hash
	Address        string
	VoterPublicKey []byte
	Score          int32
	Nonce          chainhash.Hash
}

// BtcDecode decodes r using the wire protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgIVote) BtcDecode(r io.Reader, pver uint32) error {
	err := readElement(r, &msg.BlockHeight)
	if err != nil {
		return err
	}

	err = readElement(r, &msg.BlockHash)
	if err != nil {
		return err
	}

	msg.Address, err = ReadVarString(r, pver)
	if err != nil {
		return err
	}
	if len(msg.Address) > MaxIVoteAddressSize {
		str := fmt.Sprintf("ivote address too long [len %v, max %v]",
			len(msg.Address), MaxIVoteAddressSize)
		return messageError("MsgIVote.BtcDecode", str)
	}

	msg.VoterPublicKey, err = ReadVarBytes(r, pver, MaxIVotePublicKeySize,
		"ivote voter public key")
	if err != nil {
		return err
	}

	err = readElement(r, &msg.Score)
	if err != nil {
		return err
	}

	return readElement(r, &msg.Nonce)
}

// BtcEncode encodes the receiver to w using the wire protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgIVote) BtcEncode(w io.Writer, pver uint32) error {
	if len(msg.Address) > MaxIVoteAddressSize {
		str := fmt.Sprintf("ivote address too long [len %v, max %v]",
			len(msg.Address), MaxIVoteAddressSize)
		return messageError("MsgIVote.BtcEncode", str)
	}
	if len(msg.VoterPublicKey) > MaxIVotePublicKeySize {
		str := fmt.Sprintf("ivote voter public key too long [len %v, max %v]",
			len(msg.VoterPublicKey), MaxIVotePublicKeySize)
		return messageError("MsgIVote.BtcEncode", str)
	}

	err := writeElement(w, msg.BlockHeight)
	if err != nil {
		return err
	}

	err = writeElement(w, &msg.BlockHash)
	if err != nil {
		return err
	}

	err = WriteVarString(w, pver, msg.Address)
	if err != nil {
		return err
	}

	err = WriteVarBytes(w, pver, msg.VoterPublicKey)
	if err != nil {
		return err
	}

	err = writeElement(w, msg.Score)
	if err != nil {
		return err
	}

	return writeElement(w, &msg.Nonce)
}

// Command returns the protocol command string for the message. This is
// part of the Message interface implementation.
func (msg *MsgIVote) Command() string {
	return CmdIVote
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver. This is part of the Message interface implementation.
func (msg *MsgIVote) MaxPayloadLength(pver uint32) uint32 {
	return 4 + uint32(chainhash.HashSize) +
		uint32(VarIntSerializeSize(MaxIVoteAddressSize)) + MaxIVoteAddressSize +
		uint32(VarIntSerializeSize(MaxIVotePublicKeySize)) + MaxIVotePublicKeySize +
		4 + uint32(chainhash.HashSize)
}

// NewMsgIVote returns a new ivote message that conforms to the Message
// interface. See MsgIVote for details.
func NewMsgIVote(height uint32, hash *chainhash.Hash, address string,
	voterPublicKey []byte, score int32, nonce chainhash.Hash) *MsgIVote {
	return &MsgIVote{
		BlockHeight:    height,
		BlockHash:      *hash,
		Address:        address,
		VoterPublicKey: voterPublicKey,
		Score:          score,
		Nonce:          nonce,
	}
}
