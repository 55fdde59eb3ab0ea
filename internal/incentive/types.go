// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2015 John Connor (vanillacoin / vcash)
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package incentive implements the incentive coordination core: the
// per-height leader election, vote tally, candidate rate limiting, and
// self-collateral proof described by the node's incentive protocol.
package incentive

import (
	"net"
	"time"

	"github.com/EXCCoin/exccd/chaincfg/chainhash"
	"github.com/EXCCoin/exccd/wire"
)

// minimumVotes is the number of votes an address needs at a given
// height before it becomes that height's provisional winner.
const minimumVotes = 8

// winnerRetentionBlocks is how far behind the current vote height a
// tally or provisional-winner entry may fall before it is pruned.
const winnerRetentionBlocks = 4

// candidateRetention is how long an unused candidate registry entry
// survives before it is pruned.
const candidateRetention = 20 * time.Minute

// candidateRateLimit is the minimum spacing, when rate limiting is
// enabled, between two selections of the same candidate. Per spec this
// is a testing aid, not a network consensus rule.
const candidateRateLimit = time.Hour

// voteHeightOffset is the number of blocks ahead of the tip that a vote
// targets: votes are always cast for tip+2.
const voteHeightOffset = 2

// RecentEndpoint is the address-book view of a peer: its network
// location and the wallet address it last gossiped alongside.
type RecentEndpoint struct {
	IP            net.IP
	Port          uint16
	WalletAddress string
}

// IsRoutable reports whether the endpoint is eligible for distance
// ranking. Loopback, multicast, and unspecified addresses are excluded.
func (e RecentEndpoint) IsRoutable() bool {
	return !(e.IP.IsLoopback() || e.IP.IsMulticast() || e.IP.IsUnspecified())
}

// key uniquely identifies an endpoint by network location, independent
// of the wallet address it is currently advertising.
func (e RecentEndpoint) key() string {
	return net.JoinHostPort(e.IP.String(), portString(e.Port))
}

// Vote is a single incentive vote: a claim that Address should receive
// the reward for BlockHeight+2, signed (conceptually; signature
// verification is a transport/collaborator concern) by VoterPublicKey.
type Vote struct {
	VoterPublicKey []byte
	Address        string
	BlockHeight    uint32
	BlockHash      chainhash.Hash
	Score          int32
	Nonce          chainhash.Hash
}

// Eligible reports whether the vote's score permits it to be counted.
// A score of -1 or lower means the voter is ineligible.
func (v Vote) Eligible() bool {
	return v.Score > -1
}

// voteHeight is the height this vote targets: BlockHeight+2.
func (v Vote) voteHeight() uint32 {
	return v.BlockHeight + voteHeightOffset
}

// toWire converts a Vote to its wire representation for relay.
func (v Vote) toWire() *wire.MsgIVote {
	return wire.NewMsgIVote(v.BlockHeight, &v.BlockHash, v.Address,
		v.VoterPublicKey, v.Score, v.Nonce)
}

// voteFromWire converts a received wire.MsgIVote into a Vote.
func voteFromWire(msg *wire.MsgIVote) Vote {
	return Vote{
		VoterPublicKey: msg.VoterPublicKey,
		Address:        msg.Address,
		BlockHeight:    msg.BlockHeight,
		BlockHash:      msg.BlockHash,
		Score:          msg.Score,
		Nonce:          msg.Nonce,
	}
}

// CollateralClaim describes the local node's proof of collateral: an
// unspent output believed to be worth at least the collateral
// threshold, locked to the wallet's default address.
type CollateralClaim struct {
	Input   TxIn
	Balance float64 // in whole coins
	Valid   bool
}

// TxIn identifies a transaction input by the outpoint it spends. It
// stands in for wire.TxIn's previous outpoint; the incentive core never
// needs the rest of a TxIn (sequence, signature script) until it builds
// the sentinel transaction, which Wallet/Mempool collaborators do on
// its behalf.
type TxIn struct {
	Hash  chainhash.Hash
	Index uint32
}

// IsZero reports whether the input is the zero value, i.e. no
// collateral input has ever been found.
func (t TxIn) IsZero() bool {
	return t.Hash == chainhash.Hash{} && t.Index == 0
}
