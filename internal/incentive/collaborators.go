// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2015 John Connor (vanillacoin / vcash)
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package incentive

import (
	"github.com/EXCCoin/exccd/chaincfg/chainhash"
	"github.com/EXCCoin/exccd/dcrec/secp256k1/v4"
)

// BlockIndexEntry is the minimal block-index view the core needs: a
// height/hash pair identifying the current best block.
type BlockIndexEntry struct {
	Height uint32
	Hash   chainhash.Hash
}

// ChainView is the chain-index collaborator consumed by the core
// (spec.md §6): best_height() and find_index_by_height(h).
type ChainView interface {
	BestHeight() uint32
	FindIndexByHeight(height uint32) (BlockIndexEntry, bool)
}

// AddressBook is the peer address-book collaborator (spec.md §6):
// recent_good_endpoints().
type AddressBook interface {
	RecentGoodEndpoints() []RecentEndpoint
}

// SpendableOutput is a wallet-controlled unspent transaction output, the
// unit select_coins() works over (spec.md §4.4).
type SpendableOutput struct {
	Input        TxIn
	Value        int64 // atoms
	PkScript     []byte
	ScriptVer    uint16
	KeyID        []byte // identifies the spending key for Wallet.GetKey
}

// Wallet is the wallet collaborator (spec.md §6): is_locked(),
// default_public_key(), get_key(key_id), available_coins().
type Wallet interface {
	IsLocked() bool
	DefaultPublicKey() *secp256k1.PublicKey
	GetKey(keyID []byte) (*secp256k1.PrivateKey, bool)
	AvailableCoins(includeZeroConf bool) []SpendableOutput
}

// SentinelTx is the non-broadcast, hypothetically-valid spend built to
// prove an input's spendability (spec.md's "sentinel transaction").
// What it contains beyond the spent input and paid amount is a detail
// of how Mempool.Acceptable evaluates it.
type SentinelTx struct {
	Input       TxIn
	PayAtoms    int64
	PayPkScript []byte
}

// Mempool is the mempool collaborator (spec.md §6): acceptable(tx).
type Mempool interface {
	Acceptable(tx SentinelTx) (bool, error)
}

// Peer is a single connected peer capable of relaying an inventory
// advertisement.
type Peer interface {
	SendRelayedInv(inv *chainhash.Hash, payload []byte)
}

// PeerManager is the peer-manager collaborator (spec.md §6):
// tcp_connections() and broadcast() (the UDP path).
type PeerManager interface {
	TCPConnections() []Peer
	Broadcast(payload []byte)
}

// KeySource is the incentive module's own identity: get_key()/set_key()
// and the collateral constant, recast per spec.md §9 as an injected,
// explicitly-locked store rather than an ambient global. It is owned by
// Manager (see keyStore in manager.go) but declared here alongside the other
// collaborator contracts since §6 lists it as one.
type KeySource interface {
	Key() (*secp256k1.PrivateKey, bool)
	SetKey(key *secp256k1.PrivateKey)
}

// IsInitialBlockDownloadFunc reports whether the node is still syncing.
// It is a free function collaborator (spec.md §4.6 step 3) rather than
// a method on one of the above interfaces because, in the original
// source, it is a global utility with no owning object.
type IsInitialBlockDownloadFunc func() bool
