// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sync"

	"github.com/EXCCoin/exccd/addrmgr/v2"
	"github.com/EXCCoin/exccd/chaincfg/chainhash"
	"github.com/EXCCoin/exccd/connmgr/v3"
	"github.com/EXCCoin/exccd/dcrec/secp256k1/v4"
	"github.com/VcashCommunity/vcashd/internal/incentive"
	"github.com/VcashCommunity/vcashd/mempool"
	"github.com/VcashCommunity/vcashd/wallet"
)

// peerManagerAdapter implements incentive.PeerManager in terms of the
// connection manager's own peer type.
type peerManagerAdapter struct {
	cm *connmgr.ConnManager
}

func (a peerManagerAdapter) TCPConnections() []incentive.Peer {
	peers := a.cm.TCPConnections()
	out := make([]incentive.Peer, len(peers))
	for i, p := range peers {
		out[i] = p
	}
	return out
}

func (a peerManagerAdapter) Broadcast(payload []byte) {
	a.cm.Broadcast(payload)
}

// addrBookAdapter implements incentive.AddressBook in terms of the
// address manager's own recent-endpoint type.
type addrBookAdapter struct {
	m *addrmgr.Manager
}

func (a addrBookAdapter) RecentGoodEndpoints() []incentive.RecentEndpoint {
	endpoints := a.m.RecentGoodEndpoints()
	out := make([]incentive.RecentEndpoint, len(endpoints))
	for i, e := range endpoints {
		out[i] = incentive.RecentEndpoint{
			IP:            e.IP,
			Port:          e.Port,
			WalletAddress: e.WalletAddress,
		}
	}
	return out
}

// walletAdapter implements incentive.Wallet in terms of the wallet
// package's concrete type, translating its locally-defined
// SpendableOutput/TxIn into the incentive package's own (identical in
// shape, but intentionally distinct so neither package imports the
// other just for these two structs).
type walletAdapter struct {
	w *wallet.Wallet
}

func (a walletAdapter) IsLocked() bool                          { return a.w.IsLocked() }
func (a walletAdapter) DefaultPublicKey() *secp256k1.PublicKey   { return a.w.DefaultPublicKey() }
func (a walletAdapter) GetKey(keyID []byte) (*secp256k1.PrivateKey, bool) {
	return a.w.GetKey(keyID)
}

func (a walletAdapter) AvailableCoins(includeZeroConf bool) []incentive.SpendableOutput {
	coins := a.w.AvailableCoins(includeZeroConf)
	out := make([]incentive.SpendableOutput, len(coins))
	for i, c := range coins {
		out[i] = incentive.SpendableOutput{
			Input:     incentive.TxIn{Hash: c.Input.Hash, Index: c.Input.Index},
			Value:     c.Value,
			PkScript:  c.PkScript,
			ScriptVer: c.ScriptVer,
		}
	}
	return out
}

// mempoolAdapter implements incentive.Mempool in terms of the mempool
// package's probe-only TxPool.
type mempoolAdapter struct {
	p *mempool.TxPool
}

func (a mempoolAdapter) Acceptable(tx incentive.SentinelTx) (bool, error) {
	return a.p.Acceptable(mempool.ProbeTx{
		Input:    mempool.Outpoint{Hash: tx.Input.Hash, Index: tx.Input.Index},
		OutAtoms: tx.PayAtoms,
	})
}

// chainView is a minimal in-memory ChainView: a height-indexed journal
// of block hashes appended as the node connects blocks. It stands in
// for the full block index a consensus engine outside this core's
// scope would own.
type chainView struct {
	mtx    sync.RWMutex
	byHeight map[uint32]chainhash.Hash
	best   uint32
}

func newChainView() *chainView {
	return &chainView{byHeight: make(map[uint32]chainhash.Hash)}
}

// Connect records height as the new best block, with the given hash.
func (c *chainView) Connect(height uint32, hash chainhash.Hash) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.byHeight[height] = hash
	if height > c.best {
		c.best = height
	}
}

func (c *chainView) BestHeight() uint32 {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.best
}

func (c *chainView) FindIndexByHeight(height uint32) (incentive.BlockIndexEntry, bool) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	hash, ok := c.byHeight[height]
	if !ok {
		return incentive.BlockIndexEntry{}, false
	}
	return incentive.BlockIndexEntry{Height: height, Hash: hash}, true
}
