// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mempool tracks unconfirmed transactions and the outpoints
// they spend, and answers whether a hypothetical transaction could be
// accepted into the pool without actually admitting it — the probe the
// incentive core's collateral prover relies on to confirm an output is
// still spendable.
package mempool

import (
	"fmt"
	"sync"

	"github.com/EXCCoin/exccd/chaincfg/chainhash"
	"github.com/decred/slog"
)

// log is the package-level logger used for debug and informational
// output. By default it is disabled; callers wire a real backend with
// UseLogger.
var log = slog.Disabled

// UseLogger sets the package-wide logger used for debug output.
func UseLogger(logger slog.Logger) {
	log = logger
}

// Outpoint identifies a transaction output by its containing
// transaction hash and output index.
type Outpoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// UTXOSource reports whether an outpoint is a known, currently unspent
// transaction output on the confirmed chain, and its value in atoms.
// The pool consults this for every input of a probed transaction since
// it holds no UTXO set of its own.
type UTXOSource interface {
	LookupUTXO(op Outpoint) (atoms int64, exists bool)
}

// TxPool is a minimal mempool: it tracks which outpoints are currently
// spent by pool transactions (to reject double-spends) and exposes
// Acceptable, the non-mutating probe the incentive core uses to test a
// sentinel transaction without ever admitting it to the pool (spec.md
// §4.4).
type TxPool struct {
	mtx      sync.RWMutex
	utxo     UTXOSource
	outpoints map[Outpoint]chainhash.Hash // spent by pool tx hash
}

// New returns an empty transaction pool backed by utxo for confirmed
// output lookups.
func New(utxo UTXOSource) *TxPool {
	return &TxPool{
		utxo:      utxo,
		outpoints: make(map[Outpoint]chainhash.Hash),
	}
}

// ProbeTx is the minimal shape of a transaction the pool needs in
// order to evaluate acceptability: a single spent input and the value
// it must carry forward to its output. This mirrors the sentinel
// transactions the incentive core's collateral prover builds — a
// one-input, one-output spend that is never actually broadcast.
type ProbeTx struct {
	Input    Outpoint
	OutAtoms int64
}

// Acceptable reports whether tx could be admitted to the pool: its
// input must reference an output that the UTXOSource reports, with
// enough value to cover the requested output amount, and
// must not already be spent by another pool entry. This mirrors
// transaction_pool::acceptable's role in the original incentive
// manager: a way to test spendability without broadcasting.
func (p *TxPool) Acceptable(tx ProbeTx) (bool, error) {
	p.mtx.RLock()
	defer p.mtx.RUnlock()

	if spender, spent := p.outpoints[tx.Input]; spent {
		return false, fmt.Errorf("mempool: output %v already spent by %v", tx.Input, spender)
	}

	atoms, exists := p.utxo.LookupUTXO(tx.Input)
	if !exists {
		return false, fmt.Errorf("mempool: output %v not found", tx.Input)
	}

	if atoms < tx.OutAtoms {
		return false, fmt.Errorf("mempool: output %v value %d below requested %d", tx.Input, atoms, tx.OutAtoms)
	}

	return true, nil
}

// MarkSpent records that outpoint op is now spent by pool transaction
// txHash, used by normal (non-probe) pool admission.
func (p *TxPool) MarkSpent(op Outpoint, txHash chainhash.Hash) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.outpoints[op] = txHash
}

// ClearSpent removes a spend record, used when a pool transaction is
// removed (mined or evicted).
func (p *TxPool) ClearSpent(op Outpoint) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	delete(p.outpoints, op)
}

// Len returns the number of outpoints currently marked spent, used by
// tests.
func (p *TxPool) Len() int {
	p.mtx.RLock()
	defer p.mtx.RUnlock()
	return len(p.outpoints)
}
