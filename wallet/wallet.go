// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet is a minimal in-memory wallet: it tracks spendable
// outputs under a single derived key and answers the small set of
// queries the incentive coordination core needs (default address,
// spendable coins, private key lookup). It intentionally does not
// implement a full HD hierarchy, transaction construction, or chain
// sync; those belong to a standalone wallet process, not this node's
// incentive core.
package wallet

import (
	"sync"

	"github.com/EXCCoin/exccd/chaincfg/chainhash"
	"github.com/EXCCoin/exccd/dcrec/secp256k1/v4"
	"github.com/EXCCoin/exccd/dcrutil/v4"
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

// UTXO is a single output tracked by the wallet: its locking script,
// value, and confirmation state.
type UTXO struct {
	Outpoint  Outpoint
	PkScript  []byte
	ScriptVer uint16
	Value     dcrutil.Amount
	Confirmed bool
}

// Outpoint identifies a transaction output.
type Outpoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// Wallet is a minimal single-key in-memory wallet.
type Wallet struct {
	mtx sync.RWMutex

	locked bool
	key    *secp256k1.PrivateKey
	utxos  map[Outpoint]*UTXO
}

// New returns a wallet holding priv as its only spending key, starting
// unlocked and with no tracked outputs.
func New(priv *secp256k1.PrivateKey) *Wallet {
	return &Wallet{
		key:   priv,
		utxos: make(map[Outpoint]*UTXO),
	}
}

// Lock marks the wallet locked; IsLocked and the key/default-address
// queries the incentive core depends on will refuse key access while
// locked, matching the original source's is_locked() gate.
func (w *Wallet) Lock() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.locked = true
}

// Unlock marks the wallet unlocked.
func (w *Wallet) Unlock() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.locked = false
}

// IsLocked reports whether the wallet is currently locked.
func (w *Wallet) IsLocked() bool {
	w.mtx.RLock()
	defer w.mtx.RUnlock()
	return w.locked
}

// DefaultPublicKey returns the wallet's one spending key's public
// half, or nil while locked.
func (w *Wallet) DefaultPublicKey() *secp256k1.PublicKey {
	w.mtx.RLock()
	defer w.mtx.RUnlock()
	if w.locked || w.key == nil {
		return nil
	}
	return w.key.PubKey()
}

// GetKey returns the wallet's private key if keyID matches its
// derived identifier (dcrutil.Hash160 of the compressed public key,
// i.e. RIPEMD160 of its double SHA-256), and the wallet is unlocked.
func (w *Wallet) GetKey(keyID []byte) (*secp256k1.PrivateKey, bool) {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if w.locked || w.key == nil {
		return nil, false
	}

	want := dcrutil.Hash160(w.key.PubKey().SerializeCompressed())
	if len(keyID) != len(want) {
		return nil, false
	}
	for i := range want {
		if keyID[i] != want[i] {
			return nil, false
		}
	}
	return w.key, true
}

// AddUTXO registers an output as spendable by the wallet.
func (w *Wallet) AddUTXO(u *UTXO) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.utxos[u.Outpoint] = u
}

// RemoveUTXO removes a previously-tracked output, e.g. once spent.
func (w *Wallet) RemoveUTXO(op Outpoint) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	delete(w.utxos, op)
}

// AvailableCoins returns the wallet's currently tracked outputs. When
// includeZeroConf is false, unconfirmed outputs are excluded; the
// incentive core's coin selection always passes true, restoring the
// original source's available_coins(coins, true, 0) semantics of
// considering unconfirmed change as spendable collateral.
func (w *Wallet) AvailableCoins(includeZeroConf bool) []SpendableOutput {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	out := make([]SpendableOutput, 0, len(w.utxos))
	for _, u := range w.utxos {
		if !includeZeroConf && !u.Confirmed {
			continue
		}
		out = append(out, SpendableOutput{
			Input:     TxIn{Hash: u.Outpoint.Hash, Index: u.Outpoint.Index},
			Value:     int64(u.Value),
			PkScript:  u.PkScript,
			ScriptVer: u.ScriptVer,
		})
	}
	return out
}

// TxIn identifies a spent outpoint, mirroring the shape the incentive
// core's collaborator interfaces expect.
type TxIn struct {
	Hash  chainhash.Hash
	Index uint32
}

// SpendableOutput mirrors incentive.SpendableOutput without importing
// that package, keeping this wallet usable by anything, not just the
// incentive core.
type SpendableOutput struct {
	Input     TxIn
	Value     int64
	PkScript  []byte
	ScriptVer uint16
}
