// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2015 John Connor (vanillacoin / vcash)
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package incentive

import (
	"bytes"
	"fmt"

	"github.com/EXCCoin/exccd/dcrutil/v4"
	"github.com/EXCCoin/exccd/txscript/v4/stdscript"
)

// CollateralProver holds the module's one collateral claim and
// revalidates or rediscovers it against the wallet and mempool
// (spec.md §4.4, §4.7). It is the Go rendering of incentive_manager's
// m_collateral_is_valid / m_collateral_balance / get_transaction_in /
// select_coins / tx_in_from_output cluster.
type CollateralProver struct {
	wallet  Wallet
	mempool Mempool
	keys    KeySource

	collateral dcrutil.Amount // required collateral, in atoms

	claim CollateralClaim
}

// NewCollateralProver returns a prover requiring collateralAtoms atoms
// of spendable value at the identity key's default address.
func NewCollateralProver(wallet Wallet, mempool Mempool, keys KeySource, collateralAtoms dcrutil.Amount) *CollateralProver {
	return &CollateralProver{
		wallet:     wallet,
		mempool:    mempool,
		keys:       keys,
		collateral: collateralAtoms,
	}
}

// Claim returns the prover's current collateral claim.
func (p *CollateralProver) Claim() CollateralClaim {
	return p.claim
}

// defaultPkScript builds the pay-to-pubkey-hash script paying the
// identity key's own address, the destination both the revalidation
// probe and the rediscovery probe spend to (mirrors script_collateral
// in the original's do_tick_check_inputs).
func defaultPkScript(wallet Wallet) ([]byte, error) {
	pub := wallet.DefaultPublicKey()
	if pub == nil {
		return nil, fmt.Errorf("incentive: wallet has no default public key")
	}
	return payToPubKeyHashScript(pub.SerializeCompressed()), nil
}

// payToPubKeyHashScript is the minimal P2PKH script builder this
// package needs; txscript's own builder requires a full chain params
// context this package does not carry, so the four opcodes are
// assembled directly, matching the fixed-template scripts the original
// source's script::set_destination produces.
func payToPubKeyHashScript(pubKey []byte) []byte {
	h := dcrutil.Hash160(pubKey)
	script := make([]byte, 0, 25)
	script = append(script, 0x76, 0xa9, 0x14) // OP_DUP OP_HASH160 PUSH(20)
	script = append(script, h...)
	script = append(script, 0x88, 0xac) // OP_EQUALVERIFY OP_CHECKSIG
	return script
}

// Revalidate checks whether the current claim, if any, is still
// spendable by probing a sentinel transaction through the mempool
// (spec.md §4.4 step 1, §4.7). It reports whether the existing claim
// remains valid.
func (p *CollateralProver) Revalidate() bool {
	if p.collateral <= 0 {
		return false
	}

	key, ok := p.keys.Key()
	if !ok || key == nil {
		p.claim.Valid = false
		log.Errorf("incentive: failed to find collateral input, wallet is locked")
		return false
	}

	if p.claim.Input.IsZero() {
		return false
	}

	dest, err := defaultPkScript(p.wallet)
	if err != nil {
		p.claim.Valid = false
		log.Errorf("incentive: detected invalid collateral, what = %v", err)
		return false
	}

	sentinel := SentinelTx{
		Input:       p.claim.Input,
		PayAtoms:    int64(p.collateral),
		PayPkScript: dest,
	}

	ok, err = p.mempool.Acceptable(sentinel)
	if err != nil || !ok {
		log.Errorf("incentive: detected spent collateral, will keep looking")
		p.claim.Valid = false
		return false
	}

	log.Debugf("incentive: detected valid collateral")
	p.claim.Valid = true
	return true
}

// selectCoins filters the wallet's available coins (including
// unconfirmed ones, per the original's available_coins(coins, true, 0))
// down to those individually large enough to cover the collateral
// requirement. This mirrors incentive_manager::select_coins verbatim,
// including its choice to not aggregate multiple smaller outputs.
func (p *CollateralProver) selectCoins() []SpendableOutput {
	coins := p.wallet.AvailableCoins(true)

	var ret []SpendableOutput
	for _, c := range coins {
		if c.Value >= int64(p.collateral) {
			ret = append(ret, c)
		}
	}
	return ret
}

// txInFromOutput validates that out's locking script pays the identity
// key's own default address, refusing to build a tx_in otherwise
// (mirrors incentive_manager::tx_in_from_output's destination check).
func (p *CollateralProver) txInFromOutput(out SpendableOutput) (TxIn, bool) {
	pub := p.wallet.DefaultPublicKey()
	if pub == nil {
		return TxIn{}, false
	}

	pkh := stdscript.ExtractPubKeyHashV0(out.PkScript)
	if pkh == nil {
		log.Errorf("incentive: failed to get tx_in, unable to extract destination")
		return TxIn{}, false
	}

	ownPKH := dcrutil.Hash160(pub.SerializeCompressed())
	if !bytes.Equal(pkh, ownPKH) {
		log.Errorf("incentive: failed to get tx_in, address is not the default")
		return TxIn{}, false
	}

	return out.Input, true
}

// Rediscover scans the wallet's spendable coins for one that can serve
// as collateral, stopping at the first one that both belongs to the
// default address and passes the mempool's acceptable() probe (spec.md
// §4.4 step 2). It replaces the prover's claim on success.
func (p *CollateralProver) Rediscover() bool {
	if p.collateral <= 0 {
		return false
	}

	key, ok := p.keys.Key()
	if !ok || key == nil {
		log.Errorf("incentive: failed to find collateral input, wallet is locked")
		return false
	}

	dest, err := defaultPkScript(p.wallet)
	if err != nil {
		p.claim.Valid = false
		return false
	}

	for _, out := range p.selectCoins() {
		txIn, ok := p.txInFromOutput(out)
		if !ok {
			p.claim = CollateralClaim{}
			continue
		}

		log.Debugf("incentive: got tx_in = %v", txIn)

		sentinel := SentinelTx{
			Input:       txIn,
			PayAtoms:    int64(p.collateral),
			PayPkScript: dest,
		}

		accepted, err := p.mempool.Acceptable(sentinel)
		if err == nil && accepted {
			log.Debugf("incentive: found valid collateral input %v", txIn)
			p.claim = CollateralClaim{
				Input:   txIn,
				Balance: dcrutil.Amount(out.Value).ToCoin(),
				Valid:   true,
			}
			return true
		}

		log.Debugf("incentive: found invalid collateral input, checking more")
		p.claim = CollateralClaim{}
	}

	log.Errorf("incentive: failed to find collateral input, wallet has no candidates")
	return false
}

// Tick runs one revalidate-or-rediscover cycle: it tries to confirm the
// existing claim first, and only scans for a new one when that check
// fails or no claim exists yet (spec.md §4.4's combined step).
func (p *CollateralProver) Tick() bool {
	if p.collateral <= 0 {
		return false
	}

	if _, ok := p.keys.Key(); !ok {
		log.Errorf("incentive: failed to find collateral input, wallet is locked")
		return false
	}

	if p.Revalidate() {
		return true
	}
	return p.Rediscover()
}
