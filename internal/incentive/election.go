// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2015 John Connor (vanillacoin / vcash)
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package incentive

import (
	"bytes"
	"time"

	"github.com/EXCCoin/exccd/chaincfg/chainhash"
	"github.com/EXCCoin/exccd/dcrutil/v4"
	"github.com/EXCCoin/exccd/wire"
)

// defaultKClosestSize is K in k_closest(peers, target_height, K) when
// the caller does not override it, matching spec.md §4.1/§4.6 step 4's
// stated K=2: the election loop only ever acts on the two nearest
// endpoints by XOR distance, alternating between them by height parity.
// Callers may widen it via ManagerConfig.ElectionK without breaking the
// parity property, since ranking still flows through kClosest.
const defaultKClosestSize = 2

// useTimeRateLimit mirrors the original's use_time_rate_limit local,
// which is hardcoded false and left in as a manual testing knob. It is
// not a network consensus rule (spec.md §4.6 note).
const useTimeRateLimit = false

// ElectionLoop runs the periodic leader-election tick described in
// spec.md §4.6: it ranks recently-seen endpoints by XOR distance to the
// next vote height, alternates between the two closest by height
// parity, and casts a vote for the chosen candidate.
type ElectionLoop struct {
	chain      ChainView
	addrBook   AddressBook
	wallet     Wallet
	keys       KeySource
	peers      PeerManager
	isIBD      IsInitialBlockDownloadFunc
	candidates *CandidateRegistry
	tally      *Tally
	winners    *Winners
	ledger     *GlobalVoteLedger

	kClosestSize int

	lastBlockHeight uint32
}

// NewElectionLoop constructs an election loop wired to its
// collaborators and shared tables. kClosestSize is K in
// k_closest(peers, target_height, K); values below 2 fall back to
// defaultKClosestSize since the parity rule needs at least a primary
// and a secondary candidate to choose between.
func NewElectionLoop(
	chain ChainView,
	addrBook AddressBook,
	wallet Wallet,
	keys KeySource,
	peers PeerManager,
	isIBD IsInitialBlockDownloadFunc,
	candidates *CandidateRegistry,
	tally *Tally,
	winners *Winners,
	ledger *GlobalVoteLedger,
	kClosestSize int,
) *ElectionLoop {
	if isIBD == nil {
		isIBD = func() bool { return false }
	}
	if kClosestSize < 2 {
		kClosestSize = defaultKClosestSize
	}
	return &ElectionLoop{
		chain:        chain,
		addrBook:     addrBook,
		wallet:       wallet,
		keys:         keys,
		peers:        peers,
		isIBD:        isIBD,
		candidates:   candidates,
		tally:        tally,
		winners:      winners,
		ledger:       ledger,
		kClosestSize: kClosestSize,
	}
}

// ensureKey lazily derives the module's identity key from the wallet's
// default address the first time the wallet is unlocked, matching the
// original source's do_tick key bootstrap.
func (e *ElectionLoop) ensureKey() bool {
	if _, ok := e.keys.Key(); ok {
		return true
	}

	log.Debugf("incentive: key is null, trying wallet")

	if e.wallet.IsLocked() {
		log.Debugf("incentive: wallet is locked, will try again")
		return false
	}

	pub := e.wallet.DefaultPublicKey()
	if pub == nil {
		log.Errorf("incentive: failed to get key, no default public key")
		return false
	}

	keyID := dcrutil.Hash160(pub.SerializeCompressed())
	priv, ok := e.wallet.GetKey(keyID)
	if !ok {
		log.Errorf("incentive: failed to get key")
		return false
	}

	log.Debugf("incentive: setting key")
	e.keys.SetKey(priv)
	return true
}

// Tick runs a single election pass: it refreshes the identity key,
// prunes the shared tally/winners/ledger/candidate tables by the
// current vote height, ranks peers, and casts a vote for whichever
// candidate the parity rule and rate-limit fallback select (spec.md
// §4.6).
func (e *ElectionLoop) Tick() {
	if !e.ensureKey() {
		return
	}

	blockHeight := e.chain.BestHeight()
	if blockHeight <= e.lastBlockHeight {
		return
	}
	e.lastBlockHeight = blockHeight

	voteHeight := blockHeight + voteHeightOffset

	e.winners.Prune(voteHeight)
	e.tally.Prune(voteHeight)
	e.ledger.Prune(voteHeight)
	e.candidates.Prune(time.Now())

	endpoints := e.addrBook.RecentGoodEndpoints()
	kclosest := kClosest(endpoints, voteHeight, e.kClosestSize)

	if len(kclosest) < 2 {
		return
	}

	log.Debugf("incentive: kclosest0: %d:%s:%d", voteHeight, truncate(kclosest[0].IP.String(), 8), kclosest[0].Port)
	log.Debugf("incentive: kclosest1: %d:%s:%d", voteHeight, truncate(kclosest[1].IP.String(), 8), kclosest[1].Port)

	var winner RecentEndpoint
	if voteHeight%2 == 0 {
		winner = e.chooseCandidate(kclosest, 0, 1, voteHeight)
	} else {
		winner = e.chooseCandidate(kclosest, 1, 0, voteHeight)
	}

	if winner.WalletAddress == "" {
		return
	}

	if e.vote(winner.WalletAddress, voteHeight) {
		e.candidates.Touch(winner)
	}
}

// chooseCandidate implements the parity-selected primary/secondary
// choice and its linear fallback scan (spec.md §4.6 step 6, §9). The
// fallback's filter condition, candidates.Known(i), is preserved
// exactly as the original's candidates_.count(i) > 0 check, which
// favors endpoints that HAVE already been selected before rather than
// ones that have not — a known inversion of the stated intent,
// documented rather than silently corrected (see SPEC_FULL.md §3.5 and
// DESIGN.md).
func (e *ElectionLoop) chooseCandidate(kclosest []RecentEndpoint, primary, secondary int, voteHeight uint32) RecentEndpoint {
	log.Debugf("incentive: candidate: %d:%s:%d", voteHeight, truncate(kclosest[primary].IP.String(), 8), kclosest[primary].Port)

	if e.candidateEligible(kclosest[primary]) {
		return kclosest[primary]
	}

	log.Debugf("incentive: candidate %s:%d too soon", truncate(kclosest[primary].IP.String(), 8), kclosest[primary].Port)

	if e.candidateEligible(kclosest[secondary]) {
		return kclosest[secondary]
	}

	for _, cand := range kclosest {
		if e.candidates.Known(cand) && e.candidateEligible(cand) {
			return cand
		}
	}

	return RecentEndpoint{}
}

// candidateEligible reports whether an endpoint may currently be
// chosen, applying the (disabled by default) rate limit.
func (e *ElectionLoop) candidateEligible(endpoint RecentEndpoint) bool {
	if !useTimeRateLimit {
		return true
	}
	return !e.candidates.RecentlySelected(endpoint, time.Now())
}

// vote casts a vote for walletAddress at voteHeight: it forms an
// incentive vote, and if the vote's score clears the eligibility floor
// and the node is not syncing, records it in the vote ledger and relays
// it to every TCP peer and broadcasts it over the peer manager's secondary
// (UDP) path (spec.md §4.2, §6).
func (e *ElectionLoop) vote(walletAddress string, voteHeight uint32) bool {
	best, ok := e.chain.FindIndexByHeight(e.chain.BestHeight())
	if !ok {
		return true
	}

	key, ok := e.keys.Key()
	if !ok {
		return true
	}

	v := Vote{
		VoterPublicKey: key.PubKey().SerializeCompressed(),
		Address:        walletAddress,
		BlockHeight:    best.Height,
		BlockHash:      best.Hash,
		Nonce:          newNonce(best.Hash, walletAddress, best.Height),
	}
	v.Score = scoreForVote(v)

	log.Debugf("incentive: forming vote, calculated score = %d for %s", v.Score, truncate(v.Address, 8))

	if !v.Eligible() {
		return false
	}

	if e.isIBD() {
		return true
	}

	var buf bytes.Buffer
	msg := v.toWire()
	if err := msg.BtcEncode(&buf, 0); err != nil {
		log.Errorf("incentive: failed to encode vote, what = %v", err)
		return true
	}
	payload := buf.Bytes()

	e.ledger.Store(v)

	inv := wire.NewInvVect(wire.InvTypeIVote, &v.Nonce)

	for _, peer := range e.peers.TCPConnections() {
		peer.SendRelayedInv(&inv.Hash, payload)
	}
	e.peers.Broadcast(payload)

	return true
}

// scoreForVote derives the vote's eligibility score from the block
// hash it is cast against, reducing the hash to a 16-bit non-negative
// value by XOR-folding it two bytes at a time. Like calculateScore, it
// must be purely a function of publicly-known inputs so that every
// honest node computes the same score for the same vote (spec.md
// §4.2).
func scoreForVote(v Vote) int32 {
	sum := v.BlockHash[:]
	var acc uint32
	for i := 0; i+1 < len(sum); i += 2 {
		acc ^= uint32(sum[i])<<8 | uint32(sum[i+1])
	}
	return int32(acc &^ (1 << 31))
}

// newNonce derives a deterministic-but-unpredictable hash nonce for a
// locally cast vote from the fields that make it unique.
func newNonce(blockHash chainhash.Hash, address string, height uint32) chainhash.Hash {
	buf := make([]byte, 0, chainhash.HashSize+len(address)+4)
	buf = append(buf, blockHash[:]...)
	buf = append(buf, address...)
	buf = append(buf, byte(height), byte(height>>8), byte(height>>16), byte(height>>24))
	return chainhash.HashH(buf)
}
