// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2015 John Connor (vanillacoin / vcash)
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package incentive

import (
	"sort"
	"sync"

	"github.com/EXCCoin/exccd/chaincfg/chainhash"
)

// Tally is the per-height address->votes multimap described by
// spec.md §3. A vote is appended on arrival without deduplication by
// voter public key, matching the original source's behavior (spec.md
// §9's first open question: a misbehaving peer can inflate a count by
// repeat-sending; this is preserved, not fixed).
type Tally struct {
	mtx    sync.Mutex
	byAddr map[uint32]map[string][]Vote
}

// NewTally returns an empty vote tally.
func NewTally() *Tally {
	return &Tally{byAddr: make(map[uint32]map[string][]Vote)}
}

// Add appends vote to the tally under the given height and returns the
// new vote count for vote.Address at that height, along with the
// address currently holding the most votes at that height and its
// count (for provisional-winner recomputation).
func (t *Tally) Add(height uint32, vote Vote) (count int, leader string, leaderCount int) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	addrs, ok := t.byAddr[height]
	if !ok {
		addrs = make(map[string][]Vote)
		t.byAddr[height] = addrs
	}
	addrs[vote.Address] = append(addrs[vote.Address], vote)
	count = len(addrs[vote.Address])

	// Scan addresses in sorted order so that a tie in vote count is
	// always resolved the same way regardless of Go's randomized map
	// iteration, matching the original's std::map-ordered scan.
	sorted := make([]string, 0, len(addrs))
	for addr := range addrs {
		sorted = append(sorted, addr)
	}
	sort.Strings(sorted)

	for _, addr := range sorted {
		if len(addrs[addr]) > leaderCount {
			leaderCount = len(addrs[addr])
			leader = addr
		}
	}

	return count, leader, leaderCount
}

// CountsAt returns a snapshot of address->vote-count for the given
// height, used for logging and tests.
func (t *Tally) CountsAt(height uint32) map[string]int {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	addrs := t.byAddr[height]
	out := make(map[string]int, len(addrs))
	for addr, votes := range addrs {
		out[addr] = len(votes)
	}
	return out
}

// Prune removes every height entry more than winnerRetentionBlocks
// below voteHeight, i.e. every H with voteHeight-H > 4 (spec.md
// Invariant 2).
func (t *Tally) Prune(voteHeight uint32) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	for h := range t.byAddr {
		if h < voteHeight && voteHeight-h > winnerRetentionBlocks {
			delete(t.byAddr, h)
		}
	}
}

// Heights returns the set of heights currently present in the tally,
// used by tests asserting the pruning invariant.
func (t *Tally) Heights() []uint32 {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	out := make([]uint32, 0, len(t.byAddr))
	for h := range t.byAddr {
		out = append(out, h)
	}
	return out
}

// winnerEntry records a height's current provisional winner together
// with the vote count it was set at, so maybeSet can enforce the
// strictly-greater override rule even when a later tie reorders which
// address Tally.Add reports as leader.
type winnerEntry struct {
	addr  string
	count int
}

// Winners is the provisional-winners table of spec.md §3: height ->
// wallet-address, updated whenever an address's vote count crosses or
// remains above minimumVotes. Once set, a height's winner only changes
// when some other address's count strictly exceeds the leader's count
// (spec.md Invariant 5).
type Winners struct {
	mtx sync.Mutex
	m   map[uint32]winnerEntry
}

// NewWinners returns an empty provisional-winners table.
func NewWinners() *Winners {
	return &Winners{m: make(map[uint32]winnerEntry)}
}

// Get returns the provisional winner for height, if any.
func (w *Winners) Get(height uint32) (string, bool) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	entry, ok := w.m[height]
	return entry.addr, ok
}

// maybeSet records leader as the winner for height if leaderCount has
// reached the minimum vote threshold. Once a winner is set, it is only
// ever replaced by an address whose count strictly exceeds the stored
// winner's count, so a tie can never flip the winner away from whoever
// first reached it (spec.md Invariant 5).
func (w *Winners) maybeSet(height uint32, leader string, leaderCount int) (changed bool) {
	if leaderCount < minimumVotes {
		return false
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()

	current, ok := w.m[height]
	if ok && current.addr == leader {
		// Same winner, refresh its recorded count so a later tying
		// address is compared against its true vote count.
		w.m[height] = winnerEntry{addr: leader, count: leaderCount}
		return false
	}
	if ok && leaderCount <= current.count {
		return false
	}
	w.m[height] = winnerEntry{addr: leader, count: leaderCount}
	return true
}

// Prune removes every height entry more than winnerRetentionBlocks
// below voteHeight (spec.md Invariant 2).
func (w *Winners) Prune(voteHeight uint32) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	for h := range w.m {
		if h < voteHeight && voteHeight-h > winnerRetentionBlocks {
			delete(w.m, h)
		}
	}
}

// GlobalVoteLedger is the incentive module's global `votes()` table
// (spec.md §6, §9): one entry per locally-cast vote, keyed by its hash
// nonce, used for inventory relay deduplication. It is distinct from
// Tally, which counts inbound votes per height/address; this ledger
// only ever holds votes this node itself cast. Pruned by the vote's own
// recorded height, exactly as the original source does (see
// SPEC_FULL.md §0).
type GlobalVoteLedger struct {
	mtx sync.Mutex
	m   map[chainhash.Hash]Vote
}

// NewGlobalVoteLedger returns an empty global vote ledger.
func NewGlobalVoteLedger() *GlobalVoteLedger {
	return &GlobalVoteLedger{m: make(map[chainhash.Hash]Vote)}
}

// Store records vote under its hash nonce.
func (l *GlobalVoteLedger) Store(vote Vote) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.m[vote.Nonce] = vote
}

// Prune removes every stored vote whose own block height is more than
// winnerRetentionBlocks behind voteHeight.
func (l *GlobalVoteLedger) Prune(voteHeight uint32) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	for nonce, v := range l.m {
		if voteHeight-v.BlockHeight > winnerRetentionBlocks {
			delete(l.m, nonce)
		}
	}
}

// Len returns the number of votes currently recorded, used by tests.
func (l *GlobalVoteLedger) Len() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return len(l.m)
}
