// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2015 John Connor (vanillacoin / vcash)
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package incentive

import (
	"context"
	"sync"
	"time"

	"github.com/EXCCoin/exccd/dcrec/secp256k1/v4"
	"github.com/EXCCoin/exccd/dcrutil/v4"
	"github.com/EXCCoin/exccd/wire"
)

// electionInterval mirrors the original source's do_tick(8) cadence.
// checkInputsStartupDelay is spec.md §4.7's fixed 12 second delay before
// the collateral loop's first tick.
const (
	electionInterval        = 8 * time.Second
	checkInputsStartupDelay = 12 * time.Second
)

// keyStore is the concrete, mutex-guarded KeySource the manager owns.
// It stands in for the original's global incentive::instance() key
// slot, scoped instead to one Manager (spec.md §9 open question:
// recast as an explicit dependency rather than process-wide state).
type keyStore struct {
	mtx sync.RWMutex
	key *secp256k1.PrivateKey
}

func (k *keyStore) Key() (*secp256k1.PrivateKey, bool) {
	k.mtx.RLock()
	defer k.mtx.RUnlock()
	return k.key, k.key != nil
}

func (k *keyStore) SetKey(key *secp256k1.PrivateKey) {
	k.mtx.Lock()
	defer k.mtx.Unlock()
	k.key = key
}

// ManagerConfig supplies a Manager's collaborators and tunables
// (spec.md §6).
type ManagerConfig struct {
	Chain               ChainView
	AddrBook            AddressBook
	Wallet              Wallet
	Mempool             Mempool
	Peers               PeerManager
	IsInitialBlockDownload IsInitialBlockDownloadFunc

	// ElectionK is K in k_closest(peers, target_height, K). Values
	// below 2 fall back to a built-in default.
	ElectionK int

	// CollateralAtoms is the fixed self-collateral requirement; 0
	// disables the collateral prover and loop entirely, matching the
	// original's `if (incentive::instance().collateral > 0)` guard.
	CollateralAtoms dcrutil.Amount

	// Enabled corresponds to globals::is_incentive_enabled(): when
	// false, the message sink ignores inbound votes and the election
	// loop never runs.
	Enabled bool
}

// Manager is the incentive coordination core: it owns the shared
// tally/winners/vote-ledger/candidate tables and runs the election and
// collateral loops on a single dispatch goroutine, serializing them
// with inbound message handling the same way the original source's
// boost::asio::strand serializes its timers and handle_message calls
// (spec.md §7).
type Manager struct {
	cfg ManagerConfig

	keys       *keyStore
	tally      *Tally
	winners    *Winners
	ledger     *GlobalVoteLedger
	candidates *CandidateRegistry

	election   *ElectionLoop
	collateral *CollateralLoop
	sink       *Sink

	actions chan func()

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager constructs a manager from its collaborators. The shared
// tables (tally, winners, vote ledger, candidates) are created fresh
// and owned by the returned Manager.
func NewManager(cfg ManagerConfig) *Manager {
	keys := &keyStore{}
	tally := NewTally()
	winners := NewWinners()
	ledger := NewGlobalVoteLedger()
	candidates := NewCandidateRegistry()

	m := &Manager{
		cfg:        cfg,
		keys:       keys,
		tally:      tally,
		winners:    winners,
		ledger:     ledger,
		candidates: candidates,
		sink:       NewSink(tally, winners),
		actions:    make(chan func(), 64),
	}
	m.sink.SetEnabled(cfg.Enabled)

	m.election = NewElectionLoop(
		cfg.Chain, cfg.AddrBook, cfg.Wallet, keys, cfg.Peers,
		cfg.IsInitialBlockDownload, candidates, tally, winners, ledger,
		cfg.ElectionK,
	)

	if cfg.CollateralAtoms > 0 {
		prover := NewCollateralProver(cfg.Wallet, cfg.Mempool, keys, cfg.CollateralAtoms)
		m.collateral = NewCollateralLoop(prover)
	}

	return m
}

// Winners exposes the provisional-winners table for read-only RPC
// consumers (spec.md §4.8's winner query).
func (m *Manager) Winners() *Winners { return m.winners }

// CollateralBalance returns the currently-proven collateral balance in
// coins, or 0 if no collateral is configured or proven.
func (m *Manager) CollateralBalance() float64 {
	if m.collateral == nil {
		return 0
	}
	return m.collateral.Claim().Balance
}

// Start runs the manager's election and collateral timers on a single
// dispatch goroutine until the passed context is canceled or Stop is
// called.
func (m *Manager) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)

	m.wg.Add(1)
	go m.run(ctx)
}

// Stop halts the dispatch goroutine and waits for it to exit.
func (m *Manager) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
}

// HandleIVote enqueues an inbound vote for processing on the dispatch
// goroutine, serializing it with the periodic ticks the same way the
// original's strand serializes handle_message against do_tick (spec.md
// §7).
func (m *Manager) HandleIVote(msg *wire.MsgIVote) {
	m.dispatch(func() { m.sink.HandleIVote(msg) })
}

// dispatch enqueues fn to run on the manager's single dispatch
// goroutine. Actions queued before Start run once the dispatch
// goroutine starts; when the 64-slot queue is full the action is
// dropped with a warning.
func (m *Manager) dispatch(fn func()) {
	select {
	case m.actions <- fn:
	default:
		log.Warnf("incentive: dispatch queue full, dropping action")
	}
}

func (m *Manager) run(ctx context.Context) {
	defer m.wg.Done()

	electionTicker := time.NewTicker(electionInterval)
	defer electionTicker.Stop()

	var checkInputs <-chan time.Time
	if m.collateral != nil {
		t := time.NewTimer(checkInputsStartupDelay)
		defer t.Stop()
		checkInputs = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return

		case fn := <-m.actions:
			fn()

		case <-electionTicker.C:
			if m.cfg.Enabled {
				m.election.Tick()
			}

		case <-checkInputs:
			m.collateral.Tick()
			checkInputs = time.After(checkInputsInterval * time.Second)
		}
	}
}
