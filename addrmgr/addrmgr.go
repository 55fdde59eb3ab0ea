// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package addrmgr tracks the endpoints the node has recently seen
// gossiped on the network, remembering each one alongside the
// wallet-address its owner advertised itself under.
package addrmgr

import (
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/decred/slog"
)

// goodAddressAge is how long an endpoint remains eligible for
// RecentGoodEndpoints after it was last refreshed by Good.
const goodAddressAge = 30 * time.Minute

// log is the package-level logger used for debug and informational
// output. By default it is disabled; callers wire a real backend with
// UseLogger.
var log = slog.Disabled

// UseLogger sets the package-wide logger used for debug output. This
// should be called before any Manager method.
func UseLogger(logger slog.Logger) {
	log = logger
}

// RecentEndpoint is a peer endpoint the manager has recently observed,
// together with the wallet address its owner advertised alongside it.
// This is the (IPv4 address, port, wallet-address) tuple of the
// incentive coordination protocol's data model.
type RecentEndpoint struct {
	IP            net.IP
	Port          uint16
	WalletAddress string

	lastSeen time.Time
}

// IsRoutable reports whether the endpoint's address is a candidate for
// the distance ranking: loopback, multicast, and unspecified addresses
// are excluded.
func (e RecentEndpoint) IsRoutable() bool {
	ip := e.IP
	return !(ip.IsLoopback() || ip.IsMulticast() || ip.IsUnspecified())
}

// key returns the map key for an endpoint, ignoring the wallet address
// since the same IP:port should not be tracked twice even if it
// re-announces under a different address.
func key(ip net.IP, port uint16) string {
	return net.JoinHostPort(ip.String(), strconv.Itoa(int(port)))
}

// Manager tracks recently-seen peer endpoints. It is the address-book
// collaborator consumed by the incentive coordination core.
type Manager struct {
	mtx   sync.RWMutex
	peers map[string]*RecentEndpoint
}

// New returns a new, empty address manager.
func New() *Manager {
	return &Manager{
		peers: make(map[string]*RecentEndpoint),
	}
}

// AddEndpoint records that ip:port was seen gossiping on behalf of
// walletAddress. If the endpoint is already known, its wallet address
// and freshness are updated.
func (m *Manager) AddEndpoint(ip net.IP, port uint16, walletAddress string) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	k := key(ip, port)
	e, ok := m.peers[k]
	if !ok {
		e = &RecentEndpoint{IP: ip, Port: port}
		m.peers[k] = e
	}
	e.WalletAddress = walletAddress
	e.lastSeen = time.Now()

	log.Debugf("addrmgr: added endpoint %s:%d (%.8s)", ip, port, walletAddress)
}

// Good marks ip:port as currently reachable, refreshing its freshness
// so it continues to be returned by RecentGoodEndpoints.
func (m *Manager) Good(ip net.IP, port uint16) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if e, ok := m.peers[key(ip, port)]; ok {
		e.lastSeen = time.Now()
	}
}

// RecentGoodEndpoints returns a snapshot of the endpoints seen within
// goodAddressAge, in no particular order. This implements the address
// book collaborator's recent_good_endpoints() contract (spec.md §6).
func (m *Manager) RecentGoodEndpoints() []RecentEndpoint {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	cutoff := time.Now().Add(-goodAddressAge)

	out := make([]RecentEndpoint, 0, len(m.peers))
	for _, e := range m.peers {
		if e.lastSeen.Before(cutoff) {
			continue
		}
		out = append(out, *e)
	}
	return out
}

// Count returns the number of endpoints currently tracked, good or not.
func (m *Manager) Count() int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return len(m.peers)
}
