// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package connmgr manages the node's outbound connections, including
// the UDP broadcast path the incentive coordination core uses as its
// secondary vote-relay channel alongside TCP peer relay.
package connmgr

import (
	"net"
	"sync"

	"github.com/EXCCoin/exccd/peer/v3"
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

// ConnManager tracks the node's live TCP peers and its UDP broadcast
// socket. It implements both halves of the incentive core's peer
// manager collaborator (spec.md §6): tcp_connections() and the UDP
// broadcast() path (the original's database_stack broadcast).
type ConnManager struct {
	mtx   sync.RWMutex
	peers map[string]*peer.Peer

	udpConn *net.UDPConn
	udpDst  []*net.UDPAddr
}

// New returns a connection manager with no tracked peers. udpConn may
// be nil, in which case Broadcast is a no-op; this lets a node run
// with incentive coordination's UDP path disabled without special
// casing callers.
func New(udpConn *net.UDPConn) *ConnManager {
	return &ConnManager{
		peers:   make(map[string]*peer.Peer),
		udpConn: udpConn,
	}
}

// AddPeer registers p as a live connection.
func (cm *ConnManager) AddPeer(p *peer.Peer) {
	cm.mtx.Lock()
	defer cm.mtx.Unlock()
	cm.peers[p.Addr()] = p
}

// RemovePeer stops tracking the peer at addr.
func (cm *ConnManager) RemovePeer(addr string) {
	cm.mtx.Lock()
	defer cm.mtx.Unlock()
	delete(cm.peers, addr)
}

// TCPConnections returns a snapshot of the currently tracked peers.
func (cm *ConnManager) TCPConnections() []*peer.Peer {
	cm.mtx.RLock()
	defer cm.mtx.RUnlock()

	out := make([]*peer.Peer, 0, len(cm.peers))
	for _, p := range cm.peers {
		out = append(out, p)
	}
	return out
}

// AddBroadcastTarget registers a UDP destination payloads are sent to
// by Broadcast, e.g. a local subnet broadcast address or a fixed set
// of known relay nodes.
func (cm *ConnManager) AddBroadcastTarget(addr *net.UDPAddr) {
	cm.mtx.Lock()
	defer cm.mtx.Unlock()
	cm.udpDst = append(cm.udpDst, addr)
}

// Broadcast sends payload to every registered UDP destination. Errors
// are logged rather than returned since the UDP path is best-effort by
// design, matching the original's fire-and-forget database_stack
// broadcast.
func (cm *ConnManager) Broadcast(payload []byte) {
	if cm.udpConn == nil {
		return
	}

	cm.mtx.RLock()
	targets := make([]*net.UDPAddr, len(cm.udpDst))
	copy(targets, cm.udpDst)
	cm.mtx.RUnlock()

	for _, addr := range targets {
		if _, err := cm.udpConn.WriteToUDP(payload, addr); err != nil {
			log.Debugf("connmgr: udp broadcast to %s failed, what = %v", addr, err)
		}
	}
}
