// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package peer implements the TCP peer connection used to relay
// protocol messages, trimmed to the inventory-relay path the incentive
// coordination core needs: advertising an ivote by its inventory
// vector and payload.
package peer

import (
	"net"
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

// outMsg is a queued outbound relay: an inventory hash paired with its
// already-encoded payload.
type outMsg struct {
	inv     *chainhash.Hash
	payload []byte
}

// Peer represents a single outbound or inbound connection to a remote
// node. It owns a bounded send queue drained by a single writer
// goroutine, so a slow or hostile peer cannot block the caller of
// SendRelayedInv.
type Peer struct {
	conn net.Conn
	addr string

	outbound chan outMsg
	quit     chan struct{}
	wg       sync.WaitGroup
}

// New wraps conn as a Peer and starts its writer goroutine.
func New(conn net.Conn) *Peer {
	p := &Peer{
		conn:     conn,
		addr:     conn.RemoteAddr().String(),
		outbound: make(chan outMsg, 32),
		quit:     make(chan struct{}),
	}
	p.wg.Add(1)
	go p.writeHandler()
	return p
}

// Addr returns the remote address this peer is connected to.
func (p *Peer) Addr() string { return p.addr }

// SendRelayedInv queues a previously-encoded message for delivery,
// identified by the inventory hash it advertises (spec.md §6's
// tcp_connections()[i].send_relayed_inv_message).
func (p *Peer) SendRelayedInv(inv *chainhash.Hash, payload []byte) {
	select {
	case p.outbound <- outMsg{inv: inv, payload: payload}:
	case <-p.quit:
	default:
		log.Warnf("peer %s: send queue full, dropping relay of %v", p.addr, inv)
	}
}

// Disconnect closes the peer's connection and stops its writer.
func (p *Peer) Disconnect() {
	select {
	case <-p.quit:
	default:
		close(p.quit)
	}
	p.conn.Close()
	p.wg.Wait()
}

func (p *Peer) writeHandler() {
	defer p.wg.Done()
	for {
		select {
		case msg := <-p.outbound:
			if _, err := p.conn.Write(msg.payload); err != nil {
				log.Errorf("peer %s: write failed, what = %v", p.addr, err)
				return
			}
		case <-p.quit:
			return
		}
	}
}
