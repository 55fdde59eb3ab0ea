// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2015 John Connor (vanillacoin / vcash)
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package incentive

import (
	"encoding/binary"
	"net"

	"github.com/dchest/siphash"
)

// scoreKey0 and scoreKey1 seed the siphash used to derive an endpoint's
// distance-ranking score. They are fixed so that every honest node
// derives the same score for the same endpoint, which is the premise
// the vote tally's convergence relies on (spec.md §4.1).
const (
	scoreKey0 = 0x76636173685f6b30 // "vcash_k0"
	scoreKey1 = 0x76636173685f6b31 // "vcash_k1"
)

// calculateScore derives a deterministic 32-bit value from a peer
// endpoint's IPv4 address and port. It is the incentive module's
// calculate_score(endpoint) contract (spec.md §6): every node computes
// the same score for the same endpoint so that k_closest converges
// across the network without any coordination beyond a shared peer
// view.
func calculateScore(ip net.IP, port uint16) uint32 {
	v4 := ip.To4()
	buf := make([]byte, 0, 6)
	if v4 != nil {
		buf = append(buf, v4...)
	} else {
		buf = append(buf, ip.To16()...)
	}
	var portBytes [2]byte
	binary.BigEndian.PutUint16(portBytes[:], port)
	buf = append(buf, portBytes[:]...)

	h := siphash.Hash(scoreKey0, scoreKey1, buf)
	return uint32(h)
}
