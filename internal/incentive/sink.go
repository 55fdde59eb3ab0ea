// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2015 John Connor (vanillacoin / vcash)
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package incentive

import (
	"strconv"

	"github.com/EXCCoin/exccd/wire"
)

// Sink is the message-handling half of the incentive core (spec.md
// §4.2, the original's handle_message): it receives inbound ivote
// messages from peers, folds them into the shared tally, and
// provisionally promotes a leader once a height's vote count crosses
// the minimum. It gates on whether incentive processing is enabled
// itself: see SetEnabled and HandleIVote.
type Sink struct {
	enabled bool
	tally   *Tally
	winners *Winners
}

// NewSink returns a message sink writing into the given shared tally
// and provisional-winners tables.
func NewSink(tally *Tally, winners *Winners) *Sink {
	return &Sink{enabled: true, tally: tally, winners: winners}
}

// SetEnabled toggles whether HandleIVote processes incoming votes,
// mirroring globals::is_incentive_enabled().
func (s *Sink) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// HandleIVote processes one inbound ivote message. It returns true if
// the message was handled, even when the vote itself is discarded for
// having an ineligible score; it returns false only when incentive
// processing is disabled, matching handle_message's bool return for
// the "ivote" command (original_source/src/incentive_manager.cpp).
func (s *Sink) HandleIVote(msg *wire.MsgIVote) bool {
	if !s.enabled {
		return false
	}

	vote := voteFromWire(msg)
	if !vote.Eligible() {
		log.Debugf("incentive: discarding ineligible vote from %s", truncate(vote.Address, 8))
		return true
	}

	height := vote.voteHeight()

	log.Debugf("incentive: got vote for %d:%s", height, truncate(vote.Address, 8))

	count, leader, leaderCount := s.tally.Add(height, vote)
	_ = count

	log.Tracef("incentive: votes:\n%s", formatCounts(s.tally.CountsAt(height)))

	if leaderCount >= minimumVotes {
		if s.winners.maybeSet(height, leader, leaderCount) {
			log.Debugf("incentive: got winner %s for block %d", truncate(leader, 8), height)
		}
	}

	return true
}

// formatCounts renders a height's vote counts for debug logging, one
// address per line, mirroring the original's ss << "votes:\n" dump.
func formatCounts(counts map[string]int) string {
	out := ""
	i := 0
	for addr, n := range counts {
		i++
		out += "\t" + strconv.Itoa(i) + ". " + truncate(addr, 8) + ":" + strconv.Itoa(n) + "\n"
	}
	return out
}
