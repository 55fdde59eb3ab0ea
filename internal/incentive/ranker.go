// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2015 John Connor (vanillacoin / vcash)
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package incentive

import "sort"

// rankedEndpoint pairs an endpoint with its XOR distance to a target
// height, so the slice can be sorted once and truncated to K.
type rankedEndpoint struct {
	distance uint32
	endpoint RecentEndpoint
}

// kClosest returns at most k peers from nodes whose XOR distance to
// targetHeight is smallest, ascending. Loopback, multicast, and
// unspecified addresses are excluded. This is the Kademlia-style
// distance ranker of spec.md §4.1: it implements k_closest(peers,
// target_height, K).
func kClosest(nodes []RecentEndpoint, targetHeight uint32, k int) []RecentEndpoint {
	entries := make([]rankedEndpoint, 0, len(nodes))

	for _, n := range nodes {
		if !n.IsRoutable() {
			continue
		}

		distance := targetHeight ^ calculateScore(n.IP, n.Port)
		entries = append(entries, rankedEndpoint{distance: distance, endpoint: n})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].distance < entries[j].distance
	})

	if len(entries) > k {
		entries = entries[:k]
	}

	out := make([]RecentEndpoint, len(entries))
	for i, e := range entries {
		out[i] = e.endpoint
	}
	return out
}
