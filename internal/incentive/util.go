// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package incentive

import "strconv"

// portString formats a port number for use in an endpoint key.
func portString(port uint16) string {
	return strconv.Itoa(int(port))
}

// truncate returns at most n bytes of s, used when logging sensitive
// identifiers (wallet addresses, public keys) at reduced fidelity, the
// same convention the original incentive manager used
// (`address().substr(0, 8)`).
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
