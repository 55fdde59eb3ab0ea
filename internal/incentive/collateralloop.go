// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2015 John Connor (vanillacoin / vcash)
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package incentive

// checkInputsInterval is the original's do_tick_check_inputs cadence
// of 10 minutes, run after the first tick fires at checkInputsStartupDelay
// (see manager.go).
const checkInputsInterval = 10 * 60 // seconds

// CollateralLoop drives the periodic collateral revalidation/
// rediscovery cycle of spec.md §4.7. It is a thin scheduling wrapper
// around CollateralProver.Tick; the manager decides the timer cadence
// (see manager.go), this type just holds the prover it drives.
type CollateralLoop struct {
	prover *CollateralProver
}

// NewCollateralLoop returns a collateral loop driving prover.
func NewCollateralLoop(prover *CollateralProver) *CollateralLoop {
	return &CollateralLoop{prover: prover}
}

// Tick runs one collateral check cycle.
func (c *CollateralLoop) Tick() {
	c.prover.Tick()
}

// Claim returns the underlying prover's current collateral claim.
func (c *CollateralLoop) Claim() CollateralClaim {
	return c.prover.Claim()
}
