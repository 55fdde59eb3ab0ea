// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2018 The ExchangeCoin team
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dcrutil

import (
	"errors"
	"math"
	"strconv"
)

// AmountUnit describes a method of converting an Amount to something
// other than the base unit string.
type AmountUnit int

// These constants define various units used when formatting an amount.
const (
	AmountMegaCoin  AmountUnit = 6
	AmountKiloCoin  AmountUnit = 3
	AmountCoin      AmountUnit = 0
	AmountMilliCoin AmountUnit = -3
	AmountMicroCoin AmountUnit = -6
	AmountAtom      AmountUnit = -8
)

// String returns the unit as a string.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaCoin:
		return "MCoin"
	case AmountKiloCoin:
		return "kCoin"
	case AmountCoin:
		return "Coin"
	case AmountMilliCoin:
		return "mCoin"
	case AmountMicroCoin:
		return "μCoin"
	case AmountAtom:
		return "Atom"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " Coin"
	}
}

// AtomsPerCoin is the number of atoms in one coin.
//
// collateral thresholds expressed in whole coins (spec.md §4.4's
// "collateral × coin_unit") are scaled by this constant before being
// compared against transaction output values, which are always expressed
// in atoms.
const AtomsPerCoin = 1e8

// MaxAmount is the maximum transaction amount allowed, in atoms.
const MaxAmount = 21e6 * AtomsPerCoin

// Amount represents the base coin monetary unit (colloquially referred
// to as an `Atom'). A single Amount is equal to 1e-8 of a coin.
type Amount int64

// round converts a floating point number, which may or may not be
// representing an amount of coins, to the nearest Amount (atom)
// equivalent.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing
// whole coins.  NewAmount errors if f is NaN or +-Infinity, but does not
// check that the amount is within the total amount of coins producible
// by the network.
func NewAmount(f float64) (Amount, error) {
	switch {
	case math.IsNaN(f):
		fallthrough
	case math.IsInf(f, 1):
		fallthrough
	case math.IsInf(f, -1):
		return 0, errors.New("invalid coin amount")
	}

	return round(f * AtomsPerCoin), nil
}

// ToUnit converts a monetary amount counted in coin base units to a
// floating point value representing an amount of the given unit.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToCoin is a convenience function for calling ToUnit with AmountCoin.
func (a Amount) ToCoin() float64 {
	return a.ToUnit(AmountCoin)
}

// String returns the string representation of the amount of coins.
func (a Amount) String() string {
	return strconv.FormatFloat(a.ToCoin(), 'f', 8, 64) + " " + AmountCoin.String()
}

// MulF64 multiplies an Amount by a floating point value, rounding the
// result to the nearest atom.
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}
