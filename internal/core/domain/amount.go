package domain

import (
	"math"
	"strconv"
	"strings"
)

// FromSatoshis formats a satoshi amount in the unit, trimming trailing zeros.
func (u Unit) FromSatoshis(sat int64) string {
	den := u.Denominator()
	if den <= 1 {
		return strconv.FormatInt(sat, 10)
	}

	// Magnitude in uint64 so math.MinInt64 negates without overflow.
	neg := sat < 0
	mag := uint64(sat)
	if neg {
		mag = -mag
	}
	digits := len(strconv.FormatInt(den, 10)) - 1
	whole := mag / uint64(den)
	frac := mag % uint64(den)

	s := strconv.FormatUint(whole, 10)
	if frac != 0 {
		fs := strconv.FormatUint(frac, 10)
		fs = strings.Repeat("0", digits-len(fs)) + fs
		s += "." + strings.TrimRight(fs, "0")
	}
	if neg {
		s = "-" + s
	}
	return s
}

// FiatValue converts satoshis to a fiat amount given the price of one bitcoin,
// rounded to cents.
func FiatValue(sat int64, btcPrice float64) float64 {
	v := float64(sat) / float64(UnitBTC.Denominator()) * btcPrice
	return math.Round(v*100) / 100
}
