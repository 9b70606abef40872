package pricing

import "math"

// priceBracket selects the ad-valorem percentage and the per-cc floor
// rate for cars younger than three years, keyed by price in EUR.
type priceBracket struct {
	maxPriceEUR float64 // inclusive upper bound; last entry is open
	percent     float64
	eurPerCc    float64
}

var youngCarBrackets = []priceBracket{
	{8500, 0.54, 2.5},
	{16700, 0.48, 3.5},
	{42300, 0.48, 5.5},
	{84500, 0.48, 7.5},
	{169000, 0.48, 15.0},
	{math.MaxFloat64, 0.48, 20.0},
}

// ccBracket is one row of the per-cc duty tables for cars aged three
// years and older.
type ccBracket struct {
	maxCm3   int // inclusive upper bound; last entry is open
	eurPerCc float64
}

var (
	// Three to five years inclusive.
	midAgeBrackets = []ccBracket{
		{1000, 1.5},
		{1500, 1.7},
		{1800, 2.5},
		{2300, 2.7},
		{3000, 3.0},
		{math.MaxInt, 3.6},
	}
	// Older than five years.
	oldAgeBrackets = []ccBracket{
		{1000, 3.0},
		{1500, 3.2},
		{1800, 3.5},
		{2300, 4.8},
		{3000, 5.0},
		{math.MaxInt, 5.7},
	}
)

// customsDutyEUR computes the duty in EUR and reports which method
// applied. Cars under three years pay the greater of an ad-valorem
// percentage and a per-cc floor; older cars pay purely per cc.
func customsDutyEUR(age int, priceEUR float64, volumeCm3 int) (float64, string) {
	if age < 3 {
		for _, b := range youngCarBrackets {
			if priceEUR <= b.maxPriceEUR {
				return math.Max(priceEUR*b.percent, b.eurPerCc*float64(volumeCm3)), DutyMethodByPrice
			}
		}
	}

	brackets := oldAgeBrackets
	if age <= 5 {
		brackets = midAgeBrackets
	}
	for _, b := range brackets {
		if volumeCm3 <= b.maxCm3 {
			return b.eurPerCc * float64(volumeCm3), DutyMethodByVolume
		}
	}
	return 0, DutyMethodByVolume // unreachable, tables are open-ended
}

// Utilization fee constants in RUB. The preferential flat fees also
// fill the <=3.0 L bands of the full table.
const (
	prefFeeYoungRUB = 3400.0
	prefFeeOldRUB   = 5200.0

	fullFeeYoung35RUB  = 2153400.0 // age < 3, 3.0 < volume <= 3.5 L
	fullFeeYoungBigRUB = 2742200.0 // age < 3, volume > 3.5 L
	fullFeeOld35RUB    = 3296800.0 // age >= 3, 3.0 < volume <= 3.5 L
	fullFeeOldBigRUB   = 3604800.0 // age >= 3, volume > 3.5 L
)

// utilizationFeeRUB computes the recycling levy and reports whether
// the preferential or the full schedule applied. The preferential flat
// fee requires both horsepower <= 160 and volume <= 3.0 L.
func utilizationFeeRUB(age int, engineVolume float64, horsepower int) (float64, string) {
	young := age < 3

	if horsepower <= 160 && engineVolume <= 3.0 {
		if young {
			return prefFeeYoungRUB, FeeTypePreferential
		}
		return prefFeeOldRUB, FeeTypePreferential
	}

	var fee float64
	switch {
	case engineVolume <= 3.0:
		// Bands up to 3.0 L match the preferential flat fee.
		if young {
			fee = prefFeeYoungRUB
		} else {
			fee = prefFeeOldRUB
		}
	case engineVolume <= 3.5:
		if young {
			fee = fullFeeYoung35RUB
		} else {
			fee = fullFeeOld35RUB
		}
	default:
		if young {
			fee = fullFeeYoungBigRUB
		} else {
			fee = fullFeeOldBigRUB
		}
	}
	return fee, FeeTypeFull
}
