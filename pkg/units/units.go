// Package units is the single home for unit normalization and the (small)
// set of known conversions. Every engine compares quantities through this
// package so a mismatch degrades the same way everywhere: not comparable,
// never silently wrong.
package units

import (
	"math"
	"strings"
)

var aliases = map[string]string{
	"gal": "gal", "gallon": "gal", "gallons": "gal",
	"lb": "lbs", "lbs": "lbs", "pound": "lbs", "pounds": "lbs",
	"ton": "ton", "tons": "ton", "tn": "ton",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"floz": "floz", "fl oz": "floz", "fl-oz": "floz",
	"qt": "qt", "quart": "qt", "quarts": "qt",
	"pt": "pt", "pint": "pt", "pints": "pt",
	"l": "l", "liter": "l", "litre": "l", "liters": "l",
	"kg": "kg", "kgs": "kg",
	"ea": "ea", "each": "ea", "unit": "ea", "units": "ea",
	"ac": "ac", "acre": "ac", "acres": "ac",
}

// factors holds the declared equivalences. ton<->lbs is the only pair; gal
// vs lbs (and everything else) needs a density we don't assume.
var factors = map[[2]string]float64{
	{"ton", "lbs"}: 2000,
	{"lbs", "ton"}: 1.0 / 2000,
}

// Normalize lowercases, trims and resolves aliases. Compound rate units are
// normalized per segment, so "Gallons/Acre" comes back as "gal/ac".
func Normalize(u string) string {
	u = strings.ToLower(strings.TrimSpace(u))
	if u == "" {
		return ""
	}
	if strings.Contains(u, "/") {
		parts := strings.Split(u, "/")
		for i, p := range parts {
			parts[i] = normalizeToken(p)
		}
		return strings.Join(parts, "/")
	}
	return normalizeToken(u)
}

func normalizeToken(t string) string {
	t = strings.TrimSpace(t)
	if c, ok := aliases[t]; ok {
		return c
	}
	// multi-word tokens like "lbs ai" or "fl oz"
	if c, ok := aliases[strings.Join(strings.Fields(t), " ")]; ok {
		return c
	}
	return t
}

// Same reports whether two unit strings normalize to the same unit.
func Same(a, b string) bool { return Normalize(a) == Normalize(b) }

// Convert returns qty expressed in `to`. ok is false when the pair has no
// declared equivalence; callers must treat that as "not computable".
func Convert(qty float64, from, to string) (float64, bool) {
	f, t := Normalize(from), Normalize(to)
	if f == t {
		return qty, true
	}
	if fac, ok := factors[[2]string{f, t}]; ok {
		return qty * fac, true
	}
	return 0, false
}

// PerUnit re-expresses a per-priceUOM price as a per-unit price, e.g.
// $800/ton -> $0.40/lbs. ok is false on an unconvertible pair.
func PerUnit(price float64, priceUOM, unit string) (float64, bool) {
	qtyInPriceUnits, ok := Convert(1, unit, priceUOM)
	if !ok {
		return 0, false
	}
	return price * qtyInPriceUnits, true
}

// Base strips the per-area denominator from a rate unit: "gal/ac" -> "gal".
func Base(rateUnit string) string {
	n := Normalize(rateUnit)
	if i := strings.Index(n, "/"); i >= 0 {
		return n[:i]
	}
	return n
}

// SameRate is the coarse rate-unit match used by the rate-cap checks: strip
// the "/ac" suffix and any "ai" (active ingredient) marker, then compare
// base units. "lbs ai/ac" matches "lbs/ac" and plain "lbs".
func SameRate(a, b string) bool {
	return rateBase(a) == rateBase(b) && rateBase(a) != ""
}

func rateBase(u string) string {
	base := Base(u)
	base = strings.TrimSpace(strings.TrimSuffix(base, " ai"))
	fields := strings.Fields(base)
	kept := fields[:0]
	for _, f := range fields {
		if f != "ai" {
			kept = append(kept, f)
		}
	}
	return normalizeToken(strings.Join(kept, " "))
}

// Clean coerces non-finite or negative input quantities to 0. Applied at
// every engine boundary: a half-filled form produces zeros, not NaN math.
func Clean(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0
	}
	return x
}

// Finite zeroes only non-finite values, keeping legitimate negatives
// (variances may be negative).
func Finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
