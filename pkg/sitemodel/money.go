package sitemodel

import (
	"math"
	"strconv"
	"strings"
)

// CurrencyGlyph prefixes every formatted price.
const CurrencyGlyph = "₹"

// FormatPrice renders a coerced price with the en-IN digit grouping the
// wizard's customers expect: the last three integer digits form one group,
// every group before it has two digits, and exactly two decimals follow.
// Negative and non-finite inputs are clamped to zero; they only occur for
// malformed records.
func FormatPrice(value float64) string {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	fixed := strconv.FormatFloat(value, 'f', 2, 64)
	whole, fraction, _ := strings.Cut(fixed, ".")
	return CurrencyGlyph + groupIndian(whole) + "." + fraction
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
