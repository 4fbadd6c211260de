// Package money holds the currency conventions of the POS: all
// amounts are integers in minor currency units (Rupiah has no subunit,
// so 1 == Rp 1), which makes every sum exact — no floats, no rounding
// rules to argue about.
package money

import "strconv"

// FormatRupiah renders an amount as "Rp 65.000" with Indonesian
// thousand separators. Negative amounts keep their sign: "Rp -5.000".
func FormatRupiah(amount int64) string {
	return "Rp " + GroupDigits(amount)
}

// GroupDigits inserts "." thousand separators into an integer amount.
func GroupDigits(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)

	n := len(s)
	groups := (n - 1) / 3
	out := make([]byte, 0, n+groups+1)
	if neg {
		out = append(out, '-')
	}
	lead := n - groups*3
	out = append(out, s[:lead]...)
	for i := lead; i < n; i += 3 {
		out = append(out, '.')
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
