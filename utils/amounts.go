// Package utils contains small shared helpers for fixed-point token amounts.
package utils

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ParseFixedPoint converts a non-negative decimal string into the token's
// integer representation at the given decimal precision. Conversion is done
// on the decimal text so values expressible exactly at that precision never
// lose precision; more fractional digits than the precision allows is an
// error rather than a silent truncation.
func ParseFixedPoint(amount string, decimals int) (*big.Int, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("negative amount %q", amount)
	}
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("amount %q exceeds %d decimal digits", amount, decimals)
	}

	digits := whole + frac + strings.Repeat("0", decimals-len(frac))
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount %q", amount)
	}
	return v, nil
}

// FormatFixedPoint renders an integer token amount as a human string:
// the whole part grouped with locale separators and the fractional part
// zero-padded then truncated to two display digits.
func FormatFixedPoint(raw *big.Int, decimals int) string {
	q, r := new(big.Int).QuoRem(raw, pow10(decimals), new(big.Int))

	p := message.NewPrinter(language.English)
	whole := p.Sprintf("%d", q)

	frac := fmt.Sprintf("%0*s", decimals, r.String())
	if decimals == 0 {
		frac = "00"
	} else if len(frac) < 2 {
		frac += strings.Repeat("0", 2-len(frac))
	} else {
		frac = frac[:2]
	}

	return whole + "." + frac
}

// FormatDecimal is the canonical inverse of ParseFixedPoint: it renders the
// integer amount as a plain decimal string with trailing fractional zeros
// removed, so parse/format round-trips exactly.
func FormatDecimal(raw *big.Int, decimals int) string {
	q, r := new(big.Int).QuoRem(raw, pow10(decimals), new(big.Int))
	if r.Sign() == 0 {
		return q.String()
	}
	frac := strings.TrimRight(fmt.Sprintf("%0*s", decimals, r.String()), "0")
	return q.String() + "." + frac
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
