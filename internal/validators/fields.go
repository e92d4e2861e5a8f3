package validators

import (
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// IsEmail checks syntax only, without a DNS lookup.
func IsEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email, "@")
}

// Digits keeps only 0-9, the form wa.me expects.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func IsClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// maxMoney bounds the integer part of any amount to twelve digits.
var maxMoney = decimal.New(1, 12)

// ParseMoney parses a user typed amount. ok is false for anything that
// is not a plain decimal number with at most two decimal places and
// twelve integer digits. Exponent notation is rejected.
func ParseMoney(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if strings.ContainsAny(raw, "eE") {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	if d.Abs().GreaterThanOrEqual(maxMoney) || !d.Equal(d.Round(2)) {
		return decimal.Zero, false
	}
	return d, true
}
