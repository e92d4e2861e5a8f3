package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("ana@example.com"))
	assert.False(t, IsEmail("ana"))
	assert.False(t, IsEmail("Ana <ana@example.com>"))
	assert.False(t, IsEmail(""))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "240222111333", Digits("+240 222-111 (333)"))
	assert.Equal(t, "", Digits("n/a"))
}

func TestIsDateAndClock(t *testing.T) {
	assert.True(t, IsDate("2024-06-01"))
	assert.False(t, IsDate("01/06/2024"))
	assert.True(t, IsClock("08:00"))
	assert.False(t, IsClock("8am"))
}

func TestParseMoney(t *testing.T) {
	d, ok := ParseMoney(" 120.50 ")
	assert.True(t, ok)
	assert.Equal(t, "120.5", d.String())

	_, ok = ParseMoney("doce")
	assert.False(t, ok)

	_, ok = ParseMoney("")
	assert.False(t, ok)

	d, ok = ParseMoney("999999999999.99")
	assert.True(t, ok)
	assert.Equal(t, "999999999999.99", d.StringFixed(2))

	for _, raw := range []string{"1e200000000", "1E3", "2.5e-1", "1000000000000", "-1000000000000", "10.005"} {
		_, ok = ParseMoney(raw)
		assert.False(t, ok, raw)
	}
}
