package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumeric_UnmarshalJSON(t *testing.T) {
	cases := map[string]Numeric{
		`{"price":120.5}`:  "120.5",
		`{"price":" 80 "}`: "80",
		`{"price":"abc"}`:  "abc",
		`{"price":null}`:   "",
		`{"lensType":"x"}`: "",
	}
	for in, want := range cases {
		var req CreateOrderRequest
		require.NoError(t, json.Unmarshal([]byte(in), &req), in)
		assert.Equal(t, want, req.Price, in)
	}
}
