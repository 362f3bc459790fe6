package concar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRUC(t *testing.T) {
	cases := []struct {
		ruc   string
		valid bool
	}{
		{"20100070970", true},
		{"20100000009", true},
		{"20100000001", false},
		{"2010007097", false},
		{"2010007097A", false},
		{"", false},
	}
	for _, c := range cases {
		t.Run(c.ruc, func(t *testing.T) {
			err := ValidateRUC(c.ruc)
			if c.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestComputeRUCCheckDigit(t *testing.T) {
	assert.Equal(t, byte('0'), ComputeRUCCheckDigit("2010007097"))
	assert.Equal(t, byte('9'), ComputeRUCCheckDigit("2010000000"))
}
