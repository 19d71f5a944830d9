package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency_Strings(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  float64
	}{
		{"plain number", "4500", 4500},
		{"decimal", "100.50", 100.50},
		{"currency formatted", "₹4,500.00", 4500},
		{"grouped", "1,23,456.78", 123456.78},
		{"negative", "-250", -250},
		{"currency negative", "₹-1,000", -1000},
		{"garbage", "bad", 0},
		{"empty", "", 0},
		{"symbols only", "₹,", 0},
		{"multiple dots", "1.2.3", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCurrency(tc.value))
		})
	}
}

func TestParseCurrency_Numbers(t *testing.T) {
	assert.Equal(t, 4500.0, ParseCurrency(4500.0))
	assert.Equal(t, 42.0, ParseCurrency(42))
	assert.Equal(t, 7.0, ParseCurrency(int64(7)))
	assert.Equal(t, 12.5, ParseCurrency(json.Number("12.5")))
	assert.Equal(t, 0.0, ParseCurrency(json.Number("nope")))
}

func TestParseCurrency_NeverFails(t *testing.T) {
	assert.Equal(t, 0.0, ParseCurrency(nil))
	assert.Equal(t, 0.0, ParseCurrency(map[string]string{"x": "y"}))
	assert.Equal(t, 0.0, ParseCurrency([]int{1, 2}))
	assert.Equal(t, 0.0, ParseCurrency(true))
}
