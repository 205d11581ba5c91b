package dto

import (
	"math"
	"testing"
)

func TestBuyQueryParsedQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want uint64
		ok   bool
	}{
		{raw: "0", want: 0, ok: true},
		{raw: "5", want: 5, ok: true},
		{raw: "18446744073709551615", want: math.MaxUint64, ok: true},
		{raw: "", ok: false},
		{raw: " 5", ok: false},
		{raw: "+5", ok: false},
		{raw: "-1", ok: false},
		{raw: "1.5", ok: false},
		{raw: "18446744073709551616", ok: false},
	}

	for _, tc := range cases {
		got, err := BuyQuery{Quantity: tc.raw}.ParsedQuantity()
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("quantity %q: expected %d, got %d err=%v", tc.raw, tc.want, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("quantity %q: expected error, got %d", tc.raw, got)
		}
	}
}
