package model

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Amount is a decimal withdrawal amount. A decoded amount encodes back exactly
// as it was received, so numbers stay numbers and strings stay strings.
type Amount struct {
	value   decimal.Decimal
	literal []byte
}

// NewAmount builds an Amount that encodes as a bare JSON number.
func NewAmount(d decimal.Decimal) *Amount {
	return &Amount{value: d}
}

// Decimal returns the numeric value.
func (a *Amount) Decimal() decimal.Decimal {
	return a.value
}

// Equal compares numeric values, ignoring the wire form.
func (a *Amount) Equal(other *Amount) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.value.Equal(other.value)
}

func (a *Amount) String() string {
	return a.value.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if len(a.literal) > 0 {
		return a.literal, nil
	}
	return []byte(a.value.String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	a.value = d
	a.literal = bytes.Clone(bytes.TrimSpace(data))
	return nil
}
