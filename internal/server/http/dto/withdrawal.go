package dto

import (
	"fmt"
	"strconv"
)

// BuyQuery describes GET /buy query parameters.
type BuyQuery struct {
	Quantity string `form:"quantity" binding:"required"`
}

// ParsedQuantity returns Quantity as an unsigned 64-bit number.
func (q BuyQuery) ParsedQuantity() (uint64, error) {
	quantity, err := strconv.ParseUint(q.Quantity, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("quantity %q is not an unsigned 64-bit integer", q.Quantity)
	}
	return quantity, nil
}

// WithdrawalIDPath describes GET /withdrawals/:id path parameters.
type WithdrawalIDPath struct {
	ID string `uri:"id"`
}
