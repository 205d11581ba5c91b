package test

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/wsgateway/internal/domain/model"
	"github.com/polkiloo/wsgateway/internal/testhooks"
)

// RandomDestination returns a realistic destination that is never a test hook sentinel.
func RandomDestination() string {
	for {
		destination := gofakeit.BitcoinAddress()
		if testhooks.Classify(destination) == testhooks.OutcomeComplete {
			return destination
		}
	}
}

// RandomWithdrawalRequest builds a withdrawal request with fake but plausible values.
func RandomWithdrawalRequest(destination string) model.WithdrawalRequest {
	return model.WithdrawalRequest{
		Destination: destination,
		Amount:      model.NewAmount(decimal.NewFromFloat(gofakeit.Price(0.01, 1000)).Round(2)),
		Currency:    gofakeit.CurrencyShort(),
		Metadata:    map[string]string{"memo": gofakeit.Word()},
	}
}
