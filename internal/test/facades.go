package test

import (
	"context"

	"github.com/polkiloo/wsgateway/internal/domain/model"
)

// CredentialFacadeStub provides controllable behaviour for credential endpoints.
type CredentialFacadeStub struct {
	BuyFn func(context.Context, uint64) (*model.Accesskey, error)
}

// Buy delegates to provided function or returns default key.
func (s CredentialFacadeStub) Buy(ctx context.Context, quantity uint64) (*model.Accesskey, error) {
	if s.BuyFn != nil {
		return s.BuyFn(ctx, quantity)
	}
	return MustAccesskey(DefaultAccesskey), nil
}

// WithdrawalFacadeStub simulates withdrawal operations.
type WithdrawalFacadeStub struct {
	WithdrawFn func(context.Context, model.WithdrawalRequest) (*model.Withdrawal, error)
	StatusFn   func(context.Context, string) model.WithdrawalStateData
}

// Withdraw executes configured handler or echoes a completed withdrawal.
func (s WithdrawalFacadeStub) Withdraw(ctx context.Context, req model.WithdrawalRequest) (*model.Withdrawal, error) {
	if s.WithdrawFn != nil {
		return s.WithdrawFn(ctx, req)
	}
	return &model.Withdrawal{
		ID:                "id",
		StateData:         model.WithdrawalStateData{State: model.WithdrawalStateComplete, StateChanged: 1},
		WithdrawalRequest: req,
		Receipt:           "RECEIPT",
	}, nil
}

// WithdrawalStatus returns configured state or Complete.
func (s WithdrawalFacadeStub) WithdrawalStatus(ctx context.Context, id string) model.WithdrawalStateData {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, id)
	}
	return model.WithdrawalStateData{State: model.WithdrawalStateComplete, StateChanged: 1}
}

// GatewayFacadeStub aggregates facade dependencies for HTTP layer tests.
type GatewayFacadeStub struct {
	CredentialFacadeStub
	WithdrawalFacadeStub
}
