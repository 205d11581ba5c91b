package handlers

import (
	"context"

	"github.com/polkiloo/wsgateway/internal/domain/model"
)

// CredentialFacade sells access keys.
type CredentialFacade interface {
	Buy(ctx context.Context, quantity uint64) (*model.Accesskey, error)
}

// WithdrawalFacade processes withdrawals and reports their state.
type WithdrawalFacade interface {
	Withdraw(ctx context.Context, req model.WithdrawalRequest) (*model.Withdrawal, error)
	WithdrawalStatus(ctx context.Context, id string) model.WithdrawalStateData
}

// GatewayFacade aggregates the full set of operations used across handlers.
type GatewayFacade interface {
	CredentialFacade
	WithdrawalFacade
}
