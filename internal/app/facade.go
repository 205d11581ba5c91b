package app

import (
	"context"

	"github.com/polkiloo/wsgateway/internal/domain/model"
	"github.com/polkiloo/wsgateway/internal/usecase"
)

type GatewayFacade struct {
	credentials *usecase.CredentialUseCase
	withdrawals *usecase.WithdrawalUseCase
	statuses    *usecase.StatusUseCase
}

func NewGatewayFacade(credentials *usecase.CredentialUseCase, withdrawals *usecase.WithdrawalUseCase, statuses *usecase.StatusUseCase) *GatewayFacade {
	return &GatewayFacade{credentials: credentials, withdrawals: withdrawals, statuses: statuses}
}

func (f *GatewayFacade) Buy(ctx context.Context, quantity uint64) (*model.Accesskey, error) {
	return f.credentials.Buy(ctx, quantity)
}

func (f *GatewayFacade) Withdraw(ctx context.Context, req model.WithdrawalRequest) (*model.Withdrawal, error) {
	return f.withdrawals.Process(ctx, req)
}

func (f *GatewayFacade) WithdrawalStatus(ctx context.Context, id string) model.WithdrawalStateData {
	return f.statuses.Status(ctx, id)
}
