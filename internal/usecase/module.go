package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/wsgateway/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewCredentialUseCase,
	newWithdrawalUseCase,
	NewStatusUseCase,
)

type withdrawalParams struct {
	fx.In

	Auth   WithdrawalVerifier
	Config *config.Config
}

func newWithdrawalUseCase(p withdrawalParams) *WithdrawalUseCase {
	return NewWithdrawalUseCase(p.Auth, WithdrawalOptions{ProcessingDelay: p.Config.ProcessingDelay})
}
