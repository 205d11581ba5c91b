package usecase

import (
	"context"
	"time"

	"github.com/polkiloo/wsgateway/internal/domain/model"
)

// StatusUseCase answers withdrawal state queries.
//
// Withdrawals are not retained, so every identifier reports Complete as of now.
type StatusUseCase struct {
	now func() time.Time
}

// NewStatusUseCase constructs StatusUseCase.
func NewStatusUseCase() *StatusUseCase {
	return &StatusUseCase{now: time.Now}
}

// Status returns the state of the withdrawal with the given identifier.
func (u *StatusUseCase) Status(_ context.Context, _ string) model.WithdrawalStateData {
	return model.WithdrawalStateData{
		State:        model.WithdrawalStateComplete,
		StateChanged: u.now().Unix(),
	}
}
