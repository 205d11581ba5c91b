package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/polkiloo/wsgateway/internal/domain/model"
)

func TestStatusUseCaseReportsComplete(t *testing.T) {
	uc := NewStatusUseCase()
	uc.now = fixedNow

	for _, id := range []string{"", "unknown", "6b1f0c9e8a7d6c5b"} {
		got := uc.Status(context.Background(), id)
		assert.Equal(t, model.WithdrawalStateData{State: model.WithdrawalStateComplete, StateChanged: fixedNow().Unix()}, got)
	}
}

func TestStatusUseCaseUsesCurrentTime(t *testing.T) {
	before := time.Now().Unix()
	got := NewStatusUseCase().Status(context.Background(), "id")
	after := time.Now().Unix()
	assert.GreaterOrEqual(t, got.StateChanged, before)
	assert.LessOrEqual(t, got.StateChanged, after)
}
