package test

import (
	"context"
	"sync"

	"github.com/polkiloo/wsgateway/internal/domain/model"
)

// AuthClientStub simulates the authorization service client.
type AuthClientStub struct {
	IssueFn  func(context.Context, model.AccesskeyRequest) (*model.Accesskey, error)
	VerifyFn func(context.Context, model.WithdrawalRequest) error

	mu          sync.Mutex
	IssueCalls  []model.AccesskeyRequest
	VerifyCalls []model.WithdrawalRequest
}

// DefaultAccesskey is the document returned by stubs without an override.
const DefaultAccesskey = `{"key":"key"}`

// MustAccesskey builds an Accesskey from doc and panics on invalid input.
func MustAccesskey(doc string) *model.Accesskey {
	key, err := model.NewAccesskey([]byte(doc))
	if err != nil {
		panic(err)
	}
	return key
}

// IssueAccesskeys records the request and returns configured key or DefaultAccesskey.
func (s *AuthClientStub) IssueAccesskeys(ctx context.Context, req model.AccesskeyRequest) (*model.Accesskey, error) {
	s.mu.Lock()
	s.IssueCalls = append(s.IssueCalls, req)
	s.mu.Unlock()
	if s.IssueFn != nil {
		return s.IssueFn(ctx, req)
	}
	return MustAccesskey(DefaultAccesskey), nil
}

// VerifyWithdrawalRequest records the request and accepts it unless overridden.
func (s *AuthClientStub) VerifyWithdrawalRequest(ctx context.Context, req model.WithdrawalRequest) error {
	s.mu.Lock()
	s.VerifyCalls = append(s.VerifyCalls, req)
	s.mu.Unlock()
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, req)
	}
	return nil
}

// Calls returns the number of recorded issue and verify calls.
func (s *AuthClientStub) Calls() (issue, verify int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.IssueCalls), len(s.VerifyCalls)
}
