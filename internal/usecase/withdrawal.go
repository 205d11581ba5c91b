package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/polkiloo/wsgateway/internal/domain/errors"
	"github.com/polkiloo/wsgateway/internal/domain/model"
	"github.com/polkiloo/wsgateway/internal/pkg/nonce"
	"github.com/polkiloo/wsgateway/internal/testhooks"
)

// Receipt is the placeholder receipt attached to every withdrawal.
const Receipt = "RECEIPT"

// WithdrawalVerifier checks withdrawal requests with the authorization service.
type WithdrawalVerifier interface {
	VerifyWithdrawalRequest(ctx context.Context, req model.WithdrawalRequest) error
}

// WithdrawalOptions tune withdrawal processing. Zero values fall back to defaults.
type WithdrawalOptions struct {
	ProcessingDelay time.Duration
	Sleep           func(time.Duration)
	Now             func() time.Time
	NewID           func() (string, error)
}

// WithdrawalUseCase verifies withdrawal requests and decides their state.
type WithdrawalUseCase struct {
	auth  WithdrawalVerifier
	delay time.Duration
	sleep func(time.Duration)
	now   func() time.Time
	newID func() (string, error)
}

// NewWithdrawalUseCase constructs WithdrawalUseCase.
func NewWithdrawalUseCase(auth WithdrawalVerifier, opts WithdrawalOptions) *WithdrawalUseCase {
	u := &WithdrawalUseCase{
		auth:  auth,
		delay: opts.ProcessingDelay,
		sleep: opts.Sleep,
		now:   opts.Now,
		newID: opts.NewID,
	}
	if u.delay < 0 {
		u.delay = 0
	}
	if u.sleep == nil {
		u.sleep = time.Sleep
	}
	if u.now == nil {
		u.now = time.Now
	}
	if u.newID == nil {
		u.newID = func() (string, error) { return nonce.New(nonce.Size) }
	}
	return u
}

// Process verifies req and builds the resulting withdrawal.
// The simulated processing delay is not interrupted by ctx.
// Failures are returned as *model.Status.
func (u *WithdrawalUseCase) Process(ctx context.Context, req model.WithdrawalRequest) (*model.Withdrawal, error) {
	if err := u.auth.VerifyWithdrawalRequest(ctx, req); err != nil {
		return nil, verifyFailure(err)
	}

	var state model.WithdrawalState
	switch testhooks.Classify(req.Destination) {
	case testhooks.OutcomeError:
		return nil, model.BadRequest("%s", testhooks.RequestedErrorMessage)
	case testhooks.OutcomePending:
		state = model.WithdrawalStatePending
	default:
		u.sleep(u.delay)
		state = model.WithdrawalStateComplete
	}

	id, err := u.newID()
	if err != nil {
		return nil, model.Internal("could not generate withdrawal id: %v", err)
	}

	return &model.Withdrawal{
		ID: id,
		StateData: model.WithdrawalStateData{
			State:        state,
			StateChanged: u.now().Unix(),
		},
		WithdrawalRequest: req,
		Receipt:           Receipt,
	}, nil
}

func verifyFailure(err error) *model.Status {
	var authErr *domainErrors.AuthError
	if errors.As(err, &authErr) {
		if authErr.Phase == domainErrors.AuthPhaseEncode {
			return model.Internal("%v", authErr.Err)
		}
		return model.Internal("could not perform auth request to verify withdrawal: %v", authErr.Err)
	}
	return model.Internal("could not perform auth request to verify withdrawal: %v", err)
}
