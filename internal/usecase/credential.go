package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/wsgateway/internal/domain/errors"
	"github.com/polkiloo/wsgateway/internal/domain/model"
)

const (
	// AccesskeyPofType is the proof-of-function tag sent with every access key request.
	AccesskeyPofType = "test"
	// AccesskeyDuration is the access key lifetime in seconds.
	AccesskeyDuration = 600
)

// AccesskeyIssuer issues access keys on behalf of the gateway.
type AccesskeyIssuer interface {
	IssueAccesskeys(ctx context.Context, req model.AccesskeyRequest) (*model.Accesskey, error)
}

// CredentialUseCase sells access keys issued by the authorization service.
type CredentialUseCase struct {
	auth AccesskeyIssuer
}

// NewCredentialUseCase constructs CredentialUseCase.
func NewCredentialUseCase(auth AccesskeyIssuer) *CredentialUseCase {
	return &CredentialUseCase{auth: auth}
}

// Buy requests an access key for quantity operations. The quantity is not validated.
// Failures are returned as *model.Status.
func (u *CredentialUseCase) Buy(ctx context.Context, quantity uint64) (*model.Accesskey, error) {
	req := model.AccesskeyRequest{
		Quantity: quantity,
		PofType:  AccesskeyPofType,
		Duration: AccesskeyDuration,
	}

	key, err := u.auth.IssueAccesskeys(ctx, req)
	if err != nil {
		return nil, issueFailure(err)
	}
	return key, nil
}

func issueFailure(err error) *model.Status {
	var authErr *domainErrors.AuthError
	if !errors.As(err, &authErr) {
		return model.Internal("could not perform auth request to issue accesskeys: %v", err)
	}
	switch authErr.Phase {
	case domainErrors.AuthPhaseEncode:
		return model.Internal("%v", authErr.Err)
	case domainErrors.AuthPhaseRead:
		return model.Internal("could not get accesskey from auth: %v", authErr.Err)
	case domainErrors.AuthPhaseDecode:
		return model.Internal("could not deserialize auth-provided accesskey body (%s): %v", authErr.Body, authErr.Err)
	default:
		return model.Internal("could not perform auth request to issue accesskeys: %v", authErr.Err)
	}
}
