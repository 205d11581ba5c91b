package model

// WithdrawalState describes withdrawal lifecycle.
type WithdrawalState string

const (
	WithdrawalStatePending  WithdrawalState = "Pending"
	WithdrawalStateComplete WithdrawalState = "Complete"
)

// WithdrawalRequest is the caller supplied request to redeem value to a destination.
// An absent amount stays absent when the request is echoed or forwarded.
type WithdrawalRequest struct {
	Destination string            `json:"destination"`
	Amount      *Amount           `json:"amount,omitempty"`
	Currency    string            `json:"currency,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// WithdrawalStateData holds the state decided for a withdrawal and when it was set.
// StateChanged is a unix timestamp in seconds.
type WithdrawalStateData struct {
	State        WithdrawalState `json:"state"`
	StateChanged int64           `json:"state_changed"`
}

// Withdrawal is the record built for a processed withdrawal request.
type Withdrawal struct {
	ID                string              `json:"id"`
	StateData         WithdrawalStateData `json:"state_data"`
	WithdrawalRequest WithdrawalRequest   `json:"withdrawal_request"`
	Receipt           string              `json:"receipt"`
}
