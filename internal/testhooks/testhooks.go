// Package testhooks holds the sentinel destination values that make withdrawal
// processing fail or stop in the pending state on demand. Conformance suites rely
// on these exact strings, so they are part of the public request contract.
package testhooks

const (
	// DestinationWantError makes withdrawal processing fail with a 400 status.
	DestinationWantError = "want_error"
	// DestinationWantPending makes withdrawal processing return a Pending record immediately.
	DestinationWantPending = "want_pending"

	// RequestedErrorMessage is the description returned for DestinationWantError.
	RequestedErrorMessage = "as requested, withdrawal failed with error!"
)

// Outcome is the processing path selected by a destination.
type Outcome int

const (
	OutcomeComplete Outcome = iota
	OutcomePending
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeError:
		return "error"
	default:
		return "complete"
	}
}

// Classify maps a withdrawal destination to its processing outcome.
// Any value other than the sentinels goes through regular processing.
func Classify(destination string) Outcome {
	switch destination {
	case DestinationWantError:
		return OutcomeError
	case DestinationWantPending:
		return OutcomePending
	default:
		return OutcomeComplete
	}
}
