package usecase

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	domainErrors "github.com/polkiloo/wsgateway/internal/domain/errors"
	"github.com/polkiloo/wsgateway/internal/domain/model"
	testhelpers "github.com/polkiloo/wsgateway/internal/test"
	"github.com/polkiloo/wsgateway/internal/testhooks"
)

type sleepRecorder struct {
	mu    sync.Mutex
	calls []time.Duration
}

func (s *sleepRecorder) Sleep(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, d)
}

func (s *sleepRecorder) Calls() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.calls...)
}

func fixedNow() time.Time { return time.Unix(1700000000, 0) }

func newTestWithdrawalUseCase(auth WithdrawalVerifier, sleeper *sleepRecorder) *WithdrawalUseCase {
	return NewWithdrawalUseCase(auth, WithdrawalOptions{
		ProcessingDelay: time.Second,
		Sleep:           sleeper.Sleep,
		Now:             fixedNow,
	})
}

func TestWithdrawalUseCaseCompletesAfterDelay(t *testing.T) {
	auth := &testhelpers.AuthClientStub{}
	sleeper := &sleepRecorder{}
	req := testhelpers.RandomWithdrawalRequest(testhelpers.RandomDestination())

	w, err := newTestWithdrawalUseCase(auth, sleeper).Process(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, model.WithdrawalStateComplete, w.StateData.State)
	assert.Equal(t, fixedNow().Unix(), w.StateData.StateChanged)
	assert.Equal(t, req, w.WithdrawalRequest)
	assert.Equal(t, "RECEIPT", w.Receipt)
	assert.Len(t, w.ID, 64)
	assert.Equal(t, []time.Duration{time.Second}, sleeper.Calls())
	require.Len(t, auth.VerifyCalls, 1)
	assert.Equal(t, req, auth.VerifyCalls[0])
}

func TestWithdrawalUseCasePendingSkipsDelay(t *testing.T) {
	sleeper := &sleepRecorder{}
	req := testhelpers.RandomWithdrawalRequest(testhooks.DestinationWantPending)

	w, err := newTestWithdrawalUseCase(&testhelpers.AuthClientStub{}, sleeper).Process(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.WithdrawalStatePending, w.StateData.State)
	assert.Empty(t, sleeper.Calls())
	assert.Equal(t, req, w.WithdrawalRequest)
}

func TestWithdrawalUseCaseRequestedError(t *testing.T) {
	auth := &testhelpers.AuthClientStub{}
	sleeper := &sleepRecorder{}
	idCalls := 0
	uc := NewWithdrawalUseCase(auth, WithdrawalOptions{
		Sleep: sleeper.Sleep,
		NewID: func() (string, error) {
			idCalls++
			return "id", nil
		},
	})

	w, err := uc.Process(context.Background(), model.WithdrawalRequest{Destination: testhooks.DestinationWantError})
	assert.Nil(t, w)
	st := requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, testhooks.RequestedErrorMessage, st.Desc)
	assert.Zero(t, idCalls, "no record must be built for the error branch")
	assert.Empty(t, sleeper.Calls())
	_, verify := auth.Calls()
	assert.Equal(t, 1, verify, "verification happens before the outcome is decided")
}

func TestWithdrawalUseCaseVerificationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		desc string
	}{
		{
			name: "transport",
			err:  &domainErrors.AuthError{Phase: domainErrors.AuthPhaseRequest, Err: errors.New("connection refused")},
			desc: "could not perform auth request to verify withdrawal: connection refused",
		},
		{
			name: "encode",
			err:  &domainErrors.AuthError{Phase: domainErrors.AuthPhaseEncode, Err: errors.New("json: unsupported value")},
			desc: "json: unsupported value",
		},
		{
			name: "foreign error",
			err:  errors.New("boom"),
			desc: "could not perform auth request to verify withdrawal: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sleeper := &sleepRecorder{}
			auth := &testhelpers.AuthClientStub{VerifyFn: func(context.Context, model.WithdrawalRequest) error {
				return tt.err
			}}
			// even the error sentinel is not reached when verification fails
			w, err := newTestWithdrawalUseCase(auth, sleeper).Process(context.Background(), model.WithdrawalRequest{Destination: testhooks.DestinationWantError})
			assert.Nil(t, w)
			st := requireStatus(t, err, http.StatusInternalServerError)
			assert.Equal(t, tt.desc, st.Desc)
			assert.Empty(t, sleeper.Calls())
		})
	}
}

func TestWithdrawalUseCaseIDFailure(t *testing.T) {
	uc := NewWithdrawalUseCase(&testhelpers.AuthClientStub{}, WithdrawalOptions{
		NewID: func() (string, error) { return "", errors.New("entropy exhausted") },
	})
	_, err := uc.Process(context.Background(), model.WithdrawalRequest{Destination: testhooks.DestinationWantPending})
	st := requireStatus(t, err, http.StatusInternalServerError)
	assert.Contains(t, st.Desc, "entropy exhausted")
}

func TestWithdrawalUseCaseRealDelayElapses(t *testing.T) {
	const delay = 30 * time.Millisecond
	uc := NewWithdrawalUseCase(&testhelpers.AuthClientStub{}, WithdrawalOptions{ProcessingDelay: delay})

	start := time.Now()
	w, err := uc.Process(context.Background(), model.WithdrawalRequest{Destination: "somewhere"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Equal(t, model.WithdrawalStateComplete, w.StateData.State)
}

func TestWithdrawalUseCaseDelayIgnoresCancellation(t *testing.T) {
	const delay = 30 * time.Millisecond
	uc := NewWithdrawalUseCase(&testhelpers.AuthClientStub{}, WithdrawalOptions{ProcessingDelay: delay})

	ctx, cancel := context.WithCancel(context.Background())
	start := time.Now()
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	w, err := uc.Process(ctx, model.WithdrawalRequest{Destination: "somewhere"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Equal(t, model.WithdrawalStateComplete, w.StateData.State)
}

func TestWithdrawalUseCaseArbitraryDestinations(t *testing.T) {
	f := fuzz.New().NilChance(0)
	sleeper := &sleepRecorder{}
	uc := newTestWithdrawalUseCase(&testhelpers.AuthClientStub{}, sleeper)

	completed := 0
	for i := 0; i < 300; i++ {
		var destination string
		f.Fuzz(&destination)

		w, err := uc.Process(context.Background(), model.WithdrawalRequest{Destination: destination})
		switch testhooks.Classify(destination) {
		case testhooks.OutcomeError:
			requireStatus(t, err, http.StatusBadRequest)
		case testhooks.OutcomePending:
			require.NoError(t, err)
			assert.Equal(t, model.WithdrawalStatePending, w.StateData.State)
		default:
			require.NoError(t, err)
			assert.Equal(t, model.WithdrawalStateComplete, w.StateData.State)
			completed++
		}
	}
	assert.Len(t, sleeper.Calls(), completed)
}

func TestWithdrawalUseCaseConcurrentIDsAreDistinct(t *testing.T) {
	const n = 10000
	uc := NewWithdrawalUseCase(&testhelpers.AuthClientStub{}, WithdrawalOptions{ProcessingDelay: 0})

	ids := make([]string, n)
	var g errgroup.Group
	g.SetLimit(256)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			destination := "somewhere"
			if i%2 == 0 {
				destination = testhooks.DestinationWantPending
			}
			w, err := uc.Process(context.Background(), model.WithdrawalRequest{Destination: destination})
			if err != nil {
				return err
			}
			ids[i] = w.ID
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[string]struct{}, n)
	for _, id := range ids {
		require.Len(t, id, 64)
		_, dup := seen[id]
		require.False(t, dup, "duplicate withdrawal id %s", id)
		seen[id] = struct{}{}
	}
}
