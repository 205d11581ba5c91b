package authsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/wsgateway/internal/domain/errors"
	"github.com/polkiloo/wsgateway/internal/domain/model"
)

const (
	issueAccesskeysPath   = "/issue-accesskeys"
	verifyWithdrawalPath  = "/verify-withdrawal-request"
	defaultRequestTimeout = 10 * time.Second
	// longer error bodies are cut in returned errors; the log keeps them whole
	maxErrorBody = 512
)

// Client exposes operations of the authorization service.
type Client interface {
	IssueAccesskeys(ctx context.Context, req model.AccesskeyRequest) (*model.Accesskey, error)
	VerifyWithdrawalRequest(ctx context.Context, req model.WithdrawalRequest) error
}

// HTTPClient implements Client via HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates HTTP authorization client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse auth url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("auth url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}, nil
}

// IssueAccesskeys asks the authorization service to issue an access key.
func (c *HTTPClient) IssueAccesskeys(ctx context.Context, req model.AccesskeyRequest) (*model.Accesskey, error) {
	body, err := c.post(ctx, issueAccesskeysPath, req)
	if err != nil {
		return nil, err
	}

	key, err := model.NewAccesskey(body)
	if err != nil {
		return nil, &domainErrors.AuthError{Phase: domainErrors.AuthPhaseDecode, Body: string(body), Err: err}
	}
	return key, nil
}

// VerifyWithdrawalRequest checks the request with the authorization service.
// Only the response status matters.
func (c *HTTPClient) VerifyWithdrawalRequest(ctx context.Context, req model.WithdrawalRequest) error {
	_, err := c.post(ctx, verifyWithdrawalPath, req)
	return err
}

func (c *HTTPClient) post(ctx context.Context, endpointPath string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, &domainErrors.AuthError{Phase: domainErrors.AuthPhaseEncode, Err: err}
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join("/", endpoint.Path, endpointPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(data))
	if err != nil {
		return nil, &domainErrors.AuthError{Phase: domainErrors.AuthPhaseRequest, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domainErrors.AuthError{Phase: domainErrors.AuthPhaseRequest, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("auth request failed",
			slog.String("path", endpointPath),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, &domainErrors.AuthError{
			Phase: domainErrors.AuthPhaseRequest,
			Err:   statusError(resp.Status, body),
		}
	}
	if err != nil {
		return nil, &domainErrors.AuthError{Phase: domainErrors.AuthPhaseRead, Err: err}
	}

	c.logger.Debug("auth request done", slog.String("path", endpointPath), slog.Int("status", resp.StatusCode))
	return body, nil
}

func statusError(status string, body []byte) error {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fmt.Errorf("%w: %s", domainErrors.ErrUnexpectedStatus, status)
	}
	if len(text) > maxErrorBody {
		text = strings.ToValidUTF8(text[:maxErrorBody], "") + "..."
	}
	return fmt.Errorf("%w: %s: %s", domainErrors.ErrUnexpectedStatus, status, text)
}
