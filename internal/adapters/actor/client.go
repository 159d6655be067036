package actor

// Package actor is the HTTP adapter for the remote CRM actor. The actor
// owns all persistence and authorization; this client only moves JSON over
// an opaque gateway, with a fixed retry budget for transport faults, a
// circuit breaker, and Prometheus instrumentation.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/sony/gobreaker"

	"github.com/keyhaven/crm-ui-api/internal/domain/approval"
	"github.com/keyhaven/crm-ui-api/internal/domain/model"
	apperrors "github.com/keyhaven/crm-ui-api/internal/errors"
	"github.com/keyhaven/crm-ui-api/internal/observability/metrics"
	"github.com/keyhaven/crm-ui-api/internal/ports"
)

const callerHeader = "X-Caller-Principal"

// Ensure compile-time conformance to the port.
var _ ports.ActorClient = (*Client)(nil)

// Config holds configuration for the actor client.
type Config struct {
	// GatewayURL is the base URL of the actor gateway, without trailing slash.
	GatewayURL string
	// CallTimeout bounds a single call attempt.
	CallTimeout time.Duration
	// RetryDelay is the fixed delay before the single transport retry.
	RetryDelay time.Duration
	// HTTPClient is optional; defaults to a client with CallTimeout.
	HTTPClient *http.Client
	// Metrics is optional actor call instrumentation.
	Metrics *metrics.ActorMetrics
	Logger  *slog.Logger
}

// Client implements ports.ActorClient over the actor's HTTP gateway.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	retryDelay time.Duration
	metrics    *metrics.ActorMetrics
	logger     *slog.Logger
}

// NewClient creates an actor client from Config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.GatewayURL == "" {
		return nil, errors.New("actor gateway URL is required")
	}
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = 500 * time.Millisecond
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "crm-actor",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &Client{
		baseURL:    cfg.GatewayURL,
		httpClient: httpClient,
		breaker:    breaker,
		retryDelay: retryDelay,
		metrics:    cfg.Metrics,
		logger:     logger,
	}, nil
}

// transportError marks failures eligible for retry: connection faults and
// gateway 5xx responses. Domain rejections from the actor never retry.
type transportError struct{ cause error }

func (e *transportError) Error() string { return e.cause.Error() }
func (e *transportError) Unwrap() error { return e.cause }

// errorBody is the gateway's error payload shape.
type errorBody struct {
	Message string `json:"message"`
}

// call performs one actor method invocation: POST <gateway>/api/v1/<method>
// with the caller principal in a header. A transport fault gets exactly one
// retry after a fixed delay; everything runs inside the circuit breaker.
func (c *Client) call(ctx context.Context, caller, method string, args any, out any) error {
	start := time.Now()
	_, err := c.breaker.Execute(func() (any, error) {
		r := retry.New(
			retry.Context(ctx),
			retry.Attempts(2),
			retry.DelayType(func(uint, error, retry.DelayContext) time.Duration {
				return c.retryDelay
			}),
			retry.RetryIf(func(err error) bool {
				var te *transportError
				return errors.As(err, &te)
			}),
			retry.LastErrorOnly(true),
		)
		return nil, r.Do(func() error {
			return c.doCall(ctx, caller, method, args, out)
		})
	})
	c.observe(method, start, err)
	if err == nil {
		return nil
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, MsgActorNotAvailable)
	}
	var te *transportError
	if errors.As(err, &te) {
		return apperrors.Wrapf(te.cause, apperrors.ErrCodeUnavailable, "actor call %s failed", method)
	}
	return err
}

func (c *Client) observe(method string, start time.Time, err error) {
	c.metrics.Observe(method, start, err)
	if err != nil {
		c.logger.Debug("actor call failed", "method", method, "error", err)
	}
}

func (c *Client) doCall(ctx context.Context, caller, method string, args any, out any) error {
	var body io.Reader
	if args != nil {
		data, err := json.Marshal(args)
		if err != nil {
			return fmt.Errorf("marshal %s args: %w", method, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/"+method, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		req.Header.Set(callerHeader, caller)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transportError{cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return &transportError{cause: err}
	}

	switch {
	case resp.StatusCode >= 500:
		return &transportError{cause: fmt.Errorf("gateway returned %d", resp.StatusCode)}
	case resp.StatusCode >= 400:
		var eb errorBody
		if unmarshalErr := json.Unmarshal(data, &eb); unmarshalErr != nil || eb.Message == "" {
			eb.Message = fmt.Sprintf("actor rejected %s with status %d", method, resp.StatusCode)
		}
		return translateMessage(eb.Message)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	return nil
}

// GetCallerUserProfile returns the caller's profile, or nil when none was
// saved yet (the gateway reports that as JSON null).
func (c *Client) GetCallerUserProfile(ctx context.Context, caller string) (*model.UserProfile, error) {
	var out *model.UserProfile
	if err := c.call(ctx, caller, "getCallerUserProfile", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaveCallerUserProfile(ctx context.Context, caller string, profile model.UserProfile) error {
	return c.call(ctx, caller, "saveCallerUserProfile", profile, nil)
}

func (c *Client) IsCallerAdmin(ctx context.Context, caller string) (bool, error) {
	var out bool
	if err := c.call(ctx, caller, "isCallerAdmin", nil, &out); err != nil {
		return false, err
	}
	return out, nil
}

func (c *Client) IsCallerApproved(ctx context.Context, caller string) (bool, error) {
	var out bool
	if err := c.call(ctx, caller, "isCallerApproved", nil, &out); err != nil {
		return false, err
	}
	return out, nil
}

func (c *Client) GetAgentProfileByCaller(ctx context.Context, caller string) (*model.AgentProfile, error) {
	var out *model.AgentProfile
	if err := c.call(ctx, caller, "getAgentProfileByCaller", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RegisterAgent(ctx context.Context, caller string, req model.RegisterAgentRequest) error {
	return c.call(ctx, caller, "registerAgent", req, nil)
}

func (c *Client) LoginAgent(ctx context.Context, caller string, faceImage []byte) error {
	args := struct {
		FaceEmbeddings []byte `json:"faceEmbeddings"`
	}{FaceEmbeddings: faceImage}
	return c.call(ctx, caller, "loginAgent", args, nil)
}

func (c *Client) LogoutAgent(ctx context.Context, caller string) error {
	return c.call(ctx, caller, "logoutAgent", nil, nil)
}

func (c *Client) ApproveAgent(ctx context.Context, caller, mobile string) error {
	args := struct {
		Mobile string `json:"mobile"`
	}{Mobile: mobile}
	return c.call(ctx, caller, "approveAgent", args, nil)
}

func (c *Client) RejectAgent(ctx context.Context, caller, mobile string) error {
	args := struct {
		Mobile string `json:"mobile"`
	}{Mobile: mobile}
	return c.call(ctx, caller, "rejectAgent", args, nil)
}

func (c *Client) SetApproval(ctx context.Context, caller, principal string, status approval.Status) error {
	args := struct {
		Principal string `json:"principal"`
		Status    string `json:"status"`
	}{Principal: principal, Status: string(status)}
	return c.call(ctx, caller, "setApproval", args, nil)
}

func (c *Client) ListApprovals(ctx context.Context, caller string) ([]model.ApprovalInfo, error) {
	var out []model.ApprovalInfo
	if err := c.call(ctx, caller, "listApprovals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAllAgentProfiles(ctx context.Context, caller string) ([]model.AgentProfile, error) {
	var out []model.AgentProfile
	if err := c.call(ctx, caller, "getAllAgentProfiles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAgentLoginTimesAndStatus(ctx context.Context, caller string) ([]model.AgentActivity, error) {
	var out []model.AgentActivity
	if err := c.call(ctx, caller, "getAgentLoginTimesAndStatus", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCustomers(ctx context.Context, caller string) ([]model.Customer, error) {
	var out []model.Customer
	if err := c.call(ctx, caller, "getCustomers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddCustomer(ctx context.Context, caller string, req model.AddCustomerRequest) (string, error) {
	var out string
	if err := c.call(ctx, caller, "addCustomer", req, &out); err != nil {
		return "", err
	}
	return out, nil
}

func (c *Client) GetLeads(ctx context.Context, caller string) ([]model.Lead, error) {
	var out []model.Lead
	if err := c.call(ctx, caller, "getLeads", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddLead(ctx context.Context, caller string, req model.AddLeadRequest) (string, error) {
	var out string
	if err := c.call(ctx, caller, "addLead", req, &out); err != nil {
		return "", err
	}
	return out, nil
}

func (c *Client) GetFollowUps(ctx context.Context, caller string) ([]model.FollowUp, error) {
	var out []model.FollowUp
	if err := c.call(ctx, caller, "getFollowUps", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddFollowUp(ctx context.Context, caller string, req model.AddFollowUpRequest) (string, error) {
	var out string
	if err := c.call(ctx, caller, "addFollowUp", req, &out); err != nil {
		return "", err
	}
	return out, nil
}

func (c *Client) GetWhatsAppMessages(ctx context.Context, caller string) ([]model.WhatsAppMessage, error) {
	var out []model.WhatsAppMessage
	if err := c.call(ctx, caller, "getWhatsAppMessages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddWhatsAppMessage(ctx context.Context, caller string, req model.AddWhatsAppMessageRequest) (string, error) {
	var out string
	if err := c.call(ctx, caller, "addWhatsAppMessage", req, &out); err != nil {
		return "", err
	}
	return out, nil
}

func (c *Client) GetCallLogs(ctx context.Context, caller string) ([]model.CallLog, error) {
	var out []model.CallLog
	if err := c.call(ctx, caller, "getCallLogs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddCallLog(ctx context.Context, caller string, req model.AddCallLogRequest) (string, error) {
	var out string
	if err := c.call(ctx, caller, "addCallLog", req, &out); err != nil {
		return "", err
	}
	return out, nil
}
