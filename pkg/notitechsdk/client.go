package notitechsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a NotiTech server. It covers the anonymous endpoints and
// hands out a Session once the caller has signed in.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account and returns a session for it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, *AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", nil, req, &resp, http.StatusCreated); err != nil {
		return nil, nil, err
	}
	return c.NewSession(resp.Token), &resp, nil
}

// Login signs in with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, *AuthResponse, error) {
	var resp AuthResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", nil, req, &resp, http.StatusOK); err != nil {
		return nil, nil, err
	}
	return c.NewSession(resp.Token), &resp, nil
}

// NewSession wraps a token obtained elsewhere.
func (c *Client) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

func (c *Client) CheckEmail(ctx context.Context, email string) (*CheckEmailResponse, error) {
	var resp CheckEmailResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/check-email", "", nil, EmailRequest{Email: email}, &resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RequestResetCode(ctx context.Context, email string) (*RequestResetCodeResponse, error) {
	var resp RequestResetCodeResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/request-reset-code", "", nil, EmailRequest{Email: email}, &resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) VerifyResetCode(ctx context.Context, email, code string) (*VerifyResetCodeResponse, error) {
	var resp VerifyResetCodeResponse
	req := VerifyResetCodeRequest{Email: email, Code: code}
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-reset-code", "", nil, req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword redeems an emailed reset code.
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/reset-password", "", nil, req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SecurityQuestions(ctx context.Context) ([]SecurityQuestion, error) {
	var resp SecurityQuestionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/security-questions", "", nil, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// SecurityQuestion returns the question the account enrolled with.
func (c *Client) SecurityQuestion(ctx context.Context, email string) (*SecurityQuestion, error) {
	var resp SecurityQuestion
	err := c.do(ctx, http.MethodPost, "/api/auth/security-question", "", nil, EmailRequest{Email: email}, &resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) VerifySecurityAnswer(ctx context.Context, req VerifySecurityAnswerRequest) (*VerifySecurityAnswerResponse, error) {
	var resp VerifySecurityAnswerResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-security-answer", "", nil, req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ResetPasswordWithAnswer(ctx context.Context, req SecurityResetRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/reset-password/security", "", nil, req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminResetPassword overwrites a password using the operator token.
func (c *Client) AdminResetPassword(ctx context.Context, adminToken string, req AdminResetPasswordRequest) (*MessageResponse, error) {
	var resp MessageResponse
	headers := map[string]string{"X-Admin-Token": adminToken}
	if err := c.do(ctx, http.MethodPost, "/api/admin/reset-password", "", headers, req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", "", nil, nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", "", nil, nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

func escape(segment string) string {
	return url.PathEscape(segment)
}
