package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Account operations - all unauthenticated, all synchronous.

// SignUp registers a new account. The server sends a confirmation code
// to the address; the account is unusable until ConfirmSignUp succeeds.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := ValidatePassword(req.Password); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/signup", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !success(resp.StatusCode) {
		return apiErrorFromResponse(resp)
	}
	// Body carries nothing the client needs beyond the status.
	return nil
}

// ConfirmSignUp redeems the emailed confirmation code for the address
// registered via SignUp.
func (c *Client) ConfirmSignUp(ctx context.Context, req ConfirmSignUpRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := ValidateConfirmationCode(req.ConfirmationCode); err != nil {
		return err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/confirm-signup", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !success(resp.StatusCode) {
		return apiErrorFromResponse(resp)
	}
	return nil
}

// SignIn exchanges credentials for an identity token. A 2xx response
// that carries no token is reported as ErrNoTokenInResponse so callers
// can distinguish it from an ordinary rejected sign-in.
func (c *Client) SignIn(ctx context.Context, req SignInRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return "", err
	}
	if err := ValidatePassword(req.Password); err != nil {
		return "", err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/signin", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if !success(resp.StatusCode) {
		return "", apiErrorFromResponse(resp)
	}

	var sr signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", fmt.Errorf("sign in: decoding response: %w", err)
	}
	if sr.IDToken == "" {
		return "", ErrNoTokenInResponse
	}
	return sr.IDToken, nil
}
