package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Note operations - all bearer-authenticated, all synchronous. Each
// method resolves the token up front and refuses to build a request
// without one.

// ListNotes fetches the caller's full note collection, newest first.
func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	token, err := c.bearerToken()
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/notes", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !success(resp.StatusCode) {
		return nil, apiErrorFromResponse(resp)
	}

	var notes []Note
	if err := json.NewDecoder(resp.Body).Decode(&notes); err != nil {
		return nil, fmt.Errorf("list notes: decoding response: %w", err)
	}
	return notes, nil
}

// CreateNote creates a note and returns the server's copy, including
// the assigned id and creation time.
func (c *Client) CreateNote(ctx context.Context, req CreateNoteRequest) (*Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	token, err := c.bearerToken()
	if err != nil {
		return nil, err
	}
	if err := ValidateNoteFields(req.Title, req.Content); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/notes", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !success(resp.StatusCode) {
		return nil, apiErrorFromResponse(resp)
	}

	var note Note
	if err := json.NewDecoder(resp.Body).Decode(&note); err != nil {
		return nil, fmt.Errorf("create note: decoding response: %w", err)
	}
	return &note, nil
}

// UpdateNote replaces the note's title and content and returns the
// server's copy, which picks up any server-side normalization.
// Attachments cannot be changed after creation.
func (c *Client) UpdateNote(ctx context.Context, id string, req UpdateNoteRequest) (*Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	token, err := c.bearerToken()
	if err != nil {
		return nil, err
	}
	if err := ValidateNoteID(id); err != nil {
		return nil, err
	}
	if err := ValidateNoteFields(req.Title, req.Content); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/notes/%s", c.baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !success(resp.StatusCode) {
		return nil, apiErrorFromResponse(resp)
	}

	var note Note
	if err := json.NewDecoder(resp.Body).Decode(&note); err != nil {
		return nil, fmt.Errorf("update note: decoding response: %w", err)
	}
	return &note, nil
}

// DeleteNote removes the note. Success is the status alone.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	token, err := c.bearerToken()
	if err != nil {
		return err
	}
	if err := ValidateNoteID(id); err != nil {
		return err
	}
	url := fmt.Sprintf("%s/notes/%s", c.baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

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
