package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Attachment upload is two-phased: ask the API for a write-capable URL
// plus the storage key it maps to, then PUT the raw bytes straight to
// that URL. The eventual CreateNote call references the key.

// GenerateUploadURL requests an upload target for a new attachment.
// A 2xx response missing either field is a contract violation.
func (c *Client) GenerateUploadURL(ctx context.Context) (*UploadTarget, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	token, err := c.bearerToken()
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/notes/generate-upload-url", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
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

	var target UploadTarget
	if err := json.NewDecoder(resp.Body).Decode(&target); err != nil {
		return nil, fmt.Errorf("generate upload url: decoding response: %w", err)
	}
	if target.UploadURL == "" || target.S3Key == "" {
		return nil, fmt.Errorf("generate upload url: incomplete response (uploadUrl=%q, s3Key=%q)", target.UploadURL, target.S3Key)
	}
	return &target, nil
}

// UploadAttachment transfers raw file bytes to a previously requested
// upload target. The URL is pre-authorized, so no bearer header is
// attached; adding one would invalidate a presigned URL's signature.
// size must be the exact byte length of r's content.
func (c *Client) UploadAttachment(ctx context.Context, uploadURL string, r io.Reader, size int64, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uploadURL == "" {
		return fmt.Errorf("upload url is required")
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, r)
	if err != nil {
		return err
	}
	httpReq.ContentLength = size
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

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
