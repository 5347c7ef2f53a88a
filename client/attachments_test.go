package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_GenerateUploadURL(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/notes/generate-upload-url" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok1" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"uploadUrl":"https://bucket.example/put-here","s3Key":"uploads/xyz"}`))
	}))
	defer hs.Close()

	c := New(hs.URL, StaticToken("tok1"))
	target, err := c.GenerateUploadURL(context.Background())
	if err != nil {
		t.Fatalf("GenerateUploadURL returned error: %v", err)
	}
	if target.UploadURL != "https://bucket.example/put-here" || target.S3Key != "uploads/xyz" {
		t.Fatalf("unexpected target %+v", target)
	}
}

func TestClient_GenerateUploadURL_IncompleteResponse(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"uploadUrl":"https://bucket.example/put-here"}`))
	}))
	defer hs.Close()

	c := New(hs.URL, StaticToken("tok1"))
	if _, err := c.GenerateUploadURL(context.Background()); err == nil {
		t.Fatal("expected error for response missing s3Key")
	}
}

func TestClient_UploadAttachment(t *testing.T) {
	payload := []byte("\x89PNG fake image bytes")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		// A presigned PUT must arrive without the API bearer header.
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("bearer header leaked to upload target: %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "image/png" {
			t.Errorf("unexpected Content-Type %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if !bytes.Equal(body, payload) {
			t.Errorf("uploaded bytes differ from source")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	c := New("http://api.invalid", StaticToken("tok1"))
	err := c.UploadAttachment(context.Background(), upstream.URL, bytes.NewReader(payload), int64(len(payload)), "image/png")
	if err != nil {
		t.Fatalf("UploadAttachment returned error: %v", err)
	}
}

func TestClient_UploadAttachment_Rejected(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer upstream.Close()

	c := New("http://api.invalid", StaticToken("tok1"))
	err := c.UploadAttachment(context.Background(), upstream.URL, strings.NewReader("x"), 1, "text/plain")
	ae, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if ae.StatusCode != http.StatusForbidden {
		t.Fatalf("unexpected status %d", ae.StatusCode)
	}
}
