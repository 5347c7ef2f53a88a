package client

import "time"

// ------------------------------
// Core domain types and payloads
// ------------------------------

// Note is a user note as the server returns it. The id is opaque and
// server-assigned; the client never mints one. Attachment fields are
// set only at creation: the key references the stored object and the
// URL is computed server-side from it.
type Note struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
	AttachmentS3Key string    `json:"attachment_s3_key,omitempty"`
	AttachmentURL   string    `json:"attachment_url,omitempty"`
}

// SignUpRequest is the payload for POST /signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ConfirmSignUpRequest is the payload for POST /confirm-signup.
type ConfirmSignUpRequest struct {
	Email            string `json:"email"`
	ConfirmationCode string `json:"confirmationCode"`
}

// SignInRequest is the payload for POST /signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signInResponse mirrors the sign-in endpoint's success body.
type signInResponse struct {
	IDToken string `json:"IdToken"`
}

// CreateNoteRequest is the payload for POST /notes. AttachmentS3Key is
// the key returned by the upload-target endpoint, set only when an
// attachment was transferred first.
type CreateNoteRequest struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	AttachmentS3Key string `json:"attachment_s3_key,omitempty"`
}

// UpdateNoteRequest is the payload for PUT /notes/{id}. Title and
// content are always sent in full; partial updates are not supported.
type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UploadTarget is the response of POST /notes/generate-upload-url: a
// short-lived write-capable URL and the storage key the uploaded object
// will live under.
type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	S3Key     string `json:"s3Key"`
}
