package dashboard

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

// uploadAttachment runs the two write phases for a new attachment:
// request an upload target, then PUT the file bytes to it. The
// returned key is referenced by the subsequent create call. A failure
// in either phase aborts the creation; a note is never created without
// its intended attachment.
func (m *Manager) uploadAttachment(ctx context.Context, path string) (string, error) {
	target, err := m.api.GenerateUploadURL(ctx)
	if err != nil {
		return "", fmt.Errorf("requesting upload target: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening attachment: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("reading attachment size: %w", err)
	}

	if err := m.api.UploadAttachment(ctx, target.UploadURL, f, info.Size(), contentTypeFor(path)); err != nil {
		return "", fmt.Errorf("transferring attachment: %w", err)
	}
	return target.S3Key, nil
}

// contentTypeFor guesses a content type from the file extension.
func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
