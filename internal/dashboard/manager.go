// Package dashboard manages the signed-in user's note collection: a
// local, in-memory mirror of the server's list with optimistic updates
// reconciled against server responses, plus the per-note interaction
// state (edit drafts, pending delete confirmations) keyed by note id.
package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hunterportola/mynotes/client"
	"github.com/hunterportola/mynotes/internal/session"
)

// Form is a create or edit draft. Drafts live only as long as the
// manager; nothing about them is persisted.
type Form struct {
	Title          string
	Content        string
	AttachmentPath string
}

// Reset clears all fields, including the attachment selection.
func (f *Form) Reset() { *f = Form{} }

// Manager owns the note collection for one signed-in session. The
// mutex guards local state only; it is never held across a network
// call, so operations on distinct notes may be in flight concurrently
// and the collection reflects whichever response lands last.
type Manager struct {
	api   *client.Client
	store *session.Store

	mu            sync.Mutex
	notes         []client.Note
	editing       map[string]*Form
	pendingDelete map[string]struct{}
}

// New constructs a Manager. The client must share the store as its
// token source so sign-out is observed immediately.
func New(api *client.Client, store *session.Store) *Manager {
	return &Manager{
		api:           api,
		store:         store,
		editing:       make(map[string]*Form),
		pendingDelete: make(map[string]struct{}),
	}
}

// requireToken refuses the operation before any network activity when
// the session has no token. The route guard should have prevented
// reaching the dashboard at all; this is the component-level check.
func (m *Manager) requireToken() error {
	if !m.store.Authenticated() {
		return session.ErrNotSignedIn
	}
	return nil
}

// Refresh replaces the local collection with the server's. On failure
// the collection is left empty rather than partially merged.
func (m *Manager) Refresh(ctx context.Context) error {
	if err := m.requireToken(); err != nil {
		return err
	}
	notes, err := m.api.ListNotes(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.notes = nil
		return fmt.Errorf("fetching notes: %w", err)
	}
	m.notes = notes
	return nil
}

// Notes returns a snapshot copy of the collection, newest first.
func (m *Manager) Notes() []client.Note {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]client.Note, len(m.notes))
	copy(out, m.notes)
	return out
}

// Note returns the local copy of a note by id.
func (m *Manager) Note(id string) (client.Note, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.notes {
		if n.ID == id {
			return n, true
		}
	}
	return client.Note{}, false
}

// Create validates the draft, runs the attachment phases when a file
// is selected, then creates the note. Any attachment phase failure
// aborts the whole creation and leaves the form populated; only a
// fully successful create prepends the server's note and resets the
// form. An object uploaded before a failed create call is left for
// server-side reconciliation.
func (m *Manager) Create(ctx context.Context, form *Form) (*client.Note, error) {
	if err := m.requireToken(); err != nil {
		return nil, err
	}
	if err := client.ValidateNoteFields(form.Title, form.Content); err != nil {
		return nil, err
	}

	var attachmentKey string
	if form.AttachmentPath != "" {
		key, err := m.uploadAttachment(ctx, form.AttachmentPath)
		if err != nil {
			return nil, fmt.Errorf("uploading attachment: %w", err)
		}
		attachmentKey = key
	}

	note, err := m.api.CreateNote(ctx, client.CreateNoteRequest{
		Title:           form.Title,
		Content:         form.Content,
		AttachmentS3Key: attachmentKey,
	})
	if err != nil {
		if attachmentKey != "" {
			log.Warn().Str("s3_key", attachmentKey).Msg("note creation failed after upload; object left orphaned")
		}
		return nil, err
	}

	m.mu.Lock()
	m.notes = append([]client.Note{*note}, m.notes...)
	m.mu.Unlock()

	form.Reset()
	return note, nil
}

// StartEdit puts the note into edit mode and returns its draft, seeded
// from the local copy. Starting an edit that is already in progress
// returns the existing draft unchanged.
func (m *Manager) StartEdit(id string) (*Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if draft, ok := m.editing[id]; ok {
		return draft, nil
	}
	for _, n := range m.notes {
		if n.ID == id {
			draft := &Form{Title: n.Title, Content: n.Content}
			m.editing[id] = draft
			return draft, nil
		}
	}
	return nil, fmt.Errorf("no such note: %s", id)
}

// EditDraft returns the in-progress draft for a note, if any.
func (m *Manager) EditDraft(id string) (*Form, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	draft, ok := m.editing[id]
	return draft, ok
}

// CancelEdit discards the draft and returns the note to viewing mode.
func (m *Manager) CancelEdit(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.editing, id)
}

// SaveEdit sends the draft to the server. On success the entry is
// replaced with the server's returned note, picking up any server-side
// normalization, and edit mode ends. On failure the draft is kept so
// the user can retry or cancel.
func (m *Manager) SaveEdit(ctx context.Context, id string) (*client.Note, error) {
	if err := m.requireToken(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	draft, ok := m.editing[id]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("note %s is not being edited", id)
	}
	if err := client.ValidateNoteFields(draft.Title, draft.Content); err != nil {
		return nil, err
	}

	note, err := m.api.UpdateNote(ctx, id, client.UpdateNoteRequest{
		Title:   draft.Title,
		Content: draft.Content,
	})
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.notes {
		if m.notes[i].ID == id {
			m.notes[i] = *note
			break
		}
	}
	delete(m.editing, id)
	return note, nil
}

// MarkDelete records delete intent for a note. Nothing is removed
// until ConfirmDelete; this is the first half of the two-step guard
// against accidental deletion.
func (m *Manager) MarkDelete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.notes {
		if n.ID == id {
			m.pendingDelete[id] = struct{}{}
			return nil
		}
	}
	return fmt.Errorf("no such note: %s", id)
}

// PendingDelete reports whether a note has delete intent recorded.
func (m *Manager) PendingDelete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.pendingDelete[id]
	return ok
}

// CancelDelete withdraws delete intent.
func (m *Manager) CancelDelete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pendingDelete, id)
}

// ConfirmDelete fires the delete call for a note previously marked via
// MarkDelete. The pending flag is cleared whether or not the call
// succeeds; the note leaves the collection only on success.
func (m *Manager) ConfirmDelete(ctx context.Context, id string) error {
	if err := m.requireToken(); err != nil {
		return err
	}

	m.mu.Lock()
	_, marked := m.pendingDelete[id]
	m.mu.Unlock()
	if !marked {
		return fmt.Errorf("delete not confirmed for note %s: mark it first", id)
	}

	err := m.api.DeleteNote(ctx, id)

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pendingDelete, id)
	if err != nil {
		return err
	}
	for i := range m.notes {
		if m.notes[i].ID == id {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			break
		}
	}
	return nil
}
