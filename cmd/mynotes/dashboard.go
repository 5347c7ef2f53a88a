package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hunterportola/mynotes/internal/dashboard"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive notes dashboard",
		Long:  "An interactive session over your notes. Edits and delete confirmations are tracked per note and discarded on exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := notesManager()
			if err != nil {
				return err
			}
			if err := m.Refresh(cmd.Context()); err != nil {
				return err
			}
			return runDashboard(cmd.Context(), m, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

const dashboardHelp = `Commands:
  list                 show notes, newest first
  new                  create a note (prompts for fields)
  edit <id>            edit a note's title and content
  delete <id>          mark a note for deletion; repeat to confirm
  cancel <id>          withdraw an edit or a pending delete
  refresh              refetch the collection from the server
  help                 show this help
  quit                 leave the dashboard`

// runDashboard drives the interactive loop. All state it accumulates
// (drafts, pending deletes) lives in the manager and dies with the
// loop.
func runDashboard(ctx context.Context, m *dashboard.Manager, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	listNotes(m, out)
	fmt.Fprintln(out, `Type "help" for commands.`)

	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, arg := fields[0], ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch cmd {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, dashboardHelp)
		case "list":
			listNotes(m, out)
		case "refresh":
			if err := m.Refresh(ctx); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			listNotes(m, out)
		case "new":
			createNote(ctx, m, sc, out)
		case "edit":
			editNote(ctx, m, sc, out, arg)
		case "delete":
			deleteNote(ctx, m, out, arg)
		case "cancel":
			cancelNote(m, out, arg)
		default:
			fmt.Fprintf(out, "unknown command %q; type \"help\"\n", cmd)
		}
	}
}

func listNotes(m *dashboard.Manager, out io.Writer) {
	notes := m.Notes()
	if len(notes) == 0 {
		fmt.Fprintln(out, "You haven't created any notes yet.")
		return
	}
	for _, n := range notes {
		marker := " "
		if m.PendingDelete(n.ID) {
			marker = "D"
		} else if _, editing := m.EditDraft(n.ID); editing {
			marker = "E"
		}
		fmt.Fprintf(out, "%s %s  %s\n", marker, n.ID, n.Title)
	}
}

func scanField(sc *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprintf(out, "%s: ", label)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func createNote(ctx context.Context, m *dashboard.Manager, sc *bufio.Scanner, out io.Writer) {
	form := &dashboard.Form{}
	var ok bool
	if form.Title, ok = scanField(sc, out, "Title"); !ok {
		return
	}
	if form.Content, ok = scanField(sc, out, "Content"); !ok {
		return
	}
	if form.AttachmentPath, ok = scanField(sc, out, "Attachment path (optional)"); !ok {
		return
	}

	note, err := m.Create(ctx, form)
	if err != nil {
		// The form keeps its values; the user can retry.
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Note created: %s\n", note.ID)
}

func editNote(ctx context.Context, m *dashboard.Manager, sc *bufio.Scanner, out io.Writer, id string) {
	if id == "" {
		fmt.Fprintln(out, "usage: edit <id>")
		return
	}
	draft, err := m.StartEdit(id)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(out, "Editing %s (empty input keeps the current value)\n", id)
	title, ok := scanField(sc, out, fmt.Sprintf("Title [%s]", draft.Title))
	if !ok {
		return
	}
	if title != "" {
		draft.Title = title
	}
	content, ok := scanField(sc, out, fmt.Sprintf("Content [%s]", draft.Content))
	if !ok {
		return
	}
	if content != "" {
		draft.Content = content
	}

	answer, ok := scanField(sc, out, "Save? [y/N]")
	if !ok {
		return
	}
	if !strings.EqualFold(answer, "y") {
		m.CancelEdit(id)
		fmt.Fprintln(out, "Edit cancelled.")
		return
	}
	if _, err := m.SaveEdit(ctx, id); err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Note updated: %s\n", id)
}

func deleteNote(ctx context.Context, m *dashboard.Manager, out io.Writer, id string) {
	if id == "" {
		fmt.Fprintln(out, "usage: delete <id>")
		return
	}
	if !m.PendingDelete(id) {
		if err := m.MarkDelete(id); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return
		}
		fmt.Fprintf(out, "Delete %s? Run `delete %s` again to confirm, or `cancel %s`.\n", id, id, id)
		return
	}
	if err := m.ConfirmDelete(ctx, id); err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Note deleted: %s\n", id)
}

func cancelNote(m *dashboard.Manager, out io.Writer, id string) {
	if id == "" {
		fmt.Fprintln(out, "usage: cancel <id>")
		return
	}
	switch {
	case m.PendingDelete(id):
		m.CancelDelete(id)
		fmt.Fprintf(out, "Delete cancelled for %s.\n", id)
	default:
		if _, editing := m.EditDraft(id); editing {
			m.CancelEdit(id)
			fmt.Fprintf(out, "Edit cancelled for %s.\n", id)
			return
		}
		fmt.Fprintf(out, "Nothing pending for %s.\n", id)
	}
}
