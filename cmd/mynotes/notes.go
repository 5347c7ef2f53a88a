package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hunterportola/mynotes/client"
	"github.com/hunterportola/mynotes/internal/dashboard"
)

func newNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage your notes",
	}
	cmd.AddCommand(newNotesListCmd())
	cmd.AddCommand(newNotesCreateCmd())
	cmd.AddCommand(newNotesUpdateCmd())
	cmd.AddCommand(newNotesDeleteCmd())
	return cmd
}

// notesManager builds a Manager for a one-shot command, applying the
// route guard before anything else.
func notesManager() (*dashboard.Manager, error) {
	env, err := newEnv()
	if err != nil {
		return nil, err
	}
	if err := requireSession(env.store); err != nil {
		return nil, err
	}
	return dashboard.New(env.api, env.store), nil
}

func printNote(cmd *cobra.Command, n client.Note) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n", n.ID, n.CreatedAt.Local().Format("2006-01-02 15:04"), n.Title)
	fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", n.Content)
	if n.AttachmentURL != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "    attachment: %s\n", n.AttachmentURL)
	}
}

func newNotesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your notes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := notesManager()
			if err != nil {
				return err
			}
			if err := m.Refresh(cmd.Context()); err != nil {
				return err
			}
			notes := m.Notes()
			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "You haven't created any notes yet.")
				return nil
			}
			for _, n := range notes {
				printNote(cmd, n)
			}
			return nil
		},
	}
}

func newNotesCreateCmd() *cobra.Command {
	var title, content, attach string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note, optionally with a file attachment",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := notesManager()
			if err != nil {
				return err
			}
			form := &dashboard.Form{Title: title, Content: content, AttachmentPath: attach}
			note, err := m.Create(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note created: %s\n", note.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title (required)")
	cmd.Flags().StringVar(&content, "content", "", "Note content (required)")
	cmd.Flags().StringVar(&attach, "attach", "", "Path of a file to attach")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newNotesUpdateCmd() *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "update <note-id>",
		Short: "Replace a note's title and content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := notesManager()
			if err != nil {
				return err
			}
			if err := m.Refresh(cmd.Context()); err != nil {
				return err
			}
			id := args[0]
			draft, err := m.StartEdit(id)
			if err != nil {
				return err
			}
			if title != "" {
				draft.Title = title
			}
			if content != "" {
				draft.Content = content
			}
			note, err := m.SaveEdit(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note updated: %s\n", note.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title (keeps current when omitted)")
	cmd.Flags().StringVar(&content, "content", "", "New content (keeps current when omitted)")
	return cmd
}

func newNotesDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a note (requires --yes to confirm)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := notesManager()
			if err != nil {
				return err
			}
			if err := m.Refresh(cmd.Context()); err != nil {
				return err
			}
			id := args[0]
			if err := m.MarkDelete(id); err != nil {
				return err
			}
			if !yes {
				// First step only: nothing is deleted yet.
				fmt.Fprintf(cmd.OutOrStdout(), "Not deleted. Re-run with --yes to confirm: mynotes notes delete %s --yes\n", id)
				return nil
			}
			if err := m.ConfirmDelete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %s\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}
