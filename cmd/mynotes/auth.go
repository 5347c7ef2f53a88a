package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hunterportola/mynotes/client"
)

const passwordHint = "Password must be at least 8 characters and contain uppercase, lowercase, numbers, and symbols."

func newSignUpCmd() *cobra.Command {
	var email, password, confirm string
	var noConfirm bool

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Long:  "Create an account, then confirm it with the emailed code. The email is carried into the confirmation step automatically.",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			email, err = flagOrPrompt(cmd, email, "Email", false)
			if err != nil {
				return err
			}
			if err := client.ValidateEmail(email); err != nil {
				return err
			}

			if password == "" {
				fmt.Fprintln(cmd.OutOrStdout(), passwordHint)
			}
			password, err = flagOrPrompt(cmd, password, "Password", true)
			if err != nil {
				return err
			}
			confirm, err = flagOrPrompt(cmd, confirm, "Confirm password", true)
			if err != nil {
				return err
			}
			// Mismatch is caught here; no request is made.
			if err := client.ValidatePasswordConfirmation(password, confirm); err != nil {
				return err
			}

			if err := env.api.SignUp(cmd.Context(), client.SignUpRequest{Email: email, Password: password}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sign up successful! Check your email for a confirmation code.")

			if noConfirm {
				fmt.Fprintf(cmd.OutOrStdout(), "Confirm later with: mynotes confirm-signup --email %s\n", email)
				return nil
			}

			code, err := readLine(cmd, "Confirmation code")
			if err != nil {
				return err
			}
			if err := env.api.ConfirmSignUp(cmd.Context(), client.ConfirmSignUpRequest{Email: email, ConfirmationCode: code}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account confirmed. Sign in with: mynotes signin")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "Password confirmation (prompted when omitted)")
	cmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "Stop after sign-up without prompting for the confirmation code")
	return cmd
}

func newConfirmSignUpCmd() *cobra.Command {
	var email, code string

	cmd := &cobra.Command{
		Use:   "confirm-signup",
		Short: "Confirm an account with the emailed code",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			// Confirmation cannot proceed without knowing which
			// address to confirm.
			if email == "" {
				return fmt.Errorf("email is required: pass --email, or run `mynotes signup` which carries it forward")
			}

			code, err = flagOrPrompt(cmd, code, "Confirmation code", false)
			if err != nil {
				return err
			}
			if err := env.api.ConfirmSignUp(cmd.Context(), client.ConfirmSignUpRequest{Email: email, ConfirmationCode: code}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account confirmed. Sign in with: mynotes signin")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	cmd.Flags().StringVar(&code, "code", "", "Confirmation code (prompted when omitted)")
	return cmd
}

func newSignInCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			email, err = flagOrPrompt(cmd, email, "Email", false)
			if err != nil {
				return err
			}
			password, err = flagOrPrompt(cmd, password, "Password", true)
			if err != nil {
				return err
			}

			token, err := env.api.SignIn(cmd.Context(), client.SignInRequest{Email: email, Password: password})
			if err != nil {
				return err
			}
			if err := env.store.Login(token); err != nil {
				return err
			}
			log.Debug().Str("session_file", env.store.Path()).Msg("session token stored")
			fmt.Fprintln(cmd.OutOrStdout(), "Signed in. Try: mynotes notes list")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	return cmd
}

func newSignOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}
			if err := env.store.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show session status",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}
			if env.store.Authenticated() {
				// The token is opaque; presence is all we can report
				// without a server round-trip.
				fmt.Fprintf(cmd.OutOrStdout(), "Signed in (session: %s)\n", env.store.Path())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
			}
			return nil
		},
	}
}
