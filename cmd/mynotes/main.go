package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hunterportola/mynotes/client"
	"github.com/hunterportola/mynotes/internal/config"
	"github.com/hunterportola/mynotes/internal/session"
)

var (
	apiURL string
	debug  bool
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mynotes",
		Short:         "Client for the mynotes service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger()
			level := zerolog.InfoLevel
			if cfg, err := config.Load(); err == nil {
				level = cfg.Level()
			}
			// --debug overrides MYNOTES_LOG_LEVEL.
			if debug {
				level = zerolog.DebugLevel
				_ = os.Setenv("MYNOTES_DEBUG", "true")
			}
			config.SetLogLevel(level)
			if debug {
				log.Debug().Msg("debug logging enabled")
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the notes API (overrides MYNOTES_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newSignUpCmd())
	rootCmd.AddCommand(newConfirmSignUpCmd())
	rootCmd.AddCommand(newSignInCmd())
	rootCmd.AddCommand(newSignOutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newNotesCmd())
	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// appEnv bundles the wired-up pieces every command needs.
type appEnv struct {
	cfg   *config.Config
	store *session.Store
	api   *client.Client
}

// newEnv loads config, opens the session store, and builds the API
// client with the store as its token source.
func newEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	path, err := cfg.SessionPath()
	if err != nil {
		return nil, err
	}
	store, err := session.Open(path)
	if err != nil {
		return nil, err
	}

	return &appEnv{
		cfg:   cfg,
		store: store,
		api:   client.New(cfg.APIURL, store),
	}, nil
}

// requireSession is the route guard for protected commands: without a
// token the command stops here, before any network call.
func requireSession(store *session.Store) error {
	if !store.Authenticated() {
		return session.ErrNotSignedIn
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "API URL:      %s\n", env.cfg.APIURL)
			fmt.Fprintf(cmd.OutOrStdout(), "Session file: %s\n", env.store.Path())
			fmt.Fprintf(cmd.OutOrStdout(), "Log level:    %s\n", env.cfg.Level())
			return nil
		},
	}
	return cmd
}
