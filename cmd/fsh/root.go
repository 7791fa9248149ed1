package main

import (
	"os"
	"path/filepath"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/fs-over-http/fsh/cmd/fsh/config"
	"github.com/fs-over-http/fsh/internal/api"
	"github.com/fs-over-http/fsh/internal/cli"
	userconfig "github.com/fs-over-http/fsh/internal/config"
	"github.com/fs-over-http/fsh/internal/errors"
	"github.com/fs-over-http/fsh/internal/logging"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

var (
	ConfigDirectory string
	Host            string
	Scheme          string
	Strict          bool
	Timeout         time.Duration
	Verbose         bool

	settings  userconfig.Settings
	logger    *zap.SugaredLogger
	hostStore userconfig.Backend
	apiClient api.Client

	// rootCmd starts the interactive shell
	rootCmd = &cobra.Command{
		Use:           "fsh [flags]",
		Short:         "An interactive client for fs-over-http directory listings",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       config.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = logging.New(Verbose, os.Stderr)

			if err := userconfig.LoadEnv(".env"); err != nil {
				return errors.Wrap(err, "unable to load environment")
			}

			dir, err := userconfig.ExpandTilde(ConfigDirectory)
			if err != nil {
				return errors.Wrap(err, "unable to initialize configuration")
			}

			settings, err = userconfig.LoadSettings(filepath.Join(dir, "config.yml"))
			if err != nil {
				return errors.Wrap(err, "unable to load settings")
			}
			settings = settings.ApplyEnv()

			if cmd.Flags().Changed("host") {
				settings.Host = Host
			}
			if cmd.Flags().Changed("scheme") {
				settings.Scheme = Scheme
			}
			if cmd.Flags().Changed("strict") {
				settings.Strict = Strict
			}
			if cmd.Flags().Changed("timeout") {
				settings.Timeout = Timeout.String()
			}

			timeout, err := settings.TimeoutDuration()
			if err != nil {
				return errors.Wrap(err, "invalid timeout")
			}

			hostStore, err = userconfig.NewFileBackend(dir)
			if err != nil {
				return errors.Wrap(err, "unable to initialize host store")
			}

			apiClient, err = api.NewClient(api.Config{Scheme: settings.Scheme, Timeout: timeout, Logger: logger})
			if err != nil {
				return errors.Wrap(err, "unable to initialize API client")
			}

			logger.Debugw("initialized", "host", settings.Host, "scheme", settings.Scheme, "strict", settings.Strict, "timeout", timeout)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession()
			if err != nil {
				return err
			}

			if settings.Host != "" {
				session.Execute(cmd.Context(), "connect "+shellescape.Quote(settings.Host))
			}

			var in cli.LineReader
			if term.IsTerminal(int(os.Stdin.Fd())) {
				in = &cli.PromptReader{}
			} else {
				in = cli.NewStreamReader(os.Stdin, nil)
			}

			return session.Run(cmd.Context(), in)
		},
	}
)

func newSession() (*cli.Session, error) {
	session, err := cli.NewSession(cli.Config{
		APIClient:   apiClient,
		HostStore:   hostStore,
		Logger:      logger,
		Stdout:      os.Stdout,
		StdoutIsTTY: term.IsTerminal(int(os.Stdout.Fd())),
		Stderr:      os.Stderr,
		StderrIsTTY: term.IsTerminal(int(os.Stderr.Fd())),
		Scheme:      settings.Scheme,
		Prompt:      settings.Prompt,
		Strict:      settings.Strict,

		CancelOnInterrupt: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to initialize shell")
	}

	return session, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ConfigDirectory, "config-dir", filepath.Join("~", ".config", "fsh"), "the directory settings and the last host are kept in")
	rootCmd.PersistentFlags().StringVar(&Scheme, "scheme", "https", "the scheme used to reach the server")
	rootCmd.PersistentFlags().BoolVar(&Strict, "strict", false, "reject listings whose summary counts disagree with their entries")
	rootCmd.PersistentFlags().DurationVar(&Timeout, "timeout", 0, "the time allowed for each request, 0 for no limit")
	rootCmd.PersistentFlags().BoolVar(&Verbose, "verbose", false, "enable debug output")
	rootCmd.Flags().StringVar(&Host, "host", "", "connect to this host on start (also $FSH_HOST)")

	rootCmd.AddCommand(lsCmd)
}
