// Package app provides the command-line interface implementation for diffbot.
//
// The root command performs a single API call; subcommands report what the
// binary supports. Commands follow the cobra layout of one constructor and
// one run function per command.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsingmao/diffbot/client"
	"github.com/tsingmao/diffbot/internal/config"
	"github.com/tsingmao/diffbot/internal/logger"
)

const (
	// cliName is the name of the CLI application
	cliName = "diffbot"

	// cliDescription is the short description shown in help text
	cliDescription = "diffbot - extract structured content from web pages"
)

// GlobalOptions holds options that are common to all commands
type GlobalOptions struct {
	// APIRoot overrides the Diffbot API base URL
	APIRoot string

	// APIVersion overrides the API version
	APIVersion int

	// Transport selects the HTTP backend (resty or stdlib)
	Transport string

	// Verbose enables debug logging on stderr
	Verbose bool

	// cfg is the environment configuration, loaded before any command runs
	cfg *config.Config
}

// NewDiffbotCommand creates the root diffbot command with all subcommands.
//
// The root command itself calls an API:
//
//	diffbot KIND URL [TOKEN] [flags]
//
// Returns:
//   - A configured cobra.Command ready for execution
//
// Example:
//
//	cmd := NewDiffbotCommand()
//	if err := cmd.Execute(); err != nil {
//	    os.Exit(1)
//	}
func NewDiffbotCommand() *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:   cliName + " KIND URL [TOKEN]",
		Short: cliDescription,
		Long: `diffbot calls the Diffbot content-extraction API for a web page and prints
the JSON response.

KIND is one of article, frontpage, product, image or analyze (classify is
accepted as an alias of analyze). TOKEN defaults to $DIFFBOT_TOKEN.

Settings are also read from the environment and from a .env file in the
current directory: DIFFBOT_TOKEN, DIFFBOT_API_ROOT, DIFFBOT_API_VERSION,
DIFFBOT_TIMEOUT, DIFFBOT_TRANSPORT, DIFFBOT_LOG_LEVEL, DIFFBOT_LOG_ENCODING.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.APIRoot, "api-root", "",
		"API base URL (default: $DIFFBOT_API_ROOT or "+client.DefaultAPIRoot+")")
	cmd.PersistentFlags().IntVar(&opts.APIVersion, "api-version", 0,
		"API version (default: $DIFFBOT_API_VERSION or 2)")
	cmd.PersistentFlags().StringVar(&opts.Transport, "transport", "",
		"HTTP backend: resty or stdlib (default: best available)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"verbose output")

	addAPIFlags(cmd, opts)

	cmd.AddCommand(
		NewKindsCommand(opts),
		NewVersionCommand(opts),
	)

	return cmd
}

// setup loads the environment configuration and initializes logging.
func setup(opts *GlobalOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opts.cfg = cfg

	if err := logger.Init(logger.Options{Level: cfg.LogLevel, Encoding: cfg.LogEncoding}); err != nil {
		return err
	}
	if opts.Verbose {
		logger.SetDebug(true)
	}
	return nil
}

// getClient creates and returns a configured API client.
//
// Flag values win over the environment configuration, which wins over the
// library defaults.
//
// Parameters:
//   - opts: Global options
//   - token: API token for the client
//
// Returns:
//   - A configured client.Client instance
//   - An error if the requested transport is not available
func getClient(opts *GlobalOptions, token string) (*client.Client, error) {
	cfg := opts.cfg
	if cfg == nil {
		cfg = &config.Config{}
	}

	root := firstNonEmpty(opts.APIRoot, cfg.APIRoot)
	version := opts.APIVersion
	if version == 0 {
		version = cfg.APIVersion
	}

	backend := client.Backend(firstNonEmpty(opts.Transport, cfg.Transport))
	tr, err := client.NewTransport(backend, nil)
	if err != nil {
		return nil, err
	}
	logger.Debug("Using %s transport, api root %s, version %d", tr.Backend(), root, version)

	return client.NewClient(token,
		client.WithAPIRoot(root),
		client.WithVersion(version),
		client.WithTransport(tr),
		client.WithLogger(logger.L()),
	), nil
}

// checkError prints an error and exits if err is not nil.
//
// Parameters:
//   - err: The error to check
func checkError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewDiffbotCommand()
	cmd.SilenceErrors = true
	checkError(cmd.Execute())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
