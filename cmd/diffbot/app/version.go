package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tsingmao/diffbot/client"
)

// Build information, set with -ldflags "-X".
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// NewVersionCommand creates the version command.
//
// The version command displays build information together with the API
// version and HTTP backends the binary uses.
//
// Usage:
//
//	diffbot version
//
// Parameters:
//   - globalOpts: Global options shared across commands
//
// Returns:
//   - A configured cobra.Command for displaying version info
func NewVersionCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(globalOpts, cmd.OutOrStdout())
		},
	}
}

// runVersion prints build and client information.
func runVersion(opts *GlobalOptions, out io.Writer) error {
	apiVersion := opts.APIVersion
	if apiVersion == 0 && opts.cfg != nil {
		apiVersion = opts.cfg.APIVersion
	}
	if apiVersion == 0 {
		apiVersion = client.DefaultVersion
	}

	fmt.Fprintln(out, "Client Version:")
	fmt.Fprintf(out, "  Version:     %s\n", Version)
	fmt.Fprintf(out, "  Build Time:  %s\n", BuildTime)
	fmt.Fprintf(out, "  Git Commit:  %s\n", GitCommit)
	fmt.Fprintf(out, "  API Version: v%d\n", apiVersion)
	fmt.Fprintf(out, "  Transports:  %v (default: %s)\n", client.Backends(), client.DefaultTransport().Backend())

	return nil
}
