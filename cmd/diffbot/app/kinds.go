package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tsingmao/diffbot/client"
)

// NewKindsCommand creates the kinds command.
//
// The kinds command lists the supported APIs and which optional request
// parts each of them accepts.
//
// Usage:
//
//	diffbot kinds
func NewKindsCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported API kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(cmd.OutOrStdout())
		},
	}
}

func runKinds(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tFIELDS\tPOST BODY")
	for _, kind := range client.Kinds() {
		caps, err := client.Lookup(kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", kind, yesNo(caps.Fields), yesNo(caps.Body))
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
