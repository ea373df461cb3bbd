// Command scte is the reference CLI for the action engine: parsing,
// compressing, and describing action text, loading profiles and menus, and
// serving the read-only debug introspection endpoints.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	glog "github.com/galago-remap/scte/internal/logx"
	"github.com/galago-remap/scte/internal/ui/colorize"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "scte",
		Short: "Steam-Controller-style action engine CLI",
		Long: `scte parses, compresses, and dispatches action text against the
in-memory action tree described in internal/action, the same algebra a
Steam Controller binding file expresses.

Examples:
  scte parse 'button(KEY_A)'
  scte describe 'dpad(button(KEY_W), button(KEY_S), button(KEY_A), button(KEY_D))'
  scte profile default.sccprofile
  scte serve --addr :7880`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			glog.Init(verbose)
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose debug logging")

	rootCmd.AddCommand(
		newParseCmd(),
		newCompressCmd(),
		newDescribeCmd(),
		newConstantsCmd(),
		newProfileCmd(),
		newMenuCmd(),
		newRunCmd(),
		newServeCmd(),
		newInspectCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, colorize.Error(err.Error()))
		os.Exit(1)
	}
}
