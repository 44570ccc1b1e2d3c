package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AcceptAddonPath validates the optional addon directory argument shared by
// the sync family of commands. Zero arguments is fine; the path then comes
// from --path, $SAMT_PATH, .samt.yaml or the working directory, in that order.
func AcceptAddonPath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s ./plugin.video.example`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
