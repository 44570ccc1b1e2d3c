package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `                      _
 ___  __ _ _ __ ___  | |_
/ __|/ _' | '_ ' _ \ | __|
\__ \ (_| | | | | | || |_
|___/\__,_|_| |_| |_| \__|`

var rootCmd = &cobra.Command{
	Use:   "samt",
	Short: "Sync addon metadata translations",
	Long: asciiLogo + `

samt keeps the localized metadata of a Kodi addon consistent between
addon.xml and the gettext catalogs under resource.language.* directories.
Summary, description, disclaimer and lifecycle state entries are
regenerated from whichever side holds them; every other line in both
file kinds is carried through byte for byte.

Files are only written when their content actually changes, so running
samt over an already synced addon touches nothing.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - addon.xml, po files or the en_GB po file missing
  12 - addon.xml has no xbmc.addon.metadata extension point
  13 - Metadata out of sync (check command)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for samt")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
