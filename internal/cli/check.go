package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xbmc/sync-addon-metadata-translations/internal/logging"
	"github.com/xbmc/sync-addon-metadata-translations/internal/services"
	"github.com/xbmc/sync-addon-metadata-translations/internal/ui"
	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Verify addon metadata is in sync without writing anything",
	Long: `Check runs both sync directions without writing and reports every file a
real sync would rewrite. Nothing on disk is touched.

Intended for CI: the command exits with code 13 when addon.xml or any po
file is out of sync, so a plain 'samt check' works as a pipeline gate.

Examples:
  # Gate a pull request on synced metadata
  samt check ./plugin.video.example

  # Check every addon in a repository checkout
  samt check ./repo-plugins --multi`,
	Args: AcceptAddonPath,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addSyncFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	config, err := buildSyncConfig(cmd, args, getVerboseFlag(cmd))
	if err != nil {
		return err
	}
	config.DryRun = true

	logger := logging.NewConsoleLogger(config.Verbose)
	service := services.NewSyncService(logger)

	result, err := service.Run(config)
	if err != nil {
		return err
	}

	reporter := ui.NewReporter()
	fmt.Println(reporter.RenderCheck(result))

	if result.Changed() {
		outOfSync := 0
		for i := range result.Packages {
			if result.Packages[i].Changed() {
				outOfSync++
			}
		}
		return fmt.Errorf("%d addon(s) would be rewritten: %w", outOfSync, samt.ErrOutOfSync)
	}
	return nil
}
