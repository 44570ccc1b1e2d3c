package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/xbmc/sync-addon-metadata-translations/internal/config"
	"github.com/xbmc/sync-addon-metadata-translations/internal/logging"
	"github.com/xbmc/sync-addon-metadata-translations/internal/services"
	"github.com/xbmc/sync-addon-metadata-translations/internal/ui"
	"github.com/xbmc/sync-addon-metadata-translations/pkg/samt"
)

var syncCmd = &cobra.Command{
	Use:   "sync [path]",
	Short: "Sync metadata between addon.xml and the po files, both ways",
	Long: `Sync runs both directions over the addon directory: first the po catalogs
update addon.xml, then addon.xml updates the catalogs.

The sync command:
1. Locates addon.xml and every strings.po under resource.language.* directories
2. Extracts summary, description, disclaimer and lifecycle state per language
3. Rewrites the managed lines on each side from the other side's values
4. Writes a file only when its content actually changed

Existing catalog translations always win over addon.xml values; addon.xml
only contributes languages the catalogs do not know yet. Use the xml-to-po
command with --prefer-xml when addon.xml should win instead.

The direction can be pinned with the xml-to-po and po-to-xml commands.
sync itself follows $SAMT_DIRECTION or the direction from .samt.yaml when
one is set, and otherwise runs both.

Arguments:
  path    Addon directory containing addon.xml (optional)
          Falls back to --path, $SAMT_PATH, .samt.yaml, then the
          working directory

Examples:
  # Sync the addon in the current directory
  samt sync

  # Sync a specific addon
  samt sync ./plugin.video.example

  # Sync every addon under a repository checkout
  samt sync ./repo-plugins --multi`,
	Args: AcceptAddonPath,
	RunE: runSync,
}

var xmlToPOCmd = &cobra.Command{
	Use:   "xml-to-po [path]",
	Short: "Sync addon.xml metadata into the po files",
	Long: `xml-to-po regenerates the metadata entries of every language catalog from
addon.xml. Catalog entries for languages addon.xml does not mention keep
their current translations.

By default existing catalog translations win when both sides define a value
for the same language. Pass --prefer-xml to overwrite catalog values with
the addon.xml ones instead.

Examples:
  # Update the po files from addon.xml
  samt xml-to-po ./plugin.video.example

  # Make addon.xml the source of truth for conflicting languages
  samt xml-to-po ./plugin.video.example --prefer-xml`,
	Args: AcceptAddonPath,
	RunE: runXMLToPO,
}

var poToXMLCmd = &cobra.Command{
	Use:   "po-to-xml [path]",
	Short: "Sync po file metadata into addon.xml",
	Long: `po-to-xml regenerates the localized summary, description, disclaimer and
lifecycle state elements of addon.xml from the language catalogs. Languages
only addon.xml knows about are kept; catalog values win conflicts.

Examples:
  # Update addon.xml from the po files
  samt po-to-xml ./plugin.video.example`,
	Args: AcceptAddonPath,
	RunE: runPOToXML,
}

type syncFlagValues struct {
	path      string
	multi     bool
	preferXML bool
}

var syncFlags syncFlagValues

func init() {
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(xmlToPOCmd)
	rootCmd.AddCommand(poToXMLCmd)

	addSyncFlags(syncCmd)
	addSyncFlags(xmlToPOCmd)
	addSyncFlags(poToXMLCmd)

	xmlToPOCmd.Flags().BoolVar(&syncFlags.preferXML, "prefer-xml", false,
		"Let addon.xml values overwrite existing catalog translations\n"+
			"Default: existing translations win, addon.xml only adds missing languages")
}

// addSyncFlags registers the flags shared by the sync family of commands.
func addSyncFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&syncFlags.path, "path", "",
		"Addon directory to operate on\n"+
			"Precedence: positional argument > --path > $SAMT_PATH > .samt.yaml > current directory")
	cmd.Flags().BoolVar(&syncFlags.multi, "multi", false,
		"Treat every immediate subdirectory of the path as an addon\n"+
			"Addons missing addon.xml or po files are reported and skipped")
	cmd.ValidArgsFunction = completeDirectories
}

// buildSyncConfig resolves the sync configuration from CLI flags, the
// environment and the optional .samt.yaml file in the working directory.
// This function is extracted for testability and separation of concerns.
//
// Precedence, highest first: positional argument and flags, SAMT_*
// environment variables, .samt.yaml, built-in defaults.
func buildSyncConfig(cmd *cobra.Command, args []string, verbose bool) (samt.SyncConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(".")
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return samt.SyncConfig{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	path := "."
	direction := samt.DirectionBoth
	multi := false

	if projectCfg != nil {
		if projectCfg.Path != "" {
			path = projectCfg.Path
		}
		if projectCfg.Direction != "" {
			direction, err = samt.ParseDirection(projectCfg.Direction)
			if err != nil {
				return samt.SyncConfig{}, fmt.Errorf("invalid direction in %s: %w", config.ConfigFileName, err)
			}
		}
		if projectCfg.Multi {
			multi = true
		}
		if projectCfg.Verbose {
			verbose = true
		}
	}

	if env := os.Getenv("SAMT_PATH"); env != "" {
		path = env
	}
	if env := os.Getenv("SAMT_DIRECTION"); env != "" {
		direction, err = samt.ParseDirection(env)
		if err != nil {
			return samt.SyncConfig{}, fmt.Errorf("invalid SAMT_DIRECTION: %w", err)
		}
	}
	if env := os.Getenv("SAMT_MULTI"); env != "" {
		parsed, parseErr := strconv.ParseBool(env)
		if parseErr != nil {
			return samt.SyncConfig{}, fmt.Errorf("invalid SAMT_MULTI %q: %w", env, samt.ErrInvalidConfig)
		}
		multi = parsed
	}

	if syncFlags.path != "" {
		path = syncFlags.path
	}
	if cmd.Flags().Changed("multi") || syncFlags.multi {
		multi = syncFlags.multi
	}
	if len(args) > 0 {
		path = args[0]
	}

	// The filesystem provider works on absolute paths.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return samt.SyncConfig{}, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	return samt.SyncConfig{
		Path:      absPath,
		Direction: direction,
		Multi:     multi,
		Priority:  samt.PriorityPO,
		Verbose:   verbose,
	}, nil
}

func runSync(cmd *cobra.Command, args []string) error {
	config, err := buildSyncConfig(cmd, args, getVerboseFlag(cmd))
	if err != nil {
		return err
	}
	return syncAndReport(config)
}

func runXMLToPO(cmd *cobra.Command, args []string) error {
	config, err := buildSyncConfig(cmd, args, getVerboseFlag(cmd))
	if err != nil {
		return err
	}
	config.Direction = samt.DirectionXMLToPO
	if syncFlags.preferXML {
		config.Priority = samt.PriorityXML
	}
	return syncAndReport(config)
}

func runPOToXML(cmd *cobra.Command, args []string) error {
	config, err := buildSyncConfig(cmd, args, getVerboseFlag(cmd))
	if err != nil {
		return err
	}
	config.Direction = samt.DirectionPOToXML
	return syncAndReport(config)
}

// syncAndReport runs one sync pass and prints the per-addon summary.
// Progress lines go through the logger; the styled summary follows on
// stdout.
func syncAndReport(config samt.SyncConfig) error {
	logger := logging.NewConsoleLogger(config.Verbose)
	service := services.NewSyncService(logger)

	result, err := service.Run(config)
	if err != nil {
		return err
	}

	reporter := ui.NewReporter()
	fmt.Println(reporter.RenderSync(result))
	return nil
}
