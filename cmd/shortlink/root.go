// Root command wiring for the shortlink CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vkuryndin/shortlinkapp/internal/localuser"
	"github.com/vkuryndin/shortlinkapp/internal/paths"
	"github.com/vkuryndin/shortlinkapp/internal/repository"
	"github.com/vkuryndin/shortlinkapp/internal/service"
	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

const appVersion = "v0.1.0"

// Exit codes: 1 for user errors (bad input, refusals), 2 for system errors
// (broken files, I/O).
const (
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Application state initialized by PersistentPreRunE for all subcommands.
var (
	appLog     zerolog.Logger
	appCfg     types.Config
	appDataDir string
	appLinks   *service.ShortLinks
	appUsers   *service.Users
	appEvents  *service.Events
)

var rootCmd = &cobra.Command{
	Use:     "shortlink",
	Short:   "Shortlink is a local-first short-link manager",
	Version: appVersion,
	Long: `Shortlink shortens URLs into local short codes, opens them in the
browser, and retires them automatically once their TTL runs out or their
click quota is spent. All state lives in JSON files in the data directory.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return initApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/data)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(limitCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(validateCmd)
}

// initApp resolves directories, loads configuration and builds the service
// layer shared by all subcommands.
func initApp() error {
	appLog = newLogger(flagVerbose)

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, configDataDir, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	appCfg = cfg

	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	appDataDir = dataDir

	currentUUID := localuser.EnsureCurrentUUID(appLog, paths.UserUUID(dataDir))

	appEvents, err = service.NewEvents(appLog, paths.Events(dataDir), cfg.EventsLogEnabled)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	appUsers, err = service.NewUsers(appLog, paths.Users(dataDir), currentUUID)
	if err != nil {
		return fmt.Errorf("open user registry: %w", err)
	}

	links, err := repository.NewLinks(appLog, paths.Links(dataDir))
	if err != nil {
		return fmt.Errorf("open link store: %w", err)
	}
	appLinks = service.NewShortLinks(currentUUID, cfg, dataDir, links, appEvents)
	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shortlink version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shortlink", appVersion)
	},
}
